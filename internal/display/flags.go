package display

const unknownFlag = "🏳️"

var currencyFlags = map[string]string{
	"MYR": "🇲🇾",
	"USD": "🇺🇸",
	"EUR": "🇪🇺",
	"GBP": "🇬🇧",
	"JPY": "🇯🇵",
	"AUD": "🇦🇺",
	"CAD": "🇨🇦",
	"CHF": "🇨🇭",
	"CNY": "🇨🇳",
	"NZD": "🇳🇿",
	"SGD": "🇸🇬",
	"HKD": "🇭🇰",
	"KRW": "🇰🇷",
	"INR": "🇮🇳",
	"THB": "🇹🇭",
	"IDR": "🇮🇩",
	"PHP": "🇵🇭",
	"VND": "🇻🇳",
	"TWD": "🇹🇼",
	"AED": "🇦🇪",
	"SAR": "🇸🇦",
	"EGP": "🇪🇬",
	"PKR": "🇵🇰",
	"NPR": "🇳🇵",
	"MMK": "🇲🇲",
	"KHR": "🇰🇭",
	"BND": "🇧🇳",
	"SDR": "🏳️", // IMF special drawing rights
}

// FlagDecorator prefixes the code with its flag emoji, or a white flag when unknown.
func FlagDecorator(code string) string {
	flag, ok := currencyFlags[code]
	if !ok {
		flag = unknownFlag
	}
	return flag + " " + code
}
