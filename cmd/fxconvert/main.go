package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"fxconvert/internal/adapters/httpclient"
	"fxconvert/internal/app"
	"fxconvert/internal/config"
	"fxconvert/internal/display"
	"fxconvert/internal/domain"
	"fxconvert/internal/rate"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

type options struct {
	from          string
	to            string
	amount        float64
	reverse       bool
	list          bool
	ratePrecision int
	configPath    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	app.ConfigureLogging(cfg.Logging)
	// keep the terminal for results
	logrus.SetOutput(os.Stderr)

	if opts.ratePrecision > 0 {
		cfg.Display.RatePrecision = opts.ratePrecision
	}

	timeout := app.ClientTimeout(cfg.HTTPClient)
	client := httpclient.NewRatesFeedClient(&http.Client{Timeout: timeout}, cfg.Feed.URL, cfg.Feed.Accept)
	store := rate.NewStore()
	refresher := rate.NewRefresher(client, store, nil, cfg.Feed.BaseCurrency, timeout)

	table, err := refresher.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch exchange rates, please try again later: %w", err)
	}

	formatter := display.NewFormatter(cfg.Display.RatePrecision, app.Decorator(cfg.Display))
	return render(out, rate.NewService(store, refresher, nil), table, formatter, opts)
}

func render(out io.Writer, svc *rate.Service, table *domain.RateTable, formatter *display.Formatter, opts options) error {
	heading := color.New(color.Bold)
	if line := formatter.LastUpdatedLine(table.LastUpdated); line != "" {
		_, _ = heading.Fprintln(out, line)
	}

	if opts.list {
		codes, err := svc.Currencies()
		if err != nil {
			return err
		}
		for _, code := range codes {
			_, _ = fmt.Fprintln(out, formatter.Label(code))
		}
		return nil
	}

	from := strings.ToUpper(strings.TrimSpace(opts.from))
	to := strings.ToUpper(strings.TrimSpace(opts.to))
	if err := rate.NewValidator().ValidateQuery(from, to, opts.amount); err != nil {
		return err
	}
	// nothing to convert
	if opts.amount == 0 {
		return nil
	}

	var (
		conv domain.Conversion
		err  error
	)
	if opts.reverse {
		conv, err = svc.Reverse(from, to, opts.amount)
	} else {
		conv, err = svc.Convert(from, to, opts.amount)
	}
	if err != nil {
		return err
	}

	result := formatter.Result(conv)
	if opts.reverse {
		result = formatter.ReverseResult(conv)
	}
	_, _ = fmt.Fprintln(out, result)
	_, _ = fmt.Fprintln(out, formatter.RateLine(conv))
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("fxconvert", pflag.ContinueOnError)
	fs.StringVarP(&opts.from, "from", "f", "USD", "source currency code")
	fs.StringVarP(&opts.to, "to", "t", "MYR", "target currency code")
	fs.Float64VarP(&opts.amount, "amount", "a", 1, "amount to convert")
	fs.BoolVarP(&opts.reverse, "reverse", "r", false, "treat amount as the target amount")
	fs.BoolVarP(&opts.list, "list", "l", false, "list available currencies")
	fs.IntVar(&opts.ratePrecision, "rate-precision", 0, "decimal places for the unit rate (4-6)")
	fs.StringVarP(&opts.configPath, "config", "c", config.DefaultConfigFile, "path to config file")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}
