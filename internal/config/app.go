package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "config.yaml"

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Feed struct {
	URL          string `mapstructure:"url"`
	Accept       string `mapstructure:"accept"`
	BaseCurrency string `mapstructure:"base_currency"`
}

type Scheduler struct {
	// 0 disables periodic refresh, rates are then fetched once at startup
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Display struct {
	RatePrecision int  `mapstructure:"rate_precision"`
	Flags         bool `mapstructure:"flags"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Feed       Feed       `mapstructure:"feed"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
	Display    Display    `mapstructure:"display"`
	Cache      Cache      `mapstructure:"cache"`
}

func Init() (*AppConfig, error) {
	return Load(DefaultConfigFile)
}

// Load reads .env and the yaml file at path. Both are optional; env vars override file values.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("feed.url", "https://api.bnm.gov.my/public/exchange-rate")
	v.SetDefault("feed.accept", "application/vnd.BNM.API.v1+json")
	v.SetDefault("feed.base_currency", "MYR")
	v.SetDefault("scheduler.refresh_interval_sec", 3600)
	v.SetDefault("logging.level", "info")
	v.SetDefault("display.rate_precision", 4)
	v.SetDefault("display.flags", true)
	v.SetDefault("cache.max_items", 1024)

	// http env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// feed env vars
	_ = v.BindEnv("feed.url", "FEED_URL")
	_ = v.BindEnv("feed.accept", "FEED_ACCEPT")
	_ = v.BindEnv("feed.base_currency", "BASE_CURRENCY")

	_ = v.BindEnv("scheduler.refresh_interval_sec", "REFRESH_INTERVAL_SEC")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("display.rate_precision", "RATE_PRECISION")
	_ = v.BindEnv("display.flags", "DISPLAY_FLAGS")
	_ = v.BindEnv("cache.max_items", "CACHE_MAX_ITEMS")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Feed.BaseCurrency = strings.ToUpper(strings.TrimSpace(cfg.Feed.BaseCurrency))
	if cfg.Feed.URL == "" {
		return nil, errors.New("feed url is required")
	}
	if cfg.Feed.BaseCurrency == "" {
		return nil, errors.New("base currency is required")
	}
	if cfg.Scheduler.RefreshIntervalSec < 0 {
		return nil, fmt.Errorf("refresh interval must not be negative, got %d", cfg.Scheduler.RefreshIntervalSec)
	}

	return &cfg, nil
}
