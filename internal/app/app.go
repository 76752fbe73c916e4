package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fxconvert/internal/adapters/cache"
	"fxconvert/internal/adapters/httpclient"
	"fxconvert/internal/api"
	"fxconvert/internal/config"
	"fxconvert/internal/display"
	httpserver "fxconvert/internal/platform/http"
	"fxconvert/internal/rate"
	"fxconvert/internal/rate/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	ConfigureLogging(appCfg.Logging)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Unit rate cache
	unitRateCache, err := cache.NewUnitRateCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Failed to create unit rate cache")
		return err
	}
	defer unitRateCache.Close()

	// Rates feed
	httpTimeout := ClientTimeout(appCfg.HTTPClient)
	feedClient := httpclient.NewRatesFeedClient(
		&http.Client{Timeout: httpTimeout},
		strings.TrimSpace(appCfg.Feed.URL),
		appCfg.Feed.Accept,
	)

	// Services
	store := rate.NewStore()
	refresher := rate.NewRefresher(feedClient, store, unitRateCache, appCfg.Feed.BaseCurrency, httpTimeout)
	rateService := rate.NewService(store, refresher, unitRateCache)

	// Initial fetch. A failure here is not fatal: endpoints answer 503 until a refresh succeeds.
	if table, refreshErr := refresher.Refresh(ctx); refreshErr != nil {
		logrus.WithError(refreshErr).Error("Initial rates fetch failed")
	} else {
		logrus.Infof("✅ Rates loaded: %d currencies, base %s", len(table.Rates), table.Base)
	}

	if appCfg.Scheduler.RefreshIntervalSec > 0 {
		scheduler := rate.NewScheduler(refresher, time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second)
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	} else {
		logrus.Info("Periodic refresh disabled")
	}

	// Handlers and router
	formatter := display.NewFormatter(appCfg.Display.RatePrecision, Decorator(appCfg.Display))
	rateHandler := handler.NewRateHandler(rate.NewValidator(), rateService, formatter)
	router := api.NewRouter(rateHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

func ConfigureLogging(cfg config.Logging) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(cfg.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

func ClientTimeout(cfg config.HTTPClient) time.Duration {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return timeout
}

func Decorator(cfg config.Display) display.Decorator {
	if cfg.Flags {
		return display.FlagDecorator
	}
	return display.PlainDecorator
}
