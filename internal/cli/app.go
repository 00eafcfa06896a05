package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"signassist/internal/config"
	"signassist/internal/describe"
	"signassist/internal/eventbus"
	"signassist/internal/search"
	"signassist/internal/videourl"
)

// app holds the services a command runs on
type app struct {
	cfg     *config.Config
	bus     eventbus.EventBus
	fetcher describe.Fetcher
	urls    *videourl.Builder
	logger  zerolog.Logger
}

// loadConfig reads the config file and applies flag overrides. On first run
// the defaults are written back when persist is set.
func loadConfig(flags *globalFlags, fs *pflag.FlagSet, bus eventbus.EventBus, persist bool, logger zerolog.Logger) (*config.Config, error) {
	configSvc := config.NewConfigServiceWithBus(flags.configPath, bus)

	_, statErr := os.Stat(configSvc.Path())
	firstRun := os.IsNotExist(statErr)

	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", configSvc.Path()).Bool("first_run", firstRun).Msg("config loaded")

	if firstRun && persist {
		if err := configSvc.Save(cfg); err != nil {
			logger.Warn().Err(err).Msg("failed to write default config")
		}
	}

	if err := flags.apply(fs, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp wires config, the event bus and the lookups
func newApp(ctx context.Context, flags *globalFlags, fs *pflag.FlagSet, persist bool, logger zerolog.Logger) (*app, error) {
	bus := eventbus.New(logger)

	cfg, err := loadConfig(flags, fs, bus, persist, logger)
	if err != nil {
		bus.Close()
		return nil, err
	}

	urls, err := videourl.NewBuilder(cfg.Video.URLTemplate)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("video url template: %w", err)
	}

	fetcher, err := describe.New(ctx, cfg, logger)
	switch {
	case err == nil:
	case errors.Is(err, describe.ErrMissingAPIKey) && persist:
		// Let the UI start; each search reports the missing key
		logger.Warn().Err(err).Str("provider", cfg.AI.Provider).Msg("provider unavailable")
		fetcher = describe.Unavailable(err)
	default:
		bus.Close()
		return nil, fmt.Errorf("failed to set up %s provider: %w", cfg.AI.Provider, err)
	}

	return &app{
		cfg:     cfg,
		bus:     bus,
		fetcher: fetcher,
		urls:    urls,
		logger:  logger,
	}, nil
}

// newOrchestrator creates the search orchestrator for the interactive UI
func (a *app) newOrchestrator() *search.Orchestrator {
	return search.NewOrchestrator(search.Options{
		Fetcher:    a.fetcher,
		URLs:       a.urls,
		VideoDelay: a.cfg.Video.MinDisplayDelay.Std(),
		Timeout:    a.cfg.AI.Timeout.Std(),
		Bus:        a.bus,
		Logger:     a.logger,
	})
}

// Close releases the provider client and stops the bus
func (a *app) Close() {
	if err := describe.Close(a.fetcher); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close provider")
	}
	a.bus.Close()
}
