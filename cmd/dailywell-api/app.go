package main

import (
	"context"
	"fmt"

	"github.com/dailywell/backend/internal/config"
	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/repository"
	"github.com/dailywell/backend/internal/service"
)

// newLogger builds the process logger from config and installs it as the
// package default
func newLogger(cfg *config.Config) logger.Logger {
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.ParseLevel(cfg.Log.Level)
	logCfg.Format = cfg.Log.Format

	log := logger.NewSlogLogger(logCfg).With(logger.String("env", cfg.Server.Env))
	logger.SetDefault(log)
	return log
}

// openStore connects to the configured database and applies the schema
func openStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var store repository.Store

	switch cfg.Database.Driver {
	case config.DriverSQLite:
		s, err := repository.NewSQLiteStore(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		store = s
	default:
		pool, err := repository.NewPostgresPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
		if err != nil {
			return nil, err
		}
		store = repository.NewPostgresStore(pool)
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// serviceOptions carries the analytics window and timezone into services
func serviceOptions(cfg *config.Config) (service.Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return service.Options{}, err
	}
	return service.Options{Location: loc, WindowDays: cfg.Analytics.WindowDays}.WithDefaults(), nil
}

// services bundles the wired service layer
type services struct {
	moods   service.MoodService
	sleep   service.SleepService
	food    service.FoodService
	entries service.EntryService
}

func newServices(store repository.Store, opts service.Options) services {
	return services{
		moods:   service.NewMoodService(store.Moods(), opts),
		sleep:   service.NewSleepService(store.Sleep(), store.ScreenTime(), opts),
		food:    service.NewFoodService(store.FoodIntake(), opts),
		entries: service.NewEntryService(store, opts),
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
