package main

import (
	"fmt"
	"time"

	"github.com/diegoclair/adhan-bot/internal/aladhan"
	"github.com/diegoclair/adhan-bot/internal/config"
	"github.com/diegoclair/adhan-bot/internal/database"
	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/service"
	"github.com/diegoclair/adhan-bot/internal/geo"
	"github.com/diegoclair/adhan-bot/internal/logger"
	"github.com/diegoclair/adhan-bot/migrator/sqlite"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// app holds what every command builds from the configuration
type app struct {
	cfg *config.Config
	loc *time.Location
	log zerolog.Logger
	fs  afero.Fs
}

func bootstrap(validate func(*config.Config) error) (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &app{
		cfg: cfg,
		loc: loc,
		log: logger.New(cfg.LogLevel, cfg.LogFormat),
		fs:  afero.NewOsFs(),
	}, nil
}

func (a *app) openDB() (*database.DB, error) {
	db, err := database.New(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a.log.Debug().Str("path", a.cfg.DatabasePath).Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// coordinates prefers explicit LATITUDE/LONGITUDE over the zone table
func (a *app) coordinates() (geo.Coordinates, error) {
	if a.cfg.Latitude != nil && a.cfg.Longitude != nil {
		return geo.Coordinates{Latitude: *a.cfg.Latitude, Longitude: *a.cfg.Longitude}, nil
	}

	coords, err := geo.NewResolver(a.fs, a.cfg.ZoneinfoDir).Resolve(a.cfg.Timezone)
	if err != nil {
		return geo.Coordinates{}, fmt.Errorf("failed to resolve coordinates of %s: %w", a.cfg.Timezone, err)
	}
	return coords, nil
}

func (a *app) timeTable() (*aladhan.Client, error) {
	coords, err := a.coordinates()
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("coordinates", coords.String()).Int("method", a.cfg.Method).Msg("location resolved")

	return aladhan.New(aladhan.Config{
		BaseURL:     a.cfg.AladhanURL,
		Coordinates: coords,
		Timezone:    a.cfg.Timezone,
		Method:      a.cfg.Method,
	}, nil), nil
}

func (a *app) schedulerConfig() service.SchedulerConfig {
	offsets := make(map[string]int, len(domain.ActionableLabels()))
	for _, label := range domain.ActionableLabels() {
		if offset := a.cfg.OffsetFor(label); offset != 0 {
			offsets[label] = offset
		}
	}

	return service.SchedulerConfig{
		Location:        a.loc,
		Offsets:         offsets,
		FetchRetryDelay: time.Duration(a.cfg.FetchRetryDelay),
	}
}
