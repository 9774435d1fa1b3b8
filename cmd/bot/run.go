package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/diegoclair/adhan-bot/internal/config"
	"github.com/diegoclair/adhan-bot/internal/database"
	"github.com/diegoclair/adhan-bot/internal/domain/service"
	"github.com/diegoclair/adhan-bot/internal/eventlog"
	"github.com/diegoclair/adhan-bot/internal/handlers"
	"github.com/diegoclair/adhan-bot/internal/logger"
	notifier "github.com/diegoclair/adhan-bot/internal/slack"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"github.com/urfave/cli"
)

const shutdownTimeout = 10 * time.Second

func runDaemon(c *cli.Context) error {
	a, err := bootstrap((*config.Config).ValidateRun)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := a.openDB()
	if err != nil {
		a.log.Error().Err(err).Msg("startup failed")
		return cli.NewExitError(err.Error(), 1)
	}
	defer db.Close()

	provider, err := a.timeTable()
	if err != nil {
		a.log.Error().Err(err).Msg("startup failed")
		return cli.NewExitError(err.Error(), 1)
	}

	instance := service.NewInstance(service.Dependencies{
		DataManager:     database.NewInstance(db),
		SlackClient:     slack.New(a.cfg.SlackAuthToken),
		Notifier:        notifier.NewWebhookNotifier(a.cfg.SlackWebhookURL, nil),
		TimeTable:       provider,
		EventLog:        eventlog.New(a.fs, a.cfg.EventLogPath),
		Fs:              a.fs,
		SlackRatePerSec: a.cfg.SlackRatePerSec,
		RetentionDays:   a.cfg.HistoryRetentionDays,
	}, a.schedulerConfig(), a.log)

	if err := instance.Housekeeping.Start(ctx, a.cfg.HousekeepingSchedule, a.loc); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	server := newServer(a, instance)
	go func() {
		a.log.Info().Str("port", a.cfg.Port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("server stopped")
		}
	}()

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		a.log.Warn().Err(err).Msg("sd_notify ready failed")
	}

	runErr := instance.Scheduler.Run(ctx)

	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		a.log.Warn().Err(err).Msg("sd_notify stopping failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.log.Error().Err(err).Msg("server shutdown failed")
	}

	if runErr != nil {
		a.log.Error().Err(runErr).Msg("scheduler failed")
		return cli.NewExitError(fmt.Sprintf("scheduler failed: %v", runErr), 1)
	}
	a.log.Info().Msg("stopped")
	return nil
}

func newServer(a *app, instance *service.Instance) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})
	mux.Handle("/metrics", promhttp.Handler())

	if a.cfg.SlackSigningSecret != "" {
		handler := handlers.New(instance.Members, instance.Scheduler, a.cfg.SlackSigningSecret,
			logger.Component(a.log, "slack_handler"))
		mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	} else {
		a.log.Info().Msg("SLACK_SIGNING_SECRET not set, slash commands disabled")
	}

	return &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
