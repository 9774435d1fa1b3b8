package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type Housekeeper struct {
	dm            contract.DataManager
	clock         contract.Clock
	retentionDays int
	log           zerolog.Logger
}

func NewHousekeeper(dm contract.DataManager, clock contract.Clock, retentionDays int, log zerolog.Logger) *Housekeeper {
	return &Housekeeper{
		dm:            dm,
		clock:         clock,
		retentionDays: retentionDays,
		log:           log,
	}
}

// Prune deletes trigger history older than the retention period.
func (h *Housekeeper) Prune(ctx context.Context) (int64, error) {
	if h.retentionDays <= 0 {
		return 0, nil
	}

	before := h.clock.Now().AddDate(0, 0, -h.retentionDays)
	deleted, err := h.dm.Trigger().DeleteBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune trigger history: %w", err)
	}

	h.log.Info().Int64("deleted", deleted).Time("before", before).Msg("trigger history pruned")
	return deleted, nil
}

// Start runs Prune on the cron schedule spec in loc until ctx is done.
func (h *Housekeeper) Start(ctx context.Context, spec string, loc *time.Location) error {
	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc(spec, func() {
		if _, err := h.Prune(ctx); err != nil {
			h.log.Error().Err(err).Msg("housekeeping failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid housekeeping schedule %q: %w", spec, err)
	}

	c.Start()
	h.log.Info().Str("schedule", spec).Int("retention_days", h.retentionDays).Msg("housekeeping started")

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
	}()

	return nil
}
