package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/diegoclair/adhan-bot/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SchedulerConfig struct {
	Location        *time.Location
	Offsets         map[string]int
	FetchRetryDelay time.Duration
}

type Scheduler struct {
	cfg         SchedulerConfig
	provider    contract.TimeTableProvider
	directory   contract.RecipientDirectory
	broadcaster *Broadcaster
	eventLog    contract.EventLog
	dm          contract.DataManager
	clock       contract.Clock
	log         zerolog.Logger

	startedAt  time.Time
	prevAnchor time.Time
	recipients int

	status atomic.Pointer[entity.Status]
	today  atomic.Pointer[entity.DaySchedule]
}

func NewScheduler(
	cfg SchedulerConfig,
	provider contract.TimeTableProvider,
	directory contract.RecipientDirectory,
	broadcaster *Broadcaster,
	eventLog contract.EventLog,
	dm contract.DataManager,
	clock contract.Clock,
	log zerolog.Logger,
) *Scheduler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.FetchRetryDelay <= 0 {
		cfg.FetchRetryDelay = domain.DefaultFetchRetryDelay
	}

	s := &Scheduler{
		cfg:         cfg,
		provider:    provider,
		directory:   directory,
		broadcaster: broadcaster,
		eventLog:    eventLog,
		dm:          dm,
		clock:       clock,
		log:         log,
	}
	s.status.Store(&entity.Status{State: entity.StateStopped})
	return s
}

// Run drives the daily cycles until ctx is cancelled, which returns nil, or
// until a permanent failure, which is returned.
func (s *Scheduler) Run(ctx context.Context) error {
	s.startedAt = s.clock.Now().In(s.cfg.Location)
	s.log.Info().Time("started_at", s.startedAt).Str("timezone", s.cfg.Location.String()).Msg(domain.StartupText)

	for {
		next, err := s.runCycle(ctx)
		if err != nil {
			if ctx.Err() != nil {
				s.stop()
				return nil
			}
			s.fail(err)
			return err
		}

		if err := s.rest(ctx, next); err != nil {
			s.stop()
			return nil
		}
	}
}

// runCycle fetches today's data and processes its events. It returns when
// the next cycle should start.
func (s *Scheduler) runCycle(ctx context.Context) (time.Time, error) {
	cycle, table, err := s.fetch(ctx)
	if err != nil {
		return time.Time{}, err
	}
	log := s.log.With().Str("cycle", cycle.ID).Logger()

	today, err := BuildDaySchedule(table, s.cfg.Location, cycle.Day, s.cfg.Offsets)
	if err != nil {
		next := s.fallbackRest(table, cycle.Day)
		log.Error().Err(err).Time("next_cycle", next).Msg("unusable time table, skipping the rest of the day")
		return next, nil
	}

	cycle.Today = today
	s.today.Store(today)
	if anchor, ok := today.Anchor(); ok {
		s.prevAnchor = anchorTime(anchor)
	}

	if err := s.eventLog.Banner(domain.RunningStatus, s.startedAt); err != nil {
		log.Warn().Err(err).Msg("failed to write event log banner")
	}

	if err := s.processEvents(ctx, cycle, log); err != nil {
		return time.Time{}, err
	}

	if err := s.eventLog.EndOfDay(); err != nil {
		log.Warn().Err(err).Msg("failed to close event log day")
	}

	anchor, ok := today.Anchor()
	if !ok {
		return nextMidnight(s.clock.Now(), s.cfg.Location), nil
	}
	return nextCycleStart(anchorTime(anchor)), nil
}

// fetch loads the recipient snapshot and the time table, retrying transient
// failures every FetchRetryDelay.
func (s *Scheduler) fetch(ctx context.Context) (*entity.CycleState, entity.TimeTable, error) {
	for {
		now := s.clock.Now().In(s.cfg.Location)
		cycle := &entity.CycleState{
			ID:        uuid.NewString(),
			StartedAt: s.startedAt,
			Day:       cycleDay(now),
		}
		s.publish(entity.Status{State: entity.StateFetching, CycleID: cycle.ID})

		source := "directory"
		recipients, err := s.directory.ListRecipients(ctx)
		var table entity.TimeTable
		if err == nil {
			source = "timetable"
			table, err = s.provider.FetchToday(ctx, cycle.Day)
		}
		if err == nil {
			cycle.Recipients = recipients
			s.recipients = len(recipients)
			metrics.Recipients.Set(float64(len(recipients)))
			s.log.Info().Str("cycle", cycle.ID).
				Str("day", cycle.Day.Format(entity.DayLayout)).
				Int("recipients", len(recipients)).
				Msg("cycle data fetched")
			return cycle, table, nil
		}

		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		if errors.Is(err, domain.ErrPermanent) {
			return nil, nil, err
		}

		metrics.FetchErrors.WithLabelValues(source).Inc()
		retryAt := now.Add(s.cfg.FetchRetryDelay)
		s.publish(entity.Status{State: entity.StateFetching, CycleID: cycle.ID, NextDeadline: retryAt, LastError: err.Error()})
		s.log.Warn().Err(err).Str("source", source).Time("retry_at", retryAt).Msg("fetch failed, retrying")

		if err := s.clock.SleepUntil(ctx, retryAt); err != nil {
			return nil, nil, err
		}
	}
}

func (s *Scheduler) processEvents(ctx context.Context, cycle *entity.CycleState, log zerolog.Logger) error {
	day := cycle.Today.Day()

	for _, event := range cycle.Today.Events {
		if !event.Actionable {
			continue
		}

		fired, err := s.dm.Trigger().HasFired(ctx, day, event.Label)
		if err != nil {
			log.Warn().Err(err).Str("label", event.Label).Msg("failed to read trigger history")
		}
		if fired {
			metrics.SkippedEvents.WithLabelValues("already_fired").Inc()
			log.Info().Str("label", event.Label).Msg("already broadcast today, skipping")
			continue
		}

		deadline := event.Deadline()
		now := s.clock.Now()
		if !deadline.After(now) {
			s.skip(event, now, log)
			continue
		}

		s.publish(entity.Status{
			State:        entity.StateWaitingForEvent,
			CycleID:      cycle.ID,
			NextLabel:    event.Label,
			NextDeadline: deadline,
		})
		log.Info().Str("label", event.Label).Time("deadline", deadline).Msg("waiting for event")

		if err := s.clock.SleepUntil(ctx, deadline); err != nil {
			return err
		}

		s.notify(ctx, cycle, event, log)
	}

	return nil
}

// skip handles an event whose deadline is not in the future. Events whose
// table time already passed are silently dropped; an event still ahead whose
// negative offset put its deadline in the past is recorded as skipped.
func (s *Scheduler) skip(event entity.ScheduledEvent, now time.Time, log zerolog.Logger) {
	if !event.ClockTime.After(now) {
		metrics.SkippedEvents.WithLabelValues("past").Inc()
		log.Debug().Str("label", event.Label).Msg("event already passed")
		return
	}

	metrics.SkippedEvents.WithLabelValues("elapsed").Inc()
	log.Warn().Str("label", event.Label).Time("deadline", event.Deadline()).Msg("deadline elapsed before waiting, skipping")
	if err := s.eventLog.Skipped(event.Label, now.In(s.cfg.Location)); err != nil {
		log.Warn().Err(err).Msg("failed to write event log")
	}
}

func (s *Scheduler) notify(ctx context.Context, cycle *entity.CycleState, event entity.ScheduledEvent, log zerolog.Logger) {
	firedAt := s.clock.Now().In(s.cfg.Location)
	s.publish(entity.Status{
		State:     entity.StateNotifying,
		CycleID:   cycle.ID,
		NextLabel: event.Label,
	})
	metrics.Broadcasts.WithLabelValues(event.Label).Inc()

	delivered := s.broadcaster.Broadcast(ctx, event.Label, cycle.Recipients)

	if err := s.eventLog.Triggered(event.Label, firedAt); err != nil {
		log.Warn().Err(err).Str("label", event.Label).Msg("failed to write event log")
	}

	trigger := &entity.Trigger{
		CycleID:   cycle.ID,
		Day:       cycle.Today.Day(),
		Label:     event.Label,
		Deadline:  event.Deadline(),
		FiredAt:   firedAt,
		Delivered: delivered,
		Failed:    len(cycle.Recipients) - delivered,
	}
	if err := s.dm.Trigger().Create(ctx, trigger); err != nil {
		log.Warn().Err(err).Str("label", event.Label).Msg("failed to record trigger")
	}
}

func (s *Scheduler) rest(ctx context.Context, next time.Time) error {
	now := s.clock.Now()
	if !next.After(now) {
		next = nextMidnight(now, s.cfg.Location)
	}

	s.publish(entity.Status{State: entity.StateResting, NextDeadline: next})
	s.log.Info().Time("next_cycle", next).Msg("resting until next cycle")

	return s.clock.SleepUntil(ctx, next)
}

// fallbackRest picks the next cycle start when today's table is unusable:
// today's anchor if it parsed, else the previous anchor moved to today,
// else the next local midnight.
func (s *Scheduler) fallbackRest(table entity.TimeTable, day time.Time) time.Time {
	if anchor, ok := anchorFromTable(table, day, s.cfg.Offsets); ok {
		return nextCycleStart(anchor)
	}
	if !s.prevAnchor.IsZero() {
		prev := s.prevAnchor.In(s.cfg.Location)
		moved := time.Date(day.Year(), day.Month(), day.Day(), prev.Hour(), prev.Minute(), prev.Second(), 0, s.cfg.Location)
		return nextCycleStart(moved)
	}
	return nextMidnight(s.clock.Now(), s.cfg.Location)
}

func (s *Scheduler) fail(err error) {
	s.publish(entity.Status{State: entity.StateFailed, LastError: err.Error()})
	s.log.Error().Err(err).Msg("scheduler failed")
}

func (s *Scheduler) stop() {
	s.publish(entity.Status{State: entity.StateStopped})
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) publish(st entity.Status) {
	st.StartedAt = s.startedAt
	st.Recipients = s.recipients
	s.status.Store(&st)
	metrics.SetState(st.State)
	metrics.SetNextDeadline(st.NextDeadline)
}

// Status returns the latest published loop state. Safe for concurrent use.
func (s *Scheduler) Status() entity.Status {
	return *s.status.Load()
}

// Today returns the schedule of the current day, reusing the one the loop
// built when it is still current.
func (s *Scheduler) Today(ctx context.Context) (*entity.DaySchedule, error) {
	day := cycleDay(s.clock.Now().In(s.cfg.Location))
	if today := s.today.Load(); today != nil && today.Date.Equal(day) {
		return today, nil
	}

	table, err := s.provider.FetchToday(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch time table: %w", err)
	}

	return BuildDaySchedule(table, s.cfg.Location, day, s.cfg.Offsets)
}

// nextCycleStart is shortly before the anchor of the following day.
func nextCycleStart(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, 1).Add(-domain.NextCycleBuffer)
}

// cycleDay is the calendar day a cycle starting at now serves. A cycle that
// starts within NextCycleBuffer of midnight serves the following day.
func cycleDay(now time.Time) time.Time {
	return startOfDay(now.Add(domain.NextCycleBuffer), now.Location())
}

func nextMidnight(now time.Time, loc *time.Location) time.Time {
	return startOfDay(now, loc).AddDate(0, 0, 1)
}
