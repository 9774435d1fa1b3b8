package contract

import (
	"context"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=service.go -destination=../../../mocks/service.go

// TimeTableProvider fetches the time table of a day for the configured location
type TimeTableProvider interface {
	FetchToday(ctx context.Context, day time.Time) (entity.TimeTable, error)
}

// RecipientDirectory resolves the current recipient snapshot
type RecipientDirectory interface {
	ListRecipients(ctx context.Context) ([]entity.Recipient, error)
}

// EventLog is the append-only, human readable record of each day
type EventLog interface {
	Banner(status string, since time.Time) error
	Triggered(label string, at time.Time) error
	Skipped(label string, at time.Time) error
	EndOfDay() error
}

// Clock abstracts wall-clock reads and interruptible waits
type Clock interface {
	Now() time.Time
	// SleepUntil blocks until t or until ctx is done. It returns ctx.Err()
	// when interrupted.
	SleepUntil(ctx context.Context, t time.Time) error
}

// MemberService manages who receives the reminders
type MemberService interface {
	Join(ctx context.Context, slackUserID string) (*entity.Recipient, bool, error)
	Leave(ctx context.Context, slackUserID string) error
	List(ctx context.Context) ([]*entity.Recipient, error)
}

// StatusService reports what the scheduler is doing
type StatusService interface {
	Status() entity.Status
	Today(ctx context.Context) (*entity.DaySchedule, error)
}
