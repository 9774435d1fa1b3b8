package service

import (
	"context"
	"time"
)

type realClock struct{}

// NewClock returns the wall clock used in production.
func NewClock() *realClock {
	return &realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

// SleepUntil waits on a timer so a cancelled ctx cuts the wait short.
func (realClock) SleepUntil(ctx context.Context, t time.Time) error {
	wait := time.Until(t)
	if wait <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
