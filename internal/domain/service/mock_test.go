package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/adhan-bot/mocks"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockRecipientRepo *mocks.MockRecipientRepo
	mockTriggerRepo   *mocks.MockTriggerRepo
	mockSlackClient   *mocks.MockSlackClient
	mockNotifier      *mocks.MockNotifier
	mockTimeTable     *mocks.MockTimeTableProvider
	mockDirectory     *mocks.MockRecipientDirectory
	mockEventLog      *mocks.MockEventLog
	mockClock         *mocks.MockClock
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	recipientRepo := mocks.NewMockRecipientRepo(ctrl)
	dm.EXPECT().Recipient().Return(recipientRepo).AnyTimes()

	triggerRepo := mocks.NewMockTriggerRepo(ctrl)
	dm.EXPECT().Trigger().Return(triggerRepo).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockRecipientRepo: recipientRepo,
		mockTriggerRepo:   triggerRepo,
		mockSlackClient:   mocks.NewMockSlackClient(ctrl),
		mockNotifier:      mocks.NewMockNotifier(ctrl),
		mockTimeTable:     mocks.NewMockTimeTableProvider(ctrl),
		mockDirectory:     mocks.NewMockRecipientDirectory(ctrl),
		mockEventLog:      mocks.NewMockEventLog(ctrl),
		mockClock:         mocks.NewMockClock(ctrl),
	}

	return
}

var testLogger = zerolog.Nop()

// sameTime matches a time.Time argument by instant
func sameTime(want time.Time) gomock.Matcher {
	return gomock.Cond(func(got time.Time) bool { return got.Equal(want) })
}

// fakeClock jumps to the requested instant instead of waiting. When stop
// returns true for a wait, ctx is cancelled and the wait fails.
type fakeClock struct {
	now    time.Time
	sleeps []time.Time
	stop   func(t time.Time) bool
	cancel context.CancelFunc
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) SleepUntil(ctx context.Context, t time.Time) error {
	c.sleeps = append(c.sleeps, t)
	if c.stop != nil && c.stop(t) {
		c.cancel()
		return ctx.Err()
	}
	if t.After(c.now) {
		c.now = t
	}
	return ctx.Err()
}

// runUntil returns a context that is cancelled by the first wait reaching stopAt
func (c *fakeClock) runUntil(stopAt time.Time) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.stop = func(t time.Time) bool { return !t.Before(stopAt) }
	return ctx
}
