package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(m allMocks, clock *fakeClock, offsets map[string]int) *Scheduler {
	return NewScheduler(
		SchedulerConfig{Location: cairo, Offsets: offsets, FetchRetryDelay: 5 * time.Minute},
		m.mockTimeTable,
		m.mockDirectory,
		NewBroadcaster(m.mockNotifier, 0, testLogger),
		m.mockEventLog,
		m.mockDataManager,
		clock,
		testLogger,
	)
}

func assertSleeps(t *testing.T, want []time.Time, got []time.Time) {
	t.Helper()
	require.Len(t, got, len(want), "got waits %v", got)
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "wait %d: want %s, got %s", i, want[i], got[i])
	}
}

// expectDay sets up one successful fetch of table for day
func expectDay(m allMocks, day time.Time, table entity.TimeTable, recipients []entity.Recipient) {
	m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(recipients, nil)
	m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), sameTime(day)).Return(table, nil)
}

func TestScheduler_Run_Scenarios(t *testing.T) {
	recipients := testRecipients()[:2]

	tests := []struct {
		name       string
		now        time.Time
		offsets    map[string]int
		wantFired  []string
		wantFireAt []time.Time
		wantSleeps []time.Time
	}{
		{
			name:       "Should fire every actionable event from before dawn",
			now:        at(19, 4, 0),
			wantFired:  []string{domain.Fajr, domain.Dhuhr, domain.Asr, domain.Maghrib, domain.Isha},
			wantFireAt: []time.Time{at(19, 5, 0), at(19, 12, 15), at(19, 15, 45), at(19, 18, 30), at(19, 20, 0)},
			wantSleeps: []time.Time{at(19, 5, 0), at(19, 12, 15), at(19, 15, 45), at(19, 18, 30), at(19, 20, 0), at(20, 4, 30)},
		},
		{
			name:       "Should skip events already past at cycle start",
			now:        at(19, 13, 0),
			wantFired:  []string{domain.Asr, domain.Maghrib, domain.Isha},
			wantFireAt: []time.Time{at(19, 15, 45), at(19, 18, 30), at(19, 20, 0)},
			wantSleeps: []time.Time{at(19, 15, 45), at(19, 18, 30), at(19, 20, 0), at(20, 4, 30)},
		},
		{
			name:       "Should fire at the deadline including the offset",
			now:        at(19, 4, 0),
			offsets:    map[string]int{domain.Fajr: 10},
			wantFired:  []string{domain.Fajr, domain.Dhuhr, domain.Asr, domain.Maghrib, domain.Isha},
			wantFireAt: []time.Time{at(19, 5, 10), at(19, 12, 15), at(19, 15, 45), at(19, 18, 30), at(19, 20, 0)},
			wantSleeps: []time.Time{at(19, 5, 10), at(19, 12, 15), at(19, 15, 45), at(19, 18, 30), at(19, 20, 0), at(20, 4, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			clock := newFakeClock(tt.now)
			ctx := clock.runUntil(at(20, 4, 30))

			expectDay(m, at(19, 0, 0), testTable(), recipients)
			m.mockEventLog.EXPECT().Banner(domain.RunningStatus, sameTime(tt.now)).Return(nil)
			m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), "2026-10-19", gomock.Any()).Return(false, nil).AnyTimes()
			m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(len(tt.wantFired) * len(recipients))

			var calls []any
			for i, label := range tt.wantFired {
				calls = append(calls, m.mockEventLog.EXPECT().Triggered(label, sameTime(tt.wantFireAt[i])).Return(nil))
			}
			gomock.InOrder(calls...)

			var triggers []*entity.Trigger
			m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tr *entity.Trigger) error {
				triggers = append(triggers, tr)
				return nil
			}).Times(len(tt.wantFired))
			m.mockEventLog.EXPECT().EndOfDay().Return(nil)

			s := newTestScheduler(m, clock, tt.offsets)
			err := s.Run(ctx)

			require.NoError(t, err)
			assertSleeps(t, tt.wantSleeps, clock.sleeps)

			require.Len(t, triggers, len(tt.wantFired))
			for i, tr := range triggers {
				assert.Equal(t, tt.wantFired[i], tr.Label)
				assert.Equal(t, "2026-10-19", tr.Day)
				assert.Equal(t, 2, tr.Delivered)
				assert.Equal(t, 0, tr.Failed)
				assert.NotEmpty(t, tr.CycleID)
				assert.True(t, tt.wantFireAt[i].Equal(tr.FiredAt))
			}

			status := s.Status()
			assert.Equal(t, entity.StateStopped, status.State)
			assert.True(t, tt.now.Equal(status.StartedAt))
		})
	}
}

func TestScheduler_Run_NextDay(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := newFakeClock(at(19, 19, 0))
	ctx := clock.runUntil(at(30, 0, 0))

	gomock.InOrder(
		m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(testRecipients()[:1], nil),
		m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(testRecipients()[:1], nil),
	)
	gomock.InOrder(
		m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), sameTime(at(19, 0, 0))).Return(testTable(), nil),
		m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), sameTime(at(20, 0, 0))).
			Return(nil, fmt.Errorf("%w: aladhan returned 400 Bad Request", domain.ErrPermanent)),
	)

	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().Triggered(domain.Isha, sameTime(at(19, 20, 0))).Return(nil)
	m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().EndOfDay().Return(nil)

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermanent)
	assertSleeps(t, []time.Time{at(19, 20, 0), at(20, 4, 30)}, clock.sleeps)

	status := s.Status()
	assert.Equal(t, entity.StateFailed, status.State)
	assert.Contains(t, status.LastError, "400 Bad Request")
}

func TestScheduler_Run_FetchRetry(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := newFakeClock(at(19, 21, 0))
	ctx := clock.runUntil(at(20, 4, 30))

	gomock.InOrder(
		m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(nil, fmt.Errorf("%w: slack timeout", domain.ErrFetch)),
		m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(testRecipients(), nil).Times(2),
	)
	gomock.InOrder(
		m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused")),
		m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), sameTime(at(19, 0, 0))).Return(testTable(), nil),
	)

	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	m.mockEventLog.EXPECT().EndOfDay().Return(nil)

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.NoError(t, err)
	assertSleeps(t, []time.Time{at(19, 21, 5), at(19, 21, 10), at(20, 4, 30)}, clock.sleeps)
}

func TestScheduler_Run_PermanentFailure(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(30, 0, 0))

	m.mockDirectory.EXPECT().ListRecipients(gomock.Any()).Return(nil, fmt.Errorf("%w: invalid_auth", domain.ErrPermanent))

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPermanent)
	assert.Empty(t, clock.sleeps)
	assert.Equal(t, entity.StateFailed, s.Status().State)
}

func TestScheduler_Run_NegativeOffsetElapsed(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	table := entity.TimeTable{
		{Label: domain.Fajr, Clock: "05:00"},
		{Label: domain.Dhuhr, Clock: "12:15"},
	}

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(20, 3, 0))

	expectDay(m, at(19, 0, 0), table, testRecipients()[:1])
	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	m.mockEventLog.EXPECT().Skipped(domain.Fajr, sameTime(at(19, 4, 0))).Return(nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().Triggered(domain.Dhuhr, sameTime(at(19, 12, 15))).Return(nil)
	m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().EndOfDay().Return(nil)

	s := newTestScheduler(m, clock, map[string]int{domain.Fajr: -90})
	err := s.Run(ctx)

	require.NoError(t, err)
	assertSleeps(t, []time.Time{at(19, 12, 15), at(20, 3, 0)}, clock.sleeps)
}

func TestScheduler_Run_AlreadyFired(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	table := entity.TimeTable{
		{Label: domain.Fajr, Clock: "05:00"},
		{Label: domain.Dhuhr, Clock: "12:15"},
	}

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(20, 4, 30))

	expectDay(m, at(19, 0, 0), table, testRecipients()[:1])
	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), "2026-10-19", domain.Fajr).Return(true, nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), "2026-10-19", domain.Dhuhr).Return(false, nil)
	m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().Triggered(domain.Dhuhr, gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().EndOfDay().Return(nil)

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.NoError(t, err)
	assertSleeps(t, []time.Time{at(19, 12, 15), at(20, 4, 30)}, clock.sleeps)
}

func TestScheduler_Run_SideEffectFailuresDoNotAbort(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	table := entity.TimeTable{{Label: domain.Fajr, Clock: "05:00"}}

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(20, 4, 30))

	expectDay(m, at(19, 0, 0), table, testRecipients()[:2])
	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database is locked"))
	gomock.InOrder(
		m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("channel_not_found")),
		m.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil),
	)
	m.mockEventLog.EXPECT().Triggered(domain.Fajr, gomock.Any()).Return(errors.New("read-only file system"))

	var trigger *entity.Trigger
	m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tr *entity.Trigger) error {
		trigger = tr
		return errors.New("database is locked")
	})
	m.mockEventLog.EXPECT().EndOfDay().Return(errors.New("read-only file system"))

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.NoError(t, err)
	require.NotNil(t, trigger)
	assert.Equal(t, 1, trigger.Delivered)
	assert.Equal(t, 1, trigger.Failed)
	assertSleeps(t, []time.Time{at(19, 5, 0), at(20, 4, 30)}, clock.sleeps)
}

func TestScheduler_Run_UnusableTable(t *testing.T) {
	tests := []struct {
		name       string
		table      entity.TimeTable
		wantSleeps []time.Time
	}{
		{
			name: "Should rest until before tomorrow's anchor when it parsed",
			table: entity.TimeTable{
				{Label: domain.Fajr, Clock: "05:00"},
				{Label: domain.Dhuhr, Clock: "??"},
			},
			wantSleeps: []time.Time{at(20, 4, 30)},
		},
		{
			name: "Should rest until midnight without any anchor",
			table: entity.TimeTable{
				{Label: domain.Fajr, Clock: ""},
				{Label: domain.Dhuhr, Clock: "12:15"},
			},
			wantSleeps: []time.Time{at(20, 0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			clock := newFakeClock(at(19, 4, 0))
			ctx := clock.runUntil(tt.wantSleeps[len(tt.wantSleeps)-1])

			expectDay(m, at(19, 0, 0), tt.table, testRecipients())

			s := newTestScheduler(m, clock, nil)
			err := s.Run(ctx)

			require.NoError(t, err)
			assertSleeps(t, tt.wantSleeps, clock.sleeps)
		})
	}
}

func TestScheduler_Run_UnusableTableUsesPreviousAnchor(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(21, 4, 30))

	expectDay(m, at(19, 0, 0), entity.TimeTable{{Label: domain.Fajr, Clock: "05:00"}}, nil)
	expectDay(m, at(20, 0, 0), entity.TimeTable{{Label: domain.Fajr, Clock: "--:--"}}, nil)

	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	m.mockEventLog.EXPECT().Triggered(domain.Fajr, gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.mockEventLog.EXPECT().EndOfDay().Return(nil)

	s := newTestScheduler(m, clock, nil)
	err := s.Run(ctx)

	require.NoError(t, err)
	assertSleeps(t, []time.Time{at(19, 5, 0), at(20, 4, 30), at(21, 4, 30)}, clock.sleeps)
}

func TestScheduler_Run_StopWhileWaiting(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	expectDay(m, at(19, 0, 0), testTable(), testRecipients())
	m.mockEventLog.EXPECT().Banner(gomock.Any(), gomock.Any()).Return(nil)
	m.mockTriggerRepo.EXPECT().HasFired(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	clock := newFakeClock(at(19, 4, 0))
	ctx := clock.runUntil(at(19, 5, 0))

	s := newTestScheduler(m, clock, nil)

	var waiting entity.Status
	stop := clock.stop
	clock.stop = func(t time.Time) bool {
		waiting = s.Status()
		return stop(t)
	}

	err := s.Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.StateWaitingForEvent, waiting.State)
	assert.Equal(t, domain.Fajr, waiting.NextLabel)
	assert.True(t, at(19, 5, 0).Equal(waiting.NextDeadline))
	assert.Equal(t, 3, waiting.Recipients)
	assert.NotEmpty(t, waiting.CycleID)

	assert.Equal(t, entity.StateStopped, s.Status().State)

	// the schedule built by the loop is served without another fetch
	today, err := s.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", today.Day())
	assert.Len(t, today.Events, 7)
}

func TestScheduler_Today(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	clock := newFakeClock(at(19, 10, 0))
	s := newTestScheduler(m, clock, map[string]int{domain.Asr: 5})

	m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), sameTime(at(19, 0, 0))).Return(testTable(), nil)

	today, err := s.Today(context.Background())
	require.NoError(t, err)
	require.Len(t, today.Events, 7)
	assert.True(t, at(19, 15, 50).Equal(today.Events[3].Deadline()))

	m.mockTimeTable.EXPECT().FetchToday(gomock.Any(), gomock.Any()).Return(nil, domain.ErrFetch)

	_, err = s.Today(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestScheduler_StatusBeforeRun(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTestScheduler(m, newFakeClock(at(19, 4, 0)), nil)

	assert.Equal(t, entity.StateStopped, s.Status().State)
}
