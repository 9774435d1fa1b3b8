package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
)

// BuildDaySchedule turns a raw time table into the events of day in loc.
// Events keep the table order. offsets maps a label to its signed minute
// offset; missing labels get 0.
func BuildDaySchedule(table entity.TimeTable, loc *time.Location, day time.Time, offsets map[string]int) (*entity.DaySchedule, error) {
	date := startOfDay(day, loc)

	events := make([]entity.ScheduledEvent, 0, len(table))
	for _, timing := range table {
		clock, err := resolveClock(timing.Clock, date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q: %v", domain.ErrScheduleParse, timing.Label, timing.Clock, err)
		}

		events = append(events, entity.ScheduledEvent{
			Label:         timing.Label,
			ClockTime:     clock,
			OffsetMinutes: offsets[timing.Label],
			Actionable:    domain.IsActionable(timing.Label),
		})
	}

	return &entity.DaySchedule{
		Date:     date,
		Location: loc,
		Events:   events,
	}, nil
}

// resolveClock parses "HH:MM" (ignoring a trailing annotation such as
// " (CET)") and anchors it to date.
func resolveClock(s string, date time.Time) (time.Time, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return time.Time{}, fmt.Errorf("empty time")
	}

	t, err := time.Parse("15:04", fields[0])
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// anchorFromTable returns the resolved time of the first actionable entry,
// if that entry parses. Used when the rest of the table is unusable.
func anchorFromTable(table entity.TimeTable, date time.Time, offsets map[string]int) (time.Time, bool) {
	for _, timing := range table {
		if !domain.IsActionable(timing.Label) {
			continue
		}
		clock, err := resolveClock(timing.Clock, date)
		if err != nil {
			return time.Time{}, false
		}
		return anchorTime(entity.ScheduledEvent{ClockTime: clock, OffsetMinutes: offsets[timing.Label]}), true
	}
	return time.Time{}, false
}

// anchorTime is the earlier of the event time and its deadline, so the rest
// period never ends after tomorrow's deadline when the offset is negative.
func anchorTime(e entity.ScheduledEvent) time.Time {
	if d := e.Deadline(); d.Before(e.ClockTime) {
		return d
	}
	return e.ClockTime
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
