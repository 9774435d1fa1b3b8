package entity

import "time"

// Timing is one labelled wall-clock time of a time table, e.g. Fajr 05:12
type Timing struct {
	Label string
	Clock string // HH:MM
}

// TimeTable is the ordered list of timings published for one day
type TimeTable []Timing

// ScheduledEvent is one daily event anchored to a calendar day
type ScheduledEvent struct {
	Label         string
	ClockTime     time.Time
	OffsetMinutes int
	Actionable    bool
}

// Deadline is the instant the broadcast for this event should fire
func (e ScheduledEvent) Deadline() time.Time {
	return e.ClockTime.Add(time.Duration(e.OffsetMinutes) * time.Minute)
}

// DaySchedule holds the events of one calendar day in table order.
// It is built once per cycle and never modified afterwards.
type DaySchedule struct {
	Date     time.Time // midnight of the day in Location
	Location *time.Location
	Events   []ScheduledEvent
}

// Actionable returns the events that trigger a broadcast, in table order.
func (d *DaySchedule) Actionable() []ScheduledEvent {
	var events []ScheduledEvent
	for _, e := range d.Events {
		if e.Actionable {
			events = append(events, e)
		}
	}
	return events
}

// Anchor returns the first actionable event of the day.
func (d *DaySchedule) Anchor() (ScheduledEvent, bool) {
	for _, e := range d.Events {
		if e.Actionable {
			return e, true
		}
	}
	return ScheduledEvent{}, false
}

// Day formats the schedule date as YYYY-MM-DD
func (d *DaySchedule) Day() string {
	return d.Date.Format(DayLayout)
}

// DayLayout is the layout used to key trigger history by day
const DayLayout = "2006-01-02"
