package entity

import "time"

// State is a scheduler loop state
type State string

const (
	StateFetching        State = "FETCHING"
	StateWaitingForEvent State = "WAITING_FOR_EVENT"
	StateNotifying       State = "NOTIFYING"
	StateResting         State = "RESTING"
	StateFailed          State = "FAILED"
	StateStopped         State = "STOPPED"
)

// Status is a snapshot of the scheduler loop for status reporting
type Status struct {
	State        State
	StartedAt    time.Time
	CycleID      string
	NextLabel    string
	NextDeadline time.Time
	Recipients   int
	LastError    string
}

// CycleState is the state of one loop iteration. It is rebuilt at the top
// of every cycle; only StartedAt carries over between days.
type CycleState struct {
	ID         string
	StartedAt  time.Time // process start
	Day        time.Time // midnight of the served day in the target zone
	Today      *DaySchedule
	Recipients []Recipient
}
