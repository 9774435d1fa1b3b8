package entity

import "time"

// Trigger records a broadcast that fired for one event of one day
type Trigger struct {
	ID        int64
	CycleID   string
	Day       string // YYYY-MM-DD in the target timezone
	Label     string
	Deadline  time.Time
	FiredAt   time.Time
	Delivered int
	Failed    int
}
