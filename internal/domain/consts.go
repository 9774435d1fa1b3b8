package domain

import "time"

// Prayer labels as published by the time table provider.
const (
	Fajr    = "Fajr"
	Sunrise = "Sunrise"
	Dhuhr   = "Dhuhr"
	Asr     = "Asr"
	Sunset  = "Sunset"
	Maghrib = "Maghrib"
	Isha    = "Isha"
)

// Labels is the fixed label set in chronological order
var Labels = []string{Fajr, Sunrise, Dhuhr, Asr, Sunset, Maghrib, Isha}

// informationalLabels are published with the table but never trigger a broadcast
var informationalLabels = map[string]bool{
	Sunrise: true,
	Sunset:  true,
}

// IsActionable reports whether a label triggers a broadcast.
func IsActionable(label string) bool {
	return !informationalLabels[label]
}

// ActionableLabels returns the labels that trigger a broadcast, in chronological order.
func ActionableLabels() []string {
	labels := make([]string, 0, len(Labels))
	for _, label := range Labels {
		if IsActionable(label) {
			labels = append(labels, label)
		}
	}
	return labels
}

const (
	StartupText        = "Welcome! AdhanBot is up and running!"
	RunningStatus      = "AdhanBot has been up and running"
	ReminderText       = "...حي على الصلاة...حي على الفلاح"
	ReminderAttachment = "The Success you search for calls you FIVE times a day!"
)

// NextCycleBuffer is how long before tomorrow's anchor the rest period ends,
// leaving time to re-fetch recipients and the time table. anchor + 1 day -
// buffer equals the historic anchor + 84600s on days without a DST change.
const NextCycleBuffer = 30 * time.Minute

// DefaultFetchRetryDelay is the wait before retrying a failed fetch
const DefaultFetchRetryDelay = 5 * time.Minute

// DefaultMethod is the Aladhan calculation method (ISNA) used when none is configured
const DefaultMethod = 2
