package eventlog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry is one "called" or "skipped" line
type Entry struct {
	Label   string
	At      time.Time
	Skipped bool
}

// Day is one banner-delimited block of the log
type Day struct {
	Status  string
	Since   time.Time
	Entries []Entry
}

// Called returns the labels that were broadcast, in log order.
func (d Day) Called() []string {
	var labels []string
	for _, e := range d.Entries {
		if !e.Skipped {
			labels = append(labels, e.Label)
		}
	}
	return labels
}

// Date is the calendar day the block covers. Banners carry the process
// start time, so the first entry dates the day when there is one.
func (d Day) Date() time.Time {
	at := d.Since
	if len(d.Entries) > 0 {
		at = d.Entries[0].At
	}
	return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
}

// Parse reads a log written by FileLog. Timestamps are interpreted in loc.
// Lines that are not part of the format are ignored.
func Parse(r io.Reader, loc *time.Location) ([]Day, error) {
	var (
		days    []Day
		current *Day
		lineNo  int
	)

	flush := func() {
		if current != nil {
			days = append(days, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case line == separator:
			flush()
			current = &Day{}

		case strings.HasPrefix(line, entryPrefix):
			entry, err := parseEntry(line, loc)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if current == nil {
				current = &Day{}
			}
			current.Entries = append(current.Entries, entry)

		case strings.Contains(line, " since ") && strings.HasSuffix(line, bannerSuffix):
			idx := strings.LastIndex(line, " since ")
			since, err := time.ParseInLocation(TimeLayout, strings.TrimSuffix(line[idx+len(" since "):], bannerSuffix), loc)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid banner time: %w", lineNo, err)
			}
			if current == nil || current.Status != "" || len(current.Entries) > 0 {
				flush()
				current = &Day{}
			}
			current.Status = line[:idx]
			current.Since = since
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event log: %w", err)
	}
	flush()

	return days, nil
}

func parseEntry(line string, loc *time.Location) (Entry, error) {
	rest := strings.TrimSuffix(strings.TrimPrefix(line, entryPrefix), entrySuffix)

	var entry Entry
	var stamp string
	if label, at, ok := strings.Cut(rest, calledVerb); ok {
		entry.Label, stamp = label, at
	} else if label, at, ok := strings.Cut(rest, skippedVerb); ok {
		entry.Label, stamp, entry.Skipped = label, at, true
	} else {
		return Entry{}, fmt.Errorf("unrecognized entry %q", line)
	}

	at, err := time.ParseInLocation(TimeLayout, stamp, loc)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid entry time: %w", err)
	}
	entry.At = at

	return entry, nil
}
