// Package eventlog writes and reads the append-only text record of each day.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// TimeLayout is the timestamp format used on every line
const TimeLayout = "Mon, 02 Jan 2006 15:04:05"

const separator = "*****************************************************************"

const (
	bannerSuffix = "!"
	entryPrefix  = "Adhan for "
	calledVerb   = " was called on "
	skippedVerb  = " was skipped on "
	entrySuffix  = "."
)

// FileLog appends lines to a single file. The file is opened for every
// write so that external rotation (logrotate, manual moves) is picked up.
type FileLog struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

func New(fs afero.Fs, path string) *FileLog {
	return &FileLog{fs: fs, path: path}
}

// Banner starts the block of a new day.
func (l *FileLog) Banner(status string, since time.Time) error {
	return l.write(separator, status+" since "+since.Format(TimeLayout)+bannerSuffix)
}

// Triggered records that the broadcast for label fired at at.
func (l *FileLog) Triggered(label string, at time.Time) error {
	return l.write(entryPrefix + label + calledVerb + at.Format(TimeLayout) + entrySuffix)
}

// Skipped records that the deadline for label had already passed at at.
func (l *FileLog) Skipped(label string, at time.Time) error {
	return l.write(entryPrefix + label + skippedVerb + at.Format(TimeLayout) + entrySuffix)
}

// EndOfDay closes the block of the current day with a blank line.
func (l *FileLog) EndOfDay() error {
	return l.write("")
}

func (l *FileLog) write(lines ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.fs.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create event log directory: %w", err)
	}

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open event log %s: %w", l.path, err)
	}

	_, err = f.Write([]byte(strings.Join(lines, "\n") + "\n"))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write event log %s: %w", l.path, err)
	}

	return nil
}
