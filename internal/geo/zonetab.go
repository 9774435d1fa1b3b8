// Package geo resolves the coordinates of an IANA timezone from the
// zone1970.tab / zone.tab tables shipped with the system zoneinfo database.
package geo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

var ErrZoneNotFound = errors.New("timezone not found in zone table")

// tables are tried in order; zone1970.tab is the maintained one
var tables = []string{"zone1970.tab", "zone.tab"}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

type Resolver struct {
	fs  afero.Fs
	dir string
}

func NewResolver(fs afero.Fs, zoneinfoDir string) *Resolver {
	return &Resolver{fs: fs, dir: zoneinfoDir}
}

// Resolve returns the representative coordinates of the timezone
func (r *Resolver) Resolve(timezone string) (Coordinates, error) {
	var lastErr error
	for _, name := range tables {
		f, err := r.fs.Open(filepath.Join(r.dir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				lastErr = err
				continue
			}
			return Coordinates{}, fmt.Errorf("failed to open %s: %w", name, err)
		}

		coords, err := lookup(f, timezone)
		f.Close()
		if errors.Is(err, ErrZoneNotFound) {
			lastErr = err
			continue
		}
		if err != nil {
			return Coordinates{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return coords, nil
	}

	return Coordinates{}, fmt.Errorf("resolve %s: %w", timezone, lastErr)
}

// lookup scans a tab separated zone table: country, coordinates, TZ, comments
func lookup(r io.Reader, timezone string) (Coordinates, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 || fields[2] != timezone {
			continue
		}

		return ParseISO6709(fields[1])
	}

	if err := scanner.Err(); err != nil {
		return Coordinates{}, err
	}
	return Coordinates{}, ErrZoneNotFound
}

// ParseISO6709 parses the compact sign-degrees-minutes[-seconds] form used by
// the zone tables, e.g. "+4043-07400" or "+404251-0740023".
func ParseISO6709(s string) (Coordinates, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q", s)
	}

	split := strings.IndexAny(s[1:], "+-")
	if split < 0 {
		return Coordinates{}, fmt.Errorf("invalid coordinates %q", s)
	}
	split++

	lat, err := parseDegrees(s[:split], 2)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid latitude in %q: %w", s, err)
	}
	lon, err := parseDegrees(s[split:], 3)
	if err != nil {
		return Coordinates{}, fmt.Errorf("invalid longitude in %q: %w", s, err)
	}

	return Coordinates{Latitude: lat, Longitude: lon}, nil
}

func parseDegrees(s string, degDigits int) (float64, error) {
	sign := 1.0
	if s[0] == '-' {
		sign = -1
	}
	digits := s[1:]

	if len(digits) != degDigits+2 && len(digits) != degDigits+4 {
		return 0, fmt.Errorf("unexpected length %d", len(digits))
	}

	deg, err := strconv.Atoi(digits[:degDigits])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(digits[degDigits : degDigits+2])
	if err != nil {
		return 0, err
	}
	sec := 0
	if len(digits) == degDigits+4 {
		if sec, err = strconv.Atoi(digits[degDigits+2:]); err != nil {
			return 0, err
		}
	}

	return sign * (float64(deg) + float64(minutes)/60 + float64(sec)/3600), nil
}
