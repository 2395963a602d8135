// Package datekey derives canonical YYYY-MM-DD calendar day keys.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in Location (time.Local when nil).
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// LoadLocation resolves an IANA zone name. Empty and "Local" mean the system zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

func Today(c Clock) string {
	return FromTime(c.Now())
}

// FromTime formats the calendar day of t in t's own location.
func FromTime(t time.Time) string {
	return format(t.Year(), int(t.Month()), t.Day())
}

// Previous returns the key of the day before key. Malformed keys are returned unchanged.
func Previous(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return key
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return key
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return key
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return key
	}
	prev := time.Date(y, time.Month(m), d-1, 12, 0, 0, 0, time.UTC)
	return FromTime(prev)
}

// Valid reports whether key is a real calendar day in YYYY-MM-DD form.
func Valid(key string) bool {
	_, err := time.Parse(Layout, key)
	return err == nil
}

func format(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
