package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Clock is a time of day in minutes since local midnight, in [0, 1439].
// The schedule has no cross-midnight flights, so a Clock always refers to
// the same calendar day.
type Clock int

const MinutesPerDay = 24 * 60

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in time %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("hour or minute out of range in %q", s)
	}
	return Clock(hour*60 + minute), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// UnmarshalCSV implements the gocsv field unmarshaller.
func (c *Clock) UnmarshalCSV(field string) error {
	parsed, err := ParseClock(field)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalCSV implements the gocsv field marshaller.
func (c Clock) MarshalCSV() (string, error) {
	return c.String(), nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FormatMinutes renders a minute count as "XhYm", e.g. 150 -> "2h30m".
// Used for itinerary durations rather than times of day.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
