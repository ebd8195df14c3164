package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// arrivedAfter reports whether the event's local time of day is strictly
// later than the scheduled work start. Arriving exactly on time is not late.
func arrivedAfter(eventAt time.Time, workStart string) (bool, error) {
	startSec, err := parseTimeOfDay(workStart)
	if err != nil {
		return false, err
	}

	eventSec := eventAt.Hour()*3600 + eventAt.Minute()*60 + eventAt.Second()
	return eventSec > startSec, nil
}

// parseTimeOfDay converts "HH:MM:SS" (or "HH:MM", as Postgres time columns
// may render) into seconds since midnight.
func parseTimeOfDay(value string) (int, error) {
	raw := strings.TrimSpace(value)

	layout := "15:04:05"
	if len(raw) == len("15:04") {
		layout = "15:04"
	}

	parsed, err := time.Parse(layout, raw)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return parsed.Hour()*3600 + parsed.Minute()*60 + parsed.Second(), nil
}

// hoursBetween returns the span between the first entry and the last exit in
// hours, rounded to two decimals. Either bound missing means zero hours.
func hoursBetween(firstEntry, lastExit *time.Time) float64 {
	if firstEntry == nil || lastExit == nil {
		return 0
	}

	hours := lastExit.Sub(*firstEntry).Hours()
	return math.Round(hours*100) / 100
}
