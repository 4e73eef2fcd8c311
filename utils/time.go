package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the exclusive upper bound of a minute-of-day value.
const MinutesPerDay = 24 * 60

// DateLayout is the storage format of calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidClock   = errors.New("time must be in HH:MM format")
	ErrMinutesOutside = errors.New("minutes out of range [0, 1439]")
)

// TimeToMinutes parses an "HH:MM" wall-clock string into a minute of day.
func TimeToMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return h*60 + m, nil
}

// MinutesToTime formats a minute of day as zero-padded "HH:MM".
func MinutesToTime(minutes int) (string, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrMinutesOutside, minutes)
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
}

// ClockString is MinutesToTime for values already validated on write.
// Out-of-range input yields an empty string.
func ClockString(minutes int) string {
	s, err := MinutesToTime(minutes)
	if err != nil {
		return ""
	}
	return s
}
