package booking

import (
	"fmt"
	"time"

	"coworking/utils"
)

// Default opening hours, minutes of day.
const (
	DefaultOpenMinute  = 8 * 60
	DefaultCloseMinute = 22 * 60
)

// Duration floors, minutes.
const (
	MinBookingMinutes         = 60
	MinFlexibleBookingMinutes = 180
)

// Clock yields the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Settings holds the scheduling parameters of the engine.
type Settings struct {
	OpenMinute  int
	CloseMinute int
	Location    *time.Location
}

// DefaultSettings returns 08:00 to 22:00 in the local time zone.
func DefaultSettings() Settings {
	return Settings{
		OpenMinute:  DefaultOpenMinute,
		CloseMinute: DefaultCloseMinute,
		Location:    time.Local,
	}
}

// NewSettings builds Settings from configuration strings.
func NewSettings(timezone, open, close string) (Settings, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		loc = l
	}

	openMinute, err := utils.TimeToMinutes(open)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid business open time: %w", err)
	}
	closeMinute, err := utils.TimeToMinutes(close)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid business close time: %w", err)
	}
	if closeMinute <= openMinute {
		return Settings{}, fmt.Errorf("business close %s must be after open %s", close, open)
	}

	return Settings{OpenMinute: openMinute, CloseMinute: closeMinute, Location: loc}, nil
}

// today returns the calendar date and minute of day of now in the settings location.
func (s Settings) today(now time.Time) (string, int) {
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now.Format(utils.DateLayout), now.Hour()*60 + now.Minute()
}
