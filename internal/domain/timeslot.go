package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClockTime converts a 12-hour clock string ("H:MM AM" / "H:MM PM",
// hour 1-12) into a minute-of-day in the range [0, 1439].
// 12 AM maps to hour 0, 12 PM stays 12, other PM hours add 12.
func ParseClockTime(s string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: clock time %q", ErrInvalidInput, s)
	}
	hm := strings.SplitN(fields[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("%w: clock time %q", ErrInvalidInput, s)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidInput, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidInput, s)
	}
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, fmt.Errorf("%w: meridiem in %q", ErrInvalidInput, s)
	}
	return hour*60 + minute, nil
}

// TimeSlot is the comparable key for collision detection: a calendar date
// (formatted "2006-01-02") plus a normalized minute-of-day.
type TimeSlot struct {
	Date   string `json:"date"`
	Minute int    `json:"minute"`
}

// NewTimeSlot builds a TimeSlot from a date string and a 12-hour start time.
func NewTimeSlot(date, startTime string) (TimeSlot, error) {
	minute, err := ParseClockTime(startTime)
	if err != nil {
		return TimeSlot{}, err
	}
	return TimeSlot{Date: date, Minute: minute}, nil
}
