// Package reminder holds the medication reminder schedule: a 12-hour time
// formatter and a deduplicated set of selected times.
package reminder

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTimes is the preset schedule offered before the user adds any
// custom time. Each entry toggles independently.
var DefaultTimes = []string{"10:00 AM", "10:35 AM", "01:45 PM", "03:45 PM"}

// FormatTime converts a 24-hour "HH:MM" value into "H:MM AM|PM".
// Hour 0 becomes 12 AM and hour 12 stays 12 PM.
func FormatTime(value string) (string, error) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", value)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", value)
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || len(minutePart) != 2 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", value)
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%s %s", displayHour, minutePart, period), nil
}

// Schedule is an ordered, deduplicated set of formatted reminder times.
type Schedule struct {
	times []string
	seen  map[string]struct{}
}

func NewSchedule() *Schedule {
	return &Schedule{seen: make(map[string]struct{})}
}

// Add formats a 24-hour time and inserts it. Re-adding an already present
// time leaves the schedule unchanged.
func (s *Schedule) Add(value string) error {
	formatted, err := FormatTime(value)
	if err != nil {
		return err
	}
	s.AddFormatted(formatted)
	return nil
}

// AddFormatted inserts an already formatted time, ignoring duplicates.
func (s *Schedule) AddFormatted(formatted string) {
	if _, ok := s.seen[formatted]; ok {
		return
	}
	s.seen[formatted] = struct{}{}
	s.times = append(s.times, formatted)
}

// Toggle flips membership of a formatted time, for the preset buttons.
func (s *Schedule) Toggle(formatted string) {
	if _, ok := s.seen[formatted]; !ok {
		s.AddFormatted(formatted)
		return
	}
	delete(s.seen, formatted)
	for i, t := range s.times {
		if t == formatted {
			s.times = append(s.times[:i], s.times[i+1:]...)
			break
		}
	}
}

func (s *Schedule) Contains(formatted string) bool {
	_, ok := s.seen[formatted]
	return ok
}

// Times returns the selected times in insertion order.
func (s *Schedule) Times() []string {
	out := make([]string, len(s.times))
	copy(out, s.times)
	return out
}

func (s *Schedule) Len() int {
	return len(s.times)
}
