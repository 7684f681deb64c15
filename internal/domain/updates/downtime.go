package updates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Window is a downtime period during which updates must not be enabled.
// Boundaries are calendar days, both inclusive.
type Window struct {
	// Start is the first day of the downtime.
	Start time.Time
	// End is the last day of the downtime.
	End time.Time
	// Raw is the original configuration string, kept for log messages.
	Raw string
}

// ErrInvalidWindow is returned when a configured downtime string cannot be parsed.
var ErrInvalidWindow = errors.New("invalid downtime window")

// ParseWindow parses a downtime string of the form "DD.MM.YYYY - DD.MM.YYYY".
// An empty end date ("DD.MM.YYYY -") means a single-day window. Years may be
// left out on BOTH endpoints ("DD.MM. - DD.MM."), placing the window relative
// to the current year and rolling the end into the next year when it precedes
// the start. Mixing dated and undated endpoints is an error, not a guess.
func ParseWindow(raw string, today time.Time) (Window, error) {
	startRaw, endRaw, found := strings.Cut(raw, "-")
	if !found {
		return Window{}, fmt.Errorf("%w: %q has no range separator", ErrInvalidWindow, raw)
	}

	if strings.TrimSpace(endRaw) == "" {
		endRaw = startRaw
	}

	start, startHasYear, err := parseEndpoint(startRaw, today)
	if err != nil {
		return Window{}, err
	}

	end, endHasYear, err := parseEndpoint(endRaw, today)
	if err != nil {
		return Window{}, err
	}

	if startHasYear != endHasYear {
		return Window{}, fmt.Errorf("%w: %q mixes dated and undated endpoints", ErrInvalidWindow, raw)
	}

	if end.Before(start) {
		// An undated window ending "before" its start spans the new year.
		if startHasYear {
			return Window{}, fmt.Errorf("%w: %q ends before it starts", ErrInvalidWindow, raw)
		}

		end = end.AddDate(1, 0, 0)
	}

	return Window{
		Start: start,
		End:   end,
		Raw:   strings.TrimSpace(raw),
	}, nil
}

// ParseWindows parses every configured downtime string.
func ParseWindows(raw []string, today time.Time) ([]Window, error) {
	windows := make([]Window, 0, len(raw))

	for _, s := range raw {
		window, err := ParseWindow(s, today)
		if err != nil {
			return nil, err
		}

		windows = append(windows, window)
	}

	return windows, nil
}

// ActiveWindow returns the first window containing the given day.
func ActiveWindow(windows []Window, day time.Time) (Window, bool) {
	for _, window := range windows {
		if window.Contains(day) {
			return window, true
		}
	}

	return Window{}, false
}

// Contains reports whether the day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	d := truncateToDay(day)

	return !d.Before(truncateToDay(w.Start)) && !d.After(truncateToDay(w.End))
}

// parseEndpoint parses one "DD.MM.YYYY" endpoint. The year part may be
// missing or empty; the returned flag tells whether it was present.
func parseEndpoint(raw string, today time.Time) (time.Time, bool, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var (
		yearRaw string
		hasYear bool
	)

	switch len(parts) {
	case 2:
		// "DD.MM" without a trailing dot.
	case 3:
		yearRaw = parts[2]
		hasYear = yearRaw != ""
	default:
		return time.Time{}, false, fmt.Errorf("%w: bad date %q", ErrInvalidWindow, raw)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: bad day in %q", ErrInvalidWindow, raw)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: bad month in %q", ErrInvalidWindow, raw)
	}

	year := today.Year()
	if hasYear {
		if year, err = strconv.Atoi(yearRaw); err != nil {
			return time.Time{}, false, fmt.Errorf("%w: bad year in %q", ErrInvalidWindow, raw)
		}
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false, fmt.Errorf("%w: date %q out of range", ErrInvalidWindow, raw)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location())

	// time.Date normalizes impossible dates (31.02 becomes March 3);
	// a window must fail instead of landing on the wrong days.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false, fmt.Errorf("%w: no such date %q", ErrInvalidWindow, raw)
	}

	return t, hasYear, nil
}

// truncateToDay drops the time-of-day part.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
