package updates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// day builds a date in UTC for readable test fixtures.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// TestParseWindow_Dated parses a fully dated window and checks its bounds.
func TestParseWindow_Dated(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 31)

	w, err := ParseWindow("24.12.2026 - 26.12.2026", today)
	require.NoError(t, err)
	require.Equal(t, day(2026, time.December, 24), w.Start)
	require.Equal(t, day(2026, time.December, 26), w.End)

	require.False(t, w.Contains(day(2026, time.December, 23)))
	require.True(t, w.Contains(day(2026, time.December, 24)))
	require.True(t, w.Contains(day(2026, time.December, 26).Add(11*time.Hour)))
	require.False(t, w.Contains(day(2026, time.December, 27)))
}

// TestParseWindow_SingleDay ensures a trailing separator means a one-day window.
func TestParseWindow_SingleDay(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("01.05.2026 -", day(2026, time.April, 1))
	require.NoError(t, err)
	require.Equal(t, w.Start, w.End)
	require.True(t, w.Contains(day(2026, time.May, 1)))
	require.False(t, w.Contains(day(2026, time.May, 2)))

	// A leap day is a real date.
	w, err = ParseWindow("29.02.2028 -", day(2028, time.January, 1))
	require.NoError(t, err)
	require.Equal(t, day(2028, time.February, 29), w.Start)
}

// TestParseWindow_Undated places year-less windows relative to today.
func TestParseWindow_Undated(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 31)

	w, err := ParseWindow("15.09. - 20.09.", today)
	require.NoError(t, err)
	require.Equal(t, day(2026, time.September, 15), w.Start)
	require.Equal(t, day(2026, time.September, 20), w.End)
}

// TestParseWindow_UndatedWrapsYear rolls the end into the next year when needed.
func TestParseWindow_UndatedWrapsYear(t *testing.T) {
	t.Parallel()

	today := day(2026, time.December, 30)

	w, err := ParseWindow("28.12. - 03.01.", today)
	require.NoError(t, err)
	require.Equal(t, day(2026, time.December, 28), w.Start)
	require.Equal(t, day(2027, time.January, 3), w.End)
	require.True(t, w.Contains(today))
	require.True(t, w.Contains(day(2027, time.January, 1)))
}

// TestParseWindow_Invalid covers the rejection cases.
func TestParseWindow_Invalid(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 31)

	for _, raw := range []string{
		"24.12.2026",                // no separator
		"24.12.2026 - 26.12.",      // mixed dated and undated
		"24.12. - 26.12.2026",      // mixed the other way
		"26.12.2026 - 24.12.2026",  // ends before start
		"aa.12.2026 - 26.12.2026",  // bad day
		"24.13.2026 - 26.13.2026",  // bad month
		"24.12.twenty - 26.12.bad", // bad year
		"24 - 26",                  // not a date at all
		"31.02.2026 -",             // February has no 31st
		"30.02.2026 - 01.03.2026",  // impossible start date
		"31.06. - 31.06.",          // June has no 31st either
		"29.02.2026 -",             // not a leap year
	} {
		_, err := ParseWindow(raw, today)
		require.ErrorIs(t, err, ErrInvalidWindow, raw)
	}
}

// TestParseWindows_ActiveWindow exercises the list helpers end to end.
func TestParseWindows_ActiveWindow(t *testing.T) {
	t.Parallel()

	today := day(2026, time.August, 31)

	windows, err := ParseWindows([]string{
		"01.01.2026 - 06.01.2026",
		"30.08.2026 - 02.09.2026",
	}, today)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	active, ok := ActiveWindow(windows, today)
	require.True(t, ok)
	require.Equal(t, "30.08.2026 - 02.09.2026", active.Raw)

	_, ok = ActiveWindow(windows, day(2026, time.March, 1))
	require.False(t, ok)

	// One broken entry fails the whole list.
	_, err = ParseWindows([]string{"01.01.2026 - 06.01.2026", "nonsense"}, today)
	require.ErrorIs(t, err, ErrInvalidWindow)
}
