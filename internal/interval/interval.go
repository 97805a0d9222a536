// Package interval holds the minute-of-day primitives shared by the shift
// writer, the merged schedule view, and the absence allocator.
package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the wrap modulus for overnight shifts.
const MinutesPerDay = 24 * 60

// Interval is a half-open range of minutes since local midnight. End may
// exceed MinutesPerDay for a range that crosses midnight; Start never does.
type Interval struct {
	Start int
	End   int
}

// ToMinutes converts a wall-clock string ("HH:MM") to minutes since midnight.
func ToMinutes(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", clock)
	}
	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", clock)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", clock)
	}
	return hours*60 + minutes, nil
}

// FormatMinutes renders minutes since midnight as "HH:MM", wrapping values
// past midnight back onto the clock face.
func FormatMinutes(min int) string {
	min = ((min % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Normalize builds an Interval from raw start/end minutes. An end at or
// before the start means the range runs past midnight, so a day is added to
// the end; the start is never shifted.
func Normalize(startMin, endMin int) Interval {
	if endMin <= startMin {
		endMin += MinutesPerDay
	}
	return Interval{Start: startMin, End: endMin}
}

// FromClock parses and normalizes a start/end clock-time pair.
func FromClock(start, end string) (Interval, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return Interval{}, err
	}
	return Normalize(s, e), nil
}

// Overlaps reports whether two half-open intervals share any minute.
// Intervals that only touch at an endpoint are adjacent, not overlapping.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// OverlapsWrapped reports whether two normalized intervals of the same
// operator-day share any minute, accounting for the day axis wrapping at
// midnight: a shift running into the small hours occupies [start, end+1440),
// so an early-morning interval can collide with the tail of a late one.
func OverlapsWrapped(a, b Interval) bool {
	if Overlaps(a, b) {
		return true
	}
	shifted := Interval{Start: a.Start + MinutesPerDay, End: a.End + MinutesPerDay}
	if Overlaps(shifted, b) {
		return true
	}
	shifted = Interval{Start: b.Start + MinutesPerDay, End: b.End + MinutesPerDay}
	return Overlaps(a, shifted)
}

// ParseClockOrMinutes accepts either a "HH:MM" clock string or a raw
// minutes-since-midnight integer, as break boundaries arrive in both forms.
func ParseClockOrMinutes(s string) (int, error) {
	if strings.Contains(s, ":") {
		return ToMinutes(s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid minute value %q", s)
	}
	if min < 0 || min >= 2*MinutesPerDay {
		return 0, fmt.Errorf("minute value %d out of range", min)
	}
	return min, nil
}
