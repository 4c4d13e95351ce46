/*
clock.go - Clock-time parsing and duration arithmetic

PURPOSE:
  Parses "HH:MM"-like strings and derives elapsed and overtime hours.
  These helpers sit directly under interactive form editing, so they
  follow one policy everywhere: malformed input degrades to zero hours.
  Never negative, never NaN, never an error.

PARSING TOLERANCE:
  ParseClock extracts the FIRST H:MM or HH:MM substring it finds, so
  values like "17:30:45" or "2024-07-01 18:00" still parse. Anything
  without a recognizable clock substring yields ok=false.

SEE ALSO:
  - calc.go: Uses OvertimeHours for the endTime fallback recomputation
  - dayclass.go: Date (not clock) parsing lives there
*/
package salary

import (
	"regexp"
	"strconv"
)

// DefaultStandardEnd is the clock-out time that marks the start of
// overtime when the rules document does not configure one.
const DefaultStandardEnd = "17:30"

// DefaultLunchBreak is the unpaid break, in hours, subtracted from a
// day's elapsed duration when the rules document does not configure one.
const DefaultLunchBreak = 1.5

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// ParseClock extracts the first H:MM or HH:MM substring from s and
// returns it as minutes past midnight. Trailing data (seconds, date
// prefixes) is tolerated. Returns ok=false when no clock substring
// exists.
func ParseClock(s string) (minutes int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return h*60 + min, true
}

// OvertimeHours returns the hours worked beyond standardEnd, clipped
// at zero. An empty standardEnd falls back to DefaultStandardEnd.
// Either side failing to parse yields 0, not an error: a malformed
// clock-out means "no overtime today", never a failed computation.
func OvertimeHours(endTime, standardEnd string) float64 {
	if standardEnd == "" {
		standardEnd = DefaultStandardEnd
	}
	end, ok := ParseClock(endTime)
	if !ok {
		return 0
	}
	std, ok := ParseClock(standardEnd)
	if !ok {
		return 0
	}
	hours := float64(end-std) / 60
	if hours < 0 {
		return 0
	}
	return hours
}

// Duration returns the elapsed hours between start and end minus the
// unpaid break, floored at zero. A negative breakHours falls back to
// DefaultLunchBreak; zero is honored as "no break".
func Duration(start, end string, breakHours float64) float64 {
	if breakHours < 0 {
		breakHours = DefaultLunchBreak
	}
	s, ok := ParseClock(start)
	if !ok {
		return 0
	}
	e, ok := ParseClock(end)
	if !ok {
		return 0
	}
	hours := float64(e-s)/60 - breakHours
	if hours < 0 {
		return 0
	}
	return sanitizeHours(hours)
}
