/*
compleave.go - Comp-leave unit conversion

PURPOSE:
  Converts overtime hours banked as compensatory leave into discrete
  half-hour units: 0.5h = 1 unit, floored, with anything under half an
  hour rounding away entirely.

  Both comp-leave overtime types convert through the same formula:
  "leave" (company comp-leave) and "internal" (department comp-leave).
  Paid overtime never converts.
*/
package salary

import "math"

// CompLeaveUnits converts banked overtime hours into comp-leave units.
// Returns 0 for paid overtime, for hours under the half-hour
// granularity floor, and for any non-finite input.
func CompLeaveUnits(otType OvertimeType, hours float64) int {
	if otType != OTLeave && otType != OTInternal {
		return 0
	}
	hours = sanitizeHours(hours)
	if hours < 0.5 {
		return 0
	}
	return int(math.Floor(hours * 2))
}
