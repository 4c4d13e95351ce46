/*
dayclass.go - Day-type classification

PURPOSE:
  Classifies a record's date into one of three day types, evaluated
  ONCE per calculation so the tier-selection logic in calc.go stays
  independent of date/flag interactions.

PRECEDENCE:
  1. IsWorkDay forces Workday treatment, overriding weekend and
     holiday math (a make-up working day on a weekend date).
  2. IsHoliday classifies as Holiday.
  3. Saturday, Sunday, or an explicit IsRestDay classifies as RestDay.
  4. Everything else, including an unparseable date, is a Workday:
     the conservative branch with the lowest overtime multipliers.
*/
package salary

import "time"

// DayClass is the day-type classification driving tier selection and
// base-day-pay eligibility.
type DayClass int

const (
	DayWorkday DayClass = iota
	DayRestDay
	DayHoliday
)

func (c DayClass) String() string {
	switch c {
	case DayRestDay:
		return "rest_day"
	case DayHoliday:
		return "holiday"
	default:
		return "workday"
	}
}

// ClassifyDay classifies the record's date. See the precedence table
// in the file header.
func ClassifyDay(rec AttendanceRecord) DayClass {
	if rec.IsWorkDay {
		return DayWorkday
	}
	if rec.IsHoliday {
		return DayHoliday
	}
	if rec.IsRestDay || isWeekend(rec.Date) {
		return DayRestDay
	}
	return DayWorkday
}

// isWeekend reports whether the date falls on Saturday or Sunday.
// Unparseable dates are never weekends.
func isWeekend(date string) bool {
	t, ok := parseDate(date)
	if !ok {
		return false
	}
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
