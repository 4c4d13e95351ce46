/*
calc.go - The daily salary calculator

PURPOSE:
  The central routine of the engine: classifies the day, applies the
  tiered overtime schedule, adds travel allowance and bonus, and
  returns an itemized breakdown.

TIERED OVERTIME SCHEDULES (multipliers of the hourly base rate):
  Workday:  first 2h @ 1.34, remainder @ 1.67 (uncapped)
  Rest day: first 2h @ 1.34, up to 8h total @ 1.67, beyond 8h @ 2.67
  Holiday:  first 8h @ 2.0, hours beyond 8 re-enter the rest-day
            schedule applied to the EXCESS only (2h @ 1.34, rest @ 1.67)
  Tier boundaries are cumulative on elapsed hours, never reset per rate.

  The multipliers are statutory and hard-coded; the ot1/ot2/ot3 fields
  in the rules document are documentation only.

LEAVE SHORT-CIRCUIT:
  A record with IsLeave set (and not a pure bonus record) yields an
  all-zero breakdown. A bonus attached to a leave day is honored by the
  aggregation layer, NOT here - see aggregate.go for that boundary.

RATES:
  hourlyRate = baseMonthly / 30 / 8
  dailyRate  = baseMonthly / 30
  Base day pay applies only to Workday-classified days; weekend and
  holiday base pay is not tracked separately, only overtime premiums.

SEE ALSO:
  - dayclass.go: Day classification precedence
  - rate.go: Base salary resolution
  - aggregate.go: Monthly rollups and the leave-day bonus boundary
*/
package salary

import "github.com/shopspring/decimal"

// Statutory overtime multipliers.
var (
	tierOT1     = decimal.NewFromFloat(1.34) // first 2 overtime hours
	tierOT2     = decimal.NewFromFloat(1.67) // hours 2-8 (rest day) / beyond 2 (workday)
	tierOT3     = decimal.NewFromFloat(2.67) // rest-day hours beyond 8
	tierHoliday = decimal.NewFromFloat(2.0)  // first 8 holiday hours
)

var (
	daysPerMonth = decimal.NewFromInt(30)
	hoursPerDay  = decimal.NewFromInt(8)
)

// CalculateDaily computes the itemized pay breakdown for one
// attendance record. It is pure: no hidden state, no I/O, and it
// never fails - malformed input degrades to zeroes per field.
func CalculateDaily(rec AttendanceRecord, s SettingsConfig) Breakdown {
	// Leave days earn no attendance-based pay. Only a pure bonus record
	// escapes the short-circuit.
	if rec.IsLeave && rec.RecordType != RecordBonus {
		return ZeroBreakdown()
	}

	baseMonthly := ResolveBaseMonthly(rec.Date, s)
	dailyRate := baseMonthly.Div(daysPerMonth)
	hourlyRate := dailyRate.Div(hoursPerDay)

	class := ClassifyDay(rec)

	var otPay decimal.Decimal
	if hours := EffectiveOTHours(rec, s); hours > 0 && rec.OTType == OTPay {
		otPay = overtimePay(class, hours, hourlyRate)
	}

	baseDayPay := decimal.Zero
	if class == DayWorkday {
		baseDayPay = dailyRate
	}

	travel := TravelAllowance(rec.TravelCountry, s)
	bonus := money(rec.Bonus)

	extra := otPay.Add(travel).Add(bonus)
	return Breakdown{
		Total:           baseDayPay.Add(extra),
		Extra:           extra,
		OTPay:           otPay,
		TravelAllowance: travel,
		BaseDayPay:      baseDayPay,
		Bonus:           bonus,
	}
}

// EffectiveOTHours returns the overtime hours for a record. An
// explicit nonzero OTHours wins; otherwise, with an EndTime present,
// the hours are recomputed against the standard end time. This
// fallback is load-bearing: callers routinely store otHours = 0
// alongside a valid endTime and expect recomputation.
func EffectiveOTHours(rec AttendanceRecord, s SettingsConfig) float64 {
	if h := sanitizeHours(rec.OTHours); h > 0 {
		return h
	}
	if rec.EndTime == "" {
		return 0
	}
	return OvertimeHours(rec.EndTime, s.Rules.StandardEndTime)
}

// overtimePay applies the tiered schedule for the day class.
func overtimePay(class DayClass, hours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	switch class {
	case DayHoliday:
		return holidayOvertimePay(hours, hourlyRate)
	case DayRestDay:
		return restDayOvertimePay(hours, hourlyRate)
	default:
		return workdayOvertimePay(hours, hourlyRate)
	}
}

// workdayOvertimePay: first 2h @ 1.34, remainder @ 1.67, uncapped.
func workdayOvertimePay(hours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	first := clampHours(hours, 0, 2)
	rest := clampHours(hours-2, 0, -1)
	return hourlyRate.Mul(first).Mul(tierOT1).
		Add(hourlyRate.Mul(rest).Mul(tierOT2))
}

// restDayOvertimePay: first 2h @ 1.34, next 6h @ 1.67, beyond 8h @ 2.67.
func restDayOvertimePay(hours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	first := clampHours(hours, 0, 2)
	middle := clampHours(hours-2, 0, 6)
	beyond := clampHours(hours-8, 0, -1)
	return hourlyRate.Mul(first).Mul(tierOT1).
		Add(hourlyRate.Mul(middle).Mul(tierOT2)).
		Add(hourlyRate.Mul(beyond).Mul(tierOT3))
}

// holidayOvertimePay: first 8h @ 2.0; the excess re-enters the
// rest-day schedule counted from zero (2h @ 1.34, remainder @ 1.67).
func holidayOvertimePay(hours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	first := clampHours(hours, 0, 8)
	pay := hourlyRate.Mul(first).Mul(tierHoliday)
	if excess := hours - 8; excess > 0 {
		excessFirst := clampHours(excess, 0, 2)
		excessRest := clampHours(excess-2, 0, -1)
		pay = pay.Add(hourlyRate.Mul(excessFirst).Mul(tierOT1)).
			Add(hourlyRate.Mul(excessRest).Mul(tierOT2))
	}
	return pay
}

// clampHours converts an hour span into a decimal clipped to [min, max].
// A negative max means unbounded above.
func clampHours(h, min, max float64) decimal.Decimal {
	if h < min {
		h = min
	}
	if max >= 0 && h > max {
		h = max
	}
	return money(h)
}
