/*
Package salary provides the core salary computation engine.

PURPOSE:
  This package contains the pure domain logic for turning attendance
  records plus a pay-rule configuration into itemized daily pay
  breakdowns: tiered overtime schedules, day-type classification,
  historical base-rate lookups, travel allowances, bonuses, and
  comp-leave unit conversion.

KEY CONCEPTS IN THIS FILE (types.go):
  - AttendanceRecord: One record per calendar date (attendance and/or bonus)
  - SettingsConfig: Pay rules, base salary history, allowance configuration
  - Breakdown: The itemized result of a daily salary calculation
  - BonusEntry: Detail line behind the scalar bonus amount

DESIGN PRINCIPLES:
  1. Purity: Every calculation is a pure function over its inputs.
     No hidden state, no caching of settings, no I/O.
  2. Precision: Uses decimal.Decimal for all money arithmetic to
     produce exact, reproducible financial figures.
  3. Degradation: Malformed input never fails a calculation. Bad time
     strings contribute zero hours, bad dates classify as ordinary
     weekdays, and every money output is guaranteed finite.

USAGE:
  records := salary.NormalizeRecords(raw)
  breakdown := salary.CalculateDaily(records[0], settings)
  fmt.Println(breakdown.Total)

SEE ALSO:
  - calc.go: The daily salary calculator
  - normalize.go: Boundary decoder for loosely-typed records
  - rate.go: Historical base-salary resolution
*/
package salary

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ENUMS
// =============================================================================

// OvertimeType determines how overtime hours are settled.
type OvertimeType string

const (
	// OTPay: overtime is paid out through the tiered rate schedule.
	OTPay OvertimeType = "pay"

	// OTLeave: overtime is banked as company comp-leave units.
	OTLeave OvertimeType = "leave"

	// OTInternal: overtime is banked as department comp-leave units.
	OTInternal OvertimeType = "internal"
)

// RecordType is a weak discriminator: a record may carry both attendance
// fields and bonus fields at the same time.
type RecordType string

const (
	RecordAttendance RecordType = "attendance"
	RecordBonus      RecordType = "bonus"
)

// =============================================================================
// ATTENDANCE RECORD - One per calendar date
// =============================================================================

// BonusEntry is a single bonus detail line. The parent record's scalar
// Bonus field always equals the sum of its entry amounts when entries
// exist (enforced by NormalizeRecords).
type BonusEntry struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
}

// AttendanceRecord is the canonical record schema. Exactly one record
// exists per distinct calendar date in a record set; stores merge
// upserts into the existing record rather than duplicating.
//
// Dates carry date-only semantics ("2006-01-02"); any time-of-day
// component is stripped during normalization.
type AttendanceRecord struct {
	Date string `json:"date"`

	// Clock-out time as "HH:MM". Absent or invalid means no overtime.
	EndTime string `json:"endTime,omitempty"`

	// Overtime hours. A zero here with a valid EndTime is NOT
	// authoritative: the calculator recomputes from EndTime.
	OTHours float64      `json:"otHours,omitempty"`
	OTType  OvertimeType `json:"otType,omitempty"`

	IsHoliday bool `json:"isHoliday,omitempty"`
	IsWorkDay bool `json:"isWorkDay,omitempty"`
	IsLeave   bool `json:"isLeave,omitempty"`
	IsRestDay bool `json:"isRestDay,omitempty"`

	// Free-form or canonical travel country label. Empty means no
	// travel allowance for the day.
	TravelCountry string `json:"travelCountry,omitempty"`

	Bonus        float64      `json:"bonus,omitempty"`
	BonusEntries []BonusEntry `json:"bonusEntries,omitempty"`

	LeaveType      string  `json:"leaveType,omitempty"`
	LeaveDuration  float64 `json:"leaveDuration,omitempty"`
	LeaveStartTime string  `json:"leaveStartTime,omitempty"`
	LeaveEndTime   string  `json:"leaveEndTime,omitempty"`

	RecordType RecordType `json:"recordType,omitempty"`
}

// =============================================================================
// SETTINGS - Pay rules and allowance configuration
// =============================================================================

// SalarySettings carries the fallback base pay.
type SalarySettings struct {
	BaseMonthly float64 `json:"baseMonthly,omitempty"`
}

// SalaryRevision is one entry in the base-salary history. Amount is a
// json.Number because legacy documents store it as either a number or
// a numeric string; an unparseable amount falls back silently.
type SalaryRevision struct {
	Date   string      `json:"date"`
	Amount json.Number `json:"amount"`
}

// AllowanceSettings configures travel allowances. Zero values mean
// "unset" and fall back to the hardcoded defaults.
type AllowanceSettings struct {
	TripDaily    float64 `json:"tripDaily,omitempty"`
	ExchangeRate float64 `json:"exchangeRate,omitempty"`
}

// RuleSettings documents the working-day rules. The overtime
// multipliers OT1/OT2/OT3 are documentation only: the calculator
// hard-codes the statutory schedule (1.34 / 1.67 / 2.67 and 2.0 for
// holidays) so a misconfigured document cannot change pay law.
type RuleSettings struct {
	StandardStartTime string  `json:"standardStartTime,omitempty"`
	StandardEndTime   string  `json:"standardEndTime,omitempty"`
	LunchBreak        float64 `json:"lunchBreak,omitempty"`
	OT1               float64 `json:"ot1,omitempty"`
	OT2               float64 `json:"ot2,omitempty"`
	OT3               float64 `json:"ot3,omitempty"`
}

// SettingsConfig is the complete pay-rule configuration. It is loaded
// once per session by callers and may be hot-swapped (e.g. a fresher
// LiveRate) without touching stored records.
type SettingsConfig struct {
	Salary        SalarySettings    `json:"salary"`
	SalaryHistory []SalaryRevision  `json:"salaryHistory,omitempty"`
	Allowance     AllowanceSettings `json:"allowance"`

	// LiveRate overrides Allowance.ExchangeRate when present and
	// numeric. json.Number tolerates both number and string forms.
	LiveRate json.Number `json:"liveRate,omitempty"`

	Rules           RuleSettings `json:"rules"`
	BonusCategories []string     `json:"bonusCategories,omitempty"`
}

// DefaultSettings returns a configuration populated with the engine's
// hardcoded fallbacks, suitable as the initial settings document.
func DefaultSettings() SettingsConfig {
	return SettingsConfig{
		Allowance: AllowanceSettings{ExchangeRate: defaultExchangeRate},
		Rules: RuleSettings{
			StandardStartTime: "08:00",
			StandardEndTime:   DefaultStandardEnd,
			LunchBreak:        DefaultLunchBreak,
			OT1:               1.34,
			OT2:               1.67,
			OT3:               2.67,
		},
		BonusCategories: []string{"其他"},
	}
}

// =============================================================================
// BREAKDOWN - Itemized daily salary result
// =============================================================================

// Breakdown is the itemized result of a daily salary calculation.
// Every field is a finite decimal; NaN can never leak out.
type Breakdown struct {
	Total           decimal.Decimal `json:"total"`
	Extra           decimal.Decimal `json:"extra"`
	OTPay           decimal.Decimal `json:"otPay"`
	TravelAllowance decimal.Decimal `json:"travelAllowance"`
	BaseDayPay      decimal.Decimal `json:"baseDayPay"`
	Bonus           decimal.Decimal `json:"bonus"`
}

// ZeroBreakdown is the all-zero result returned for leave days.
func ZeroBreakdown() Breakdown {
	return Breakdown{
		Total:           decimal.Zero,
		Extra:           decimal.Zero,
		OTPay:           decimal.Zero,
		TravelAllowance: decimal.Zero,
		BaseDayPay:      decimal.Zero,
		Bonus:           decimal.Zero,
	}
}

// =============================================================================
// NUMERIC GUARDS
// =============================================================================

// money converts a float input into a decimal, coercing NaN and
// infinities to zero. decimal.NewFromFloat panics on non-finite input,
// so every float crossing into money arithmetic goes through here.
func money(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// sanitizeHours clips hours to a finite non-negative value.
func sanitizeHours(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	return h
}
