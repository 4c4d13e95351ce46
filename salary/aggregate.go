/*
aggregate.go - Monthly rollups over a record set

PURPOSE:
  Sums daily breakdowns into per-month totals and banks comp-leave
  units, split by company vs. department type.

THE LEAVE-DAY BONUS BOUNDARY:
  CalculateDaily zeroes out entirely for leave days, including any
  bonus attached to the same date. Bonus aggregation therefore happens
  HERE, from the record's own bonus field, so a bonus granted on a
  leave day still lands in the monthly bonus and grand totals. This
  boundary is deliberate and must not be re-derived from the daily
  breakdown.

SEE ALSO:
  - calc.go: The per-day breakdown and its leave short-circuit
  - compleave.go: Unit conversion
*/
package salary

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// MonthlySummary is the rollup of one calendar month.
type MonthlySummary struct {
	Month string `json:"month"` // "2006-01"

	Total           decimal.Decimal `json:"total"`
	BasePay         decimal.Decimal `json:"basePay"`
	OTPay           decimal.Decimal `json:"otPay"`
	TravelAllowance decimal.Decimal `json:"travelAllowance"`
	Bonus           decimal.Decimal `json:"bonus"`

	CompanyLeaveUnits    int `json:"companyLeaveUnits"`
	DepartmentLeaveUnits int `json:"departmentLeaveUnits"`

	Days int `json:"days"`
}

// SummarizeMonth rolls up all records whose date falls in month
// ("2006-01"). Records outside the month are skipped; the input need
// not be sorted.
func SummarizeMonth(records []AttendanceRecord, month string, s SettingsConfig) MonthlySummary {
	summary := MonthlySummary{
		Month:           month,
		Total:           decimal.Zero,
		BasePay:         decimal.Zero,
		OTPay:           decimal.Zero,
		TravelAllowance: decimal.Zero,
		Bonus:           decimal.Zero,
	}

	for _, rec := range records {
		if !strings.HasPrefix(rec.Date, month+"-") {
			continue
		}
		summary.Days++

		b := CalculateDaily(rec, s)
		summary.BasePay = summary.BasePay.Add(b.BaseDayPay)
		summary.OTPay = summary.OTPay.Add(b.OTPay)
		summary.TravelAllowance = summary.TravelAllowance.Add(b.TravelAllowance)
		summary.Total = summary.Total.Add(b.Total)

		// Leave days zero out in the daily breakdown, bonus included.
		// Re-add the record's own bonus so leave-day bonuses count.
		if rec.IsLeave && rec.RecordType != RecordBonus {
			bonus := money(rec.Bonus)
			summary.Bonus = summary.Bonus.Add(bonus)
			summary.Total = summary.Total.Add(bonus)
		} else {
			summary.Bonus = summary.Bonus.Add(b.Bonus)
		}

		hours := EffectiveOTHours(rec, s)
		switch rec.OTType {
		case OTLeave:
			summary.CompanyLeaveUnits += CompLeaveUnits(OTLeave, hours)
		case OTInternal:
			summary.DepartmentLeaveUnits += CompLeaveUnits(OTInternal, hours)
		}
	}

	return summary
}

// Months returns the sorted distinct "2006-01" months present in the
// record set.
func Months(records []AttendanceRecord) []string {
	seen := map[string]bool{}
	var months []string
	for _, rec := range records {
		if len(rec.Date) < 7 {
			continue
		}
		m := rec.Date[:7]
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Strings(months)
	return months
}
