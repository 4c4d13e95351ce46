/*
rate.go - Historical base-salary resolution

PURPOSE:
  Resolves the monthly base salary applicable on a given date from a
  time-ordered history of salary revisions, falling back to the flat
  settings.Salary.BaseMonthly.

RESOLUTION:
  1. Start with settings.Salary.BaseMonthly (0 when absent).
  2. With a non-empty history, pick the most recent revision whose
     date is on or before the target date.
  3. Any parse failure (record date, revision date, revision amount)
     falls back silently to the prior step's value. The resolver never
     errors: it feeds the never-throw calculation path.

SEE ALSO:
  - calc.go: Derives hourly (base/30/8) and daily (base/30) rates
*/
package salary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type salaryRevision struct {
	at     time.Time
	amount string
}

// ResolveBaseMonthly resolves the monthly base salary applicable on
// date ("2006-01-02"). Input history need not be sorted.
func ResolveBaseMonthly(date string, s SettingsConfig) decimal.Decimal {
	base := money(s.Salary.BaseMonthly)
	if len(s.SalaryHistory) == 0 {
		return base
	}

	target, ok := parseDate(date)
	if !ok {
		return base
	}

	// Revisions with unparseable dates are skipped; the remainder are
	// sorted descending so the first on-or-before match is the most
	// recent applicable revision.
	revisions := make([]salaryRevision, 0, len(s.SalaryHistory))
	for _, rev := range s.SalaryHistory {
		at, ok := parseDate(rev.Date)
		if !ok {
			continue
		}
		revisions = append(revisions, salaryRevision{at: at, amount: rev.Amount.String()})
	}
	sort.Slice(revisions, func(i, j int) bool {
		return revisions[i].at.After(revisions[j].at)
	})

	for _, rev := range revisions {
		if rev.at.After(target) {
			continue
		}
		// Most recent applicable revision found. If its amount does not
		// parse, fall back to the flat base rather than an older entry.
		if amount, err := decimal.NewFromString(rev.amount); err == nil {
			return amount
		}
		return base
	}
	return base
}
