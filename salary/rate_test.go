package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/salary"
)

func historySettings() salary.SettingsConfig {
	return salary.SettingsConfig{
		Salary: salary.SalarySettings{BaseMonthly: 45000},
		SalaryHistory: []salary.SalaryRevision{
			// Deliberately unsorted: the resolver must not rely on input order.
			{Date: "2024-06-01", Amount: "55000"},
			{Date: "2024-01-01", Amount: "50000"},
		},
	}
}

func TestResolveBaseMonthly_MostRecentOnOrBefore(t *testing.T) {
	// GIVEN: raises on 2024-01-01 (50000) and 2024-06-01 (55000)
	// THEN: a July date resolves to 55000, a March date to 50000

	s := historySettings()

	if got := salary.ResolveBaseMonthly("2024-07-01", s); !got.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("2024-07-01: expected 55000, got %v", got)
	}
	if got := salary.ResolveBaseMonthly("2024-03-01", s); !got.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("2024-03-01: expected 50000, got %v", got)
	}
}

func TestResolveBaseMonthly_RevisionDateIsInclusive(t *testing.T) {
	s := historySettings()
	if got := salary.ResolveBaseMonthly("2024-06-01", s); !got.Equal(decimal.NewFromInt(55000)) {
		t.Errorf("revision effective on its own date: expected 55000, got %v", got)
	}
}

func TestResolveBaseMonthly_BeforeAllHistory_FlatBase(t *testing.T) {
	s := historySettings()
	if got := salary.ResolveBaseMonthly("2023-12-31", s); !got.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("expected flat base 45000 before any revision, got %v", got)
	}
}

func TestResolveBaseMonthly_EmptyHistory_FlatBase(t *testing.T) {
	s := salary.SettingsConfig{Salary: salary.SalarySettings{BaseMonthly: 60000}}
	if got := salary.ResolveBaseMonthly("2024-07-01", s); !got.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("expected 60000, got %v", got)
	}
}

func TestResolveBaseMonthly_ParseFailuresFallBackSilently(t *testing.T) {
	// Invalid record date: flat base.
	s := historySettings()
	if got := salary.ResolveBaseMonthly("not-a-date", s); !got.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("invalid record date: expected 45000, got %v", got)
	}

	// Invalid revision date: that revision is skipped.
	s.SalaryHistory = []salary.SalaryRevision{
		{Date: "bogus", Amount: "99999"},
		{Date: "2024-01-01", Amount: "50000"},
	}
	if got := salary.ResolveBaseMonthly("2024-07-01", s); !got.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("invalid revision date: expected 50000, got %v", got)
	}

	// Invalid amount on the applicable revision: flat base, not an
	// older revision.
	s.SalaryHistory = []salary.SalaryRevision{
		{Date: "2024-06-01", Amount: "not-a-number"},
		{Date: "2024-01-01", Amount: "50000"},
	}
	if got := salary.ResolveBaseMonthly("2024-07-01", s); !got.Equal(decimal.NewFromInt(45000)) {
		t.Errorf("invalid amount: expected flat base 45000, got %v", got)
	}
}

func TestResolveBaseMonthly_NothingConfigured_Zero(t *testing.T) {
	if got := salary.ResolveBaseMonthly("2024-07-01", salary.SettingsConfig{}); !got.IsZero() {
		t.Errorf("expected 0 with nothing configured, got %v", got)
	}
}
