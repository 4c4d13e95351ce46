package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/salary"
)

// =============================================================================
// COUNTRY CANONICALIZATION TESTS
// =============================================================================

func TestCanonicalizeCountry_Aliases(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"VN", "VN"},
		{"vn", "VN"},
		{"越南", "VN"},
		{"Vietnam", "VN"},
		{" vietnam ", "VN"},
		{"IN", "IN"},
		{"印度", "IN"},
		{"india", "IN"},
		{"CN", "CN"},
		{"大陸", "CN"},
		{"China", "CN"},
		{"japan", "JAPAN"}, // unrecognized passes through uppercased
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := salary.CanonicalizeCountry(tc.label); got != tc.want {
			t.Errorf("CanonicalizeCountry(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

// =============================================================================
// EXCHANGE RATE RESOLUTION TESTS
// =============================================================================

func TestEffectiveExchangeRate_LiveRateWins(t *testing.T) {
	s := salary.SettingsConfig{
		LiveRate:  "32",
		Allowance: salary.AllowanceSettings{ExchangeRate: 31},
	}
	if got := salary.EffectiveExchangeRate(s); !got.Equal(decimal.NewFromInt(32)) {
		t.Errorf("expected live rate 32, got %v", got)
	}
}

func TestEffectiveExchangeRate_FallbackChain(t *testing.T) {
	// Non-numeric live rate falls back to the configured rate.
	s := salary.SettingsConfig{
		LiveRate:  "stale",
		Allowance: salary.AllowanceSettings{ExchangeRate: 31},
	}
	if got := salary.EffectiveExchangeRate(s); !got.Equal(decimal.NewFromInt(31)) {
		t.Errorf("expected configured rate 31, got %v", got)
	}

	// Nothing configured falls back to the hardcoded 32.5.
	if got := salary.EffectiveExchangeRate(salary.SettingsConfig{}); !got.Equal(decimal.NewFromFloat(32.5)) {
		t.Errorf("expected hardcoded rate 32.5, got %v", got)
	}
}

// =============================================================================
// TRAVEL ALLOWANCE TESTS
// =============================================================================

func TestTravelAllowance_VietnamWithLiveRate(t *testing.T) {
	// GIVEN: travel to 越南 with a live rate of 32
	// THEN: allowance = 40 USD/day * 32 = 1280

	s := salary.SettingsConfig{LiveRate: "32"}
	got := salary.TravelAllowance("越南", s)
	if !got.Equal(decimal.NewFromInt(1280)) {
		t.Errorf("expected 1280, got %v", got)
	}
}

func TestTravelAllowance_PerDiemTable(t *testing.T) {
	s := salary.SettingsConfig{LiveRate: "1"} // rate 1 exposes the USD table
	cases := []struct {
		label string
		want  int64
	}{
		{"VN", 40},
		{"IN", 70},
		{"CN", 33},
		{"US", 50}, // outside the table: hardcoded default
	}
	for _, tc := range cases {
		if got := salary.TravelAllowance(tc.label, s); !got.Equal(decimal.NewFromInt(tc.want)) {
			t.Errorf("TravelAllowance(%q) = %v, want %d", tc.label, got, tc.want)
		}
	}
}

func TestTravelAllowance_TripDailyOverridesDefault(t *testing.T) {
	s := salary.SettingsConfig{
		LiveRate:  "1",
		Allowance: salary.AllowanceSettings{TripDaily: 60},
	}
	if got := salary.TravelAllowance("US", s); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("expected configured trip daily 60, got %v", got)
	}
	// Fixed-table destinations ignore the configured fallback.
	if got := salary.TravelAllowance("VN", s); !got.Equal(decimal.NewFromInt(40)) {
		t.Errorf("expected table rate 40 for VN, got %v", got)
	}
}

func TestTravelAllowance_EmptyCountry_Zero(t *testing.T) {
	if got := salary.TravelAllowance("", salary.SettingsConfig{}); !got.IsZero() {
		t.Errorf("expected 0 for no travel, got %v", got)
	}
}
