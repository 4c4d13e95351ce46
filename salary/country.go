/*
country.go - Travel-country canonicalization and per-diem allowances

PURPOSE:
  Maps free-form travel-country labels (English names, 2-letter codes,
  Chinese names) to a canonical 2-letter code and resolves the daily
  travel allowance in local currency.

ALLOWANCE MODEL:
  Per-diem amounts are fixed in USD per destination. The local-currency
  allowance is perDiemUSD * effective exchange rate, where the rate
  resolution order is:
    1. settings.LiveRate (injected by the caller's rate provider)
    2. settings.Allowance.ExchangeRate
    3. hardcoded 32.5

  A zero value at any step means "unset" and falls through to the next,
  matching the legacy document format where absent fields read as 0.

SEE ALSO:
  - rateprovider.go: Where LiveRate values come from
  - calc.go: Adds the allowance into the daily breakdown
*/
package salary

import (
	"strings"

	"github.com/shopspring/decimal"
)

// defaultExchangeRate is the hardcoded USD-to-local fallback.
const defaultExchangeRate = 32.5

// defaultPerDiemUSD applies to destinations outside the fixed table
// when settings.Allowance.TripDaily is unset.
const defaultPerDiemUSD = 50

// countryAliases maps uppercased/trimmed labels to canonical codes.
var countryAliases = map[string]string{
	"VN":      "VN",
	"越南":      "VN",
	"VIETNAM": "VN",
	"IN":      "IN",
	"印度":      "IN",
	"INDIA":   "IN",
	"CN":      "CN",
	"大陸":      "CN",
	"CHINA":   "CN",
}

// perDiemUSD is the fixed per-destination daily allowance in USD.
var perDiemUSD = map[string]float64{
	"VN": 40,
	"IN": 70,
	"CN": 33,
}

// CanonicalizeCountry maps a free-form travel-country label to its
// canonical 2-letter code. Unrecognized non-empty input passes through
// uppercased; empty input returns "" (no travel).
func CanonicalizeCountry(label string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(label))
	if trimmed == "" {
		return ""
	}
	if code, ok := countryAliases[trimmed]; ok {
		return code
	}
	return trimmed
}

// EffectiveExchangeRate resolves the USD-to-local rate from settings.
func EffectiveExchangeRate(s SettingsConfig) decimal.Decimal {
	if s.LiveRate != "" {
		if d, err := decimal.NewFromString(s.LiveRate.String()); err == nil && !d.IsZero() {
			return d
		}
	}
	if rate := money(s.Allowance.ExchangeRate); !rate.IsZero() {
		return rate
	}
	return decimal.NewFromFloat(defaultExchangeRate)
}

// TravelPerDiemUSD returns the USD per-diem for a canonical country
// code, falling back to settings.Allowance.TripDaily and then to the
// hardcoded default for destinations outside the fixed table.
func TravelPerDiemUSD(code string, s SettingsConfig) decimal.Decimal {
	if usd, ok := perDiemUSD[code]; ok {
		return decimal.NewFromFloat(usd)
	}
	if trip := money(s.Allowance.TripDaily); !trip.IsZero() {
		return trip
	}
	return decimal.NewFromInt(defaultPerDiemUSD)
}

// TravelAllowance computes the daily travel allowance in local
// currency for a (possibly free-form) country label. Empty labels
// yield zero.
func TravelAllowance(label string, s SettingsConfig) decimal.Decimal {
	code := CanonicalizeCountry(label)
	if code == "" {
		return decimal.Zero
	}
	return TravelPerDiemUSD(code, s).Mul(EffectiveExchangeRate(s))
}
