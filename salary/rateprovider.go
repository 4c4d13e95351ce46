/*
rateprovider.go - Injected exchange-rate dependency

PURPOSE:
  Supplies the live USD-to-local exchange rate as an explicit injected
  dependency instead of a module-level mutable cache. The calculator
  itself stays pure: callers resolve a rate here, stamp it into the
  settings snapshot via ApplyLiveRate, and pass that snapshot in.

CACHING:
  CachedRateProvider wraps a fetch function behind a mutex with a TTL
  (the upstream rate source allows roughly hourly polling). A failed
  refresh serves the last known rate rather than dropping to the
  configured fallback mid-session.

SEE ALSO:
  - country.go: EffectiveExchangeRate consumes settings.LiveRate
*/
package salary

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

// DefaultRateTTL is how long a fetched live rate stays fresh.
const DefaultRateTTL = time.Hour

// RateProvider supplies the current USD-to-local exchange rate.
// ok=false means no live rate is available and the settings fallback
// chain applies.
type RateProvider interface {
	Rate(ctx context.Context, now time.Time) (rate float64, ok bool)
}

// StaticRate is a fixed-rate provider, useful in tests and for
// documents that pin their own rate.
type StaticRate float64

func (r StaticRate) Rate(ctx context.Context, now time.Time) (float64, bool) {
	return float64(r), r != 0
}

// CachedRateProvider memoizes a fetch function with a TTL.
type CachedRateProvider struct {
	mu        sync.Mutex
	fetch     func(ctx context.Context) (float64, error)
	ttl       time.Duration
	rate      float64
	fetchedAt time.Time
}

// NewCachedRateProvider wraps fetch with a TTL cache. A non-positive
// ttl falls back to DefaultRateTTL.
func NewCachedRateProvider(fetch func(ctx context.Context) (float64, error), ttl time.Duration) *CachedRateProvider {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	return &CachedRateProvider{fetch: fetch, ttl: ttl}
}

func (p *CachedRateProvider) Rate(ctx context.Context, now time.Time) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.fetchedAt.IsZero() && now.Sub(p.fetchedAt) < p.ttl {
		return p.rate, p.rate != 0
	}

	rate, err := p.fetch(ctx)
	if err != nil || rate == 0 {
		// Serve the stale rate if we ever had one.
		return p.rate, p.rate != 0
	}

	p.rate = rate
	p.fetchedAt = now
	return p.rate, true
}

// ApplyLiveRate returns a copy of the settings snapshot with the
// provider's current rate stamped into LiveRate. A nil provider or an
// unavailable rate leaves the snapshot unchanged.
func ApplyLiveRate(ctx context.Context, s SettingsConfig, p RateProvider, now time.Time) SettingsConfig {
	if p == nil {
		return s
	}
	rate, ok := p.Rate(ctx, now)
	if !ok {
		return s
	}
	s.LiveRate = json.Number(strconv.FormatFloat(rate, 'f', -1, 64))
	return s
}
