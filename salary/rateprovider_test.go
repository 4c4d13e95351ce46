package salary_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/warp/salary-engine/salary"
)

func TestStaticRate(t *testing.T) {
	if rate, ok := salary.StaticRate(32).Rate(context.Background(), time.Now()); !ok || rate != 32 {
		t.Errorf("StaticRate(32) = %v, %v", rate, ok)
	}
	if _, ok := salary.StaticRate(0).Rate(context.Background(), time.Now()); ok {
		t.Error("StaticRate(0) should report no rate")
	}
}

func TestCachedRateProvider_FetchesOncePerTTL(t *testing.T) {
	// GIVEN: a provider with a 1h TTL
	// WHEN: asked twice within the hour
	// THEN: the fetch runs once

	calls := 0
	p := salary.NewCachedRateProvider(func(ctx context.Context) (float64, error) {
		calls++
		return 31.5, nil
	}, time.Hour)

	t0 := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

	if rate, ok := p.Rate(context.Background(), t0); !ok || rate != 31.5 {
		t.Fatalf("first call: rate = %v, %v", rate, ok)
	}
	if rate, ok := p.Rate(context.Background(), t0.Add(30*time.Minute)); !ok || rate != 31.5 {
		t.Fatalf("cached call: rate = %v, %v", rate, ok)
	}
	if calls != 1 {
		t.Errorf("fetch ran %d times, want 1", calls)
	}

	// Past the TTL the fetch runs again.
	p.Rate(context.Background(), t0.Add(2*time.Hour))
	if calls != 2 {
		t.Errorf("fetch ran %d times after expiry, want 2", calls)
	}
}

func TestCachedRateProvider_ServesStaleOnFailure(t *testing.T) {
	// GIVEN: a fetch that succeeds once then starts failing
	// THEN: the last known rate keeps being served

	calls := 0
	p := salary.NewCachedRateProvider(func(ctx context.Context) (float64, error) {
		calls++
		if calls == 1 {
			return 32, nil
		}
		return 0, errors.New("rate source down")
	}, time.Hour)

	t0 := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	p.Rate(context.Background(), t0)

	rate, ok := p.Rate(context.Background(), t0.Add(3*time.Hour))
	if !ok || rate != 32 {
		t.Errorf("stale rate not served: %v, %v", rate, ok)
	}
}

func TestCachedRateProvider_NoRateYet(t *testing.T) {
	p := salary.NewCachedRateProvider(func(ctx context.Context) (float64, error) {
		return 0, errors.New("unreachable source")
	}, time.Hour)

	if _, ok := p.Rate(context.Background(), time.Now()); ok {
		t.Error("expected no rate before any successful fetch")
	}
}

func TestApplyLiveRate(t *testing.T) {
	s := salary.SettingsConfig{Allowance: salary.AllowanceSettings{ExchangeRate: 31}}

	stamped := salary.ApplyLiveRate(context.Background(), s, salary.StaticRate(32.5), time.Now())
	if stamped.LiveRate != "32.5" {
		t.Errorf("live rate not stamped: %q", stamped.LiveRate)
	}
	if s.LiveRate != "" {
		t.Error("original snapshot must stay untouched")
	}

	// Nil provider and zero rate both leave the snapshot unchanged.
	if got := salary.ApplyLiveRate(context.Background(), s, nil, time.Now()); got.LiveRate != "" {
		t.Errorf("nil provider stamped a rate: %q", got.LiveRate)
	}
	if got := salary.ApplyLiveRate(context.Background(), s, salary.StaticRate(0), time.Now()); got.LiveRate != "" {
		t.Errorf("unavailable rate stamped: %q", got.LiveRate)
	}
}
