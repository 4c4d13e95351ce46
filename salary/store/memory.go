// Package store provides an in-memory salary.Store implementation.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/warp/salary-engine/salary"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	records  map[string]salary.AttendanceRecord // keyed by canonical date
	settings *salary.SettingsConfig
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]salary.AttendanceRecord)}
}

// UpsertRecord replaces any existing record for the same date,
// keeping the one-record-per-date invariant.
func (m *Memory) UpsertRecord(_ context.Context, rec salary.AttendanceRecord) error {
	if !salary.IsCanonicalDate(rec.Date) {
		return salary.ErrInvalidDate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Date] = rec
	return nil
}

func (m *Memory) GetRecord(_ context.Context, date string) (salary.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[date]
	if !ok {
		return salary.AttendanceRecord{}, salary.ErrRecordNotFound
	}
	return rec, nil
}

func (m *Memory) DeleteRecord(_ context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, date)
	return nil
}

func (m *Memory) ListRecords(_ context.Context) ([]salary.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listLocked(""), nil
}

func (m *Memory) ListMonth(_ context.Context, month string) ([]salary.AttendanceRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.listLocked(month + "-"), nil
}

func (m *Memory) listLocked(prefix string) []salary.AttendanceRecord {
	result := make([]salary.AttendanceRecord, 0, len(m.records))
	for date, rec := range m.records {
		if prefix != "" && !strings.HasPrefix(date, prefix) {
			continue
		}
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

func (m *Memory) LoadSettings(_ context.Context) (salary.SettingsConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return salary.SettingsConfig{}, salary.ErrSettingsNotFound
	}
	return *m.settings, nil
}

func (m *Memory) SaveSettings(_ context.Context, s salary.SettingsConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}
