/*
Package sqlite provides a SQLite-backed implementation of salary.Store.

PURPOSE:
  Persists the attendance record set and the settings document locally.
  The computation engine stays storage-free; this package only moves
  canonical records in and out of SQLite.

KEY TABLES:
  records:  One row per calendar date (PRIMARY KEY on date). Upserts
            use ON CONFLICT(date) DO UPDATE so a second write for the
            same date can never duplicate the day.
  settings: Single-row table (id=1) holding the settings document as
            JSON. The settings shape evolves often; JSON avoids a
            migration per field.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't
  block while the sync collaborator writes an imported snapshot.

USAGE:
  store, err := sqlite.New("./data/salary.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - salary/storage.go: Interface definition and sentinel errors
  - salary/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/salary-engine/salary"
)

// Store implements salary.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Attendance records (one row per calendar date)
	CREATE TABLE IF NOT EXISTS records (
		date TEXT PRIMARY KEY,
		end_time TEXT NOT NULL DEFAULT '',
		ot_hours REAL NOT NULL DEFAULT 0,
		ot_type TEXT NOT NULL DEFAULT 'pay',
		is_holiday INTEGER NOT NULL DEFAULT 0,
		is_work_day INTEGER NOT NULL DEFAULT 0,
		is_leave INTEGER NOT NULL DEFAULT 0,
		is_rest_day INTEGER NOT NULL DEFAULT 0,
		travel_country TEXT NOT NULL DEFAULT '',
		bonus REAL NOT NULL DEFAULT 0,
		bonus_entries_json TEXT,
		leave_type TEXT NOT NULL DEFAULT '',
		leave_duration REAL NOT NULL DEFAULT 0,
		leave_start_time TEXT NOT NULL DEFAULT '',
		leave_end_time TEXT NOT NULL DEFAULT '',
		record_type TEXT NOT NULL DEFAULT 'attendance',
		updated_at TEXT NOT NULL
	);

	-- Month listing is the hot read path for summaries
	CREATE INDEX IF NOT EXISTS idx_records_month
		ON records(substr(date, 1, 7));

	-- Settings document (single row)
	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		config_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORDS
// =============================================================================

// UpsertRecord writes a record, replacing any existing row for the
// same date via ON CONFLICT. The date key must be canonical.
func (s *Store) UpsertRecord(ctx context.Context, rec salary.AttendanceRecord) error {
	if !salary.IsCanonicalDate(rec.Date) {
		return salary.ErrInvalidDate
	}

	var entriesJSON sql.NullString
	if len(rec.BonusEntries) > 0 {
		data, err := json.Marshal(rec.BonusEntries)
		if err != nil {
			return fmt.Errorf("failed to encode bonus entries: %w", err)
		}
		entriesJSON = sql.NullString{String: string(data), Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (
			date, end_time, ot_hours, ot_type,
			is_holiday, is_work_day, is_leave, is_rest_day,
			travel_country, bonus, bonus_entries_json,
			leave_type, leave_duration, leave_start_time, leave_end_time,
			record_type, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			end_time = excluded.end_time,
			ot_hours = excluded.ot_hours,
			ot_type = excluded.ot_type,
			is_holiday = excluded.is_holiday,
			is_work_day = excluded.is_work_day,
			is_leave = excluded.is_leave,
			is_rest_day = excluded.is_rest_day,
			travel_country = excluded.travel_country,
			bonus = excluded.bonus,
			bonus_entries_json = excluded.bonus_entries_json,
			leave_type = excluded.leave_type,
			leave_duration = excluded.leave_duration,
			leave_start_time = excluded.leave_start_time,
			leave_end_time = excluded.leave_end_time,
			record_type = excluded.record_type,
			updated_at = excluded.updated_at`,
		rec.Date, rec.EndTime, rec.OTHours, string(rec.OTType),
		rec.IsHoliday, rec.IsWorkDay, rec.IsLeave, rec.IsRestDay,
		rec.TravelCountry, rec.Bonus, entriesJSON,
		rec.LeaveType, rec.LeaveDuration, rec.LeaveStartTime, rec.LeaveEndTime,
		string(rec.RecordType), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Store) GetRecord(ctx context.Context, date string) (salary.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectRecordColumns+` FROM records WHERE date = ?`, date)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return salary.AttendanceRecord{}, salary.ErrRecordNotFound
	}
	return rec, err
}

func (s *Store) DeleteRecord(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE date = ?`, date)
	return err
}

func (s *Store) ListRecords(ctx context.Context) ([]salary.AttendanceRecord, error) {
	return s.list(ctx, selectRecordColumns+` FROM records ORDER BY date`)
}

func (s *Store) ListMonth(ctx context.Context, month string) ([]salary.AttendanceRecord, error) {
	return s.list(ctx, selectRecordColumns+` FROM records WHERE substr(date, 1, 7) = ? ORDER BY date`, month)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]salary.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []salary.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

const selectRecordColumns = `
	SELECT date, end_time, ot_hours, ot_type,
	       is_holiday, is_work_day, is_leave, is_rest_day,
	       travel_country, bonus, bonus_entries_json,
	       leave_type, leave_duration, leave_start_time, leave_end_time,
	       record_type`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (salary.AttendanceRecord, error) {
	var rec salary.AttendanceRecord
	var otType, recordType string
	var entriesJSON sql.NullString

	err := row.Scan(
		&rec.Date, &rec.EndTime, &rec.OTHours, &otType,
		&rec.IsHoliday, &rec.IsWorkDay, &rec.IsLeave, &rec.IsRestDay,
		&rec.TravelCountry, &rec.Bonus, &entriesJSON,
		&rec.LeaveType, &rec.LeaveDuration, &rec.LeaveStartTime, &rec.LeaveEndTime,
		&recordType,
	)
	if err != nil {
		return salary.AttendanceRecord{}, err
	}

	rec.OTType = salary.OvertimeType(otType)
	rec.RecordType = salary.RecordType(recordType)
	if entriesJSON.Valid && entriesJSON.String != "" {
		if err := json.Unmarshal([]byte(entriesJSON.String), &rec.BonusEntries); err != nil {
			return salary.AttendanceRecord{}, fmt.Errorf("failed to decode bonus entries for %s: %w", rec.Date, err)
		}
	}
	return rec, nil
}

// =============================================================================
// SETTINGS
// =============================================================================

func (s *Store) LoadSettings(ctx context.Context) (salary.SettingsConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var configJSON string
	err := s.db.QueryRowContext(ctx, `SELECT config_json FROM settings WHERE id = 1`).Scan(&configJSON)
	if err == sql.ErrNoRows {
		return salary.SettingsConfig{}, salary.ErrSettingsNotFound
	}
	if err != nil {
		return salary.SettingsConfig{}, err
	}

	var config salary.SettingsConfig
	if err := json.Unmarshal([]byte(configJSON), &config); err != nil {
		return salary.SettingsConfig{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return config, nil
}

func (s *Store) SaveSettings(ctx context.Context, config salary.SettingsConfig) error {
	data, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (id, config_json, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			config_json = excluded.config_json,
			updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Compile-time check that Store implements salary.Store.
var _ salary.Store = (*Store)(nil)
