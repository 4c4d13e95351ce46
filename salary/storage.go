/*
storage.go - Persistence interface for records and settings

PURPOSE:
  Defines the interface between the computation engine and storage.
  The engine itself never reads or writes any medium; collaborators
  load a record set and a settings snapshot, hand them to the pure
  functions, and persist edits through this interface.

UNIQUENESS CONTRACT:
  Exactly one AttendanceRecord exists per distinct calendar date.
  UpsertRecord replaces any existing record for the same date rather
  than duplicating it; field-level merge decisions belong to the edit
  layer that produced the record.

DOCUMENT SNAPSHOTS:
  The full record set plus settings round-trips as a single Document,
  which is what the external sync collaborator ships to and from the
  remote document store. Import normalizes on the way in, so snapshots
  written by older schema versions load cleanly.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite store
  - salary/store: In-memory store for tests

SEE ALSO:
  - normalize.go: Runs on document import
*/
package salary

import (
	"context"
	"errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRecordNotFound is returned when no record exists for a date.
	ErrRecordNotFound = errors.New("record not found")

	// ErrSettingsNotFound is returned before any settings document has
	// been saved. Callers typically substitute DefaultSettings().
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidDate is returned for keys that are not "2006-01-02".
	ErrInvalidDate = errors.New("invalid date key")
)

// IsNotFound reports whether the error indicates a missing row.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrSettingsNotFound)
}

// IsCanonicalDate reports whether date is a valid "2006-01-02" key.
// Stores reject anything else to keep date keys comparable.
func IsCanonicalDate(date string) bool {
	if len(date) != 10 {
		return false
	}
	_, ok := parseDate(date)
	return ok
}

// =============================================================================
// STORE - Records keyed by date, plus the settings document
// =============================================================================

// Store persists the attendance record set and the settings document.
type Store interface {
	// UpsertRecord writes a record, replacing any existing record for
	// the same date. The date key must be canonical "2006-01-02".
	UpsertRecord(ctx context.Context, rec AttendanceRecord) error

	// GetRecord returns the record for a date, or ErrRecordNotFound.
	GetRecord(ctx context.Context, date string) (AttendanceRecord, error)

	// DeleteRecord removes the record for a date. Deleting a missing
	// date is not an error.
	DeleteRecord(ctx context.Context, date string) error

	// ListRecords returns all records ordered by date ascending.
	ListRecords(ctx context.Context) ([]AttendanceRecord, error)

	// ListMonth returns the records of one "2006-01" month, ordered by
	// date ascending.
	ListMonth(ctx context.Context, month string) ([]AttendanceRecord, error)

	// LoadSettings returns the settings document, or ErrSettingsNotFound.
	LoadSettings(ctx context.Context) (SettingsConfig, error)

	// SaveSettings replaces the settings document.
	SaveSettings(ctx context.Context, s SettingsConfig) error
}

// =============================================================================
// DOCUMENT SNAPSHOT - Unit of remote synchronization
// =============================================================================

// Document is the full portable state: every record plus settings.
type Document struct {
	Records    []AttendanceRecord `json:"records"`
	Settings   SettingsConfig     `json:"settings"`
	ExportedAt string             `json:"exportedAt,omitempty"`
}

// ExportDocument snapshots the store into a Document.
func ExportDocument(ctx context.Context, store Store) (Document, error) {
	records, err := store.ListRecords(ctx)
	if err != nil {
		return Document{}, err
	}
	settings, err := store.LoadSettings(ctx)
	if err != nil {
		if !errors.Is(err, ErrSettingsNotFound) {
			return Document{}, err
		}
		settings = DefaultSettings()
	}
	return Document{Records: records, Settings: settings}, nil
}

// ImportDocument loads a snapshot into the store. Records are upserted
// one by one, preserving the one-record-per-date invariant even when
// the snapshot overlaps existing data.
func ImportDocument(ctx context.Context, store Store, doc Document) error {
	for _, rec := range doc.Records {
		rec.Date = canonicalDate(rec.Date)
		if !IsCanonicalDate(rec.Date) {
			// Undateable records cannot be keyed; drop them rather than
			// failing the whole import.
			continue
		}
		if err := store.UpsertRecord(ctx, rec); err != nil {
			return err
		}
	}
	return store.SaveSettings(ctx, doc.Settings)
}
