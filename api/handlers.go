/*
handlers.go - HTTP API handlers for the salary engine

PURPOSE:
  Exposes the salary computation engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the pure
  engine functions.

ENDPOINTS:
  Records:
    GET    /api/records               List records (?month=2006-01 filters)
    PUT    /api/records               Upsert a record (normalizes raw input)
    GET    /api/records/{date}        Get one record
    DELETE /api/records/{date}        Delete one record

  Settings:
    GET    /api/settings              Get settings (defaults when unset)
    PUT    /api/settings              Replace settings

  Salary:
    GET    /api/salary/daily/{date}   Itemized daily breakdown
    GET    /api/salary/months         Months present in the record set
    GET    /api/salary/month/{month}  Monthly summary rollup

  Document:
    GET    /api/document              Export full snapshot (records+settings)
    PUT    /api/document              Import a snapshot

REQUEST FLOW:
  1. Parse HTTP request
  2. Load records/settings from the store
  3. Call pure engine functions (normalize, calculate, summarize)
  4. Serialize response

ERROR HANDLING:
  The engine itself never errors: malformed record fields degrade to
  zeroes. HTTP errors come only from storage failures (500), missing
  rows (404), and unusable request bodies or date keys (400).

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/salary-engine/salary"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store salary.Store

	// Rates supplies the live exchange rate stamped into the settings
	// snapshot before each computation. Optional; nil means the stored
	// exchange-rate fallback chain applies.
	Rates salary.RateProvider

	// now is swappable for tests.
	now func() time.Time
}

// NewHandler creates a new handler with the given store.
func NewHandler(store salary.Store, rates salary.RateProvider) *Handler {
	return &Handler{Store: store, Rates: rates, now: time.Now}
}

// settings loads the stored settings (or defaults) with the live rate
// applied. The engine stays pure: rate resolution happens here, once
// per request.
func (h *Handler) settings(r *http.Request) (salary.SettingsConfig, error) {
	s, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		if !errors.Is(err, salary.ErrSettingsNotFound) {
			return salary.SettingsConfig{}, err
		}
		s = salary.DefaultSettings()
	}
	return salary.ApplyLiveRate(r.Context(), s, h.Rates, h.now()), nil
}

// =============================================================================
// RECORD ENDPOINTS
// =============================================================================

// ListRecords returns all records, optionally filtered by ?month=.
// GET /api/records
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	var (
		records []salary.AttendanceRecord
		err     error
	)
	if month := r.URL.Query().Get("month"); month != "" {
		records, err = h.Store.ListMonth(r.Context(), month)
	} else {
		records, err = h.Store.ListRecords(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}
	if records == nil {
		records = []salary.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// UpsertRecord normalizes a raw record and writes it, replacing any
// existing record for the same date.
// PUT /api/records
func (h *Handler) UpsertRecord(w http.ResponseWriter, r *http.Request) {
	var raw salary.RecordLike
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, ok := salary.NormalizeRecord(raw)
	if !ok {
		writeError(w, http.StatusBadRequest, "Record has no date", nil)
		return
	}

	if err := h.Store.UpsertRecord(r.Context(), rec); err != nil {
		if errors.Is(err, salary.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to save record", err)
		return
	}

	writeJSON(w, http.StatusOK, UpsertRecordResponse{Record: rec})
}

// GetRecord returns the record for one date.
// GET /api/records/{date}
func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	rec, err := h.Store.GetRecord(r.Context(), date)
	if err != nil {
		if errors.Is(err, salary.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get record", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// DeleteRecord removes the record for one date.
// DELETE /api/records/{date}
func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteRecord(r.Context(), chi.URLParam(r, "date")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete record", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

// =============================================================================
// SETTINGS ENDPOINTS
// =============================================================================

// GetSettings returns the settings document, or defaults when none
// has been saved yet.
// GET /api/settings
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.Store.LoadSettings(r.Context())
	if err != nil {
		if errors.Is(err, salary.ErrSettingsNotFound) {
			writeJSON(w, http.StatusOK, salary.DefaultSettings())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// PutSettings replaces the settings document.
// PUT /api/settings
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var s salary.SettingsConfig
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Store.SaveSettings(r.Context(), s); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// =============================================================================
// SALARY ENDPOINTS
// =============================================================================

// GetDailyBreakdown computes the itemized breakdown for one date.
// GET /api/salary/daily/{date}
func (h *Handler) GetDailyBreakdown(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	rec, err := h.Store.GetRecord(r.Context(), date)
	if err != nil {
		if errors.Is(err, salary.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found", nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get record", err)
		return
	}

	s, err := h.settings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	writeJSON(w, http.StatusOK, toBreakdownDTO(rec, salary.CalculateDaily(rec, s), s))
}

// ListMonths returns the months present in the record set.
// GET /api/salary/months
func (h *Handler) ListMonths(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListRecords(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}
	months := salary.Months(records)
	if months == nil {
		months = []string{}
	}
	writeJSON(w, http.StatusOK, months)
}

// GetMonthlySummary computes the rollup for one month.
// GET /api/salary/month/{month}
func (h *Handler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if len(month) != 7 {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", nil)
		return
	}

	records, err := h.Store.ListMonth(r.Context(), month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}

	s, err := h.settings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}

	writeJSON(w, http.StatusOK, toMonthlySummaryDTO(salary.SummarizeMonth(records, month, s)))
}

// =============================================================================
// DOCUMENT ENDPOINTS - Snapshot export/import for the sync collaborator
// =============================================================================

// ExportDocument returns the full snapshot: records plus settings.
// GET /api/document
func (h *Handler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := salary.ExportDocument(r.Context(), h.Store)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to export document", err)
		return
	}
	doc.ExportedAt = h.now().UTC().Format(time.RFC3339)
	writeJSON(w, http.StatusOK, doc)
}

// ImportDocument loads a snapshot into the store.
// PUT /api/document
func (h *Handler) ImportDocument(w http.ResponseWriter, r *http.Request) {
	var doc salary.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := salary.ImportDocument(r.Context(), h.Store, doc); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to import document", err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResultDTO{Records: len(doc.Records)})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
