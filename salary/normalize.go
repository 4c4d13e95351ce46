/*
normalize.go - Boundary decoder for loosely-typed attendance records

PURPOSE:
  Migrates heterogeneous record shapes into the canonical
  AttendanceRecord schema. Historical documents mix camelCase and
  snake_case keys, store numbers as strings, and carry a legacy
  tiered-hours layout. All of that variance is absorbed HERE, in one
  decoder with an explicit precedence table, so the rest of the engine
  never duck-types a field.

ALIAS PRECEDENCE:
  For every aliased field the canonical camelCase key wins when both
  are present:
    travelCountry > travel_country     endTime   > end_time
    isHoliday     > is_holiday         otType    > ot_type
    isLeave       > is_leave           otHours   > ot_hours
    isRestDay     > is_rest_day        isWorkDay > is_work_day
    (and the leave and bonus fields analogously)

LEGACY TIERED HOURS:
  Old records stored hour counts keyed by multiplier ("1.34", "1.67",
  "2", "2.67"). Their sum becomes otHours ONLY when the record's own
  otHours is absent or exactly 0. An explicit nonzero otHours always
  wins.

IDEMPOTENCY:
  Normalizing an already-normalized set yields the same set, except
  for freshly generated ids where none existed.

SEE ALSO:
  - types.go: The canonical schema
  - calc.go: Consumes only normalized records
*/
package salary

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordLike is a loosely-typed record as decoded from JSON.
type RecordLike = map[string]any

// legacyTierKeys are the multiplier-keyed hour fields of the old schema.
var legacyTierKeys = []string{"1.34", "1.67", "2", "2.67"}

// NormalizeRecords migrates a raw record list into canonical
// AttendanceRecords. Records without any usable date are dropped.
func NormalizeRecords(raw []RecordLike) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(raw))
	for _, r := range raw {
		rec, ok := NormalizeRecord(r)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// NormalizeRecord migrates a single raw record. ok=false when the
// record carries no date at all.
func NormalizeRecord(raw RecordLike) (AttendanceRecord, bool) {
	date := canonicalDate(rawString(raw, "date"))
	if date == "" {
		return AttendanceRecord{}, false
	}

	rec := AttendanceRecord{
		Date:           date,
		EndTime:        rawString(raw, "endTime", "end_time"),
		OTHours:        sanitizeHours(rawFloat(raw, "otHours", "ot_hours")),
		IsHoliday:      rawBool(raw, "isHoliday", "is_holiday"),
		IsWorkDay:      rawBool(raw, "isWorkDay", "is_work_day"),
		IsLeave:        rawBool(raw, "isLeave", "is_leave"),
		IsRestDay:      rawBool(raw, "isRestDay", "is_rest_day"),
		TravelCountry:  rawString(raw, "travelCountry", "travel_country"),
		Bonus:          money(rawFloat(raw, "bonus")).InexactFloat64(),
		LeaveType:      rawString(raw, "leaveType", "leave_type"),
		LeaveDuration:  sanitizeHours(rawFloat(raw, "leaveDuration", "leave_duration")),
		LeaveStartTime: rawString(raw, "leaveStartTime", "leave_start_time"),
		LeaveEndTime:   rawString(raw, "leaveEndTime", "leave_end_time"),
	}

	rec.OTType = normalizeOTType(rawString(raw, "otType", "ot_type"))

	// Legacy tiered-hours migration. The tier sum only applies when the
	// record's own otHours is absent or exactly zero.
	if rec.OTHours == 0 {
		if sum := legacyTierSum(raw); sum > 0 {
			rec.OTHours = sum
		}
	}

	rec.BonusEntries = normalizeBonusEntries(raw, rec)
	if len(rec.BonusEntries) > 0 {
		// The scalar bonus always equals the entry sum, negative
		// refund entries included.
		total := 0.0
		for _, e := range rec.BonusEntries {
			total += money(e.Amount).InexactFloat64()
		}
		rec.Bonus = total
	}

	rec.RecordType = normalizeRecordType(rawString(raw, "recordType", "record_type"), rec.Bonus)

	return rec, true
}

func normalizeOTType(s string) OvertimeType {
	switch OvertimeType(strings.TrimSpace(s)) {
	case OTLeave:
		return OTLeave
	case OTInternal:
		return OTInternal
	default:
		return OTPay
	}
}

func normalizeRecordType(s string, bonus float64) RecordType {
	switch RecordType(strings.TrimSpace(s)) {
	case RecordBonus:
		return RecordBonus
	case RecordAttendance:
		return RecordAttendance
	default:
		if bonus > 0 {
			return RecordBonus
		}
		return RecordAttendance
	}
}

func legacyTierSum(raw RecordLike) float64 {
	sum := 0.0
	for _, key := range legacyTierKeys {
		sum += sanitizeHours(rawFloat(raw, key))
	}
	return sum
}

// normalizeBonusEntries decodes the bonusEntries list, assigning
// generated ids where missing. When the list is absent but the record
// carries a positive bonus, a single entry is synthesized from the
// flat bonusCategory/bonusName fields.
func normalizeBonusEntries(raw RecordLike, rec AttendanceRecord) []BonusEntry {
	list, ok := raw["bonusEntries"].([]any)
	if !ok {
		list, ok = raw["bonus_entries"].([]any)
	}
	if ok && len(list) > 0 {
		entries := make([]BonusEntry, 0, len(list))
		for _, item := range list {
			m, ok := item.(RecordLike)
			if !ok {
				continue
			}
			entry := BonusEntry{
				ID:       rawString(m, "id"),
				Amount:   money(rawFloat(m, "amount")).InexactFloat64(),
				Category: rawString(m, "category"),
				Name:     rawString(m, "name"),
				Date:     canonicalDate(rawString(m, "date")),
			}
			if entry.ID == "" {
				entry.ID = uuid.NewString()
			}
			if entry.Date == "" {
				entry.Date = rec.Date
			}
			entries = append(entries, entry)
		}
		return entries
	}

	if rec.Bonus > 0 {
		category := rawString(raw, "bonusCategory", "bonus_category")
		if category == "" {
			category = "其他"
		}
		return []BonusEntry{{
			ID:       uuid.NewString(),
			Amount:   rec.Bonus,
			Category: category,
			Name:     rawString(raw, "bonusName", "bonus_name"),
			Date:     rec.Date,
		}}
	}
	return nil
}

// =============================================================================
// FIELD EXTRACTION - Explicit alias precedence, no duck-typing elsewhere
// =============================================================================

// rawString returns the first non-empty string among the keys, in
// precedence order.
func rawString(raw RecordLike, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// rawBool returns the first present boolean among the keys. Legacy
// documents occasionally store booleans as 0/1 numbers or strings.
func rawBool(raw RecordLike, keys ...string) bool {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case float64:
			return b != 0
		case string:
			return b == "true" || b == "1"
		}
	}
	return false
}

// rawFloat returns the first numeric value among the keys, accepting
// JSON numbers and numeric strings. Anything unparseable reads as 0.
func rawFloat(raw RecordLike, keys ...string) float64 {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// canonicalDate strips any time-of-day component and reformats a
// parseable date as "2006-01-02". Unparseable non-empty input passes
// through trimmed so downstream defensive parsing can classify it.
func canonicalDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, ok := parseDate(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}

// parseDate defensively parses a date string, ignoring any time-of-day
// suffix ("2024-07-01T09:30:00Z", "2024-07-01 09:30").
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
