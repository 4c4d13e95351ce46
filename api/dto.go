/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Records and
  settings travel as the canonical salary types (they already carry the
  document's camelCase JSON schema); computed results get dedicated
  DTOs here so the decimal internals convert to plain JSON numbers at
  the boundary.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - salary/types.go: The canonical record and settings schema
*/
package api

import "github.com/warp/salary-engine/salary"

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// BreakdownDTO is the itemized daily salary result.
type BreakdownDTO struct {
	Date            string  `json:"date"`
	DayClass        string  `json:"dayClass"`
	Total           float64 `json:"total"`
	Extra           float64 `json:"extra"`
	OTPay           float64 `json:"otPay"`
	TravelAllowance float64 `json:"travelAllowance"`
	BaseDayPay      float64 `json:"baseDayPay"`
	Bonus           float64 `json:"bonus"`
	CompLeaveUnits  int     `json:"compLeaveUnits"`
}

// MonthlySummaryDTO is the rollup of one calendar month.
type MonthlySummaryDTO struct {
	Month                string  `json:"month"`
	Total                float64 `json:"total"`
	BasePay              float64 `json:"basePay"`
	OTPay                float64 `json:"otPay"`
	TravelAllowance      float64 `json:"travelAllowance"`
	Bonus                float64 `json:"bonus"`
	CompanyLeaveUnits    int     `json:"companyLeaveUnits"`
	DepartmentLeaveUnits int     `json:"departmentLeaveUnits"`
	Days                 int     `json:"days"`
}

// UpsertRecordResponse returns the normalized record as stored.
type UpsertRecordResponse struct {
	Record salary.AttendanceRecord `json:"record"`
}

// ImportResultDTO reports what a document import loaded.
type ImportResultDTO struct {
	Records int `json:"records"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toBreakdownDTO(rec salary.AttendanceRecord, b salary.Breakdown, s salary.SettingsConfig) BreakdownDTO {
	hours := salary.EffectiveOTHours(rec, s)
	return BreakdownDTO{
		Date:            rec.Date,
		DayClass:        salary.ClassifyDay(rec).String(),
		Total:           b.Total.InexactFloat64(),
		Extra:           b.Extra.InexactFloat64(),
		OTPay:           b.OTPay.InexactFloat64(),
		TravelAllowance: b.TravelAllowance.InexactFloat64(),
		BaseDayPay:      b.BaseDayPay.InexactFloat64(),
		Bonus:           b.Bonus.InexactFloat64(),
		CompLeaveUnits:  salary.CompLeaveUnits(rec.OTType, hours),
	}
}

func toMonthlySummaryDTO(s salary.MonthlySummary) MonthlySummaryDTO {
	return MonthlySummaryDTO{
		Month:                s.Month,
		Total:                s.Total.InexactFloat64(),
		BasePay:              s.BasePay.InexactFloat64(),
		OTPay:                s.OTPay.InexactFloat64(),
		TravelAllowance:      s.TravelAllowance.InexactFloat64(),
		Bonus:                s.Bonus.InexactFloat64(),
		CompanyLeaveUnits:    s.CompanyLeaveUnits,
		DepartmentLeaveUnits: s.DepartmentLeaveUnits,
		Days:                 s.Days,
	}
}
