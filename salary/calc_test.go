package salary_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/warp/salary-engine/salary"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// base60k: hourlyRate = 60000/30/8 = 250, dailyRate = 2000.
func base60k() salary.SettingsConfig {
	return salary.SettingsConfig{Salary: salary.SalarySettings{BaseMonthly: 60000}}
}

func wantAmount(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// 2024-07-03 is a Wednesday, 2024-07-06 a Saturday, 2024-07-07 a Sunday.

// =============================================================================
// DAY CLASSIFICATION TESTS
// =============================================================================

func TestClassifyDay(t *testing.T) {
	cases := []struct {
		name string
		rec  salary.AttendanceRecord
		want salary.DayClass
	}{
		{"plain weekday", salary.AttendanceRecord{Date: "2024-07-03"}, salary.DayWorkday},
		{"saturday", salary.AttendanceRecord{Date: "2024-07-06"}, salary.DayRestDay},
		{"sunday", salary.AttendanceRecord{Date: "2024-07-07"}, salary.DayRestDay},
		{"explicit rest day on weekday", salary.AttendanceRecord{Date: "2024-07-03", IsRestDay: true}, salary.DayRestDay},
		{"holiday", salary.AttendanceRecord{Date: "2024-07-03", IsHoliday: true}, salary.DayHoliday},
		{"workday flag overrides weekend", salary.AttendanceRecord{Date: "2024-07-06", IsWorkDay: true}, salary.DayWorkday},
		{"workday flag overrides holiday", salary.AttendanceRecord{Date: "2024-07-06", IsWorkDay: true, IsHoliday: true}, salary.DayWorkday},
		{"unparseable date is conservative", salary.AttendanceRecord{Date: "garbage"}, salary.DayWorkday},
	}

	for _, tc := range cases {
		if got := salary.ClassifyDay(tc.rec); got != tc.want {
			t.Errorf("%s: ClassifyDay = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// =============================================================================
// TIERED OVERTIME TESTS
// =============================================================================

func TestCalculateDaily_WeekdayTiers(t *testing.T) {
	// GIVEN: Wednesday, 3h paid overtime, base 60000 (hourly 250)
	// THEN: otPay = 2*250*1.34 + 1*250*1.67 = 670 + 417.5 = 1087.5

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		OTHours: 3,
		OTType:  salary.OTPay,
	}, base60k())

	wantAmount(t, "otPay", b.OTPay, 1087.5)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 2000)
	wantAmount(t, "total", b.Total, 3087.5)
}

func TestCalculateDaily_RestDayTiers(t *testing.T) {
	// GIVEN: Saturday, 9h paid overtime, base 60000
	// THEN: otPay = 2*250*1.34 + 6*250*1.67 + 1*250*2.67
	//             = 670 + 2505 + 667.5 = 3842.5
	// AND: no base day pay on a rest day

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-06",
		OTHours: 9,
		OTType:  salary.OTPay,
	}, base60k())

	wantAmount(t, "otPay", b.OTPay, 3842.5)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 0)
	wantAmount(t, "total", b.Total, 3842.5)
}

func TestCalculateDaily_HolidayTiers(t *testing.T) {
	// GIVEN: holiday, 10h paid overtime, base 60000
	// THEN: first 8h at 2.0 = 4000; the 2h excess re-enters the
	//       rest-day schedule from zero: 2*250*1.34 = 670; total 4670

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:      "2024-07-03",
		IsHoliday: true,
		OTHours:   10,
		OTType:    salary.OTPay,
	}, base60k())

	wantAmount(t, "otPay", b.OTPay, 4670)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 0)
}

func TestCalculateDaily_HolidayLongExcess(t *testing.T) {
	// 12h on a holiday: 8*2.0 + excess 4h -> 2@1.34 + 2@1.67.
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:      "2024-07-03",
		IsHoliday: true,
		OTHours:   12,
		OTType:    salary.OTPay,
	}, base60k())

	// 4000 + 670 + 2*250*1.67 = 4000 + 670 + 835 = 5505
	wantAmount(t, "otPay", b.OTPay, 5505)
}

func TestCalculateDaily_WeekdayUncapped(t *testing.T) {
	// The weekday schedule has no 2.67 tier: 10h = 2@1.34 + 8@1.67.
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		OTHours: 10,
		OTType:  salary.OTPay,
	}, base60k())

	// 670 + 8*250*1.67 = 670 + 3340 = 4010
	wantAmount(t, "otPay", b.OTPay, 4010)
}

func TestCalculateDaily_ShortOvertime(t *testing.T) {
	// 1.5h on a weekday stays inside the first tier.
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		OTHours: 1.5,
		OTType:  salary.OTPay,
	}, base60k())

	// 1.5*250*1.34 = 502.5
	wantAmount(t, "otPay", b.OTPay, 502.5)
}

// =============================================================================
// OVERTIME SOURCE TESTS
// =============================================================================

func TestCalculateDaily_RecomputesFromEndTime(t *testing.T) {
	// GIVEN: otHours stored as 0 but a valid clock-out of 20:30
	// THEN: 3 hours are recomputed against the standard end (load-bearing)

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		EndTime: "20:30",
		OTType:  salary.OTPay,
	}, base60k())

	wantAmount(t, "otPay", b.OTPay, 1087.5)
}

func TestCalculateDaily_ConfiguredStandardEnd(t *testing.T) {
	s := base60k()
	s.Rules.StandardEndTime = "18:00"

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		EndTime: "20:00",
		OTType:  salary.OTPay,
	}, s)

	// 2h at 1.34 = 670
	wantAmount(t, "otPay", b.OTPay, 670)
}

func TestCalculateDaily_ExplicitOTHoursWins(t *testing.T) {
	// A nonzero otHours is authoritative even with an endTime present.
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		EndTime: "23:00",
		OTHours: 1,
		OTType:  salary.OTPay,
	}, base60k())

	// 1*250*1.34 = 335
	wantAmount(t, "otPay", b.OTPay, 335)
}

func TestCalculateDaily_CompLeaveOvertimeEarnsNoPay(t *testing.T) {
	// Overtime banked as leave must not produce overtime pay.
	for _, otType := range []salary.OvertimeType{salary.OTLeave, salary.OTInternal} {
		b := salary.CalculateDaily(salary.AttendanceRecord{
			Date:    "2024-07-03",
			OTHours: 3,
			OTType:  otType,
		}, base60k())
		wantAmount(t, string(otType)+" otPay", b.OTPay, 0)
		wantAmount(t, string(otType)+" total", b.Total, 2000) // base day pay only
	}
}

// =============================================================================
// LEAVE SHORT-CIRCUIT TESTS
// =============================================================================

func TestCalculateDaily_LeaveDay_AllZero(t *testing.T) {
	// GIVEN: a leave day carrying every other kind of payable field
	// THEN: the breakdown is all-zero regardless

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:          "2024-07-03",
		IsLeave:       true,
		RecordType:    salary.RecordAttendance,
		OTHours:       5,
		OTType:        salary.OTPay,
		TravelCountry: "VN",
		Bonus:         1000,
	}, base60k())

	wantAmount(t, "total", b.Total, 0)
	wantAmount(t, "extra", b.Extra, 0)
	wantAmount(t, "otPay", b.OTPay, 0)
	wantAmount(t, "travelAllowance", b.TravelAllowance, 0)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 0)
	wantAmount(t, "bonus", b.Bonus, 0)
}

func TestCalculateDaily_BonusRecordEscapesLeaveShortCircuit(t *testing.T) {
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:       "2024-07-03",
		IsLeave:    true,
		RecordType: salary.RecordBonus,
		Bonus:      1000,
	}, base60k())

	wantAmount(t, "bonus", b.Bonus, 1000)
}

// =============================================================================
// FULL BREAKDOWN TESTS
// =============================================================================

func TestCalculateDaily_FullBreakdown(t *testing.T) {
	// Weekday with overtime, travel, and a bonus all at once.
	s := base60k()
	s.LiveRate = "32"

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:          "2024-07-03",
		OTHours:       3,
		OTType:        salary.OTPay,
		TravelCountry: "越南",
		Bonus:         500,
	}, s)

	wantAmount(t, "otPay", b.OTPay, 1087.5)
	wantAmount(t, "travelAllowance", b.TravelAllowance, 1280)
	wantAmount(t, "bonus", b.Bonus, 500)
	wantAmount(t, "extra", b.Extra, 2867.5)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 2000)
	wantAmount(t, "total", b.Total, 4867.5)
}

func TestCalculateDaily_SalaryHistoryApplies(t *testing.T) {
	s := historySettings() // 50000 from 2024-01-01, 55000 from 2024-06-01

	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		OTHours: 2,
		OTType:  salary.OTPay,
	}, s)

	// hourly = 55000/30/8; otPay = 2h * hourly * 1.34
	hourly := decimal.NewFromInt(55000).Div(decimal.NewFromInt(30)).Div(decimal.NewFromInt(8))
	want := hourly.Mul(decimal.NewFromInt(2)).Mul(decimal.NewFromFloat(1.34))
	if !b.OTPay.Equal(want) {
		t.Errorf("otPay = %v, want %v", b.OTPay, want)
	}
}

func TestCalculateDaily_MalformedInput_DegradesToZero(t *testing.T) {
	// Garbage everywhere must still produce a finite breakdown with the
	// conservative weekday classification.
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "not-a-date",
		EndTime: "junk",
		OTType:  salary.OTPay,
	}, base60k())

	wantAmount(t, "otPay", b.OTPay, 0)
	wantAmount(t, "baseDayPay", b.BaseDayPay, 2000) // weekday default
	wantAmount(t, "total", b.Total, 2000)
}

func TestCalculateDaily_EmptySettings_AllZeroButFinite(t *testing.T) {
	b := salary.CalculateDaily(salary.AttendanceRecord{
		Date:    "2024-07-03",
		OTHours: 3,
		OTType:  salary.OTPay,
	}, salary.SettingsConfig{})

	wantAmount(t, "otPay", b.OTPay, 0)
	wantAmount(t, "total", b.Total, 0)
}
