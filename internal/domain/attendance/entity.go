package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLeave:
		return true
	}
	return false
}

// Attendance is one clock record per employee per calendar day.
// (EmployeeID, Date) is unique in the store.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	Status       Status
	HoursWorked  *decimal.Decimal
	AutoClockOut bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

// WorkedHours derives the worked duration between in and out as hours
// rounded to two decimals. The caller guarantees out is after in.
func WorkedHours(in, out time.Time) decimal.Decimal {
	ms := out.Sub(in).Milliseconds()
	return decimal.NewFromInt(ms).Div(decimal.NewFromInt(3600000)).Round(2)
}
