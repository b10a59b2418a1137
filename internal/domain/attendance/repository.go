package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for per-day clock records.
type AttendanceRepository interface {
	// ClockIn atomically inserts the day's record for the employee. When a
	// record already exists for (employeeID, date) it returns
	// ErrAlreadyClockedIn without touching the row. This is the upsert that
	// closes the find-then-save race on concurrent clock-ins.
	ClockIn(ctx context.Context, employeeID string, date time.Time, clockIn time.Time) (Attendance, error)

	// ClockOut conditionally closes the day's open record: it only matches a
	// row whose clock_out is still null. Missing row distinguishes "never
	// clocked in" from "already clocked out" via GetByEmployeeAndDate.
	ClockOut(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, auto bool) (Attendance, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// GetMyAttendance retrieves records for one employee, newest-first.
	GetMyAttendance(ctx context.Context, employeeID string, filter MyAttendanceFilter) ([]Attendance, int64, error)

	// List retrieves records across employees, newest-first.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListOpenSessions returns records with clock_in set and clock_out null
	// on or before the given date. Used by the auto clock-out job.
	ListOpenSessions(ctx context.Context, date time.Time) ([]Attendance, error)
}
