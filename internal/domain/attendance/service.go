package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record for the authenticated employee.
	ClockIn(ctx context.Context) (AttendanceResponse, error)

	// ClockOut closes today's record and derives worked hours.
	ClockOut(ctx context.Context) (AttendanceResponse, error)

	// GetMyAttendance retrieves records for the authenticated employee.
	GetMyAttendance(ctx context.Context, filter MyAttendanceFilter) (ListAttendanceResponse, error)

	// List retrieves records with filters (manager/HR).
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
