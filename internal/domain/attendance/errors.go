package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you have already clocked in today")
	ErrNotClockedIn       = errors.New("must clock in before clocking out")
	ErrAlreadyClockedOut  = errors.New("you have already clocked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotAnEmployee      = errors.New("caller has no employee record")
)
