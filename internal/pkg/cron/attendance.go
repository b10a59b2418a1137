package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffdesk/workforce-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	cutoff         string
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository, cutoff string) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		cutoff:         cutoff,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_clock_out_open_sessions", 15*time.Minute, j.AutoClockOutOpenSessions)
}

// AutoClockOutOpenSessions force-closes sessions still open at the configured
// cutoff. The clock-out is stamped at the cutoff time of the session's own
// day and marked as automatic; hours are derived like any other clock-out.
// Sessions opened at or after their cutoff are left alone, since closing
// them would not give a positive duration.
func (j *AttendanceJobs) AutoClockOutOpenSessions(ctx context.Context) error {
	cutoff, err := time.Parse("15:04", j.cutoff)
	if err != nil {
		return fmt.Errorf("invalid auto clock-out cutoff %q: %w", j.cutoff, err)
	}

	now := time.Now().UTC()
	todayCutoff := time.Date(now.Year(), now.Month(), now.Day(), cutoff.Hour(), cutoff.Minute(), 0, 0, time.UTC)

	// Sessions from earlier days are always past cutoff; today's only after it.
	searchDate := now.Truncate(24 * time.Hour)
	if now.Before(todayCutoff) {
		searchDate = searchDate.AddDate(0, 0, -1)
	}

	openSessions, err := j.attendanceRepo.ListOpenSessions(ctx, searchDate)
	if err != nil {
		return fmt.Errorf("failed to list open sessions: %w", err)
	}

	if len(openSessions) == 0 {
		return nil
	}

	slog.Info("Cron: auto-closing open attendance sessions", "count", len(openSessions))

	closedCount := 0
	for _, session := range openSessions {
		clockOut := time.Date(
			session.Date.Year(), session.Date.Month(), session.Date.Day(),
			cutoff.Hour(), cutoff.Minute(), 0, 0, time.UTC,
		)
		if session.ClockIn == nil || !clockOut.After(*session.ClockIn) {
			// A session opened at or past its day's cutoff cannot be
			// closed with a positive duration; leave it open.
			slog.Warn("Cron: skipping session opened past cutoff",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID)
			continue
		}

		_, err := j.attendanceRepo.ClockOut(ctx, session.EmployeeID, session.Date, clockOut, true)
		if err != nil {
			slog.Error("Cron: failed to auto clock out",
				"attendance_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: auto clock-out finished", "closed", closedCount, "total", len(openSessions))
	return nil
}
