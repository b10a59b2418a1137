package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/attendance"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.status,
	a.hours_worked, a.auto_clock_out, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.Status,
		&a.HoursWorked, &a.AutoClockOut, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// ClockIn implements attendance.AttendanceRepository. The insert and the
// duplicate check are a single statement: on conflict nothing is returned
// and the caller gets ErrAlreadyClockedIn.
func (r *attendanceRepository) ClockIn(ctx context.Context, employeeID string, date time.Time, clockIn time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, clock_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, employee_id, date, clock_in, clock_out, status,
			hours_worked, auto_clock_out, created_at, updated_at
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, id.String(), employeeID, date, clockIn, attendance.StatusPresent))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock in: %w", err)
	}

	return a, nil
}

// ClockOut implements attendance.AttendanceRepository. Only an open row
// matches, so a repeated clock-out affects zero rows.
func (r *attendanceRepository) ClockOut(ctx context.Context, employeeID string, date time.Time, clockOut time.Time, auto bool) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $1,
			hours_worked = ROUND(EXTRACT(EPOCH FROM ($1 - clock_in)) / 3600.0, 2),
			auto_clock_out = $2,
			updated_at = NOW()
		WHERE employee_id = $3 AND date = $4 AND clock_out IS NULL
		RETURNING id, employee_id, date, clock_in, clock_out, status,
			hours_worked, auto_clock_out, created_at, updated_at
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, clockOut, auto, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to clock out: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. Returns
// nil without error when no record exists for the day.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status,
			hours_worked, auto_clock_out, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &a, nil
}

// GetMyAttendance implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetMyAttendance(ctx context.Context, employeeID string, filter attendance.MyAttendanceFilter) ([]attendance.Attendance, int64, error) {
	where := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	where, args, argIdx = appendAttendanceFilters(where, args, argIdx, filter.Date, filter.StartDate, filter.EndDate, filter.Status)

	return r.list(ctx, where, args, argIdx, filter.Page, filter.Limit)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	where, args, argIdx = appendAttendanceFilters(where, args, argIdx, filter.Date, filter.StartDate, filter.EndDate, filter.Status)

	return r.list(ctx, where, args, argIdx, filter.Page, filter.Limit)
}

func appendAttendanceFilters(where string, args []interface{}, argIdx int, date, start, end, status *string) (string, []interface{}, int) {
	if date != nil && *date != "" {
		where += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *date)
		argIdx++
	}
	if start != nil && *start != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil && *end != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *end)
		argIdx++
	}
	if status != nil && *status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *status)
		argIdx++
	}
	return where, args, argIdx
}

func (r *attendanceRepository) list(ctx context.Context, where string, args []interface{}, argIdx, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name, e.department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.clock_in DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.Status,
			&a.HoursWorked, &a.AutoClockOut, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeName, &a.Department,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, total, nil
}

// ListOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListOpenSessions(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, status,
			hours_worked, auto_clock_out, created_at, updated_at
		FROM attendances
		WHERE date <= $1 AND clock_in IS NOT NULL AND clock_out IS NULL
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query open sessions: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	return attendances, nil
}
