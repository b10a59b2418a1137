package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/domain/attendance"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
	"github.com/staffdesk/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dbOnce sync.Once
	db     *database.DB
	dbErr  error
)

// testDB connects once per test binary and skips every test when
// TEST_DATABASE_URL is unset, so the suite stays runnable without postgres.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	dbOnce.Do(func() {
		db, dbErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, dbErr)
	return db
}

func cleanupTestData(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	_, err := db.Exec(ctx, "TRUNCATE TABLE attendances CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB) employee.Employee {
	t.Helper()
	repo := postgresql.NewEmployeeRepository(db)
	emp, err := repo.Create(ctx, employee.Employee{
		FullName:       "Test Employee",
		Department:     "Engineering",
		Position:       "Engineer",
		Email:          fmt.Sprintf("test-%d@example.com", time.Now().UnixNano()),
		CurrentSalary:  decimal.NewFromInt(8000000),
		Status:         employee.StatusActive,
		TotalLeaveDays: employee.DefaultLeaveDays,
		HireDate:       time.Now().UTC().Truncate(24 * time.Hour),
	})
	require.NoError(t, err)
	return emp
}

func TestAttendanceRepository_ClockIn_Conflict(t *testing.T) {
	db := testDB(t)
	defer cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Now().UTC().Truncate(24 * time.Hour)
	clockIn := day.Add(9 * time.Hour)

	first, err := repo.ClockIn(ctx, emp.ID, day, clockIn)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Nil(t, first.ClockOut)

	_, err = repo.ClockIn(ctx, emp.ID, day, clockIn.Add(time.Minute))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestAttendanceRepository_ClockOut_ComputesHours(t *testing.T) {
	db := testDB(t)
	defer cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Now().UTC().Truncate(24 * time.Hour)
	clockIn := day.Add(9 * time.Hour)

	_, err := repo.ClockIn(ctx, emp.ID, day, clockIn)
	require.NoError(t, err)

	closed, err := repo.ClockOut(ctx, emp.ID, day, clockIn.Add(8*time.Hour+30*time.Minute), false)
	require.NoError(t, err)
	require.NotNil(t, closed.ClockOut)
	require.NotNil(t, closed.HoursWorked)
	assert.True(t, closed.HoursWorked.Equal(decimal.NewFromFloat(8.5)))

	// A closed row no longer matches.
	_, err = repo.ClockOut(ctx, emp.ID, day, clockIn.Add(9*time.Hour), false)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_ClockOut_NoOpenRow(t *testing.T) {
	db := testDB(t)
	defer cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	day := time.Now().UTC().Truncate(24 * time.Hour)
	_, err := repo.ClockOut(ctx, emp.ID, day, day.Add(17*time.Hour), false)
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestEmployeeRepository_AddLeaveDays_ClampsAtZero(t *testing.T) {
	db := testDB(t)
	defer cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewEmployeeRepository(db)

	require.NoError(t, repo.AddLeaveDays(ctx, emp.ID, -(emp.TotalLeaveDays + 10)))

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalLeaveDays)
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	db := testDB(t)
	defer cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewEmployeeRepository(db)

	_, err := repo.Create(ctx, employee.Employee{
		FullName:       "Someone Else",
		Department:     "Engineering",
		Position:       "Engineer",
		Email:          emp.Email,
		CurrentSalary:  decimal.NewFromInt(7000000),
		Status:         employee.StatusActive,
		TotalLeaveDays: employee.DefaultLeaveDays,
		HireDate:       time.Now().UTC().Truncate(24 * time.Hour),
	})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}
