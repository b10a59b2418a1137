package employee

import (
	"context"
)

// EmployeeRepository defines data access for the employee directory.
// Employees are never hard-deleted; terminated records stay for audit.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByEmail(ctx context.Context, email string) (Employee, error)

	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, int64, error)

	// UpdateStatus mutates only the status column.
	UpdateStatus(ctx context.Context, id string, status EmploymentStatus) error

	// AddLeaveDays adds delta to total_leave_days atomically in the store.
	AddLeaveDays(ctx context.Context, id string, delta int) error
}
