package employee

import "context"

// EmployeeService defines business logic for workforce administration.
type EmployeeService interface {
	// Register creates an employee plus a linked login user (HR only).
	Register(ctx context.Context, req RegisterEmployeeRequest) (EmployeeResponse, error)

	Get(ctx context.Context, id string) (EmployeeResponse, error)

	List(ctx context.Context, filter ListEmployeesFilter) (ListEmployeesResponse, error)

	// UpdateStatus changes employment status (HR or manager).
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (EmployeeResponse, error)

	// AdjustLeaveAllotment bulk-adds leave days, one result per employee.
	AdjustLeaveAllotment(ctx context.Context, req AdjustLeaveAllotmentRequest) (BulkResponse, error)

	// BulkResetPasswords resets login passwords, one result per employee.
	BulkResetPasswords(ctx context.Context, req BulkResetPasswordsRequest) (BulkResponse, error)
}
