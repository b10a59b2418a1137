package payroll

import "context"

// PayrollService defines business logic for the payroll ledger.
type PayrollService interface {
	// GetMyPayroll returns the caller's record for the period, creating a
	// pending one from the current salary when absent.
	GetMyPayroll(ctx context.Context, req MyPayrollRequest) (PayrollResponse, error)

	// ToggleStatus flips pending/paid (manager/HR).
	ToggleStatus(ctx context.Context, id string) (PayrollResponse, error)

	// Update edits salary/bonus/deduction fields and rederives net salary
	// (manager/HR).
	Update(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)

	// Payslip returns the read-only projection for the caller's own paid
	// record.
	Payslip(ctx context.Context, recordID string) (PayslipView, error)

	// List retrieves records with filters (manager/HR).
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
}
