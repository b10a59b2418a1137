package payroll

import "context"

// PayrollRepository defines data access for per-period payroll records.
type PayrollRepository interface {
	// GetOrCreate returns the record for (employeeID, month, year),
	// inserting one from the given template when absent. The insert is an
	// ON CONFLICT upsert so two concurrent first reads cannot create twins.
	GetOrCreate(ctx context.Context, template PayrollRecord) (PayrollRecord, error)

	GetByID(ctx context.Context, id string) (PayrollRecord, error)

	// Update persists the full mutable field set of rec, including the
	// rederived net salary.
	Update(ctx context.Context, rec PayrollRecord) error

	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
}
