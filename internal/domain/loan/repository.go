package loan

import "context"

// LoanRepository defines data access for loan applications.
type LoanRepository interface {
	Create(ctx context.Context, app LoanApplication) (LoanApplication, error)

	GetByID(ctx context.Context, id string) (LoanApplication, error)

	// Decide transitions a pending application; only pending rows match.
	Decide(ctx context.Context, app LoanApplication) (LoanApplication, error)

	// Settle moves an approved application to paid; only approved rows match.
	Settle(ctx context.Context, id string) (LoanApplication, error)

	Delete(ctx context.Context, id string) error

	// Balance aggregates approved/paid amounts for one employee in SQL.
	Balance(ctx context.Context, employeeID string) (Balance, error)

	List(ctx context.Context, filter LoanFilter) ([]LoanApplication, int64, error)
}
