package loan

import "context"

// LoanService defines business logic for the loan ledger.
type LoanService interface {
	// Apply creates a pending application for the authenticated employee.
	Apply(ctx context.Context, req ApplyLoanRequest) (LoanResponse, error)

	// Decide approves or rejects a pending application (manager/HR). On
	// approval the repayment window is stamped from the approval date.
	Decide(ctx context.Context, req DecideLoanRequest) (LoanResponse, error)

	// Settle moves an approved application to paid (manager/HR).
	Settle(ctx context.Context, id string) (LoanResponse, error)

	// Cancel hard-deletes the caller's own pending application.
	Cancel(ctx context.Context, id string) error

	// Balance returns the caller's own aggregate loan position.
	Balance(ctx context.Context) (BalanceResponse, error)

	// List scopes results by role: employee sees own, manager/HR see all.
	List(ctx context.Context, filter LoanFilter) (ListLoanResponse, error)
}
