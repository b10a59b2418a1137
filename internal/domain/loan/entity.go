package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

// ValidDecision reports whether s is a valid decision for a pending loan.
func ValidDecision(s string) bool {
	return Status(s) == StatusApproved || Status(s) == StatusRejected
}

const (
	MinDurationMonths = 1
	MaxDurationMonths = 60
)

type LoanApplication struct {
	ID                 string
	EmployeeID         string
	LoanType           string
	Amount             decimal.Decimal
	Reason             string
	DurationMonths     int
	InterestRate       decimal.Decimal
	MonthlyInstallment decimal.Decimal
	Status             Status
	ApprovedBy         *string
	ApprovedAt         *time.Time
	StartDate          *time.Time
	EndDate            *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
}

// IsPending reports whether the application can still be decided or cancelled.
func (l *LoanApplication) IsPending() bool {
	return l.Status == StatusPending
}

// Approve marks the application approved as of now. The repayment window
// starts on the approval date and spans DurationMonths calendar months.
func (l *LoanApplication) Approve(deciderID string, now time.Time) {
	end := now.AddDate(0, l.DurationMonths, 0)
	l.Status = StatusApproved
	l.ApprovedBy = &deciderID
	l.ApprovedAt = &now
	l.StartDate = &now
	l.EndDate = &end
}

// Balance aggregates loan amounts for one employee. Outstanding is always
// derived from the two sums, never stored.
type Balance struct {
	EmployeeID    string
	TotalApproved decimal.Decimal
	TotalPaid     decimal.Decimal
}

// Outstanding is what remains to be settled: approved minus already paid.
func (b Balance) Outstanding() decimal.Decimal {
	return b.TotalApproved.Sub(b.TotalPaid)
}
