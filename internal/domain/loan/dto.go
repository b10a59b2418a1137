package loan

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

type ApplyLoanRequest struct {
	LoanType       string          `json:"loan_type"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
	DurationMonths int             `json:"duration_months"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	// MonthlyInstallment is supplied by the caller and persisted as-is; the
	// ledger validates bounds but never recomputes it.
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
}

func (r *ApplyLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LoanType) {
		errs = append(errs, validator.ValidationError{Field: "loan_type", Message: "is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than zero"})
	}
	if r.DurationMonths < MinDurationMonths || r.DurationMonths > MaxDurationMonths {
		errs = append(errs, validator.ValidationError{Field: "duration_months", Message: "must be between 1 and 60"})
	}
	if r.InterestRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "interest_rate", Message: "must be non-negative"})
	}
	if r.MonthlyInstallment.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_installment", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLoanRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *DecideLoanRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidDecision(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoanResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       *string         `json:"employee_name,omitempty"`
	EmployeeEmail      *string         `json:"employee_email,omitempty"`
	Department         *string         `json:"department,omitempty"`
	LoanType           string          `json:"loan_type"`
	Amount             decimal.Decimal `json:"amount"`
	Reason             string          `json:"reason"`
	DurationMonths     int             `json:"duration_months"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	MonthlyInstallment decimal.Decimal `json:"monthly_installment"`
	Status             string          `json:"status"`
	ApprovedBy         *string         `json:"approved_by,omitempty"`
	ApprovedAt         *string         `json:"approved_at,omitempty"`
	StartDate          *string         `json:"start_date,omitempty"`
	EndDate            *string         `json:"end_date,omitempty"`
	CreatedAt          string          `json:"created_at"`
}

type BalanceResponse struct {
	EmployeeID    string          `json:"employee_id"`
	TotalApproved decimal.Decimal `json:"total_approved"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

type LoanFilter struct {
	Status *string
	Year   *int
	Page   int
	Limit  int

	// Set by the service from caller claims.
	EmployeeID *string
}

func (f *LoanFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		switch Status(*f.Status) {
		case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, approved, rejected or paid"})
		}
	}
	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLoanResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	Loans      []LoanResponse `json:"loans"`
}
