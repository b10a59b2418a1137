package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

type PayrollResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         *string         `json:"employee_name,omitempty"`
	Position             *string         `json:"position,omitempty"`
	PeriodMonth          int             `json:"period_month"`
	PeriodYear           int             `json:"period_year"`
	BaseSalary           decimal.Decimal `json:"base_salary"`
	Bonuses              decimal.Decimal `json:"bonuses"`
	BonusDescription     *string         `json:"bonus_description,omitempty"`
	Deductions           decimal.Decimal `json:"deductions"`
	DeductionDescription *string         `json:"deduction_description,omitempty"`
	NetSalary            decimal.Decimal `json:"net_salary"`
	Status               string          `json:"status"`
	PaymentDate          *string         `json:"payment_date,omitempty"`
}

// PayslipView is the read-only projection returned once a record is paid.
type PayslipView struct {
	RecordID     string          `json:"record_id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	Position     *string         `json:"position,omitempty"`
	Period       string          `json:"period"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	PaymentDate  *string         `json:"payment_date,omitempty"`
}

type MyPayrollRequest struct {
	Month int
	Year  int
}

func (r *MyPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePayrollRequest is the manager/HR direct-edit path. NetSalary is
// intentionally absent: it is rederived on every save.
type UpdatePayrollRequest struct {
	ID                   string           `json:"-"`
	BaseSalary           *decimal.Decimal `json:"base_salary,omitempty"`
	Bonuses              *decimal.Decimal `json:"bonuses,omitempty"`
	BonusDescription     *string          `json:"bonus_description,omitempty"`
	Deductions           *decimal.Decimal `json:"deductions,omitempty"`
	DeductionDescription *string          `json:"deduction_description,omitempty"`
	Status               *string          `json:"status,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "bonuses", Message: "must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}
	if r.Status != nil && !ValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, processing or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollFilter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	Status     *string
	Page       int
	Limit      int
}

func (f *PayrollFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && !validator.IsValidMonth(*f.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if f.Status != nil && *f.Status != "" && !ValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, processing or paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Records    []PayrollResponse `json:"records"`
}
