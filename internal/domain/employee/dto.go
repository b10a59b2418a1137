package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

type RegisterEmployeeRequest struct {
	FullName      string          `json:"full_name"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Role          string          `json:"role"`
	ManagerID     *string         `json:"manager_id,omitempty"`
	CurrentSalary decimal.Decimal `json:"current_salary"`
	HireDate      *string         `json:"hire_date,omitempty"`
}

func (r *RegisterEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.Role != "" && r.Role != "employee" && r.Role != "manager" && r.Role != "hr" {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be employee, manager or hr"})
	}
	if r.CurrentSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "current_salary", Message: "must be non-negative"})
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, on_leave or terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AdjustLeaveAllotmentRequest adds Days to each listed employee's yearly
// allotment. Items are processed independently.
type AdjustLeaveAllotmentRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Days        int      `json:"days"`
}

func (r *AdjustLeaveAllotmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "is required"})
	}
	if r.Days == 0 {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be non-zero"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkResetPasswordsRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	NewPassword string   `json:"new_password"`
}

func (r *BulkResetPasswordsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "is required"})
	}
	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkItemResult is the per-item outcome of a batch operation.
type BulkItemResult struct {
	EmployeeID string `json:"employee_id"`
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
}

// BulkResponse reports per-item results; Success is true when any item
// succeeded, so one bad id does not mask the rest of the batch.
type BulkResponse struct {
	Success bool             `json:"success"`
	Results []BulkItemResult `json:"results"`
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	Department     string          `json:"department"`
	Position       string          `json:"position"`
	Email          string          `json:"email"`
	ManagerID      *string         `json:"manager_id,omitempty"`
	CurrentSalary  decimal.Decimal `json:"current_salary"`
	Status         string          `json:"status"`
	TotalLeaveDays int             `json:"total_leave_days"`
	HireDate       string          `json:"hire_date"`
	CreatedAt      string          `json:"created_at"`
}

type ListEmployeesFilter struct {
	Department *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
}

func (f *ListEmployeesFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !ValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active, on_leave or terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
