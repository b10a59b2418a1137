package leave

import (
	"time"

	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// Validate checks the submission against today's date. Callers pass the
// current day so the past-date rule stays testable.
func (r *SubmitLeaveRequest) Validate(today time.Time) error {
	var errs validator.ValidationErrors

	if !ValidType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be annual, sick, personal or other"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if startOK {
		dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if start.Before(dayStart) {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must not be a past date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidDecision(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Department   *string `json:"department,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Days         int     `json:"days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type LeaveFilter struct {
	Status    *string
	LeaveType *string
	Page      int
	Limit     int

	// Scope fields are set by the service from caller claims, never parsed
	// from the request.
	EmployeeID *string
	ManagerID  *string
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		switch Status(*f.Status) {
		case StatusPending, StatusApproved, StatusRejected:
		default:
			errs = append(errs, validator.ValidationError{Field: "status", Message: "must be pending, approved or rejected"})
		}
	}
	if f.LeaveType != nil && *f.LeaveType != "" && !ValidType(*f.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be annual, sick, personal or other"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Requests   []LeaveResponse `json:"requests"`
}
