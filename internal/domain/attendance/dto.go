package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	EmployeeName *string          `json:"employee_name,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Date         string           `json:"date"`
	ClockInTime  *string          `json:"clock_in_time,omitempty"`
	ClockOutTime *string          `json:"clock_out_time,omitempty"`
	Status       string           `json:"status"`
	HoursWorked  *decimal.Decimal `json:"hours_worked,omitempty"`
	AutoClockOut bool             `json:"auto_clock_out"`
}

// MyAttendanceFilter scopes queries to the calling employee.
type MyAttendanceFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDateFields(f.Date, f.StartDate, f.EndDate)...)
	if f.Status != nil && *f.Status != "" && !ValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, absent or leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter is the manager/HR view over all employees.
type AttendanceFilter struct {
	EmployeeID *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validateDateFields(f.Date, f.StartDate, f.EndDate)...)
	if f.Status != nil && *f.Status != "" && !ValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be present, absent or leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDateFields(date, start, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if date != nil && *date != "" {
		if _, ok := validator.IsValidDate(*date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	var startOK, endOK bool
	if start != nil && *start != "" {
		if _, ok := validator.IsValidDate(*start); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			startOK = true
		}
	}
	if end != nil && *end != "" {
		if _, ok := validator.IsValidDate(*end); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else {
			endOK = true
		}
	}
	if startOK && endOK && *start > *end {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must not be after end_date"})
	}
	return errs
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}
