package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/workforce-backend-go/internal/domain/attendance"
	"github.com/staffdesk/workforce-backend-go/internal/domain/auth"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/leave"
	"github.com/staffdesk/workforce-backend-go/internal/domain/loan"
	"github.com/staffdesk/workforce-backend-go/internal/domain/payroll"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrHRAccessRequired):
		Forbidden(w, "HR access required")
	case errors.Is(err, user.ErrEmployeeAccessRequired):
		Forbidden(w, "Employee access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeTerminated):
		Forbidden(w, "Employee is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "Must clock in before clocking out", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "You have already clocked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotAnEmployee):
		Forbidden(w, "No employee record linked to this account")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request already decided")
	case errors.Is(err, leave.ErrNotOwner):
		Forbidden(w, "Not the owner of this leave request")

	// Loan domain errors
	case errors.Is(err, loan.ErrLoanNotFound):
		NotFound(w, "Loan application not found")
	case errors.Is(err, loan.ErrAlreadyDecided):
		Conflict(w, "Loan application already decided")
	case errors.Is(err, loan.ErrNotApproved):
		Conflict(w, "Loan is not approved")
	case errors.Is(err, loan.ErrAlreadySettled):
		Conflict(w, "Loan already settled")
	case errors.Is(err, loan.ErrNotOwner):
		Forbidden(w, "Not the owner of this loan application")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayslipNotPaid):
		Forbidden(w, "Payslip is only available once the record is paid")
	case errors.Is(err, payroll.ErrNotOwner):
		Forbidden(w, "Not the owner of this payroll record")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
