package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrPayslipNotPaid        = errors.New("payslip only available once paid")
	ErrNotOwner              = errors.New("payroll record does not belong to you")
	ErrInvalidPeriod         = errors.New("invalid payroll period")
)
