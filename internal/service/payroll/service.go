package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", employee.ErrEmployeeNotFound
	}

	return employeeID, nil
}

// GetMyPayroll implements payroll.PayrollService. A missing period record is
// materialized from the employee's current salary as a pending row.
func (s *PayrollServiceImpl) GetMyPayroll(ctx context.Context, req payroll.MyPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return payroll.PayrollResponse{}, employee.ErrEmployeeNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	template := payroll.PayrollRecord{
		EmployeeID:  employeeID,
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		BaseSalary:  emp.CurrentSalary,
		Bonuses:     decimal.Zero,
		Deductions:  decimal.Zero,
		Status:      payroll.StatusPending,
	}
	template.Recalculate()

	rec, err := s.PayrollRepository.GetOrCreate(ctx, template)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return mapPayrollToResponse(rec), nil
}

// ToggleStatus implements payroll.PayrollService.
func (s *PayrollServiceImpl) ToggleStatus(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	rec, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	rec.ToggleStatus(time.Now().UTC())

	if err := s.PayrollRepository.Update(ctx, rec); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return mapPayrollToResponse(rec), nil
}

// Update implements payroll.PayrollService. Net salary is rederived from the
// stored fields on every save; clients never write it.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.PayrollRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if req.BaseSalary != nil {
		rec.BaseSalary = *req.BaseSalary
	}
	if req.Bonuses != nil {
		rec.Bonuses = *req.Bonuses
	}
	if req.BonusDescription != nil {
		rec.BonusDescription = req.BonusDescription
	}
	if req.Deductions != nil {
		rec.Deductions = *req.Deductions
	}
	if req.DeductionDescription != nil {
		rec.DeductionDescription = req.DeductionDescription
	}
	if req.Status != nil {
		newStatus := payroll.Status(*req.Status)
		if newStatus == payroll.StatusPaid && rec.Status != payroll.StatusPaid {
			now := time.Now().UTC()
			rec.PaymentDate = &now
		}
		if newStatus != payroll.StatusPaid {
			rec.PaymentDate = nil
		}
		rec.Status = newStatus
	}
	rec.Recalculate()

	if err := s.PayrollRepository.Update(ctx, rec); err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	return mapPayrollToResponse(rec), nil
}

// Payslip implements payroll.PayrollService. Only the record's owner can see
// it, and only after the record is paid.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, recordID string) (payroll.PayslipView, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return payroll.PayslipView{}, err
	}

	rec, err := s.PayrollRepository.GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.PayslipView{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayslipView{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	if rec.EmployeeID != employeeID {
		return payroll.PayslipView{}, payroll.ErrNotOwner
	}
	if rec.Status != payroll.StatusPaid {
		return payroll.PayslipView{}, payroll.ErrPayslipNotPaid
	}

	return payroll.PayslipView{
		RecordID:     rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Position:     rec.Position,
		Period:       fmt.Sprintf("%s %d", time.Month(rec.PeriodMonth), rec.PeriodYear),
		BaseSalary:   rec.BaseSalary,
		Bonuses:      rec.Bonuses,
		Deductions:   rec.Deductions,
		NetSalary:    rec.NetSalary,
		PaymentDate:  datePtrToString(rec.PaymentDate),
	}, nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapPayrollToResponse(rec))
	}

	return payroll.ListPayrollResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func datePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}

func mapPayrollToResponse(rec payroll.PayrollRecord) payroll.PayrollResponse {
	return payroll.PayrollResponse{
		ID:                   rec.ID,
		EmployeeID:           rec.EmployeeID,
		EmployeeName:         rec.EmployeeName,
		Position:             rec.Position,
		PeriodMonth:          rec.PeriodMonth,
		PeriodYear:           rec.PeriodYear,
		BaseSalary:           rec.BaseSalary,
		Bonuses:              rec.Bonuses,
		BonusDescription:     rec.BonusDescription,
		Deductions:           rec.Deductions,
		DeductionDescription: rec.DeductionDescription,
		NetSalary:            rec.NetSalary,
		Status:               string(rec.Status),
		PaymentDate:          datePtrToString(rec.PaymentDate),
	}
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
	}
}
