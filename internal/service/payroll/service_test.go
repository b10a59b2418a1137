package payroll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authContext(t *testing.T, userID, employeeID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     userID,
		"employee_id": employeeID,
		"role":        role,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type periodKey struct {
	employeeID string
	month      int
	year       int
}

type fakePayrollRepo struct {
	records map[string]*payroll.PayrollRecord
	periods map[periodKey]string
	nextID  int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records: make(map[string]*payroll.PayrollRecord),
		periods: make(map[periodKey]string),
	}
}

func (f *fakePayrollRepo) GetOrCreate(ctx context.Context, template payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	key := periodKey{template.EmployeeID, template.PeriodMonth, template.PeriodYear}
	if id, ok := f.periods[key]; ok {
		return *f.records[id], nil
	}
	f.nextID++
	template.ID = fmt.Sprintf("pay-%d", f.nextID)
	template.CreatedAt = time.Now()
	f.records[template.ID] = &template
	f.periods[key] = template.ID
	return template, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
	}
	return *rec, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, rec payroll.PayrollRecord) error {
	if _, ok := f.records[rec.ID]; !ok {
		return payroll.ErrPayrollRecordNotFound
	}
	f.records[rec.ID] = &rec
	return nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	var out []payroll.PayrollRecord
	for _, rec := range f.records {
		if filter.EmployeeID != nil && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) UpdateStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	return nil
}

func (f *fakeEmployeeRepo) AddLeaveDays(ctx context.Context, id string, delta int) error {
	return nil
}

func newService(payRepo *fakePayrollRepo) payroll.PayrollService {
	empRepo := &fakeEmployeeRepo{employees: map[string]*employee.Employee{
		"emp-1": {
			ID:            "emp-1",
			FullName:      "Ana Dewi",
			Department:    "Engineering",
			Position:      "Engineer",
			Email:         "ana@example.com",
			CurrentSalary: decimal.NewFromInt(9000000),
			Status:        employee.StatusActive,
		},
	}}
	return NewPayrollService(payRepo, empRepo)
}

func TestGetMyPayrollCreatesFromCurrentSalary(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ctx := authContext(t, "user-1", "emp-1", "employee")

	resp, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.BaseSalary.Equal(decimal.NewFromInt(9000000)))
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(9000000)))

	// Same period returns the same record, not a twin.
	again, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, again.ID)
	assert.Len(t, repo.records, 1)
}

func TestGetMyPayrollInvalidPeriod(t *testing.T) {
	svc := newService(newFakePayrollRepo())
	ctx := authContext(t, "user-1", "emp-1", "employee")

	_, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 13, Year: 2026})
	assert.Error(t, err)
}

func TestUpdateRederivesNetSalary(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ctx := authContext(t, "user-1", "emp-1", "employee")

	created, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)

	bonus := decimal.NewFromInt(500000)
	deduction := decimal.NewFromInt(200000)
	updated, err := svc.Update(ctx, payroll.UpdatePayrollRequest{
		ID:         created.ID,
		Bonuses:    &bonus,
		Deductions: &deduction,
	})
	require.NoError(t, err)
	assert.True(t, updated.NetSalary.Equal(decimal.NewFromInt(9300000)))
}

func TestUpdateStatusControlsPaymentDate(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ctx := authContext(t, "user-1", "emp-1", "employee")

	created, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)

	paid := "paid"
	updated, err := svc.Update(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Status: &paid})
	require.NoError(t, err)
	require.NotNil(t, updated.PaymentDate)

	processing := "processing"
	updated, err = svc.Update(ctx, payroll.UpdatePayrollRequest{ID: created.ID, Status: &processing})
	require.NoError(t, err)
	assert.Nil(t, updated.PaymentDate)
}

func TestToggleStatusRoundTrip(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ctx := authContext(t, "user-1", "emp-1", "employee")

	created, err := svc.GetMyPayroll(ctx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", toggled.Status)
	assert.NotNil(t, toggled.PaymentDate)

	back, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", back.Status)
	assert.Nil(t, back.PaymentDate)
}

func TestToggleStatusMissingRecord(t *testing.T) {
	svc := newService(newFakePayrollRepo())

	_, err := svc.ToggleStatus(authContext(t, "user-1", "emp-1", "hr"), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayrollRecordNotFound)
}

func TestPayslipGates(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ownerCtx := authContext(t, "user-1", "emp-1", "employee")

	created, err := svc.GetMyPayroll(ownerCtx, payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)

	// Unpaid record has no payslip yet.
	_, err = svc.Payslip(ownerCtx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotPaid)

	_, err = svc.ToggleStatus(ownerCtx, created.ID)
	require.NoError(t, err)

	// Paid, but someone else's record.
	_, err = svc.Payslip(authContext(t, "user-2", "emp-2", "employee"), created.ID)
	assert.ErrorIs(t, err, payroll.ErrNotOwner)

	slip, err := svc.Payslip(ownerCtx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, slip.RecordID)
	assert.Equal(t, "August 2026", slip.Period)
	assert.True(t, slip.NetSalary.Equal(decimal.NewFromInt(9000000)))
	assert.NotNil(t, slip.PaymentDate)
}

func TestListDefaultsPagination(t *testing.T) {
	repo := newFakePayrollRepo()
	svc := newService(repo)
	ctx := authContext(t, "user-1", "emp-1", "hr")

	_, err := svc.GetMyPayroll(authContext(t, "user-1", "emp-1", "employee"), payroll.MyPayrollRequest{Month: 8, Year: 2026})
	require.NoError(t, err)

	resp, err := svc.List(ctx, payroll.PayrollFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, int64(1), resp.TotalCount)
}
