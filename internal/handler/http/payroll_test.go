package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/staffdesk/workforce-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	lastMyPayrollReq payroll.MyPayrollRequest
}

func (f *fakePayrollService) GetMyPayroll(ctx context.Context, req payroll.MyPayrollRequest) (payroll.PayrollResponse, error) {
	f.lastMyPayrollReq = req
	return payroll.PayrollResponse{PeriodMonth: req.Month, PeriodYear: req.Year}, nil
}

func (f *fakePayrollService) ToggleStatus(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

func (f *fakePayrollService) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	return payroll.PayrollResponse{}, nil
}

func (f *fakePayrollService) Payslip(ctx context.Context, recordID string) (payroll.PayslipView, error) {
	return payroll.PayslipView{}, nil
}

func (f *fakePayrollService) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	return payroll.ListPayrollResponse{}, nil
}

func TestGetMyPayrollDefaultsToCurrentPeriod(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetMyPayroll(rec, httptest.NewRequest(http.MethodGet, "/payroll/my", nil))

	now := time.Now().UTC()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(now.Month()), svc.lastMyPayrollReq.Month)
	assert.Equal(t, now.Year(), svc.lastMyPayrollReq.Year)
}

func TestGetMyPayrollDefaultsYearOnly(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetMyPayroll(rec, httptest.NewRequest(http.MethodGet, "/payroll/my?month=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastMyPayrollReq.Month)
	assert.Equal(t, time.Now().UTC().Year(), svc.lastMyPayrollReq.Year)
}

func TestGetMyPayrollExplicitPeriodPassedThrough(t *testing.T) {
	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	rec := httptest.NewRecorder()
	handler.GetMyPayroll(rec, httptest.NewRequest(http.MethodGet, "/payroll/my?month=12&year=2025", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, svc.lastMyPayrollReq.Month)
	assert.Equal(t, 2025, svc.lastMyPayrollReq.Year)
}
