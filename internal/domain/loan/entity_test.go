package loan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprove_StampsRepaymentWindow(t *testing.T) {
	app := LoanApplication{
		ID:             "loan-1",
		EmployeeID:     "emp-1",
		Amount:         decimal.NewFromInt(12000),
		DurationMonths: 12,
		Status:         StatusPending,
	}

	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	app.Approve("mgr-1", now)

	assert.Equal(t, StatusApproved, app.Status)
	require.NotNil(t, app.ApprovedAt)
	require.NotNil(t, app.StartDate)
	require.NotNil(t, app.EndDate)
	assert.Equal(t, now, *app.StartDate)
	assert.Equal(t, time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), *app.EndDate)
	require.NotNil(t, app.ApprovedBy)
	assert.Equal(t, "mgr-1", *app.ApprovedBy)
}

func TestApprove_CalendarMonthArithmetic(t *testing.T) {
	app := LoanApplication{DurationMonths: 18, Status: StatusPending}
	now := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)
	app.Approve("hr-1", now)

	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *app.EndDate)
}

func TestBalanceOutstanding(t *testing.T) {
	b := Balance{
		TotalApproved: decimal.NewFromInt(20000),
		TotalPaid:     decimal.NewFromInt(5000),
	}
	assert.True(t, b.Outstanding().Equal(decimal.NewFromInt(15000)))

	settled := Balance{
		TotalApproved: decimal.NewFromInt(7500),
		TotalPaid:     decimal.NewFromInt(7500),
	}
	assert.True(t, settled.Outstanding().IsZero())
}

func TestApplyLoanRequest_Validate(t *testing.T) {
	valid := ApplyLoanRequest{
		LoanType:           "personal",
		Amount:             decimal.NewFromInt(12000),
		Reason:             "home repair",
		DurationMonths:     12,
		InterestRate:       decimal.Zero,
		MonthlyInstallment: decimal.NewFromInt(1000),
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*ApplyLoanRequest)
		field  string
	}{
		{"zero amount", func(r *ApplyLoanRequest) { r.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(r *ApplyLoanRequest) { r.Amount = decimal.NewFromInt(-5) }, "amount"},
		{"duration too short", func(r *ApplyLoanRequest) { r.DurationMonths = 0 }, "duration_months"},
		{"duration too long", func(r *ApplyLoanRequest) { r.DurationMonths = 61 }, "duration_months"},
		{"missing type", func(r *ApplyLoanRequest) { r.LoanType = " " }, "loan_type"},
		{"missing reason", func(r *ApplyLoanRequest) { r.Reason = "" }, "reason"},
		{"negative interest", func(r *ApplyLoanRequest) { r.InterestRate = decimal.NewFromInt(-1) }, "interest_rate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.field)
		})
	}
}

func TestDecideLoanRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecideLoanRequest{Status: "approved"}).Validate())
	assert.NoError(t, (&DecideLoanRequest{Status: "rejected"}).Validate())
	assert.Error(t, (&DecideLoanRequest{Status: "paid"}).Validate())
	assert.Error(t, (&DecideLoanRequest{Status: "pending"}).Validate())
}
