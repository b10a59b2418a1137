package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/loan"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
)

type LoanServiceImpl struct {
	loan.LoanRepository
}

type callerClaims struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func claimsFromContext(ctx context.Context) (callerClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return callerClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	return callerClaims{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       user.Role(role),
	}, nil
}

// Apply implements loan.LoanService. The monthly installment is stored as
// submitted; the ledger records terms, it does not compute them.
func (s *LoanServiceImpl) Apply(ctx context.Context, req loan.ApplyLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}
	if caller.EmployeeID == "" {
		return loan.LoanResponse{}, employee.ErrEmployeeNotFound
	}

	created, err := s.LoanRepository.Create(ctx, loan.LoanApplication{
		EmployeeID:         caller.EmployeeID,
		LoanType:           req.LoanType,
		Amount:             req.Amount,
		Reason:             req.Reason,
		DurationMonths:     req.DurationMonths,
		InterestRate:       req.InterestRate,
		MonthlyInstallment: req.MonthlyInstallment,
		Status:             loan.StatusPending,
	})
	if err != nil {
		return loan.LoanResponse{}, fmt.Errorf("failed to create loan application: %w", err)
	}

	return mapLoanToResponse(created), nil
}

// Decide implements loan.LoanService. On approval the repayment window is
// stamped from the decision time, not from the application date.
func (s *LoanServiceImpl) Decide(ctx context.Context, req loan.DecideLoanRequest) (loan.LoanResponse, error) {
	if err := req.Validate(); err != nil {
		return loan.LoanResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return loan.LoanResponse{}, err
	}

	app, err := s.LoanRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, loan.ErrLoanNotFound) {
			return loan.LoanResponse{}, loan.ErrLoanNotFound
		}
		return loan.LoanResponse{}, fmt.Errorf("failed to get loan application: %w", err)
	}

	if loan.Status(req.Status) == loan.StatusApproved {
		app.Approve(caller.UserID, time.Now().UTC())
	} else {
		app.Status = loan.StatusRejected
		app.ApprovedBy = &caller.UserID
		now := time.Now().UTC()
		app.ApprovedAt = &now
	}

	decided, err := s.LoanRepository.Decide(ctx, app)
	if err != nil {
		if errors.Is(err, loan.ErrAlreadyDecided) {
			return loan.LoanResponse{}, loan.ErrAlreadyDecided
		}
		return loan.LoanResponse{}, fmt.Errorf("failed to decide loan application: %w", err)
	}

	decided.EmployeeName = app.EmployeeName
	decided.EmployeeEmail = app.EmployeeEmail
	decided.Department = app.Department

	return mapLoanToResponse(decided), nil
}

// Settle implements loan.LoanService.
func (s *LoanServiceImpl) Settle(ctx context.Context, id string) (loan.LoanResponse, error) {
	settled, err := s.LoanRepository.Settle(ctx, id)
	if err != nil {
		if errors.Is(err, loan.ErrNotApproved) {
			// Distinguish missing from wrong-state for the caller.
			existing, getErr := s.LoanRepository.GetByID(ctx, id)
			if getErr != nil {
				if errors.Is(getErr, loan.ErrLoanNotFound) {
					return loan.LoanResponse{}, loan.ErrLoanNotFound
				}
				return loan.LoanResponse{}, fmt.Errorf("failed to get loan application: %w", getErr)
			}
			if existing.Status == loan.StatusPaid {
				return loan.LoanResponse{}, loan.ErrAlreadySettled
			}
			return loan.LoanResponse{}, loan.ErrNotApproved
		}
		return loan.LoanResponse{}, fmt.Errorf("failed to settle loan: %w", err)
	}

	return mapLoanToResponse(settled), nil
}

// Cancel implements loan.LoanService.
func (s *LoanServiceImpl) Cancel(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.LoanRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, loan.ErrLoanNotFound) {
			return loan.ErrLoanNotFound
		}
		return fmt.Errorf("failed to get loan application: %w", err)
	}

	if existing.EmployeeID != caller.EmployeeID {
		return loan.ErrNotOwner
	}
	if !existing.IsPending() {
		return loan.ErrAlreadyDecided
	}

	if err := s.LoanRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete loan application: %w", err)
	}

	return nil
}

// Balance implements loan.LoanService.
func (s *LoanServiceImpl) Balance(ctx context.Context) (loan.BalanceResponse, error) {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return loan.BalanceResponse{}, err
	}

	b, err := s.LoanRepository.Balance(ctx, caller.EmployeeID)
	if err != nil {
		return loan.BalanceResponse{}, fmt.Errorf("failed to get loan balance: %w", err)
	}

	return loan.BalanceResponse{
		EmployeeID:    b.EmployeeID,
		TotalApproved: b.TotalApproved,
		TotalPaid:     b.TotalPaid,
		Outstanding:   b.Outstanding(),
	}, nil
}

// List implements loan.LoanService.
func (s *LoanServiceImpl) List(ctx context.Context, filter loan.LoanFilter) (loan.ListLoanResponse, error) {
	if err := filter.Validate(); err != nil {
		return loan.ListLoanResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return loan.ListLoanResponse{}, err
	}

	if caller.Role != user.RoleManager && caller.Role != user.RoleHR {
		filter.EmployeeID = &caller.EmployeeID
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	loans, total, err := s.LoanRepository.List(ctx, filter)
	if err != nil {
		return loan.ListLoanResponse{}, fmt.Errorf("failed to list loans: %w", err)
	}

	responses := make([]loan.LoanResponse, 0, len(loans))
	for _, l := range loans {
		responses = append(responses, mapLoanToResponse(l))
	}

	return loan.ListLoanResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Loans:      responses,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02")
	return &format
}

func mapLoanToResponse(l loan.LoanApplication) loan.LoanResponse {
	return loan.LoanResponse{
		ID:                 l.ID,
		EmployeeID:         l.EmployeeID,
		EmployeeName:       l.EmployeeName,
		EmployeeEmail:      l.EmployeeEmail,
		Department:         l.Department,
		LoanType:           l.LoanType,
		Amount:             l.Amount,
		Reason:             l.Reason,
		DurationMonths:     l.DurationMonths,
		InterestRate:       l.InterestRate,
		MonthlyInstallment: l.MonthlyInstallment,
		Status:             string(l.Status),
		ApprovedBy:         l.ApprovedBy,
		ApprovedAt:         timePtrToString(l.ApprovedAt),
		StartDate:          timePtrToString(l.StartDate),
		EndDate:            timePtrToString(l.EndDate),
		CreatedAt:          l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewLoanService(loanRepo loan.LoanRepository) loan.LoanService {
	return &LoanServiceImpl{
		LoanRepository: loanRepo,
	}
}
