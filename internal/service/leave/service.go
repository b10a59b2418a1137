package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/leave"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
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

// Submit implements leave.LeaveService. Approval never touches the yearly
// allotment; the allotment is informational and only HR adjusts it.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(time.Now().UTC()); err != nil {
		return leave.LeaveResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if caller.EmployeeID == "" {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: caller.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(created), nil
}

// Decide implements leave.LeaveService. Managers decide only their direct
// reports; HR decides any request. First decision wins.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if caller.Role == user.RoleManager {
		emp, err := s.EmployeeRepository.GetByID(ctx, existing.EmployeeID)
		if err != nil {
			return leave.LeaveResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if emp.ManagerID == nil || *emp.ManagerID != caller.EmployeeID {
			return leave.LeaveResponse{}, user.ErrInsufficientPermissions
		}
	}

	decided, err := s.LeaveRequestRepository.Decide(ctx, req.ID, leave.Status(req.Status), caller.UserID)
	if err != nil {
		if errors.Is(err, leave.ErrAlreadyDecided) {
			return leave.LeaveResponse{}, leave.ErrAlreadyDecided
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to decide leave request: %w", err)
	}

	decided.EmployeeName = existing.EmployeeName
	decided.Department = existing.Department

	return mapLeaveToResponse(decided), nil
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string) error {
	caller, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to get leave request: %w", err)
	}

	if existing.EmployeeID != caller.EmployeeID {
		return leave.ErrNotOwner
	}
	if !existing.IsPending() {
		return leave.ErrAlreadyDecided
	}

	if err := s.LeaveRequestRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	caller, err := claimsFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	switch caller.Role {
	case user.RoleHR:
		// Unscoped.
	case user.RoleManager:
		filter.ManagerID = &caller.EmployeeID
	default:
		filter.EmployeeID = &caller.EmployeeID
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, mapLeaveToResponse(req))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

func mapLeaveToResponse(l leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Department:   l.Department,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       string(l.Status),
		ApprovedBy:   l.ApprovedBy,
		CreatedAt:    l.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
	}
}
