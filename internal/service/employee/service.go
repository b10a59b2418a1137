package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
	"github.com/staffdesk/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

// Register implements employee.EmployeeService. The employee row and the
// linked login user are created in one transaction so a failed user insert
// never leaves an orphaned employee.
func (s *EmployeeServiceImpl) Register(ctx context.Context, req employee.RegisterEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee email: %w", err)
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}

	hireDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.HireDate != nil && *req.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
		hireDate = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			FullName:       req.FullName,
			Department:     req.Department,
			Position:       req.Position,
			Email:          req.Email,
			ManagerID:      req.ManagerID,
			CurrentSalary:  req.CurrentSalary,
			Status:         employee.StatusActive,
			TotalLeaveDays: employee.DefaultLeaveDays,
			HireDate:       hireDate,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		_, err = s.UserRepository.Create(txCtx, user.User{
			EmployeeID:   &created.ID,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  responses,
	}, nil
}

// UpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.UpdateStatus(ctx, req.ID, employee.EmploymentStatus(req.Status)); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get updated employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// AdjustLeaveAllotment implements employee.EmployeeService. Items succeed and
// fail independently; the batch never aborts on one bad id.
func (s *EmployeeServiceImpl) AdjustLeaveAllotment(ctx context.Context, req employee.AdjustLeaveAllotmentRequest) (employee.BulkResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.BulkResponse{}, err
	}

	results := make([]employee.BulkItemResult, 0, len(req.EmployeeIDs))
	anySucceeded := false
	for _, id := range req.EmployeeIDs {
		item := employee.BulkItemResult{EmployeeID: id, Success: true}
		if err := s.EmployeeRepository.AddLeaveDays(ctx, id, req.Days); err != nil {
			item.Success = false
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				item.Message = "Employee not found"
			} else {
				item.Message = "Failed to adjust leave days"
			}
		} else {
			anySucceeded = true
		}
		results = append(results, item)
	}

	return employee.BulkResponse{Success: anySucceeded, Results: results}, nil
}

// BulkResetPasswords implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkResetPasswords(ctx context.Context, req employee.BulkResetPasswordsRequest) (employee.BulkResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.BulkResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.BulkResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	results := make([]employee.BulkItemResult, 0, len(req.EmployeeIDs))
	anySucceeded := false
	for _, id := range req.EmployeeIDs {
		item := employee.BulkItemResult{EmployeeID: id, Success: true}
		if err := s.UserRepository.UpdatePasswordByEmployeeID(ctx, id, string(hash)); err != nil {
			item.Success = false
			if errors.Is(err, user.ErrUserNotFound) {
				item.Message = "Employee not found"
			} else {
				item.Message = "Failed to reset password"
			}
		} else {
			anySucceeded = true
		}
		results = append(results, item)
	}

	return employee.BulkResponse{Success: anySucceeded, Results: results}, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		Department:     emp.Department,
		Position:       emp.Position,
		Email:          emp.Email,
		ManagerID:      emp.ManagerID,
		CurrentSalary:  emp.CurrentSalary,
		Status:         string(emp.Status),
		TotalLeaveDays: emp.TotalLeaveDays,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		CreatedAt:      emp.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
	}
}
