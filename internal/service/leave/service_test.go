package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/employee"
	"github.com/staffdesk/workforce-backend-go/internal/domain/leave"
	"github.com/staffdesk/workforce-backend-go/internal/domain/user"
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

type fakeLeaveRepo struct {
	requests map[string]*leave.LeaveRequest
	nextID   int

	lastFilter leave.LeaveFilter
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	req.ID = fmt.Sprintf("leave-%d", f.nextID)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *req, nil
}

func (f *fakeLeaveRepo) Decide(ctx context.Context, id string, status leave.Status, deciderID string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok || req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyDecided
	}
	req.Status = status
	req.ApprovedBy = &deciderID
	return *req, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	f.lastFilter = filter
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, *req)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		f.employees[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
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
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.TotalLeaveDays += delta
	f.employees[id] = emp
	return nil
}

func futureDates() (string, string) {
	start := time.Now().UTC().AddDate(0, 0, 7)
	end := start.AddDate(0, 0, 2)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

func reportOf(id, managerID string) employee.Employee {
	return employee.Employee{
		ID:             id,
		FullName:       "Budi Santoso",
		Department:     "Engineering",
		ManagerID:      &managerID,
		Status:         employee.StatusActive,
		TotalLeaveDays: 14,
	}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))
	ctx := authContext(t, "user-1", "emp-1", "employee")

	start, end := futureDates()
	resp, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 3, resp.Days)
}

func TestDecideApprovesAndKeepsAllotment(t *testing.T) {
	repo := newFakeLeaveRepo()
	empRepo := newFakeEmployeeRepo(reportOf("emp-1", "mgr-1"))
	svc := NewLeaveService(repo, empRepo)

	start, end := futureDates()
	created, err := svc.Submit(authContext(t, "user-1", "emp-1", "employee"), leave.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(authContext(t, "user-hr", "emp-hr", "hr"), leave.DecideLeaveRequest{
		ID:     created.ID,
		Status: "approved",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.ApprovedBy)
	assert.Equal(t, "user-hr", *decided.ApprovedBy)

	// Approval records the decision only; the yearly allotment is untouched.
	emp, err := empRepo.GetByID(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 14, emp.TotalLeaveDays)
}

func TestDecideTwiceConflicts(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))

	start, end := futureDates()
	created, err := svc.Submit(authContext(t, "user-1", "emp-1", "employee"), leave.SubmitLeaveRequest{
		LeaveType: "sick",
		StartDate: start,
		EndDate:   end,
		Reason:    "flu",
	})
	require.NoError(t, err)

	hrCtx := authContext(t, "user-hr", "emp-hr", "hr")
	_, err = svc.Decide(hrCtx, leave.DecideLeaveRequest{ID: created.ID, Status: "rejected"})
	require.NoError(t, err)

	_, err = svc.Decide(hrCtx, leave.DecideLeaveRequest{ID: created.ID, Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestManagerCannotDecideOutsideTeam(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))

	start, end := futureDates()
	created, err := svc.Submit(authContext(t, "user-1", "emp-1", "employee"), leave.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)

	// mgr-2 is not emp-1's manager.
	_, err = svc.Decide(authContext(t, "user-mgr2", "mgr-2", "manager"), leave.DecideLeaveRequest{
		ID:     created.ID,
		Status: "approved",
	})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)
}

func TestCancelOwnPendingRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))
	ctx := authContext(t, "user-1", "emp-1", "employee")

	start, end := futureDates()
	created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "personal",
		StartDate: start,
		EndDate:   end,
		Reason:    "errand",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, created.ID))
	assert.ErrorIs(t, svc.Cancel(ctx, created.ID), leave.ErrLeaveRequestNotFound)
}

func TestCancelNotOwner(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))

	start, end := futureDates()
	created, err := svc.Submit(authContext(t, "user-1", "emp-1", "employee"), leave.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)

	err = svc.Cancel(authContext(t, "user-2", "emp-2", "employee"), created.ID)
	assert.ErrorIs(t, err, leave.ErrNotOwner)
}

func TestCancelDecidedRequest(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))
	ctx := authContext(t, "user-1", "emp-1", "employee")

	start, end := futureDates()
	created, err := svc.Submit(ctx, leave.SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: start,
		EndDate:   end,
		Reason:    "family trip",
	})
	require.NoError(t, err)

	_, err = svc.Decide(authContext(t, "user-hr", "emp-hr", "hr"), leave.DecideLeaveRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Cancel(ctx, created.ID), leave.ErrAlreadyDecided)
}

func TestListScopesByRole(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(repo, newFakeEmployeeRepo(reportOf("emp-1", "mgr-1")))

	_, err := svc.List(authContext(t, "user-1", "emp-1", "employee"), leave.LeaveFilter{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.EmployeeID)
	assert.Equal(t, "emp-1", *repo.lastFilter.EmployeeID)
	assert.Nil(t, repo.lastFilter.ManagerID)

	_, err = svc.List(authContext(t, "user-mgr", "mgr-1", "manager"), leave.LeaveFilter{})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.ManagerID)
	assert.Equal(t, "mgr-1", *repo.lastFilter.ManagerID)
	assert.Nil(t, repo.lastFilter.EmployeeID)

	_, err = svc.List(authContext(t, "user-hr", "emp-hr", "hr"), leave.LeaveFilter{})
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.EmployeeID)
	assert.Nil(t, repo.lastFilter.ManagerID)
}
