package leave

import "context"

// LeaveService defines business logic for the leave approval workflow.
type LeaveService interface {
	// Submit creates a pending request for the authenticated employee.
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending request (manager/HR).
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// Cancel hard-deletes the caller's own pending request.
	Cancel(ctx context.Context, id string) error

	// List scopes results by role: employee sees own, manager sees direct
	// reports, HR sees all.
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}
