package leave

import "context"

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Decide transitions a pending request to the given terminal status. It
	// only matches rows still pending; zero rows means the request was
	// already decided (or does not exist), which the service disambiguates.
	Decide(ctx context.Context, id string, status Status, deciderID string) (LeaveRequest, error)

	// Delete hard-deletes a request. Only the service calls this, and only
	// for pending requests owned by the caller.
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)
}
