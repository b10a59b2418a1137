package leave

import (
	"time"
)

type LeaveType string

const (
	TypeAnnual   LeaveType = "annual"
	TypeSick     LeaveType = "sick"
	TypePersonal LeaveType = "personal"
	TypeOther    LeaveType = "other"
)

// ValidType reports whether s is one of the closed leave types.
func ValidType(s string) bool {
	switch LeaveType(s) {
	case TypeAnnual, TypeSick, TypePersonal, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ValidDecision reports whether s is a terminal decision status.
func ValidDecision(s string) bool {
	return Status(s) == StatusApproved || Status(s) == StatusRejected
}

type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	Department   *string
}

// IsPending reports whether the request can still be decided or cancelled.
// Once status leaves pending it never changes again.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// Days is the inclusive calendar length of the requested range.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
