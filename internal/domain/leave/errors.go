package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyDecided       = errors.New("leave request already approved or rejected")
	ErrNotOwner             = errors.New("leave request does not belong to you")
)
