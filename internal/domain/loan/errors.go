package loan

import "errors"

var (
	ErrLoanNotFound   = errors.New("loan application not found")
	ErrAlreadyDecided = errors.New("loan application already approved or rejected")
	ErrNotApproved    = errors.New("loan application is not approved")
	ErrAlreadySettled = errors.New("loan application already settled")
	ErrNotOwner       = errors.New("loan application does not belong to you")
)
