package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrHRAccessRequired        = errors.New("hr access required")
	ErrEmployeeAccessRequired  = errors.New("employee access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
