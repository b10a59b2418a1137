package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // regular employee
	RoleManager  Role = "manager"  // can decide leave/loan requests for reports
	RoleHR       Role = "hr"       // full workforce administration
)

// ValidRole reports whether s is one of the closed role values.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleHR:
		return true
	}
	return false
}

type User struct {
	ID           string
	EmployeeID   *string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsHR checks if user is HR staff
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsManager checks if user is a manager or HR
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleHR
}

// CanDecide checks if user can decide leave and loan requests
func (u *User) CanDecide() bool {
	return u.IsManager()
}
