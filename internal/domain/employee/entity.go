package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusActive     EmploymentStatus = "active"
	StatusOnLeave    EmploymentStatus = "on_leave"
	StatusTerminated EmploymentStatus = "terminated"
)

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s string) bool {
	switch EmploymentStatus(s) {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

// DefaultLeaveDays is the yearly leave allotment assigned at registration.
const DefaultLeaveDays = 14

type Employee struct {
	ID             string
	UserID         *string
	FullName       string
	Department     string
	Position       string
	Email          string
	ManagerID      *string
	CurrentSalary  decimal.Decimal
	Status         EmploymentStatus
	TotalLeaveDays int
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the employee can perform ledger actions.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
