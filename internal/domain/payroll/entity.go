package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusPaid       Status = "paid"
)

// ValidStatus reports whether s is one of the closed status values.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusPaid:
		return true
	}
	return false
}

// PayrollRecord is one payroll row per employee per (month, year).
// NetSalary is derived and recomputed on every persist; it is never
// writable by clients.
type PayrollRecord struct {
	ID                   string
	EmployeeID           string
	PeriodMonth          int
	PeriodYear           int
	BaseSalary           decimal.Decimal
	Bonuses              decimal.Decimal
	BonusDescription     *string
	Deductions           decimal.Decimal
	DeductionDescription *string
	NetSalary            decimal.Decimal
	Status               Status
	PaymentDate          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Joined fields
	EmployeeName *string
	Position     *string
}

// Recalculate rederives the net salary from its inputs.
func (p *PayrollRecord) Recalculate() {
	p.NetSalary = p.BaseSalary.Add(p.Bonuses).Sub(p.Deductions)
}

// ToggleStatus flips pending to paid and back. Processing is reachable only
// through the direct-edit path, never by toggling.
func (p *PayrollRecord) ToggleStatus(now time.Time) {
	if p.Status == StatusPaid {
		p.Status = StatusPending
		p.PaymentDate = nil
		return
	}
	p.Status = StatusPaid
	p.PaymentDate = &now
}
