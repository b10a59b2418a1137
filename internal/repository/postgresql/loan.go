package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/loan"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
)

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) loan.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `
	l.id, l.employee_id, l.loan_type, l.amount, l.reason, l.duration_months,
	l.interest_rate, l.monthly_installment, l.status, l.approved_by, l.approved_at,
	l.start_date, l.end_date, l.created_at, l.updated_at
`

func scanLoan(row pgx.Row) (loan.LoanApplication, error) {
	var l loan.LoanApplication
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LoanType, &l.Amount, &l.Reason, &l.DurationMonths,
		&l.InterestRate, &l.MonthlyInstallment, &l.Status, &l.ApprovedBy, &l.ApprovedAt,
		&l.StartDate, &l.EndDate, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements loan.LoanRepository.
func (r *loanRepository) Create(ctx context.Context, app loan.LoanApplication) (loan.LoanApplication, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return loan.LoanApplication{}, fmt.Errorf("failed to generate loan id: %w", err)
	}
	app.ID = id.String()

	query := `
		INSERT INTO loans (
			id, employee_id, loan_type, amount, reason, duration_months,
			interest_rate, monthly_installment, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		app.ID, app.EmployeeID, app.LoanType, app.Amount, app.Reason, app.DurationMonths,
		app.InterestRate, app.MonthlyInstallment, app.Status,
	).Scan(&app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return loan.LoanApplication{}, fmt.Errorf("failed to create loan: %w", err)
	}

	return app, nil
}

// GetByID implements loan.LoanRepository.
func (r *loanRepository) GetByID(ctx context.Context, id string) (loan.LoanApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + loanColumns + `, e.full_name, e.email, e.department
		FROM loans l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var l loan.LoanApplication
	err := q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.EmployeeID, &l.LoanType, &l.Amount, &l.Reason, &l.DurationMonths,
		&l.InterestRate, &l.MonthlyInstallment, &l.Status, &l.ApprovedBy, &l.ApprovedAt,
		&l.StartDate, &l.EndDate, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeEmail, &l.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.LoanApplication{}, loan.ErrLoanNotFound
		}
		return loan.LoanApplication{}, fmt.Errorf("failed to get loan: %w", err)
	}

	return l, nil
}

// Decide implements loan.LoanRepository. The app carries the decision fields
// already stamped by the entity; only a pending row accepts them.
func (r *loanRepository) Decide(ctx context.Context, app loan.LoanApplication) (loan.LoanApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = $1, approved_by = $2, approved_at = $3,
			start_date = $4, end_date = $5, updated_at = NOW()
		WHERE id = $6 AND status = 'pending'
		RETURNING id, employee_id, loan_type, amount, reason, duration_months,
			interest_rate, monthly_installment, status, approved_by, approved_at,
			start_date, end_date, created_at, updated_at
	`

	l, err := scanLoan(q.QueryRow(ctx, query,
		app.Status, app.ApprovedBy, app.ApprovedAt, app.StartDate, app.EndDate, app.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.LoanApplication{}, loan.ErrAlreadyDecided
		}
		return loan.LoanApplication{}, fmt.Errorf("failed to decide loan: %w", err)
	}

	return l, nil
}

// Settle implements loan.LoanRepository. Only an approved loan can settle.
func (r *loanRepository) Settle(ctx context.Context, id string) (loan.LoanApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loans
		SET status = 'paid', updated_at = NOW()
		WHERE id = $1 AND status = 'approved'
		RETURNING id, employee_id, loan_type, amount, reason, duration_months,
			interest_rate, monthly_installment, status, approved_by, approved_at,
			start_date, end_date, created_at, updated_at
	`

	l, err := scanLoan(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.LoanApplication{}, loan.ErrNotApproved
		}
		return loan.LoanApplication{}, fmt.Errorf("failed to settle loan: %w", err)
	}

	return l, nil
}

// Delete implements loan.LoanRepository.
func (r *loanRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return loan.ErrLoanNotFound
	}

	return nil
}

// Balance implements loan.LoanRepository. Outstanding is derived by the
// entity, so only the two sums come back from the store.
func (r *loanRepository) Balance(ctx context.Context, employeeID string) (loan.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status IN ('approved', 'paid')), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)
		FROM loans
		WHERE employee_id = $1
	`

	b := loan.Balance{EmployeeID: employeeID}
	if err := q.QueryRow(ctx, query, employeeID).Scan(&b.TotalApproved, &b.TotalPaid); err != nil {
		return loan.Balance{}, fmt.Errorf("failed to aggregate loan balance: %w", err)
	}

	return b, nil
}

// List implements loan.LoanRepository.
func (r *loanRepository) List(ctx context.Context, filter loan.LoanFilter) ([]loan.LoanApplication, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(YEAR FROM l.created_at) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM loans l WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, e.full_name, e.email, e.department
		FROM loans l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, loanColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	var loans []loan.LoanApplication
	for rows.Next() {
		var l loan.LoanApplication
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.LoanType, &l.Amount, &l.Reason, &l.DurationMonths,
			&l.InterestRate, &l.MonthlyInstallment, &l.Status, &l.ApprovedBy, &l.ApprovedAt,
			&l.StartDate, &l.EndDate, &l.CreatedAt, &l.UpdatedAt,
			&l.EmployeeName, &l.EmployeeEmail, &l.Department,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}

	return loans, total, nil
}
