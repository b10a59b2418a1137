package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/payroll"
	"github.com/staffdesk/workforce-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	p.id, p.employee_id, p.period_month, p.period_year, p.base_salary,
	p.bonuses, p.bonus_description, p.deductions, p.deduction_description,
	p.net_salary, p.status, p.payment_date, p.created_at, p.updated_at
`

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.BaseSalary,
		&p.Bonuses, &p.BonusDescription, &p.Deductions, &p.DeductionDescription,
		&p.NetSalary, &p.Status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// GetOrCreate implements payroll.PayrollRepository. The insert races with
// concurrent first reads of the same period; ON CONFLICT keeps the existing
// row and the follow-up select returns it either way.
func (r *payrollRepository) GetOrCreate(ctx context.Context, template payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to generate payroll id: %w", err)
	}

	insertQuery := `
		INSERT INTO payrolls (
			id, employee_id, period_month, period_year, base_salary,
			bonuses, deductions, net_salary, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, period_month, period_year) DO NOTHING
	`
	_, err = q.Exec(ctx, insertQuery,
		id.String(), template.EmployeeID, template.PeriodMonth, template.PeriodYear,
		template.BaseSalary, template.Bonuses, template.Deductions, template.NetSalary, template.Status,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	selectQuery := `
		SELECT ` + payrollColumns + `, e.full_name, e.position
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.period_month = $2 AND p.period_year = $3
	`

	var p payroll.PayrollRecord
	err = q.QueryRow(ctx, selectQuery, template.EmployeeID, template.PeriodMonth, template.PeriodYear).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.BaseSalary,
		&p.Bonuses, &p.BonusDescription, &p.Deductions, &p.DeductionDescription,
		&p.NetSalary, &p.Status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.Position,
	)
	if err != nil {
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `, e.full_name, e.position
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.PayrollRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.BaseSalary,
		&p.Bonuses, &p.BonusDescription, &p.Deductions, &p.DeductionDescription,
		&p.NetSalary, &p.Status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.Position,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollRecord{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return p, nil
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepository) Update(ctx context.Context, rec payroll.PayrollRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET base_salary = $1, bonuses = $2, bonus_description = $3,
			deductions = $4, deduction_description = $5, net_salary = $6,
			status = $7, payment_date = $8, updated_at = NOW()
		WHERE id = $9
	`

	commandTag, err := q.Exec(ctx, query,
		rec.BaseSalary, rec.Bonuses, rec.BonusDescription,
		rec.Deductions, rec.DeductionDescription, rec.NetSalary,
		rec.Status, rec.PaymentDate, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}

	return nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		where += fmt.Sprintf(" AND p.period_month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		where += fmt.Sprintf(" AND p.period_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
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
		SELECT %s, e.full_name, e.position
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.period_year DESC, p.period_month DESC
		LIMIT $%d OFFSET $%d
	`, payrollColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.BaseSalary,
			&p.Bonuses, &p.BonusDescription, &p.Deductions, &p.DeductionDescription,
			&p.NetSalary, &p.Status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.Position,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, total, nil
}
