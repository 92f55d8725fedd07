package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

const employeeIINConstraint = "employees_iin_key"

const employeeColumns = `id, iin, first_name, last_name, middle_name, birth_date, is_resident, amount, contribution_month, contribution_year, created_at, updated_at`

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	logger.Info("employee repository create", logger.Fields{
		"iin": employee.IIN,
	})

	const query = `
INSERT INTO employees (
	iin,
	first_name,
	last_name,
	middle_name,
	birth_date,
	is_resident,
	amount,
	contribution_month,
	contribution_year
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + employeeColumns

	var created domain.Employee
	if err := scanEmployee(r.db.QueryRowContext(
		ctx,
		query,
		employee.IIN,
		employee.FirstName,
		employee.LastName,
		employee.MiddleName,
		employee.BirthDate,
		employee.IsResident,
		employee.Amount,
		employee.Month,
		employee.Year,
	), &created); err != nil {
		if isUniqueViolation(err, employeeIINConstraint) {
			return domain.Employee{}, domain.ErrDuplicateIIN
		}
		logger.Error("employee repository create failed", err, logger.Fields{
			"iin": employee.IIN,
		})
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	return created, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id::text = $1`

	var employee domain.Employee
	if err := scanEmployee(r.db.QueryRowContext(ctx, query, id), &employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrRecordNotFound
		}
		return domain.Employee{}, fmt.Errorf("get employee by id: %w", err)
	}

	return employee, nil
}

func (r *EmployeeRepository) GetByIIN(ctx context.Context, iin string) (domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE iin = $1`

	var employee domain.Employee
	if err := scanEmployee(r.db.QueryRowContext(ctx, query, iin), &employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrRecordNotFound
		}
		return domain.Employee{}, fmt.Errorf("get employee by iin: %w", err)
	}

	return employee, nil
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at, id`

	return r.list(ctx, query)
}

func (r *EmployeeRepository) Update(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	logger.Info("employee repository update", logger.Fields{
		"employeeId": employee.ID,
	})

	const query = `
UPDATE employees
SET iin = $2,
    first_name = $3,
    last_name = $4,
    middle_name = $5,
    birth_date = $6,
    is_resident = $7,
    amount = $8,
    contribution_month = $9,
    contribution_year = $10,
    updated_at = NOW()
WHERE id::text = $1
RETURNING ` + employeeColumns

	var updated domain.Employee
	if err := scanEmployee(r.db.QueryRowContext(
		ctx,
		query,
		employee.ID,
		employee.IIN,
		employee.FirstName,
		employee.LastName,
		employee.MiddleName,
		employee.BirthDate,
		employee.IsResident,
		employee.Amount,
		employee.Month,
		employee.Year,
	), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrRecordNotFound
		}
		if isUniqueViolation(err, employeeIINConstraint) {
			return domain.Employee{}, domain.ErrDuplicateIIN
		}
		logger.Error("employee repository update failed", err, logger.Fields{
			"employeeId": employee.ID,
		})
		return domain.Employee{}, fmt.Errorf("update employee: %w", err)
	}

	return updated, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) (domain.Employee, error) {
	const query = `DELETE FROM employees WHERE id::text = $1 RETURNING ` + employeeColumns

	var deleted domain.Employee
	if err := scanEmployee(r.db.QueryRowContext(ctx, query, id), &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Employee{}, domain.ErrRecordNotFound
		}
		return domain.Employee{}, fmt.Errorf("delete employee: %w", err)
	}

	return deleted, nil
}

// Search matches the same way as domain.Employee.Matches: a
// case-insensitive substring of "Last First Middle", or a substring of the
// IIN once whitespace is removed from the query.
func (r *EmployeeRepository) Search(ctx context.Context, query string) ([]domain.Employee, error) {
	const statement = `
SELECT ` + employeeColumns + `
FROM employees
WHERE LOWER(CONCAT_WS(' ', NULLIF(TRIM(last_name), ''), NULLIF(TRIM(first_name), ''), NULLIF(TRIM(middle_name), ''))) LIKE '%' || LOWER($1) || '%' ESCAPE '\'
   OR iin LIKE '%' || $2 || '%' ESCAPE '\'
ORDER BY created_at, id`

	compact := strings.Join(strings.Fields(query), "")
	return r.list(ctx, statement, escapeLike(query), escapeLike(compact))
}

func (r *EmployeeRepository) list(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		var employee domain.Employee
		if err := scanEmployee(rows, &employee); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

func scanEmployee(row rowScanner, employee *domain.Employee) error {
	return row.Scan(
		&employee.ID,
		&employee.IIN,
		&employee.FirstName,
		&employee.LastName,
		&employee.MiddleName,
		&employee.BirthDate,
		&employee.IsResident,
		&employee.Amount,
		&employee.Month,
		&employee.Year,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
