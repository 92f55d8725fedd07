package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/api-sage/pension-payment-processor/src/internal/domain"
	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

const paymentColumns = `id, document_number, payment_type, sender_account, is_actual_payer, actual_payer_bin, actual_payer_name, recipient_account, recipient_bin, recipient_name, payment_purpose, amount, status, created_at, updated_at`

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create stores the payment and its employee lines in one transaction.
func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	logger.Info("payment repository create", logger.Fields{
		"documentNumber": payment.DocumentNumber,
		"employees":      len(payment.Employees),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("begin create payment tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertPayment = `
INSERT INTO payments (
	document_number,
	payment_type,
	sender_account,
	is_actual_payer,
	actual_payer_bin,
	actual_payer_name,
	recipient_account,
	recipient_bin,
	recipient_name,
	payment_purpose,
	amount,
	status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at, updated_at`

	if err := tx.QueryRowContext(
		ctx,
		insertPayment,
		payment.DocumentNumber,
		string(payment.PaymentType),
		payment.SenderAccount,
		payment.IsActualPayer,
		payment.ActualPayerBIN,
		payment.ActualPayerName,
		payment.RecipientAccount,
		payment.RecipientBIN,
		payment.RecipientName,
		payment.PaymentPurpose,
		payment.Amount,
		string(payment.Status),
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
		logger.Error("payment repository create failed", err, logger.Fields{
			"documentNumber": payment.DocumentNumber,
		})
		return domain.Payment{}, fmt.Errorf("create payment: %w", err)
	}

	const insertEmployee = `
INSERT INTO payment_employees (
	payment_id,
	position,
	employee_id,
	iin,
	first_name,
	last_name,
	middle_name,
	birth_date,
	is_resident,
	amount,
	contribution_month,
	contribution_year
) VALUES ($1, $2, COALESCE(NULLIF($3, ''), gen_random_uuid()::text), $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING employee_id`

	payment = payment.Clone()
	for i, e := range payment.Employees {
		var birthDate sql.NullTime
		if !e.BirthDate.IsZero() {
			birthDate = sql.NullTime{Time: e.BirthDate, Valid: true}
		}

		if err := tx.QueryRowContext(
			ctx,
			insertEmployee,
			payment.ID,
			i,
			e.ID,
			e.IIN,
			e.FirstName,
			e.LastName,
			e.MiddleName,
			birthDate,
			e.IsResident,
			e.Amount,
			e.Month,
			e.Year,
		).Scan(&payment.Employees[i].ID); err != nil {
			if isUniqueViolation(err, "payment_employees_iin_key") {
				return domain.Payment{}, domain.ErrDuplicateIIN
			}
			return domain.Payment{}, fmt.Errorf("create payment employee %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Payment{}, fmt.Errorf("commit create payment tx: %w", err)
	}

	logger.Info("payment repository create success", logger.Fields{
		"paymentId": payment.ID,
	})

	return payment, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id::text = $1`

	var payment domain.Payment
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), &payment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, domain.ErrRecordNotFound
		}
		return domain.Payment{}, fmt.Errorf("get payment by id: %w", err)
	}

	employees, err := r.employeesOf(ctx, []string{payment.ID})
	if err != nil {
		return domain.Payment{}, err
	}
	payment.Employees = employees[payment.ID]
	if payment.Employees == nil {
		payment.Employees = []domain.Employee{}
	}

	return payment, nil
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var payment domain.Payment
		if err := scanPayment(rows, &payment); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
		ids = append(ids, payment.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}

	if len(ids) == 0 {
		return payments, nil
	}

	employees, err := r.employeesOf(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range payments {
		payments[i].Employees = employees[payments[i].ID]
		if payments[i].Employees == nil {
			payments[i].Employees = []domain.Employee{}
		}
	}

	return payments, nil
}

// employeesOf loads the employee lines of the given payments keyed by
// payment id, each in insertion order.
func (r *PaymentRepository) employeesOf(ctx context.Context, paymentIDs []string) (map[string][]domain.Employee, error) {
	const query = `
SELECT payment_id::text, employee_id, iin, first_name, last_name, middle_name, birth_date, is_resident, amount, contribution_month, contribution_year
FROM payment_employees
WHERE payment_id::text = ANY($1)
ORDER BY payment_id, position`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(paymentIDs))
	if err != nil {
		return nil, fmt.Errorf("list payment employees: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Employee, len(paymentIDs))
	for rows.Next() {
		var (
			paymentID string
			birthDate sql.NullTime
			e         domain.Employee
		)
		if err := rows.Scan(
			&paymentID,
			&e.ID,
			&e.IIN,
			&e.FirstName,
			&e.LastName,
			&e.MiddleName,
			&birthDate,
			&e.IsResident,
			&e.Amount,
			&e.Month,
			&e.Year,
		); err != nil {
			return nil, fmt.Errorf("scan payment employee: %w", err)
		}
		if birthDate.Valid {
			e.BirthDate = birthDate.Time
		}
		out[paymentID] = append(out[paymentID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment employees: %w", err)
	}

	return out, nil
}

func scanPayment(row rowScanner, payment *domain.Payment) error {
	var paymentType, status string
	if err := row.Scan(
		&payment.ID,
		&payment.DocumentNumber,
		&paymentType,
		&payment.SenderAccount,
		&payment.IsActualPayer,
		&payment.ActualPayerBIN,
		&payment.ActualPayerName,
		&payment.RecipientAccount,
		&payment.RecipientBIN,
		&payment.RecipientName,
		&payment.PaymentPurpose,
		&payment.Amount,
		&status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return err
	}

	payment.PaymentType = domain.PaymentType(paymentType)
	payment.Status = domain.PaymentStatus(status)
	return nil
}
