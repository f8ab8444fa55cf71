package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/coursecart/coursecart-api/internal/models"
)

const paymentColumns = `id, email, transaction_id, amount, class_id, class_name, selection_id, paid_at`

// PaymentRepository handles persistence of payment records.
type PaymentRepository struct {
	db *sqlx.DB
}

// NewPaymentRepository constructs the repository.
func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record inserts the payment and removes the paid-for selection in a single
// transaction, so a payment can never coexist with its cart entry.
func (r *PaymentRepository) Record(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin payment tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insertQuery = `INSERT INTO payments (id, email, transaction_id, amount, class_id, class_name, selection_id, paid_at)
VALUES (:id, :email, :transaction_id, :amount, :class_id, :class_name, :selection_id, :paid_at)`
	if _, err := tx.NamedExecContext(ctx, insertQuery, payment); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	const deleteQuery = `DELETE FROM selections WHERE id = $1`
	if _, err := tx.ExecContext(ctx, deleteQuery, payment.SelectionID); err != nil {
		return fmt.Errorf("delete paid selection: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit payment tx: %w", err)
	}
	return nil
}

// ListByEmail returns payments for one user, most recent first.
func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE email = $1 ORDER BY paid_at DESC`, paymentColumns)
	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, email); err != nil {
		return nil, fmt.Errorf("list payments by email: %w", err)
	}
	return payments, nil
}
