package models

import "time"

// Payment is the immutable record of a completed charge. Recording one removes
// the matching selection in the same transaction.
type Payment struct {
	ID            string    `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	TransactionID string    `db:"transaction_id" json:"transactionId"`
	Amount        float64   `db:"amount" json:"amount"`
	ClassID       string    `db:"class_id" json:"classId"`
	ClassName     string    `db:"class_name" json:"className"`
	SelectionID   string    `db:"selection_id" json:"selectionId"`
	PaidAt        time.Time `db:"paid_at" json:"paidAt"`
}
