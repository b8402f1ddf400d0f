package models

// TransactionType is either a fee accrual (CHARGE) or money received (PAYMENT).
type TransactionType string

const (
	TransactionCharge  TransactionType = "CHARGE"
	TransactionPayment TransactionType = "PAYMENT"
)

// Transaction is an immutable ledger entry against a student.
// Entries are append-only; they are removed only when the referenced
// student is deleted.
type Transaction struct {
	ID        string          `json:"id"`
	StudentID string          `json:"studentId"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"` // in smallest currency unit, always positive
	Date      string          `json:"date"`   // ISO-8601 date or date-time
	Note      string          `json:"note,omitempty"`
}
