package services

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/tutorledger/backend/internal/models"
	"github.com/tutorledger/backend/internal/store"
)

type TransactionService struct {
	store     *store.LedgerStore
	validator *ValidationHelper
}

type CreateTransactionRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=CHARGE PAYMENT"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Note      string `json:"note,omitempty" validate:"max=200"`
	Date      string `json:"date,omitempty"`
}

func NewTransactionService(ledger *store.LedgerStore) *TransactionService {
	return &TransactionService{
		store:     ledger,
		validator: NewValidationHelper(),
	}
}

// ListTransactions returns transactions, optionally filtered by student
// @Summary List transactions
// @Description List all transactions in insertion order, optionally filtered by studentId
// @Tags transactions
// @Produce json
// @Param studentId query string false "Filter by student ID"
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (ts *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := ts.store.Transactions()

	if studentID := r.URL.Query().Get("studentId"); studentID != "" {
		filtered := make([]models.Transaction, 0, len(transactions))
		for _, tx := range transactions {
			if tx.StudentID == studentID {
				filtered = append(filtered, tx)
			}
		}
		transactions = filtered
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transactions)
}

// CreateTransaction records a charge or payment
// @Summary Record a transaction
// @Description Append a CHARGE or PAYMENT for a student. The date defaults to the current instant.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body CreateTransactionRequest true "Transaction data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /transactions [post]
func (ts *TransactionService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := DecodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := ts.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	// The store itself stays permissive; existence is checked here so a
	// buggy client cannot create orphaned entries over the API.
	if !ts.store.HasStudent(req.StudentID) {
		SendErrorResponse(w, "Student not found", http.StatusNotFound, nil)
		return
	}

	tx := ts.store.RecordTransaction(store.TransactionInput{
		StudentID: req.StudentID,
		Type:      models.TransactionType(req.Type),
		Amount:    req.Amount,
		Note:      req.Note,
		Date:      req.Date,
	})

	log.Printf("[TRANSACTION] Recorded %s of %d for student %s", tx.Type, tx.Amount, tx.StudentID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(tx)
}
