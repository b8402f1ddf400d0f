package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutorledger/backend/internal/models"
	"github.com/tutorledger/backend/internal/store"
)

func newTransactionRouter(ledger *store.LedgerStore) *chi.Mux {
	service := NewTransactionService(ledger)
	r := chi.NewRouter()
	r.Get("/transactions", service.ListTransactions)
	r.Post("/transactions", service.CreateTransaction)
	return r
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("records a payment", func(t *testing.T) {
		ledger := store.NewLedgerStore()
		alice := ledger.AddStudent(store.StudentInput{Name: "Alice", ClassID: "c1"})
		r := newTransactionRouter(ledger)

		body := `{"studentId":"` + alice.ID + `","type":"PAYMENT","amount":5000,"note":"Paid via Cash"}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var tx models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tx))
		assert.NotEmpty(t, tx.ID)
		assert.NotEmpty(t, tx.Date) // defaulted to creation instant
		assert.Equal(t, models.TransactionPayment, tx.Type)
	})

	t.Run("unknown student returns 404", func(t *testing.T) {
		r := newTransactionRouter(store.NewLedgerStore())

		body := `{"studentId":"ghost","type":"CHARGE","amount":5000}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid request body", func(t *testing.T) {
		r := newTransactionRouter(store.NewLedgerStore())

		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString("invalid"))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero amount fails validation", func(t *testing.T) {
		ledger := store.NewLedgerStore()
		alice := ledger.AddStudent(store.StudentInput{Name: "Alice", ClassID: "c1"})
		r := newTransactionRouter(ledger)

		body := `{"studentId":"` + alice.ID + `","type":"PAYMENT","amount":0}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown transaction type fails validation", func(t *testing.T) {
		ledger := store.NewLedgerStore()
		alice := ledger.AddStudent(store.StudentInput{Name: "Alice", ClassID: "c1"})
		r := newTransactionRouter(ledger)

		body := `{"studentId":"` + alice.ID + `","type":"REFUND","amount":100}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionService_ListTransactions(t *testing.T) {
	ledger := store.NewLedgerStore()
	alice := ledger.AddStudent(store.StudentInput{Name: "Alice", ClassID: "c1"})
	bob := ledger.AddStudent(store.StudentInput{Name: "Bob", ClassID: "c1"})
	ledger.RecordTransaction(store.TransactionInput{StudentID: alice.ID, Type: models.TransactionCharge, Amount: 5000})
	ledger.RecordTransaction(store.TransactionInput{StudentID: bob.ID, Type: models.TransactionCharge, Amount: 3000})
	r := newTransactionRouter(ledger)

	t.Run("lists all transactions", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var transactions []models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
		assert.Len(t, transactions, 2)
	})

	t.Run("filters by student", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions?studentId="+alice.ID, nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var transactions []models.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
		require.Len(t, transactions, 1)
		assert.Equal(t, alice.ID, transactions[0].StudentID)
	})

	t.Run("empty result is an empty array", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions?studentId=ghost", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
