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

func newClassRouter(ledger *store.LedgerStore) *chi.Mux {
	service := NewClassService(ledger)
	r := chi.NewRouter()
	r.Get("/classes", service.ListClasses)
	r.Post("/classes", service.CreateClass)
	r.Delete("/classes/{classId}", service.DeleteClass)
	return r
}

func TestClassService_CreateClass(t *testing.T) {
	t.Run("creates a class", func(t *testing.T) {
		ledger := store.NewLedgerStore()
		r := newClassRouter(ledger)

		body := `{"name":"Grade 10 Math","feeType":"MONTHLY","defaultFee":5000,"description":"Tuesday & Thursday Group"}`
		req := httptest.NewRequest("POST", "/classes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var class models.ClassGroup
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &class))
		assert.NotEmpty(t, class.ID)
		assert.Equal(t, "Grade 10 Math", class.Name)
		assert.Equal(t, models.FeeTypeMonthly, class.FeeType)
		assert.Len(t, ledger.Classes(), 1)
	})

	t.Run("invalid request body", func(t *testing.T) {
		r := newClassRouter(store.NewLedgerStore())

		req := httptest.NewRequest("POST", "/classes", bytes.NewBufferString("invalid"))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown fee type fails validation", func(t *testing.T) {
		r := newClassRouter(store.NewLedgerStore())

		body := `{"name":"Math","feeType":"WEEKLY","defaultFee":5000}`
		req := httptest.NewRequest("POST", "/classes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)
	})

	t.Run("negative fee fails validation", func(t *testing.T) {
		r := newClassRouter(store.NewLedgerStore())

		body := `{"name":"Math","feeType":"MONTHLY","defaultFee":-1}`
		req := httptest.NewRequest("POST", "/classes", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestClassService_ListClasses(t *testing.T) {
	t.Run("empty store returns empty array", func(t *testing.T) {
		r := newClassRouter(store.NewLedgerStore())

		req := httptest.NewRequest("GET", "/classes", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns classes in insertion order", func(t *testing.T) {
		ledger := store.NewLedgerStore()
		ledger.AddClass(store.ClassInput{Name: "Math", FeeType: models.FeeTypeMonthly, DefaultFee: 5000})
		ledger.AddClass(store.ClassInput{Name: "Physics", FeeType: models.FeeTypePerSession, DefaultFee: 3000})
		r := newClassRouter(ledger)

		req := httptest.NewRequest("GET", "/classes", nil)
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var classes []models.ClassGroup
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classes))
		require.Len(t, classes, 2)
		assert.Equal(t, "Math", classes[0].Name)
		assert.Equal(t, "Physics", classes[1].Name)
	})
}

func TestClassService_DeleteClass(t *testing.T) {
	ledger := store.NewLedgerStore()
	class := ledger.AddClass(store.ClassInput{Name: "Math", FeeType: models.FeeTypeMonthly, DefaultFee: 5000})
	r := newClassRouter(ledger)

	req := httptest.NewRequest("DELETE", "/classes/"+class.ID, nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, ledger.Classes())
}
