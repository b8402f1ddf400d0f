package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tutorledger/backend/internal/models"
	"github.com/tutorledger/backend/internal/services"
	"github.com/tutorledger/backend/internal/store"
)

type DashboardHandler struct {
	store *store.LedgerStore
}

type DashboardResponse struct {
	Summary    models.SummaryStats         `json:"summary"`
	Defaulters []models.StudentBalanceView `json:"defaulters"`
}

func NewDashboardHandler(ledger *store.LedgerStore) *DashboardHandler {
	return &DashboardHandler{store: ledger}
}

// GetSummary returns the dashboard aggregates
// @Summary Dashboard summary
// @Description Income statistics, the 6-month trend and the list of students with outstanding balances
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	classes, students, transactions := h.store.Snapshot()
	views := services.ComputeStudentBalances(students, transactions, classes)

	resp := DashboardResponse{
		Summary:    services.ComputeSummary(time.Now(), views, transactions),
		Defaulters: services.Defaulters(views),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
