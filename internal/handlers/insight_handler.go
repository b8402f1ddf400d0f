package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tutorledger/backend/internal/services"
	"github.com/tutorledger/backend/internal/store"
)

type InsightHandler struct {
	service   *services.InsightService
	store     *store.LedgerStore
	validator *services.ValidationHelper
}

type InsightRequest struct {
	Query     string `json:"query" validate:"required_without=StudentID,max=2000"`
	StudentID string `json:"studentId,omitempty"`
}

type InsightResponse struct {
	Answer string `json:"answer"`
}

func NewInsightHandler(service *services.InsightService, ledger *store.LedgerStore) *InsightHandler {
	return &InsightHandler{
		service:   service,
		store:     ledger,
		validator: services.NewValidationHelper(),
	}
}

// Ask forwards a query to the AI assistant
// @Summary Ask the AI assistant
// @Description Send a free-text query about the current fee data. With a studentId and no query, a payment reminder prompt is generated for that student.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body InsightRequest true "Insight query"
// @Success 200 {object} InsightResponse
// @Failure 400 {object} services.ErrorResponse
// @Router /insights [post]
func (h *InsightHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req InsightRequest
	if err := services.DecodeJSONBody(w, r, &req); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	classes, students, transactions := h.store.Snapshot()
	views := services.ComputeStudentBalances(students, transactions, classes)

	query := req.Query
	if query == "" && req.StudentID != "" {
		for _, v := range views {
			if v.ID == req.StudentID {
				query = services.ReminderPrompt(v.Name, v.Balance)
				break
			}
		}
		if query == "" {
			services.SendErrorResponse(w, "Student not found", http.StatusNotFound, nil)
			return
		}
	}

	answer := h.service.Ask(r.Context(), query, views, transactions)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(InsightResponse{Answer: answer})
}
