package services

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tutorledger/backend/internal/models"
	"github.com/tutorledger/backend/internal/store"
)

type ClassService struct {
	store     *store.LedgerStore
	validator *ValidationHelper
}

type CreateClassRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	FeeType     string `json:"feeType" validate:"required,oneof=MONTHLY PER_SESSION"`
	DefaultFee  int64  `json:"defaultFee" validate:"gte=0"`
	Description string `json:"description,omitempty" validate:"max=500"`
}

func NewClassService(ledger *store.LedgerStore) *ClassService {
	return &ClassService{
		store:     ledger,
		validator: NewValidationHelper(),
	}
}

// ListClasses returns all classes
// @Summary List classes
// @Description List all classes in insertion order
// @Tags classes
// @Produce json
// @Success 200 {array} models.ClassGroup
// @Router /classes [get]
func (cs *ClassService) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes := cs.store.Classes()
	if classes == nil {
		classes = []models.ClassGroup{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(classes)
}

// CreateClass creates a new class
// @Summary Create a class
// @Description Create a new class group with its fee policy
// @Tags classes
// @Accept json
// @Produce json
// @Param class body CreateClassRequest true "Class data"
// @Success 201 {object} models.ClassGroup
// @Failure 400 {object} ErrorResponse
// @Router /classes [post]
func (cs *ClassService) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req CreateClassRequest
	if err := DecodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := cs.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	class := cs.store.AddClass(store.ClassInput{
		Name:        req.Name,
		FeeType:     models.FeeType(req.FeeType),
		DefaultFee:  req.DefaultFee,
		Description: req.Description,
	})

	log.Printf("[CLASS] Created class %s (%s)", class.ID, class.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(class)
}

// DeleteClass deletes a class
// @Summary Delete a class
// @Description Remove a class. Students and transactions referencing it are kept; their class resolves to "Unknown".
// @Tags classes
// @Param classId path string true "Class ID"
// @Success 204
// @Router /classes/{classId} [delete]
func (cs *ClassService) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classId")
	cs.store.DeleteClass(classID)

	log.Printf("[CLASS] Deleted class %s", classID)
	w.WriteHeader(http.StatusNoContent)
}
