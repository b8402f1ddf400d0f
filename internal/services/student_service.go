package services

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tutorledger/backend/internal/models"
	"github.com/tutorledger/backend/internal/store"
)

type StudentService struct {
	store     *store.LedgerStore
	validator *ValidationHelper
}

type CreateStudentRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	ClassID string `json:"classId" validate:"required"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" validate:"max=20"`
}

type UpdateStudentRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	ClassID    string `json:"classId" validate:"required"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" validate:"max=20"`
	JoinedDate string `json:"joinedDate" validate:"required"`
}

func NewStudentService(ledger *store.LedgerStore) *StudentService {
	return &StudentService{
		store:     ledger,
		validator: NewValidationHelper(),
	}
}

// ListStudents returns all students with derived balances
// @Summary List students with balances
// @Description List all students with their derived balance, class name and last payment date
// @Tags students
// @Produce json
// @Success 200 {array} models.StudentBalanceView
// @Router /students [get]
func (ss *StudentService) ListStudents(w http.ResponseWriter, r *http.Request) {
	classes, students, transactions := ss.store.Snapshot()
	views := ComputeStudentBalances(students, transactions, classes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// CreateStudent enrolls a new student
// @Summary Create a student
// @Description Enroll a new student; the id and joined date are server-assigned
// @Tags students
// @Accept json
// @Produce json
// @Param student body CreateStudentRequest true "Student data"
// @Success 201 {object} models.Student
// @Failure 400 {object} ErrorResponse
// @Router /students [post]
func (ss *StudentService) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if err := DecodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := ss.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	student := ss.store.AddStudent(store.StudentInput{
		Name:    req.Name,
		ClassID: req.ClassID,
		Email:   req.Email,
		Phone:   req.Phone,
	})

	log.Printf("[STUDENT] Created student %s (%s)", student.ID, student.Name)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(student)
}

// UpdateStudent replaces a student record
// @Summary Update a student
// @Description Replace all fields of the student with the given id. Unknown ids are a no-op.
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param student body UpdateStudentRequest true "Student data"
// @Success 200 {object} models.Student
// @Failure 400 {object} ErrorResponse
// @Router /students/{studentId} [put]
func (ss *StudentService) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentId")

	var req UpdateStudentRequest
	if err := DecodeJSONBody(w, r, &req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if err := ss.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}

	student := models.Student{
		ID:         studentID,
		Name:       req.Name,
		ClassID:    req.ClassID,
		Email:      req.Email,
		Phone:      req.Phone,
		JoinedDate: req.JoinedDate,
	}
	ss.store.UpdateStudent(student)

	log.Printf("[STUDENT] Updated student %s", studentID)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(student)
}

// DeleteStudent removes a student and their transactions
// @Summary Delete a student
// @Description Remove a student and cascade-delete all of their transactions
// @Tags students
// @Param studentId path string true "Student ID"
// @Success 204
// @Router /students/{studentId} [delete]
func (ss *StudentService) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentId")
	ss.store.DeleteStudent(studentID)

	log.Printf("[STUDENT] Deleted student %s and cascaded transactions", studentID)
	w.WriteHeader(http.StatusNoContent)
}
