package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tutorledger/backend/internal/models"
)

// ClassInput carries the caller-supplied fields for a new class.
// The store assigns the id.
type ClassInput struct {
	Name        string
	FeeType     models.FeeType
	DefaultFee  int64
	Description string
}

// StudentInput carries the caller-supplied fields for a new student.
// The store assigns the id and the joined date.
type StudentInput struct {
	Name    string
	ClassID string
	Email   string
	Phone   string
}

// TransactionInput carries the caller-supplied fields for a new ledger entry.
// Date is optional; an empty value defaults to the creation instant.
type TransactionInput struct {
	StudentID string
	Type      models.TransactionType
	Amount    int64
	Note      string
	Date      string
}

// LedgerStore owns the canonical collections of classes, students and
// transactions. Mutations build a fresh slice and swap it in under the lock
// (copy-on-write), so slices handed out to readers are never written to
// again and remain valid snapshots.
//
// The store enforces exactly one integrity rule: deleting a student also
// deletes every transaction referencing it. Everything else (orphaned
// classIds, orphaned transactions) is tolerated and resolved by the balance
// engine's fallbacks.
type LedgerStore struct {
	mu           sync.RWMutex
	classes      []models.ClassGroup
	students     []models.Student
	transactions []models.Transaction
	audit        *AuditLogger
	now          func() time.Time
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		audit: NewAuditLogger(),
		now:   time.Now,
	}
}

// AddClass appends a new class in insertion order and returns it.
func (s *LedgerStore) AddClass(in ClassInput) models.ClassGroup {
	class := models.ClassGroup{
		ID:          uuid.NewString(),
		Name:        in.Name,
		FeeType:     in.FeeType,
		DefaultFee:  in.DefaultFee,
		Description: in.Description,
	}

	s.mu.Lock()
	s.classes = appendCopy(s.classes, class)
	s.mu.Unlock()

	s.audit.LogMutation("CLASS_ADDED", class.ID, in.Name)
	return class
}

// DeleteClass removes the class with the given id. Students and transactions
// referencing it are left untouched; the balance engine reports "Unknown"
// for their class name.
func (s *LedgerStore) DeleteClass(id string) {
	s.mu.Lock()
	s.classes = removeClass(s.classes, id)
	s.mu.Unlock()

	s.audit.LogMutation("CLASS_DELETED", id, "")
}

// AddStudent appends a new student with a generated id and the current
// instant as joined date.
func (s *LedgerStore) AddStudent(in StudentInput) models.Student {
	student := models.Student{
		ID:         uuid.NewString(),
		Name:       in.Name,
		ClassID:    in.ClassID,
		Email:      in.Email,
		Phone:      in.Phone,
		JoinedDate: s.now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.students = appendCopy(s.students, student)
	s.mu.Unlock()

	s.audit.LogMutation("STUDENT_ADDED", student.ID, in.Name)
	return student
}

// UpdateStudent replaces the student with the matching id in place,
// preserving collection order. Unknown ids are a silent no-op.
func (s *LedgerStore) UpdateStudent(updated models.Student) {
	s.mu.Lock()
	next := make([]models.Student, len(s.students))
	copy(next, s.students)
	for i := range next {
		if next[i].ID == updated.ID {
			next[i] = updated
		}
	}
	s.students = next
	s.mu.Unlock()

	s.audit.LogMutation("STUDENT_UPDATED", updated.ID, updated.Name)
}

// DeleteStudent removes the student and every transaction referencing it in
// one logical operation. The cascade is mandatory; no dangling ledger
// entries may survive.
func (s *LedgerStore) DeleteStudent(id string) {
	s.mu.Lock()
	students := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		if st.ID != id {
			students = append(students, st)
		}
	}
	transactions := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.StudentID != id {
			transactions = append(transactions, tx)
		}
	}
	s.students = students
	s.transactions = transactions
	s.mu.Unlock()

	s.audit.LogMutation("STUDENT_DELETED", id, "")
}

// RecordTransaction appends a new ledger entry and returns it. The store
// does not verify that the student exists; that check belongs to the caller.
func (s *LedgerStore) RecordTransaction(in TransactionInput) models.Transaction {
	date := in.Date
	if date == "" {
		date = s.now().UTC().Format(time.RFC3339)
	}
	tx := models.Transaction{
		ID:        uuid.NewString(),
		StudentID: in.StudentID,
		Type:      in.Type,
		Amount:    in.Amount,
		Date:      date,
		Note:      in.Note,
	}

	s.mu.Lock()
	s.transactions = appendCopy(s.transactions, tx)
	s.mu.Unlock()

	s.audit.LogTransaction(tx.ID, tx.StudentID, string(tx.Type), tx.Amount)
	return tx
}

// Classes returns the current class snapshot. Callers must not modify it.
func (s *LedgerStore) Classes() []models.ClassGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classes
}

// Students returns the current student snapshot. Callers must not modify it.
func (s *LedgerStore) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students
}

// Transactions returns the current transaction snapshot. Callers must not
// modify it.
func (s *LedgerStore) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transactions
}

// Snapshot returns all three collections from the same locked read, so the
// balance engine always derives from a consistent state.
func (s *LedgerStore) Snapshot() ([]models.ClassGroup, []models.Student, []models.Transaction) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.classes, s.students, s.transactions
}

// HasStudent reports whether a student with the given id exists.
func (s *LedgerStore) HasStudent(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return true
		}
	}
	return false
}

func appendCopy[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}

func removeClass(in []models.ClassGroup, id string) []models.ClassGroup {
	out := make([]models.ClassGroup, 0, len(in))
	for _, c := range in {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
