package store

import (
	"time"

	"github.com/tutorledger/backend/internal/models"
)

// SeedDemoData loads the sample classes, students and transactions used for
// local development. Dates are placed in the current and previous month so
// the dashboard aggregates have something to show.
func SeedDemoData(s *LedgerStore) {
	now := time.Now().UTC()
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	math := s.AddClass(ClassInput{
		Name:        "Grade 10 Math",
		FeeType:     models.FeeTypeMonthly,
		DefaultFee:  5000,
		Description: "Tuesday & Thursday Group",
	})
	physics := s.AddClass(ClassInput{
		Name:        "Physics Individual",
		FeeType:     models.FeeTypePerSession,
		DefaultFee:  3000,
		Description: "Advanced Physics",
	})

	alice := s.AddStudent(StudentInput{Name: "Alice Johnson", ClassID: math.ID, Email: "alice@example.com"})
	bob := s.AddStudent(StudentInput{Name: "Bob Smith", ClassID: math.ID, Phone: "077-1234567"})
	charlie := s.AddStudent(StudentInput{Name: "Charlie Brown", ClassID: physics.ID, Email: "charlie@example.com"})

	s.RecordTransaction(TransactionInput{StudentID: alice.ID, Type: models.TransactionCharge, Amount: 5000, Date: day(-12), Note: "Monthly Fee"})
	s.RecordTransaction(TransactionInput{StudentID: alice.ID, Type: models.TransactionPayment, Amount: 5000, Date: day(-8), Note: "Paid via Cash"})

	// Bob has not paid, balance -5000
	s.RecordTransaction(TransactionInput{StudentID: bob.ID, Type: models.TransactionCharge, Amount: 5000, Date: day(-12), Note: "Monthly Fee"})

	s.RecordTransaction(TransactionInput{StudentID: charlie.ID, Type: models.TransactionCharge, Amount: 3000, Date: day(-11), Note: "Session 1"})
	s.RecordTransaction(TransactionInput{StudentID: charlie.ID, Type: models.TransactionCharge, Amount: 3000, Date: day(-4), Note: "Session 2"})
	s.RecordTransaction(TransactionInput{StudentID: charlie.ID, Type: models.TransactionPayment, Amount: 6000, Date: day(-3), Note: "Paid for 2 sessions"})
}
