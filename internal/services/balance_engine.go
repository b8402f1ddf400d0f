package services

import (
	"time"

	"github.com/tutorledger/backend/internal/models"
)

// The balance engine is a set of pure functions over the store's snapshot.
// Nothing here caches or mutates input; every call is a full recompute.
// The dataset is a single tutor's roster, so recomputation is cheap.

const unknownClassName = "Unknown"

// ComputeStudentBalances derives one StudentBalanceView per input student,
// in input order. balance = sum(PAYMENT) - sum(CHARGE) over that student's
// transactions. A missing class resolves to "Unknown"; the last payment date
// is the maximum parsed payment date, first occurrence winning ties.
func ComputeStudentBalances(students []models.Student, transactions []models.Transaction, classes []models.ClassGroup) []models.StudentBalanceView {
	classNames := make(map[string]string, len(classes))
	for _, c := range classes {
		classNames[c.ID] = c.Name
	}

	byStudent := make(map[string][]models.Transaction, len(students))
	for _, tx := range transactions {
		byStudent[tx.StudentID] = append(byStudent[tx.StudentID], tx)
	}

	views := make([]models.StudentBalanceView, 0, len(students))
	for _, s := range students {
		var payments, charges int64
		var lastPayment string
		var lastPaymentAt time.Time

		for _, tx := range byStudent[s.ID] {
			switch tx.Type {
			case models.TransactionPayment:
				payments += tx.Amount
				if at, ok := parseTransactionDate(tx.Date); ok && at.After(lastPaymentAt) {
					lastPaymentAt = at
					lastPayment = tx.Date
				}
			case models.TransactionCharge:
				charges += tx.Amount
			}
		}

		className, ok := classNames[s.ClassID]
		if !ok {
			className = unknownClassName
		}

		views = append(views, models.StudentBalanceView{
			Student:         s,
			Balance:         payments - charges,
			ClassName:       className,
			LastPaymentDate: lastPayment,
		})
	}
	return views
}

// ComputeSummary derives the dashboard aggregates for the given instant.
// Date bucketing uses the UTC calendar. Transactions whose date cannot be
// parsed are excluded from day/month buckets but still count toward the
// all-time total.
func ComputeSummary(now time.Time, views []models.StudentBalanceView, transactions []models.Transaction) models.SummaryStats {
	now = now.UTC()
	todayKey := now.Format("2006-01-02")
	monthKey := now.Format("2006-01")

	var stats models.SummaryStats
	monthlyTotals := make(map[string]int64)

	for _, v := range views {
		if v.Balance < 0 {
			stats.TotalPending += -v.Balance
			stats.DefaulterCount++
		}
	}

	for _, tx := range transactions {
		if tx.Type != models.TransactionPayment {
			continue
		}
		stats.TotalIncome += tx.Amount

		at, ok := parseTransactionDate(tx.Date)
		if !ok {
			continue
		}
		key := at.UTC().Format("2006-01")
		monthlyTotals[key] += tx.Amount
		if key == monthKey {
			stats.MonthlyIncome += tx.Amount
		}
		if at.UTC().Format("2006-01-02") == todayKey {
			stats.TodayIncome += tx.Amount
		}
	}

	// Divisor floors at 1 so the first of the month never divides by zero.
	day := int64(now.Day())
	if day < 1 {
		day = 1
	}
	stats.AvgDailyIncome = (stats.MonthlyIncome + day/2) / day

	stats.Trend = monthlyTrend(now, monthlyTotals)
	return stats
}

// Defaulters returns the students with a negative balance, in input order.
func Defaulters(views []models.StudentBalanceView) []models.StudentBalanceView {
	out := make([]models.StudentBalanceView, 0)
	for _, v := range views {
		if v.Balance < 0 {
			out = append(out, v)
		}
	}
	return out
}

// monthlyTrend builds exactly six buckets for the calendar months ending at
// the current one, oldest first. Months without payments report zero.
func monthlyTrend(now time.Time, monthlyTotals map[string]int64) []models.TrendPoint {
	trend := make([]models.TrendPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		// Anchor to the first of the month so short months cannot skip.
		m := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		trend = append(trend, models.TrendPoint{
			Month:  m.Format("Jan"),
			Income: monthlyTotals[m.Format("2006-01")],
		})
	}
	return trend
}

// parseTransactionDate accepts the two shapes the ledger stores: a full
// RFC 3339 timestamp or a bare calendar date.
func parseTransactionDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if at, err := time.Parse(time.RFC3339, s); err == nil {
		return at, true
	}
	if at, err := time.Parse("2006-01-02", s); err == nil {
		return at, true
	}
	return time.Time{}, false
}
