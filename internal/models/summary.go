package models

// StudentBalanceView is the derived per-student view. It is never stored;
// the balance engine recomputes it from the full transaction list on demand.
// balance = payments - charges, so negative means the student owes money.
type StudentBalanceView struct {
	Student
	Balance         int64  `json:"balance"`
	ClassName       string `json:"className"`
	LastPaymentDate string `json:"lastPaymentDate,omitempty"`
}

// TrendPoint is one calendar month's collected payments for the income chart.
type TrendPoint struct {
	Month  string `json:"month"` // short month name, e.g. "Oct"
	Income int64  `json:"income"`
}

// SummaryStats holds the dashboard aggregates. All figures are derived from
// PAYMENT transactions except TotalPending, which comes from negative balances.
type SummaryStats struct {
	TotalPending   int64        `json:"totalPending"`
	DefaulterCount int          `json:"defaulterCount"`
	TodayIncome    int64        `json:"todayIncome"`
	TotalIncome    int64        `json:"totalIncome"`
	MonthlyIncome  int64        `json:"monthlyIncome"`
	AvgDailyIncome int64        `json:"avgDailyIncome"`
	Trend          []TrendPoint `json:"trend"`
}
