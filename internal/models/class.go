package models

// FeeType describes how a class bills its students.
type FeeType string

const (
	FeeTypeMonthly    FeeType = "MONTHLY"
	FeeTypePerSession FeeType = "PER_SESSION"
)

// ClassGroup represents a tutoring class or subject group
type ClassGroup struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FeeType     FeeType `json:"feeType"`
	DefaultFee  int64   `json:"defaultFee"` // in smallest currency unit
	Description string  `json:"description,omitempty"`
}
