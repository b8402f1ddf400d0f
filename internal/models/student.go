package models

// Student represents an enrolled student
type Student struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClassID    string `json:"classId"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	JoinedDate string `json:"joinedDate"` // ISO-8601, set at creation
}
