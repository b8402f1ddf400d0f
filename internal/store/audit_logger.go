package store

import (
	"encoding/json"
	"log"
	"time"
)

type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	StudentID string    `json:"student_id,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Details   any       `json:"details,omitempty"`
}

// AuditLogger emits one JSON line per ledger mutation for diagnostics.
type AuditLogger struct{}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{}
}

func (a *AuditLogger) LogMutation(eventType, entityID, details string) {
	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: eventType,
		EntityID:  entityID,
	}
	if details != "" {
		event.Details = map[string]string{"name": details}
	}
	a.log(event)
}

func (a *AuditLogger) LogTransaction(transactionID, studentID, txType string, amount int64) {
	event := AuditEvent{
		Timestamp: time.Now(),
		EventType: "TRANSACTION_RECORDED",
		EntityID:  transactionID,
		StudentID: studentID,
		Amount:    amount,
		Details:   map[string]string{"type": txType},
	}
	a.log(event)
}

func (a *AuditLogger) log(event AuditEvent) {
	data, _ := json.Marshal(event)
	log.Printf("AUDIT: %s", string(data))
}
