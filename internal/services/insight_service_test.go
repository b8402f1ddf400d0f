package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tutorledger/backend/internal/models"
)

func TestInsightService_Ask(t *testing.T) {
	t.Run("unconfigured client returns the fixed error message", func(t *testing.T) {
		service := NewInsightService("", "gemini-2.0-flash")

		answer := service.Ask(context.Background(), "Who owes money?", nil, nil)

		assert.Equal(t, insightErrorReply, answer)
	})
}

func TestInsightService_buildPrompt(t *testing.T) {
	service := &InsightService{model: "gemini-2.0-flash"}

	views := []models.StudentBalanceView{
		{
			Student:   models.Student{ID: "s1", Name: "Alice", Email: "alice@example.com"},
			Balance:   0,
			ClassName: "Grade 10 Math",
		},
		{
			Student:   models.Student{ID: "s2", Name: "Bob", Phone: "077-1234567"},
			Balance:   -5000,
			ClassName: "Grade 10 Math",
		},
		{
			Student:   models.Student{ID: "s3", Name: "Charlie"},
			Balance:   0,
			ClassName: "Physics Individual",
		},
	}
	transactions := []models.Transaction{
		{ID: "t1"}, {ID: "t2"}, {ID: "t3"},
	}

	prompt := service.buildPrompt("Who owes money?", views, transactions)

	t.Run("includes the user query", func(t *testing.T) {
		assert.Contains(t, prompt, "User Query: Who owes money?")
	})

	t.Run("summarizes transactions to a count", func(t *testing.T) {
		assert.Contains(t, prompt, "Total transactions: 3")
		assert.NotContains(t, prompt, `"t1"`)
	})

	t.Run("contact falls back from email to phone to placeholder", func(t *testing.T) {
		assert.Contains(t, prompt, "alice@example.com")
		assert.Contains(t, prompt, "077-1234567")
		assert.Contains(t, prompt, "No contact info")
	})

	t.Run("includes balances", func(t *testing.T) {
		assert.Contains(t, prompt, `"balance":-5000`)
	})
}

func TestReminderPrompt(t *testing.T) {
	t.Run("uses the absolute amount due", func(t *testing.T) {
		prompt := ReminderPrompt("Bob Smith", -5000)
		assert.Equal(t, "Draft a polite payment reminder for Bob Smith who owes Rs. 5000.", prompt)
	})

	t.Run("positive amounts pass through", func(t *testing.T) {
		prompt := ReminderPrompt("Bob Smith", 5000)
		assert.Equal(t, "Draft a polite payment reminder for Bob Smith who owes Rs. 5000.", prompt)
	})
}
