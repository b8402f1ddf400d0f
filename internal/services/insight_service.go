package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/tutorledger/backend/internal/models"
	"google.golang.org/genai"
)

const (
	insightEmptyReply = "I couldn't generate a response at this time."
	insightErrorReply = "Sorry, I encountered an error while communicating with the AI assistant."
)

// InsightService bridges free-text queries to the Gemini API. It carries no
// business logic: it shapes a read-only snapshot of the derived data,
// issues one request and hands back the text. All failures collapse to a
// fixed user-facing message.
type InsightService struct {
	client *genai.Client
	model  string
}

type studentSnapshot struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Balance int64  `json:"balance"`
	Contact string `json:"contact"`
}

type dataContext struct {
	Students            []studentSnapshot `json:"students"`
	TransactionsSummary string            `json:"recent_transactions_summary"`
}

func NewInsightService(apiKey, model string) *InsightService {
	if apiKey == "" {
		log.Printf("Warning: GEMINI_API_KEY not set, insight service disabled")
		return &InsightService{model: model}
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize Gemini client: %v", err)
		return &InsightService{model: model}
	}
	return &InsightService{client: client, model: model}
}

// Ask sends a single prompt combining the data snapshot and the user query.
// It always returns a displayable string, never an error.
func (s *InsightService) Ask(ctx context.Context, query string, views []models.StudentBalanceView, transactions []models.Transaction) string {
	if s.client == nil {
		return insightErrorReply
	}

	prompt := s.buildPrompt(query, views, transactions)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("[INSIGHT] Gemini request failed: %v", err)
		return insightErrorReply
	}

	if text := resp.Text(); text != "" {
		return text
	}
	return insightEmptyReply
}

// buildPrompt combines fixed instructions with a minimal JSON snapshot.
// Transactions are summarized to a count to bound the payload size.
func (s *InsightService) buildPrompt(query string, views []models.StudentBalanceView, transactions []models.Transaction) string {
	snapshot := dataContext{
		Students:            make([]studentSnapshot, 0, len(views)),
		TransactionsSummary: fmt.Sprintf("Total transactions: %d", len(transactions)),
	}
	for _, v := range views {
		snapshot.Students = append(snapshot.Students, studentSnapshot{
			Name:    v.Name,
			Class:   v.ClassName,
			Balance: v.Balance,
			Contact: contactInfo(v),
		})
	}

	data, _ := json.Marshal(snapshot)
	return fmt.Sprintf(`You are an intelligent assistant for a tutor's fee collection app.
Here is the current financial context (JSON):
%s

User Query: %s

Instructions:
1. If asking for a reminder, draft a polite, professional message (WhatsApp/Email style) for the specific student or a general template.
2. If asking for analysis, summarize the debt status.
3. Keep responses concise and helpful.`, data, query)
}

// ReminderPrompt shapes the canned query used by the dashboard's "Remind"
// action for a student who owes money.
func ReminderPrompt(studentName string, amountDue int64) string {
	if amountDue < 0 {
		amountDue = -amountDue
	}
	return fmt.Sprintf("Draft a polite payment reminder for %s who owes Rs. %d.", studentName, amountDue)
}

func contactInfo(v models.StudentBalanceView) string {
	if v.Email != "" {
		return v.Email
	}
	if v.Phone != "" {
		return v.Phone
	}
	return "No contact info"
}
