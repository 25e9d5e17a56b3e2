package dto

// ChatRequest is the POST /chat body.
type ChatRequest struct {
	Message string            `json:"message" binding:"required"`
	History []ChatHistoryTurn `json:"history" binding:"omitempty,dive"`
}

type ChatHistoryTurn struct {
	Role    string `json:"role" binding:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required"`
}

// ChatResponse mirrors AnalyticResult on the wire plus a per-exchange id.
type ChatResponse struct {
	Answer    string      `json:"answer"`
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
}

func (r *ChatRequest) ToInput() *ChatInput {
	input := &ChatInput{Message: r.Message}
	for _, turn := range r.History {
		input.History = append(input.History, ChatTurn{Role: turn.Role, Content: turn.Content})
	}
	return input
}
