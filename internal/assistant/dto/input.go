package dto

// ChatInput is the usecase-facing form of a chat request. History is only
// consulted by the generative engine; the rule engine classifies Message alone.
type ChatInput struct {
	Message string
	History []ChatTurn
}

type ChatTurn struct {
	Role    string // "user" or "assistant"
	Content string
}
