package models

// AssistantRequest is one user turn sent to the chatbot.
type AssistantRequest struct {
	UserID  string `json:"userId"`
	Message string `json:"message" binding:"required"`
	Context string `json:"context,omitempty"` // optional caller-supplied user info
}

type AssistantResponse struct {
	Answer string `json:"answer"`
	// Suggestions is set when the assistant ran a guided freelancer search.
	Suggestions []Freelancer `json:"suggestions,omitempty"`
}

// AssistantContext is the per-user conversation state kept in redis between
// turns. Query holds the guided-search parameters the assistant has
// accumulated so far.
type AssistantContext struct {
	History []AssistantTurn `json:"history,omitempty"`
	Query   *QueryParams    `json:"query,omitempty"`
}

type AssistantTurn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}
