package dto

// AskRequest is a single-turn question against one chatbot's corpus.
// ChatbotId may be empty, in which case the latest trained tenant answers.
type AskRequest struct {
	Question  string `json:"question" validate:"required"`
	ChatbotId string `json:"chatbot_id,omitempty"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// ChatRequest is one turn of a multi-turn conversation. SessionId is
// optional; an unknown or empty id lazily creates a new session.
type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	ChatbotId string `json:"chatbot_id" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Message   string `json:"message"`
	SessionId string `json:"session_id"`
}
