package store

import "time"

// Turn is one recorded conversation message.
type Turn struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the volatile multi-turn chat state for one visitor. Sessions
// live only for process uptime; a restart loses them all.
type Session struct {
	ID       string `json:"id"`
	TenantID string `json:"tenant_id"` // owning chatbot
	Turns    []Turn `json:"turns"`
}

// Append records a turn with the current timestamp.
func (s *Session) Append(role, content string) {
	s.Turns = append(s.Turns, Turn{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
