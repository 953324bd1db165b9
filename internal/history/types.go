package history

import "time"

// Entry is a single logged conversation turn.
type Entry struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	UserMessage    string    `json:"user_message"`
	BotResponse    string    `json:"bot_response"`
	Category       string    `json:"category"`
	ProductContext string    `json:"product_context"`
	ResponseTimeMS int       `json:"response_time_ms"`
	UserIP         string    `json:"user_ip,omitempty"`
	UserAgent      string    `json:"user_agent,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Summary aggregates a conversation for listing endpoints.
type Summary struct {
	ConversationID string    `json:"conversation_id"`
	MessageCount   int       `json:"message_count"`
	CreatedAt      time.Time `json:"created_at"`
	LastMessageAt  time.Time `json:"last_message_at"`
	Category       string    `json:"category,omitempty"`
}
