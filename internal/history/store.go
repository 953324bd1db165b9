package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freshnutrients/agrichat/internal/db"
)

// Store persists and reads conversation turns.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a conversation turn. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.ProductContext == "" {
		entry.ProductContext = "[]"
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_logs (
			id, conversation_id, user_message, bot_response, category,
			product_context, response_time_ms, user_ip, user_agent
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.ConversationID,
		entry.UserMessage,
		entry.BotResponse,
		entry.Category,
		entry.ProductContext,
		entry.ResponseTimeMS,
		entry.UserIP,
		entry.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("inserting chat log: %w", err)
	}
	return nil
}

// GetRecent returns up to limit turns of a conversation, newest first.
func (s *Store) GetRecent(ctx context.Context, conversationID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, conversation_id, user_message, bot_response, category,
			   product_context, response_time_ms, user_ip, user_agent, created_at
		FROM chat_logs
		WHERE conversation_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("reading chat history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.ConversationID, &e.UserMessage, &e.BotResponse,
			&e.Category, &e.ProductContext, &e.ResponseTimeMS, &e.UserIP,
			&e.UserAgent, &ts); err != nil {
			return nil, fmt.Errorf("scanning chat log: %w", err)
		}
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			e.CreatedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summarize returns aggregate information about a conversation.
func (s *Store) Summarize(ctx context.Context, conversationID string) (*Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MIN(created_at), ''), COALESCE(MAX(created_at), '')
		FROM chat_logs WHERE conversation_id = ?`, conversationID)

	var (
		count       int
		first, last string
	)
	if err := row.Scan(&count, &first, &last); err != nil {
		return nil, fmt.Errorf("summarizing conversation: %w", err)
	}

	sum := &Summary{ConversationID: conversationID, MessageCount: count}
	if t, err := time.Parse(time.DateTime, first); err == nil {
		sum.CreatedAt = t
	}
	if t, err := time.Parse(time.DateTime, last); err == nil {
		sum.LastMessageAt = t
	}
	return sum, nil
}

// Delete removes all turns of a conversation. Returns the number of
// deleted rows.
func (s *Store) Delete(ctx context.Context, conversationID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM chat_logs WHERE conversation_id = ?`, conversationID)
	if err != nil {
		return 0, fmt.Errorf("deleting conversation: %w", err)
	}
	return res.RowsAffected()
}
