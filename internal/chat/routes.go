// Package chat exposes the conversational endpoints consumed by the
// website widget: the main chat endpoint, session context updates and a
// websocket transport for embedded chat.
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/advisor"
)

// Responder runs one chat turn; satisfied by the advisor engine.
type Responder interface {
	Respond(ctx context.Context, req advisor.Request) advisor.Reply
}

// Formatter renders markdown advice as widget-ready HTML.
type Formatter interface {
	Format(markdown string) (string, error)
}

// Handler serves the chat API.
type Handler struct {
	engine    Responder
	formatter Formatter
	model     string
	logger    *zap.Logger
}

func NewHandler(engine Responder, formatter Formatter, model string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{engine: engine, formatter: formatter, model: model, logger: logger}
}

// RegisterRoutes mounts the request/response chat endpoints on the
// router. The WebSocket endpoint registers separately so the server can
// keep it off the per-request timeout.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/v1/chat", h.handleChat)
	r.Post("/api/v1/session/context", h.handleSessionContext)
}

// RegisterWebSocket mounts the long-lived widget chat endpoint.
func RegisterWebSocket(r chi.Router, h *Handler) {
	r.Get("/api/v1/chat/ws", h.handleWebSocket)
}

var conversationIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, ok := sanitizeMessage(req.Message)
	if !ok {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.ConversationID != "" && !conversationIDPattern.MatchString(req.ConversationID) {
		writeError(w, http.StatusBadRequest, "invalid conversation ID format")
		return
	}

	reply := h.engine.Respond(r.Context(), advisor.Request{
		ConversationID: req.ConversationID,
		Message:        message,
		Overrides:      req.UserContext,
		UserIP:         clientIP(r),
		UserAgent:      r.UserAgent(),
	})

	writeJSON(w, http.StatusOK, h.buildResponse(reply))
}

func (h *Handler) buildResponse(reply advisor.Reply) Response {
	status := "partial"
	if reply.Status == "success" {
		status = "success"
	}
	var formatted string
	if h.formatter != nil {
		html, err := h.formatter.Format(reply.Response)
		if err != nil {
			h.logger.Warn("response formatting failed", zap.Error(err))
		} else {
			formatted = html
		}
	}
	return Response{
		Response:          reply.Response,
		FormattedResponse: formatted,
		ConversationID:    reply.ConversationID,
		ContextUsed:       productInfos(reply.Products),
		Metadata: Metadata{
			ResponseTimeMS: int(reply.ResponseTime.Milliseconds()),
			ModelUsed:      h.model,
			ProductsCount:  len(reply.Products),
			Context:        reply.Context,
			Assessment:     reply.Assessment,
			PHUnified:      reply.PHUnified,
			ConversationID: reply.ConversationID,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
		},
		Status: status,
	}
}

// handleSessionContext lets the widget push structured context ahead of
// the next message. Context is applied per-turn through user_context, so
// this endpoint just validates and echoes the update.
func (h *Handler) handleSessionContext(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConversationID string            `json:"conversation_id"`
		ContextUpdate  map[string]string `json:"context_update"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !conversationIDPattern.MatchString(req.ConversationID) {
		writeError(w, http.StatusBadRequest, "invalid conversation ID format")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"conversation_id": req.ConversationID,
		"updated_context": req.ContextUpdate,
		"status":          "success",
		"message":         "Session context updated successfully",
	})
}

// sanitizeMessage trims and caps a user message; empty messages are
// rejected.
func sanitizeMessage(message string) (string, bool) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", false
	}
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}
	return message, true
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
