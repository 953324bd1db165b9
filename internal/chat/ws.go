package chat

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/advisor"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type           string            `json:"type"` // "message"
	ConversationID string            `json:"conversation_id"`
	Content        string            `json:"content"`
	UserContext    map[string]string `json:"user_context,omitempty"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type           string `json:"type"` // "response" or "error"
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
	ProductsCount  int    `json:"products_count,omitempty"`
	Status         string `json:"status,omitempty"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			h.sendWSError(conn, "", "invalid message format")
			continue
		}

		message, ok := sanitizeMessage(req.Content)
		if !ok {
			h.sendWSError(conn, req.ConversationID, "content is required")
			continue
		}
		if req.ConversationID != "" && !conversationIDPattern.MatchString(req.ConversationID) {
			h.sendWSError(conn, "", "invalid conversation ID format")
			continue
		}

		switch req.Type {
		case "message":
			reply := h.engine.Respond(r.Context(), advisor.Request{
				ConversationID: req.ConversationID,
				Message:        message,
				Overrides:      req.UserContext,
				UserIP:         clientIP(r),
				UserAgent:      r.UserAgent(),
			})
			h.sendWS(conn, wsResponse{
				Type:           "response",
				ConversationID: reply.ConversationID,
				Content:        reply.Response,
				ProductsCount:  len(reply.Products),
				Status:         reply.Status,
			})
		default:
			h.sendWSError(conn, req.ConversationID, "unknown message type: "+req.Type)
		}
	}
}

func (h *Handler) sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Warn("websocket write failed", zap.Error(err))
	}
}

func (h *Handler) sendWSError(conn *websocket.Conn, conversationID, msg string) {
	h.sendWS(conn, wsResponse{
		Type:           "error",
		ConversationID: conversationID,
		Content:        msg,
	})
}
