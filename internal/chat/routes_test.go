package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
)

type fakeResponder struct {
	requests []advisor.Request
	reply    advisor.Reply
}

func (f *fakeResponder) Respond(_ context.Context, req advisor.Request) advisor.Reply {
	f.requests = append(f.requests, req)
	reply := f.reply
	if reply.ConversationID == "" {
		reply.ConversationID = req.ConversationID
	}
	return reply
}

type fakeFormatter struct{}

func (fakeFormatter) Format(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

func setupTestHandler(reply advisor.Reply) (*fakeResponder, http.Handler) {
	fr := &fakeResponder{reply: reply}
	h := NewHandler(fr, fakeFormatter{}, "gpt-35-turbo", nil)
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return fr, r
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	fr, handler := setupTestHandler(advisor.Reply{
		Response: "Try Calsap on those potatoes.",
		Products: []catalog.Product{{
			ProductName: "Calsap",
			Crop:        "Potatoes",
			Problem:     "Soil Acidity",
			Label:       "//www.freshnutrients.org/calsap.pdf",
		}},
		Context:      intent.ExtractedContext{CropType: "Potatoes", Problem: intent.ProblemSoilAcidity},
		Assessment:   advisor.Assessment{Sufficient: true, Scenario: advisor.ScenarioProblemAndCrop, Confidence: 1.0},
		Status:       "success",
		ResponseTime: 42 * time.Millisecond,
	})

	w := postJSON(t, handler, "/api/v1/chat", `{"message":"my potato soil is acidic","conversation_id":"conv-1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %q", resp.Status)
	}
	if resp.Response != "Try Calsap on those potatoes." {
		t.Errorf("Response = %q", resp.Response)
	}
	if resp.FormattedResponse != "<p>Try Calsap on those potatoes.</p>" {
		t.Errorf("FormattedResponse = %q", resp.FormattedResponse)
	}
	if len(resp.ContextUsed) != 1 {
		t.Fatalf("ContextUsed len = %d", len(resp.ContextUsed))
	}
	if got := resp.ContextUsed[0].Documents["Product Label"]; got != "https://www.freshnutrients.org/calsap.pdf" {
		t.Errorf("label URL = %q, want https fix", got)
	}
	if resp.Metadata.ProductsCount != 1 || resp.Metadata.ModelUsed != "gpt-35-turbo" {
		t.Errorf("metadata = %+v", resp.Metadata)
	}

	if len(fr.requests) != 1 {
		t.Fatalf("engine called %d times", len(fr.requests))
	}
	if fr.requests[0].ConversationID != "conv-1" {
		t.Errorf("ConversationID = %q", fr.requests[0].ConversationID)
	}
}

func TestChatEndpointValidation(t *testing.T) {
	_, handler := setupTestHandler(advisor.Reply{Status: "success"})

	tests := []struct {
		name string
		body string
	}{
		{"empty message", `{"message":"   "}`},
		{"missing message", `{}`},
		{"bad conversation id", `{"message":"hello","conversation_id":"not valid!!"}`},
		{"bad json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, handler, "/api/v1/chat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestChatEndpointTruncatesLongMessages(t *testing.T) {
	fr, handler := setupTestHandler(advisor.Reply{Status: "success"})

	long := strings.Repeat("a", maxMessageLength+200)
	w := postJSON(t, handler, "/api/v1/chat", `{"message":"`+long+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := len(fr.requests[0].Message); got != maxMessageLength {
		t.Errorf("message length = %d, want %d", got, maxMessageLength)
	}
}

func TestChatEndpointPartialStatus(t *testing.T) {
	_, handler := setupTestHandler(advisor.Reply{
		Response: "fallback",
		Status:   "service_failed",
	})
	w := postJSON(t, handler, "/api/v1/chat", `{"message":"hello"}`)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Status != "partial" {
		t.Errorf("Status = %q, want partial for degraded reply", resp.Status)
	}
}

func TestChatEndpointPassesUserContext(t *testing.T) {
	fr, handler := setupTestHandler(advisor.Reply{Status: "success"})

	postJSON(t, handler, "/api/v1/chat",
		`{"message":"help","user_context":{"crop_type":"Potatoes","location":"Limpopo"}}`)
	if got := fr.requests[0].Overrides["crop_type"]; got != "Potatoes" {
		t.Errorf("override crop_type = %q", got)
	}
	if got := fr.requests[0].Overrides["location"]; got != "Limpopo" {
		t.Errorf("override location = %q", got)
	}
}

func TestSessionContextEndpoint(t *testing.T) {
	_, handler := setupTestHandler(advisor.Reply{})

	w := postJSON(t, handler, "/api/v1/session/context",
		`{"conversation_id":"conv-1","context_update":{"crop_type":"Potatoes"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Session context updated successfully") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	w = postJSON(t, handler, "/api/v1/session/context", `{"conversation_id":"bad id!!"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid id", w.Code)
	}
}

func TestSanitizeMessage(t *testing.T) {
	if _, ok := sanitizeMessage("  \n "); ok {
		t.Error("whitespace-only message accepted")
	}
	got, ok := sanitizeMessage("  hello  ")
	if !ok || got != "hello" {
		t.Errorf("sanitizeMessage = %q, %v", got, ok)
	}
}
