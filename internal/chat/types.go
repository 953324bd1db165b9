package chat

import (
	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/intent"
	"github.com/freshnutrients/agrichat/internal/prompt"
)

// maxMessageLength caps inbound messages; the widget enforces the same
// limit client-side.
const maxMessageLength = 1000

// Request is the chat endpoint's request body.
type Request struct {
	Message        string            `json:"message"`
	ConversationID string            `json:"conversation_id,omitempty"`
	UserContext    map[string]string `json:"user_context,omitempty"`
}

// ProductInfo is one catalog row echoed back as response metadata, with
// document links keyed by display name.
type ProductInfo struct {
	ProductName     string            `json:"product_name"`
	Crop            string            `json:"crop,omitempty"`
	ApplicationType string            `json:"application_type,omitempty"`
	Problem         string            `json:"problem,omitempty"`
	Documents       map[string]string `json:"documents,omitempty"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	ResponseTimeMS int                     `json:"response_time_ms"`
	ModelUsed      string                  `json:"model_used,omitempty"`
	ProductsCount  int                     `json:"products_count"`
	Context        intent.ExtractedContext `json:"context"`
	Assessment     advisor.Assessment      `json:"assessment"`
	PHUnified      bool                    `json:"ph_unified,omitempty"`
	ConversationID string                  `json:"conversation_id"`
	Timestamp      string                  `json:"timestamp"`
}

// Response is the chat endpoint's response body. FormattedResponse is
// the same advice rendered as widget-ready HTML.
type Response struct {
	Response          string        `json:"response"`
	FormattedResponse string        `json:"formatted_response,omitempty"`
	ConversationID    string        `json:"conversation_id"`
	ContextUsed       []ProductInfo `json:"context_used"`
	Metadata          Metadata      `json:"metadata"`
	Status            string        `json:"status"`
}

func productInfos(products []catalog.Product) []ProductInfo {
	infos := make([]ProductInfo, 0, len(products))
	for _, p := range products {
		info := ProductInfo{
			ProductName:     p.ProductName,
			Crop:            p.Crop,
			ApplicationType: p.ApplicationType,
			Problem:         p.Problem,
		}
		docs := map[string]string{}
		if p.Directions != "" {
			docs["Product Directions"] = prompt.FixDocumentURL(p.Directions)
		}
		if p.Label != "" {
			docs["Product Label"] = prompt.FixDocumentURL(p.Label)
		}
		if p.MSDS != "" {
			docs["Safety Data"] = prompt.FixDocumentURL(p.MSDS)
		}
		if p.TechDoc != "" {
			docs["Technical Document"] = prompt.FixDocumentURL(p.TechDoc)
		}
		if len(docs) > 0 {
			info.Documents = docs
		}
		infos = append(infos, info)
	}
	return infos
}
