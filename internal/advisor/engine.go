// Package advisor runs the recommendation pipeline: accumulate context
// across conversation turns, resolve matching catalog rows, judge whether
// the context is sufficient, and have the LLM phrase the advice.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/history"
	"github.com/freshnutrients/agrichat/internal/intent"
	"github.com/freshnutrients/agrichat/internal/llm"
	"github.com/freshnutrients/agrichat/internal/prompt"
)

// contextProductCap limits how many resolved rows are echoed back to the
// client as metadata.
const contextProductCap = 10

// emergencyResponse is the canned answer when the LLM is unreachable.
const emergencyResponse = "I'm sorry, but I'm experiencing technical difficulties right now. " +
	"Please try again in a few minutes, or contact FreshNutrients support directly for immediate assistance with your farming needs. " +
	"You can also browse our product catalog while I'm being restored."

// HistoryLogger is the slice of the history store the engine writes to.
type HistoryLogger interface {
	Log(ctx context.Context, e history.Entry) error
}

// Request is one chat turn entering the pipeline.
type Request struct {
	ConversationID string
	Message        string
	Overrides      map[string]string
	UserIP         string
	UserAgent      string
}

// Reply is the pipeline's answer for one turn.
type Reply struct {
	Response       string
	ConversationID string
	Products       []catalog.Product
	Context        intent.ExtractedContext
	Assessment     Assessment
	PHUnified      bool
	Provider       string
	Status         string
	ResponseTime   time.Duration
}

// Engine wires the pipeline stages together. Every collaborator is
// injected so tests can run it against fakes.
type Engine struct {
	accumulator *Accumulator
	resolver    *Resolver
	provider    llm.Provider
	model       string
	logs        HistoryLogger
	logger      *zap.Logger
}

func NewEngine(acc *Accumulator, res *Resolver, provider llm.Provider, model string, logs HistoryLogger, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		accumulator: acc,
		resolver:    res,
		provider:    provider,
		model:       model,
		logs:        logs,
		logger:      logger,
	}
}

// Respond runs one chat turn end to end. LLM failures degrade to the
// emergency response and failures to log the interaction never fail the
// turn.
func (e *Engine) Respond(ctx context.Context, req Request) Reply {
	start := time.Now()

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	combined := e.accumulator.Accumulate(ctx, req.ConversationID, req.Message, req.Overrides)
	resolution := e.resolver.Resolve(ctx, combined)
	assessment := Evaluate(combined)

	e.logger.Info("resolved chat turn",
		zap.String("conversation_id", conversationID),
		zap.String("scenario", assessment.Scenario),
		zap.Int("products", len(resolution.Products)),
		zap.Bool("ph_unified", resolution.PHUnified))

	system := prompt.BuildSystem(prompt.Input{
		Context:       combined,
		Products:      resolution.Products,
		PHUnified:     resolution.PHUnified,
		Scenario:      assessment.Scenario,
		Confidence:    assessment.Confidence,
		MissingFields: assessment.MissingFields,
		FollowUp:      assessment.FollowUp,
	})

	reply := Reply{
		ConversationID: conversationID,
		Products:       capProducts(resolution.Products),
		Context:        combined,
		Assessment:     assessment,
		PHUnified:      resolution.PHUnified,
	}

	resp, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model: e.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: req.Message},
		},
		MaxTokens:   llm.DefaultMaxTokens,
		Temperature: llm.DefaultTemperature,
	})
	switch {
	case err == nil:
		reply.Response = resp.Content
		reply.Provider = e.provider.Name()
		reply.Status = "success"
	case errors.Is(err, llm.ErrCircuitOpen):
		reply.Response = emergencyResponse
		reply.Provider = "emergency"
		reply.Status = "circuit_breaker_open"
	default:
		e.logger.Error("llm completion failed", zap.Error(err))
		reply.Response = emergencyResponse
		reply.Provider = "emergency"
		reply.Status = "service_failed"
	}

	reply.ResponseTime = time.Since(start)
	e.logInteraction(ctx, conversationID, req, reply)
	return reply
}

func (e *Engine) logInteraction(ctx context.Context, conversationID string, req Request, reply Reply) {
	if e.logs == nil {
		return
	}
	productContext, err := json.Marshal(reply.Products)
	if err != nil {
		productContext = []byte("[]")
	}
	entry := history.Entry{
		ConversationID: conversationID,
		UserMessage:    req.Message,
		BotResponse:    reply.Response,
		Category:       "product_recommendation",
		ProductContext: string(productContext),
		ResponseTimeMS: int(reply.ResponseTime.Milliseconds()),
		UserIP:         req.UserIP,
		UserAgent:      req.UserAgent,
	}
	if err := e.logs.Log(ctx, entry); err != nil {
		e.logger.Error("failed to log chat interaction",
			zap.String("conversation_id", conversationID),
			zap.Error(err))
	}
}

func capProducts(products []catalog.Product) []catalog.Product {
	if len(products) > contextProductCap {
		return products[:contextProductCap]
	}
	return products
}
