package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/history"
	"github.com/freshnutrients/agrichat/internal/intent"
)

// defaultHistoryWindow is how many prior turns feed context accumulation.
const defaultHistoryWindow = 5

// HistoryReader is the slice of the history store the accumulator needs.
type HistoryReader interface {
	GetRecent(ctx context.Context, conversationID string, limit int) ([]history.Entry, error)
}

// Accumulator folds the structured context of recent conversation turns
// into a single picture, so a farmer can say "my tomatoes" in one message
// and "they need spraying" in the next.
type Accumulator struct {
	history HistoryReader
	window  int
	logger  *zap.Logger
}

func NewAccumulator(h HistoryReader, logger *zap.Logger) *Accumulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Accumulator{history: h, window: defaultHistoryWindow, logger: logger}
}

// Accumulate extracts context from the current message and merges it over
// the context of prior turns, oldest first, so newer mentions win while
// absent fields never erase established ones. Caller-supplied overrides
// are folded last and win unconditionally.
//
// A failing history read degrades to empty history: the current message
// still gets a full extraction pass and the error is only logged.
func (a *Accumulator) Accumulate(ctx context.Context, conversationID, message string, overrides map[string]string) intent.ExtractedContext {
	current := intent.Extract(message)

	var entries []history.Entry
	if a.history != nil && conversationID != "" {
		var err error
		entries, err = a.history.GetRecent(ctx, conversationID, a.window)
		if err != nil {
			a.logger.Warn("history read failed, continuing without prior context",
				zap.String("conversation_id", conversationID),
				zap.Error(err))
			entries = nil
		}
	}

	accumulated := intent.ExtractedContext{}
	// GetRecent returns newest first; fold oldest to newest so later turns
	// overwrite earlier ones.
	for i := len(entries) - 1; i >= 0; i-- {
		accumulated = intent.Merge(accumulated, intent.Extract(entries[i].UserMessage))
	}
	accumulated = intent.Merge(accumulated, current)

	if len(overrides) > 0 {
		accumulated = intent.ApplyOverrides(accumulated, overrides)
	}
	return accumulated
}
