package cmd

import (
	"fmt"

	"github.com/freshnutrients/agrichat/internal/advisor"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/config"
	"github.com/freshnutrients/agrichat/internal/db"
	"github.com/freshnutrients/agrichat/internal/history"
	"github.com/freshnutrients/agrichat/internal/llm"
)

// buildProvider creates the configured LLM provider wrapped with rate
// limiting and a circuit breaker.
func buildProvider(cfg *config.Config) (llm.Provider, error) {
	base, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	limited := llm.NewRateLimitedProvider(base, cfg.LLM.RequestsPerMinute)
	return llm.NewBreakerProvider(limited), nil
}

// buildEngine wires the full recommendation pipeline over the database.
func buildEngine(database *db.DB, provider llm.Provider, model string) *advisor.Engine {
	histStore := history.NewStore(database)
	catStore := catalog.NewStore(database)

	accumulator := advisor.NewAccumulator(histStore, logger)
	resolver := advisor.NewResolver(catStore, logger)

	return advisor.NewEngine(accumulator, resolver, provider, model, histStore, logger)
}
