package llm

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned while the breaker refuses upstream calls.
// Callers are expected to answer with a canned fallback instead of
// failing the conversation.
var ErrCircuitOpen = errors.New("llm circuit breaker open")

const (
	// breakerThreshold is how many consecutive failures trip the breaker.
	breakerThreshold = 3
	// breakerCooldown is how long the breaker stays open before letting a
	// probe request through.
	breakerCooldown = 5 * time.Minute
)

// BreakerProvider wraps a Provider with a circuit breaker so a dead
// upstream fails fast instead of stalling every chat turn on timeouts.
type BreakerProvider struct {
	provider  Provider
	threshold int
	cooldown  time.Duration

	mu       sync.Mutex
	failures int
	openedAt time.Time

	// now is swapped out in tests.
	now func() time.Time
}

// NewBreakerProvider wraps the given provider with a circuit breaker.
func NewBreakerProvider(provider Provider) *BreakerProvider {
	return &BreakerProvider{
		provider:  provider,
		threshold: breakerThreshold,
		cooldown:  breakerCooldown,
		now:       time.Now,
	}
}

func (b *BreakerProvider) Name() string {
	return b.provider.Name()
}

// Open reports whether the breaker is currently refusing calls.
func (b *BreakerProvider) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.openLocked()
}

func (b *BreakerProvider) openLocked() bool {
	if b.failures < b.threshold {
		return false
	}
	return b.now().Sub(b.openedAt) < b.cooldown
}

func (b *BreakerProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	b.mu.Lock()
	if b.openLocked() {
		b.mu.Unlock()
		return nil, ErrCircuitOpen
	}
	b.mu.Unlock()

	resp, err := b.provider.Complete(ctx, req)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.failures++
		if b.failures >= b.threshold {
			// Trips the breaker, or re-opens it after a failed probe.
			b.openedAt = b.now()
		}
		return nil, err
	}
	b.failures = 0
	return resp, nil
}
