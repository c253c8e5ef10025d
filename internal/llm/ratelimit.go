package llm

import (
	"context"
	"time"

	genai "google.golang.org/genai"
)

// rpsLimiter is a token-bucket limiter: at most rps acquisitions per
// second with a burst allowance. A nil limiter admits everything.
type rpsLimiter struct {
	tokens chan struct{}
	stopCh chan struct{}
}

func newRPSLimiter(rps float64, burst int) *rpsLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}

	l := &rpsLimiter{
		tokens: make(chan struct{}, burst),
		stopCh: make(chan struct{}),
	}

	// Pre-fill so the first burst goes through without waiting.
	for i := 0; i < burst; i++ {
		l.tokens <- struct{}{}
	}

	period := time.Duration(float64(time.Second) / rps)
	if period <= 0 {
		period = time.Millisecond
	}
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				select {
				case l.tokens <- struct{}{}:
				default:
					// bucket full
				}
			case <-l.stopCh:
				return
			}
		}
	}()

	return l
}

// Acquire blocks until a token is available or the context ends.
func (l *rpsLimiter) Acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		return context.Canceled
	case <-l.tokens:
		return nil
	}
}

// Stop terminates the refill goroutine.
func (l *rpsLimiter) Stop() {
	if l == nil {
		return
	}
	close(l.stopCh)
}

type rateLimited struct {
	inner   Gateway
	limiter *rpsLimiter
}

// WithRateLimit throttles upstream calls to rps requests per second
// with the given burst. rps <= 0 disables throttling. Waiting respects
// the caller's context; the single upstream attempt is unchanged.
func WithRateLimit(rps float64, burst int) Middleware {
	limiter := newRPSLimiter(rps, burst)
	return func(inner Gateway) Gateway {
		return &rateLimited{inner: inner, limiter: limiter}
	}
}

func (g *rateLimited) Complete(ctx context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error) {
	if err := g.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	return g.inner.Complete(ctx, prompt, schema, attachment)
}
