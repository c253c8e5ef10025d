package llm

import (
	"context"
	"log/slog"
	"time"

	genai "google.golang.org/genai"
)

// Middleware decorates a Gateway with cross-cutting concerns.
type Middleware func(Gateway) Gateway

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Gateway, mws ...Middleware) Gateway {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// WithLogging logs call sizes, durations and failures. Pass nil to use
// slog.Default(). Prompt bodies and replies are never logged.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Gateway) Gateway {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next Gateway
	log  *slog.Logger
}

func (l *logging) Complete(ctx context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error) {
	attached := 0
	if attachment != nil {
		attached = len(attachment.Data)
	}
	l.log.Info("llm.complete.start", "prompt_bytes", len(prompt), "attachment_bytes", attached)

	start := time.Now()
	obj, err := l.next.Complete(ctx, prompt, schema, attachment)
	if err != nil {
		l.log.Error("llm.complete.failed", "err", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	l.log.Info("llm.complete.done", "fields", len(obj), "duration_ms", time.Since(start).Milliseconds())
	return obj, nil
}
