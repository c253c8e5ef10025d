package llm

import (
	"context"
	"sync"

	genai "google.golang.org/genai"
)

// Fake is a deterministic Gateway for tests. Replies come from Reply
// or ReplyFn; Err short-circuits. Calls counts every Complete
// invocation so tests can assert the gateway stayed idle on cache hits.
type Fake struct {
	mu    sync.Mutex
	calls int

	Reply   RawObject
	ReplyFn func(prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error)
	Err     error
}

func (f *Fake) Complete(_ context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	if f.ReplyFn != nil {
		return f.ReplyFn(prompt, schema, attachment)
	}
	out := make(RawObject, len(f.Reply))
	for k, v := range f.Reply {
		out[k] = v
	}
	return out, nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
