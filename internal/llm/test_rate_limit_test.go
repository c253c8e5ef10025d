package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	fake := &Fake{Reply: RawObject{"a": "b"}}
	g := Wrap(fake, WithRateLimit(0, 0))

	for i := 0; i < 5; i++ {
		if _, err := g.Complete(context.Background(), "p", nil, nil); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if fake.Calls() != 5 {
		t.Fatalf("calls = %d, want 5", fake.Calls())
	}
}

func TestRateLimitBurstThenBlocks(t *testing.T) {
	fake := &Fake{Reply: RawObject{"a": "b"}}
	// 2 rps with burst 2: two immediate admissions, then a ~500ms wait.
	g := Wrap(fake, WithRateLimit(2, 2))

	for i := 0; i < 2; i++ {
		if _, err := g.Complete(context.Background(), "p", nil, nil); err != nil {
			t.Fatalf("burst call %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := g.Complete(ctx, "p", nil, nil)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded while throttled, got %v", err)
	}
	if fake.Calls() != 2 {
		t.Fatalf("throttled call reached upstream: %d calls", fake.Calls())
	}
}

func TestRateLimitRefills(t *testing.T) {
	fake := &Fake{Reply: RawObject{"a": "b"}}
	g := Wrap(fake, WithRateLimit(100, 1))

	if _, err := g.Complete(context.Background(), "p", nil, nil); err != nil {
		t.Fatalf("first call: %v", err)
	}
	// 100 rps refills within 10ms; allow generous slack.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := g.Complete(ctx, "p", nil, nil); err != nil {
		t.Fatalf("post-refill call: %v", err)
	}
	if fake.Calls() != 2 {
		t.Fatalf("calls = %d, want 2", fake.Calls())
	}
}
