package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	genai "google.golang.org/genai"
)

func TestParseObject(t *testing.T) {
	obj, err := ParseObject(`{"title": "Dune", "year": 1965}`)
	if err != nil {
		t.Fatalf("ParseObject: %v", err)
	}
	if obj["title"] != "Dune" {
		t.Fatalf("title = %v", obj["title"])
	}
	if n, ok := obj["year"].(json.Number); !ok || n.String() != "1965" {
		t.Fatalf("year = %T %v, want json.Number 1965", obj["year"], obj["year"])
	}
}

func TestParseObjectRejectsNonObjects(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"array", `[1, 2, 3]`},
		{"scalar", `42`},
		{"null", `null`},
		{"prose", `Sure! Here is your JSON: nope`},
		{"trailing garbage", `{"a": 1} {"b": 2}`},
		{"truncated", `{"a": `},
	}
	for _, tc := range cases {
		if _, err := ParseObject(tc.text); !errors.Is(err, ErrMalformedOutput) {
			t.Fatalf("%s: err = %v, want ErrMalformedOutput", tc.name, err)
		}
	}
}

func TestParseObjectExcerptIsBounded(t *testing.T) {
	long := strings.Repeat("x", 5000)
	_, err := ParseObject(long)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Error()) > 400 {
		t.Fatalf("error message leaks the reply: %d chars", len(err.Error()))
	}
}

func TestReplyTextConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{Text: `{"a":`}, {Text: ` 1}`}},
			},
		}},
	}
	if got := replyText(resp); got != `{"a": 1}` {
		t.Fatalf("replyText = %q", got)
	}
}

func TestReplyTextEmptyShapes(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"nil response", nil},
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no parts", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: &genai.Content{}}}}},
	}
	for _, tc := range cases {
		if got := replyText(tc.resp); got != "" {
			t.Fatalf("%s: replyText = %q, want empty", tc.name, got)
		}
	}
}

func TestFakeCountsCalls(t *testing.T) {
	fake := &Fake{Reply: RawObject{"x": "1"}}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := fake.Complete(ctx, "p", nil, nil); err != nil {
			t.Fatalf("Complete #%d: %v", i, err)
		}
	}
	if fake.Calls() != 3 {
		t.Fatalf("Calls = %d, want 3", fake.Calls())
	}
}

func TestFakeErrShortCircuits(t *testing.T) {
	sentinel := errors.New("boom")
	fake := &Fake{Err: sentinel}
	if _, err := fake.Complete(context.Background(), "p", nil, nil); !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if fake.Calls() != 1 {
		t.Fatalf("Calls = %d, want 1 (errors still count)", fake.Calls())
	}
}

func TestFakeReplyIsCopied(t *testing.T) {
	fake := &Fake{Reply: RawObject{"x": "1"}}
	obj, _ := fake.Complete(context.Background(), "p", nil, nil)
	obj["x"] = "mutated"
	again, _ := fake.Complete(context.Background(), "p", nil, nil)
	if again["x"] != "1" {
		t.Fatal("caller mutation leaked into the canned reply")
	}
}

type tagGateway struct {
	tag  string
	next Gateway
}

func (g *tagGateway) Complete(ctx context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error) {
	return g.next.Complete(ctx, prompt+g.tag, schema, attachment)
}

func TestWrapOrder(t *testing.T) {
	var seen string
	inner := &Fake{ReplyFn: func(prompt string, _ *genai.Schema, _ *Attachment) (RawObject, error) {
		seen = prompt
		return RawObject{}, nil
	}}

	a := func(next Gateway) Gateway { return &tagGateway{tag: "A", next: next} }
	b := func(next Gateway) Gateway { return &tagGateway{tag: "B", next: next} }

	wrapped := Wrap(inner, a, b)
	if _, err := wrapped.Complete(context.Background(), "p", nil, nil); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	// Wrap(inner, A, B) = A(B(inner)): A appends first, then B.
	if seen != "pAB" {
		t.Fatalf("prompt = %q, want pAB", seen)
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fake := &Fake{Reply: RawObject{"x": "1"}}
	wrapped := Wrap(fake, WithLogging(logger))

	obj, err := wrapped.Complete(context.Background(), "p", nil, &Attachment{Data: []byte{1, 2}, MIMEType: "image/png"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if obj["x"] != "1" {
		t.Fatalf("obj = %v", obj)
	}
	if fake.Calls() != 1 {
		t.Fatalf("Calls = %d, want 1", fake.Calls())
	}
}
