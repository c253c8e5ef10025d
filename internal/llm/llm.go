// Package llm is the single non-deterministic edge of the pipeline:
// one synchronous structured-output call per extraction, no retries.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// RawObject is a parsed but untyped vendor reply. Scalars are kept as
// json.Number until validation narrows them.
type RawObject map[string]any

// Attachment carries asset bytes inline with the request. Bytes ride
// in the request body itself, never as a URL into internal storage.
type Attachment struct {
	Data     []byte
	MIMEType string
}

// Gateway invokes the external completion service.
type Gateway interface {
	Complete(ctx context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error)
}

var (
	// ErrUnavailable wraps transport failures. The caller decides what
	// to do; nothing here retries.
	ErrUnavailable = errors.New("completion gateway unavailable")

	ErrEmptyOutput = errors.New("completion service returned no content")

	// ErrMalformedOutput marks replies that are not a single JSON
	// object. The error text carries a bounded excerpt, never the
	// whole reply.
	ErrMalformedOutput = errors.New("completion output is not a JSON object")
)

// ParseObject narrows reply text into a RawObject or fails with
// ErrMalformedOutput.
func ParseObject(text string) (RawObject, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var obj RawObject
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOutput, excerpt(text))
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOutput, excerpt(text))
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after object: %s", ErrMalformedOutput, excerpt(text))
	}
	return obj, nil
}

const maxExcerpt = 200

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxExcerpt {
		return s
	}
	return string(runes[:maxExcerpt]) + "..."
}
