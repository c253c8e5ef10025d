package llm

import (
	"context"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

const (
	defaultModel       = "gemini-2.0-flash"
	defaultTemperature = float32(0.2)
)

type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// GeminiGateway wraps the official genai client. One instance is built
// at boot and injected; nothing here keeps per-request state.
type GeminiGateway struct {
	cli         *genai.Client
	model       string
	temperature float32
}

func NewGeminiGateway(ctx context.Context, cfg GeminiConfig) (*GeminiGateway, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &GeminiGateway{cli: cli, model: model, temperature: temperature}, nil
}

func (g *GeminiGateway) Complete(ctx context.Context, prompt string, schema *genai.Schema, attachment *Attachment) (RawObject, error) {
	if g == nil || g.cli == nil {
		return nil, fmt.Errorf("gateway is nil")
	}

	parts := []*genai.Part{{Text: prompt}}
	if attachment != nil && len(attachment.Data) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: attachment.MIMEType,
				Data:     attachment.Data,
			},
		})
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: parts}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
			Temperature:      genai.Ptr(g.temperature),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	text := replyText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyOutput
	}
	return ParseObject(text)
}

func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}
