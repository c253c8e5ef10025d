package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	genai "google.golang.org/genai"

	"structify/internal/llm"
)

// ErrInvalidSchema rejects field lists that cannot form a response
// schema: empty lists, blank or duplicate names, unknown kinds.
var ErrInvalidSchema = errors.New("invalid field schema")

// ResponseSchema is everything derived from one field list: the
// vendor-facing schema, the local JSON-Schema document persisted for
// audit, and the normalized fields the validator coerces against.
type ResponseSchema struct {
	// Fields in request order, names trimmed and kinds parsed.
	Fields []FieldSpec

	// Vendor is handed to the completion service.
	Vendor *genai.Schema

	// DocJSON is the JSON-Schema rendering of the same contract.
	DocJSON json.RawMessage

	compiled *jsonschema.Schema
}

// BuildSchema derives the response schema for fields. This is the
// authoritative place duplicate-name validation happens.
func BuildSchema(fields []FieldSpec) (*ResponseSchema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields requested", ErrInvalidSchema)
	}

	normalized := make([]FieldSpec, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field name is empty", ErrInvalidSchema)
		}
		kind, err := ParseFieldKind(string(f.Kind))
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidSchema, name, err)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidSchema, name)
		}
		seen[name] = struct{}{}
		normalized = append(normalized, FieldSpec{Name: name, Kind: kind})
	}

	vendorProps := make(map[string]*genai.Schema, len(normalized))
	docProps := make(map[string]any, len(normalized))
	required := make([]string, 0, len(normalized))
	for _, f := range normalized {
		switch f.Kind {
		case KindNumber:
			vendorProps[f.Name] = &genai.Schema{Type: genai.TypeNumber}
			docProps[f.Name] = map[string]any{"type": "number"}
		default:
			vendorProps[f.Name] = &genai.Schema{Type: genai.TypeString}
			docProps[f.Name] = map[string]any{"type": "string"}
		}
		required = append(required, f.Name)
	}

	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           docProps,
		"required":             required,
		"additionalProperties": false,
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("response.schema.json", bytes.NewReader(docJSON)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	compiled, err := compiler.Compile("response.schema.json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return &ResponseSchema{
		Fields: normalized,
		Vendor: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: vendorProps,
			Required:   required,
		},
		DocJSON:  docJSON,
		compiled: compiled,
	}, nil
}

// CheckReply reports whether raw conforms to the contract the vendor
// was asked for. Coercion may still rescue nonconformant replies, so
// this is audit signal, not a gate.
func (s *ResponseSchema) CheckReply(raw llm.RawObject) error {
	if s == nil || s.compiled == nil {
		return fmt.Errorf("schema not compiled")
	}
	return s.compiled.Validate(map[string]any(raw))
}
