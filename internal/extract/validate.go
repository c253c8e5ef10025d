package extract

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"structify/internal/llm"
)

// MissingFieldError reports the first requested field absent from the
// vendor reply.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q missing from output", e.Field)
}

// NonNumericFieldError reports a number-kind field whose value could
// not be parsed. Raw carries the offending value's rendering.
type NonNumericFieldError struct {
	Field string
	Raw   string
}

func (e *NonNumericFieldError) Error() string {
	return fmt.Sprintf("field %q is not numeric: %q", e.Field, e.Raw)
}

// Validate narrows a raw reply into a typed field map. Fields are
// checked in the given order and the first offense fails the whole
// call; no partial map is ever returned. Number values normalize to
// int64 when integral, float64 otherwise.
func Validate(raw llm.RawObject, fields []FieldSpec) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		value, ok := raw[name]
		if !ok || value == nil {
			return nil, &MissingFieldError{Field: name}
		}
		switch f.Kind {
		case KindNumber:
			n, err := coerceNumber(value)
			if err != nil {
				return nil, &NonNumericFieldError{Field: name, Raw: renderScalar(value)}
			}
			out[name] = n
		default:
			out[name] = renderScalar(value)
		}
	}
	return out, nil
}

// renderScalar gives any JSON value a stable string form.
func renderScalar(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

// coerceNumber accepts numeric scalars and numeric-looking strings.
// Booleans are never numbers.
func coerceNumber(v any) (any, error) {
	var text string
	switch x := v.(type) {
	case json.Number:
		text = x.String()
	case string:
		text = strings.TrimSpace(x)
	case float64:
		text = strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	default:
		return nil, fmt.Errorf("value of type %T is not numeric", v)
	}
	if text == "" {
		return nil, fmt.Errorf("empty numeric value")
	}
	return normalizeNumber(text)
}

// normalizeNumber parses text with the JSON number grammar and picks
// the stable representation: int64 for integral values that fit
// exactly, float64 for the rest. Parse int-first so large integers
// keep full precision.
func normalizeNumber(text string) (any, error) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i, nil
	}
	var f float64
	if err := json.Unmarshal([]byte(text), &f); err != nil {
		return nil, fmt.Errorf("not a number: %q", text)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f), nil
	}
	return f, nil
}
