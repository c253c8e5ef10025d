package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeResult serializes a validated result map for persistence.
func EncodeResult(data map[string]any) (json.RawMessage, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return b, nil
}

// DecodeResult restores a persisted result with the same value types a
// fresh validation produces: int64 for integral numbers, float64
// otherwise, string for everything else. Without the renormalize step a
// cache hit would hand back float64 where the fresh path returned int64.
func DecodeResult(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	if data == nil {
		return nil, fmt.Errorf("decode result: null payload")
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		num, ok := v.(json.Number)
		if !ok {
			out[k] = v
			continue
		}
		n, err := normalizeNumber(num.String())
		if err != nil {
			return nil, fmt.Errorf("decode result: field %q: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}
