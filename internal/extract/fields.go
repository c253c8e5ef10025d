// Package extract implements the structured-extraction pipeline:
// schema build, result validation, the cross-principal cache, and the
// orchestrating service.
package extract

import (
	"fmt"
	"strings"
)

// FieldKind is the closed set of scalar kinds a field can request.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindNumber FieldKind = "number"
)

// ParseFieldKind reads a kind off the wire, case-insensitively.
func ParseFieldKind(s string) (FieldKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	default:
		return "", fmt.Errorf("unknown field kind %q", s)
	}
}

// FieldSpec names one extraction target and its kind. Names are unique
// within a request.
type FieldSpec struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"kind"`
}
