package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"structify/internal/llm"
)

func TestValidateNumberCoercion(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want any
	}{
		{"integer number", json.Number("42"), int64(42)},
		{"integer string", "42", int64(42)},
		{"fractional number", json.Number("42.5"), float64(42.5)},
		{"fractional string", "42.5", float64(42.5)},
		{"integral fraction collapses", json.Number("42.0"), int64(42)},
		{"integral float collapses", float64(3), int64(3)},
		{"padded string", " 7 ", int64(7)},
		{"negative", "-12", int64(-12)},
		{"exponent", "1e3", int64(1000)},
		{"exponent fraction", "2.5e-1", float64(0.25)},
		{"large integer keeps precision", json.Number("9007199254740993"), int64(9007199254740993)},
		{"huge magnitude stays float", float64(1e300), float64(1e300)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(
				llm.RawObject{"value": tc.in},
				[]FieldSpec{{Name: "value", Kind: KindNumber}},
			)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got["value"])
		})
	}
}

func TestValidateNumberRejections(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"prose", "about forty"},
		{"empty string", ""},
		{"blank string", "   "},
		{"boolean", true},
		{"hex", "0x10"},
		{"nan", "NaN"},
		{"infinity", "Inf"},
		{"object", map[string]any{"n": 1}},
		{"array", []any{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(
				llm.RawObject{"value": tc.in},
				[]FieldSpec{{Name: "value", Kind: KindNumber}},
			)
			require.Error(t, err)
			var nne *NonNumericFieldError
			require.True(t, errors.As(err, &nne), "got %v", err)
			assert.Equal(t, "value", nne.Field)
		})
	}
}

func TestValidateNonNumericCarriesRaw(t *testing.T) {
	_, err := Validate(
		llm.RawObject{"year": "unknown"},
		[]FieldSpec{{Name: "year", Kind: KindNumber}},
	)
	var nne *NonNumericFieldError
	require.True(t, errors.As(err, &nne))
	assert.Equal(t, "year", nne.Field)
	assert.Equal(t, "unknown", nne.Raw)
}

func TestValidateStringRendering(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string passthrough", "Dune", "Dune"},
		{"number to string", json.Number("42"), "42"},
		{"float to string", float64(12.5), "12.5"},
		{"bool to string", true, "true"},
		{"array compacted", []any{float64(1), float64(2)}, "[1,2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Validate(
				llm.RawObject{"value": tc.in},
				[]FieldSpec{{Name: "value", Kind: KindString}},
			)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got["value"])
		})
	}
}

func TestValidateMissingField(t *testing.T) {
	_, err := Validate(
		llm.RawObject{"title": "Dune"},
		[]FieldSpec{
			{Name: "title", Kind: KindString},
			{Name: "x", Kind: KindNumber},
		},
	)
	require.Error(t, err)
	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf), "got %v", err)
	assert.Equal(t, "x", mf.Field)
}

func TestValidateNullCountsAsMissing(t *testing.T) {
	_, err := Validate(
		llm.RawObject{"title": nil},
		[]FieldSpec{{Name: "title", Kind: KindString}},
	)
	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf), "got %v", err)
	assert.Equal(t, "title", mf.Field)
}

func TestValidateFailFastInFieldOrder(t *testing.T) {
	// Both fields are missing; the first requested wins.
	_, err := Validate(
		llm.RawObject{},
		[]FieldSpec{
			{Name: "b", Kind: KindString},
			{Name: "a", Kind: KindString},
		},
	)
	var mf *MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "b", mf.Field)
}

func TestValidateKeepsOnlyRequestedFields(t *testing.T) {
	got, err := Validate(
		llm.RawObject{"title": "Dune", "noise": "ignored"},
		[]FieldSpec{{Name: "title", Kind: KindString}},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Dune"}, got)
}
