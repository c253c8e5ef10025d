package extract

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"structify/internal/llm"
)

func TestBuildSchemaVendorShape(t *testing.T) {
	s, err := BuildSchema([]FieldSpec{
		{Name: "title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	})
	require.NoError(t, err)

	require.NotNil(t, s.Vendor)
	assert.Equal(t, genai.TypeObject, s.Vendor.Type)
	assert.Equal(t, []string{"title", "year"}, s.Vendor.Required)
	require.Contains(t, s.Vendor.Properties, "title")
	require.Contains(t, s.Vendor.Properties, "year")
	assert.Equal(t, genai.TypeString, s.Vendor.Properties["title"].Type)
	assert.Equal(t, genai.TypeNumber, s.Vendor.Properties["year"].Type)

	// Request order survives normalization.
	assert.Equal(t, []FieldSpec{
		{Name: "title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	}, s.Fields)
}

func TestBuildSchemaNormalizesInput(t *testing.T) {
	s, err := BuildSchema([]FieldSpec{
		{Name: "  Title ", Kind: FieldKind(" STRING ")},
		{Name: "year", Kind: FieldKind("Number")},
	})
	require.NoError(t, err)
	assert.Equal(t, []FieldSpec{
		{Name: "Title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	}, s.Fields)
}

func TestBuildSchemaRejects(t *testing.T) {
	cases := []struct {
		name   string
		fields []FieldSpec
	}{
		{"empty list", nil},
		{"blank name", []FieldSpec{{Name: "   ", Kind: KindString}}},
		{"unknown kind", []FieldSpec{{Name: "count", Kind: FieldKind("integer")}}},
		{"duplicate name", []FieldSpec{
			{Name: "a", Kind: KindString},
			{Name: "a", Kind: KindNumber},
		}},
		{"duplicate after trim", []FieldSpec{
			{Name: "a", Kind: KindString},
			{Name: " a", Kind: KindString},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildSchema(tc.fields)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSchema), "got %v", err)
		})
	}
}

func TestBuildSchemaDocShape(t *testing.T) {
	s, err := BuildSchema([]FieldSpec{
		{Name: "title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(s.DocJSON, &doc))
	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	title, ok := props["title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", title["type"])
	year, ok := props["year"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "number", year["type"])
}

func TestCheckReply(t *testing.T) {
	s, err := BuildSchema([]FieldSpec{
		{Name: "title", Kind: KindString},
		{Name: "year", Kind: KindNumber},
	})
	require.NoError(t, err)

	ok := llm.RawObject{"title": "Dune", "year": json.Number("1965")}
	assert.NoError(t, s.CheckReply(ok))

	missing := llm.RawObject{"title": "Dune"}
	assert.Error(t, s.CheckReply(missing))

	wrongType := llm.RawObject{"title": "Dune", "year": "later"}
	assert.Error(t, s.CheckReply(wrongType))

	extra := llm.RawObject{"title": "Dune", "year": json.Number("1965"), "publisher": "Chilton"}
	assert.Error(t, s.CheckReply(extra))
}
