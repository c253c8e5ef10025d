// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"structify/internal/ent/extractionrecord"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// ExtractionRecord is the model entity for the ExtractionRecord schema.
type ExtractionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CacheKey holds the value of the "cache_key" field.
	CacheKey string `json:"cache_key,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// requested fields as [{name, kind}] in request order
	FieldSpecs json.RawMessage `json:"field_specs,omitempty"`
	// JSON-Schema document the reply was produced against
	SchemaDoc json.RawMessage `json:"schema_doc,omitempty"`
	// AssetDigest holds the value of the "asset_digest" field.
	AssetDigest string `json:"asset_digest,omitempty"`
	// unvalidated vendor reply, retained for audit
	RawOutput json.RawMessage `json:"raw_output,omitempty"`
	// validated field map
	Result json.RawMessage `json:"result,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldFieldSpecs, extractionrecord.FieldSchemaDoc, extractionrecord.FieldRawOutput, extractionrecord.FieldResult:
			values[i] = new([]byte)
		case extractionrecord.FieldID:
			values[i] = new(sql.NullInt64)
		case extractionrecord.FieldCacheKey, extractionrecord.FieldOwnerID, extractionrecord.FieldPrompt, extractionrecord.FieldAssetDigest:
			values[i] = new(sql.NullString)
		case extractionrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionRecord fields.
func (_m *ExtractionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractionrecord.FieldCacheKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_key", values[i])
			} else if value.Valid {
				_m.CacheKey = value.String
			}
		case extractionrecord.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case extractionrecord.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case extractionrecord.FieldFieldSpecs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field field_specs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FieldSpecs); err != nil {
					return fmt.Errorf("unmarshal field field_specs: %w", err)
				}
			}
		case extractionrecord.FieldSchemaDoc:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field schema_doc", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SchemaDoc); err != nil {
					return fmt.Errorf("unmarshal field schema_doc: %w", err)
				}
			}
		case extractionrecord.FieldAssetDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field asset_digest", values[i])
			} else if value.Valid {
				_m.AssetDigest = value.String
			}
		case extractionrecord.FieldRawOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawOutput); err != nil {
					return fmt.Errorf("unmarshal field raw_output: %w", err)
				}
			}
		case extractionrecord.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case extractionrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtractionRecord.
// Note that you need to call ExtractionRecord.Unwrap() before calling this method if this ExtractionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionRecord) Update() *ExtractionRecordUpdateOne {
	return NewExtractionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionRecord) Unwrap() *ExtractionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("cache_key=")
	builder.WriteString(_m.CacheKey)
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("field_specs=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldSpecs))
	builder.WriteString(", ")
	builder.WriteString("schema_doc=")
	builder.WriteString(fmt.Sprintf("%v", _m.SchemaDoc))
	builder.WriteString(", ")
	builder.WriteString("asset_digest=")
	builder.WriteString(_m.AssetDigest)
	builder.WriteString(", ")
	builder.WriteString("raw_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawOutput))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionRecords is a parsable slice of ExtractionRecord.
type ExtractionRecords []*ExtractionRecord
