// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"structify/internal/ent/extractionrecord"
	"structify/internal/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// ExtractionRecordUpdate is the builder for updating ExtractionRecord entities.
type ExtractionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdate) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFieldSpecs sets the "field_specs" field.
func (_u *ExtractionRecordUpdate) SetFieldSpecs(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.SetFieldSpecs(v)
	return _u
}

// AppendFieldSpecs appends value to the "field_specs" field.
func (_u *ExtractionRecordUpdate) AppendFieldSpecs(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.AppendFieldSpecs(v)
	return _u
}

// SetSchemaDoc sets the "schema_doc" field.
func (_u *ExtractionRecordUpdate) SetSchemaDoc(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.SetSchemaDoc(v)
	return _u
}

// AppendSchemaDoc appends value to the "schema_doc" field.
func (_u *ExtractionRecordUpdate) AppendSchemaDoc(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.AppendSchemaDoc(v)
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *ExtractionRecordUpdate) SetRawOutput(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.SetRawOutput(v)
	return _u
}

// AppendRawOutput appends value to the "raw_output" field.
func (_u *ExtractionRecordUpdate) AppendRawOutput(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.AppendRawOutput(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionRecordUpdate) SetResult(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionRecordUpdate) AppendResult(v json.RawMessage) *ExtractionRecordUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdate) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldSpecs(); ok {
		_spec.SetField(extractionrecord.FieldFieldSpecs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldSpecs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldFieldSpecs, value)
		})
	}
	if value, ok := _u.mutation.SchemaDoc(); ok {
		_spec.SetField(extractionrecord.FieldSchemaDoc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchemaDoc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldSchemaDoc, value)
		})
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(extractionrecord.FieldRawOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldRawOutput, value)
		})
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractionrecord.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldResult, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionRecordUpdateOne is the builder for updating a single ExtractionRecord entity.
type ExtractionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionRecordMutation
}

// SetFieldSpecs sets the "field_specs" field.
func (_u *ExtractionRecordUpdateOne) SetFieldSpecs(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.SetFieldSpecs(v)
	return _u
}

// AppendFieldSpecs appends value to the "field_specs" field.
func (_u *ExtractionRecordUpdateOne) AppendFieldSpecs(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.AppendFieldSpecs(v)
	return _u
}

// SetSchemaDoc sets the "schema_doc" field.
func (_u *ExtractionRecordUpdateOne) SetSchemaDoc(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.SetSchemaDoc(v)
	return _u
}

// AppendSchemaDoc appends value to the "schema_doc" field.
func (_u *ExtractionRecordUpdateOne) AppendSchemaDoc(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.AppendSchemaDoc(v)
	return _u
}

// SetRawOutput sets the "raw_output" field.
func (_u *ExtractionRecordUpdateOne) SetRawOutput(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.SetRawOutput(v)
	return _u
}

// AppendRawOutput appends value to the "raw_output" field.
func (_u *ExtractionRecordUpdateOne) AppendRawOutput(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.AppendRawOutput(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ExtractionRecordUpdateOne) SetResult(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ExtractionRecordUpdateOne) AppendResult(v json.RawMessage) *ExtractionRecordUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_u *ExtractionRecordUpdateOne) Mutation() *ExtractionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionRecordUpdate builder.
func (_u *ExtractionRecordUpdateOne) Where(ps ...predicate.ExtractionRecord) *ExtractionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionRecordUpdateOne) Select(field string, fields ...string) *ExtractionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionRecord entity.
func (_u *ExtractionRecordUpdateOne) Save(ctx context.Context) (*ExtractionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) SaveX(ctx context.Context) *ExtractionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractionrecord.Table, extractionrecord.Columns, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionrecord.FieldID)
		for _, f := range fields {
			if !extractionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FieldSpecs(); ok {
		_spec.SetField(extractionrecord.FieldFieldSpecs, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldSpecs(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldFieldSpecs, value)
		})
	}
	if value, ok := _u.mutation.SchemaDoc(); ok {
		_spec.SetField(extractionrecord.FieldSchemaDoc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchemaDoc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldSchemaDoc, value)
		})
	}
	if value, ok := _u.mutation.RawOutput(); ok {
		_spec.SetField(extractionrecord.FieldRawOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldRawOutput, value)
		})
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(extractionrecord.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionrecord.FieldResult, value)
		})
	}
	_node = &ExtractionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
