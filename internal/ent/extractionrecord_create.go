// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"structify/internal/ent/extractionrecord"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ExtractionRecordCreate is the builder for creating a ExtractionRecord entity.
type ExtractionRecordCreate struct {
	config
	mutation *ExtractionRecordMutation
	hooks    []Hook
}

// SetCacheKey sets the "cache_key" field.
func (_c *ExtractionRecordCreate) SetCacheKey(v string) *ExtractionRecordCreate {
	_c.mutation.SetCacheKey(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ExtractionRecordCreate) SetOwnerID(v string) *ExtractionRecordCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableOwnerID(v *string) *ExtractionRecordCreate {
	if v != nil {
		_c.SetOwnerID(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ExtractionRecordCreate) SetPrompt(v string) *ExtractionRecordCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetFieldSpecs sets the "field_specs" field.
func (_c *ExtractionRecordCreate) SetFieldSpecs(v json.RawMessage) *ExtractionRecordCreate {
	_c.mutation.SetFieldSpecs(v)
	return _c
}

// SetSchemaDoc sets the "schema_doc" field.
func (_c *ExtractionRecordCreate) SetSchemaDoc(v json.RawMessage) *ExtractionRecordCreate {
	_c.mutation.SetSchemaDoc(v)
	return _c
}

// SetAssetDigest sets the "asset_digest" field.
func (_c *ExtractionRecordCreate) SetAssetDigest(v string) *ExtractionRecordCreate {
	_c.mutation.SetAssetDigest(v)
	return _c
}

// SetNillableAssetDigest sets the "asset_digest" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableAssetDigest(v *string) *ExtractionRecordCreate {
	if v != nil {
		_c.SetAssetDigest(*v)
	}
	return _c
}

// SetRawOutput sets the "raw_output" field.
func (_c *ExtractionRecordCreate) SetRawOutput(v json.RawMessage) *ExtractionRecordCreate {
	_c.mutation.SetRawOutput(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ExtractionRecordCreate) SetResult(v json.RawMessage) *ExtractionRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionRecordCreate) SetCreatedAt(v time.Time) *ExtractionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionRecordCreate) SetNillableCreatedAt(v *time.Time) *ExtractionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionRecordCreate) SetID(v int) *ExtractionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractionRecordMutation object of the builder.
func (_c *ExtractionRecordCreate) Mutation() *ExtractionRecordMutation {
	return _c.mutation
}

// Save creates the ExtractionRecord in the database.
func (_c *ExtractionRecordCreate) Save(ctx context.Context) (*ExtractionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionRecordCreate) SaveX(ctx context.Context) *ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionRecordCreate) defaults() {
	if _, ok := _c.mutation.OwnerID(); !ok {
		v := extractionrecord.DefaultOwnerID
		_c.mutation.SetOwnerID(v)
	}
	if _, ok := _c.mutation.AssetDigest(); !ok {
		v := extractionrecord.DefaultAssetDigest
		_c.mutation.SetAssetDigest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionRecordCreate) check() error {
	if _, ok := _c.mutation.CacheKey(); !ok {
		return &ValidationError{Name: "cache_key", err: errors.New(`ent: missing required field "ExtractionRecord.cache_key"`)}
	}
	if v, ok := _c.mutation.CacheKey(); ok {
		if err := extractionrecord.CacheKeyValidator(v); err != nil {
			return &ValidationError{Name: "cache_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionRecord.cache_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ExtractionRecord.owner_id"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "ExtractionRecord.prompt"`)}
	}
	if _, ok := _c.mutation.FieldSpecs(); !ok {
		return &ValidationError{Name: "field_specs", err: errors.New(`ent: missing required field "ExtractionRecord.field_specs"`)}
	}
	if _, ok := _c.mutation.SchemaDoc(); !ok {
		return &ValidationError{Name: "schema_doc", err: errors.New(`ent: missing required field "ExtractionRecord.schema_doc"`)}
	}
	if _, ok := _c.mutation.AssetDigest(); !ok {
		return &ValidationError{Name: "asset_digest", err: errors.New(`ent: missing required field "ExtractionRecord.asset_digest"`)}
	}
	if _, ok := _c.mutation.RawOutput(); !ok {
		return &ValidationError{Name: "raw_output", err: errors.New(`ent: missing required field "ExtractionRecord.raw_output"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "ExtractionRecord.result"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionRecord.created_at"`)}
	}
	return nil
}

func (_c *ExtractionRecordCreate) sqlSave(ctx context.Context) (*ExtractionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionRecordCreate) createSpec() (*ExtractionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionrecord.Table, sqlgraph.NewFieldSpec(extractionrecord.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CacheKey(); ok {
		_spec.SetField(extractionrecord.FieldCacheKey, field.TypeString, value)
		_node.CacheKey = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(extractionrecord.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(extractionrecord.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.FieldSpecs(); ok {
		_spec.SetField(extractionrecord.FieldFieldSpecs, field.TypeJSON, value)
		_node.FieldSpecs = value
	}
	if value, ok := _c.mutation.SchemaDoc(); ok {
		_spec.SetField(extractionrecord.FieldSchemaDoc, field.TypeJSON, value)
		_node.SchemaDoc = value
	}
	if value, ok := _c.mutation.AssetDigest(); ok {
		_spec.SetField(extractionrecord.FieldAssetDigest, field.TypeString, value)
		_node.AssetDigest = value
	}
	if value, ok := _c.mutation.RawOutput(); ok {
		_spec.SetField(extractionrecord.FieldRawOutput, field.TypeJSON, value)
		_node.RawOutput = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(extractionrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractionRecordCreateBulk is the builder for creating many ExtractionRecord entities in bulk.
type ExtractionRecordCreateBulk struct {
	config
	err      error
	builders []*ExtractionRecordCreate
}

// Save creates the ExtractionRecord entities in the database.
func (_c *ExtractionRecordCreateBulk) Save(ctx context.Context) ([]*ExtractionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) SaveX(ctx context.Context) []*ExtractionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
