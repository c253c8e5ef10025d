// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"structify/internal/ent/asset"
	"structify/internal/ent/extractionrecord"
	"structify/internal/ent/predicate"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAsset            = "Asset"
	TypeExtractionRecord = "ExtractionRecord"
)

// AssetMutation represents an operation that mutates the Asset nodes in the graph.
type AssetMutation struct {
	config
	op             Op
	typ            string
	id             *int
	owner_id       *string
	storage_key    *string
	url            *string
	content_digest *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Asset, error)
	predicates     []predicate.Asset
}

var _ ent.Mutation = (*AssetMutation)(nil)

// assetOption allows management of the mutation configuration using functional options.
type assetOption func(*AssetMutation)

// newAssetMutation creates new mutation for the Asset entity.
func newAssetMutation(c config, op Op, opts ...assetOption) *AssetMutation {
	m := &AssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetID sets the ID field of the mutation.
func withAssetID(id int) assetOption {
	return func(m *AssetMutation) {
		var (
			err   error
			once  sync.Once
			value *Asset
		)
		m.oldValue = func(ctx context.Context) (*Asset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Asset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAsset sets the old Asset of the mutation.
func withAsset(node *Asset) assetOption {
	return func(m *AssetMutation) {
		m.oldValue = func(context.Context) (*Asset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Asset entities.
func (m *AssetMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Asset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *AssetMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *AssetMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *AssetMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *AssetMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *AssetMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldStorageKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *AssetMutation) ResetStorageKey() {
	m.storage_key = nil
}

// SetURL sets the "url" field.
func (m *AssetMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *AssetMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *AssetMutation) ResetURL() {
	m.url = nil
}

// SetContentDigest sets the "content_digest" field.
func (m *AssetMutation) SetContentDigest(s string) {
	m.content_digest = &s
}

// ContentDigest returns the value of the "content_digest" field in the mutation.
func (m *AssetMutation) ContentDigest() (r string, exists bool) {
	v := m.content_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldContentDigest returns the old "content_digest" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldContentDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentDigest: %w", err)
	}
	return oldValue.ContentDigest, nil
}

// ResetContentDigest resets all changes to the "content_digest" field.
func (m *AssetMutation) ResetContentDigest() {
	m.content_digest = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AssetMutation builder.
func (m *AssetMutation) Where(ps ...predicate.Asset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Asset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Asset).
func (m *AssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.owner_id != nil {
		fields = append(fields, asset.FieldOwnerID)
	}
	if m.storage_key != nil {
		fields = append(fields, asset.FieldStorageKey)
	}
	if m.url != nil {
		fields = append(fields, asset.FieldURL)
	}
	if m.content_digest != nil {
		fields = append(fields, asset.FieldContentDigest)
	}
	if m.created_at != nil {
		fields = append(fields, asset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldOwnerID:
		return m.OwnerID()
	case asset.FieldStorageKey:
		return m.StorageKey()
	case asset.FieldURL:
		return m.URL()
	case asset.FieldContentDigest:
		return m.ContentDigest()
	case asset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case asset.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case asset.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case asset.FieldURL:
		return m.OldURL(ctx)
	case asset.FieldContentDigest:
		return m.OldContentDigest(ctx)
	case asset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Asset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case asset.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case asset.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case asset.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case asset.FieldContentDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentDigest(v)
		return nil
	case asset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Asset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Asset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetMutation) ResetField(name string) error {
	switch name {
	case asset.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case asset.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case asset.FieldURL:
		m.ResetURL()
		return nil
	case asset.FieldContentDigest:
		m.ResetContentDigest()
		return nil
	case asset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Asset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Asset edge %s", name)
}

// ExtractionRecordMutation represents an operation that mutates the ExtractionRecord nodes in the graph.
type ExtractionRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	cache_key         *string
	owner_id          *string
	prompt            *string
	field_specs       *json.RawMessage
	appendfield_specs json.RawMessage
	schema_doc        *json.RawMessage
	appendschema_doc  json.RawMessage
	asset_digest      *string
	raw_output        *json.RawMessage
	appendraw_output  json.RawMessage
	result            *json.RawMessage
	appendresult      json.RawMessage
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ExtractionRecord, error)
	predicates        []predicate.ExtractionRecord
}

var _ ent.Mutation = (*ExtractionRecordMutation)(nil)

// extractionrecordOption allows management of the mutation configuration using functional options.
type extractionrecordOption func(*ExtractionRecordMutation)

// newExtractionRecordMutation creates new mutation for the ExtractionRecord entity.
func newExtractionRecordMutation(c config, op Op, opts ...extractionrecordOption) *ExtractionRecordMutation {
	m := &ExtractionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionRecordID sets the ID field of the mutation.
func withExtractionRecordID(id int) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionRecord
		)
		m.oldValue = func(ctx context.Context) (*ExtractionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionRecord sets the old ExtractionRecord of the mutation.
func withExtractionRecord(node *ExtractionRecord) extractionrecordOption {
	return func(m *ExtractionRecordMutation) {
		m.oldValue = func(context.Context) (*ExtractionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionRecord entities.
func (m *ExtractionRecordMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCacheKey sets the "cache_key" field.
func (m *ExtractionRecordMutation) SetCacheKey(s string) {
	m.cache_key = &s
}

// CacheKey returns the value of the "cache_key" field in the mutation.
func (m *ExtractionRecordMutation) CacheKey() (r string, exists bool) {
	v := m.cache_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCacheKey returns the old "cache_key" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldCacheKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCacheKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCacheKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCacheKey: %w", err)
	}
	return oldValue.CacheKey, nil
}

// ResetCacheKey resets all changes to the "cache_key" field.
func (m *ExtractionRecordMutation) ResetCacheKey() {
	m.cache_key = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ExtractionRecordMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ExtractionRecordMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ExtractionRecordMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetPrompt sets the "prompt" field.
func (m *ExtractionRecordMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ExtractionRecordMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ExtractionRecordMutation) ResetPrompt() {
	m.prompt = nil
}

// SetFieldSpecs sets the "field_specs" field.
func (m *ExtractionRecordMutation) SetFieldSpecs(jm json.RawMessage) {
	m.field_specs = &jm
	m.appendfield_specs = nil
}

// FieldSpecs returns the value of the "field_specs" field in the mutation.
func (m *ExtractionRecordMutation) FieldSpecs() (r json.RawMessage, exists bool) {
	v := m.field_specs
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldSpecs returns the old "field_specs" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldFieldSpecs(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldSpecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldSpecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldSpecs: %w", err)
	}
	return oldValue.FieldSpecs, nil
}

// AppendFieldSpecs adds jm to the "field_specs" field.
func (m *ExtractionRecordMutation) AppendFieldSpecs(jm json.RawMessage) {
	m.appendfield_specs = append(m.appendfield_specs, jm...)
}

// AppendedFieldSpecs returns the list of values that were appended to the "field_specs" field in this mutation.
func (m *ExtractionRecordMutation) AppendedFieldSpecs() (json.RawMessage, bool) {
	if len(m.appendfield_specs) == 0 {
		return nil, false
	}
	return m.appendfield_specs, true
}

// ResetFieldSpecs resets all changes to the "field_specs" field.
func (m *ExtractionRecordMutation) ResetFieldSpecs() {
	m.field_specs = nil
	m.appendfield_specs = nil
}

// SetSchemaDoc sets the "schema_doc" field.
func (m *ExtractionRecordMutation) SetSchemaDoc(jm json.RawMessage) {
	m.schema_doc = &jm
	m.appendschema_doc = nil
}

// SchemaDoc returns the value of the "schema_doc" field in the mutation.
func (m *ExtractionRecordMutation) SchemaDoc() (r json.RawMessage, exists bool) {
	v := m.schema_doc
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaDoc returns the old "schema_doc" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldSchemaDoc(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaDoc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaDoc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaDoc: %w", err)
	}
	return oldValue.SchemaDoc, nil
}

// AppendSchemaDoc adds jm to the "schema_doc" field.
func (m *ExtractionRecordMutation) AppendSchemaDoc(jm json.RawMessage) {
	m.appendschema_doc = append(m.appendschema_doc, jm...)
}

// AppendedSchemaDoc returns the list of values that were appended to the "schema_doc" field in this mutation.
func (m *ExtractionRecordMutation) AppendedSchemaDoc() (json.RawMessage, bool) {
	if len(m.appendschema_doc) == 0 {
		return nil, false
	}
	return m.appendschema_doc, true
}

// ResetSchemaDoc resets all changes to the "schema_doc" field.
func (m *ExtractionRecordMutation) ResetSchemaDoc() {
	m.schema_doc = nil
	m.appendschema_doc = nil
}

// SetAssetDigest sets the "asset_digest" field.
func (m *ExtractionRecordMutation) SetAssetDigest(s string) {
	m.asset_digest = &s
}

// AssetDigest returns the value of the "asset_digest" field in the mutation.
func (m *ExtractionRecordMutation) AssetDigest() (r string, exists bool) {
	v := m.asset_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetDigest returns the old "asset_digest" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldAssetDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetDigest: %w", err)
	}
	return oldValue.AssetDigest, nil
}

// ResetAssetDigest resets all changes to the "asset_digest" field.
func (m *ExtractionRecordMutation) ResetAssetDigest() {
	m.asset_digest = nil
}

// SetRawOutput sets the "raw_output" field.
func (m *ExtractionRecordMutation) SetRawOutput(jm json.RawMessage) {
	m.raw_output = &jm
	m.appendraw_output = nil
}

// RawOutput returns the value of the "raw_output" field in the mutation.
func (m *ExtractionRecordMutation) RawOutput() (r json.RawMessage, exists bool) {
	v := m.raw_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawOutput returns the old "raw_output" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldRawOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawOutput: %w", err)
	}
	return oldValue.RawOutput, nil
}

// AppendRawOutput adds jm to the "raw_output" field.
func (m *ExtractionRecordMutation) AppendRawOutput(jm json.RawMessage) {
	m.appendraw_output = append(m.appendraw_output, jm...)
}

// AppendedRawOutput returns the list of values that were appended to the "raw_output" field in this mutation.
func (m *ExtractionRecordMutation) AppendedRawOutput() (json.RawMessage, bool) {
	if len(m.appendraw_output) == 0 {
		return nil, false
	}
	return m.appendraw_output, true
}

// ResetRawOutput resets all changes to the "raw_output" field.
func (m *ExtractionRecordMutation) ResetRawOutput() {
	m.raw_output = nil
	m.appendraw_output = nil
}

// SetResult sets the "result" field.
func (m *ExtractionRecordMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ExtractionRecordMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ExtractionRecordMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ExtractionRecordMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ResetResult resets all changes to the "result" field.
func (m *ExtractionRecordMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionRecord entity.
// If the ExtractionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractionRecordMutation builder.
func (m *ExtractionRecordMutation) Where(ps ...predicate.ExtractionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionRecord).
func (m *ExtractionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.cache_key != nil {
		fields = append(fields, extractionrecord.FieldCacheKey)
	}
	if m.owner_id != nil {
		fields = append(fields, extractionrecord.FieldOwnerID)
	}
	if m.prompt != nil {
		fields = append(fields, extractionrecord.FieldPrompt)
	}
	if m.field_specs != nil {
		fields = append(fields, extractionrecord.FieldFieldSpecs)
	}
	if m.schema_doc != nil {
		fields = append(fields, extractionrecord.FieldSchemaDoc)
	}
	if m.asset_digest != nil {
		fields = append(fields, extractionrecord.FieldAssetDigest)
	}
	if m.raw_output != nil {
		fields = append(fields, extractionrecord.FieldRawOutput)
	}
	if m.result != nil {
		fields = append(fields, extractionrecord.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, extractionrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionrecord.FieldCacheKey:
		return m.CacheKey()
	case extractionrecord.FieldOwnerID:
		return m.OwnerID()
	case extractionrecord.FieldPrompt:
		return m.Prompt()
	case extractionrecord.FieldFieldSpecs:
		return m.FieldSpecs()
	case extractionrecord.FieldSchemaDoc:
		return m.SchemaDoc()
	case extractionrecord.FieldAssetDigest:
		return m.AssetDigest()
	case extractionrecord.FieldRawOutput:
		return m.RawOutput()
	case extractionrecord.FieldResult:
		return m.Result()
	case extractionrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionrecord.FieldCacheKey:
		return m.OldCacheKey(ctx)
	case extractionrecord.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case extractionrecord.FieldPrompt:
		return m.OldPrompt(ctx)
	case extractionrecord.FieldFieldSpecs:
		return m.OldFieldSpecs(ctx)
	case extractionrecord.FieldSchemaDoc:
		return m.OldSchemaDoc(ctx)
	case extractionrecord.FieldAssetDigest:
		return m.OldAssetDigest(ctx)
	case extractionrecord.FieldRawOutput:
		return m.OldRawOutput(ctx)
	case extractionrecord.FieldResult:
		return m.OldResult(ctx)
	case extractionrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionrecord.FieldCacheKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCacheKey(v)
		return nil
	case extractionrecord.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case extractionrecord.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case extractionrecord.FieldFieldSpecs:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldSpecs(v)
		return nil
	case extractionrecord.FieldSchemaDoc:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaDoc(v)
		return nil
	case extractionrecord.FieldAssetDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetDigest(v)
		return nil
	case extractionrecord.FieldRawOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawOutput(v)
		return nil
	case extractionrecord.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case extractionrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExtractionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionRecordMutation) ResetField(name string) error {
	switch name {
	case extractionrecord.FieldCacheKey:
		m.ResetCacheKey()
		return nil
	case extractionrecord.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case extractionrecord.FieldPrompt:
		m.ResetPrompt()
		return nil
	case extractionrecord.FieldFieldSpecs:
		m.ResetFieldSpecs()
		return nil
	case extractionrecord.FieldSchemaDoc:
		m.ResetSchemaDoc()
		return nil
	case extractionrecord.FieldAssetDigest:
		m.ResetAssetDigest()
		return nil
	case extractionrecord.FieldRawOutput:
		m.ResetRawOutput()
		return nil
	case extractionrecord.FieldResult:
		m.ResetResult()
		return nil
	case extractionrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractionRecord edge %s", name)
}
