// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
	"github.com/hvacdesign/planload/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlueprint     = "Blueprint"
	TypeExtractionJob = "ExtractionJob"
)

// BlueprintMutation represents an operation that mutates the Blueprint nodes in the graph.
type BlueprintMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	filename           *string
	source_path        *string
	content_hash       *string
	page_count         *int
	addpage_count      *int
	file_size_bytes    *int64
	addfile_size_bytes *int64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	jobs               map[uuid.UUID]struct{}
	removedjobs        map[uuid.UUID]struct{}
	clearedjobs        bool
	done               bool
	oldValue           func(context.Context) (*Blueprint, error)
	predicates         []predicate.Blueprint
}

var _ ent.Mutation = (*BlueprintMutation)(nil)

// blueprintOption allows management of the mutation configuration using functional options.
type blueprintOption func(*BlueprintMutation)

// newBlueprintMutation creates new mutation for the Blueprint entity.
func newBlueprintMutation(c config, op Op, opts ...blueprintOption) *BlueprintMutation {
	m := &BlueprintMutation{
		config:        c,
		op:            op,
		typ:           TypeBlueprint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlueprintID sets the ID field of the mutation.
func withBlueprintID(id uuid.UUID) blueprintOption {
	return func(m *BlueprintMutation) {
		var (
			err   error
			once  sync.Once
			value *Blueprint
		)
		m.oldValue = func(ctx context.Context) (*Blueprint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Blueprint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlueprint sets the old Blueprint of the mutation.
func withBlueprint(node *Blueprint) blueprintOption {
	return func(m *BlueprintMutation) {
		m.oldValue = func(context.Context) (*Blueprint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlueprintMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlueprintMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Blueprint entities.
func (m *BlueprintMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlueprintMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlueprintMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Blueprint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *BlueprintMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *BlueprintMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *BlueprintMutation) ResetFilename() {
	m.filename = nil
}

// SetSourcePath sets the "source_path" field.
func (m *BlueprintMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *BlueprintMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *BlueprintMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *BlueprintMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *BlueprintMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *BlueprintMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetPageCount sets the "page_count" field.
func (m *BlueprintMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *BlueprintMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *BlueprintMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *BlueprintMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *BlueprintMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (m *BlueprintMutation) SetFileSizeBytes(i int64) {
	m.file_size_bytes = &i
	m.addfile_size_bytes = nil
}

// FileSizeBytes returns the value of the "file_size_bytes" field in the mutation.
func (m *BlueprintMutation) FileSizeBytes() (r int64, exists bool) {
	v := m.file_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSizeBytes returns the old "file_size_bytes" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldFileSizeBytes(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSizeBytes: %w", err)
	}
	return oldValue.FileSizeBytes, nil
}

// AddFileSizeBytes adds i to the "file_size_bytes" field.
func (m *BlueprintMutation) AddFileSizeBytes(i int64) {
	if m.addfile_size_bytes != nil {
		*m.addfile_size_bytes += i
	} else {
		m.addfile_size_bytes = &i
	}
}

// AddedFileSizeBytes returns the value that was added to the "file_size_bytes" field in this mutation.
func (m *BlueprintMutation) AddedFileSizeBytes() (r int64, exists bool) {
	v := m.addfile_size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (m *BlueprintMutation) ClearFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	m.clearedFields[blueprint.FieldFileSizeBytes] = struct{}{}
}

// FileSizeBytesCleared returns if the "file_size_bytes" field was cleared in this mutation.
func (m *BlueprintMutation) FileSizeBytesCleared() bool {
	_, ok := m.clearedFields[blueprint.FieldFileSizeBytes]
	return ok
}

// ResetFileSizeBytes resets all changes to the "file_size_bytes" field.
func (m *BlueprintMutation) ResetFileSizeBytes() {
	m.file_size_bytes = nil
	m.addfile_size_bytes = nil
	delete(m.clearedFields, blueprint.FieldFileSizeBytes)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlueprintMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlueprintMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Blueprint entity.
// If the Blueprint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlueprintMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *BlueprintMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *BlueprintMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *BlueprintMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *BlueprintMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *BlueprintMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *BlueprintMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BlueprintMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BlueprintMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BlueprintMutation builder.
func (m *BlueprintMutation) Where(ps ...predicate.Blueprint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlueprintMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlueprintMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Blueprint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlueprintMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlueprintMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Blueprint).
func (m *BlueprintMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlueprintMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.filename != nil {
		fields = append(fields, blueprint.FieldFilename)
	}
	if m.source_path != nil {
		fields = append(fields, blueprint.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, blueprint.FieldContentHash)
	}
	if m.page_count != nil {
		fields = append(fields, blueprint.FieldPageCount)
	}
	if m.file_size_bytes != nil {
		fields = append(fields, blueprint.FieldFileSizeBytes)
	}
	if m.created_at != nil {
		fields = append(fields, blueprint.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlueprintMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldFilename:
		return m.Filename()
	case blueprint.FieldSourcePath:
		return m.SourcePath()
	case blueprint.FieldContentHash:
		return m.ContentHash()
	case blueprint.FieldPageCount:
		return m.PageCount()
	case blueprint.FieldFileSizeBytes:
		return m.FileSizeBytes()
	case blueprint.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlueprintMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blueprint.FieldFilename:
		return m.OldFilename(ctx)
	case blueprint.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case blueprint.FieldContentHash:
		return m.OldContentHash(ctx)
	case blueprint.FieldPageCount:
		return m.OldPageCount(ctx)
	case blueprint.FieldFileSizeBytes:
		return m.OldFileSizeBytes(ctx)
	case blueprint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Blueprint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case blueprint.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case blueprint.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case blueprint.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case blueprint.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSizeBytes(v)
		return nil
	case blueprint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlueprintMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, blueprint.FieldPageCount)
	}
	if m.addfile_size_bytes != nil {
		fields = append(fields, blueprint.FieldFileSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlueprintMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case blueprint.FieldPageCount:
		return m.AddedPageCount()
	case blueprint.FieldFileSizeBytes:
		return m.AddedFileSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlueprintMutation) AddField(name string, value ent.Value) error {
	switch name {
	case blueprint.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case blueprint.FieldFileSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Blueprint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlueprintMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(blueprint.FieldFileSizeBytes) {
		fields = append(fields, blueprint.FieldFileSizeBytes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlueprintMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlueprintMutation) ClearField(name string) error {
	switch name {
	case blueprint.FieldFileSizeBytes:
		m.ClearFileSizeBytes()
		return nil
	}
	return fmt.Errorf("unknown Blueprint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlueprintMutation) ResetField(name string) error {
	switch name {
	case blueprint.FieldFilename:
		m.ResetFilename()
		return nil
	case blueprint.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case blueprint.FieldContentHash:
		m.ResetContentHash()
		return nil
	case blueprint.FieldPageCount:
		m.ResetPageCount()
		return nil
	case blueprint.FieldFileSizeBytes:
		m.ResetFileSizeBytes()
		return nil
	case blueprint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Blueprint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlueprintMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, blueprint.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlueprintMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlueprintMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, blueprint.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlueprintMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case blueprint.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlueprintMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, blueprint.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlueprintMutation) EdgeCleared(name string) bool {
	switch name {
	case blueprint.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlueprintMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Blueprint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlueprintMutation) ResetEdge(name string) error {
	switch name {
	case blueprint.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Blueprint edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	status                  *string
	zip_code                *string
	queued_at               *time.Time
	started_at              *time.Time
	finished_at             *time.Time
	overall_confidence      *float32
	addoverall_confidence   *float32
	declared_total_sqft     *float64
	adddeclared_total_sqft  *float64
	extracted_total_sqft    *float64
	addextracted_total_sqft *float64
	total_heating_btuh      *float64
	addtotal_heating_btuh   *float64
	total_cooling_btuh      *float64
	addtotal_cooling_btuh   *float64
	cooling_tons            *float64
	addcooling_tons         *float64
	extraction_json         *json.RawMessage
	appendextraction_json   json.RawMessage
	loads_json              *json.RawMessage
	appendloads_json        json.RawMessage
	error_kind              *string
	error_message           *string
	suggested_action        *string
	clearedFields           map[string]struct{}
	blueprint               *uuid.UUID
	clearedblueprint        bool
	done                    bool
	oldValue                func(context.Context) (*ExtractionJob, error)
	predicates              []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlueprintID sets the "blueprint_id" field.
func (m *ExtractionJobMutation) SetBlueprintID(u uuid.UUID) {
	m.blueprint = &u
}

// BlueprintID returns the value of the "blueprint_id" field in the mutation.
func (m *ExtractionJobMutation) BlueprintID() (r uuid.UUID, exists bool) {
	v := m.blueprint
	if v == nil {
		return
	}
	return *v, true
}

// OldBlueprintID returns the old "blueprint_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldBlueprintID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlueprintID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlueprintID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlueprintID: %w", err)
	}
	return oldValue.BlueprintID, nil
}

// ResetBlueprintID resets all changes to the "blueprint_id" field.
func (m *ExtractionJobMutation) ResetBlueprintID() {
	m.blueprint = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetZipCode sets the "zip_code" field.
func (m *ExtractionJobMutation) SetZipCode(s string) {
	m.zip_code = &s
}

// ZipCode returns the value of the "zip_code" field in the mutation.
func (m *ExtractionJobMutation) ZipCode() (r string, exists bool) {
	v := m.zip_code
	if v == nil {
		return
	}
	return *v, true
}

// OldZipCode returns the old "zip_code" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldZipCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZipCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZipCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZipCode: %w", err)
	}
	return oldValue.ZipCode, nil
}

// ResetZipCode resets all changes to the "zip_code" field.
func (m *ExtractionJobMutation) ResetZipCode() {
	m.zip_code = nil
}

// SetQueuedAt sets the "queued_at" field.
func (m *ExtractionJobMutation) SetQueuedAt(t time.Time) {
	m.queued_at = &t
}

// QueuedAt returns the value of the "queued_at" field in the mutation.
func (m *ExtractionJobMutation) QueuedAt() (r time.Time, exists bool) {
	v := m.queued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuedAt returns the old "queued_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldQueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuedAt: %w", err)
	}
	return oldValue.QueuedAt, nil
}

// ResetQueuedAt resets all changes to the "queued_at" field.
func (m *ExtractionJobMutation) ResetQueuedAt() {
	m.queued_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ExtractionJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[extractionjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, extractionjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractionjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractionjob.FieldFinishedAt)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *ExtractionJobMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *ExtractionJobMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldOverallConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *ExtractionJobMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *ExtractionJobMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (m *ExtractionJobMutation) ClearOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	m.clearedFields[extractionjob.FieldOverallConfidence] = struct{}{}
}

// OverallConfidenceCleared returns if the "overall_confidence" field was cleared in this mutation.
func (m *ExtractionJobMutation) OverallConfidenceCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldOverallConfidence]
	return ok
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *ExtractionJobMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
	delete(m.clearedFields, extractionjob.FieldOverallConfidence)
}

// SetDeclaredTotalSqft sets the "declared_total_sqft" field.
func (m *ExtractionJobMutation) SetDeclaredTotalSqft(f float64) {
	m.declared_total_sqft = &f
	m.adddeclared_total_sqft = nil
}

// DeclaredTotalSqft returns the value of the "declared_total_sqft" field in the mutation.
func (m *ExtractionJobMutation) DeclaredTotalSqft() (r float64, exists bool) {
	v := m.declared_total_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldDeclaredTotalSqft returns the old "declared_total_sqft" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldDeclaredTotalSqft(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeclaredTotalSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeclaredTotalSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeclaredTotalSqft: %w", err)
	}
	return oldValue.DeclaredTotalSqft, nil
}

// AddDeclaredTotalSqft adds f to the "declared_total_sqft" field.
func (m *ExtractionJobMutation) AddDeclaredTotalSqft(f float64) {
	if m.adddeclared_total_sqft != nil {
		*m.adddeclared_total_sqft += f
	} else {
		m.adddeclared_total_sqft = &f
	}
}

// AddedDeclaredTotalSqft returns the value that was added to the "declared_total_sqft" field in this mutation.
func (m *ExtractionJobMutation) AddedDeclaredTotalSqft() (r float64, exists bool) {
	v := m.adddeclared_total_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearDeclaredTotalSqft clears the value of the "declared_total_sqft" field.
func (m *ExtractionJobMutation) ClearDeclaredTotalSqft() {
	m.declared_total_sqft = nil
	m.adddeclared_total_sqft = nil
	m.clearedFields[extractionjob.FieldDeclaredTotalSqft] = struct{}{}
}

// DeclaredTotalSqftCleared returns if the "declared_total_sqft" field was cleared in this mutation.
func (m *ExtractionJobMutation) DeclaredTotalSqftCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldDeclaredTotalSqft]
	return ok
}

// ResetDeclaredTotalSqft resets all changes to the "declared_total_sqft" field.
func (m *ExtractionJobMutation) ResetDeclaredTotalSqft() {
	m.declared_total_sqft = nil
	m.adddeclared_total_sqft = nil
	delete(m.clearedFields, extractionjob.FieldDeclaredTotalSqft)
}

// SetExtractedTotalSqft sets the "extracted_total_sqft" field.
func (m *ExtractionJobMutation) SetExtractedTotalSqft(f float64) {
	m.extracted_total_sqft = &f
	m.addextracted_total_sqft = nil
}

// ExtractedTotalSqft returns the value of the "extracted_total_sqft" field in the mutation.
func (m *ExtractionJobMutation) ExtractedTotalSqft() (r float64, exists bool) {
	v := m.extracted_total_sqft
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedTotalSqft returns the old "extracted_total_sqft" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldExtractedTotalSqft(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedTotalSqft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedTotalSqft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedTotalSqft: %w", err)
	}
	return oldValue.ExtractedTotalSqft, nil
}

// AddExtractedTotalSqft adds f to the "extracted_total_sqft" field.
func (m *ExtractionJobMutation) AddExtractedTotalSqft(f float64) {
	if m.addextracted_total_sqft != nil {
		*m.addextracted_total_sqft += f
	} else {
		m.addextracted_total_sqft = &f
	}
}

// AddedExtractedTotalSqft returns the value that was added to the "extracted_total_sqft" field in this mutation.
func (m *ExtractionJobMutation) AddedExtractedTotalSqft() (r float64, exists bool) {
	v := m.addextracted_total_sqft
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedTotalSqft clears the value of the "extracted_total_sqft" field.
func (m *ExtractionJobMutation) ClearExtractedTotalSqft() {
	m.extracted_total_sqft = nil
	m.addextracted_total_sqft = nil
	m.clearedFields[extractionjob.FieldExtractedTotalSqft] = struct{}{}
}

// ExtractedTotalSqftCleared returns if the "extracted_total_sqft" field was cleared in this mutation.
func (m *ExtractionJobMutation) ExtractedTotalSqftCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldExtractedTotalSqft]
	return ok
}

// ResetExtractedTotalSqft resets all changes to the "extracted_total_sqft" field.
func (m *ExtractionJobMutation) ResetExtractedTotalSqft() {
	m.extracted_total_sqft = nil
	m.addextracted_total_sqft = nil
	delete(m.clearedFields, extractionjob.FieldExtractedTotalSqft)
}

// SetTotalHeatingBtuh sets the "total_heating_btuh" field.
func (m *ExtractionJobMutation) SetTotalHeatingBtuh(f float64) {
	m.total_heating_btuh = &f
	m.addtotal_heating_btuh = nil
}

// TotalHeatingBtuh returns the value of the "total_heating_btuh" field in the mutation.
func (m *ExtractionJobMutation) TotalHeatingBtuh() (r float64, exists bool) {
	v := m.total_heating_btuh
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalHeatingBtuh returns the old "total_heating_btuh" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotalHeatingBtuh(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalHeatingBtuh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalHeatingBtuh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalHeatingBtuh: %w", err)
	}
	return oldValue.TotalHeatingBtuh, nil
}

// AddTotalHeatingBtuh adds f to the "total_heating_btuh" field.
func (m *ExtractionJobMutation) AddTotalHeatingBtuh(f float64) {
	if m.addtotal_heating_btuh != nil {
		*m.addtotal_heating_btuh += f
	} else {
		m.addtotal_heating_btuh = &f
	}
}

// AddedTotalHeatingBtuh returns the value that was added to the "total_heating_btuh" field in this mutation.
func (m *ExtractionJobMutation) AddedTotalHeatingBtuh() (r float64, exists bool) {
	v := m.addtotal_heating_btuh
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalHeatingBtuh clears the value of the "total_heating_btuh" field.
func (m *ExtractionJobMutation) ClearTotalHeatingBtuh() {
	m.total_heating_btuh = nil
	m.addtotal_heating_btuh = nil
	m.clearedFields[extractionjob.FieldTotalHeatingBtuh] = struct{}{}
}

// TotalHeatingBtuhCleared returns if the "total_heating_btuh" field was cleared in this mutation.
func (m *ExtractionJobMutation) TotalHeatingBtuhCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTotalHeatingBtuh]
	return ok
}

// ResetTotalHeatingBtuh resets all changes to the "total_heating_btuh" field.
func (m *ExtractionJobMutation) ResetTotalHeatingBtuh() {
	m.total_heating_btuh = nil
	m.addtotal_heating_btuh = nil
	delete(m.clearedFields, extractionjob.FieldTotalHeatingBtuh)
}

// SetTotalCoolingBtuh sets the "total_cooling_btuh" field.
func (m *ExtractionJobMutation) SetTotalCoolingBtuh(f float64) {
	m.total_cooling_btuh = &f
	m.addtotal_cooling_btuh = nil
}

// TotalCoolingBtuh returns the value of the "total_cooling_btuh" field in the mutation.
func (m *ExtractionJobMutation) TotalCoolingBtuh() (r float64, exists bool) {
	v := m.total_cooling_btuh
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCoolingBtuh returns the old "total_cooling_btuh" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldTotalCoolingBtuh(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCoolingBtuh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCoolingBtuh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCoolingBtuh: %w", err)
	}
	return oldValue.TotalCoolingBtuh, nil
}

// AddTotalCoolingBtuh adds f to the "total_cooling_btuh" field.
func (m *ExtractionJobMutation) AddTotalCoolingBtuh(f float64) {
	if m.addtotal_cooling_btuh != nil {
		*m.addtotal_cooling_btuh += f
	} else {
		m.addtotal_cooling_btuh = &f
	}
}

// AddedTotalCoolingBtuh returns the value that was added to the "total_cooling_btuh" field in this mutation.
func (m *ExtractionJobMutation) AddedTotalCoolingBtuh() (r float64, exists bool) {
	v := m.addtotal_cooling_btuh
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalCoolingBtuh clears the value of the "total_cooling_btuh" field.
func (m *ExtractionJobMutation) ClearTotalCoolingBtuh() {
	m.total_cooling_btuh = nil
	m.addtotal_cooling_btuh = nil
	m.clearedFields[extractionjob.FieldTotalCoolingBtuh] = struct{}{}
}

// TotalCoolingBtuhCleared returns if the "total_cooling_btuh" field was cleared in this mutation.
func (m *ExtractionJobMutation) TotalCoolingBtuhCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldTotalCoolingBtuh]
	return ok
}

// ResetTotalCoolingBtuh resets all changes to the "total_cooling_btuh" field.
func (m *ExtractionJobMutation) ResetTotalCoolingBtuh() {
	m.total_cooling_btuh = nil
	m.addtotal_cooling_btuh = nil
	delete(m.clearedFields, extractionjob.FieldTotalCoolingBtuh)
}

// SetCoolingTons sets the "cooling_tons" field.
func (m *ExtractionJobMutation) SetCoolingTons(f float64) {
	m.cooling_tons = &f
	m.addcooling_tons = nil
}

// CoolingTons returns the value of the "cooling_tons" field in the mutation.
func (m *ExtractionJobMutation) CoolingTons() (r float64, exists bool) {
	v := m.cooling_tons
	if v == nil {
		return
	}
	return *v, true
}

// OldCoolingTons returns the old "cooling_tons" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCoolingTons(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoolingTons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoolingTons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoolingTons: %w", err)
	}
	return oldValue.CoolingTons, nil
}

// AddCoolingTons adds f to the "cooling_tons" field.
func (m *ExtractionJobMutation) AddCoolingTons(f float64) {
	if m.addcooling_tons != nil {
		*m.addcooling_tons += f
	} else {
		m.addcooling_tons = &f
	}
}

// AddedCoolingTons returns the value that was added to the "cooling_tons" field in this mutation.
func (m *ExtractionJobMutation) AddedCoolingTons() (r float64, exists bool) {
	v := m.addcooling_tons
	if v == nil {
		return
	}
	return *v, true
}

// ClearCoolingTons clears the value of the "cooling_tons" field.
func (m *ExtractionJobMutation) ClearCoolingTons() {
	m.cooling_tons = nil
	m.addcooling_tons = nil
	m.clearedFields[extractionjob.FieldCoolingTons] = struct{}{}
}

// CoolingTonsCleared returns if the "cooling_tons" field was cleared in this mutation.
func (m *ExtractionJobMutation) CoolingTonsCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldCoolingTons]
	return ok
}

// ResetCoolingTons resets all changes to the "cooling_tons" field.
func (m *ExtractionJobMutation) ResetCoolingTons() {
	m.cooling_tons = nil
	m.addcooling_tons = nil
	delete(m.clearedFields, extractionjob.FieldCoolingTons)
}

// SetExtractionJSON sets the "extraction_json" field.
func (m *ExtractionJobMutation) SetExtractionJSON(jm json.RawMessage) {
	m.extraction_json = &jm
	m.appendextraction_json = nil
}

// ExtractionJSON returns the value of the "extraction_json" field in the mutation.
func (m *ExtractionJobMutation) ExtractionJSON() (r json.RawMessage, exists bool) {
	v := m.extraction_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionJSON returns the old "extraction_json" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldExtractionJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionJSON: %w", err)
	}
	return oldValue.ExtractionJSON, nil
}

// AppendExtractionJSON adds jm to the "extraction_json" field.
func (m *ExtractionJobMutation) AppendExtractionJSON(jm json.RawMessage) {
	m.appendextraction_json = append(m.appendextraction_json, jm...)
}

// AppendedExtractionJSON returns the list of values that were appended to the "extraction_json" field in this mutation.
func (m *ExtractionJobMutation) AppendedExtractionJSON() (json.RawMessage, bool) {
	if len(m.appendextraction_json) == 0 {
		return nil, false
	}
	return m.appendextraction_json, true
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (m *ExtractionJobMutation) ClearExtractionJSON() {
	m.extraction_json = nil
	m.appendextraction_json = nil
	m.clearedFields[extractionjob.FieldExtractionJSON] = struct{}{}
}

// ExtractionJSONCleared returns if the "extraction_json" field was cleared in this mutation.
func (m *ExtractionJobMutation) ExtractionJSONCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldExtractionJSON]
	return ok
}

// ResetExtractionJSON resets all changes to the "extraction_json" field.
func (m *ExtractionJobMutation) ResetExtractionJSON() {
	m.extraction_json = nil
	m.appendextraction_json = nil
	delete(m.clearedFields, extractionjob.FieldExtractionJSON)
}

// SetLoadsJSON sets the "loads_json" field.
func (m *ExtractionJobMutation) SetLoadsJSON(jm json.RawMessage) {
	m.loads_json = &jm
	m.appendloads_json = nil
}

// LoadsJSON returns the value of the "loads_json" field in the mutation.
func (m *ExtractionJobMutation) LoadsJSON() (r json.RawMessage, exists bool) {
	v := m.loads_json
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadsJSON returns the old "loads_json" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldLoadsJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadsJSON: %w", err)
	}
	return oldValue.LoadsJSON, nil
}

// AppendLoadsJSON adds jm to the "loads_json" field.
func (m *ExtractionJobMutation) AppendLoadsJSON(jm json.RawMessage) {
	m.appendloads_json = append(m.appendloads_json, jm...)
}

// AppendedLoadsJSON returns the list of values that were appended to the "loads_json" field in this mutation.
func (m *ExtractionJobMutation) AppendedLoadsJSON() (json.RawMessage, bool) {
	if len(m.appendloads_json) == 0 {
		return nil, false
	}
	return m.appendloads_json, true
}

// ClearLoadsJSON clears the value of the "loads_json" field.
func (m *ExtractionJobMutation) ClearLoadsJSON() {
	m.loads_json = nil
	m.appendloads_json = nil
	m.clearedFields[extractionjob.FieldLoadsJSON] = struct{}{}
}

// LoadsJSONCleared returns if the "loads_json" field was cleared in this mutation.
func (m *ExtractionJobMutation) LoadsJSONCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldLoadsJSON]
	return ok
}

// ResetLoadsJSON resets all changes to the "loads_json" field.
func (m *ExtractionJobMutation) ResetLoadsJSON() {
	m.loads_json = nil
	m.appendloads_json = nil
	delete(m.clearedFields, extractionjob.FieldLoadsJSON)
}

// SetErrorKind sets the "error_kind" field.
func (m *ExtractionJobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ExtractionJobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ExtractionJobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[extractionjob.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ExtractionJobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, extractionjob.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetSuggestedAction sets the "suggested_action" field.
func (m *ExtractionJobMutation) SetSuggestedAction(s string) {
	m.suggested_action = &s
}

// SuggestedAction returns the value of the "suggested_action" field in the mutation.
func (m *ExtractionJobMutation) SuggestedAction() (r string, exists bool) {
	v := m.suggested_action
	if v == nil {
		return
	}
	return *v, true
}

// OldSuggestedAction returns the old "suggested_action" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldSuggestedAction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuggestedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuggestedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuggestedAction: %w", err)
	}
	return oldValue.SuggestedAction, nil
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (m *ExtractionJobMutation) ClearSuggestedAction() {
	m.suggested_action = nil
	m.clearedFields[extractionjob.FieldSuggestedAction] = struct{}{}
}

// SuggestedActionCleared returns if the "suggested_action" field was cleared in this mutation.
func (m *ExtractionJobMutation) SuggestedActionCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldSuggestedAction]
	return ok
}

// ResetSuggestedAction resets all changes to the "suggested_action" field.
func (m *ExtractionJobMutation) ResetSuggestedAction() {
	m.suggested_action = nil
	delete(m.clearedFields, extractionjob.FieldSuggestedAction)
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (m *ExtractionJobMutation) ClearBlueprint() {
	m.clearedblueprint = true
	m.clearedFields[extractionjob.FieldBlueprintID] = struct{}{}
}

// BlueprintCleared reports if the "blueprint" edge to the Blueprint entity was cleared.
func (m *ExtractionJobMutation) BlueprintCleared() bool {
	return m.clearedblueprint
}

// BlueprintIDs returns the "blueprint" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlueprintID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) BlueprintIDs() (ids []uuid.UUID) {
	if id := m.blueprint; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlueprint resets all changes to the "blueprint" edge.
func (m *ExtractionJobMutation) ResetBlueprint() {
	m.blueprint = nil
	m.clearedblueprint = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.blueprint != nil {
		fields = append(fields, extractionjob.FieldBlueprintID)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.zip_code != nil {
		fields = append(fields, extractionjob.FieldZipCode)
	}
	if m.queued_at != nil {
		fields = append(fields, extractionjob.FieldQueuedAt)
	}
	if m.started_at != nil {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.overall_confidence != nil {
		fields = append(fields, extractionjob.FieldOverallConfidence)
	}
	if m.declared_total_sqft != nil {
		fields = append(fields, extractionjob.FieldDeclaredTotalSqft)
	}
	if m.extracted_total_sqft != nil {
		fields = append(fields, extractionjob.FieldExtractedTotalSqft)
	}
	if m.total_heating_btuh != nil {
		fields = append(fields, extractionjob.FieldTotalHeatingBtuh)
	}
	if m.total_cooling_btuh != nil {
		fields = append(fields, extractionjob.FieldTotalCoolingBtuh)
	}
	if m.cooling_tons != nil {
		fields = append(fields, extractionjob.FieldCoolingTons)
	}
	if m.extraction_json != nil {
		fields = append(fields, extractionjob.FieldExtractionJSON)
	}
	if m.loads_json != nil {
		fields = append(fields, extractionjob.FieldLoadsJSON)
	}
	if m.error_kind != nil {
		fields = append(fields, extractionjob.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.suggested_action != nil {
		fields = append(fields, extractionjob.FieldSuggestedAction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldBlueprintID:
		return m.BlueprintID()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldZipCode:
		return m.ZipCode()
	case extractionjob.FieldQueuedAt:
		return m.QueuedAt()
	case extractionjob.FieldStartedAt:
		return m.StartedAt()
	case extractionjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractionjob.FieldOverallConfidence:
		return m.OverallConfidence()
	case extractionjob.FieldDeclaredTotalSqft:
		return m.DeclaredTotalSqft()
	case extractionjob.FieldExtractedTotalSqft:
		return m.ExtractedTotalSqft()
	case extractionjob.FieldTotalHeatingBtuh:
		return m.TotalHeatingBtuh()
	case extractionjob.FieldTotalCoolingBtuh:
		return m.TotalCoolingBtuh()
	case extractionjob.FieldCoolingTons:
		return m.CoolingTons()
	case extractionjob.FieldExtractionJSON:
		return m.ExtractionJSON()
	case extractionjob.FieldLoadsJSON:
		return m.LoadsJSON()
	case extractionjob.FieldErrorKind:
		return m.ErrorKind()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldSuggestedAction:
		return m.SuggestedAction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldBlueprintID:
		return m.OldBlueprintID(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldZipCode:
		return m.OldZipCode(ctx)
	case extractionjob.FieldQueuedAt:
		return m.OldQueuedAt(ctx)
	case extractionjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractionjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractionjob.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case extractionjob.FieldDeclaredTotalSqft:
		return m.OldDeclaredTotalSqft(ctx)
	case extractionjob.FieldExtractedTotalSqft:
		return m.OldExtractedTotalSqft(ctx)
	case extractionjob.FieldTotalHeatingBtuh:
		return m.OldTotalHeatingBtuh(ctx)
	case extractionjob.FieldTotalCoolingBtuh:
		return m.OldTotalCoolingBtuh(ctx)
	case extractionjob.FieldCoolingTons:
		return m.OldCoolingTons(ctx)
	case extractionjob.FieldExtractionJSON:
		return m.OldExtractionJSON(ctx)
	case extractionjob.FieldLoadsJSON:
		return m.OldLoadsJSON(ctx)
	case extractionjob.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldSuggestedAction:
		return m.OldSuggestedAction(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldBlueprintID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlueprintID(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldZipCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZipCode(v)
		return nil
	case extractionjob.FieldQueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuedAt(v)
		return nil
	case extractionjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractionjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractionjob.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case extractionjob.FieldDeclaredTotalSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeclaredTotalSqft(v)
		return nil
	case extractionjob.FieldExtractedTotalSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedTotalSqft(v)
		return nil
	case extractionjob.FieldTotalHeatingBtuh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalHeatingBtuh(v)
		return nil
	case extractionjob.FieldTotalCoolingBtuh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCoolingBtuh(v)
		return nil
	case extractionjob.FieldCoolingTons:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoolingTons(v)
		return nil
	case extractionjob.FieldExtractionJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionJSON(v)
		return nil
	case extractionjob.FieldLoadsJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadsJSON(v)
		return nil
	case extractionjob.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldSuggestedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuggestedAction(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_confidence != nil {
		fields = append(fields, extractionjob.FieldOverallConfidence)
	}
	if m.adddeclared_total_sqft != nil {
		fields = append(fields, extractionjob.FieldDeclaredTotalSqft)
	}
	if m.addextracted_total_sqft != nil {
		fields = append(fields, extractionjob.FieldExtractedTotalSqft)
	}
	if m.addtotal_heating_btuh != nil {
		fields = append(fields, extractionjob.FieldTotalHeatingBtuh)
	}
	if m.addtotal_cooling_btuh != nil {
		fields = append(fields, extractionjob.FieldTotalCoolingBtuh)
	}
	if m.addcooling_tons != nil {
		fields = append(fields, extractionjob.FieldCoolingTons)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	case extractionjob.FieldDeclaredTotalSqft:
		return m.AddedDeclaredTotalSqft()
	case extractionjob.FieldExtractedTotalSqft:
		return m.AddedExtractedTotalSqft()
	case extractionjob.FieldTotalHeatingBtuh:
		return m.AddedTotalHeatingBtuh()
	case extractionjob.FieldTotalCoolingBtuh:
		return m.AddedTotalCoolingBtuh()
	case extractionjob.FieldCoolingTons:
		return m.AddedCoolingTons()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	case extractionjob.FieldDeclaredTotalSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDeclaredTotalSqft(v)
		return nil
	case extractionjob.FieldExtractedTotalSqft:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedTotalSqft(v)
		return nil
	case extractionjob.FieldTotalHeatingBtuh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalHeatingBtuh(v)
		return nil
	case extractionjob.FieldTotalCoolingBtuh:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCoolingBtuh(v)
		return nil
	case extractionjob.FieldCoolingTons:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoolingTons(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldStartedAt) {
		fields = append(fields, extractionjob.FieldStartedAt)
	}
	if m.FieldCleared(extractionjob.FieldFinishedAt) {
		fields = append(fields, extractionjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractionjob.FieldOverallConfidence) {
		fields = append(fields, extractionjob.FieldOverallConfidence)
	}
	if m.FieldCleared(extractionjob.FieldDeclaredTotalSqft) {
		fields = append(fields, extractionjob.FieldDeclaredTotalSqft)
	}
	if m.FieldCleared(extractionjob.FieldExtractedTotalSqft) {
		fields = append(fields, extractionjob.FieldExtractedTotalSqft)
	}
	if m.FieldCleared(extractionjob.FieldTotalHeatingBtuh) {
		fields = append(fields, extractionjob.FieldTotalHeatingBtuh)
	}
	if m.FieldCleared(extractionjob.FieldTotalCoolingBtuh) {
		fields = append(fields, extractionjob.FieldTotalCoolingBtuh)
	}
	if m.FieldCleared(extractionjob.FieldCoolingTons) {
		fields = append(fields, extractionjob.FieldCoolingTons)
	}
	if m.FieldCleared(extractionjob.FieldExtractionJSON) {
		fields = append(fields, extractionjob.FieldExtractionJSON)
	}
	if m.FieldCleared(extractionjob.FieldLoadsJSON) {
		fields = append(fields, extractionjob.FieldLoadsJSON)
	}
	if m.FieldCleared(extractionjob.FieldErrorKind) {
		fields = append(fields, extractionjob.FieldErrorKind)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractionjob.FieldSuggestedAction) {
		fields = append(fields, extractionjob.FieldSuggestedAction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractionjob.FieldOverallConfidence:
		m.ClearOverallConfidence()
		return nil
	case extractionjob.FieldDeclaredTotalSqft:
		m.ClearDeclaredTotalSqft()
		return nil
	case extractionjob.FieldExtractedTotalSqft:
		m.ClearExtractedTotalSqft()
		return nil
	case extractionjob.FieldTotalHeatingBtuh:
		m.ClearTotalHeatingBtuh()
		return nil
	case extractionjob.FieldTotalCoolingBtuh:
		m.ClearTotalCoolingBtuh()
		return nil
	case extractionjob.FieldCoolingTons:
		m.ClearCoolingTons()
		return nil
	case extractionjob.FieldExtractionJSON:
		m.ClearExtractionJSON()
		return nil
	case extractionjob.FieldLoadsJSON:
		m.ClearLoadsJSON()
		return nil
	case extractionjob.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractionjob.FieldSuggestedAction:
		m.ClearSuggestedAction()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldBlueprintID:
		m.ResetBlueprintID()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldZipCode:
		m.ResetZipCode()
		return nil
	case extractionjob.FieldQueuedAt:
		m.ResetQueuedAt()
		return nil
	case extractionjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractionjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractionjob.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case extractionjob.FieldDeclaredTotalSqft:
		m.ResetDeclaredTotalSqft()
		return nil
	case extractionjob.FieldExtractedTotalSqft:
		m.ResetExtractedTotalSqft()
		return nil
	case extractionjob.FieldTotalHeatingBtuh:
		m.ResetTotalHeatingBtuh()
		return nil
	case extractionjob.FieldTotalCoolingBtuh:
		m.ResetTotalCoolingBtuh()
		return nil
	case extractionjob.FieldCoolingTons:
		m.ResetCoolingTons()
		return nil
	case extractionjob.FieldExtractionJSON:
		m.ResetExtractionJSON()
		return nil
	case extractionjob.FieldLoadsJSON:
		m.ResetLoadsJSON()
		return nil
	case extractionjob.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldSuggestedAction:
		m.ResetSuggestedAction()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.blueprint != nil {
		edges = append(edges, extractionjob.EdgeBlueprint)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeBlueprint:
		if id := m.blueprint; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblueprint {
		edges = append(edges, extractionjob.EdgeBlueprint)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeBlueprint:
		return m.clearedblueprint
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeBlueprint:
		m.ClearBlueprint()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeBlueprint:
		m.ResetBlueprint()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}
