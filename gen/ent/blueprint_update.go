// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
	"github.com/hvacdesign/planload/gen/ent/predicate"
)

// BlueprintUpdate is the builder for updating Blueprint entities.
type BlueprintUpdate struct {
	config
	hooks    []Hook
	mutation *BlueprintMutation
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (_u *BlueprintUpdate) Where(ps ...predicate.Blueprint) *BlueprintUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *BlueprintUpdate) SetFilename(v string) *BlueprintUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableFilename(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BlueprintUpdate) SetSourcePath(v string) *BlueprintUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableSourcePath(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BlueprintUpdate) SetContentHash(v string) *BlueprintUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableContentHash(v *string) *BlueprintUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *BlueprintUpdate) SetPageCount(v int) *BlueprintUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillablePageCount(v *int) *BlueprintUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *BlueprintUpdate) AddPageCount(v int) *BlueprintUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *BlueprintUpdate) SetFileSizeBytes(v int64) *BlueprintUpdate {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *BlueprintUpdate) SetNillableFileSizeBytes(v *int64) *BlueprintUpdate {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *BlueprintUpdate) AddFileSizeBytes(v int64) *BlueprintUpdate {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *BlueprintUpdate) ClearFileSizeBytes() *BlueprintUpdate {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *BlueprintUpdate) AddJobIDs(ids ...uuid.UUID) *BlueprintUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *BlueprintUpdate) AddJobs(v ...*ExtractionJob) *BlueprintUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_u *BlueprintUpdate) Mutation() *BlueprintMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *BlueprintUpdate) ClearJobs() *BlueprintUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *BlueprintUpdate) RemoveJobIDs(ids ...uuid.UUID) *BlueprintUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *BlueprintUpdate) RemoveJobs(v ...*ExtractionJob) *BlueprintUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlueprintUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlueprintUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := blueprint.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Blueprint.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := blueprint.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Blueprint.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := blueprint.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Blueprint.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *BlueprintUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(blueprint.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(blueprint.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(blueprint.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(blueprint.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(blueprint.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(blueprint.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(blueprint.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(blueprint.FieldFileSizeBytes, field.TypeInt64)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlueprintUpdateOne is the builder for updating a single Blueprint entity.
type BlueprintUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlueprintMutation
}

// SetFilename sets the "filename" field.
func (_u *BlueprintUpdateOne) SetFilename(v string) *BlueprintUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableFilename(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *BlueprintUpdateOne) SetSourcePath(v string) *BlueprintUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableSourcePath(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *BlueprintUpdateOne) SetContentHash(v string) *BlueprintUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableContentHash(v *string) *BlueprintUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *BlueprintUpdateOne) SetPageCount(v int) *BlueprintUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillablePageCount(v *int) *BlueprintUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *BlueprintUpdateOne) AddPageCount(v int) *BlueprintUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_u *BlueprintUpdateOne) SetFileSizeBytes(v int64) *BlueprintUpdateOne {
	_u.mutation.ResetFileSizeBytes()
	_u.mutation.SetFileSizeBytes(v)
	return _u
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_u *BlueprintUpdateOne) SetNillableFileSizeBytes(v *int64) *BlueprintUpdateOne {
	if v != nil {
		_u.SetFileSizeBytes(*v)
	}
	return _u
}

// AddFileSizeBytes adds value to the "file_size_bytes" field.
func (_u *BlueprintUpdateOne) AddFileSizeBytes(v int64) *BlueprintUpdateOne {
	_u.mutation.AddFileSizeBytes(v)
	return _u
}

// ClearFileSizeBytes clears the value of the "file_size_bytes" field.
func (_u *BlueprintUpdateOne) ClearFileSizeBytes() *BlueprintUpdateOne {
	_u.mutation.ClearFileSizeBytes()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *BlueprintUpdateOne) AddJobIDs(ids ...uuid.UUID) *BlueprintUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *BlueprintUpdateOne) AddJobs(v ...*ExtractionJob) *BlueprintUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_u *BlueprintUpdateOne) Mutation() *BlueprintMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *BlueprintUpdateOne) ClearJobs() *BlueprintUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *BlueprintUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BlueprintUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *BlueprintUpdateOne) RemoveJobs(v ...*ExtractionJob) *BlueprintUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BlueprintUpdate builder.
func (_u *BlueprintUpdateOne) Where(ps ...predicate.Blueprint) *BlueprintUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlueprintUpdateOne) Select(field string, fields ...string) *BlueprintUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Blueprint entity.
func (_u *BlueprintUpdateOne) Save(ctx context.Context) (*Blueprint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlueprintUpdateOne) SaveX(ctx context.Context) *Blueprint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlueprintUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlueprintUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlueprintUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := blueprint.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Blueprint.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := blueprint.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Blueprint.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := blueprint.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Blueprint.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *BlueprintUpdateOne) sqlSave(ctx context.Context) (_node *Blueprint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blueprint.Table, blueprint.Columns, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Blueprint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blueprint.FieldID)
		for _, f := range fields {
			if !blueprint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != blueprint.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(blueprint.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(blueprint.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(blueprint.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(blueprint.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(blueprint.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FileSizeBytes(); ok {
		_spec.SetField(blueprint.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSizeBytes(); ok {
		_spec.AddField(blueprint.FieldFileSizeBytes, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeBytesCleared() {
		_spec.ClearField(blueprint.FieldFileSizeBytes, field.TypeInt64)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   blueprint.JobsTable,
			Columns: []string{blueprint.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Blueprint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blueprint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
