// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
)

// BlueprintCreate is the builder for creating a Blueprint entity.
type BlueprintCreate struct {
	config
	mutation *BlueprintMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *BlueprintCreate) SetFilename(v string) *BlueprintCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *BlueprintCreate) SetSourcePath(v string) *BlueprintCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *BlueprintCreate) SetContentHash(v string) *BlueprintCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *BlueprintCreate) SetPageCount(v int) *BlueprintCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetFileSizeBytes sets the "file_size_bytes" field.
func (_c *BlueprintCreate) SetFileSizeBytes(v int64) *BlueprintCreate {
	_c.mutation.SetFileSizeBytes(v)
	return _c
}

// SetNillableFileSizeBytes sets the "file_size_bytes" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableFileSizeBytes(v *int64) *BlueprintCreate {
	if v != nil {
		_c.SetFileSizeBytes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlueprintCreate) SetCreatedAt(v time.Time) *BlueprintCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableCreatedAt(v *time.Time) *BlueprintCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlueprintCreate) SetID(v uuid.UUID) *BlueprintCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlueprintCreate) SetNillableID(v *uuid.UUID) *BlueprintCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_c *BlueprintCreate) AddJobIDs(ids ...uuid.UUID) *BlueprintCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_c *BlueprintCreate) AddJobs(v ...*ExtractionJob) *BlueprintCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BlueprintMutation object of the builder.
func (_c *BlueprintCreate) Mutation() *BlueprintMutation {
	return _c.mutation
}

// Save creates the Blueprint in the database.
func (_c *BlueprintCreate) Save(ctx context.Context) (*Blueprint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlueprintCreate) SaveX(ctx context.Context) *Blueprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlueprintCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blueprint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blueprint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlueprintCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Blueprint.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := blueprint.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Blueprint.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Blueprint.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := blueprint.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Blueprint.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Blueprint.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := blueprint.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Blueprint.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Blueprint.page_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Blueprint.created_at"`)}
	}
	return nil
}

func (_c *BlueprintCreate) sqlSave(ctx context.Context) (*Blueprint, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlueprintCreate) createSpec() (*Blueprint, *sqlgraph.CreateSpec) {
	var (
		_node = &Blueprint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blueprint.Table, sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(blueprint.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(blueprint.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(blueprint.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(blueprint.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.FileSizeBytes(); ok {
		_spec.SetField(blueprint.FieldFileSizeBytes, field.TypeInt64, value)
		_node.FileSizeBytes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blueprint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlueprintCreateBulk is the builder for creating many Blueprint entities in bulk.
type BlueprintCreateBulk struct {
	config
	err      error
	builders []*BlueprintCreate
}

// Save creates the Blueprint entities in the database.
func (_c *BlueprintCreateBulk) Save(ctx context.Context) ([]*Blueprint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Blueprint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlueprintMutation)
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
func (_c *BlueprintCreateBulk) SaveX(ctx context.Context) []*Blueprint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlueprintCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlueprintCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
