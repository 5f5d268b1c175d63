// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetBlueprintID sets the "blueprint_id" field.
func (_c *ExtractionJobCreate) SetBlueprintID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetBlueprintID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v string) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetZipCode sets the "zip_code" field.
func (_c *ExtractionJobCreate) SetZipCode(v string) *ExtractionJobCreate {
	_c.mutation.SetZipCode(v)
	return _c
}

// SetQueuedAt sets the "queued_at" field.
func (_c *ExtractionJobCreate) SetQueuedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetQueuedAt(v)
	return _c
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableQueuedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetQueuedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExtractionJobCreate) SetStartedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStartedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExtractionJobCreate) SetFinishedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableFinishedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *ExtractionJobCreate) SetOverallConfidence(v float32) *ExtractionJobCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableOverallConfidence(v *float32) *ExtractionJobCreate {
	if v != nil {
		_c.SetOverallConfidence(*v)
	}
	return _c
}

// SetDeclaredTotalSqft sets the "declared_total_sqft" field.
func (_c *ExtractionJobCreate) SetDeclaredTotalSqft(v float64) *ExtractionJobCreate {
	_c.mutation.SetDeclaredTotalSqft(v)
	return _c
}

// SetNillableDeclaredTotalSqft sets the "declared_total_sqft" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableDeclaredTotalSqft(v *float64) *ExtractionJobCreate {
	if v != nil {
		_c.SetDeclaredTotalSqft(*v)
	}
	return _c
}

// SetExtractedTotalSqft sets the "extracted_total_sqft" field.
func (_c *ExtractionJobCreate) SetExtractedTotalSqft(v float64) *ExtractionJobCreate {
	_c.mutation.SetExtractedTotalSqft(v)
	return _c
}

// SetNillableExtractedTotalSqft sets the "extracted_total_sqft" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableExtractedTotalSqft(v *float64) *ExtractionJobCreate {
	if v != nil {
		_c.SetExtractedTotalSqft(*v)
	}
	return _c
}

// SetTotalHeatingBtuh sets the "total_heating_btuh" field.
func (_c *ExtractionJobCreate) SetTotalHeatingBtuh(v float64) *ExtractionJobCreate {
	_c.mutation.SetTotalHeatingBtuh(v)
	return _c
}

// SetNillableTotalHeatingBtuh sets the "total_heating_btuh" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTotalHeatingBtuh(v *float64) *ExtractionJobCreate {
	if v != nil {
		_c.SetTotalHeatingBtuh(*v)
	}
	return _c
}

// SetTotalCoolingBtuh sets the "total_cooling_btuh" field.
func (_c *ExtractionJobCreate) SetTotalCoolingBtuh(v float64) *ExtractionJobCreate {
	_c.mutation.SetTotalCoolingBtuh(v)
	return _c
}

// SetNillableTotalCoolingBtuh sets the "total_cooling_btuh" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableTotalCoolingBtuh(v *float64) *ExtractionJobCreate {
	if v != nil {
		_c.SetTotalCoolingBtuh(*v)
	}
	return _c
}

// SetCoolingTons sets the "cooling_tons" field.
func (_c *ExtractionJobCreate) SetCoolingTons(v float64) *ExtractionJobCreate {
	_c.mutation.SetCoolingTons(v)
	return _c
}

// SetNillableCoolingTons sets the "cooling_tons" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCoolingTons(v *float64) *ExtractionJobCreate {
	if v != nil {
		_c.SetCoolingTons(*v)
	}
	return _c
}

// SetExtractionJSON sets the "extraction_json" field.
func (_c *ExtractionJobCreate) SetExtractionJSON(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetExtractionJSON(v)
	return _c
}

// SetLoadsJSON sets the "loads_json" field.
func (_c *ExtractionJobCreate) SetLoadsJSON(v json.RawMessage) *ExtractionJobCreate {
	_c.mutation.SetLoadsJSON(v)
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ExtractionJobCreate) SetErrorKind(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorKind(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExtractionJobCreate) SetErrorMessage(v string) *ExtractionJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableErrorMessage(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSuggestedAction sets the "suggested_action" field.
func (_c *ExtractionJobCreate) SetSuggestedAction(v string) *ExtractionJobCreate {
	_c.mutation.SetSuggestedAction(v)
	return _c
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableSuggestedAction(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetSuggestedAction(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v uuid.UUID) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableID(v *uuid.UUID) *ExtractionJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_c *ExtractionJobCreate) SetBlueprint(v *Blueprint) *ExtractionJobCreate {
	return _c.SetBlueprintID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.QueuedAt(); !ok {
		v := extractionjob.DefaultQueuedAt()
		_c.mutation.SetQueuedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.BlueprintID(); !ok {
		return &ValidationError{Name: "blueprint_id", err: errors.New(`ent: missing required field "ExtractionJob.blueprint_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ZipCode(); !ok {
		return &ValidationError{Name: "zip_code", err: errors.New(`ent: missing required field "ExtractionJob.zip_code"`)}
	}
	if v, ok := _c.mutation.ZipCode(); ok {
		if err := extractionjob.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.zip_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueuedAt(); !ok {
		return &ValidationError{Name: "queued_at", err: errors.New(`ent: missing required field "ExtractionJob.queued_at"`)}
	}
	if len(_c.mutation.BlueprintIDs()) == 0 {
		return &ValidationError{Name: "blueprint", err: errors.New(`ent: missing required edge "ExtractionJob.blueprint"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
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

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ZipCode(); ok {
		_spec.SetField(extractionjob.FieldZipCode, field.TypeString, value)
		_node.ZipCode = value
	}
	if value, ok := _c.mutation.QueuedAt(); ok {
		_spec.SetField(extractionjob.FieldQueuedAt, field.TypeTime, value)
		_node.QueuedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionjob.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = &value
	}
	if value, ok := _c.mutation.DeclaredTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64, value)
		_node.DeclaredTotalSqft = &value
	}
	if value, ok := _c.mutation.ExtractedTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64, value)
		_node.ExtractedTotalSqft = &value
	}
	if value, ok := _c.mutation.TotalHeatingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64, value)
		_node.TotalHeatingBtuh = &value
	}
	if value, ok := _c.mutation.TotalCoolingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64, value)
		_node.TotalCoolingBtuh = &value
	}
	if value, ok := _c.mutation.CoolingTons(); ok {
		_spec.SetField(extractionjob.FieldCoolingTons, field.TypeFloat64, value)
		_node.CoolingTons = &value
	}
	if value, ok := _c.mutation.ExtractionJSON(); ok {
		_spec.SetField(extractionjob.FieldExtractionJSON, field.TypeJSON, value)
		_node.ExtractionJSON = value
	}
	if value, ok := _c.mutation.LoadsJSON(); ok {
		_spec.SetField(extractionjob.FieldLoadsJSON, field.TypeJSON, value)
		_node.LoadsJSON = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(extractionjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SuggestedAction(); ok {
		_spec.SetField(extractionjob.FieldSuggestedAction, field.TypeString, value)
		_node.SuggestedAction = &value
	}
	if nodes := _c.mutation.BlueprintIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.BlueprintTable,
			Columns: []string{extractionjob.BlueprintColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(blueprint.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlueprintID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
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
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
