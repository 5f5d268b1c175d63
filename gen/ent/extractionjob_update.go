// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
	"github.com/hvacdesign/planload/gen/ent/predicate"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlueprintID sets the "blueprint_id" field.
func (_u *ExtractionJobUpdate) SetBlueprintID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetBlueprintID(v)
	return _u
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableBlueprintID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetBlueprintID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ExtractionJobUpdate) SetZipCode(v string) *ExtractionJobUpdate {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableZipCode(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *ExtractionJobUpdate) SetQueuedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableQueuedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdate) SetStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdate) ClearStartedAt() *ExtractionJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdate) SetFinishedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdate) ClearFinishedAt() *ExtractionJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionJobUpdate) SetOverallConfidence(v float32) *ExtractionJobUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableOverallConfidence(v *float32) *ExtractionJobUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionJobUpdate) AddOverallConfidence(v float32) *ExtractionJobUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *ExtractionJobUpdate) ClearOverallConfidence() *ExtractionJobUpdate {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetDeclaredTotalSqft sets the "declared_total_sqft" field.
func (_u *ExtractionJobUpdate) SetDeclaredTotalSqft(v float64) *ExtractionJobUpdate {
	_u.mutation.ResetDeclaredTotalSqft()
	_u.mutation.SetDeclaredTotalSqft(v)
	return _u
}

// SetNillableDeclaredTotalSqft sets the "declared_total_sqft" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableDeclaredTotalSqft(v *float64) *ExtractionJobUpdate {
	if v != nil {
		_u.SetDeclaredTotalSqft(*v)
	}
	return _u
}

// AddDeclaredTotalSqft adds value to the "declared_total_sqft" field.
func (_u *ExtractionJobUpdate) AddDeclaredTotalSqft(v float64) *ExtractionJobUpdate {
	_u.mutation.AddDeclaredTotalSqft(v)
	return _u
}

// ClearDeclaredTotalSqft clears the value of the "declared_total_sqft" field.
func (_u *ExtractionJobUpdate) ClearDeclaredTotalSqft() *ExtractionJobUpdate {
	_u.mutation.ClearDeclaredTotalSqft()
	return _u
}

// SetExtractedTotalSqft sets the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdate) SetExtractedTotalSqft(v float64) *ExtractionJobUpdate {
	_u.mutation.ResetExtractedTotalSqft()
	_u.mutation.SetExtractedTotalSqft(v)
	return _u
}

// SetNillableExtractedTotalSqft sets the "extracted_total_sqft" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableExtractedTotalSqft(v *float64) *ExtractionJobUpdate {
	if v != nil {
		_u.SetExtractedTotalSqft(*v)
	}
	return _u
}

// AddExtractedTotalSqft adds value to the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdate) AddExtractedTotalSqft(v float64) *ExtractionJobUpdate {
	_u.mutation.AddExtractedTotalSqft(v)
	return _u
}

// ClearExtractedTotalSqft clears the value of the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdate) ClearExtractedTotalSqft() *ExtractionJobUpdate {
	_u.mutation.ClearExtractedTotalSqft()
	return _u
}

// SetTotalHeatingBtuh sets the "total_heating_btuh" field.
func (_u *ExtractionJobUpdate) SetTotalHeatingBtuh(v float64) *ExtractionJobUpdate {
	_u.mutation.ResetTotalHeatingBtuh()
	_u.mutation.SetTotalHeatingBtuh(v)
	return _u
}

// SetNillableTotalHeatingBtuh sets the "total_heating_btuh" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTotalHeatingBtuh(v *float64) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTotalHeatingBtuh(*v)
	}
	return _u
}

// AddTotalHeatingBtuh adds value to the "total_heating_btuh" field.
func (_u *ExtractionJobUpdate) AddTotalHeatingBtuh(v float64) *ExtractionJobUpdate {
	_u.mutation.AddTotalHeatingBtuh(v)
	return _u
}

// ClearTotalHeatingBtuh clears the value of the "total_heating_btuh" field.
func (_u *ExtractionJobUpdate) ClearTotalHeatingBtuh() *ExtractionJobUpdate {
	_u.mutation.ClearTotalHeatingBtuh()
	return _u
}

// SetTotalCoolingBtuh sets the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdate) SetTotalCoolingBtuh(v float64) *ExtractionJobUpdate {
	_u.mutation.ResetTotalCoolingBtuh()
	_u.mutation.SetTotalCoolingBtuh(v)
	return _u
}

// SetNillableTotalCoolingBtuh sets the "total_cooling_btuh" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableTotalCoolingBtuh(v *float64) *ExtractionJobUpdate {
	if v != nil {
		_u.SetTotalCoolingBtuh(*v)
	}
	return _u
}

// AddTotalCoolingBtuh adds value to the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdate) AddTotalCoolingBtuh(v float64) *ExtractionJobUpdate {
	_u.mutation.AddTotalCoolingBtuh(v)
	return _u
}

// ClearTotalCoolingBtuh clears the value of the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdate) ClearTotalCoolingBtuh() *ExtractionJobUpdate {
	_u.mutation.ClearTotalCoolingBtuh()
	return _u
}

// SetCoolingTons sets the "cooling_tons" field.
func (_u *ExtractionJobUpdate) SetCoolingTons(v float64) *ExtractionJobUpdate {
	_u.mutation.ResetCoolingTons()
	_u.mutation.SetCoolingTons(v)
	return _u
}

// SetNillableCoolingTons sets the "cooling_tons" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCoolingTons(v *float64) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCoolingTons(*v)
	}
	return _u
}

// AddCoolingTons adds value to the "cooling_tons" field.
func (_u *ExtractionJobUpdate) AddCoolingTons(v float64) *ExtractionJobUpdate {
	_u.mutation.AddCoolingTons(v)
	return _u
}

// ClearCoolingTons clears the value of the "cooling_tons" field.
func (_u *ExtractionJobUpdate) ClearCoolingTons() *ExtractionJobUpdate {
	_u.mutation.ClearCoolingTons()
	return _u
}

// SetExtractionJSON sets the "extraction_json" field.
func (_u *ExtractionJobUpdate) SetExtractionJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetExtractionJSON(v)
	return _u
}

// AppendExtractionJSON appends value to the "extraction_json" field.
func (_u *ExtractionJobUpdate) AppendExtractionJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendExtractionJSON(v)
	return _u
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (_u *ExtractionJobUpdate) ClearExtractionJSON() *ExtractionJobUpdate {
	_u.mutation.ClearExtractionJSON()
	return _u
}

// SetLoadsJSON sets the "loads_json" field.
func (_u *ExtractionJobUpdate) SetLoadsJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.SetLoadsJSON(v)
	return _u
}

// AppendLoadsJSON appends value to the "loads_json" field.
func (_u *ExtractionJobUpdate) AppendLoadsJSON(v json.RawMessage) *ExtractionJobUpdate {
	_u.mutation.AppendLoadsJSON(v)
	return _u
}

// ClearLoadsJSON clears the value of the "loads_json" field.
func (_u *ExtractionJobUpdate) ClearLoadsJSON() *ExtractionJobUpdate {
	_u.mutation.ClearLoadsJSON()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExtractionJobUpdate) SetErrorKind(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorKind(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExtractionJobUpdate) ClearErrorKind() *ExtractionJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSuggestedAction sets the "suggested_action" field.
func (_u *ExtractionJobUpdate) SetSuggestedAction(v string) *ExtractionJobUpdate {
	_u.mutation.SetSuggestedAction(v)
	return _u
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableSuggestedAction(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetSuggestedAction(*v)
	}
	return _u
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (_u *ExtractionJobUpdate) ClearSuggestedAction() *ExtractionJobUpdate {
	_u.mutation.ClearSuggestedAction()
	return _u
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_u *ExtractionJobUpdate) SetBlueprint(v *Blueprint) *ExtractionJobUpdate {
	return _u.SetBlueprintID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (_u *ExtractionJobUpdate) ClearBlueprint() *ExtractionJobUpdate {
	_u.mutation.ClearBlueprint()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZipCode(); ok {
		if err := extractionjob.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.zip_code": %w`, err)}
		}
	}
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.blueprint"`)
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(extractionjob.FieldZipCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(extractionjob.FieldQueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(extractionjob.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DeclaredTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeclaredTotalSqft(); ok {
		_spec.AddField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64, value)
	}
	if _u.mutation.DeclaredTotalSqftCleared() {
		_spec.ClearField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedTotalSqft(); ok {
		_spec.AddField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedTotalSqftCleared() {
		_spec.ClearField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalHeatingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalHeatingBtuh(); ok {
		_spec.AddField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64, value)
	}
	if _u.mutation.TotalHeatingBtuhCleared() {
		_spec.ClearField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCoolingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCoolingBtuh(); ok {
		_spec.AddField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCoolingBtuhCleared() {
		_spec.ClearField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoolingTons(); ok {
		_spec.SetField(extractionjob.FieldCoolingTons, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoolingTons(); ok {
		_spec.AddField(extractionjob.FieldCoolingTons, field.TypeFloat64, value)
	}
	if _u.mutation.CoolingTonsCleared() {
		_spec.ClearField(extractionjob.FieldCoolingTons, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionJSON(); ok {
		_spec.SetField(extractionjob.FieldExtractionJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldExtractionJSON, value)
		})
	}
	if _u.mutation.ExtractionJSONCleared() {
		_spec.ClearField(extractionjob.FieldExtractionJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.LoadsJSON(); ok {
		_spec.SetField(extractionjob.FieldLoadsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLoadsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldLoadsJSON, value)
		})
	}
	if _u.mutation.LoadsJSONCleared() {
		_spec.ClearField(extractionjob.FieldLoadsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(extractionjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(extractionjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedAction(); ok {
		_spec.SetField(extractionjob.FieldSuggestedAction, field.TypeString, value)
	}
	if _u.mutation.SuggestedActionCleared() {
		_spec.ClearField(extractionjob.FieldSuggestedAction, field.TypeString)
	}
	if _u.mutation.BlueprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlueprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetBlueprintID sets the "blueprint_id" field.
func (_u *ExtractionJobUpdateOne) SetBlueprintID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetBlueprintID(v)
	return _u
}

// SetNillableBlueprintID sets the "blueprint_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableBlueprintID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetBlueprintID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetZipCode sets the "zip_code" field.
func (_u *ExtractionJobUpdateOne) SetZipCode(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetZipCode(v)
	return _u
}

// SetNillableZipCode sets the "zip_code" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableZipCode(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetZipCode(*v)
	}
	return _u
}

// SetQueuedAt sets the "queued_at" field.
func (_u *ExtractionJobUpdateOne) SetQueuedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetQueuedAt(v)
	return _u
}

// SetNillableQueuedAt sets the "queued_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableQueuedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetQueuedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionJobUpdateOne) SetStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExtractionJobUpdateOne) ClearStartedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionJobUpdateOne) SetFinishedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionJobUpdateOne) ClearFinishedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *ExtractionJobUpdateOne) SetOverallConfidence(v float32) *ExtractionJobUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableOverallConfidence(v *float32) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *ExtractionJobUpdateOne) AddOverallConfidence(v float32) *ExtractionJobUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// ClearOverallConfidence clears the value of the "overall_confidence" field.
func (_u *ExtractionJobUpdateOne) ClearOverallConfidence() *ExtractionJobUpdateOne {
	_u.mutation.ClearOverallConfidence()
	return _u
}

// SetDeclaredTotalSqft sets the "declared_total_sqft" field.
func (_u *ExtractionJobUpdateOne) SetDeclaredTotalSqft(v float64) *ExtractionJobUpdateOne {
	_u.mutation.ResetDeclaredTotalSqft()
	_u.mutation.SetDeclaredTotalSqft(v)
	return _u
}

// SetNillableDeclaredTotalSqft sets the "declared_total_sqft" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableDeclaredTotalSqft(v *float64) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetDeclaredTotalSqft(*v)
	}
	return _u
}

// AddDeclaredTotalSqft adds value to the "declared_total_sqft" field.
func (_u *ExtractionJobUpdateOne) AddDeclaredTotalSqft(v float64) *ExtractionJobUpdateOne {
	_u.mutation.AddDeclaredTotalSqft(v)
	return _u
}

// ClearDeclaredTotalSqft clears the value of the "declared_total_sqft" field.
func (_u *ExtractionJobUpdateOne) ClearDeclaredTotalSqft() *ExtractionJobUpdateOne {
	_u.mutation.ClearDeclaredTotalSqft()
	return _u
}

// SetExtractedTotalSqft sets the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdateOne) SetExtractedTotalSqft(v float64) *ExtractionJobUpdateOne {
	_u.mutation.ResetExtractedTotalSqft()
	_u.mutation.SetExtractedTotalSqft(v)
	return _u
}

// SetNillableExtractedTotalSqft sets the "extracted_total_sqft" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableExtractedTotalSqft(v *float64) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetExtractedTotalSqft(*v)
	}
	return _u
}

// AddExtractedTotalSqft adds value to the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdateOne) AddExtractedTotalSqft(v float64) *ExtractionJobUpdateOne {
	_u.mutation.AddExtractedTotalSqft(v)
	return _u
}

// ClearExtractedTotalSqft clears the value of the "extracted_total_sqft" field.
func (_u *ExtractionJobUpdateOne) ClearExtractedTotalSqft() *ExtractionJobUpdateOne {
	_u.mutation.ClearExtractedTotalSqft()
	return _u
}

// SetTotalHeatingBtuh sets the "total_heating_btuh" field.
func (_u *ExtractionJobUpdateOne) SetTotalHeatingBtuh(v float64) *ExtractionJobUpdateOne {
	_u.mutation.ResetTotalHeatingBtuh()
	_u.mutation.SetTotalHeatingBtuh(v)
	return _u
}

// SetNillableTotalHeatingBtuh sets the "total_heating_btuh" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTotalHeatingBtuh(v *float64) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTotalHeatingBtuh(*v)
	}
	return _u
}

// AddTotalHeatingBtuh adds value to the "total_heating_btuh" field.
func (_u *ExtractionJobUpdateOne) AddTotalHeatingBtuh(v float64) *ExtractionJobUpdateOne {
	_u.mutation.AddTotalHeatingBtuh(v)
	return _u
}

// ClearTotalHeatingBtuh clears the value of the "total_heating_btuh" field.
func (_u *ExtractionJobUpdateOne) ClearTotalHeatingBtuh() *ExtractionJobUpdateOne {
	_u.mutation.ClearTotalHeatingBtuh()
	return _u
}

// SetTotalCoolingBtuh sets the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdateOne) SetTotalCoolingBtuh(v float64) *ExtractionJobUpdateOne {
	_u.mutation.ResetTotalCoolingBtuh()
	_u.mutation.SetTotalCoolingBtuh(v)
	return _u
}

// SetNillableTotalCoolingBtuh sets the "total_cooling_btuh" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableTotalCoolingBtuh(v *float64) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetTotalCoolingBtuh(*v)
	}
	return _u
}

// AddTotalCoolingBtuh adds value to the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdateOne) AddTotalCoolingBtuh(v float64) *ExtractionJobUpdateOne {
	_u.mutation.AddTotalCoolingBtuh(v)
	return _u
}

// ClearTotalCoolingBtuh clears the value of the "total_cooling_btuh" field.
func (_u *ExtractionJobUpdateOne) ClearTotalCoolingBtuh() *ExtractionJobUpdateOne {
	_u.mutation.ClearTotalCoolingBtuh()
	return _u
}

// SetCoolingTons sets the "cooling_tons" field.
func (_u *ExtractionJobUpdateOne) SetCoolingTons(v float64) *ExtractionJobUpdateOne {
	_u.mutation.ResetCoolingTons()
	_u.mutation.SetCoolingTons(v)
	return _u
}

// SetNillableCoolingTons sets the "cooling_tons" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCoolingTons(v *float64) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCoolingTons(*v)
	}
	return _u
}

// AddCoolingTons adds value to the "cooling_tons" field.
func (_u *ExtractionJobUpdateOne) AddCoolingTons(v float64) *ExtractionJobUpdateOne {
	_u.mutation.AddCoolingTons(v)
	return _u
}

// ClearCoolingTons clears the value of the "cooling_tons" field.
func (_u *ExtractionJobUpdateOne) ClearCoolingTons() *ExtractionJobUpdateOne {
	_u.mutation.ClearCoolingTons()
	return _u
}

// SetExtractionJSON sets the "extraction_json" field.
func (_u *ExtractionJobUpdateOne) SetExtractionJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetExtractionJSON(v)
	return _u
}

// AppendExtractionJSON appends value to the "extraction_json" field.
func (_u *ExtractionJobUpdateOne) AppendExtractionJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendExtractionJSON(v)
	return _u
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (_u *ExtractionJobUpdateOne) ClearExtractionJSON() *ExtractionJobUpdateOne {
	_u.mutation.ClearExtractionJSON()
	return _u
}

// SetLoadsJSON sets the "loads_json" field.
func (_u *ExtractionJobUpdateOne) SetLoadsJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.SetLoadsJSON(v)
	return _u
}

// AppendLoadsJSON appends value to the "loads_json" field.
func (_u *ExtractionJobUpdateOne) AppendLoadsJSON(v json.RawMessage) *ExtractionJobUpdateOne {
	_u.mutation.AppendLoadsJSON(v)
	return _u
}

// ClearLoadsJSON clears the value of the "loads_json" field.
func (_u *ExtractionJobUpdateOne) ClearLoadsJSON() *ExtractionJobUpdateOne {
	_u.mutation.ClearLoadsJSON()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExtractionJobUpdateOne) SetErrorKind(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorKind(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExtractionJobUpdateOne) ClearErrorKind() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSuggestedAction sets the "suggested_action" field.
func (_u *ExtractionJobUpdateOne) SetSuggestedAction(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetSuggestedAction(v)
	return _u
}

// SetNillableSuggestedAction sets the "suggested_action" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableSuggestedAction(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetSuggestedAction(*v)
	}
	return _u
}

// ClearSuggestedAction clears the value of the "suggested_action" field.
func (_u *ExtractionJobUpdateOne) ClearSuggestedAction() *ExtractionJobUpdateOne {
	_u.mutation.ClearSuggestedAction()
	return _u
}

// SetBlueprint sets the "blueprint" edge to the Blueprint entity.
func (_u *ExtractionJobUpdateOne) SetBlueprint(v *Blueprint) *ExtractionJobUpdateOne {
	return _u.SetBlueprintID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearBlueprint clears the "blueprint" edge to the Blueprint entity.
func (_u *ExtractionJobUpdateOne) ClearBlueprint() *ExtractionJobUpdateOne {
	_u.mutation.ClearBlueprint()
	return _u
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ZipCode(); ok {
		if err := extractionjob.ZipCodeValidator(v); err != nil {
			return &ValidationError{Name: "zip_code", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.zip_code": %w`, err)}
		}
	}
	if _u.mutation.BlueprintCleared() && len(_u.mutation.BlueprintIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.blueprint"`)
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ZipCode(); ok {
		_spec.SetField(extractionjob.FieldZipCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueuedAt(); ok {
		_spec.SetField(extractionjob.FieldQueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extractionjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(extractionjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extractionjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extractionjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(extractionjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(extractionjob.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OverallConfidenceCleared() {
		_spec.ClearField(extractionjob.FieldOverallConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.DeclaredTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDeclaredTotalSqft(); ok {
		_spec.AddField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64, value)
	}
	if _u.mutation.DeclaredTotalSqftCleared() {
		_spec.ClearField(extractionjob.FieldDeclaredTotalSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractedTotalSqft(); ok {
		_spec.SetField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractedTotalSqft(); ok {
		_spec.AddField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractedTotalSqftCleared() {
		_spec.ClearField(extractionjob.FieldExtractedTotalSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalHeatingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalHeatingBtuh(); ok {
		_spec.AddField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64, value)
	}
	if _u.mutation.TotalHeatingBtuhCleared() {
		_spec.ClearField(extractionjob.FieldTotalHeatingBtuh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalCoolingBtuh(); ok {
		_spec.SetField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCoolingBtuh(); ok {
		_spec.AddField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCoolingBtuhCleared() {
		_spec.ClearField(extractionjob.FieldTotalCoolingBtuh, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CoolingTons(); ok {
		_spec.SetField(extractionjob.FieldCoolingTons, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoolingTons(); ok {
		_spec.AddField(extractionjob.FieldCoolingTons, field.TypeFloat64, value)
	}
	if _u.mutation.CoolingTonsCleared() {
		_spec.ClearField(extractionjob.FieldCoolingTons, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionJSON(); ok {
		_spec.SetField(extractionjob.FieldExtractionJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldExtractionJSON, value)
		})
	}
	if _u.mutation.ExtractionJSONCleared() {
		_spec.ClearField(extractionjob.FieldExtractionJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.LoadsJSON(); ok {
		_spec.SetField(extractionjob.FieldLoadsJSON, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLoadsJSON(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionjob.FieldLoadsJSON, value)
		})
	}
	if _u.mutation.LoadsJSONCleared() {
		_spec.ClearField(extractionjob.FieldLoadsJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(extractionjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(extractionjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SuggestedAction(); ok {
		_spec.SetField(extractionjob.FieldSuggestedAction, field.TypeString, value)
	}
	if _u.mutation.SuggestedActionCleared() {
		_spec.ClearField(extractionjob.FieldSuggestedAction, field.TypeString)
	}
	if _u.mutation.BlueprintCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlueprintIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
