// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
)

// ExtractionJob is the model entity for the ExtractionJob schema.
type ExtractionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BlueprintID holds the value of the "blueprint_id" field.
	BlueprintID uuid.UUID `json:"blueprint_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ZipCode holds the value of the "zip_code" field.
	ZipCode string `json:"zip_code,omitempty"`
	// QueuedAt holds the value of the "queued_at" field.
	QueuedAt time.Time `json:"queued_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence *float32 `json:"overall_confidence,omitempty"`
	// DeclaredTotalSqft holds the value of the "declared_total_sqft" field.
	DeclaredTotalSqft *float64 `json:"declared_total_sqft,omitempty"`
	// ExtractedTotalSqft holds the value of the "extracted_total_sqft" field.
	ExtractedTotalSqft *float64 `json:"extracted_total_sqft,omitempty"`
	// TotalHeatingBtuh holds the value of the "total_heating_btuh" field.
	TotalHeatingBtuh *float64 `json:"total_heating_btuh,omitempty"`
	// TotalCoolingBtuh holds the value of the "total_cooling_btuh" field.
	TotalCoolingBtuh *float64 `json:"total_cooling_btuh,omitempty"`
	// CoolingTons holds the value of the "cooling_tons" field.
	CoolingTons *float64 `json:"cooling_tons,omitempty"`
	// ExtractionJSON holds the value of the "extraction_json" field.
	ExtractionJSON json.RawMessage `json:"extraction_json,omitempty"`
	// LoadsJSON holds the value of the "loads_json" field.
	LoadsJSON json.RawMessage `json:"loads_json,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// SuggestedAction holds the value of the "suggested_action" field.
	SuggestedAction *string `json:"suggested_action,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionJobQuery when eager-loading is set.
	Edges        ExtractionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionJobEdges holds the relations/edges for other nodes in the graph.
type ExtractionJobEdges struct {
	// Blueprint holds the value of the blueprint edge.
	Blueprint *Blueprint `json:"blueprint,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlueprintOrErr returns the Blueprint value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionJobEdges) BlueprintOrErr() (*Blueprint, error) {
	if e.Blueprint != nil {
		return e.Blueprint, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: blueprint.Label}
	}
	return nil, &NotLoadedError{edge: "blueprint"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldExtractionJSON, extractionjob.FieldLoadsJSON:
			values[i] = new([]byte)
		case extractionjob.FieldOverallConfidence, extractionjob.FieldDeclaredTotalSqft, extractionjob.FieldExtractedTotalSqft, extractionjob.FieldTotalHeatingBtuh, extractionjob.FieldTotalCoolingBtuh, extractionjob.FieldCoolingTons:
			values[i] = new(sql.NullFloat64)
		case extractionjob.FieldStatus, extractionjob.FieldZipCode, extractionjob.FieldErrorKind, extractionjob.FieldErrorMessage, extractionjob.FieldSuggestedAction:
			values[i] = new(sql.NullString)
		case extractionjob.FieldQueuedAt, extractionjob.FieldStartedAt, extractionjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extractionjob.FieldID, extractionjob.FieldBlueprintID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionJob fields.
func (_m *ExtractionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionjob.FieldBlueprintID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field blueprint_id", values[i])
			} else if value != nil {
				_m.BlueprintID = *value
			}
		case extractionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionjob.FieldZipCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zip_code", values[i])
			} else if value.Valid {
				_m.ZipCode = value.String
			}
		case extractionjob.FieldQueuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field queued_at", values[i])
			} else if value.Valid {
				_m.QueuedAt = value.Time
			}
		case extractionjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case extractionjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case extractionjob.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = new(float32)
				*_m.OverallConfidence = float32(value.Float64)
			}
		case extractionjob.FieldDeclaredTotalSqft:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field declared_total_sqft", values[i])
			} else if value.Valid {
				_m.DeclaredTotalSqft = new(float64)
				*_m.DeclaredTotalSqft = value.Float64
			}
		case extractionjob.FieldExtractedTotalSqft:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_total_sqft", values[i])
			} else if value.Valid {
				_m.ExtractedTotalSqft = new(float64)
				*_m.ExtractedTotalSqft = value.Float64
			}
		case extractionjob.FieldTotalHeatingBtuh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_heating_btuh", values[i])
			} else if value.Valid {
				_m.TotalHeatingBtuh = new(float64)
				*_m.TotalHeatingBtuh = value.Float64
			}
		case extractionjob.FieldTotalCoolingBtuh:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cooling_btuh", values[i])
			} else if value.Valid {
				_m.TotalCoolingBtuh = new(float64)
				*_m.TotalCoolingBtuh = value.Float64
			}
		case extractionjob.FieldCoolingTons:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cooling_tons", values[i])
			} else if value.Valid {
				_m.CoolingTons = new(float64)
				*_m.CoolingTons = value.Float64
			}
		case extractionjob.FieldExtractionJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionJSON); err != nil {
					return fmt.Errorf("unmarshal field extraction_json: %w", err)
				}
			}
		case extractionjob.FieldLoadsJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field loads_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LoadsJSON); err != nil {
					return fmt.Errorf("unmarshal field loads_json: %w", err)
				}
			}
		case extractionjob.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case extractionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extractionjob.FieldSuggestedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_action", values[i])
			} else if value.Valid {
				_m.SuggestedAction = new(string)
				*_m.SuggestedAction = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlueprint queries the "blueprint" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryBlueprint() *BlueprintQuery {
	return NewExtractionJobClient(_m.config).QueryBlueprint(_m)
}

// Update returns a builder for updating this ExtractionJob.
// Note that you need to call ExtractionJob.Unwrap() before calling this method if this ExtractionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionJob) Update() *ExtractionJobUpdateOne {
	return NewExtractionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionJob) Unwrap() *ExtractionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("blueprint_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlueprintID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("zip_code=")
	builder.WriteString(_m.ZipCode)
	builder.WriteString(", ")
	builder.WriteString("queued_at=")
	builder.WriteString(_m.QueuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OverallConfidence; v != nil {
		builder.WriteString("overall_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DeclaredTotalSqft; v != nil {
		builder.WriteString("declared_total_sqft=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ExtractedTotalSqft; v != nil {
		builder.WriteString("extracted_total_sqft=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalHeatingBtuh; v != nil {
		builder.WriteString("total_heating_btuh=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalCoolingBtuh; v != nil {
		builder.WriteString("total_cooling_btuh=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CoolingTons; v != nil {
		builder.WriteString("cooling_tons=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionJSON))
	builder.WriteString(", ")
	builder.WriteString("loads_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoadsJSON))
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SuggestedAction; v != nil {
		builder.WriteString("suggested_action=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionJobs is a parsable slice of ExtractionJob.
type ExtractionJobs []*ExtractionJob
