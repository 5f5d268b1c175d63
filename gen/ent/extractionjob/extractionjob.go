// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionjob type in the database.
	Label = "extraction_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBlueprintID holds the string denoting the blueprint_id field in the database.
	FieldBlueprintID = "blueprint_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldZipCode holds the string denoting the zip_code field in the database.
	FieldZipCode = "zip_code"
	// FieldQueuedAt holds the string denoting the queued_at field in the database.
	FieldQueuedAt = "queued_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldDeclaredTotalSqft holds the string denoting the declared_total_sqft field in the database.
	FieldDeclaredTotalSqft = "declared_total_sqft"
	// FieldExtractedTotalSqft holds the string denoting the extracted_total_sqft field in the database.
	FieldExtractedTotalSqft = "extracted_total_sqft"
	// FieldTotalHeatingBtuh holds the string denoting the total_heating_btuh field in the database.
	FieldTotalHeatingBtuh = "total_heating_btuh"
	// FieldTotalCoolingBtuh holds the string denoting the total_cooling_btuh field in the database.
	FieldTotalCoolingBtuh = "total_cooling_btuh"
	// FieldCoolingTons holds the string denoting the cooling_tons field in the database.
	FieldCoolingTons = "cooling_tons"
	// FieldExtractionJSON holds the string denoting the extraction_json field in the database.
	FieldExtractionJSON = "extraction_json"
	// FieldLoadsJSON holds the string denoting the loads_json field in the database.
	FieldLoadsJSON = "loads_json"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSuggestedAction holds the string denoting the suggested_action field in the database.
	FieldSuggestedAction = "suggested_action"
	// EdgeBlueprint holds the string denoting the blueprint edge name in mutations.
	EdgeBlueprint = "blueprint"
	// Table holds the table name of the extractionjob in the database.
	Table = "extraction_job"
	// BlueprintTable is the table that holds the blueprint relation/edge.
	BlueprintTable = "extraction_job"
	// BlueprintInverseTable is the table name for the Blueprint entity.
	// It exists in this package in order to avoid circular dependency with the "blueprint" package.
	BlueprintInverseTable = "blueprint"
	// BlueprintColumn is the table column denoting the blueprint relation/edge.
	BlueprintColumn = "blueprint_id"
)

// Columns holds all SQL columns for extractionjob fields.
var Columns = []string{
	FieldID,
	FieldBlueprintID,
	FieldStatus,
	FieldZipCode,
	FieldQueuedAt,
	FieldStartedAt,
	FieldFinishedAt,
	FieldOverallConfidence,
	FieldDeclaredTotalSqft,
	FieldExtractedTotalSqft,
	FieldTotalHeatingBtuh,
	FieldTotalCoolingBtuh,
	FieldCoolingTons,
	FieldExtractionJSON,
	FieldLoadsJSON,
	FieldErrorKind,
	FieldErrorMessage,
	FieldSuggestedAction,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// ZipCodeValidator is a validator for the "zip_code" field. It is called by the builders before save.
	ZipCodeValidator func(string) error
	// DefaultQueuedAt holds the default value on creation for the "queued_at" field.
	DefaultQueuedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlueprintID orders the results by the blueprint_id field.
func ByBlueprintID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlueprintID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByZipCode orders the results by the zip_code field.
func ByZipCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZipCode, opts...).ToFunc()
}

// ByQueuedAt orders the results by the queued_at field.
func ByQueuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueuedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByDeclaredTotalSqft orders the results by the declared_total_sqft field.
func ByDeclaredTotalSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeclaredTotalSqft, opts...).ToFunc()
}

// ByExtractedTotalSqft orders the results by the extracted_total_sqft field.
func ByExtractedTotalSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedTotalSqft, opts...).ToFunc()
}

// ByTotalHeatingBtuh orders the results by the total_heating_btuh field.
func ByTotalHeatingBtuh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalHeatingBtuh, opts...).ToFunc()
}

// ByTotalCoolingBtuh orders the results by the total_cooling_btuh field.
func ByTotalCoolingBtuh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCoolingBtuh, opts...).ToFunc()
}

// ByCoolingTons orders the results by the cooling_tons field.
func ByCoolingTons(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoolingTons, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySuggestedAction orders the results by the suggested_action field.
func BySuggestedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedAction, opts...).ToFunc()
}

// ByBlueprintField orders the results by blueprint field.
func ByBlueprintField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlueprintStep(), sql.OrderByField(field, opts...))
	}
}
func newBlueprintStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlueprintInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
	)
}
