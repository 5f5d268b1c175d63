// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hvacdesign/planload/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldID, id))
}

// BlueprintID applies equality check predicate on the "blueprint_id" field. It's identical to BlueprintIDEQ.
func BlueprintID(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldBlueprintID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStatus, v))
}

// ZipCode applies equality check predicate on the "zip_code" field. It's identical to ZipCodeEQ.
func ZipCode(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldZipCode, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldQueuedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldOverallConfidence, v))
}

// DeclaredTotalSqft applies equality check predicate on the "declared_total_sqft" field. It's identical to DeclaredTotalSqftEQ.
func DeclaredTotalSqft(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldDeclaredTotalSqft, v))
}

// ExtractedTotalSqft applies equality check predicate on the "extracted_total_sqft" field. It's identical to ExtractedTotalSqftEQ.
func ExtractedTotalSqft(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldExtractedTotalSqft, v))
}

// TotalHeatingBtuh applies equality check predicate on the "total_heating_btuh" field. It's identical to TotalHeatingBtuhEQ.
func TotalHeatingBtuh(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalHeatingBtuh, v))
}

// TotalCoolingBtuh applies equality check predicate on the "total_cooling_btuh" field. It's identical to TotalCoolingBtuhEQ.
func TotalCoolingBtuh(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalCoolingBtuh, v))
}

// CoolingTons applies equality check predicate on the "cooling_tons" field. It's identical to CoolingTonsEQ.
func CoolingTons(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCoolingTons, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// SuggestedAction applies equality check predicate on the "suggested_action" field. It's identical to SuggestedActionEQ.
func SuggestedAction(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldSuggestedAction, v))
}

// BlueprintIDEQ applies the EQ predicate on the "blueprint_id" field.
func BlueprintIDEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldBlueprintID, v))
}

// BlueprintIDNEQ applies the NEQ predicate on the "blueprint_id" field.
func BlueprintIDNEQ(v uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldBlueprintID, v))
}

// BlueprintIDIn applies the In predicate on the "blueprint_id" field.
func BlueprintIDIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldBlueprintID, vs...))
}

// BlueprintIDNotIn applies the NotIn predicate on the "blueprint_id" field.
func BlueprintIDNotIn(vs ...uuid.UUID) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldBlueprintID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldStatus, v))
}

// ZipCodeEQ applies the EQ predicate on the "zip_code" field.
func ZipCodeEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldZipCode, v))
}

// ZipCodeNEQ applies the NEQ predicate on the "zip_code" field.
func ZipCodeNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldZipCode, v))
}

// ZipCodeIn applies the In predicate on the "zip_code" field.
func ZipCodeIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldZipCode, vs...))
}

// ZipCodeNotIn applies the NotIn predicate on the "zip_code" field.
func ZipCodeNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldZipCode, vs...))
}

// ZipCodeGT applies the GT predicate on the "zip_code" field.
func ZipCodeGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldZipCode, v))
}

// ZipCodeGTE applies the GTE predicate on the "zip_code" field.
func ZipCodeGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldZipCode, v))
}

// ZipCodeLT applies the LT predicate on the "zip_code" field.
func ZipCodeLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldZipCode, v))
}

// ZipCodeLTE applies the LTE predicate on the "zip_code" field.
func ZipCodeLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldZipCode, v))
}

// ZipCodeContains applies the Contains predicate on the "zip_code" field.
func ZipCodeContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldZipCode, v))
}

// ZipCodeHasPrefix applies the HasPrefix predicate on the "zip_code" field.
func ZipCodeHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldZipCode, v))
}

// ZipCodeHasSuffix applies the HasSuffix predicate on the "zip_code" field.
func ZipCodeHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldZipCode, v))
}

// ZipCodeEqualFold applies the EqualFold predicate on the "zip_code" field.
func ZipCodeEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldZipCode, v))
}

// ZipCodeContainsFold applies the ContainsFold predicate on the "zip_code" field.
func ZipCodeContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldZipCode, v))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldQueuedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldFinishedAt))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldOverallConfidence, v))
}

// OverallConfidenceIsNil applies the IsNil predicate on the "overall_confidence" field.
func OverallConfidenceIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldOverallConfidence))
}

// OverallConfidenceNotNil applies the NotNil predicate on the "overall_confidence" field.
func OverallConfidenceNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldOverallConfidence))
}

// DeclaredTotalSqftEQ applies the EQ predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftNEQ applies the NEQ predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftNEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftIn applies the In predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldDeclaredTotalSqft, vs...))
}

// DeclaredTotalSqftNotIn applies the NotIn predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftNotIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldDeclaredTotalSqft, vs...))
}

// DeclaredTotalSqftGT applies the GT predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftGT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftGTE applies the GTE predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftGTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftLT applies the LT predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftLT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftLTE applies the LTE predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftLTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldDeclaredTotalSqft, v))
}

// DeclaredTotalSqftIsNil applies the IsNil predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldDeclaredTotalSqft))
}

// DeclaredTotalSqftNotNil applies the NotNil predicate on the "declared_total_sqft" field.
func DeclaredTotalSqftNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldDeclaredTotalSqft))
}

// ExtractedTotalSqftEQ applies the EQ predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftNEQ applies the NEQ predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftNEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftIn applies the In predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldExtractedTotalSqft, vs...))
}

// ExtractedTotalSqftNotIn applies the NotIn predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftNotIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldExtractedTotalSqft, vs...))
}

// ExtractedTotalSqftGT applies the GT predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftGT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftGTE applies the GTE predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftGTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftLT applies the LT predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftLT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftLTE applies the LTE predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftLTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldExtractedTotalSqft, v))
}

// ExtractedTotalSqftIsNil applies the IsNil predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldExtractedTotalSqft))
}

// ExtractedTotalSqftNotNil applies the NotNil predicate on the "extracted_total_sqft" field.
func ExtractedTotalSqftNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldExtractedTotalSqft))
}

// TotalHeatingBtuhEQ applies the EQ predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhNEQ applies the NEQ predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhNEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhIn applies the In predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldTotalHeatingBtuh, vs...))
}

// TotalHeatingBtuhNotIn applies the NotIn predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhNotIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldTotalHeatingBtuh, vs...))
}

// TotalHeatingBtuhGT applies the GT predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhGT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhGTE applies the GTE predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhGTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhLT applies the LT predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhLT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhLTE applies the LTE predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhLTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldTotalHeatingBtuh, v))
}

// TotalHeatingBtuhIsNil applies the IsNil predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldTotalHeatingBtuh))
}

// TotalHeatingBtuhNotNil applies the NotNil predicate on the "total_heating_btuh" field.
func TotalHeatingBtuhNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldTotalHeatingBtuh))
}

// TotalCoolingBtuhEQ applies the EQ predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhNEQ applies the NEQ predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhNEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhIn applies the In predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldTotalCoolingBtuh, vs...))
}

// TotalCoolingBtuhNotIn applies the NotIn predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhNotIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldTotalCoolingBtuh, vs...))
}

// TotalCoolingBtuhGT applies the GT predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhGT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhGTE applies the GTE predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhGTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhLT applies the LT predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhLT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhLTE applies the LTE predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhLTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldTotalCoolingBtuh, v))
}

// TotalCoolingBtuhIsNil applies the IsNil predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldTotalCoolingBtuh))
}

// TotalCoolingBtuhNotNil applies the NotNil predicate on the "total_cooling_btuh" field.
func TotalCoolingBtuhNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldTotalCoolingBtuh))
}

// CoolingTonsEQ applies the EQ predicate on the "cooling_tons" field.
func CoolingTonsEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCoolingTons, v))
}

// CoolingTonsNEQ applies the NEQ predicate on the "cooling_tons" field.
func CoolingTonsNEQ(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldCoolingTons, v))
}

// CoolingTonsIn applies the In predicate on the "cooling_tons" field.
func CoolingTonsIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldCoolingTons, vs...))
}

// CoolingTonsNotIn applies the NotIn predicate on the "cooling_tons" field.
func CoolingTonsNotIn(vs ...float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldCoolingTons, vs...))
}

// CoolingTonsGT applies the GT predicate on the "cooling_tons" field.
func CoolingTonsGT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldCoolingTons, v))
}

// CoolingTonsGTE applies the GTE predicate on the "cooling_tons" field.
func CoolingTonsGTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldCoolingTons, v))
}

// CoolingTonsLT applies the LT predicate on the "cooling_tons" field.
func CoolingTonsLT(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldCoolingTons, v))
}

// CoolingTonsLTE applies the LTE predicate on the "cooling_tons" field.
func CoolingTonsLTE(v float64) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldCoolingTons, v))
}

// CoolingTonsIsNil applies the IsNil predicate on the "cooling_tons" field.
func CoolingTonsIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldCoolingTons))
}

// CoolingTonsNotNil applies the NotNil predicate on the "cooling_tons" field.
func CoolingTonsNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldCoolingTons))
}

// ExtractionJSONIsNil applies the IsNil predicate on the "extraction_json" field.
func ExtractionJSONIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldExtractionJSON))
}

// ExtractionJSONNotNil applies the NotNil predicate on the "extraction_json" field.
func ExtractionJSONNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldExtractionJSON))
}

// LoadsJSONIsNil applies the IsNil predicate on the "loads_json" field.
func LoadsJSONIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldLoadsJSON))
}

// LoadsJSONNotNil applies the NotNil predicate on the "loads_json" field.
func LoadsJSONNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldLoadsJSON))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// SuggestedActionEQ applies the EQ predicate on the "suggested_action" field.
func SuggestedActionEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldSuggestedAction, v))
}

// SuggestedActionNEQ applies the NEQ predicate on the "suggested_action" field.
func SuggestedActionNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldSuggestedAction, v))
}

// SuggestedActionIn applies the In predicate on the "suggested_action" field.
func SuggestedActionIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldSuggestedAction, vs...))
}

// SuggestedActionNotIn applies the NotIn predicate on the "suggested_action" field.
func SuggestedActionNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldSuggestedAction, vs...))
}

// SuggestedActionGT applies the GT predicate on the "suggested_action" field.
func SuggestedActionGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldSuggestedAction, v))
}

// SuggestedActionGTE applies the GTE predicate on the "suggested_action" field.
func SuggestedActionGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldSuggestedAction, v))
}

// SuggestedActionLT applies the LT predicate on the "suggested_action" field.
func SuggestedActionLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldSuggestedAction, v))
}

// SuggestedActionLTE applies the LTE predicate on the "suggested_action" field.
func SuggestedActionLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldSuggestedAction, v))
}

// SuggestedActionContains applies the Contains predicate on the "suggested_action" field.
func SuggestedActionContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldSuggestedAction, v))
}

// SuggestedActionHasPrefix applies the HasPrefix predicate on the "suggested_action" field.
func SuggestedActionHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldSuggestedAction, v))
}

// SuggestedActionHasSuffix applies the HasSuffix predicate on the "suggested_action" field.
func SuggestedActionHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldSuggestedAction, v))
}

// SuggestedActionIsNil applies the IsNil predicate on the "suggested_action" field.
func SuggestedActionIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldSuggestedAction))
}

// SuggestedActionNotNil applies the NotNil predicate on the "suggested_action" field.
func SuggestedActionNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldSuggestedAction))
}

// SuggestedActionEqualFold applies the EqualFold predicate on the "suggested_action" field.
func SuggestedActionEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldSuggestedAction, v))
}

// SuggestedActionContainsFold applies the ContainsFold predicate on the "suggested_action" field.
func SuggestedActionContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldSuggestedAction, v))
}

// HasBlueprint applies the HasEdge predicate on the "blueprint" edge.
func HasBlueprint() predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlueprintTable, BlueprintColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlueprintWith applies the HasEdge predicate on the "blueprint" edge with a given conditions (other predicates).
func HasBlueprintWith(preds ...predicate.Blueprint) predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := newBlueprintStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.NotPredicates(p))
}
