// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/hvacdesign/planload/db/ent/schema"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/gen/ent/extractionjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	blueprintFields := schema.Blueprint{}.Fields()
	_ = blueprintFields
	// blueprintDescFilename is the schema descriptor for filename field.
	blueprintDescFilename := blueprintFields[1].Descriptor()
	// blueprint.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	blueprint.FilenameValidator = blueprintDescFilename.Validators[0].(func(string) error)
	// blueprintDescSourcePath is the schema descriptor for source_path field.
	blueprintDescSourcePath := blueprintFields[2].Descriptor()
	// blueprint.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	blueprint.SourcePathValidator = blueprintDescSourcePath.Validators[0].(func(string) error)
	// blueprintDescContentHash is the schema descriptor for content_hash field.
	blueprintDescContentHash := blueprintFields[3].Descriptor()
	// blueprint.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	blueprint.ContentHashValidator = blueprintDescContentHash.Validators[0].(func(string) error)
	// blueprintDescCreatedAt is the schema descriptor for created_at field.
	blueprintDescCreatedAt := blueprintFields[6].Descriptor()
	// blueprint.DefaultCreatedAt holds the default value on creation for the created_at field.
	blueprint.DefaultCreatedAt = blueprintDescCreatedAt.Default.(func() time.Time)
	// blueprintDescID is the schema descriptor for id field.
	blueprintDescID := blueprintFields[0].Descriptor()
	// blueprint.DefaultID holds the default value on creation for the id field.
	blueprint.DefaultID = blueprintDescID.Default.(func() uuid.UUID)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescStatus is the schema descriptor for status field.
	extractionjobDescStatus := extractionjobFields[2].Descriptor()
	// extractionjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractionjob.StatusValidator = func() func(string) error {
		validators := extractionjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionjobDescZipCode is the schema descriptor for zip_code field.
	extractionjobDescZipCode := extractionjobFields[3].Descriptor()
	// extractionjob.ZipCodeValidator is a validator for the "zip_code" field. It is called by the builders before save.
	extractionjob.ZipCodeValidator = extractionjobDescZipCode.Validators[0].(func(string) error)
	// extractionjobDescQueuedAt is the schema descriptor for queued_at field.
	extractionjobDescQueuedAt := extractionjobFields[4].Descriptor()
	// extractionjob.DefaultQueuedAt holds the default value on creation for the queued_at field.
	extractionjob.DefaultQueuedAt = extractionjobDescQueuedAt.Default.(func() time.Time)
	// extractionjobDescID is the schema descriptor for id field.
	extractionjobDescID := extractionjobFields[0].Descriptor()
	// extractionjob.DefaultID holds the default value on creation for the id field.
	extractionjob.DefaultID = extractionjobDescID.Default.(func() uuid.UUID)
}
