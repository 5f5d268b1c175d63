// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlueprintColumns holds the columns for the "blueprint" table.
	BlueprintColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "file_size_bytes", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlueprintTable holds the schema information for the "blueprint" table.
	BlueprintTable = &schema.Table{
		Name:       "blueprint",
		Columns:    BlueprintColumns,
		PrimaryKey: []*schema.Column{BlueprintColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blueprint_content_hash",
				Unique:  true,
				Columns: []*schema.Column{BlueprintColumns[3]},
			},
			{
				Name:    "blueprint_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlueprintColumns[6]},
			},
		},
	}
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "zip_code", Type: field.TypeString},
		{Name: "queued_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "declared_total_sqft", Type: field.TypeFloat64, Nullable: true},
		{Name: "extracted_total_sqft", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_heating_btuh", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_cooling_btuh", Type: field.TypeFloat64, Nullable: true},
		{Name: "cooling_tons", Type: field.TypeFloat64, Nullable: true},
		{Name: "extraction_json", Type: field.TypeJSON, Nullable: true},
		{Name: "loads_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "suggested_action", Type: field.TypeString, Nullable: true},
		{Name: "blueprint_id", Type: field.TypeUUID},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_job_blueprint_jobs",
				Columns:    []*schema.Column{ExtractionJobColumns[17]},
				RefColumns: []*schema.Column{BlueprintColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_blueprint_id_status_queued_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[17], ExtractionJobColumns[1], ExtractionJobColumns[3]},
			},
			{
				Name:    "extractionjob_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlueprintTable,
		ExtractionJobTable,
	}
)

func init() {
	BlueprintTable.Annotation = &entsql.Annotation{
		Table: "blueprint",
	}
	ExtractionJobTable.ForeignKeys[0].RefTable = BlueprintTable
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
}
