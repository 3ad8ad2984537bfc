// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[9]},
			},
		},
	}
	// ExtractedFieldsColumns holds the columns for the "extracted_fields" table.
	ExtractedFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "key", Type: field.TypeString},
		{Name: "value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "data_type", Type: field.TypeString, Default: "text"},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractedFieldsTable holds the schema information for the "extracted_fields" table.
	ExtractedFieldsTable = &schema.Table{
		Name:       "extracted_fields",
		Columns:    ExtractedFieldsColumns,
		PrimaryKey: []*schema.Column{ExtractedFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_fields_documents_fields",
				Columns:    []*schema.Column{ExtractedFieldsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedfield_document_id_position",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[6], ExtractedFieldsColumns[4]},
			},
			{
				Name:    "extractedfield_document_id_key",
				Unique:  false,
				Columns: []*schema.Column{ExtractedFieldsColumns[6], ExtractedFieldsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractedFieldsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractedFieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractedFieldsTable.Annotation = &entsql.Annotation{
		Table: "extracted_fields",
	}
}
