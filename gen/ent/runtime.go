// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docuextract/db/ent/schema"
	"github.com/joseph-ayodele/docuextract/gen/ent/document"
	"github.com/joseph-ayodele/docuextract/gen/ent/extractedfield"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[1].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[2].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescContentType is the schema descriptor for content_type field.
	documentDescContentType := documentFields[3].Descriptor()
	// document.ContentTypeValidator is a validator for the "content_type" field. It is called by the builders before save.
	document.ContentTypeValidator = documentDescContentType.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[5].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractedfieldFields := schema.ExtractedField{}.Fields()
	_ = extractedfieldFields
	// extractedfieldDescKey is the schema descriptor for key field.
	extractedfieldDescKey := extractedfieldFields[2].Descriptor()
	// extractedfield.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	extractedfield.KeyValidator = extractedfieldDescKey.Validators[0].(func(string) error)
	// extractedfieldDescValue is the schema descriptor for value field.
	extractedfieldDescValue := extractedfieldFields[3].Descriptor()
	// extractedfield.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	extractedfield.ValueValidator = extractedfieldDescValue.Validators[0].(func(string) error)
	// extractedfieldDescDataType is the schema descriptor for data_type field.
	extractedfieldDescDataType := extractedfieldFields[4].Descriptor()
	// extractedfield.DefaultDataType holds the default value on creation for the data_type field.
	extractedfield.DefaultDataType = extractedfieldDescDataType.Default.(string)
	// extractedfield.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	extractedfield.DataTypeValidator = extractedfieldDescDataType.Validators[0].(func(string) error)
	// extractedfieldDescPosition is the schema descriptor for position field.
	extractedfieldDescPosition := extractedfieldFields[5].Descriptor()
	// extractedfield.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	extractedfield.PositionValidator = extractedfieldDescPosition.Validators[0].(func(int) error)
	// extractedfieldDescCreatedAt is the schema descriptor for created_at field.
	extractedfieldDescCreatedAt := extractedfieldFields[6].Descriptor()
	// extractedfield.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractedfield.DefaultCreatedAt = extractedfieldDescCreatedAt.Default.(func() time.Time)
	// extractedfieldDescID is the schema descriptor for id field.
	extractedfieldDescID := extractedfieldFields[0].Descriptor()
	// extractedfield.DefaultID holds the default value on creation for the id field.
	extractedfield.DefaultID = extractedfieldDescID.Default.(func() uuid.UUID)
}
