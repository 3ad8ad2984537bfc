package constants

// DocumentStatus is the canonical lifecycle status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    DocumentStatus = "pending"    // created on upload, not yet claimed
	StatusProcessing DocumentStatus = "processing" // claimed by a worker
	StatusCompleted  DocumentStatus = "completed"  // terminal success
	StatusFailed     DocumentStatus = "failed"     // terminal failure, carries error_message
)

// DocumentStatuses holds the allowed values for the status field in Document.
var DocumentStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusFailed),
}

// Terminal reports whether no automatic transition leaves the status.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// FieldType is the inferred semantic type of an extracted value.
type FieldType string

const (
	TypeText   FieldType = "text"
	TypeNumber FieldType = "number"
	TypeDate   FieldType = "date"
)

// FieldTypes holds the allowed values for the data_type field in ExtractedField.
var FieldTypes = []string{
	string(TypeText),
	string(TypeNumber),
	string(TypeDate),
}
