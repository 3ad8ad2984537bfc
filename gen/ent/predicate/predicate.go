// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)
