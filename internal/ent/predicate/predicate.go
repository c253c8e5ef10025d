// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Asset is the predicate function for asset builders.
type Asset func(*sql.Selector)

// ExtractionRecord is the predicate function for extractionrecord builders.
type ExtractionRecord func(*sql.Selector)
