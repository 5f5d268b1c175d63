// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Blueprint is the predicate function for blueprint builders.
type Blueprint func(*sql.Selector)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)
