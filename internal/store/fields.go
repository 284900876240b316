package store

import (
	"fmt"
	"slices"
)

// Field is one optional assignment in a partial update. Set distinguishes
// "absent" from "set to NULL": a Field with Set and a nil Value writes SQL
// NULL.
type Field struct {
	Column string
	Value  any
	Set    bool
}

// Optional builds a Field from a pointer-typed request value, following the
// convention that a nil pointer means the field was not provided.
func Optional[T any](column string, v *T) Field {
	if v == nil {
		return Field{Column: column}
	}
	return Field{Column: column, Value: *v, Set: true}
}

// Null builds a Field that clears a nullable column.
func Null(column string) Field {
	return Field{Column: column, Value: nil, Set: true}
}

// assignments turns a sparse field set into the map handed to gorm's
// Updates. Columns outside the entity's allow-list are a programming error,
// never interpolated; an all-absent set fails with ErrNoFieldsToUpdate
// before any statement is issued.
func assignments(allowed []string, fields []Field) (map[string]any, error) {
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		if !f.Set {
			continue
		}
		if !slices.Contains(allowed, f.Column) {
			return nil, &InternalError{Err: fmt.Errorf("column %q is not updatable", f.Column)}
		}
		m[f.Column] = f.Value
	}
	if len(m) == 0 {
		return nil, ErrNoFieldsToUpdate
	}
	return m, nil
}
