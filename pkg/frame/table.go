package frame

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidColumnName is returned by [Table.AddColumn] when the column
	// name is empty.
	ErrInvalidColumnName = errors.New("column name must not be empty")

	// ErrDuplicateColumn is returned by [Table.AddColumn] when a column with
	// the same name already exists. Column names identify features and must
	// be unique.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrRaggedColumn is returned by [Table.AddColumn] when the new column
	// does not have the same number of rows as the columns already present.
	ErrRaggedColumn = errors.New("column length does not match table rows")

	// ErrUnknownColumn is returned by [Table.Select] when a requested column
	// does not exist.
	ErrUnknownColumn = errors.New("unknown column")
)

// Table is a column-oriented numeric table keyed by feature name.
// Columns keep their insertion order, which is the order reported by
// [Table.Columns].
//
// The zero value is not usable - use NewTable to create a valid Table.
// Table is not safe for concurrent mutation; concurrent reads are fine.
type Table struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// AddColumn appends a named column. The values slice is copied, so later
// changes by the caller do not affect the table.
//
// Returns ErrInvalidColumnName for an empty name, ErrDuplicateColumn if the
// name is taken, or ErrRaggedColumn if the length differs from existing
// columns.
func (t *Table) AddColumn(name string, values []float64) error {
	if name == "" {
		return ErrInvalidColumnName
	}
	if _, exists := t.cols[name]; exists {
		return ErrDuplicateColumn
	}
	if len(t.names) > 0 && len(values) != t.rows {
		return ErrRaggedColumn
	}
	t.names = append(t.names, name)
	t.cols[name] = slices.Clone(values)
	t.rows = len(values)
	return nil
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string { return slices.Clone(t.names) }

// Column returns the values of the named column and whether it exists.
// The returned slice must not be modified.
func (t *Table) Column(name string) ([]float64, bool) {
	v, ok := t.cols[name]
	return v, ok
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// NumColumns returns the number of columns (features).
func (t *Table) NumColumns() int { return len(t.names) }

// NumRows returns the number of rows (observations).
func (t *Table) NumRows() int { return t.rows }

// Select returns a new table holding only the named columns, in the order
// given. Returns ErrUnknownColumn if any name is missing.
func (t *Table) Select(names ...string) (*Table, error) {
	out := NewTable()
	for _, n := range names {
		v, ok := t.cols[n]
		if !ok {
			return nil, ErrUnknownColumn
		}
		if err := out.AddColumn(n, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
