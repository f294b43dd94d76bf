package dataset

import "fmt"

// Table is an in-memory tabular dataset with named columns. All cells are
// numeric; the loaders validate that once at read time. Row order is the
// file order and is never re-sorted.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]float64
}

// NewTable creates an empty table with the given column names.
func NewTable(columns []string) *Table {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}
	return &Table{columns: columns, index: index}
}

// AppendRow adds one row of cells. The cell count must match the header.
func (t *Table) AppendRow(cells []float64) error {
	if len(cells) != len(t.columns) {
		return fmt.Errorf("row has %d cells, header has %d columns", len(cells), len(t.columns))
	}
	t.rows = append(t.rows, cells)
	return nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names in header order.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the table carries a column with the given name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns all values of one named column in row order.
// Returns a missing-column LoadError if the column is absent.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, NewMissingColumnError(name)
	}
	vs := make([]float64, len(t.rows))
	for r, row := range t.rows {
		vs[r] = row[i]
	}
	return vs, nil
}
