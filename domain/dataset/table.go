package dataset

import (
	"fmt"
	"math"

	"finstat/domain/core"

	"gonum.org/v1/gonum/mat"
)

// Table is the observation table every statistic is computed on.
// Rows are observations in time order, columns are named variables.
// A table is read-only once built: resampling produces new tables that
// share row storage with their source.
type Table struct {
	data [][]float64        // rows=observations, cols=variables
	keys []core.VariableKey // column variable keys
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{}
}

// FromColumns builds a table from column slices keyed by name
func FromColumns(keys []core.VariableKey, columns [][]float64) (*Table, error) {
	if len(keys) != len(columns) {
		return nil, core.NewLengthMismatchError("columns", len(keys), len(columns))
	}
	t := NewTable()
	for i, key := range keys {
		if err := t.AddColumn(key, columns[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromRows builds a table from row mappings. Every row must carry every key.
func FromRows(keys []core.VariableKey, rows []map[core.VariableKey]float64) (*Table, error) {
	columns := make([][]float64, len(keys))
	for j := range columns {
		columns[j] = make([]float64, len(rows))
	}
	for i, row := range rows {
		for j, key := range keys {
			v, ok := row[key]
			if !ok {
				return nil, fmt.Errorf("row %d: %w", i, core.NewVariableNotFoundError(key))
			}
			columns[j][i] = v
		}
	}
	return FromColumns(keys, columns)
}

// AddColumn appends a column. Values are copied.
func (t *Table) AddColumn(key core.VariableKey, values []float64) error {
	if _, exists := t.GetColumn(key); exists {
		return fmt.Errorf("duplicate column %s", key)
	}
	if len(t.keys) > 0 && len(values) != len(t.data) {
		return core.NewLengthMismatchError(string(key), len(t.data), len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewNonFiniteError(string(key), i, v)
		}
	}

	if len(t.keys) == 0 {
		t.data = make([][]float64, len(values))
		for i := range t.data {
			t.data[i] = make([]float64, 0, 1)
		}
	}

	// Extend each row with this column's values
	for i, value := range values {
		t.data[i] = append(t.data[i], value)
	}
	t.keys = append(t.keys, key)
	return nil
}

// Validate ensures the table is internally consistent
func (t *Table) Validate() error {
	if len(t.data) == 0 || len(t.keys) == 0 {
		return core.ErrEmptyInput
	}

	colCount := len(t.keys)
	for i, row := range t.data {
		if len(row) != colCount {
			return core.NewLengthMismatchError(fmt.Sprintf("row %d", i), colCount, len(row))
		}
	}
	return nil
}

// GetColumn returns the column index for a variable key
func (t *Table) GetColumn(key core.VariableKey) (int, bool) {
	for i, k := range t.keys {
		if k == key {
			return i, true
		}
	}
	return -1, false
}

// GetColumnData returns a copy of the data for a specific column
func (t *Table) GetColumnData(key core.VariableKey) ([]float64, bool) {
	colIdx, found := t.GetColumn(key)
	if !found {
		return nil, false
	}
	return t.Column(colIdx), true
}

// Column returns a copy of the column at index j
func (t *Table) Column(j int) []float64 {
	data := make([]float64, len(t.data))
	for i, row := range t.data {
		data[i] = row[j]
	}
	return data
}

// At returns the value at row i, column j
func (t *Table) At(i, j int) float64 {
	return t.data[i][j]
}

// VariableKeys returns the column keys in order
func (t *Table) VariableKeys() []core.VariableKey {
	keys := make([]core.VariableKey, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// RowCount returns the number of observations (rows)
func (t *Table) RowCount() int {
	return len(t.data)
}

// ColumnCount returns the number of variables (columns)
func (t *Table) ColumnCount() int {
	return len(t.keys)
}

// Select returns a new table holding only the requested columns, in the
// requested order.
func (t *Table) Select(keys []core.VariableKey) (*Table, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: no variables selected", core.ErrEmptyInput)
	}
	idx := make([]int, len(keys))
	for j, key := range keys {
		colIdx, found := t.GetColumn(key)
		if !found {
			return nil, core.NewVariableNotFoundError(key)
		}
		idx[j] = colIdx
	}

	out := &Table{
		data: make([][]float64, len(t.data)),
		keys: make([]core.VariableKey, len(keys)),
	}
	copy(out.keys, keys)
	for i, row := range t.data {
		sel := make([]float64, len(idx))
		for j, colIdx := range idx {
			sel[j] = row[colIdx]
		}
		out.data[i] = sel
	}
	return out, nil
}

// Take gathers rows by index into a new table. Row storage is shared with
// the receiver, so neither table may be modified afterwards.
func (t *Table) Take(indices []int) *Table {
	out := &Table{
		data: make([][]float64, len(indices)),
		keys: t.keys,
	}
	for i, idx := range indices {
		out.data[i] = t.data[idx]
	}
	return out
}

// ConstantDesign is the n×1 intercept-only design matrix
func ConstantDesign(n int) *mat.Dense {
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return mat.NewDense(n, 1, ones)
}
