package dataset

import (
	"errors"
	"math"
	"testing"

	"finstat/domain/core"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := FromColumns(
		core.Keys("X1", "X2", "X3"),
		[][]float64{
			{1, 2, 3, 4},
			{10, 20, 30, 40},
			{-1, -2, -3, -4},
		},
	)
	if err != nil {
		t.Fatalf("FromColumns failed: %v", err)
	}
	return table
}

func TestFromColumns(t *testing.T) {
	table := newTestTable(t)

	if table.RowCount() != 4 {
		t.Errorf("Expected 4 rows, got %d", table.RowCount())
	}
	if table.ColumnCount() != 3 {
		t.Errorf("Expected 3 columns, got %d", table.ColumnCount())
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Expected valid table, got %v", err)
	}
	if table.At(2, 1) != 30 {
		t.Errorf("Expected At(2,1)=30, got %f", table.At(2, 1))
	}
}

func TestAddColumnRejectsBadInput(t *testing.T) {
	table := NewTable()
	if err := table.AddColumn("a", []float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := table.AddColumn("b", []float64{1, 2}); !errors.Is(err, core.ErrLengthMismatch) {
		t.Errorf("Expected length mismatch, got %v", err)
	}
	if err := table.AddColumn("c", []float64{1, math.NaN(), 3}); !errors.Is(err, core.ErrNonFinite) {
		t.Errorf("Expected non-finite error, got %v", err)
	}
	if err := table.AddColumn("a", []float64{4, 5, 6}); err == nil {
		t.Error("Expected duplicate column error")
	}
}

func TestFromRows(t *testing.T) {
	keys := core.Keys("X1", "X2")
	rows := []map[core.VariableKey]float64{
		{"X1": 1, "X2": 2},
		{"X1": 3, "X2": 4},
	}
	table, err := FromRows(keys, rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	col, ok := table.GetColumnData("X2")
	if !ok {
		t.Fatal("Expected column X2")
	}
	if col[0] != 2 || col[1] != 4 {
		t.Errorf("unexpected column data: %v", col)
	}

	rows = append(rows, map[core.VariableKey]float64{"X1": 5})
	if _, err := FromRows(keys, rows); !errors.Is(err, core.ErrVariableNotFound) {
		t.Errorf("Expected missing variable error, got %v", err)
	}
}

func TestSelect(t *testing.T) {
	table := newTestTable(t)

	sel, err := table.Select(core.Keys("X3", "X1"))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	keys := sel.VariableKeys()
	if keys[0] != "X3" || keys[1] != "X1" {
		t.Errorf("Expected order [X3 X1], got %v", keys)
	}
	if sel.At(1, 0) != -2 || sel.At(1, 1) != 2 {
		t.Errorf("unexpected row: %f %f", sel.At(1, 0), sel.At(1, 1))
	}

	if _, err := table.Select(core.Keys("missing")); !errors.Is(err, core.ErrVariableNotFound) {
		t.Errorf("Expected ErrVariableNotFound, got %v", err)
	}
	if _, err := table.Select(nil); !errors.Is(err, core.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestTakeDoesNotMutateSource(t *testing.T) {
	table := newTestTable(t)
	before := table.Column(0)

	resampled := table.Take([]int{3, 3, 0, 1, 2, 2})
	if resampled.RowCount() != 6 {
		t.Fatalf("Expected 6 rows, got %d", resampled.RowCount())
	}
	if resampled.At(0, 0) != 4 || resampled.At(2, 0) != 1 {
		t.Errorf("unexpected gathered values: %v", resampled.Column(0))
	}

	after := table.Column(0)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("source table changed at row %d", i)
		}
	}
}

func TestConstantDesign(t *testing.T) {
	m := ConstantDesign(4)
	r, c := m.Dims()
	if r != 4 || c != 1 {
		t.Fatalf("Expected 4x1, got %dx%d", r, c)
	}
	for i := 0; i < r; i++ {
		if m.At(i, 0) != 1 {
			t.Errorf("row %d: expected 1, got %f", i, m.At(i, 0))
		}
	}
}
