// Package table provides the in-memory tabular model rendered by plotplotplot.
//
// A [Table] is an ordered sequence of named columns of equal length. Cells
// are typed [Value]s (int, float, string or null); type inference happens
// once, in the loaders, through [Infer].
//
// Tables are read-only after construction. Renderers take per-group views
// with [Table.Select], which copies column headers but shares cell slices.
package table

import (
	"fmt"

	"github.com/spred/plotplotplot/pkg/errors"
)

// Column is a named sequence of cells.
type Column struct {
	Name   string
	Values []Value
}

// Table is an ordered set of equal-length columns.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// New builds a table from columns, preserving their order.
// It fails when names repeat, are not renderable, or when column lengths differ.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if err := errors.ValidateColumnName(c.Name); err != nil {
			return nil, err
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate column %q", c.Name)
		}
		if i == 0 {
			t.rows = len(c.Values)
		} else if len(c.Values) != t.rows {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"column %q has %d rows, want %d", c.Name, len(c.Values), t.rows)
		}
		t.index[c.Name] = i
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// MustNew is like New but panics on error. Intended for tests and examples.
func MustNew(cols ...Column) *Table {
	t, err := New(cols...)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

// At returns the i-th column.
func (t *Table) At(i int) Column { return t.columns[i] }

// Select returns a table holding only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		c, ok := t.Column(n)
		if !ok {
			return nil, errors.New(errors.ErrCodeConfiguration, "unknown column %q", n)
		}
		cols = append(cols, c)
	}
	sub, err := New(cols...)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		sub.rows = t.rows
	}
	return sub, nil
}

// Numbers returns the numeric cells of a column as floats together with a
// mask marking which rows held a number.
func (c Column) Numbers() ([]float64, []bool) {
	vals := make([]float64, len(c.Values))
	ok := make([]bool, len(c.Values))
	for i, v := range c.Values {
		vals[i], ok[i] = v.Number()
	}
	return vals, ok
}

// String implements fmt.Stringer for debug logging.
func (t *Table) String() string {
	return fmt.Sprintf("table(%d columns × %d rows)", len(t.columns), t.rows)
}
