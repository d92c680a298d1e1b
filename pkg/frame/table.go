// Package frame provides an immutable, column-oriented table with row-aligned
// columns and a full outer join.
package frame

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrDuplicateColumn = errors.New("frame: duplicate column name")
	ErrLengthMismatch  = errors.New("frame: column length mismatch")
	ErrColumnNotFound  = errors.New("frame: column not found")
	ErrDTypeMismatch   = errors.New("frame: dtype mismatch")
)

// Table is an ordered set of uniquely named columns of equal length.
// A Table is never modified after construction; derived tables share cells.
type Table struct {
	columns []Column
	index   map[string]int
	height  int
}

// New builds a table from columns, checking name uniqueness and lengths.
func New(columns ...Column) (*Table, error) {
	t := &Table{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := t.index[c.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		if i == 0 {
			t.height = c.Len()
		} else if c.Len() != t.height {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrLengthMismatch, c.Name(), c.Len(), t.height)
		}
		t.index[c.Name()] = i
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// Height returns the row count.
func (t *Table) Height() int { return t.height }

// Width returns the column count.
func (t *Table) Width() int { return len(t.columns) }

// Columns returns the columns in order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name()
	}
	return out
}

// Column looks a column up by name.
func (t *Table) Column(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Rename returns a table whose column names are mapped through fn.
func (t *Table) Rename(fn func(string) string) (*Table, error) {
	cols := make([]Column, len(t.columns))
	for i, c := range t.columns {
		cols[i] = c.Rename(fn(c.Name()))
	}
	return New(cols...)
}

// Take gathers rows by position; a negative position yields a null row.
func (t *Table) Take(idx []int) *Table {
	out := &Table{
		columns: make([]Column, len(t.columns)),
		index:   make(map[string]int, len(t.columns)),
	}
	for i, c := range t.columns {
		out.columns[i] = c.Take(idx)
		out.index[c.Name()] = i
	}
	if len(t.columns) > 0 {
		out.height = len(idx)
	}
	return out
}

type columnJSON struct {
	Name   string `json:"name"`
	DType  DType  `json:"dtype"`
	Values []any  `json:"values"`
}

type tableJSON struct {
	Shape   [2]int       `json:"shape"`
	Columns []columnJSON `json:"columns"`
}

type jsonCells interface {
	jsonValue(i int) any
}

// MarshalJSON encodes the table column by column. Nulls become null and
// non-finite floats become strings.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{
		Shape:   [2]int{t.height, len(t.columns)},
		Columns: make([]columnJSON, 0, len(t.columns)),
	}
	for _, c := range t.columns {
		vals := make([]any, c.Len())
		jc, ok := c.(jsonCells)
		for i := range vals {
			if ok {
				vals[i] = jc.jsonValue(i)
			} else {
				vals[i] = c.Value(i)
			}
		}
		out.Columns = append(out.Columns, columnJSON{Name: c.Name(), DType: c.DType(), Values: vals})
	}
	return json.Marshal(out)
}
