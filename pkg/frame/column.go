package frame

import (
	"math"
	"slices"
	"strconv"
	"time"
)

// DType names the cell type of a column.
type DType string

const (
	Datetime DType = "datetime"
	Float64  DType = "f64"
	Uint64   DType = "u64"
	Bool     DType = "bool"
)

// DatetimeLayout is used when rendering datetime cells as text.
const DatetimeLayout = "2006-01-02 15:04:05"

// Column is a named, immutable sequence of homogeneously typed cells.
// Any cell may be null.
type Column interface {
	Name() string
	DType() DType
	Len() int
	IsNull(i int) bool
	// Value returns the cell at i, or nil when it is null.
	Value(i int) any
	// Format renders the cell at i for text output.
	Format(i int) string
	// Rename returns a copy of the column under a new name sharing the same cells.
	Rename(name string) Column
	// Take gathers cells by position; a negative position yields a null cell.
	Take(idx []int) Column
}

// Series is the generic Column implementation.
type Series[T any] struct {
	name   string
	dtype  DType
	values []T
	valid  []bool // nil when no cell is null
}

func newSeries[T any](name string, dtype DType, values []T) *Series[T] {
	return &Series[T]{name: name, dtype: dtype, values: slices.Clone(values)}
}

// NewFloat64 creates an f64 column. The values are copied.
func NewFloat64(name string, values []float64) *Series[float64] {
	return newSeries(name, Float64, values)
}

// NewUint64 creates a u64 column. The values are copied.
func NewUint64(name string, values []uint64) *Series[uint64] {
	return newSeries(name, Uint64, values)
}

// NewDatetime creates a datetime column. The values are copied.
func NewDatetime(name string, values []time.Time) *Series[time.Time] {
	return newSeries(name, Datetime, values)
}

// NewBool creates a bool column. The values are copied.
func NewBool(name string, values []bool) *Series[bool] {
	return newSeries(name, Bool, values)
}

func (s *Series[T]) Name() string { return s.name }
func (s *Series[T]) DType() DType { return s.dtype }
func (s *Series[T]) Len() int     { return len(s.values) }

func (s *Series[T]) IsNull(i int) bool {
	return s.valid != nil && !s.valid[i]
}

// At returns the cell at i and whether it is set.
func (s *Series[T]) At(i int) (T, bool) {
	if s.IsNull(i) {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

func (s *Series[T]) Value(i int) any {
	if s.IsNull(i) {
		return nil
	}
	return s.values[i]
}

// NullCount returns the number of null cells.
func (s *Series[T]) NullCount() int {
	if s.valid == nil {
		return 0
	}
	n := 0
	for _, ok := range s.valid {
		if !ok {
			n++
		}
	}
	return n
}

func (s *Series[T]) Rename(name string) Column {
	return &Series[T]{name: name, dtype: s.dtype, values: s.values, valid: s.valid}
}

func (s *Series[T]) Take(idx []int) Column {
	out := &Series[T]{name: s.name, dtype: s.dtype, values: make([]T, len(idx))}
	for j, i := range idx {
		if i < 0 || s.IsNull(i) {
			if out.valid == nil {
				out.valid = make([]bool, len(idx))
				for k := 0; k < j; k++ {
					out.valid[k] = true
				}
			}
			out.valid[j] = false
			continue
		}
		out.values[j] = s.values[i]
		if out.valid != nil {
			out.valid[j] = true
		}
	}
	return out
}

func (s *Series[T]) Format(i int) string {
	if s.IsNull(i) {
		return "null"
	}
	switch v := any(s.values[i]).(type) {
	case float64:
		return formatFloat(v)
	case uint64:
		return strconv.FormatUint(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format(DatetimeLayout)
	default:
		return "?"
	}
}

// jsonValue maps a cell onto something encoding/json accepts. Non-finite
// floats become strings.
func (s *Series[T]) jsonValue(i int) any {
	if s.IsNull(i) {
		return nil
	}
	if f, ok := any(s.values[i]).(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return formatFloat(f)
	}
	return s.values[i]
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
