// Package stats profiles quote tables: missing value masks, counts and
// percentages, and first-value normalisation.
package stats

import (
	"math"

	"QuoteFrame/pkg/frame"
)

const (
	countPrefix   = "Missing count "
	percentPrefix = "Missing percentage "
)

// IsMissing reports whether v is the NaN sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// MaskColumn flags the missing cells of c under the same name. Only f64
// columns can hold NaN; null cells are not NaN and are never flagged.
func MaskColumn(c frame.Column) *frame.Series[bool] {
	mask := make([]bool, c.Len())
	if f, ok := c.(*frame.Series[float64]); ok {
		for i := range mask {
			if v, set := f.At(i); set {
				mask[i] = IsMissing(v)
			}
		}
	}
	return frame.NewBool(c.Name(), mask)
}

// CountColumn sums the mask of c.
func CountColumn(c frame.Column) uint64 {
	return sumMask(MaskColumn(c))
}

// PercentColumn is the missing share of c, or 0 for an empty column.
func PercentColumn(c frame.Column) float64 {
	if c.Len() == 0 {
		return 0
	}
	return float64(CountColumn(c)) / float64(c.Len())
}

// MaskTable masks every column of t, keeping names and order.
func MaskTable(t *frame.Table) *frame.Table {
	cols := t.Columns()
	out := make([]frame.Column, len(cols))
	for i, c := range cols {
		out[i] = MaskColumn(c)
	}
	return mustTable(out)
}

// CountTable holds one single-row column "Missing count <name>" per column of t.
func CountTable(t *frame.Table) *frame.Table {
	cols := t.Columns()
	out := make([]frame.Column, len(cols))
	for i, c := range cols {
		out[i] = frame.NewUint64(countPrefix+c.Name(), []uint64{CountColumn(c)})
	}
	return mustTable(out)
}

// PercentTable holds one single-row column "Missing percentage <name>" per column of t.
func PercentTable(t *frame.Table) *frame.Table {
	cols := t.Columns()
	out := make([]frame.Column, len(cols))
	for i, c := range cols {
		out[i] = frame.NewFloat64(percentPrefix+c.Name(), []float64{PercentColumn(c)})
	}
	return mustTable(out)
}

func sumMask(mask *frame.Series[bool]) uint64 {
	var n uint64
	for i := 0; i < mask.Len(); i++ {
		if v, _ := mask.At(i); v {
			n++
		}
	}
	return n
}

// mustTable wraps columns derived one-to-one from a valid table, so names
// stay unique and lengths agree.
func mustTable(cols []frame.Column) *frame.Table {
	t, err := frame.New(cols...)
	if err != nil {
		panic("stats: " + err.Error())
	}
	return t
}
