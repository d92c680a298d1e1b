package stats

import "QuoteFrame/pkg/frame"

// NormalizeByFirst rescales every f64 column so that its first set value
// becomes 100. Other columns, and f64 columns without any set value, are
// kept as they are. A zero or NaN base follows IEEE-754 arithmetic.
func NormalizeByFirst(t *frame.Table) *frame.Table {
	cols := t.Columns()
	out := make([]frame.Column, len(cols))
	for i, c := range cols {
		out[i] = c
		f, ok := c.(*frame.Series[float64])
		if !ok {
			continue
		}
		if n, ok := normalizeSeries(f); ok {
			out[i] = n
		}
	}
	return mustTable(out)
}

func normalizeSeries(f *frame.Series[float64]) (frame.Column, bool) {
	base, found := 0.0, false
	for i := 0; i < f.Len(); i++ {
		if v, set := f.At(i); set {
			base, found = v, true
			break
		}
	}
	if !found {
		return nil, false
	}

	vals := make([]float64, f.Len())
	idx := make([]int, f.Len())
	for i := range vals {
		idx[i] = i
		if v, set := f.At(i); set {
			vals[i] = v / base * 100
		} else {
			idx[i] = -1
		}
	}
	// Take re-applies the null positions of the source column.
	return frame.NewFloat64(f.Name(), vals).Take(idx), true
}
