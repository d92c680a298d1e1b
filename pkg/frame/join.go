package frame

import (
	"fmt"
	"math"
	"time"
)

// FullOuterJoin joins right onto left where left[leftOn] == right[rightOn].
//
// The result holds every left column followed by every right column, both key
// columns included. Row order: each left row in order followed by its matches
// in right order (or a single row with the right side null), then the right
// rows that matched nothing, in order, with the left side null. Null and NaN
// keys never match.
func FullOuterJoin(left, right *Table, leftOn, rightOn string) (*Table, error) {
	lk, ok := left.Column(leftOn)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, leftOn)
	}
	rk, ok := right.Column(rightOn)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, rightOn)
	}
	if lk.DType() != rk.DType() {
		return nil, fmt.Errorf("%w: %q is %s, %q is %s", ErrDTypeMismatch, leftOn, lk.DType(), rightOn, rk.DType())
	}

	byKey := make(map[any][]int, rk.Len())
	for r := 0; r < rk.Len(); r++ {
		if k, ok := joinKey(rk, r); ok {
			byKey[k] = append(byKey[k], r)
		}
	}

	leftIdx := make([]int, 0, lk.Len()+rk.Len())
	rightIdx := make([]int, 0, lk.Len()+rk.Len())
	matched := make([]bool, rk.Len())
	for l := 0; l < lk.Len(); l++ {
		var rows []int
		if k, ok := joinKey(lk, l); ok {
			rows = byKey[k]
		}
		if len(rows) == 0 {
			leftIdx = append(leftIdx, l)
			rightIdx = append(rightIdx, -1)
			continue
		}
		for _, r := range rows {
			leftIdx = append(leftIdx, l)
			rightIdx = append(rightIdx, r)
			matched[r] = true
		}
	}
	for r, m := range matched {
		if !m {
			leftIdx = append(leftIdx, -1)
			rightIdx = append(rightIdx, r)
		}
	}

	cols := make([]Column, 0, left.Width()+right.Width())
	for _, c := range left.columns {
		cols = append(cols, c.Take(leftIdx))
	}
	for _, c := range right.columns {
		cols = append(cols, c.Take(rightIdx))
	}
	return New(cols...)
}

func joinKey(c Column, i int) (any, bool) {
	v := c.Value(i)
	switch k := v.(type) {
	case nil:
		return nil, false
	case time.Time:
		return k.UnixNano(), true
	case float64:
		if math.IsNaN(k) {
			return nil, false
		}
		return k, true
	default:
		return k, true
	}
}
