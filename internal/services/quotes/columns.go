package quotes

import "strings"

// ColumnKind is one of the recognised quote table columns.
type ColumnKind int

const (
	ColumnDate ColumnKind = iota
	ColumnOpen
	ColumnHigh
	ColumnLow
	ColumnClose
	ColumnVolume
	ColumnAdjClose
)

// AllColumns lists every column in canonical order.
var AllColumns = []ColumnKind{
	ColumnDate, ColumnOpen, ColumnHigh, ColumnLow, ColumnClose, ColumnVolume, ColumnAdjClose,
}

var columnNames = [...]string{
	ColumnDate:     "date",
	ColumnOpen:     "open",
	ColumnHigh:     "high",
	ColumnLow:      "low",
	ColumnClose:    "close",
	ColumnVolume:   "volume",
	ColumnAdjClose: "adjclose",
}

func (k ColumnKind) String() string {
	if k < 0 || int(k) >= len(columnNames) {
		return "unknown"
	}
	return columnNames[k]
}

// ParseColumnKind maps a column name onto its kind. Matching is exact after
// trimming surrounding whitespace.
func ParseColumnKind(name string) (ColumnKind, bool) {
	name = strings.TrimSpace(name)
	for k, n := range columnNames {
		if n == name {
			return ColumnKind(k), true
		}
	}
	return 0, false
}

// ParseColumns keeps the recognised names in request order, dropping unknown
// names and repeats. The result is never nil, so an input made only of
// unknown names yields an empty, non-nil selection.
func ParseColumns(names []string) []ColumnKind {
	out := make([]ColumnKind, 0, len(names))
	seen := make(map[ColumnKind]struct{}, len(names))
	for _, n := range names {
		k, ok := ParseColumnKind(n)
		if !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// ColumnNames renders kinds back to their names.
func ColumnNames(kinds []ColumnKind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.String()
	}
	return out
}

// WithDate returns kinds with the date column in front when it is missing.
func WithDate(kinds []ColumnKind) []ColumnKind {
	for _, k := range kinds {
		if k == ColumnDate {
			return kinds
		}
	}
	out := make([]ColumnKind, 0, len(kinds)+1)
	out = append(out, ColumnDate)
	return append(out, kinds...)
}
