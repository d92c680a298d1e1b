package quotes

import (
	"fmt"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/pkg/frame"
)

// DateColumn is the join key of every per-ticker table.
const DateColumn = "date"

// LabeledName prefixes a column name with its ticker label.
func LabeledName(label, name string) string {
	return label + " " + name
}

// Combine outer-joins per-ticker tables on their date columns.
//
// Every column of tables[i] is renamed "<labels[i]> <name>", date included.
// The first table's date column anchors the join and the remaining tables are
// folded in left to right, so the result is deterministic for equal inputs.
func Combine(tables []*frame.Table, labels []string) (*frame.Table, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no tables to combine", models.ErrNoData)
	}
	if len(tables) != len(labels) {
		return nil, fmt.Errorf("%w: %d tables but %d labels", models.ErrJoin, len(tables), len(labels))
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: duplicate label %q", models.ErrJoin, l)
		}
		seen[l] = struct{}{}
	}

	anchor := LabeledName(labels[0], DateColumn)
	var acc *frame.Table
	for i, t := range tables {
		label := labels[i]
		renamed, err := t.Rename(func(name string) string { return LabeledName(label, name) })
		if err != nil {
			return nil, fmt.Errorf("%w: rename %s: %v", models.ErrJoin, label, err)
		}
		if i == 0 {
			acc = renamed
			continue
		}
		acc, err = frame.FullOuterJoin(acc, renamed, anchor, LabeledName(label, DateColumn))
		if err != nil {
			return nil, fmt.Errorf("%w: join %s: %v", models.ErrJoin, label, err)
		}
	}
	return acc, nil
}
