// Package quotes turns raw quote history into tables and combines the
// per-ticker tables into one wide table.
package quotes

import (
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/pkg/frame"
)

// BuildTable lays quotes out as columns.
//
// With no column names every canonical column is built in canonical order.
// Otherwise exactly the recognised names are built, in the order given;
// unknown names are skipped, so the result may have no columns at all.
// An empty quote slice yields zero-length columns.
func BuildTable(quotes []models.Quote, columns []string) *frame.Table {
	kinds := AllColumns
	if len(columns) > 0 {
		kinds = ParseColumns(columns)
	}
	return buildKinds(quotes, kinds)
}

func buildKinds(quotes []models.Quote, kinds []ColumnKind) *frame.Table {
	cols := make([]frame.Column, 0, len(kinds))
	for _, k := range kinds {
		cols = append(cols, buildColumn(quotes, k))
	}
	// kinds are distinct and every column has len(quotes) cells.
	t, err := frame.New(cols...)
	if err != nil {
		panic("quotes: inconsistent table: " + err.Error())
	}
	return t
}

func buildColumn(quotes []models.Quote, k ColumnKind) frame.Column {
	name := k.String()
	switch k {
	case ColumnDate:
		vals := make([]time.Time, len(quotes))
		for i, q := range quotes {
			vals[i] = q.Time()
		}
		return frame.NewDatetime(name, vals)
	case ColumnVolume:
		vals := make([]uint64, len(quotes))
		for i, q := range quotes {
			vals[i] = q.Volume
		}
		return frame.NewUint64(name, vals)
	default:
		vals := make([]float64, len(quotes))
		for i, q := range quotes {
			vals[i] = priceField(q, k)
		}
		return frame.NewFloat64(name, vals)
	}
}

func priceField(q models.Quote, k ColumnKind) float64 {
	switch k {
	case ColumnOpen:
		return q.Open
	case ColumnHigh:
		return q.High
	case ColumnLow:
		return q.Low
	case ColumnClose:
		return q.Close
	case ColumnAdjClose:
		return q.AdjClose
	default:
		panic("quotes: not a price column: " + k.String())
	}
}
