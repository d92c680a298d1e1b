package quotes

import (
	"math"
	"strings"
	"testing"
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/pkg/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() models.Quote {
	return models.Quote{Timestamp: 1000, Open: 10, High: 12, Low: 9, Close: 11, Volume: 100, AdjClose: 11}
}

func series(start int64, n int) []models.Quote {
	out := make([]models.Quote, n)
	for i := range out {
		v := float64(i + 1)
		out[i] = models.Quote{
			Timestamp: start + int64(i)*86400,
			Open:      v, High: v, Low: v, Close: v, AdjClose: v,
			Volume: uint64(i + 1),
		}
	}
	return out
}

func TestParseColumnKind(t *testing.T) {
	for _, k := range AllColumns {
		got, ok := ParseColumnKind(k.String())
		require.True(t, ok, k.String())
		assert.Equal(t, k, got)
	}
	_, ok := ParseColumnKind("bogus")
	assert.False(t, ok)
	_, ok = ParseColumnKind("Open")
	assert.False(t, ok, "names are case sensitive")
	assert.Equal(t, "unknown", ColumnKind(42).String())
}

func TestParseColumnsDropsUnknownAndRepeats(t *testing.T) {
	got := ParseColumns([]string{" close", "bogus", "open", "close"})
	assert.Equal(t, []ColumnKind{ColumnClose, ColumnOpen}, got)

	none := ParseColumns([]string{"bogus"})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestWithDate(t *testing.T) {
	assert.Equal(t, []ColumnKind{ColumnDate, ColumnOpen}, WithDate([]ColumnKind{ColumnOpen}))
	assert.Equal(t, []ColumnKind{ColumnOpen, ColumnDate}, WithDate([]ColumnKind{ColumnOpen, ColumnDate}))
	assert.Equal(t, []ColumnKind{ColumnDate}, WithDate(nil))
}

func TestBuildTableAllColumns(t *testing.T) {
	tbl := BuildTable([]models.Quote{sample()}, nil)

	assert.Equal(t, []string{"date", "open", "high", "low", "close", "volume", "adjclose"}, tbl.Names())
	assert.Equal(t, 1, tbl.Height())

	date, _ := tbl.Column("date")
	assert.Equal(t, frame.Datetime, date.DType())
	assert.Equal(t, time.Unix(1000, 0).UTC(), date.Value(0))

	vol, _ := tbl.Column("volume")
	assert.Equal(t, uint64(100), vol.Value(0))

	for name, want := range map[string]float64{"open": 10, "high": 12, "low": 9, "close": 11, "adjclose": 11} {
		c, ok := tbl.Column(name)
		require.True(t, ok, name)
		assert.Equal(t, want, c.Value(0), name)
	}
}

func TestBuildTableEmptySelectionMeansAll(t *testing.T) {
	tbl := BuildTable([]models.Quote{sample()}, []string{})
	assert.Equal(t, 7, tbl.Width())
}

func TestBuildTableProjection(t *testing.T) {
	tbl := BuildTable([]models.Quote{sample()}, []string{"open", "bogus"})
	assert.Equal(t, []string{"open"}, tbl.Names())
	assert.Equal(t, 1, tbl.Height())
}

func TestBuildTableProjectionKeepsOrder(t *testing.T) {
	qs := series(0, 5)
	tbl := BuildTable(qs, []string{"volume", "date", "close"})
	assert.Equal(t, []string{"volume", "date", "close"}, tbl.Names())
	for _, c := range tbl.Columns() {
		assert.Equal(t, len(qs), c.Len(), c.Name())
	}
}

func TestBuildTableOnlyUnknownColumns(t *testing.T) {
	tbl := BuildTable([]models.Quote{sample()}, []string{"bogus", "nope"})
	assert.Equal(t, 0, tbl.Width())
}

func TestBuildTableEmptyInput(t *testing.T) {
	tbl := BuildTable(nil, nil)
	assert.Equal(t, 7, tbl.Width())
	assert.Equal(t, 0, tbl.Height())
}

func TestBuildTableCopiesNaN(t *testing.T) {
	q := sample()
	q.Close = math.NaN()
	tbl := BuildTable([]models.Quote{q}, []string{"close"})
	c, _ := tbl.Column("close")
	assert.True(t, math.IsNaN(c.Value(0).(float64)))
}

func TestCombineDisjointDates(t *testing.T) {
	a := BuildTable(series(0, 2), nil)
	b := BuildTable(series(10*86400, 1), nil)

	out, err := Combine([]*frame.Table{a, b}, []string{"AAA", "BBB"})
	require.NoError(t, err)
	require.Equal(t, 3, out.Height())
	assert.Equal(t, 14, out.Width())

	for _, name := range out.Names() {
		assert.True(t, strings.HasPrefix(name, "AAA ") || strings.HasPrefix(name, "BBB "), name)
	}

	bClose, ok := out.Column("BBB close")
	require.True(t, ok)
	assert.True(t, bClose.IsNull(0))
	assert.True(t, bClose.IsNull(1))
	assert.False(t, bClose.IsNull(2))
}

func TestCombineRowBounds(t *testing.T) {
	a := BuildTable(series(0, 4), nil)
	b := BuildTable(series(2*86400, 4), nil)
	c := BuildTable(series(3*86400, 2), nil)

	out, err := Combine([]*frame.Table{a, b, c}, []string{"A", "B", "C"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, out.Height(), 4)
	assert.LessOrEqual(t, out.Height(), 10)
	// A covers days 0..3, B 2..5, C 3..4; C only joins on A's date axis.
	assert.Equal(t, 7, out.Height())
}

func TestCombineIsDeterministic(t *testing.T) {
	a := BuildTable(series(0, 3), nil)
	b := BuildTable(series(86400, 3), nil)

	first, err := Combine([]*frame.Table{a, b}, []string{"A", "B"})
	require.NoError(t, err)
	second, err := Combine([]*frame.Table{a, b}, []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestCombineSingleTable(t *testing.T) {
	a := BuildTable(series(0, 2), []string{"close"})
	out, err := Combine([]*frame.Table{a}, []string{"AAA"})
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA close"}, out.Names())
}

func TestCombineErrors(t *testing.T) {
	_, err := Combine(nil, nil)
	require.ErrorIs(t, err, models.ErrNoData)

	a := BuildTable(series(0, 1), nil)
	_, err = Combine([]*frame.Table{a, a}, []string{"A"})
	require.ErrorIs(t, err, models.ErrJoin)

	_, err = Combine([]*frame.Table{a, a}, []string{"A", "A"})
	require.ErrorIs(t, err, models.ErrJoin)

	noDate := BuildTable(series(0, 1), []string{"close"})
	_, err = Combine([]*frame.Table{a, noDate}, []string{"A", "B"})
	require.ErrorIs(t, err, models.ErrJoin)
}

func TestBusinessDays(t *testing.T) {
	// 2024-01-05 is a Friday.
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	days := BusinessDays(start, end)
	require.Len(t, days, 3)
	assert.Equal(t, time.Friday, days[0].Weekday())
	assert.Equal(t, time.Monday, days[1].Weekday())
	assert.Equal(t, time.Tuesday, days[2].Weekday())

	assert.Empty(t, BusinessDays(end, start))
}
