package frame

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// String renders the table as aligned text: a shape line, a header row, a
// dtype row and one line per row.
func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "shape: (%d, %d)\n", t.height, len(t.columns))
	if len(t.columns) == 0 {
		return b.String()
	}

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	row := make([]string, len(t.columns))
	for i, c := range t.columns {
		row[i] = c.Name()
	}
	fmt.Fprintln(w, strings.Join(row, "\t"))
	for i, c := range t.columns {
		row[i] = string(c.DType())
	}
	fmt.Fprintln(w, strings.Join(row, "\t"))
	for r := 0; r < t.height; r++ {
		for i, c := range t.columns {
			row[i] = c.Format(r)
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	// Flush only fails when the underlying writer does; a strings.Builder never does.
	_ = w.Flush()
	return b.String()
}
