package core

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// MissingDisplay is how a missing value is rendered in previews.
const MissingDisplay = "<NA>"

// Info writes a structural summary: row count, then one line per column
// with its position, name, non-missing count and dtype.
func (t *Table) Info(w io.Writer) error {
	rows := make([][]string, len(t.Columns))
	for i, c := range t.Columns {
		rows[i] = []string{
			strconv.Itoa(i),
			c.Name,
			fmt.Sprintf("%d non-null", c.Len()-c.Missing()),
			c.Type.String(),
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Column", "Non-Null Count", "Dtype").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\nData columns (total %d columns):\n%s\n%s\n",
		t.indexLine(), len(t.Columns), tbl.String(), t.dtypeCounts())
	return err
}

// Render writes a tabular preview of the first n rows.
func (t *Table) Render(w io.Writer, n int) error {
	head := t.Head(n)
	rows := make([][]string, head.Len())
	for r := range rows {
		row := make([]string, 0, len(head.Columns)+1)
		row = append(row, strconv.Itoa(r))
		for _, c := range head.Columns {
			row = append(row, FormatValue(c.Value(r)))
		}
		rows[r] = row
	}

	headers := append([]string{""}, head.ColumnNames()...)
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n[%d rows x %d columns]\n", tbl.String(), t.Len(), len(t.Columns))
	return err
}

// FormatValue formats a cell value for display. nil renders as MissingDisplay.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return MissingDisplay
	case float64:
		switch {
		case math.IsInf(val, 1):
			return "inf"
		case math.IsInf(val, -1):
			return "-inf"
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (t *Table) indexLine() string {
	if t.rows == 0 {
		return "RangeIndex: 0 entries"
	}
	return fmt.Sprintf("RangeIndex: %d entries, 0 to %d", t.rows, t.rows-1)
}

// dtypeCounts returns e.g. "dtypes: float64(12), Int64(1), string(1)".
func (t *Table) dtypeCounts() string {
	counts := make(map[FieldType]int)
	for _, c := range t.Columns {
		counts[c.Type]++
	}
	out := "dtypes:"
	sep := " "
	for _, typ := range []FieldType{FieldFloat, FieldInt, FieldText, FieldRaw} {
		if counts[typ] == 0 {
			continue
		}
		out += fmt.Sprintf("%s%s(%d)", sep, typ, counts[typ])
		sep = ", "
	}
	return out
}
