package core

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// Column is a named, homogeneous sequence of nullable values.
// Exactly one of the backing slices is populated, chosen by Type.
type Column struct {
	Name string
	Type FieldType

	floats []pgtype.Float8
	ints   []pgtype.Int8
	texts  []pgtype.Text // FieldText and FieldRaw
}

// newColumn allocates a column with capacity for n values.
func newColumn(name string, typ FieldType, n int) *Column {
	c := &Column{Name: name, Type: typ}
	switch typ {
	case FieldFloat:
		c.floats = make([]pgtype.Float8, 0, n)
	case FieldInt:
		c.ints = make([]pgtype.Int8, 0, n)
	default:
		c.texts = make([]pgtype.Text, 0, n)
	}
	return c
}

// appendCell coerces a raw cell and appends it.
// present is false when the row was too short to contain this column.
func (c *Column) appendCell(raw string, present bool) {
	switch c.Type {
	case FieldFloat:
		if !present {
			c.floats = append(c.floats, pgtype.Float8{})
			return
		}
		c.floats = append(c.floats, ToPgFloat8(raw))
	case FieldInt:
		if !present {
			c.ints = append(c.ints, pgtype.Int8{})
			return
		}
		c.ints = append(c.ints, ToPgInt8(raw))
	case FieldText:
		if !present {
			c.texts = append(c.texts, pgtype.Text{})
			return
		}
		c.texts = append(c.texts, ToPgText(raw))
	default:
		if !present {
			c.texts = append(c.texts, pgtype.Text{})
			return
		}
		c.texts = append(c.texts, ToPgRaw(raw))
	}
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	switch c.Type {
	case FieldFloat:
		return len(c.floats)
	case FieldInt:
		return len(c.ints)
	default:
		return len(c.texts)
	}
}

// Floats returns the values of a float column, or nil for other types.
func (c *Column) Floats() []pgtype.Float8 { return c.floats }

// Ints returns the values of an int column, or nil for other types.
func (c *Column) Ints() []pgtype.Int8 { return c.ints }

// Texts returns the values of a text or raw column, or nil for other types.
func (c *Column) Texts() []pgtype.Text { return c.texts }

// IsMissing reports whether the value at row i is the missing marker.
func (c *Column) IsMissing(i int) bool {
	switch c.Type {
	case FieldFloat:
		return !c.floats[i].Valid
	case FieldInt:
		return !c.ints[i].Valid
	default:
		return !c.texts[i].Valid
	}
}

// Value returns the value at row i as float64, int64 or string.
// Missing values are returned as nil.
func (c *Column) Value(i int) any {
	if c.IsMissing(i) {
		return nil
	}
	switch c.Type {
	case FieldFloat:
		return c.floats[i].Float64
	case FieldInt:
		return c.ints[i].Int64
	default:
		return c.texts[i].String
	}
}

// Missing returns the number of missing values.
func (c *Column) Missing() int {
	n := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}
	return n
}

// slice returns a copy of the first n values.
func (c *Column) slice(n int) *Column {
	out := &Column{Name: c.Name, Type: c.Type}
	switch c.Type {
	case FieldFloat:
		out.floats = append([]pgtype.Float8(nil), c.floats[:n]...)
	case FieldInt:
		out.ints = append([]pgtype.Int8(nil), c.ints[:n]...)
	default:
		out.texts = append([]pgtype.Text(nil), c.texts[:n]...)
	}
	return out
}

// Table is an ordered set of equal-length columns.
// Rows have no identity beyond their position.
type Table struct {
	Columns []*Column
	rows    int
}

// Len returns the row count.
func (t *Table) Len() int { return t.rows }

// ColumnNames returns the column names in file order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Row returns row i keyed by column name. Missing values map to nil.
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= t.rows {
		return nil, fmt.Errorf("row %d out of range [0,%d)", i, t.rows)
	}
	row := make(map[string]any, len(t.Columns))
	for _, c := range t.Columns {
		row[c.Name] = c.Value(i)
	}
	return row, nil
}

// Head returns a new table holding the first n rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.rows {
		n = t.rows
	}
	out := &Table{Columns: make([]*Column, len(t.Columns)), rows: n}
	for i, c := range t.Columns {
		out.Columns[i] = c.slice(n)
	}
	return out
}
