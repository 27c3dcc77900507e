package texttable

import (
	"fmt"
	"slices"
)

// Column is a named table column with its content alignment.
type Column struct {
	Name  string    `yaml:"name"`
	Align Alignment `yaml:"align"`
}

// Col returns a left-aligned column.
func Col(name string) Column { return Column{Name: name} }

// ColAligned returns a column with the given alignment.
func ColAligned(name string, align Alignment) Column {
	return Column{Name: name, Align: align}
}

// Table is an in-memory table: a fixed set of columns, rows appended over its
// lifetime, an optional footer and title. Rendering never mutates a table.
//
// A Table is not safe for concurrent use; callers must not add rows while a
// render is in progress.
type Table struct {
	// Title is drawn centered above the header when non-empty and
	// Options.ShowTitle is set.
	Title string

	Options Options

	columns []Column
	rows    [][]any
	footer  []any
}

// New returns a table with the given columns and [DefaultOptions].
func New(columns ...Column) (*Table, error) {
	return newTable(columns)
}

// NewWithNames returns a table of left-aligned columns.
func NewWithNames(names ...string) (*Table, error) {
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Col(name)
	}
	return newTable(columns)
}

// NewWithAlignments returns a table whose i-th column is named names[i] and
// aligned by aligns[i]. The two slices must have the same length.
func NewWithAlignments(names []string, aligns []Alignment) (*Table, error) {
	if len(names) != len(aligns) {
		return nil, fmt.Errorf("%w: %d names, %d alignments", ErrInvalidAlignment, len(names), len(aligns))
	}
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = ColAligned(name, aligns[i])
	}
	return newTable(columns)
}

func newTable(columns []Column) (*Table, error) {
	for i, c := range columns {
		if !c.Align.valid() {
			return nil, fmt.Errorf("%w: column %d (%q): %s", ErrInvalidAlignment, i, c.Name, c.Align)
		}
	}
	return &Table{
		Options: DefaultOptions(),
		columns: slices.Clone(columns),
	}, nil
}

// AddRow appends a row. Cells are rendered with fmt.Sprint; nil cells render
// empty. The row must have exactly one value per column. A rejected row leaves
// the table unchanged.
func (t *Table) AddRow(values ...any) error {
	if values == nil {
		return fmt.Errorf("%w: row", ErrNilValues)
	}
	if len(t.columns) == 0 {
		return fmt.Errorf("%w: set the columns before adding rows", ErrNoColumns)
	}
	if len(values) != len(t.columns) {
		return fmt.Errorf("%w: table has %d columns, row has %d values", ErrRowWidth, len(t.columns), len(values))
	}
	t.rows = append(t.rows, slices.Clone(values))
	return nil
}

// AddFooter appends parts to the footer. The footer is laid out
// independently of the columns, so any number of parts is accepted.
func (t *Table) AddFooter(values ...any) error {
	if values == nil {
		return fmt.Errorf("%w: footer", ErrNilValues)
	}
	t.footer = append(t.footer, values...)
	return nil
}

// Columns returns a copy of the table's columns.
func (t *Table) Columns() []Column { return slices.Clone(t.columns) }

// Rows returns a copy of the table's rows.
func (t *Table) Rows() [][]any {
	out := make([][]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Footer returns a copy of the footer parts.
func (t *Table) Footer() []any { return slices.Clone(t.footer) }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }
