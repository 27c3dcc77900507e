package texttable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a column from either a bare name or a mapping with
// name and align keys.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}
		*c = Col(name)
		return nil
	}
	type plain Column
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*c = Column(p)
	return nil
}

// Definition is a table described as a YAML document:
//
//	title: Data List
//	layout: compact
//	options:
//	  indent: 2
//	columns:
//	  - Name
//	  - {name: Value, align: right}
//	rows:
//	  - [Name1, 1]
//	footer: [Total, 1]
type Definition struct {
	Title   string   `yaml:"title"`
	Layout  Layout   `yaml:"layout"`
	Options *Options `yaml:"options"`
	Columns []Column `yaml:"columns"`
	Rows    [][]any  `yaml:"rows"`
	Footer  []any    `yaml:"footer"`
}

// DecodeDefinition reads a YAML table definition from r.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	var d Definition
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	return &d, nil
}

// Table builds the table the definition describes. Options missing from the
// definition keep their defaults.
func (d *Definition) Table() (*Table, error) {
	if len(d.Columns) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, ErrNoColumns)
	}
	t, err := New(d.Columns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	t.Title = d.Title
	if d.Options != nil {
		if err := d.Options.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		out := t.Options.Output
		t.Options = *d.Options
		t.Options.Output = out
	}
	for i, row := range d.Rows {
		if row == nil {
			row = []any{}
		}
		if err := t.AddRow(row...); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidDefinition, i+1, err)
		}
	}
	if len(d.Footer) > 0 {
		if err := t.AddFooter(d.Footer...); err != nil {
			return nil, fmt.Errorf("%w: footer: %w", ErrInvalidDefinition, err)
		}
	}
	return t, nil
}

// ReadCSV builds a table from CSV data. The first record names the columns;
// aligns sets the alignment of the leading columns and may be shorter than
// the header. Every following record becomes a row.
func ReadCSV(r io.Reader, aligns ...Alignment) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, ErrNoColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Col(name)
		if i < len(aligns) {
			columns[i].Align = aligns[i]
		}
	}
	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
		}
		if err := t.AddRow(stringsToCells(record)...); err != nil {
			return nil, err
		}
	}
	return t, nil
}
