package texttable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/texttable"
)

const dataListYAML = `
title: Data List
layout: minimal
columns:
  - Name
  - name: Value1
  - {name: Value2, align: left}
  - Value3
rows:
  - [Name1, 1, "2", 23.06.1988]
  - [Name2, 2, "3", 10.09.1985]
  - [Name3, 3, "4", 16.05.1991]
footer: [Test footer content part 1, part 2]
`

func TestDecodeDefinition(t *testing.T) {
	t.Parallel()
	def, err := texttable.DecodeDefinition(strings.NewReader(dataListYAML))
	require.NoError(t, err)
	assert.Equal(t, texttable.LayoutMinimal, def.Layout)
	assert.Nil(t, def.Options)

	tbl, err := def.Table()
	require.NoError(t, err)
	got, err := tbl.RenderString(texttable.LayoutStandard)
	require.NoError(t, err)
	assert.Equal(t, goldenCases()["title header footer standard"].want, got)

	got, err = tbl.RenderString(def.Layout)
	require.NoError(t, err)
	assert.Equal(t, goldenCases()["title header footer minimal"].want, got)
}

func TestDefinitionColumns(t *testing.T) {
	t.Parallel()
	def, err := texttable.DecodeDefinition(strings.NewReader(`
columns:
  - Plain
  - {name: Right, align: right}
  - {name: Middle, align: centre}
`))
	require.NoError(t, err)
	assert.Equal(t, []texttable.Column{
		{Name: "Plain", Align: texttable.AlignLeft},
		{Name: "Right", Align: texttable.AlignRight},
		{Name: "Middle", Align: texttable.AlignCenter},
	}, def.Columns)
}

func TestDefinitionOptions(t *testing.T) {
	t.Parallel()
	def, err := texttable.DecodeDefinition(strings.NewReader(`
options:
  indent: 2
  show_header: false
columns: [A, B]
rows:
  - [a, ~]
`))
	require.NoError(t, err)
	tbl, err := def.Table()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Options.Indent)
	assert.Equal(t, 1, tbl.Options.ContentIndent, "unset keys keep their defaults")
	assert.False(t, tbl.Options.ShowHeader)
	assert.True(t, tbl.Options.ShowFooter)
	assert.NotNil(t, tbl.Options.Output)

	got, err := tbl.RenderString(texttable.LayoutCompact)
	require.NoError(t, err)
	assert.Equal(t, grid(
		"  +---+--+",
		"  | a |  |",
		"  +---+--+",
	), got)
}

func TestDefinitionErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input     string
		decodeErr error
		tableErr  []error
	}{
		"empty document": {
			input:     "",
			decodeErr: texttable.ErrInvalidDefinition,
		},
		"malformed yaml": {
			input:     "columns: [a, b\n",
			decodeErr: texttable.ErrInvalidDefinition,
		},
		"bad alignment": {
			input:     "columns:\n  - {name: A, align: diagonal}\n",
			decodeErr: texttable.ErrInvalidAlignment,
		},
		"bad layout": {
			input:     "layout: fancy\ncolumns: [A]\n",
			decodeErr: texttable.ErrInvalidLayout,
		},
		"no columns": {
			input:    "title: nothing\n",
			tableErr: []error{texttable.ErrInvalidDefinition, texttable.ErrNoColumns},
		},
		"short row": {
			input:    "columns: [A, B]\nrows:\n  - [a]\n",
			tableErr: []error{texttable.ErrInvalidDefinition, texttable.ErrRowWidth},
		},
		"empty row": {
			input:    "columns: [A]\nrows:\n  - []\n",
			tableErr: []error{texttable.ErrInvalidDefinition, texttable.ErrRowWidth},
		},
		"negative indent": {
			input:    "options: {indent: -3}\ncolumns: [A]\n",
			tableErr: []error{texttable.ErrInvalidDefinition, texttable.ErrInvalidOptions},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			def, err := texttable.DecodeDefinition(strings.NewReader(tt.input))
			if tt.decodeErr != nil {
				require.ErrorIs(t, err, tt.decodeErr)
				return
			}
			require.NoError(t, err)
			_, err = def.Table()
			for _, want := range tt.tableErr {
				require.ErrorIs(t, err, want)
			}
		})
	}
}

func TestReadCSV(t *testing.T) {
	t.Parallel()
	input := "Name,Qty,Note\nwidget,12,\"a, b\"\ngadget,3,\n"
	tbl, err := texttable.ReadCSV(strings.NewReader(input), texttable.AlignLeft, texttable.AlignRight)
	require.NoError(t, err)
	assert.Equal(t, []texttable.Column{
		{Name: "Name"},
		{Name: "Qty", Align: texttable.AlignRight},
		{Name: "Note"},
	}, tbl.Columns())

	got, err := tbl.RenderString(texttable.LayoutCompact)
	require.NoError(t, err)
	assert.Equal(t, grid(
		"+--------+-----+------+",
		"| Name   | Qty | Note |",
		"+--------+-----+------+",
		"| widget |  12 | a, b |",
		"| gadget |   3 |      |",
		"+--------+-----+------+",
	), got)
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()
	_, err := texttable.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, texttable.ErrNoColumns)

	_, err = texttable.ReadCSV(strings.NewReader("A,B\n1,2,3\n"))
	require.ErrorIs(t, err, texttable.ErrInvalidDefinition)

	_, err = texttable.ReadCSV(strings.NewReader("A\n1\n"), texttable.Alignment(8))
	require.ErrorIs(t, err, texttable.ErrInvalidAlignment)
}
