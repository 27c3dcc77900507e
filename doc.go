// Package texttable renders in-memory tables as plain-text grids.
//
// A [Table] has a fixed set of columns, rows appended over its lifetime, an
// optional footer and an optional title. Rendering re-measures the current
// contents on every call, so column widths always reflect the latest rows:
//
//	t, _ := texttable.NewWithNames("Name", "Value")
//	t.Title = "Data List"
//	_ = t.AddRow("Name1", 1)
//	_ = t.AddFooter("Total", 1)
//	_ = t.RenderTo(os.Stdout, texttable.LayoutStandard)
//
// # Layouts
//
// A [Layout] selects which borders are drawn:
//
//   - [LayoutStandard]: outer borders and a divider between every row
//   - [LayoutCompact]: outer borders, rows packed without dividers
//   - [LayoutMinimal]: no outer borders, rows packed without dividers
//
// # Columns and alignment
//
// Every [Column] carries an [Alignment]. [AlignCenter] puts the odd padding
// space on the right. Cell values are rendered with fmt.Sprint and nil cells
// render empty. Widths count runes; every rune is one display column.
//
// # Footer
//
// The footer is laid out independently of the columns. Its first part is
// left-aligned and stretched so the footer spans the full table width; the
// remaining parts are right-aligned.
//
// # Options
//
// [Options] controls indentation, the ruler and the visibility of the title,
// header and footer. Options can be loaded from YAML with [LoadOptions].
//
// # Sources
//
// Besides [New] and friends, tables can be built from items implementing
// [Rower] with [FromItems], [FromSeq] and [FromChan], from YAML documents with
// [DecodeDefinition], and from CSV with [ReadCSV].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoColumns]: the table has no columns
//   - [ErrNilValues]: AddRow or AddFooter called with nil values
//   - [ErrRowWidth]: a row's value count differs from the column count
//   - [ErrInvalidAlignment]: an unknown alignment
//   - [ErrInvalidLayout]: an unknown layout
//   - [ErrInvalidOptions]: negative indentation or malformed options
//   - [ErrInvalidDefinition]: a malformed table definition
package texttable
