package texttable

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// renderContext holds everything derived from a table for a single render
// call. It is built once, before any output is written, and never changes.
type renderContext struct {
	layout     Layout
	indent     string
	pad        string
	title      string
	columns    []Column
	rows       [][]string
	footer     []string
	widths     []int
	tableWidth int
	divider    string

	showRuler  bool
	showTitle  bool
	showHeader bool
	showFooter bool
}

func (t *Table) newRenderContext(layout Layout) (*renderContext, error) {
	if !layout.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, layout)
	}
	opts := t.Options
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(t.columns) == 0 {
		return nil, fmt.Errorf("%w: nothing to render", ErrNoColumns)
	}
	for i, c := range t.columns {
		if !c.Align.valid() {
			return nil, fmt.Errorf("%w: column %d (%q): %s", ErrInvalidAlignment, i, c.Name, c.Align)
		}
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellText(v)
		}
		rows[i] = cells
	}
	footer := make([]string, len(t.footer))
	for i, v := range t.footer {
		footer[i] = cellText(v)
	}

	ctx := &renderContext{
		layout:     layout,
		indent:     strings.Repeat(" ", opts.Indent),
		pad:        strings.Repeat(" ", opts.ContentIndent),
		title:      t.Title,
		columns:    t.columns,
		rows:       rows,
		footer:     footer,
		showRuler:  opts.ShowRuler,
		showTitle:  opts.ShowTitle && t.Title != "",
		showHeader: opts.ShowHeader,
		showFooter: opts.ShowFooter && len(footer) > 0,
	}
	ctx.widths = computeWidths(t.columns, rows, ctx.showHeader)
	ctx.tableWidth = spanWidth(ctx.widths, opts.ContentIndent)
	ctx.divider = ctx.columnDivider(opts.ContentIndent)
	return ctx, nil
}

// RenderTo writes the table to w using the given layout. Nothing is written
// when the table or its options cannot be rendered.
func (t *Table) RenderTo(w io.Writer, layout Layout) error {
	ctx, err := t.newRenderContext(layout)
	if err != nil {
		return err
	}
	return ctx.render(w)
}

// Render writes the table to Options.Output, or os.Stdout when that is nil.
func (t *Table) Render(layout Layout) error {
	w := t.Options.Output
	if w == nil {
		w = os.Stdout
	}
	return t.RenderTo(w, layout)
}

// RenderString returns the rendered table with its lines joined by "\n" and
// no trailing newline.
func (t *Table) RenderString(layout Layout) (string, error) {
	var sb strings.Builder
	if err := t.RenderTo(&sb, layout); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func (c *renderContext) render(w io.Writer) error {
	if c.showRuler {
		if err := c.writeRuler(w); err != nil {
			return err
		}
	}
	if c.showTitle {
		if err := c.writeTitle(w); err != nil {
			return err
		}
	}
	if c.showHeader {
		if err := c.writeHeader(w); err != nil {
			return err
		}
	}
	if err := c.writeRows(w); err != nil {
		return err
	}
	if c.showFooter {
		return c.writeFooter(w)
	}
	return nil
}

// writeRuler writes two lines of column numbers spanning the table: the tens
// digit above every tenth column, then the units digit of every column.
func (c *renderContext) writeRuler(w io.Writer) error {
	var tens, units strings.Builder
	tens.WriteString(c.indent)
	units.WriteString(c.indent)
	for x := 1; x <= c.tableWidth; x++ {
		if x%10 == 0 {
			tens.WriteByte(byte('0' + (x/10)%10))
		} else {
			tens.WriteByte(' ')
		}
		units.WriteByte(byte('0' + x%10))
	}
	if _, err := fmt.Fprintln(w, tens.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, units.String())
	return err
}

func (c *renderContext) writeTitle(w io.Writer) error {
	if c.layout.showOuterBorder() {
		if _, err := fmt.Fprintln(w, c.frame()); err != nil {
			return err
		}
	}
	title := alignCell(c.title, c.tableWidth-2, AlignCenter)
	_, err := fmt.Fprintf(w, "%s|%s|\n", c.indent, title)
	return err
}

func (c *renderContext) writeHeader(w io.Writer) error {
	if c.layout.showOuterBorder() || c.showTitle {
		if _, err := fmt.Fprintln(w, c.divider); err != nil {
			return err
		}
	}
	names := make([]string, len(c.columns))
	for i, col := range c.columns {
		names[i] = col.Name
	}
	_, err := fmt.Fprintln(w, c.contentLine(names, c.widths, c.columnAlign))
	return err
}

// writeRows writes the data rows framed by dividers. The divider before the
// first row is drawn when anything was drawn above it; the divider after the
// last row is drawn when a footer or a bottom border follows. Without rows the
// two collapse into a single divider.
func (c *renderContext) writeRows(w io.Writer) error {
	opening := c.layout.showOuterBorder() || c.showTitle || c.showHeader
	closing := c.layout.showOuterBorder() || c.showFooter

	if len(c.rows) == 0 {
		if opening && closing {
			_, err := fmt.Fprintln(w, c.divider)
			return err
		}
		return nil
	}

	if opening {
		if _, err := fmt.Fprintln(w, c.divider); err != nil {
			return err
		}
	}
	for i, row := range c.rows {
		if i > 0 && c.layout.showRowSeparator() {
			if _, err := fmt.Fprintln(w, c.divider); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, c.contentLine(row, c.widths, c.columnAlign)); err != nil {
			return err
		}
	}
	if closing {
		if _, err := fmt.Fprintln(w, c.divider); err != nil {
			return err
		}
	}
	return nil
}

// writeFooter writes the footer line. The first part is left-aligned and
// stretched so the line spans the table; the remaining parts are
// right-aligned.
func (c *renderContext) writeFooter(w io.Writer) error {
	widths := footerWidths(c.footer, len(c.pad), c.tableWidth)
	align := func(i int) Alignment {
		if i == 0 {
			return AlignLeft
		}
		return AlignRight
	}
	if _, err := fmt.Fprintln(w, c.contentLine(c.footer, widths, align)); err != nil {
		return err
	}
	if c.layout.showOuterBorder() {
		_, err := fmt.Fprintln(w, c.frame())
		return err
	}
	return nil
}

func (c *renderContext) columnAlign(i int) Alignment { return c.columns[i].Align }

// frame returns a full-width border line without column junctions.
func (c *renderContext) frame() string {
	return c.indent + "+" + strings.Repeat("-", c.tableWidth-2) + "+"
}

// columnDivider returns a border line with a junction at every column
// boundary.
func (c *renderContext) columnDivider(contentIndent int) string {
	var sb strings.Builder
	sb.WriteString(c.indent)
	sb.WriteString("+")
	for _, width := range c.widths {
		sb.WriteString(strings.Repeat("-", width+2*contentIndent))
		sb.WriteString("+")
	}
	return sb.String()
}

func (c *renderContext) contentLine(cells []string, widths []int, align func(int) Alignment) string {
	var sb strings.Builder
	sb.WriteString(c.indent)
	for i, width := range widths {
		sb.WriteString("|")
		sb.WriteString(c.pad)
		sb.WriteString(alignCell(cells[i], width, align(i)))
		sb.WriteString(c.pad)
	}
	sb.WriteString("|")
	return sb.String()
}

// alignCell pads s to width. Center alignment puts the odd space on the
// right. Text wider than width is returned unchanged.
func alignCell(s string, width int, align Alignment) string {
	pad := width - textWidth(s)
	if pad < 0 {
		pad = 0
	}
	switch align {
	case AlignLeft:
		return s + strings.Repeat(" ", pad)
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		panic(fmt.Sprintf("texttable: unknown alignment %d", int(align)))
	}
}
