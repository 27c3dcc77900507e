package texttable

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// cellText converts a cell value to the text that is rendered for it. Nil
// values, typed or untyped, render as empty text.
func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return ""
		}
	}
	return fmt.Sprint(v)
}

// textWidth is the number of display columns s occupies. One rune is one
// column.
func textWidth(s string) int { return utf8.RuneCountInString(s) }

// computeWidths returns the content width of every column. Column names only
// count when the header is drawn.
func computeWidths(columns []Column, rows [][]string, withHeader bool) []int {
	widths := make([]int, len(columns))
	if withHeader {
		for i, c := range columns {
			widths[i] = textWidth(c.Name)
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := textWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// spanWidth returns the full width of a line made of cells of the given
// content widths: both outer border characters, the content indent on each
// side of every cell and one separator between neighbouring cells.
func spanWidth(widths []int, contentIndent int) int {
	n := 2
	for _, w := range widths {
		n += w + 2*contentIndent
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

// footerWidths returns the width each footer part is padded to. The first
// part absorbs whatever is needed for the footer line to span tableWidth.
func footerWidths(parts []string, contentIndent, tableWidth int) []int {
	widths := make([]int, len(parts))
	for i, p := range parts {
		widths[i] = textWidth(p)
	}
	if len(widths) == 0 {
		return widths
	}
	rest := spanWidth(widths, contentIndent) - widths[0]
	widths[0] = tableWidth - rest
	return widths
}
