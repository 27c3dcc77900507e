package texttable

// Rower provides row data. Required by [FromItems].
type Rower interface {
	Row() []string
}

// Headed provides column names. Without it, columns are unnamed and the
// header is hidden.
type Headed interface {
	Header() []string
}

// Titled provides the table title.
// Default: no title.
type Titled interface {
	Title() string
}

// Aligned sets per-column alignment.
// Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Footered provides footer parts.
// Default: no footer.
type Footered interface {
	Footer() []string
}

// FromItems builds a table with one row per item. Table-level metadata
// (header, title, alignments, footer) is read from the first item, or from
// the zero value of T when items is empty, so those methods must tolerate a
// zero receiver.
func FromItems[T Rower](items ...T) (*Table, error) {
	var first any
	if len(items) > 0 {
		first = items[0]
	} else {
		var zero T
		first = zero
	}

	var header []string
	headed := false
	if h, ok := first.(Headed); ok {
		header = h.Header()
		headed = true
	}
	numCols := len(header)
	if !headed && len(items) > 0 {
		numCols = len(items[0].Row())
	}

	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}

	columns := make([]Column, numCols)
	for i := range columns {
		if i < len(header) {
			columns[i].Name = header[i]
		}
		if i < len(aligns) {
			columns[i].Align = aligns[i]
		}
	}

	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	t.Options.ShowHeader = headed
	if tt, ok := first.(Titled); ok {
		t.Title = tt.Title()
	}

	for _, item := range items {
		if err := t.AddRow(stringsToCells(item.Row())...); err != nil {
			return nil, err
		}
	}

	if f, ok := first.(Footered); ok {
		if parts := f.Footer(); len(parts) > 0 {
			if err := t.AddFooter(stringsToCells(parts)...); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func stringsToCells(ss []string) []any {
	cells := make([]any, len(ss))
	for i, s := range ss {
		cells[i] = s
	}
	return cells
}
