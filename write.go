package texttable

import (
	"bufio"
	"errors"
	"io"
	"os"
)

// WriteConsole renders the table to standard output.
func (t *Table) WriteConsole(layout Layout) error {
	return t.WriteStream(os.Stdout, layout)
}

// WriteFile renders the table to the file at path, creating or truncating it.
// The file is not created when the table cannot be rendered.
func (t *Table) WriteFile(path string, layout Layout) (err error) {
	ctx, err := t.newRenderContext(layout)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	bw := bufio.NewWriter(f)
	if err := ctx.render(bw); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteStream renders the table to w through a buffer that is flushed before
// WriteStream returns.
func (t *Table) WriteStream(w io.Writer, layout Layout) error {
	bw := bufio.NewWriter(w)
	if err := t.RenderTo(bw, layout); err != nil {
		return err
	}
	return bw.Flush()
}
