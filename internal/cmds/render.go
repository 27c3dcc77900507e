package cmds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bjaus/texttable"
	"github.com/bjaus/texttable/internal/logger"
)

func newRenderCmd() *cli.Command {
	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "render a table definition as a text grid",
		Description: `Render reads a YAML table definition, or CSV data with --csv, from a file
or from stdin when no file (or "-") is given, and writes the rendered table
to stdout or to the file named by --output.

Option precedence, lowest first: defaults, the definition's options block,
the --options file, individual flags.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Usage:   "Layout (standard, compact, minimal)",
				Validator: func(s string) error {
					_, err := texttable.ParseLayout(s)
					return err
				},
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Read CSV input; the first record names the columns",
			},
			&cli.StringFlag{
				Name:  "align",
				Usage: "Comma-separated column alignments for CSV input (left, right, center)",
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "Table title",
			},
			&cli.IntFlag{
				Name:  "indent",
				Usage: "Spaces before every line",
			},
			&cli.IntFlag{
				Name:  "content-indent",
				Usage: "Spaces on each side of a cell",
			},
			&cli.BoolFlag{
				Name:  "ruler",
				Usage: "Print a column ruler above the table",
			},
			&cli.BoolFlag{
				Name:  "no-title",
				Usage: "Hide the title",
			},
			&cli.BoolFlag{
				Name:  "no-header",
				Usage: "Hide the header",
			},
			&cli.BoolFlag{
				Name:  "no-footer",
				Usage: "Hide the footer",
			},
			&cli.StringFlag{
				Name:  "options",
				Usage: "YAML file with rendering options",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
		},
		Action: runRender,
	}
}

func runRender(ctx context.Context, c *cli.Command) error {
	path := c.StringArg("file")
	in, err := openInput(c.Root().Reader, path)
	if err != nil {
		return err
	}
	defer in.Close()

	var (
		t      *texttable.Table
		layout texttable.Layout
	)
	if c.Bool("csv") {
		aligns, err := parseAligns(c.String("align"))
		if err != nil {
			return err
		}
		t, err = texttable.ReadCSV(in, aligns...)
		if err != nil {
			return fmt.Errorf("read csv %s: %w", inputName(path), err)
		}
		if extra := len(aligns) - len(t.Columns()); extra > 0 {
			logger.Warn("Ignoring alignments beyond the last column",
				"input", inputName(path),
				"columns", len(t.Columns()),
				"ignored", extra,
			)
		}
	} else {
		def, err := texttable.DecodeDefinition(in)
		if err != nil {
			return fmt.Errorf("read definition %s: %w", inputName(path), err)
		}
		t, err = def.Table()
		if err != nil {
			return fmt.Errorf("build table %s: %w", inputName(path), err)
		}
		layout = def.Layout
	}

	if err := applyFlags(c, t); err != nil {
		return err
	}
	if c.IsSet("layout") {
		// Already checked by the flag validator.
		layout, _ = texttable.ParseLayout(c.String("layout"))
	}

	logger.Debug("Rendering table",
		"input", inputName(path),
		"layout", layout,
		"columns", len(t.Columns()),
		"rows", t.Len(),
	)

	if out := c.String("output"); out != "" {
		if err := t.WriteFile(out, layout); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("Wrote table", "file", out)
		return nil
	}
	return t.WriteStream(c.Root().Writer, layout)
}

// applyFlags overrides the table's title and options with the flags that were
// set on the command line.
func applyFlags(c *cli.Command, t *texttable.Table) error {
	if file := c.String("options"); file != "" {
		opts, err := texttable.MergeOptionsFile(file, t.Options)
		if err != nil {
			return fmt.Errorf("load options %s: %w", file, err)
		}
		t.Options = opts
	}
	if c.IsSet("title") {
		t.Title = c.String("title")
	}
	if c.IsSet("indent") {
		t.Options.Indent = c.Int("indent")
	}
	if c.IsSet("content-indent") {
		t.Options.ContentIndent = c.Int("content-indent")
	}
	if c.Bool("ruler") {
		t.Options.ShowRuler = true
	}
	if c.Bool("no-title") {
		t.Options.ShowTitle = false
	}
	if c.Bool("no-header") {
		t.Options.ShowHeader = false
	}
	if c.Bool("no-footer") {
		t.Options.ShowFooter = false
	}
	return t.Options.Validate()
}

func parseAligns(s string) ([]texttable.Alignment, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var aligns []texttable.Alignment
	for _, name := range strings.Split(s, ",") {
		a, err := texttable.ParseAlignment(name)
		if err != nil {
			return nil, err
		}
		aligns = append(aligns, a)
	}
	return aligns, nil
}

func openInput(stdin io.Reader, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, errors.New("no input: pass a file or pipe data on stdin")
		}
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}
