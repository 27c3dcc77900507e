package texttable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls how a table is rendered. A table reads its options at the
// start of every render call, so changes take effect on the next render.
type Options struct {
	// Indent is the number of spaces written before every line.
	Indent int `yaml:"indent"`

	// ContentIndent is the number of spaces on each side of a cell's text.
	ContentIndent int `yaml:"content_indent"`

	ShowRuler  bool `yaml:"show_ruler"`
	ShowTitle  bool `yaml:"show_title"`
	ShowHeader bool `yaml:"show_header"`
	ShowFooter bool `yaml:"show_footer"`

	// Output is the default sink for [Table.Render]. Nil means os.Stdout.
	Output io.Writer `yaml:"-"`
}

// DefaultOptions returns the options every new table starts with.
func DefaultOptions() Options {
	return Options{
		Indent:        0,
		ContentIndent: 1,
		ShowRuler:     false,
		ShowTitle:     true,
		ShowHeader:    true,
		ShowFooter:    true,
		Output:        os.Stdout,
	}
}

// Validate reports whether the options can be rendered.
func (o Options) Validate() error {
	if o.Indent < 0 {
		return fmt.Errorf("%w: indent %d is negative", ErrInvalidOptions, o.Indent)
	}
	if o.ContentIndent < 0 {
		return fmt.Errorf("%w: content indent %d is negative", ErrInvalidOptions, o.ContentIndent)
	}
	return nil
}

// UnmarshalYAML decodes options on top of [DefaultOptions], so keys missing
// from the document keep their defaults.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	type plain Options
	p := plain(DefaultOptions())
	if err := node.Decode(&p); err != nil {
		return err
	}
	*o = Options(p)
	return nil
}

// LoadOptions decodes YAML options from r on top of [DefaultOptions]. Keys
// missing from the document keep their default values. An empty document
// yields the defaults.
func LoadOptions(r io.Reader) (Options, error) {
	return MergeOptions(r, DefaultOptions())
}

// MergeOptions decodes YAML options from r on top of base. Keys missing from
// the document keep the value they have in base, and Output is never changed.
func MergeOptions(r io.Reader, base Options) (Options, error) {
	type plain Options
	p := plain(base)
	var node yaml.Node
	err := yaml.NewDecoder(r).Decode(&node)
	if err == nil {
		err = node.Decode(&p)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	opts := Options(p)
	opts.Output = base.Output
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadOptionsFile reads options from the YAML file at path.
func LoadOptionsFile(path string) (Options, error) {
	return MergeOptionsFile(path, DefaultOptions())
}

// MergeOptionsFile reads options from the YAML file at path on top of base.
func MergeOptionsFile(path string, base Options) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return Options{}, err
	}
	defer f.Close()
	return MergeOptions(f, base)
}
