package texttable

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoColumns         = errors.New("no columns")
	ErrNilValues         = errors.New("nil values")
	ErrRowWidth          = errors.New("row width mismatch")
	ErrInvalidAlignment  = errors.New("invalid alignment")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrInvalidOptions    = errors.New("invalid options")
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

var alignNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignCenter: "center",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

func (a Alignment) valid() bool {
	_, ok := alignNames[a]
	return ok
}

// ParseAlignment parses an alignment name. Matching is case-insensitive and
// accepts "centre" as a synonym for "center".
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
}

// UnmarshalYAML decodes an alignment from its name.
func (a *Alignment) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseAlignment(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MarshalYAML encodes an alignment as its name.
func (a Alignment) MarshalYAML() (any, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, int(a))
	}
	return a.String(), nil
}

// Layout controls which structural borders and separators are drawn.
type Layout int

const (
	LayoutStandard Layout = iota // outer borders and a divider between rows
	LayoutCompact                // outer borders, no dividers between rows
	LayoutMinimal                // no outer borders, no dividers between rows
)

var layouts = []Layout{LayoutStandard, LayoutCompact, LayoutMinimal}

var layoutNames = map[Layout]string{
	LayoutStandard: "standard",
	LayoutCompact:  "compact",
	LayoutMinimal:  "minimal",
}

// String returns the layout name.
func (l Layout) String() string {
	if s, ok := layoutNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Layouts returns all supported layouts.
func Layouts() []Layout {
	out := make([]Layout, len(layouts))
	copy(out, layouts)
	return out
}

// ParseLayout parses a layout name. Matching is case-insensitive; the empty
// string and "default" select [LayoutStandard].
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "default" {
		return LayoutStandard, nil
	}
	for _, l := range layouts {
		if layoutNames[l] == name {
			return l, nil
		}
	}
	return LayoutStandard, fmt.Errorf("%w: %q", ErrInvalidLayout, s)
}

// UnmarshalYAML decodes a layout from its name.
func (l *Layout) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseLayout(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Layout) valid() bool {
	_, ok := layoutNames[l]
	return ok
}

func (l Layout) showOuterBorder() bool { return l != LayoutMinimal }

func (l Layout) showRowSeparator() bool { return l == LayoutStandard }
