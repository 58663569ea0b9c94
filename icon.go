package iconkit

import (
	"errors"
	"strings"

	"github.com/esimov/iconkit/svgop"
)

// Icon holds the markup of a single icon together with the geometry derived
// from its root element. Values are immutable: stages produce new icons
// through Load.
type Icon struct {
	key string

	// Markup is a well-formed SVG document with a single <svg> root.
	Markup string
	// Width and Height are the viewport dimensions, always positive.
	Width, Height float64
	// Left and Top are the offset of the viewport from the origin.
	Left, Top float64
}

// NewIcon parses the markup and derives the icon geometry.
func NewIcon(key, markup string) (Icon, error) {
	if key == "" {
		return Icon{}, errors.New("icon key is empty")
	}
	box, err := svgop.Inspect(markup)
	if err != nil {
		return Icon{}, err
	}
	return Icon{
		key:    key,
		Markup: markup,
		Width:  box.Width,
		Height: box.Height,
		Left:   box.Left,
		Top:    box.Top,
	}, nil
}

// Key returns the unique identifier of the icon.
func (i Icon) Key() string { return i.key }

// HasDefs reports whether the markup holds a <defs> block.
func (i Icon) HasDefs() bool {
	return strings.Contains(i.Markup, "<defs")
}

// Load returns a copy of the icon with the given markup and the geometry
// derived from it. The key is preserved.
func (i Icon) Load(markup string) (Icon, error) {
	return NewIcon(i.key, markup)
}
