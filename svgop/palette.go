package svgop

import (
	"strings"

	"github.com/beevik/etree"
)

// PaletteOptions configures Recolor.
type PaletteOptions struct {
	// SetAll replaces every color with the given value.
	// Use it only for monotone icon sets.
	SetAll string
	// FillMissing adds the given fill to shapes without any fill.
	FillMissing string
}

// Empty reports whether no rewrite is configured.
func (o PaletteOptions) Empty() bool {
	return o.SetAll == "" && o.FillMissing == ""
}

// fillableTags are the shapes painted by the fill property.
var fillableTags = map[string]bool{
	"path": true, "circle": true, "ellipse": true,
	"polygon": true, "polyline": true, "rect": true,
}

// hiddenScopes hold content that is not painted where it is written.
var hiddenScopes = map[string]bool{
	"defs": true, "clipPath": true, "mask": true, "symbol": true,
	"pattern": true, "marker": true,
}

// Recolor rewrites the colors of an icon according to the options.
func Recolor(markup string, opts PaletteOptions) (string, error) {
	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}
	root := doc.Root()
	if opts.SetAll != "" {
		walk(root, func(e *etree.Element) { setColors(e, opts.SetAll) })
	}
	if opts.FillMissing != "" {
		fillMissing(root, opts.FillMissing, false, false)
	}
	return Serialize(doc)
}

func setColors(e *etree.Element, target string) {
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" && isColorAttr(a.Key) && IsColor(a.Value) {
			a.Value = target
		}
	}

	style := e.SelectAttr("style")
	if style == nil {
		return
	}
	decls := parseStyle(style.Value)
	changed := false
	for i, d := range decls {
		if isColorAttr(strings.ToLower(d.prop)) && IsColor(d.value) {
			decls[i].value = target
			changed = true
		}
	}
	if changed {
		style.Value = formatStyle(decls)
	}
}

// fillMissing walks the painted part of the tree, tracking whether a fill is
// inherited from an ancestor.
func fillMissing(e *etree.Element, target string, inherited, hidden bool) {
	if e.Space == "" && hiddenScopes[e.Tag] {
		hidden = true
	}
	has := hasFill(e)
	if !hidden && !has && !inherited && e.Space == "" && fillableTags[e.Tag] {
		e.CreateAttr("fill", target)
	}
	for _, child := range e.ChildElements() {
		fillMissing(child, target, inherited || has, hidden)
	}
}

func hasFill(e *etree.Element) bool {
	if e.SelectAttr("fill") != nil {
		return true
	}
	if style := e.SelectAttr("style"); style != nil {
		for _, d := range parseStyle(style.Value) {
			if strings.EqualFold(d.prop, "fill") {
				return true
			}
		}
	}
	return false
}
