package svgop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// OptimizeOptions selects the rewrites applied by Optimize.
type OptimizeOptions struct {
	// ConvertShapeToPath rewrites rect, line, polyline and polygon
	// elements as equivalent paths.
	ConvertShapeToPath bool
	// MergePaths joins adjacent sibling paths with identical attributes
	// whose bounding boxes do not touch.
	MergePaths bool
	// CollapseGroups removes redundant groups, pushes group transforms
	// down to the children and folds translations into path data.
	CollapseGroups bool
	// RemoveMetadata drops metadata, title and desc elements as well as
	// editor specific elements and attributes.
	RemoveMetadata bool
	// ConvertColors rewrites color values with their shortest spelling.
	ConvertColors bool
	// Precision is the number of decimals kept in path data.
	// A negative value disables rounding.
	Precision int
}

// DefaultOptimizeOptions returns the options used by the icon build:
// shapes are kept as they are and paths are never merged.
func DefaultOptimizeOptions() OptimizeOptions {
	return OptimizeOptions{
		ConvertShapeToPath: false,
		MergePaths:         false,
		CollapseGroups:     true,
		RemoveMetadata:     true,
		ConvertColors:      true,
		Precision:          3,
	}
}

// editorNamespaces are the namespace prefixes written by vector editors.
var editorNamespaces = map[string]bool{
	"sodipodi": true,
	"inkscape": true,
	"sketch":   true,
	"serif":    true,
	"rdf":      true,
	"cc":       true,
	"dc":       true,
}

// textElements keep their whitespace, since it is rendered.
var textElements = map[string]bool{
	"text":     true,
	"tspan":    true,
	"textPath": true,
	"title":    true,
	"desc":     true,
	"style":    true,
	"script":   true,
}

// Optimize rewrites the markup into a smaller, visually identical document.
// Running it on its own output yields the same markup.
func Optimize(markup string, opts OptimizeOptions) (string, error) {
	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}
	root := doc.Root()

	// Only the root element survives at document level.
	for i := len(doc.Child) - 1; i >= 0; i-- {
		if e, ok := doc.Child[i].(*etree.Element); !ok || e != root {
			doc.RemoveChildAt(i)
		}
	}
	cleanup(root)

	if opts.RemoveMetadata {
		removeMetadata(root)
	}
	if opts.ConvertColors {
		walk(root, convertColors)
	}
	if opts.CollapseGroups {
		collapseGroups(root)
	}
	if opts.ConvertShapeToPath {
		walk(root, convertShape)
	}
	if opts.CollapseGroups {
		if err := walkErr(root, applyPathTransform); err != nil {
			return "", err
		}
	}
	if err := formatPaths(root, opts.Precision); err != nil {
		return "", err
	}
	if opts.MergePaths {
		if err := mergePaths(root); err != nil {
			return "", err
		}
	}
	return Serialize(doc)
}

// walk calls fn for e and every descendant element, parents first.
func walk(e *etree.Element, fn func(*etree.Element)) {
	fn(e)
	for _, child := range e.ChildElements() {
		walk(child, fn)
	}
}

func walkErr(e *etree.Element, fn func(*etree.Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	for _, child := range e.ChildElements() {
		if err := walkErr(child, fn); err != nil {
			return err
		}
	}
	return nil
}

// cleanup removes comments, processing instructions, directives and
// whitespace-only text between elements.
func cleanup(e *etree.Element) {
	keepText := textElements[e.Tag]
	for i := len(e.Child) - 1; i >= 0; i-- {
		switch t := e.Child[i].(type) {
		case *etree.Comment, *etree.ProcInst, *etree.Directive:
			e.RemoveChildAt(i)
		case *etree.CharData:
			if !keepText && t.IsWhitespace() {
				e.RemoveChildAt(i)
			}
		case *etree.Element:
			cleanup(t)
		}
	}
}

func removeMetadata(e *etree.Element) {
	for i := len(e.Child) - 1; i >= 0; i-- {
		child, ok := e.Child[i].(*etree.Element)
		if !ok {
			continue
		}
		if isMetadata(child) {
			e.RemoveChildAt(i)
			continue
		}
		removeMetadata(child)
	}
	attrs := e.Attr[:0]
	for _, a := range e.Attr {
		if editorNamespaces[a.Space] || (a.Space == "xmlns" && editorNamespaces[a.Key]) {
			continue
		}
		if a.Space == "" && a.Key == "version" {
			continue
		}
		attrs = append(attrs, a)
	}
	e.Attr = attrs
}

func isMetadata(e *etree.Element) bool {
	if editorNamespaces[e.Space] {
		return true
	}
	if e.Space != "" {
		return false
	}
	switch e.Tag {
	case "metadata", "title", "desc":
		return true
	}
	return false
}

func convertColors(e *etree.Element) {
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" && isColorAttr(a.Key) {
			a.Value = ShortColor(a.Value)
		}
	}
}

// collapseGroups processes the tree bottom-up, so the eligibility of a group
// only ever depends on its already collapsed content.
func collapseGroups(e *etree.Element) {
	for _, child := range e.ChildElements() {
		collapseGroups(child)
	}

	for i := 0; i < len(e.Child); i++ {
		g, ok := e.Child[i].(*etree.Element)
		if !ok || g.Space != "" || g.Tag != "g" {
			continue
		}
		// Child groups handed a transform are collapsed again, so the
		// transform reaches the leaves in a single pass.
		if pushTransform(g) {
			collapseGroups(g)
		}

		switch kids := g.ChildElements(); {
		case len(g.Child) == 0 && g.SelectAttr("id") == nil:
			e.RemoveChildAt(i)
			i--
		case len(g.Attr) == 0:
			toks := append([]etree.Token(nil), g.Child...)
			e.RemoveChildAt(i)
			for k, t := range toks {
				e.InsertChildAt(i+k, t)
			}
			i += len(toks) - 1
		case len(kids) == 1 && len(g.Child) == 1 && canMoveAttrs(g, kids[0]):
			kid := kids[0]
			for _, a := range g.Attr {
				kid.CreateAttr(a.FullKey(), a.Value)
			}
			e.RemoveChildAt(i)
			e.InsertChildAt(i, kid)
		}
	}
}

// groupOnly lists attributes whose meaning depends on the group itself and
// which therefore pin a group in place.
var groupOnly = []string{"id", "class", "clip-path", "mask", "filter", "style"}

// pushTransform moves the transform of a group onto each of its children.
// It reports whether a child group received the transform.
func pushTransform(g *etree.Element) bool {
	t := g.SelectAttr("transform")
	if t == nil || len(g.Child) == 0 {
		return false
	}
	for _, name := range groupOnly {
		if g.SelectAttr(name) != nil {
			return false
		}
	}
	for _, tok := range g.Child {
		if _, ok := tok.(*etree.Element); !ok {
			return false
		}
	}
	nested := false
	for _, kid := range g.ChildElements() {
		kid.CreateAttr("transform", joinTransforms(t.Value, kid.SelectAttrValue("transform", "")))
		nested = nested || (kid.Space == "" && kid.Tag == "g")
	}
	g.RemoveAttr("transform")
	return nested
}

func canMoveAttrs(g, kid *etree.Element) bool {
	for _, name := range groupOnly {
		if g.SelectAttr(name) != nil {
			return false
		}
	}
	for _, a := range g.Attr {
		if kid.SelectAttr(a.FullKey()) != nil {
			return false
		}
	}
	return true
}

// applyPathTransform folds a pure translation into the path data. Paths
// painted with url() references keep the transform, since the referenced
// paint server would not move along.
func applyPathTransform(e *etree.Element) error {
	if e.Space != "" || e.Tag != "path" {
		return nil
	}
	t := e.SelectAttr("transform")
	d := e.SelectAttr("d")
	if t == nil || d == nil || referencesURL(e) {
		return nil
	}
	dx, dy, ok := parseTranslate(t.Value)
	if !ok {
		return nil
	}
	path, err := ParsePath(d.Value)
	if err != nil {
		return fmt.Errorf("invalid path data: %w", err)
	}
	d.Value = path.Translate(dx, dy).String()
	e.RemoveAttr("transform")
	return nil
}

func referencesURL(e *etree.Element) bool {
	for _, a := range e.Attr {
		if strings.Contains(a.Value, "url(") {
			return true
		}
	}
	return false
}

func convertShape(e *etree.Element) {
	if e.Space != "" {
		return
	}
	path, consumed, ok := shapeToPath(e.Tag, func(name string) (string, bool) {
		a := e.SelectAttr(name)
		if a == nil {
			return "", false
		}
		return a.Value, true
	})
	if !ok {
		return
	}
	for _, name := range consumed {
		e.RemoveAttr(name)
	}
	e.Tag = "path"
	e.CreateAttr("d", path.String())
}

// formatPaths rewrites every path data attribute in canonical form and drops
// paths that draw nothing.
func formatPaths(e *etree.Element, precision int) error {
	for i := len(e.Child) - 1; i >= 0; i-- {
		child, ok := e.Child[i].(*etree.Element)
		if !ok {
			continue
		}
		if err := formatPaths(child, precision); err != nil {
			return err
		}
		if child.Space != "" || child.Tag != "path" {
			continue
		}
		d := child.SelectAttr("d")
		if d == nil {
			continue
		}
		path, err := ParsePath(d.Value)
		if err != nil {
			return fmt.Errorf("invalid path data: %w", err)
		}
		if len(path) == 0 && child.SelectAttr("id") == nil {
			e.RemoveChildAt(i)
			continue
		}
		d.Value = path.Round(precision).String()
	}
	return nil
}

// unmergeable attributes change rendering when two paths become one.
var unmergeable = []string{
	"id", "transform", "style", "clip-path", "mask", "filter",
	"marker-start", "marker-mid", "marker-end",
	"opacity", "fill-opacity", "stroke-opacity",
}

func mergePaths(e *etree.Element) error {
	for _, child := range e.ChildElements() {
		if err := mergePaths(child); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(e.Child); {
		a, okA := e.Child[i].(*etree.Element)
		b, okB := e.Child[i+1].(*etree.Element)
		if !okA || !okB || !mergeable(a) || !mergeable(b) || !sameAttrs(a, b) {
			i++
			continue
		}
		pa, err := ParsePath(a.SelectAttrValue("d", ""))
		if err != nil {
			return fmt.Errorf("invalid path data: %w", err)
		}
		pb, err := ParsePath(b.SelectAttrValue("d", ""))
		if err != nil {
			return fmt.Errorf("invalid path data: %w", err)
		}
		if overlaps(pa, pb) {
			i++
			continue
		}
		a.CreateAttr("d", append(pa, pb.Absolute()...).String())
		e.RemoveChildAt(i + 1)
	}
	return nil
}

func mergeable(e *etree.Element) bool {
	if e.Space != "" || e.Tag != "path" || e.SelectAttr("d") == nil || len(e.Child) > 0 {
		return false
	}
	for _, name := range unmergeable {
		if e.SelectAttr(name) != nil {
			return false
		}
	}
	return !referencesURL(e)
}

// sameAttrs compares every attribute except the path data.
func sameAttrs(a, b *etree.Element) bool {
	key := func(e *etree.Element) string {
		var kv []string
		for _, at := range e.Attr {
			if at.Space == "" && at.Key == "d" {
				continue
			}
			kv = append(kv, at.FullKey()+"="+at.Value)
		}
		sort.Strings(kv)
		return strings.Join(kv, "\x00")
	}
	return key(a) == key(b)
}

// overlaps reports whether the bounding boxes of two paths touch. Touching
// paths are never merged, since overlapping areas could change winding.
func overlaps(a, b Path) bool {
	ax0, ay0, ax1, ay1, okA := a.Bounds()
	bx0, by0, bx1, by1, okB := b.Bounds()
	if !okA || !okB {
		return true
	}
	return ax0 <= bx1 && bx0 <= ax1 && ay0 <= by1 && by0 <= ay1
}
