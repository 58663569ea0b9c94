package svgop

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// allowedTags is the set of SVG elements an icon may contain.
var allowedTags = map[string]bool{
	"svg": true, "g": true, "defs": true, "use": true, "symbol": true,
	"path": true, "circle": true, "ellipse": true, "line": true,
	"polyline": true, "polygon": true, "rect": true,
	"clipPath": true, "mask": true, "pattern": true, "marker": true,
	"linearGradient": true, "radialGradient": true, "stop": true,
	"filter": true, "feBlend": true, "feColorMatrix": true,
	"feComponentTransfer": true, "feComposite": true, "feConvolveMatrix": true,
	"feDiffuseLighting": true, "feDisplacementMap": true, "feDistantLight": true,
	"feDropShadow": true, "feFlood": true, "feFuncA": true, "feFuncB": true,
	"feFuncG": true, "feFuncR": true, "feGaussianBlur": true, "feMerge": true,
	"feMergeNode": true, "feMorphology": true, "feOffset": true,
	"fePointLight": true, "feSpecularLighting": true, "feSpotLight": true,
	"feTile": true, "feTurbulence": true,
	"animate": true, "animateMotion": true, "animateTransform": true,
	"set": true, "mpath": true,
}

// strippedTags carry no rendering and are silently removed.
var strippedTags = map[string]bool{
	"metadata": true,
	"title":    true,
	"desc":     true,
}

// forbiddenTags are rejected with a dedicated message: they embed scripts,
// foreign content, raster images or text depending on installed fonts.
var forbiddenTags = map[string]bool{
	"script": true, "style": true, "foreignObject": true, "iframe": true,
	"image": true, "feImage": true, "text": true, "tspan": true,
	"textPath": true, "a": true, "switch": true, "font": true,
	"font-face": true, "glyph": true,
}

// ValidateTags checks the structure of an icon. Editor and metadata elements,
// event handler attributes and editor attributes are stripped; forbidden or
// unknown elements and references to external resources are rejected.
func ValidateTags(markup string) (string, error) {
	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}
	if err := checkElement(doc.Root()); err != nil {
		return "", err
	}
	return Serialize(doc)
}

func checkElement(e *etree.Element) error {
	attrs := e.Attr[:0]
	for _, a := range e.Attr {
		if editorNamespaces[a.Space] || (a.Space == "xmlns" && editorNamespaces[a.Key]) {
			continue
		}
		if a.Space == "" && strings.HasPrefix(strings.ToLower(a.Key), "on") {
			continue
		}
		if a.Key == "href" && (a.Space == "" || a.Space == "xlink") {
			if !strings.HasPrefix(strings.TrimSpace(a.Value), "#") {
				return fmt.Errorf("external reference %q in <%s>", a.Value, e.FullTag())
			}
		}
		attrs = append(attrs, a)
	}
	e.Attr = attrs

	for i := len(e.Child) - 1; i >= 0; i-- {
		child, ok := e.Child[i].(*etree.Element)
		if !ok {
			continue
		}
		switch {
		case editorNamespaces[child.Space]:
			e.RemoveChildAt(i)
			continue
		case child.Space != "":
			return fmt.Errorf("unsupported tag <%s>", child.FullTag())
		case strippedTags[child.Tag]:
			e.RemoveChildAt(i)
			continue
		case forbiddenTags[child.Tag]:
			return fmt.Errorf("forbidden tag <%s>", child.Tag)
		case !allowedTags[child.Tag]:
			return fmt.Errorf("unsupported tag <%s>", child.Tag)
		}
		if err := checkElement(child); err != nil {
			return err
		}
	}
	return nil
}
