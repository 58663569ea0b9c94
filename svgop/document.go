package svgop

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the SVG namespace written on synthesized root elements.
const Namespace = "http://www.w3.org/2000/svg"

// ErrNoRoot is returned when the markup holds no element at all.
var ErrNoRoot = errors.New("missing root element")

// Box holds the viewport of an icon: the offset of the artwork from the
// origin and its intrinsic dimensions.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// Parse decodes the markup into a document with exactly one <svg> root element.
func Parse(markup string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("malformed svg: %w", err)
	}

	var roots int
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if !t.IsWhitespace() {
				return nil, errors.New("malformed svg: text outside of the root element")
			}
		}
	}
	if roots == 0 {
		return nil, ErrNoRoot
	}
	if roots > 1 {
		return nil, fmt.Errorf("malformed svg: expected a single root element, got %d", roots)
	}
	if root := doc.Root(); root.Tag != "svg" {
		return nil, fmt.Errorf("malformed svg: root element is <%s>, not <svg>", root.FullTag())
	}
	return doc, nil
}

// Serialize writes the document back to a compact markup string.
func Serialize(doc *etree.Document) (string, error) {
	doc.WriteSettings.CanonicalEndTags = false
	return doc.WriteToString()
}

// Inspect parses the markup and returns its viewport.
func Inspect(markup string) (Box, error) {
	doc, err := Parse(markup)
	if err != nil {
		return Box{}, err
	}
	return Measure(doc.Root())
}

// Measure reads the viewport of an <svg> element. The viewBox attribute wins;
// without it the width and height attributes are used and the offset is zero.
func Measure(root *etree.Element) (Box, error) {
	var box Box

	if vb := root.SelectAttrValue("viewBox", ""); strings.TrimSpace(vb) != "" {
		nums, err := parseNumberList(vb)
		if err != nil || len(nums) != 4 {
			return box, fmt.Errorf("invalid viewBox %q", vb)
		}
		box = Box{Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]}
	} else {
		w, err := parseLength(root.SelectAttrValue("width", ""))
		if err != nil {
			return box, fmt.Errorf("invalid width: %w", err)
		}
		h, err := parseLength(root.SelectAttrValue("height", ""))
		if err != nil {
			return box, fmt.Errorf("invalid height: %w", err)
		}
		box = Box{Width: w, Height: h}
	}

	if box.Width <= 0 || box.Height <= 0 {
		return box, fmt.Errorf("icon dimensions must be positive, got %sx%s",
			FormatNumber(box.Width), FormatNumber(box.Height))
	}
	return box, nil
}

// viewportAttrs describe the old root viewport and are not carried over.
var viewportAttrs = map[string]bool{
	"xmlns": true, "width": true, "height": true, "viewBox": true,
	"x": true, "y": true, "version": true, "preserveAspectRatio": true,
}

// Reorigin moves the artwork of an icon whose viewport starts at a non-zero
// offset to the origin. The root is replaced by a fresh <svg> element sized
// to the viewport and the content is wrapped in a translating group.
// Prefixed namespace declarations of the old root are carried over.
func Reorigin(markup string, box Box) (string, error) {
	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}
	old := doc.Root()

	w, h := FormatNumber(box.Width), FormatNumber(box.Height)
	root := etree.NewElement("svg")
	root.CreateAttr("width", w)
	root.CreateAttr("height", h)
	root.CreateAttr("viewBox", "0 0 "+w+" "+h)
	root.CreateAttr("xmlns", Namespace)
	g := root.CreateElement("g")
	g.CreateAttr("transform", Translate(-box.Left, -box.Top))

	// Inherited presentation attributes of the old root move to the group.
	for _, a := range old.Attr {
		switch {
		case a.Space == "xmlns":
			root.CreateAttr(a.FullKey(), a.Value)
		case a.Space == "" && viewportAttrs[a.Key]:
		default:
			g.CreateAttr(a.FullKey(), a.Value)
		}
	}
	for _, tok := range append([]etree.Token(nil), old.Child...) {
		g.AddChild(tok)
	}

	out := etree.NewDocument()
	out.SetRoot(root)
	return Serialize(out)
}

// FormatNumber formats a float with the shortest representation that
// round-trips, never emitting a negative zero.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round rounds v to the given number of decimals. A negative precision
// leaves the value untouched.
func round(v float64, precision int) float64 {
	if precision < 0 {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

func parseNumberList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		nums = append(nums, v)
	}
	return nums, nil
}

func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	if s == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unsupported length %q", s)
	}
	return v, nil
}
