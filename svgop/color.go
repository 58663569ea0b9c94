package svgop

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// colorAttrs lists the presentation attributes holding a paint or color value.
var colorAttrs = []string{"fill", "stroke", "stop-color", "flood-color", "lighting-color"}

// shortNames maps an opaque color to the shortest CSS name spelling it,
// used when the name is shorter than the hex notation.
var shortNames = func() map[color.RGBA]string {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	m := make(map[color.RGBA]string, len(names))
	for _, name := range names {
		c := colornames.Map[name]
		if prev, ok := m[c]; ok && len(prev) <= len(name) {
			continue
		}
		m[c] = name
	}
	return m
}()

// IsColor reports whether a paint value names an actual color. Keywords
// like none, inherit or transparent and url() references are not colors.
func IsColor(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "", v == "none", v == "inherit", v == "transparent":
		return false
	case v == "currentcolor":
		return true
	case strings.HasPrefix(v, "url("):
		return false
	case strings.HasPrefix(v, "#"):
		_, ok := parseHex(v[1:])
		return ok
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba(") ||
		strings.HasPrefix(v, "hsl(") || strings.HasPrefix(v, "hsla("):
		return strings.HasSuffix(v, ")")
	}
	_, ok := colornames.Map[v]
	return ok
}

// ShortColor returns the shortest equivalent spelling of an opaque color
// value. Values it does not understand are returned unchanged.
func ShortColor(v string) string {
	c, ok := parseOpaque(v)
	if !ok {
		return v
	}
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	if hex[1] == hex[2] && hex[3] == hex[4] && hex[5] == hex[6] {
		hex = "#" + string(hex[1]) + string(hex[3]) + string(hex[5])
	}
	if name, ok := shortNames[c]; ok && len(name) < len(hex) {
		return name
	}
	return hex
}

// parseOpaque parses hex, rgb() and named colors without transparency.
func parseOpaque(v string) (color.RGBA, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if strings.HasPrefix(v, "#") {
		c, ok := parseHex(v[1:])
		if !ok || c.A != 0xff {
			return color.RGBA{}, false
		}
		return c, true
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		parts := strings.Split(v[4:len(v)-1], ",")
		if len(parts) != 3 {
			return color.RGBA{}, false
		}
		var ch [3]uint8
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil || n < 0 || n > 255 {
				return color.RGBA{}, false
			}
			ch[i] = uint8(n)
		}
		return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}, true
	}
	c, ok := colornames.Map[v]
	return c, ok
}

// parseHex parses the "RGB", "RGBA", "RRGGBB" and "RRGGBBAA" notations.
func parseHex(hex string) (color.RGBA, bool) {
	var n [4]uint64
	n[3] = 0xff

	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			n[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(hex)/2; i++ {
			d, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return color.RGBA{}, false
			}
			n[i] = d
		}
	default:
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n[0]), G: uint8(n[1]), B: uint8(n[2]), A: uint8(n[3])}, true
}

// styleDecl is one "property: value" pair of a style attribute.
type styleDecl struct {
	prop, value string
}

func parseStyle(s string) []styleDecl {
	var decls []styleDecl
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		decls = append(decls, styleDecl{prop: prop, value: strings.TrimSpace(value)})
	}
	return decls
}

func formatStyle(decls []styleDecl) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ":" + d.value
	}
	return strings.Join(parts, ";")
}

func isColorAttr(name string) bool {
	for _, a := range colorAttrs {
		if a == name {
			return true
		}
	}
	return false
}
