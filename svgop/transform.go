package svgop

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	translateList = regexp.MustCompile(`^\s*(?:translate\s*\([^()]*\)\s*,?\s*)+$`)
	translateFunc = regexp.MustCompile(`translate\s*\(([^()]*)\)`)
)

// Translate formats a translate transform the way the origin normalizer
// writes it: translate(dx dy).
func Translate(dx, dy float64) string {
	return fmt.Sprintf("translate(%s %s)", FormatNumber(dx), FormatNumber(dy))
}

// parseTranslate reports whether the transform consists of translations only
// and returns their sum.
func parseTranslate(s string) (dx, dy float64, ok bool) {
	if !translateList.MatchString(s) {
		return 0, 0, false
	}
	for _, m := range translateFunc.FindAllStringSubmatch(s, -1) {
		nums, err := parseNumberList(m[1])
		if err != nil || len(nums) == 0 || len(nums) > 2 {
			return 0, 0, false
		}
		dx += nums[0]
		if len(nums) == 2 {
			dy += nums[1]
		}
	}
	return dx, dy, true
}

// joinTransforms composes an outer and an inner transform list. Two pure
// translations collapse into one.
func joinTransforms(outer, inner string) string {
	outer, inner = strings.TrimSpace(outer), strings.TrimSpace(inner)
	if inner == "" {
		return outer
	}
	if outer == "" {
		return inner
	}
	ox, oy, ok1 := parseTranslate(outer)
	ix, iy, ok2 := parseTranslate(inner)
	if ok1 && ok2 {
		return Translate(ox+ix, oy+iy)
	}
	return outer + " " + inner
}

// shapeToPath converts the geometry attributes of a basic shape into path
// data. Shapes it cannot express exactly (rounded rects, units, odd point
// lists) are reported as not convertible.
func shapeToPath(tag string, attr func(string) (string, bool)) (Path, []string, bool) {
	num := func(name string) (float64, bool) {
		s, ok := attr(name)
		if !ok {
			return 0, true
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return v, err == nil
	}

	switch tag {
	case "rect":
		if _, ok := attr("rx"); ok {
			return nil, nil, false
		}
		if _, ok := attr("ry"); ok {
			return nil, nil, false
		}
		x, ok1 := num("x")
		y, ok2 := num("y")
		w, ok3 := num("width")
		h, ok4 := num("height")
		if !(ok1 && ok2 && ok3 && ok4) || w <= 0 || h <= 0 {
			return nil, nil, false
		}
		return Path{
			{Cmd: 'M', Args: []float64{x, y}},
			{Cmd: 'H', Args: []float64{x + w}},
			{Cmd: 'V', Args: []float64{y + h}},
			{Cmd: 'H', Args: []float64{x}},
			{Cmd: 'z'},
		}, []string{"x", "y", "width", "height"}, true
	case "line":
		x1, ok1 := num("x1")
		y1, ok2 := num("y1")
		x2, ok3 := num("x2")
		y2, ok4 := num("y2")
		if !(ok1 && ok2 && ok3 && ok4) {
			return nil, nil, false
		}
		return Path{
			{Cmd: 'M', Args: []float64{x1, y1}},
			{Cmd: 'L', Args: []float64{x2, y2}},
		}, []string{"x1", "y1", "x2", "y2"}, true
	case "polyline", "polygon":
		s, ok := attr("points")
		if !ok {
			return nil, nil, false
		}
		pts, err := parseNumberList(s)
		if err != nil || len(pts) < 4 || len(pts)%2 != 0 {
			return nil, nil, false
		}
		path := Path{{Cmd: 'M', Args: []float64{pts[0], pts[1]}}}
		for i := 2; i < len(pts); i += 2 {
			path = append(path, Segment{Cmd: 'L', Args: []float64{pts[i], pts[i+1]}})
		}
		if tag == "polygon" {
			path = append(path, Segment{Cmd: 'z'})
		}
		return path, []string{"points"}, true
	}
	return nil, nil, false
}
