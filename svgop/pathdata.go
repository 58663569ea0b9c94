package svgop

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/esimov/iconkit/utils"
)

// Segment is a single path data command with its arguments.
type Segment struct {
	Cmd  byte
	Args []float64
}

// Path is a parsed path data attribute. Implicit command repetitions are
// expanded, so every segment carries exactly one argument set.
type Path []Segment

// argCount returns the number of arguments of a path command.
func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'H', 'h', 'V', 'v':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's', 'Q', 'q':
		return 4
	case 'A', 'a':
		return 7
	case 'Z', 'z':
		return 0
	}
	return -1
}

// ParsePath parses the value of a path "d" attribute.
func ParsePath(d string) (Path, error) {
	var (
		path Path
		cmd  byte
		i    int
	)

	skip := func() {
		for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\t' || d[i] == '\n' || d[i] == '\r') {
			i++
		}
	}

	for {
		skip()
		if i >= len(d) {
			break
		}
		c := d[i]
		if argCount(c) >= 0 {
			cmd = c
			i++
			if cmd == 'Z' || cmd == 'z' {
				path = append(path, Segment{Cmd: cmd})
				continue
			}
		} else if cmd == 0 {
			return nil, fmt.Errorf("path data must start with a command, got %q", c)
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("unexpected %q after closepath at offset %d", c, i)
		}

		n := argCount(cmd)
		args := make([]float64, n)
		for k := 0; k < n; k++ {
			skip()
			if (cmd == 'A' || cmd == 'a') && (k == 3 || k == 4) {
				if i >= len(d) || (d[i] != '0' && d[i] != '1') {
					return nil, fmt.Errorf("invalid arc flag at offset %d", i)
				}
				args[k] = float64(d[i] - '0')
				i++
				continue
			}
			v, next, err := scanNumber(d, i)
			if err != nil {
				return nil, err
			}
			args[k] = v
			i = next
		}
		path = append(path, Segment{Cmd: cmd, Args: args})

		// Coordinate pairs following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	return path, nil
}

// scanNumber reads a floating point number starting at offset i.
func scanNumber(s string, i int) (float64, int, error) {
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, start, fmt.Errorf("expected number at offset %d", start)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, start, fmt.Errorf("invalid number %q", s[start:i])
	}
	return v, i, nil
}

// String formats the path in its canonical compact form. A command letter
// is omitted when it repeats the previous one, except for movetos.
func (p Path) String() string {
	var (
		sb   strings.Builder
		prev byte
	)
	for _, seg := range p {
		repeat := seg.Cmd == prev && seg.Cmd != 'M' && seg.Cmd != 'm' && seg.Cmd != 'Z' && seg.Cmd != 'z'
		if !repeat {
			sb.WriteByte(seg.Cmd)
		}
		for k, v := range seg.Args {
			n := FormatNumber(v)
			if (k > 0 || repeat) && n[0] != '-' {
				sb.WriteByte(' ')
			}
			sb.WriteString(n)
		}
		prev = seg.Cmd
	}
	return sb.String()
}

// Round returns a copy of the path with every argument rounded to the given
// number of decimals. Arc flags are integers and never change.
func (p Path) Round(precision int) Path {
	out := p.clone()
	for _, seg := range out {
		for k := range seg.Args {
			seg.Args[k] = round(seg.Args[k], precision)
		}
	}
	return out
}

// Translate returns a copy of the path moved by (dx, dy). Relative commands
// are unaffected, except a leading relative moveto which is absolute.
func (p Path) Translate(dx, dy float64) Path {
	out := p.clone()
	for i, seg := range out {
		a := seg.Args
		switch seg.Cmd {
		case 'M', 'L', 'T':
			a[0], a[1] = a[0]+dx, a[1]+dy
		case 'm':
			if i == 0 {
				a[0], a[1] = a[0]+dx, a[1]+dy
			}
		case 'H':
			a[0] += dx
		case 'V':
			a[0] += dy
		case 'C':
			for k := 0; k < 6; k += 2 {
				a[k], a[k+1] = a[k]+dx, a[k+1]+dy
			}
		case 'S', 'Q':
			for k := 0; k < 4; k += 2 {
				a[k], a[k+1] = a[k]+dx, a[k+1]+dy
			}
		case 'A':
			a[5], a[6] = a[5]+dx, a[6]+dy
		}
	}
	return out
}

// Absolute returns a copy of the path whose leading relative moveto is
// spelled as an absolute one. Both forms draw the same path, but only the
// absolute one can be appended to another path.
func (p Path) Absolute() Path {
	out := p.clone()
	if len(out) > 0 && out[0].Cmd == 'm' {
		out[0].Cmd = 'M'
	}
	return out
}

func (p Path) clone() Path {
	out := make(Path, len(p))
	for i, seg := range p {
		out[i] = Segment{Cmd: seg.Cmd, Args: append([]float64(nil), seg.Args...)}
	}
	return out
}

// Bounds returns a conservative bounding box of the path in absolute
// coordinates. Control points are included, so curves never escape it.
func (p Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	var (
		cx, cy, sx, sy float64
		qx, qy         float64 // last control point
		prev           byte
	)

	add := func(x, y float64) {
		if !ok {
			minX, minY, maxX, maxY, ok = x, y, x, y, true
			return
		}
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	// reflect returns the implicit first control point of S and T commands.
	reflect := func(after string) (float64, float64) {
		if strings.IndexByte(after, prev) >= 0 {
			return 2*cx - qx, 2*cy - qy
		}
		return cx, cy
	}

	for _, seg := range p {
		a := seg.Args
		ox, oy := 0.0, 0.0
		if seg.Cmd >= 'a' && seg.Cmd <= 'z' {
			ox, oy = cx, cy
		}
		switch seg.Cmd {
		case 'M', 'm':
			cx, cy = ox+a[0], oy+a[1]
			sx, sy = cx, cy
			add(cx, cy)
		case 'L', 'l':
			cx, cy = ox+a[0], oy+a[1]
			add(cx, cy)
		case 'H', 'h':
			cx = ox + a[0]
			add(cx, cy)
		case 'V', 'v':
			cy = oy + a[0]
			add(cx, cy)
		case 'C', 'c':
			add(ox+a[0], oy+a[1])
			qx, qy = ox+a[2], oy+a[3]
			add(qx, qy)
			cx, cy = ox+a[4], oy+a[5]
			add(cx, cy)
		case 'S', 's':
			add(reflect("CcSs"))
			qx, qy = ox+a[0], oy+a[1]
			add(qx, qy)
			cx, cy = ox+a[2], oy+a[3]
			add(cx, cy)
		case 'Q', 'q':
			qx, qy = ox+a[0], oy+a[1]
			add(qx, qy)
			cx, cy = ox+a[2], oy+a[3]
			add(cx, cy)
		case 'T', 't':
			qx, qy = reflect("QqTt")
			add(qx, qy)
			cx, cy = ox+a[0], oy+a[1]
			add(cx, cy)
		case 'A', 'a':
			ex, ey := ox+a[5], oy+a[6]
			// The arc lies on an ellipse through both end points; radii too
			// small for the chord are scaled up to span it.
			r := math.Max(2*utils.Max(utils.Abs(a[0]), utils.Abs(a[1])), math.Hypot(ex-cx, ey-cy))
			add(cx, cy)
			add(ex-r, ey-r)
			add(ex+r, ey+r)
			cx, cy = ex, ey
		case 'Z', 'z':
			cx, cy = sx, sy
		}
		prev = seg.Cmd
	}
	return minX, minY, maxX, maxY, ok
}
