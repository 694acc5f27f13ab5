package canvas

import (
	"bytes"
	"fmt"
)

type segmentKind int

const (
	segLine segmentKind = iota
	segQuad
	segCubic
)

// segment is one curve piece. p1 and p2 are control points (unused for
// lines), p3 is the end point. For lines only p3 is set.
type segment struct {
	kind       segmentKind
	p1, p2, p3 Point
}

// Path is a sequence of line and Bézier segments. Like a painter path,
// the current point starts at the origin, so a path may begin directly
// with a curve segment.
type Path struct {
	start  Point
	cur    Point
	segs   []segment
	closed bool
}

// NewPath returns an empty path with the current point at the origin.
func NewPath() *Path {
	return &Path{}
}

// MoveTo sets the starting point. It must be called before any segments
// are added; moving mid-path is not supported (subpaths are separate
// Path values).
func (p *Path) MoveTo(x, y float64) {
	if len(p.segs) == 0 {
		p.start = Point{X: x, Y: y}
		p.cur = p.start
	}
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.segs = append(p.segs, segment{kind: segLine, p3: Point{X: x, Y: y}})
	p.cur = Point{X: x, Y: y}
}

// QuadTo appends a quadratic Bézier with control point (cx, cy) ending at
// (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.segs = append(p.segs, segment{
		kind: segQuad,
		p1:   Point{X: cx, Y: cy},
		p3:   Point{X: x, Y: y},
	})
	p.cur = Point{X: x, Y: y}
}

// CubicTo appends a cubic Bézier with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.segs = append(p.segs, segment{
		kind: segCubic,
		p1:   Point{X: c1x, Y: c1y},
		p2:   Point{X: c2x, Y: c2y},
		p3:   Point{X: x, Y: y},
	})
	p.cur = Point{X: x, Y: y}
}

// Close marks the path as closed; serialization appends a Z command.
func (p *Path) Close() {
	p.closed = true
}

// PointAt evaluates the path at t in [0,1], distributing t evenly across
// segments and evaluating each Bézier parametrically. Values outside the
// domain are clamped.
func (p *Path) PointAt(t float64) Point {
	n := len(p.segs)
	if n == 0 {
		return p.start
	}
	if t <= 0 {
		return p.start
	}
	if t >= 1 {
		return p.segs[n-1].p3
	}

	scaled := t * float64(n)
	idx := int(scaled)
	if idx >= n {
		idx = n - 1
	}
	u := scaled - float64(idx)

	from := p.start
	if idx > 0 {
		from = p.segs[idx-1].p3
	}
	return p.segs[idx].eval(from, u)
}

// eval returns the point at parameter u on the segment starting at from.
func (s segment) eval(from Point, u float64) Point {
	v := 1 - u
	switch s.kind {
	case segQuad:
		return Point{
			X: v*v*from.X + 2*v*u*s.p1.X + u*u*s.p3.X,
			Y: v*v*from.Y + 2*v*u*s.p1.Y + u*u*s.p3.Y,
		}
	case segCubic:
		return Point{
			X: v*v*v*from.X + 3*v*v*u*s.p1.X + 3*v*u*u*s.p2.X + u*u*u*s.p3.X,
			Y: v*v*v*from.Y + 3*v*v*u*s.p1.Y + 3*v*u*u*s.p2.Y + u*u*u*s.p3.Y,
		}
	default:
		return Point{X: from.X + (s.p3.X-from.X)*u, Y: from.Y + (s.p3.Y-from.Y)*u}
	}
}

// data serializes the path as an SVG path data string with every
// coordinate transformed through m.
func (p *Path) data(m matrix) string {
	var buf bytes.Buffer
	writePoint(&buf, "M", m.apply(p.start))
	for _, s := range p.segs {
		switch s.kind {
		case segQuad:
			writePoint(&buf, " Q", m.apply(s.p1))
			writePoint(&buf, " ", m.apply(s.p3))
		case segCubic:
			writePoint(&buf, " C", m.apply(s.p1))
			writePoint(&buf, " ", m.apply(s.p2))
			writePoint(&buf, " ", m.apply(s.p3))
		default:
			writePoint(&buf, " L", m.apply(s.p3))
		}
	}
	if p.closed {
		buf.WriteString(" Z")
	}
	return buf.String()
}

func writePoint(buf *bytes.Buffer, prefix string, pt Point) {
	fmt.Fprintf(buf, "%s%s %s", prefix, fmtFloat(pt.X), fmtFloat(pt.Y))
}
