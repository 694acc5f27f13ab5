// Package canvas implements a minimal retained-mode 2D vector surface.
//
// A Canvas records filled and stroked primitives through an affine
// transform stack (translate/rotate/scale with push/pop) and serializes
// them to a standalone SVG document. Transforms are baked into absolute
// coordinates when a primitive is recorded, so the output contains only
// <path>, <circle> and <polygon> elements with solid fills and strokes —
// no groups, no transform attributes, no external references.
package canvas

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseColor parses a "#RRGGBB" hex string.
func ParseColor(s string) (Color, error) {
	var c Color
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Point is a coordinate in canvas space.
type Point struct {
	X, Y float64
}

// matrix is a 2D affine transform using the SVG convention:
// x' = A*x + C*y + E, y' = B*x + D*y + F.
type matrix struct {
	A, B, C, D, E, F float64
}

func identity() matrix {
	return matrix{A: 1, D: 1}
}

func (m matrix) mul(n matrix) matrix {
	return matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m matrix) apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// scaleFactor is the uniform length scale of the transform. It is derived
// from the determinant so reflections do not flip stroke widths or radii
// negative.
func (m matrix) scaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

// Canvas is a vector drawing surface with a fixed pixel size.
// It is not safe for concurrent use.
type Canvas struct {
	width, height int
	ctm           matrix
	stack         []matrix
	elems         []element
}

// New creates an empty canvas of the given size. Width and height must be
// positive; the caller is expected to validate them at its own boundary.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		ctm:    identity(),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Push saves the current transform; Pop restores it.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.ctm)
}

// Pop restores the most recently pushed transform. Popping an empty stack
// resets to identity.
func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		c.ctm = c.stack[n-1]
		c.stack = c.stack[:n-1]
		return
	}
	c.ctm = identity()
}

// Translate moves the origin by (dx, dy) in the current coordinate system.
func (c *Canvas) Translate(dx, dy float64) {
	c.ctm = c.ctm.mul(matrix{A: 1, D: 1, E: dx, F: dy})
}

// Rotate rotates the coordinate system by deg degrees around the origin.
func (c *Canvas) Rotate(deg float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	c.ctm = c.ctm.mul(matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Scale scales the coordinate system. Negative factors mirror.
func (c *Canvas) Scale(sx, sy float64) {
	c.ctm = c.ctm.mul(matrix{A: sx, D: sy})
}

// FillPath records p filled with the given color.
func (c *Canvas) FillPath(p *Path, fill Color) {
	c.elems = append(c.elems, pathElement{
		d:    p.data(c.ctm),
		fill: fill.Hex(),
	})
}

// StrokePath records p stroked with the given color and width. The width
// is scaled by the current transform, matching how a painter pen behaves.
func (c *Canvas) StrokePath(p *Path, stroke Color, width float64) {
	c.elems = append(c.elems, pathElement{
		d:           p.data(c.ctm),
		stroke:      stroke.Hex(),
		strokeWidth: width * c.ctm.scaleFactor(),
	})
}

// FillCircle records a filled circle centered at (cx, cy) in the current
// coordinate system. Only conformal transforms (rotation, translation,
// uniform scale, mirroring) keep circles circular; those are the only
// transforms the plant engine uses.
func (c *Canvas) FillCircle(cx, cy, r float64, fill Color) {
	center := c.ctm.apply(Point{X: cx, Y: cy})
	c.elems = append(c.elems, circleElement{
		cx:   center.X,
		cy:   center.Y,
		r:    r * c.ctm.scaleFactor(),
		fill: fill.Hex(),
	})
}

// FillPolygon records a filled polygon through the given vertices.
func (c *Canvas) FillPolygon(fill Color, pts ...Point) {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = c.ctm.apply(p)
	}
	c.elems = append(c.elems, polygonElement{points: out, fill: fill.Hex()})
}

// element is a recorded primitive that can write itself as SVG.
type element interface {
	write(buf *bytes.Buffer)
}

type pathElement struct {
	d           string
	fill        string // empty for stroke-only paths
	stroke      string
	strokeWidth float64
}

func (e pathElement) write(buf *bytes.Buffer) {
	if e.stroke != "" {
		fmt.Fprintf(buf, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`+"\n",
			e.d, e.stroke, fmtFloat(e.strokeWidth))
		return
	}
	fmt.Fprintf(buf, `  <path d="%s" fill="%s"/>`+"\n", e.d, e.fill)
}

type circleElement struct {
	cx, cy, r float64
	fill      string
}

func (e circleElement) write(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		fmtFloat(e.cx), fmtFloat(e.cy), fmtFloat(e.r), e.fill)
}

type polygonElement struct {
	points []Point
	fill   string
}

func (e polygonElement) write(buf *bytes.Buffer) {
	var pts bytes.Buffer
	for i, p := range e.points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%s,%s", fmtFloat(p.X), fmtFloat(p.Y))
	}
	fmt.Fprintf(buf, `  <polygon points="%s" fill="%s"/>`+"\n", pts.String(), e.fill)
}

// SVG serializes the canvas to a standalone SVG document sized exactly to
// the canvas dimensions with a matching viewBox. Serialization is a pure
// function of the recorded elements: the same canvas state always yields
// byte-identical output.
func (c *Canvas) SVG() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		c.width, c.height, c.width, c.height)
	for _, e := range c.elems {
		e.write(&buf)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// WriteFile writes the SVG document to path. The content is written to a
// temporary file in the same directory and renamed into place, so the
// destination never holds a partial document.
func (c *Canvas) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".verdant-*.svg")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(c.SVG()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write svg: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// fmtFloat formats a coordinate with two decimal places, the precision
// used throughout the generated SVG.
func fmtFloat(v float64) string {
	// Avoid "-0.00" so output is stable across sign-of-zero differences.
	if v > -0.005 && v < 0.005 {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}
