package plant

import (
	"math"

	"github.com/verdant-cli/verdant/pkg/canvas"
)

// pelletShape selects one of the four interchangeable petal silhouettes
// arranged radially around a CircularFlower's center.
type pelletShape int

const (
	pelletCircular pelletShape = iota
	pelletTriangle
	pelletRound
	pelletDip
)

// generateLeaves freezes count leaves: position fraction along the stem,
// size coefficient, and orientation sign. With exactly two leaves the
// signs alternate so the leaves sit on opposite sides; otherwise each
// leaf picks a side at random.
func (p *Plant) generateLeaves(count int) {
	d := p.params.deficit
	leaves := make([]leaf, count)
	for i := range leaves {
		orient := p.sign()
		if count == 2 {
			orient = (float64(i) - 0.5) * 2
		}
		leaves[i] = leaf{
			pos:    p.uniform(d*0.25, d*0.40),
			size:   p.uniform(0.9, 1.1),
			orient: orient,
		}
	}
	p.params.leaves = leaves
}

// generateFlower freezes the stem endpoint lean, the two leaves, and the
// stem width.
func (p *Plant) generateFlower() {
	p.params.xCoeff = p.uniform(0.4, 1) * p.sign()
	p.generateLeaves(2)
	p.params.stemWidth = p.uniform(3.5, 4) * p.ageCoefficient
}

// generatePellets freezes the CircularFlower layer: accent color, pellet
// count, silhouette, and center scale. The round and dip silhouettes only
// tile cleanly five ways, so choosing either forces the count to 5.
func (p *Plant) generatePellets() {
	p.params.accent = p.palette.Accents[p.rng.IntN(len(p.palette.Accents))]
	p.params.pelletCount = 5 + p.rng.IntN(3)
	p.params.centerScale = p.uniform(0.75, 0.85)

	p.params.pellet = pelletShape(p.rng.IntN(4))
	if p.params.pellet == pelletRound || p.params.pellet == pelletDip {
		p.params.pelletCount = 5
	}
}

// drawFlower draws the stem and leaves and returns the smoothed-age stem
// endpoint, which the pellet layer anchors to.
func (p *Plant) drawFlower(c *canvas.Canvas, u float64) (x, y float64) {
	d := p.params.deficit
	ac := p.ageCoefficient
	sm := Smooth(p.age)

	x = u / 9 * p.params.xCoeff * sm
	y = u / 2.5 * d * ac * sm

	// Stem: one quadratic from the origin, bulging toward the lean.
	stem := canvas.NewPath()
	stem.QuadTo(0, y*0.6, x, y)
	c.StrokePath(stem, p.palette.Stem, p.params.stemWidth*sm)

	leafSize := u / 7 * d * ac
	for _, lf := range p.params.leaves {
		c.Push()

		at := stem.PointAt(lf.pos)
		c.Translate(at.X, at.Y)
		c.Rotate(radToDeg(lf.orient))

		// Lean the leaf with the stem's local direction.
		if y != 0 {
			c.Rotate(-radToDeg(math.Sin(x / y)))
		}

		// Mirror so both leaves face the same way.
		if lf.orient < 0 {
			c.Scale(-1, 1)
		}

		ls := leafSize * sm * sm * lf.size
		blade := canvas.NewPath()
		blade.QuadTo(0.4*ls, 0.5*ls, 0, ls)
		blade.CubicTo(0, 0.5*ls, -0.4*ls, 0.4*ls, 0, 0)
		blade.Close()
		c.FillPath(blade, p.palette.Stem)

		c.Pop()
	}
	return x, y
}

// drawPellets draws the radial pellet arrangement and the white center on
// top of the flower, anchored at the stem endpoint (x, y).
func (p *Plant) drawPellets(c *canvas.Canvas, u float64, x, y float64) {
	c.Push()
	defer c.Pop()

	c.Translate(x, y)

	size := u / 9 * p.params.deficit * p.ageCoefficient * Smooth(p.age)
	step := 360 / float64(p.params.pelletCount)
	for range p.params.pelletCount {
		p.drawPellet(c, size)
		c.Rotate(step)
	}

	center := size * p.params.centerScale
	c.FillCircle(0, 0, center/2, p.palette.Center)
}

// drawPellet draws one pellet of the frozen silhouette with its base at
// the origin, pointing along +y.
func (p *Plant) drawPellet(c *canvas.Canvas, size float64) {
	fill := p.params.accent

	switch p.params.pellet {
	case pelletCircular:
		c.FillCircle(size/2, size/2, size/2, fill)

	case pelletTriangle:
		s := size * 1.5
		path := canvas.NewPath()
		path.QuadTo(0.9*s, 0.5*s, 0, s)
		path.QuadTo(-0.5*s, 0.4*s, 0, 0)
		path.Close()
		c.FillPath(path, fill)

	case pelletRound:
		s := size * 1.3
		path := canvas.NewPath()
		path.QuadTo(0.8*s, 0.9*s, 0, s)
		path.QuadTo(-0.8*s, 0.9*s, 0, 0)
		path.Close()
		c.FillPath(path, fill)

	case pelletDip:
		s := size * 1.2
		path := canvas.NewPath()
		path.QuadTo(s, 1.4*s, 0, s)
		path.QuadTo(-s, 1.4*s, 0, 0)
		path.Close()
		c.FillPath(path, fill)
	}
}
