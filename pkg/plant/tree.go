package plant

import (
	"math"

	"github.com/verdant-cli/verdant/pkg/canvas"
)

// Trunk and branch proportions relative to the base unit. The helpers
// take the length they scale so callers can pass partial heights
// (e.g. the height up to a branch attachment point).

func (p *Plant) baseWidth(v float64) float64 {
	return v / 15 * p.params.deficit * p.ageCoefficient
}

func (p *Plant) baseHeight(v float64) float64 {
	return v / 1.7 * p.params.deficit * p.ageCoefficient
}

func (p *Plant) branchWidth(v float64) float64 {
	return v / 18 * p.params.deficit * p.ageCoefficient
}

func (p *Plant) branchHeight(v float64) float64 {
	return v / 2.7 * p.params.deficit * p.ageCoefficient
}

// generateBranches freezes count secondary branches. The rotation is
// ±acos(uniform(0.4, 0.6)): drawing the cosine uniformly in a band gives
// a natural spread of branch angles instead of a flat angle distribution.
// With exactly two branches the signs alternate.
func (p *Plant) generateBranches(count int) {
	d := p.params.deficit
	branches := make([]branch, count)
	for i := range branches {
		orient := p.sign()
		if count == 2 {
			orient = (float64(i) - 0.5) * 2
		}
		branches[i] = branch{
			pos: p.uniform(d*0.45, d*0.55),
			rot: orient * math.Acos(p.uniform(0.4, 0.6)),
		}
	}
	p.params.branches = branches
}

// generateTree freezes one or two branches; short runs (small age
// coefficient) tend toward a single branch.
func (p *Plant) generateTree() {
	count := int(math.Round(p.uniform(1, 2*p.ageCoefficient)))
	p.generateBranches(count)
}

// generateFruit freezes the OrangeTree layer. Orange trees always carry
// two branches (it just looks better), so the branches are re-frozen at
// that count before a circle is assigned per branch plus one for the
// trunk apex (the last entry).
func (p *Plant) generateFruit() {
	p.generateBranches(2)

	d := p.params.deficit
	circles := make([]fruitCircle, len(p.params.branches)+1)
	for i := range circles {
		circles[i] = fruitCircle{
			size: p.uniform(d*0.30, d*0.37),
			pos:  p.uniform(d*0.9, d),
		}
	}
	p.params.fruit = circles
}

// drawTree draws the trunk triangle and the secondary branches. Branches
// grow on the adjusted (squared) age so they visually lag the trunk, and
// taper by (1 - position) the higher they attach.
func (p *Plant) drawTree(c *canvas.Canvas, u float64) {
	sm := Smooth(p.age)
	adj := Smooth(p.adjustedAge())

	c.FillPolygon(p.palette.Trunk,
		canvas.Point{X: -p.baseWidth(u) * sm},
		canvas.Point{X: p.baseWidth(u) * sm},
		canvas.Point{Y: p.baseHeight(u) * sm},
	)

	for _, br := range p.params.branches {
		c.Push()

		c.Translate(0, p.baseHeight(u*br.pos*sm))
		c.Rotate(radToDeg(br.rot))

		taper := adj * (1 - br.pos)
		c.FillPolygon(p.palette.Trunk,
			canvas.Point{X: -p.branchWidth(u) * taper},
			canvas.Point{X: p.branchWidth(u) * taper},
			canvas.Point{Y: p.branchHeight(u) * taper},
		)

		c.Pop()
	}
}

// drawFruit draws one filled circle near the top of each branch and a
// 1.3x larger one at the trunk apex. Called before drawTree so the fruit
// sits behind the branch triangles.
func (p *Plant) drawFruit(c *canvas.Canvas, u float64) {
	sm := Smooth(p.age)
	adj := Smooth(p.adjustedAge())

	for i, br := range p.params.branches {
		c.Push()

		c.Translate(0, p.baseHeight(u*br.pos*sm))
		c.Rotate(radToDeg(br.rot))

		top := p.branchHeight(u) * adj * (1 - br.pos)
		r := u * p.params.fruit[i].size * adj * (1 - br.pos) * p.ageCoefficient
		c.FillCircle(0, top*p.params.fruit[i].pos, r, p.palette.Fruit)

		c.Pop()
	}

	// Trunk apex circle. Its radius tapers by the last branch's position
	// fraction so it stays in proportion with the branch fruit, then
	// grows by 1.3x.
	last := p.params.fruit[len(p.params.fruit)-1]
	lastBranch := p.params.branches[len(p.params.branches)-1]

	top := p.baseHeight(u) * sm
	r := u * last.size * adj * (1 - lastBranch.pos) * p.ageCoefficient * 1.3
	c.FillCircle(0, top*last.pos, r, p.palette.Fruit)
}

// drawCanopy draws the GreenTree canopy triangle, offset up the trunk and
// capped at 95% of the canvas height.
func (p *Plant) drawCanopy(c *canvas.Canvas, u float64) {
	sm := Smooth(p.age)
	d := p.params.deficit
	ac := p.ageCoefficient

	gw := u / 3.2 * d * ac
	gh := u / 1.5 * d * ac
	offset := math.Min(u*0.95, p.baseHeight(u*0.3*sm))

	c.FillPolygon(p.palette.Stem,
		canvas.Point{X: -gw * sm, Y: offset},
		canvas.Point{X: gw * sm, Y: offset},
		canvas.Point{Y: gh*sm + offset},
	)
}

// drawSecondCanopy draws the DoubleGreenTree's smaller upper canopy,
// stacked above the first by the difference of the two canopy heights.
// Called before drawCanopy so the lower layer renders on top.
func (p *Plant) drawSecondCanopy(c *canvas.Canvas, u float64) {
	sm := Smooth(p.age)
	d := p.params.deficit
	ac := p.ageCoefficient

	sgw := u / 3.5 * d * ac
	sgh := u / 2.4 * d * ac

	offset := p.baseHeight(u * 0.3 * sm)
	secondOffset := (u/1.5*d*ac - sgh) * sm

	c.FillPolygon(p.palette.Stem,
		canvas.Point{X: -sgw * sm * sm, Y: offset + secondOffset},
		canvas.Point{X: sgw * sm * sm, Y: offset + secondOffset},
		canvas.Point{Y: math.Min(sgh*sm+offset+secondOffset, u*0.95)},
	)
}
