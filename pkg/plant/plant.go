// Package plant implements the procedural plant engine.
//
// A Plant is a parametric, randomized model of a tree or flower. Its
// visual identity (branch positions, leaf sizes, petal shape, ...) is
// frozen by a generation step; drawing is then a pure function of the
// current age in [0,1] and the target canvas size, so the same state
// always renders the same picture. Growing a plant means advancing its
// age between repaints, nothing more.
//
// The variant hierarchy of the original design is flattened: each variant
// is a Kind, its frozen values live in a params bundle, and generation
// and drawing are composed explicitly (base first, then the variant's own
// layers) through a switch on the Kind.
package plant

import (
	"math"
	"math/rand/v2"

	"github.com/verdant-cli/verdant/pkg/canvas"
	"github.com/verdant-cli/verdant/pkg/errors"
)

// Kind identifies a plant variant.
type Kind string

const (
	KindFlower          Kind = "flower"
	KindCircularFlower  Kind = "circular-flower"
	KindTree            Kind = "tree"
	KindOrangeTree      Kind = "orange-tree"
	KindGreenTree       Kind = "green-tree"
	KindDoubleGreenTree Kind = "double-green-tree"
)

// Kinds returns all plant variants in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindFlower,
		KindCircularFlower,
		KindTree,
		KindOrangeTree,
		KindGreenTree,
		KindDoubleGreenTree,
	}
}

// ParseKind resolves a variant name as used on the CLI.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidVariant, "unknown plant variant %q", s)
}

// Drawable is anything that can render itself into a canvas and persist
// the result as an SVG file.
type Drawable interface {
	Draw(c *canvas.Canvas, width, height int) error
	SaveSVG(path string, width, height int) error
}

// leaf is one flower leaf: position fraction along the stem, size
// coefficient, and orientation sign (±1, also the rotation in radians).
type leaf struct {
	pos, size, orient float64
}

// branch is one secondary tree branch: position fraction up the trunk and
// rotation in radians away from vertical.
type branch struct {
	pos, rot float64
}

// fruitCircle is one OrangeTree fruit: radius fraction of the base unit
// and position fraction along its branch.
type fruitCircle struct {
	size, pos float64
}

// params holds every frozen random value a variant can own. Generation
// fills only the fields its Kind uses.
type params struct {
	// shared
	deficit float64 // organic shrink factor in [0.9, 1]

	// flower
	xCoeff    float64 // signed horizontal lean in ±[0.4, 1]
	leaves    []leaf
	stemWidth float64

	// circular flower
	accent      canvas.Color
	pelletCount int
	pellet      pelletShape
	centerScale float64 // white center relative to pellet size

	// tree
	branches []branch

	// orange tree: one circle per branch, last entry is the trunk apex
	fruit []fruitCircle
}

// Plant is a single procedurally generated plant. It is owned by one
// goroutine; see the package comment for the drawing model.
type Plant struct {
	kind    Kind
	palette Palette
	rng     *rand.Rand

	age       float64
	maxAge    float64
	generated bool

	// ageCoefficient caches (maxAge+1)/2 so a run that studies for half
	// the optimal time still grows to a respectable 75% scale.
	ageCoefficient float64

	params params
}

// Option configures a Plant at construction time.
type Option func(*Plant)

// WithRand sets the random source used by generation. Injecting a seeded
// source makes the generated geometry reproducible.
func WithRand(r *rand.Rand) Option {
	return func(p *Plant) { p.rng = r }
}

// WithPalette overrides the embedded color palette.
func WithPalette(pal Palette) Option {
	return func(p *Plant) { p.palette = pal }
}

// New creates a plant of the given variant. The plant is not drawable
// until SetMaxAge has run generation at least once.
func New(kind Kind, opts ...Option) (*Plant, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	p := &Plant{
		kind:    kind,
		palette: DefaultPalette(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return p, nil
}

// Kind returns the plant's variant.
func (p *Plant) Kind() Kind { return p.kind }

// Age returns the current normalized age.
func (p *Plant) Age() float64 { return p.age }

// SetAge sets the current normalized growth progress. It is a pure state
// write: no recomputation, no randomness.
func (p *Plant) SetAge(age float64) error {
	if err := errors.ValidateAge(age); err != nil {
		return err
	}
	p.age = age
	return nil
}

// SetMaxAge sets the growth ceiling and regenerates the plant. Every call
// draws fresh randomness, so the realized shape changes even when the
// value does not; a new look per run is intended.
func (p *Plant) SetMaxAge(maxAge float64) error {
	if err := errors.ValidateAge(maxAge); err != nil {
		return err
	}
	p.maxAge = maxAge
	p.ageCoefficient = (maxAge + 1) / 2
	p.generate()
	p.generated = true
	return nil
}

// adjustedAge lags the primary age so slower sub-parts (branches, leaves)
// visually trail the main growth.
func (p *Plant) adjustedAge() float64 {
	return p.age * p.age
}

// uniform draws from [lo, hi).
func (p *Plant) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}

// sign draws -1 or +1 with equal probability.
func (p *Plant) sign() float64 {
	if p.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// generate recomputes every frozen parameter. Shared coefficients are
// produced first so the variant steps can derive from them.
func (p *Plant) generate() {
	p.params = params{deficit: p.uniform(0.9, 1)}

	switch p.kind {
	case KindFlower:
		p.generateFlower()
	case KindCircularFlower:
		p.generateFlower()
		p.generatePellets()
	case KindTree:
		p.generateTree()
	case KindOrangeTree:
		p.generateTree()
		p.generateFruit()
	case KindGreenTree, KindDoubleGreenTree:
		// Canopy sizes are fixed fractions of the shared coefficients,
		// so the green variants add no frozen values of their own.
		p.generateTree()
	}
}

// Draw renders the plant into c. The origin is placed at the bottom
// center of the canvas with the y axis pointing up, and all proportions
// are derived from min(width, height) so non-square canvases do not
// distort the plant. Drawing before the first SetMaxAge is a no-op.
func (p *Plant) Draw(c *canvas.Canvas, width, height int) error {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return err
	}
	if !p.generated {
		return nil
	}

	u := math.Min(float64(width), float64(height))

	c.Push()
	defer c.Pop()
	c.Translate(float64(width)/2, float64(height))
	c.Scale(1, -1)

	switch p.kind {
	case KindFlower:
		p.drawFlower(c, u)
	case KindCircularFlower:
		x, y := p.drawFlower(c, u)
		p.drawPellets(c, u, x, y)
	case KindTree:
		p.drawTree(c, u)
	case KindOrangeTree:
		// Fruit first so the branch triangles render on top of it.
		p.drawFruit(c, u)
		p.drawTree(c, u)
	case KindGreenTree:
		p.drawCanopy(c, u)
		p.drawTree(c, u)
	case KindDoubleGreenTree:
		p.drawSecondCanopy(c, u)
		p.drawCanopy(c, u)
		p.drawTree(c, u)
	}
	return nil
}

// SaveSVG renders the plant into a fresh surface of exactly width×height
// and writes it to path. No randomness runs during save, so a fixed plant
// state always produces byte-identical output. The file is written
// atomically (temp file + rename).
func (p *Plant) SaveSVG(path string, width, height int) error {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	c := canvas.New(width, height)
	if err := p.Draw(c, width, height); err != nil {
		return err
	}
	if err := c.WriteFile(path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "save plant to %s", path)
	}
	return nil
}

// radToDeg converts the radian-valued rotations stored in the frozen
// parameters to the degrees the canvas API expects.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
