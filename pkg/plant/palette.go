package plant

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/verdant-cli/verdant/pkg/canvas"
)

//go:embed palette.yaml
var paletteYAML []byte

// Palette holds the colors a plant draws with. Stem doubles as the leaf
// and canopy green; Accents are the CircularFlower petal colors.
type Palette struct {
	Stem    canvas.Color
	Trunk   canvas.Color
	Fruit   canvas.Color
	Center  canvas.Color
	Accents []canvas.Color
}

// rawPalette mirrors the YAML layout before hex parsing.
type rawPalette struct {
	Colors struct {
		Stem    string   `yaml:"stem"`
		Trunk   string   `yaml:"trunk"`
		Fruit   string   `yaml:"fruit"`
		Center  string   `yaml:"center"`
		Accents []string `yaml:"accents"`
	} `yaml:"colors"`
}

// ParsePalette decodes a YAML palette document.
func ParsePalette(data []byte) (Palette, error) {
	var raw rawPalette
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Palette{}, fmt.Errorf("parse palette: %w", err)
	}

	var p Palette
	var err error
	if p.Stem, err = canvas.ParseColor(raw.Colors.Stem); err != nil {
		return Palette{}, fmt.Errorf("palette stem: %w", err)
	}
	if p.Trunk, err = canvas.ParseColor(raw.Colors.Trunk); err != nil {
		return Palette{}, fmt.Errorf("palette trunk: %w", err)
	}
	if p.Fruit, err = canvas.ParseColor(raw.Colors.Fruit); err != nil {
		return Palette{}, fmt.Errorf("palette fruit: %w", err)
	}
	if p.Center, err = canvas.ParseColor(raw.Colors.Center); err != nil {
		return Palette{}, fmt.Errorf("palette center: %w", err)
	}
	if len(raw.Colors.Accents) == 0 {
		return Palette{}, fmt.Errorf("palette has no accent colors")
	}
	for _, s := range raw.Colors.Accents {
		c, err := canvas.ParseColor(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette accent: %w", err)
		}
		p.Accents = append(p.Accents, c)
	}
	return p, nil
}

var defaultPalette = sync.OnceValue(func() Palette {
	p, err := ParsePalette(paletteYAML)
	if err != nil {
		// The embedded palette is part of the binary and covered by
		// tests; failing to parse it is a build defect.
		panic(err)
	}
	return p
})

// DefaultPalette returns the embedded palette.
func DefaultPalette() Palette {
	return defaultPalette()
}
