package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/verdant-cli/verdant/pkg/errors"
	"github.com/verdant-cli/verdant/pkg/plant"
)

// Config holds user settings, loaded from ~/.config/verdant/config.toml.
// A missing file means defaults; a malformed file is an error.
type Config struct {
	StudyMinutes int `toml:"study_minutes"`
	BreakMinutes int `toml:"break_minutes"`
	Cycles       int `toml:"cycles"`

	// MaxPlantAgeMinutes is the study length at which a plant reaches
	// its full size; shorter sessions grow proportionally smaller plants.
	MaxPlantAgeMinutes int `toml:"max_plant_age_minutes"`

	// Canvas size for saved drawings.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Sound bool `toml:"sound"`

	// Plants lists the enabled variants a session may pick from.
	Plants []string `toml:"plants"`

	// OutputDir is where finished drawings are saved.
	// Defaults to ~/.config/verdant/plants.
	OutputDir string `toml:"output_dir"`
}

// DefaultConfig mirrors the classic pomodoro defaults.
func DefaultConfig() Config {
	return Config{
		StudyMinutes:       45,
		BreakMinutes:       15,
		Cycles:             1,
		MaxPlantAgeMinutes: 90,
		Width:              500,
		Height:             500,
		Sound:              true,
		Plants: []string{
			string(plant.KindGreenTree),
			string(plant.KindDoubleGreenTree),
			string(plant.KindOrangeTree),
			string(plant.KindCircularFlower),
		},
	}
}

// DefaultConfigPath returns ~/.config/verdant/config.toml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "verdant", "config.toml"), nil
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return cfg, err
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.StudyMinutes < 1 || c.BreakMinutes < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "study and break lengths must be at least 1 minute")
	}
	if c.MaxPlantAgeMinutes < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_plant_age_minutes must be at least 1")
	}
	if c.Width < 1 || c.Height < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := c.EnabledKinds(); err != nil {
		return err
	}
	return nil
}

// EnabledKinds resolves the configured plant names.
func (c Config) EnabledKinds() ([]plant.Kind, error) {
	kinds := make([]plant.Kind, 0, len(c.Plants))
	for _, name := range c.Plants {
		k, err := plant.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no plant variants enabled")
	}
	return kinds, nil
}

// MaxAge maps a study length to the plant's growth ceiling: a session at
// or beyond MaxPlantAgeMinutes grows a full-size plant.
func (c Config) MaxAge(study time.Duration) float64 {
	age := study.Minutes() / float64(c.MaxPlantAgeMinutes)
	if age > 1 {
		return 1
	}
	return age
}

// PlantsDir returns the directory finished drawings are saved to,
// creating it if needed.
func (c Config) PlantsDir() (string, error) {
	dir := c.OutputDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "verdant", "plants")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create plants dir: %w", err)
	}
	return dir, nil
}
