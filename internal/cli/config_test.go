package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/verdant-cli/verdant/pkg/errors"
	"github.com/verdant-cli/verdant/pkg/plant"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.StudyMinutes != def.StudyMinutes || cfg.BreakMinutes != def.BreakMinutes ||
		cfg.MaxPlantAgeMinutes != def.MaxPlantAgeMinutes || !cfg.Sound {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
study_minutes = 25
break_minutes = 5
cycles = 4
max_plant_age_minutes = 50
width = 800
height = 600
sound = false
plants = ["flower", "tree"]
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StudyMinutes != 25 || cfg.BreakMinutes != 5 || cfg.Cycles != 4 {
		t.Errorf("timer settings = %+v", cfg)
	}
	if cfg.Width != 800 || cfg.Height != 600 || cfg.Sound {
		t.Errorf("canvas/sound settings = %+v", cfg)
	}

	kinds, err := cfg.EnabledKinds()
	if err != nil {
		t.Fatalf("EnabledKinds: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != plant.KindFlower || kinds[1] != plant.KindTree {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "study_minutes = 30\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StudyMinutes != 30 {
		t.Errorf("StudyMinutes = %d", cfg.StudyMinutes)
	}
	if cfg.BreakMinutes != DefaultConfig().BreakMinutes {
		t.Errorf("BreakMinutes = %d, want default", cfg.BreakMinutes)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "study_minutes = = 25\n")
	if _, err := LoadConfig(path); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("malformed config error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	bad := []string{
		"study_minutes = 0\n",
		"break_minutes = -5\n",
		"max_plant_age_minutes = 0\n",
		"width = 0\n",
		"plants = []\n",
		`plants = ["bonsai"]` + "\n",
	}
	for _, content := range bad {
		path := writeConfig(t, content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("config %q passed validation", content)
		}
	}
}

func TestMaxAgeMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPlantAgeMinutes = 90

	for _, tc := range []struct {
		study time.Duration
		want  float64
	}{
		{45 * time.Minute, 0.5},
		{90 * time.Minute, 1},
		{180 * time.Minute, 1},
		{9 * time.Minute, 0.1},
	} {
		if got := cfg.MaxAge(tc.study); got != tc.want {
			t.Errorf("MaxAge(%v) = %v, want %v", tc.study, got, tc.want)
		}
	}
}

func TestPlantsDirCreatesConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "drawings")

	dir, err := cfg.PlantsDir()
	if err != nil {
		t.Fatalf("PlantsDir: %v", err)
	}
	if dir != cfg.OutputDir {
		t.Errorf("dir = %q", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("dir not created: %v", err)
	}
}

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{0, "0"},
		{42 * time.Second, "42"},
		{5*time.Minute + 7*time.Second, "5:07"},
		{time.Hour + 5*time.Minute + 7*time.Second, "1:05:07"},
		{59 * time.Second, "59"},
		{time.Minute, "1:00"},
		{time.Hour, "1:00:00"},
	} {
		if got := formatClock(tc.d); got != tc.want {
			t.Errorf("formatClock(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
