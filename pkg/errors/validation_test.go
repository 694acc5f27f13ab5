package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateAge(t *testing.T) {
	for _, ok := range []float64{0, 0.5, 1} {
		if err := ValidateAge(ok); err != nil {
			t.Errorf("ValidateAge(%v) = %v", ok, err)
		}
	}
	for _, bad := range []float64{-0.001, 1.001, -1, 2, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := ValidateAge(bad)
		if !Is(err, ErrCodeInvalidAge) {
			t.Errorf("ValidateAge(%v) = %v, want INVALID_AGE", bad, err)
		}
	}
}

func TestValidateDimensions(t *testing.T) {
	if err := ValidateDimensions(1, 1); err != nil {
		t.Errorf("ValidateDimensions(1,1) = %v", err)
	}
	if err := ValidateDimensions(500, 300); err != nil {
		t.Errorf("ValidateDimensions(500,300) = %v", err)
	}
	for _, bad := range [][2]int{{0, 100}, {100, 0}, {-5, 100}, {100, -5}, {0, 0}} {
		err := ValidateDimensions(bad[0], bad[1])
		if !Is(err, ErrCodeInvalidDimensions) {
			t.Errorf("ValidateDimensions(%v) = %v, want INVALID_DIMENSIONS", bad, err)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	for _, ok := range []string{"plant.svg", "/tmp/out/plant.svg", "dir/sub/p.pdf"} {
		if err := ValidateOutputPath(ok); err != nil {
			t.Errorf("ValidateOutputPath(%q) = %v", ok, err)
		}
	}

	bad := []string{
		"",
		"a\x00b.svg",
		"a\nb.svg",
		strings.Repeat("x", 501),
	}
	for _, p := range bad {
		err := ValidateOutputPath(p)
		if !Is(err, ErrCodeInvalidPath) {
			t.Errorf("ValidateOutputPath(%.20q) = %v, want INVALID_PATH", p, err)
		}
	}
}

func TestValidateFileName(t *testing.T) {
	for _, ok := range []string{"2026-08-24|14:32:01.svg", "plant.svg"} {
		if err := ValidateFileName(ok); err != nil {
			t.Errorf("ValidateFileName(%q) = %v", ok, err)
		}
	}

	bad := []string{
		"",
		"../secret.svg",
		"..",
		"a/b.svg",
		`a\b.svg`,
		"a\x00.svg",
		"a\tb.svg",
	}
	for _, n := range bad {
		err := ValidateFileName(n)
		if !Is(err, ErrCodeInvalidPath) {
			t.Errorf("ValidateFileName(%q) = %v, want INVALID_PATH", n, err)
		}
	}
}
