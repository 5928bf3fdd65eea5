package domain_test

import (
	"errors"
	"testing"

	"passforge/internal/domain"
)

func TestVariantLabel_Lengths(t *testing.T) {
	cases := []struct {
		label domain.VariantLabel
		want  int
	}{
		{domain.VariantShort, 16},
		{domain.VariantMedium, 24},
		{domain.VariantLong, 32},
		{domain.VariantLabel("gigantic"), 0},
	}
	for _, c := range cases {
		if got := c.label.Length(); got != c.want {
			t.Errorf("Length(%q): got %d, want %d", c.label, got, c.want)
		}
	}
}

func TestParseVariantLabel(t *testing.T) {
	for _, in := range []string{"short", "Short", " MEDIUM ", "long"} {
		if _, err := domain.ParseVariantLabel(in); err != nil {
			t.Errorf("ParseVariantLabel(%q): %v", in, err)
		}
	}

	_, err := domain.ParseVariantLabel("gigantic")
	if !errors.Is(err, domain.ErrUnknownVariant) {
		t.Fatalf("ParseVariantLabel(gigantic): got %v, want ErrUnknownVariant", err)
	}
}

func TestRecoveryPackage_Validate(t *testing.T) {
	valid := domain.RecoveryPackage{
		SecretKey:  "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6",
		Iterations: domain.DefaultIterations,
		Algorithm:  domain.Algorithm,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate valid package: %v", err)
	}

	cases := []struct {
		name string
		mut  func(*domain.RecoveryPackage)
	}{
		{"missing secret key", func(p *domain.RecoveryPackage) { p.SecretKey = "" }},
		{"zero iterations", func(p *domain.RecoveryPackage) { p.Iterations = 0 }},
		{"negative iterations", func(p *domain.RecoveryPackage) { p.Iterations = -1 }},
		{"wrong algorithm", func(p *domain.RecoveryPackage) { p.Algorithm = "MD5" }},
	}
	for _, c := range cases {
		pkg := valid
		c.mut(&pkg)
		if err := pkg.Validate(); err == nil {
			t.Errorf("Validate (%s): expected error", c.name)
		}
	}
}
