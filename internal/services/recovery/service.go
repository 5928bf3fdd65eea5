package recovery

import (
	"fmt"

	"passforge/internal/domain"
)

// Service builds, persists and consumes recovery packages.
//
// A package carries everything needed to regenerate the password variants
// except the base secret and the full metadata values, which the user must
// re-supply. Hints are redacted before they are ever handed to the store.
type Service struct {
	store    domain.RecoveryStore
	hardener domain.HardenService
}

// New returns a recovery service backed by the given store and hardener.
func New(store domain.RecoveryStore, hardener domain.HardenService) *Service {
	return &Service{store: store, hardener: hardener}
}

// Create builds a recovery package for the given derivation parameters and
// persists it.
func (s *Service) Create(md domain.Metadata, salt string, iterations int) (domain.RecoveryPackage, error) {
	if salt == "" {
		return domain.RecoveryPackage{}, domain.ErrEmptySalt
	}
	if iterations < 1 {
		return domain.RecoveryPackage{}, domain.ErrInvalidIterations
	}

	pkg := domain.RecoveryPackage{
		SecretKey:     salt,
		MetadataHints: md.Hints(),
		Iterations:    iterations,
		Algorithm:     domain.Algorithm,
		Warning:       domain.RecoveryWarning,
	}
	if err := s.store.Save(pkg); err != nil {
		return domain.RecoveryPackage{}, fmt.Errorf("save recovery package: %w", err)
	}
	return pkg, nil
}

// Load reads the stored recovery package.
func (s *Service) Load() (domain.RecoveryPackage, error) {
	return s.store.Load()
}

// Regenerate re-derives a single variant from the stored package plus the
// re-supplied base secret and metadata.
func (s *Service) Regenerate(baseSecret string, md domain.Metadata, label domain.VariantLabel) (domain.Variant, error) {
	if label.Length() == 0 {
		return domain.Variant{}, fmt.Errorf("variant %q: %w", label, domain.ErrUnknownVariant)
	}

	result, err := s.regenerate(baseSecret, md)
	if err != nil {
		return domain.Variant{}, err
	}
	v, ok := result.Variant(label)
	if !ok {
		return domain.Variant{}, fmt.Errorf("variant %q: %w", label, domain.ErrUnknownVariant)
	}
	return v, nil
}

// RegenerateAll re-derives the three canonical variants.
func (s *Service) RegenerateAll(baseSecret string, md domain.Metadata) ([]domain.Variant, error) {
	result, err := s.regenerate(baseSecret, md)
	if err != nil {
		return nil, err
	}
	return result.Variants, nil
}

// Verify checks a remembered password against the re-derivation under the
// stored salt and iteration count.
func (s *Service) Verify(baseSecret string, md domain.Metadata, expected string) (bool, error) {
	pkg, err := s.store.Load()
	if err != nil {
		return false, err
	}
	return s.hardener.Verify(baseSecret, md, pkg.SecretKey, expected, pkg.Iterations)
}

func (s *Service) regenerate(baseSecret string, md domain.Metadata) (domain.HardenResult, error) {
	pkg, err := s.store.Load()
	if err != nil {
		return domain.HardenResult{}, err
	}
	return s.hardener.HardenWithSalt(baseSecret, md, pkg.SecretKey, pkg.Iterations)
}

// Compile-time assertion that Service implements domain.RecoveryService.
var _ domain.RecoveryService = (*Service)(nil)
