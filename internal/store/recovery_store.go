package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"passforge/internal/domain"
)

var (
	// ErrNotFound is returned when no recovery package has been saved yet.
	ErrNotFound = errors.New("recovery package not found")

	// ErrMalformed is returned when the package file exists but cannot be
	// parsed or fails structural validation.
	ErrMalformed = errors.New("recovery package is malformed")
)

// RecoveryFileStore persists the recovery package as a single JSON file.
type RecoveryFileStore struct {
	path string
	mu   sync.Mutex
}

// NewRecoveryFileStore returns a RecoveryFileStore writing to path.
func NewRecoveryFileStore(path string) *RecoveryFileStore {
	return &RecoveryFileStore{path: path}
}

// Save writes the package atomically with owner-only permissions.
func (s *RecoveryFileStore) Save(pkg domain.RecoveryPackage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return err
	}
	return atomicWrite(s.path, b, 0o600)
}

// Load reads and validates the stored package. A missing file reports
// ErrNotFound; unparseable or structurally invalid content reports
// ErrMalformed.
func (s *RecoveryFileStore) Load() (domain.RecoveryPackage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.RecoveryPackage{}, fmt.Errorf("%s: %w", s.path, ErrNotFound)
	}
	if err != nil {
		return domain.RecoveryPackage{}, err
	}

	var pkg domain.RecoveryPackage
	if err := json.Unmarshal(b, &pkg); err != nil {
		return domain.RecoveryPackage{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := pkg.Validate(); err != nil {
		return domain.RecoveryPackage{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return pkg, nil
}

// Path returns the backing file location.
func (s *RecoveryFileStore) Path() string { return s.path }

// Compile-time assertion that RecoveryFileStore implements domain.RecoveryStore.
var _ domain.RecoveryStore = (*RecoveryFileStore)(nil)
