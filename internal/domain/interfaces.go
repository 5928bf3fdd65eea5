package domain

// RecoveryStore persists the recovery package.
type RecoveryStore interface {
	Save(pkg RecoveryPackage) error
	Load() (RecoveryPackage, error)
}

// HardenService derives deterministic password variants from a base secret,
// metadata and derivation parameters.
type HardenService interface {
	Harden(baseSecret string, md Metadata, iterations int) (HardenResult, error)
	HardenWithSalt(baseSecret string, md Metadata, salt string, iterations int) (HardenResult, error)
	Verify(baseSecret string, md Metadata, salt, stored string, iterations int) (bool, error)
}

// RecoveryService manages the durable recovery package and regeneration.
type RecoveryService interface {
	Create(md Metadata, salt string, iterations int) (RecoveryPackage, error)
	Load() (RecoveryPackage, error)
	Regenerate(baseSecret string, md Metadata, label VariantLabel) (Variant, error)
	RegenerateAll(baseSecret string, md Metadata) ([]Variant, error)
	Verify(baseSecret string, md Metadata, expected string) (bool, error)
}
