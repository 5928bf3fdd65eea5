// Package domain defines the core data models and interfaces shared across
// passforge. It contains plain types (derivation parameters, strength
// reports, recovery packages) and contracts (interfaces) only.
package domain
