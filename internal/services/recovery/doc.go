// Package recovery manages the durable recovery package: creating and
// loading the salt, iteration count and redacted metadata hints, and
// regenerating password variants from them plus the user's re-supplied
// inputs.
package recovery
