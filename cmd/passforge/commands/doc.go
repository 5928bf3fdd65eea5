// Package commands defines the passforge CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - harden   Derive the three password variants; --save persists a
//     recovery package
//   - analyze  Strength report for any password
//   - verify   Check a password against its re-derivation
//   - recover  Regenerate variants from the recovery package
//   - hints    Show stored metadata hints and derivation parameters
//
// # Implementation
//
// The root command resolves the recovery package path and builds the app
// context (store plus services) before any subcommand runs. The base secret
// is never taken as a flag or argument; it comes from the
// PASSFORGE_BASE_SECRET environment variable, a hidden terminal prompt, or a
// line on stdin when no terminal is attached.
package commands
