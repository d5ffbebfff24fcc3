// Package app wires the generator together: it owns the configured logger,
// the seeded random source and the generation pipeline, and dispatches the
// parsed subcommand to the matching pipeline entry point.
package app
