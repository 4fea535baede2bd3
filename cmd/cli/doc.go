// Package cli constructs the git2bridge command-line interface, wiring the
// Cobra command hierarchy, configuration loader, and structured logging
// primitives around the libgit2 boundary shim.
package cli
