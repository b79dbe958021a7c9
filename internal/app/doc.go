// Package app wires the application together: it owns the logger, selects a
// definition loader by file extension, builds the unit graph and runs either
// the listing or the conversion requested by the CLI.
package app
