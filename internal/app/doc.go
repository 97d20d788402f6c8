// Package app wires the engine together: it builds the logger, loads the
// configuration, registers the modules, assembles the hook chain, and
// exposes the two entrypoints the panel (or the CLI harness) calls.
package app
