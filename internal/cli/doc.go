// Package cli defines the Cobra command tree for the mfg-scaffold CLI. The
// root command materializes the backend skeleton; each other file registers
// one subcommand. Commands delegate to internal packages for the work and only
// handle flag parsing, output formatting and exit status.
package cli
