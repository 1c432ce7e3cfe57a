// Package cmd provides the command-line interface implementation for datforge.
//
// This package contains all the subcommand implementations for the datforge
// CLI tool. It uses the Cobra library for command structure and Fang for
// styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - create: DAT generation from a directory tree
//   - scan: Classification preview without hashing
//   - seed: Test directory tree generation
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The create command supports an
// interactive mode that prompts for unset header fields before the run
// starts, so configuration is always fully resolved before any hashing work
// begins.
//
// The package leverages the dat package for the generation pipeline and the
// progress package for terminal rendering.
package cmd
