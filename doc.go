// Package main provides the datforge command-line interface.
//
// datforge generates RomVault / clrmamepro-compatible XML DAT files from
// existing directory trees. Every file under a source root is hashed
// (CRC-32, MD5, SHA-1) and placed into a category/game/rom hierarchy
// according to a configurable grouping depth and loose-file policy.
//
// The main binary supports multiple subcommands:
//   - create: Walk a directory tree, hash every file, and write a DAT
//   - scan: Preview the category/game/rom classification without hashing
//   - seed: Generate test directory trees for exercising the generator
package main
