// Package dat builds RomVault / clrmamepro-compatible DAT catalogs from
// directory trees.
//
// The package is a sequential pipeline with four stages:
//
// Classification:
//   - Classifier maps a file's relative path components to a chain of
//     category names, an owning game name, and a rom name, driven by the
//     configured game depth and loose-file policy.
//
// Digesting:
//   - DigestFile streams a file once through CRC-32, MD5, and SHA-1
//     accumulators and reports the byte count alongside the three
//     lowercase hex digests.
//
// Accumulation:
//   - Builder grows the category/game/rom tree in strict first-seen order.
//     Categories only ever own sub-categories and games; roms always live
//     inside exactly one game.
//
// Serialization:
//   - WriteXML renders the finished Catalog as a <datafile> document with
//     the header fields in their fixed order.
//
// Generate ties the stages together: it walks a source root in lexical
// order, classifies and hashes each file, and atomically writes the
// resulting DAT. Per-file read failures are reported through the Observer
// and skipped; the run continues.
package dat
