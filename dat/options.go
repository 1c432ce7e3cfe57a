package dat

import (
	"fmt"
	"os"
)

// LoosePolicy selects how files that sit at or above the game boundary are
// wrapped into a game.
type LoosePolicy string

const (
	// LooseStrip names the game after the loose file itself, optionally
	// removing the extension.
	LooseStrip LoosePolicy = "strip"
	// LooseParent turns the loose file's parent directory into the game,
	// collapsing all loose siblings into it.
	LooseParent LoosePolicy = "parent"
)

// ParseLoosePolicy converts a flag value into a LoosePolicy.
func ParseLoosePolicy(s string) (LoosePolicy, error) {
	switch LoosePolicy(s) {
	case LooseStrip, LooseParent:
		return LoosePolicy(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadLoosePolicy, s)
}

// ForcePacking is the RomVault packing directive emitted in the header.
// The zero value means no directive is written.
type ForcePacking string

const (
	PackingUnset    ForcePacking = ""
	PackingFileOnly ForcePacking = "fileonly"
	PackingArchive  ForcePacking = "archive"
	PackingSplit    ForcePacking = "split"
)

// ParseForcePacking converts a flag value into a ForcePacking.
// The empty string parses to PackingUnset.
func ParseForcePacking(s string) (ForcePacking, error) {
	switch ForcePacking(s) {
	case PackingUnset, PackingFileOnly, PackingArchive, PackingSplit:
		return ForcePacking(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadForcePacking, s)
}

// Options is the fully resolved configuration consumed by Generate.
// Flag parsing and interactive prompting happen elsewhere; by the time an
// Options value reaches the pipeline it is complete and immutable.
type Options struct {
	Source string // directory tree to catalog
	Output string // DAT file to write

	Header Header

	GameDepth  int         // folder level that becomes a <game>, 0 = one global game
	LooseFiles LoosePolicy // wrapping rule for files at or above the boundary
	StripExt   bool        // drop extensions from strip-policy game names
}

// DefaultOptions returns an Options with the documented defaults applied:
// game depth 1, strip policy, extensions stripped.
func DefaultOptions() Options {
	return Options{
		GameDepth:  1,
		LooseFiles: LooseStrip,
		StripExt:   true,
	}
}

// Validate reports configuration problems before any hashing work is spent.
func (o Options) Validate() error {
	if o.Source == "" {
		return ErrNoSource
	}
	if o.Output == "" {
		return ErrNoOutput
	}
	info, err := os.Stat(o.Source)
	if err != nil {
		return fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, o.Source)
	}
	if o.GameDepth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, o.GameDepth)
	}
	switch o.LooseFiles {
	case LooseStrip, LooseParent:
	default:
		return fmt.Errorf("%w: %q", ErrBadLoosePolicy, o.LooseFiles)
	}
	switch o.Header.ForcePacking {
	case PackingUnset, PackingFileOnly, PackingArchive, PackingSplit:
	default:
		return fmt.Errorf("%w: %q", ErrBadForcePacking, o.Header.ForcePacking)
	}
	return nil
}

// defaultGroup is the game name used when no folder is available to supply
// one: the header name when set, otherwise "DAT".
func (o Options) defaultGroup() string {
	if o.Header.Name != "" {
		return o.Header.Name
	}
	return "DAT"
}
