package dat

import "errors"

// Sentinel errors for package dat.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Configuration errors, surfaced before any traversal begins
	ErrNoSource        = errors.New("source root not set")
	ErrNoOutput        = errors.New("output path not set")
	ErrSourceNotDir    = errors.New("source root is not a directory")
	ErrNegativeDepth   = errors.New("game depth must not be negative")
	ErrBadLoosePolicy  = errors.New("unknown loose-file policy")
	ErrBadForcePacking = errors.New("unknown forcepacking mode")

	// File errors
	ErrExpectedFile = errors.New("expected file, got directory")
)
