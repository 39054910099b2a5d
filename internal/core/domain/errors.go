package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTarget is returned by a tree search called with an empty target.
	ErrInvalidTarget = zerr.New("invalid search target")

	// ErrManifestUnreadable is returned when the declared dependency list of the
	// base directory cannot be determined.
	ErrManifestUnreadable = zerr.New("manifest unreadable")

	// ErrInvalidConfig is returned when workspace options fail validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNotFound is returned by the CLI layer when a name does not resolve.
	ErrNotFound = zerr.New("not found")
)
