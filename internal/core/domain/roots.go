package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// SearchRoots is the ordered list of directories searched when resolving a
// relative name. The first root containing the name wins.
type SearchRoots []string

// Contains reports whether dir is already part of the list.
func (r SearchRoots) Contains(dir string) bool {
	return slices.Contains(r, dir)
}

// Clone returns a copy that callers may modify freely.
func (r SearchRoots) Clone() SearchRoots {
	return slices.Clone(r)
}

// Digest returns a stable fingerprint of the ordered list.
// Two layouts with the same roots in the same order share a digest.
func (r SearchRoots) Digest() string {
	hasher := xxhash.New()
	for _, root := range r {
		_, _ = hasher.WriteString(root)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
