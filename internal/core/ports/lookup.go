package ports

import "go.trai.ch/lfs/internal/core/domain"

// PathResolver resolves a single name to the first matching regular file.
type PathResolver interface {
	// Resolve returns the absolute path of name and true, or "" and false.
	// Names starting with the path separator are checked directly; all other
	// names are looked up in every search root, in order.
	Resolve(name string) (string, bool)

	// Roots returns the ordered search roots.
	Roots() domain.SearchRoots
}

// TreeSearcher finds every instance of a name in the dependency tree.
type TreeSearcher interface {
	// SearchAll returns all paths named target, local matches first, then
	// declared dependencies, then nested dependencies shallowest first.
	// Results are cached per target unless refresh is set.
	SearchAll(target string, refresh bool) ([]string, error)
}
