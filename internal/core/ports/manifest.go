package ports

// ManifestReader reads the declared dependencies of a project directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// Dependencies returns the dependency names declared by the manifest in dir,
	// in declaration order.
	//
	// A missing manifest yields an empty list and no error. An error is returned
	// only when a manifest exists but cannot be read or parsed.
	Dependencies(dir string) ([]string, error)
}
