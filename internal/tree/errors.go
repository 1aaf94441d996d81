package tree

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrGoModMissing is returned when no go.mod encloses the root directory.
	ErrGoModMissing = errors.New("unable to find go.mod")
	// ErrNoPackages is returned when a root matches no Go packages.
	ErrNoPackages = errors.New("no Go packages found")

	errNotLoaded = errors.New("package was not loaded")
	errStop      = errors.New("stop walk")
)

// LoadError reports a package that could not be loaded. Any LoadError
// aborts the build.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
