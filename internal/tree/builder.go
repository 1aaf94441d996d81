package tree

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Options tune discovery.
type Options struct {
	// Strict drops type aliases of types declared in other packages.
	Strict bool
	// IncludeMain keeps command packages below the root.
	IncludeMain bool
	// Tracked restricts BuildDir to the files reported by the Lister.
	Tracked bool
	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Builder builds package trees.
type Builder struct {
	Source Source
	Lister Lister
	opts   Options
	logger *log.Logger
}

// New returns a Builder backed by go/packages and git.
func New(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{
		Source: NewPackagesSource(opts.Strict),
		Lister: GitLister{},
		opts:   opts,
		logger: logger,
	}
}

// BuildImports loads the single package matched by pattern and follows its
// imports. An import becomes part of the tree only when it lies inside the
// namespace of the package importing it; the standard library, third-party
// modules and self-imports are never descended into.
func (b *Builder) BuildImports(ctx context.Context, pattern string) (*Node, error) {
	roots, err := b.Source.Load(ctx, "", pattern)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one root", pattern, len(roots))
	}
	root := roots[0]
	b.logger.Debug("walking imports", "root", root)

	found := make(map[string]*Package)
	queue := []string{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if _, ok := found[current]; ok {
			continue
		}
		pkg, err := b.Source.Package(current)
		if err != nil {
			return nil, err
		}
		found[current] = pkg
		for _, imp := range pkg.Imports {
			switch {
			case imp == current:
				b.logger.Debug("skipping self import", "package", current)
			case !Within(current, imp):
				continue
			case found[imp] != nil:
				continue
			default:
				queue = append(queue, imp)
			}
		}
	}
	b.logger.Debug("discovered packages", "root", root, "count", len(found))
	return assemble(root, "", found, b.opts.IncludeMain), nil
}

// BuildDir treats every directory below dir holding Go files as a package.
// dir must sit inside a module; its import path is derived from go.mod.
// The process working directory is left untouched.
func (b *Builder) BuildDir(ctx context.Context, dir string) (*Node, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("BuildDir failed: %w", err)
	}
	modRoot, modPath, err := findModule(abs)
	if err != nil {
		return nil, err
	}
	root, err := importPath(modRoot, modPath, abs)
	if err != nil {
		return nil, err
	}
	files, err := goFiles(abs)
	if err != nil {
		return nil, err
	}
	if b.opts.Tracked {
		listed, err := b.Lister.List(ctx, abs)
		if err != nil {
			return nil, err
		}
		files = keepListed(files, listed)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w below %s", ErrNoPackages, abs)
	}

	dirs := sortedKeys(files)
	patterns := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if d == "." {
			patterns = append(patterns, ".")
			continue
		}
		patterns = append(patterns, "./"+filepath.ToSlash(d))
	}
	b.logger.Debug("loading directories", "root", root, "count", len(dirs))
	paths, err := b.Source.Load(ctx, abs, patterns...)
	if err != nil {
		return nil, err
	}
	found := make(map[string]*Package, len(paths))
	for _, p := range slices.Compact(slices.Sorted(slices.Values(paths))) {
		pkg, err := b.Source.Package(p)
		if err != nil {
			return nil, err
		}
		if b.opts.Tracked {
			if pkg, err = trackedMembers(pkg, abs, files[relDir(root, p)]); err != nil {
				return nil, err
			}
		}
		found[p] = pkg
	}
	return assemble(root, abs, found, b.opts.IncludeMain), nil
}

// trackedMembers returns a copy of pkg whose members are limited to those
// declared in files.
func trackedMembers(pkg *Package, root string, files []string) (*Package, error) {
	declared, err := declaredNames(root, files)
	if err != nil {
		return nil, err
	}
	kept := *pkg
	kept.Members = nil
	for _, m := range pkg.Members {
		if declared[m] {
			kept.Members = append(kept.Members, m)
		}
	}
	return &kept, nil
}

// relDir maps an import path below root to its directory relative to the
// root directory.
func relDir(root, p string) string {
	if p == root {
		return "."
	}
	return filepath.FromSlash(strings.TrimPrefix(p, root+"/"))
}
