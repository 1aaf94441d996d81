package tree

import (
	"context"
	"fmt"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Package is the loader-neutral view of a package that the builders read.
type Package struct {
	Path    string
	Name    string
	Dir     string
	Members []string
	Imports []string
}

// Source resolves import paths to packages.
//
// Load prepares the packages matched by patterns, resolved relative to dir
// (the working directory when empty), and returns the import paths of the
// matched packages. Package returns a package made available by Load,
// directly or as a dependency.
type Source interface {
	Load(ctx context.Context, dir string, patterns ...string) ([]string, error)
	Package(path string) (*Package, error)
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedImports |
	packages.NeedDeps | packages.NeedTypes

// PackagesSource loads packages with golang.org/x/tools/go/packages and
// classifies members from their type information.
type PackagesSource struct {
	// Strict drops type aliases whose target is declared elsewhere.
	Strict bool

	index map[string]*packages.Package
}

// NewPackagesSource returns a PackagesSource.
func NewPackagesSource(strict bool) *PackagesSource {
	return &PackagesSource{Strict: strict}
}

func (s *PackagesSource) Load(ctx context.Context, dir string, patterns ...string) ([]string, error) {
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w matching %q", ErrNoPackages, strings.Join(patterns, " "))
	}
	if s.index == nil {
		s.index = make(map[string]*packages.Package)
	}
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		s.index[p.PkgPath] = p
	})
	roots := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, &LoadError{Path: p.PkgPath, Err: p.Errors[0]}
		}
		roots = append(roots, p.PkgPath)
	}
	return roots, nil
}

func (s *PackagesSource) Package(path string) (*Package, error) {
	p, ok := s.index[path]
	if !ok {
		return nil, &LoadError{Path: path, Err: errNotLoaded}
	}
	if len(p.Errors) > 0 {
		return nil, &LoadError{Path: path, Err: p.Errors[0]}
	}
	if p.Types == nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("no type information")}
	}
	pkg := &Package{
		Path:    p.PkgPath,
		Name:    p.Name,
		Members: Members(p.Types, s.Strict),
		Imports: sortedKeys(p.Imports),
	}
	if len(p.GoFiles) > 0 {
		pkg.Dir = filepath.Dir(p.GoFiles[0])
	}
	return pkg, nil
}

// Members returns the exported functions and type names declared in pkg,
// sorted. In strict mode a type alias counts only when its target is
// declared in pkg itself or is not a named type.
func Members(pkg *types.Package, strict bool) []string {
	if pkg == nil {
		return nil
	}
	scope := pkg.Scope()
	var members []string
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		switch o := obj.(type) {
		case *types.Func:
		case *types.TypeName:
			if strict && !ownedBy(o, pkg) {
				continue
			}
		default:
			continue
		}
		members = append(members, name)
	}
	return members
}

func ownedBy(tn *types.TypeName, pkg *types.Package) bool {
	if !tn.IsAlias() {
		return true
	}
	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return true
	}
	owner := named.Obj().Pkg()
	return owner != nil && owner.Path() == pkg.Path()
}
