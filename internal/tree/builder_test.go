package tree

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	roots []string
	pkgs  map[string]*Package
	fail  map[string]error
}

func (f *fakeSource) Load(context.Context, string, ...string) ([]string, error) {
	return f.roots, nil
}

func (f *fakeSource) Package(path string) (*Package, error) {
	if err, ok := f.fail[path]; ok {
		return nil, &LoadError{Path: path, Err: err}
	}
	pkg, ok := f.pkgs[path]
	if !ok {
		return nil, &LoadError{Path: path, Err: errNotLoaded}
	}
	return pkg, nil
}

func newFakeBuilder(opts Options, pkgs ...*Package) (*Builder, *fakeSource) {
	src := &fakeSource{roots: []string{pkgs[0].Path}, pkgs: map[string]*Package{}}
	for _, p := range pkgs {
		src.pkgs[p.Path] = p
	}
	b := New(opts)
	b.Source = src
	return b, src
}

func names(nodes []*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func TestBuildImportsFollowsNamespace(t *testing.T) {
	b, _ := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Members: []string{"Root"}, Imports: []string{"a/b", "fmt", "other/x"}},
		&Package{Path: "a/b", Name: "b", Members: []string{"B"}, Imports: []string{"a/b/c"}},
		&Package{Path: "a/b/c", Name: "c", Members: []string{"C"}},
		&Package{Path: "other/x", Name: "x", Members: []string{"X"}},
	)
	root, err := b.BuildImports(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b", "a/b/c"}, names(root.Flatten()))
	assert.Equal(t, []string{"Root"}, root.Members)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "a/b/c", root.Children[0].Children[0].Name)
}

func TestBuildImportsSelfReference(t *testing.T) {
	b, _ := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Imports: []string{"a", "a/b"}},
		&Package{Path: "a/b", Name: "b", Imports: []string{"a/b", "a"}},
	)
	root, err := b.BuildImports(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b"}, names(root.Flatten()))
}

func TestBuildImportsExcludesSiblingPrefix(t *testing.T) {
	b, _ := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Imports: []string{"ab", "a/b"}},
		&Package{Path: "a/b", Name: "b", Imports: []string{"a/bc"}},
		&Package{Path: "ab", Name: "ab"},
		&Package{Path: "a/bc", Name: "bc"},
	)
	root, err := b.BuildImports(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b"}, names(root.Flatten()))
}

func TestBuildImportsDeduplicatesSharedPackages(t *testing.T) {
	b, _ := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Imports: []string{"a/b", "a/b/c"}},
		&Package{Path: "a/b", Name: "b", Imports: []string{"a/b/c"}},
		&Package{Path: "a/b/c", Name: "c", Members: []string{"Shared"}},
	)
	root, err := b.BuildImports(context.Background(), "a")
	require.NoError(t, err)

	seen := map[string]int{}
	members := map[string]int{}
	require.NoError(t, root.Walk(func(n *Node, _ int) error {
		seen[n.Name]++
		for _, m := range n.Members {
			members[n.Name+"."+m]++
		}
		return nil
	}))
	assert.Equal(t, map[string]int{"a": 1, "a/b": 1, "a/b/c": 1}, seen)
	assert.Equal(t, map[string]int{"a/b/c.Shared": 1}, members)
	assert.Equal(t, []string{"a/b"}, names(root.Children))
}

func TestBuildImportsAttachesToNearestAncestor(t *testing.T) {
	b, _ := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Imports: []string{"a/x/y/z", "a/x"}},
		&Package{Path: "a/x", Name: "x"},
		&Package{Path: "a/x/y/z", Name: "z"},
	)
	root, err := b.BuildImports(context.Background(), "a")
	require.NoError(t, err)
	require.Equal(t, []string{"a/x"}, names(root.Children))
	assert.Equal(t, []string{"a/x/y/z"}, names(root.Children[0].Children))
}

func TestBuildImportsPropagatesLoadErrors(t *testing.T) {
	cause := errors.New("syntax error")
	b, src := newFakeBuilder(Options{},
		&Package{Path: "a", Name: "a", Imports: []string{"a/broken"}},
	)
	src.fail = map[string]error{"a/broken": cause}

	root, err := b.BuildImports(context.Background(), "a")
	assert.Nil(t, root)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "a/broken", loadErr.Path)
	assert.ErrorIs(t, err, cause)
}

func TestBuildImportsRejectsMultipleRoots(t *testing.T) {
	b, src := newFakeBuilder(Options{}, &Package{Path: "a", Name: "a"})
	src.roots = []string{"a", "b"}
	_, err := b.BuildImports(context.Background(), "./...")
	require.Error(t, err)
}

func TestAssembleSkipsCommands(t *testing.T) {
	pkgs := map[string]*Package{
		"a":            {Path: "a", Name: "a"},
		"a/cmd/tool":   {Path: "a/cmd/tool", Name: "main"},
		"a/cmd/tool/x": {Path: "a/cmd/tool/x", Name: "x"},
	}
	root := assemble("a", "", pkgs, false)
	assert.Equal(t, []string{"a", "a/cmd/tool/x"}, names(root.Flatten()))

	root = assemble("a", "", pkgs, true)
	assert.Equal(t, []string{"a", "a/cmd/tool", "a/cmd/tool/x"}, names(root.Flatten()))
	assert.Equal(t, []string{"a/cmd/tool"}, names(root.Children))
}

func TestAssembleCreatesMissingRoot(t *testing.T) {
	root := assemble("a", "/src/a", map[string]*Package{
		"a/b": {Path: "a/b", Name: "b"},
	}, false)
	assert.Equal(t, "a", root.Name)
	assert.Equal(t, "/src/a", root.Dir)
	assert.Empty(t, root.Members)
	assert.Equal(t, []string{"a/b"}, names(root.Children))
}
