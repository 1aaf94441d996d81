package tree

import (
	"context"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Lister reports the files under dir that belong to the tree, as paths
// relative to dir.
type Lister interface {
	List(ctx context.Context, dir string) ([]string, error)
}

// GitLister lists the files tracked by git.
type GitLister struct{}

func (GitLister) List(ctx context.Context, dir string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files in %s: %w", dir, err)
	}
	var files []string
	for _, name := range strings.Split(string(out), "\x00") {
		if name == "" {
			continue
		}
		files = append(files, filepath.FromSlash(name))
	}
	return files, nil
}

// findModule returns the directory holding the go.mod that encloses dir and
// the module path it declares.
func findModule(dir string) (string, string, error) {
	for cur := dir; ; {
		data, err := os.ReadFile(filepath.Join(cur, "go.mod"))
		switch {
		case err == nil:
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", "", fmt.Errorf("module path missing from %s", filepath.Join(cur, "go.mod"))
			}
			return cur, modPath, nil
		case !os.IsNotExist(err):
			return "", "", fmt.Errorf("findModule failed: %w", err)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", "", fmt.Errorf("%w from %s or its parent dirs", ErrGoModMissing, dir)
		}
		cur = parent
	}
}

// importPath joins the module path and the slash form of dir relative to
// the module root.
func importPath(modRoot, modPath, dir string) (string, error) {
	rel, err := filepath.Rel(modRoot, dir)
	if err != nil {
		return "", err
	}
	if rel == "." {
		return modPath, nil
	}
	return path.Join(modPath, filepath.ToSlash(rel)), nil
}

// goFiles groups the non-test Go files below root by directory. Paths are
// relative to root. Directories the go tool ignores are skipped, and so are
// nested modules and files excluded by build constraints.
func goFiles(root string) (map[string][]string, error) {
	files := make(map[string][]string)
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p == root {
				return nil
			}
			if ignoredDir(d.Name()) {
				return filepath.SkipDir
			}
			if _, err := os.Stat(filepath.Join(p, "go.mod")); err == nil {
				return filepath.SkipDir
			}
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			return nil
		}
		if ok, err := build.Default.MatchFile(filepath.Dir(p), name); err != nil || !ok {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		dir := filepath.Dir(rel)
		files[dir] = append(files[dir], rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func ignoredDir(name string) bool {
	switch name {
	case "testdata", "vendor":
		return true
	}
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// keepListed drops every file not present in listed.
func keepListed(files map[string][]string, listed []string) map[string][]string {
	allowed := make(map[string]struct{}, len(listed))
	for _, f := range listed {
		allowed[filepath.Clean(f)] = struct{}{}
	}
	kept := make(map[string][]string, len(files))
	for dir, names := range files {
		for _, name := range names {
			if _, ok := allowed[name]; ok {
				kept[dir] = append(kept[dir], name)
			}
		}
	}
	return kept
}

// declaredNames returns the exported top-level functions and types declared
// in files, given relative to root.
func declaredNames(root string, files []string) (map[string]bool, error) {
	fset := token.NewFileSet()
	names := make(map[string]bool)
	for _, name := range files {
		f, err := parser.ParseFile(fset, filepath.Join(root, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Recv == nil && d.Name.IsExported() {
					names[d.Name.Name] = true
				}
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					if ts, ok := spec.(*ast.TypeSpec); ok && ts.Name.IsExported() {
						names[ts.Name.Name] = true
					}
				}
			}
		}
	}
	return names, nil
}
