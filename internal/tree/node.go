// Package tree discovers the packages below a Go import path and arranges
// them into a namespace tree, recording the exported functions and types
// each package owns.
//
// Two discovery strategies are provided. BuildImports follows the import
// graph of a loaded root package, descending only into imports that live
// inside the importer's namespace. BuildDir walks a directory on disk and
// treats every directory holding Go files as a package.
package tree

import (
	"path"
	"strings"
)

// Node is one package in the tree.
type Node struct {
	// Name is the import path of the package. It is unique within a tree.
	Name string
	// Dir is the package directory, if known.
	Dir string
	// Members lists the exported functions and type names declared by the
	// package, sorted.
	Members []string
	// Children holds the nearest nested packages, sorted by Name.
	Children []*Node
}

// Within reports whether child lives strictly inside the parent namespace.
func Within(parent, child string) bool {
	if parent == "" || child == "" {
		return false
	}
	return strings.HasPrefix(child, parent+"/")
}

// Walk visits n and its descendants depth first, parents before children.
// The root has depth zero. A non-nil error from fn stops the walk.
func (n *Node) Walk(fn func(n *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) error, depth int) error {
	if n == nil {
		return nil
	}
	if err := fn(n, depth); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Flatten returns every node of the tree in pre-order.
func (n *Node) Flatten() []*Node {
	var out []*Node
	_ = n.Walk(func(c *Node, _ int) error {
		out = append(out, c)
		return nil
	})
	return out
}

// Find returns the node named name, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	_ = n.Walk(func(c *Node, _ int) error {
		if c.Name == name {
			found = c
			return errStop
		}
		return nil
	})
	return found
}

// assemble links the loaded packages below root by nearest-ancestor
// containment. Packages outside root are ignored. Command packages other
// than the root are dropped unless includeMain is set, and their nested
// packages attach to the next kept ancestor.
func assemble(root, rootDir string, pkgs map[string]*Package, includeMain bool) *Node {
	nodes := make(map[string]*Node, len(pkgs))
	for _, p := range sortedKeys(pkgs) {
		pkg := pkgs[p]
		if p != root && !Within(root, p) {
			continue
		}
		if p != root && pkg.Name == "main" && !includeMain {
			continue
		}
		nodes[p] = &Node{Name: p, Dir: pkg.Dir, Members: pkg.Members}
	}
	top, ok := nodes[root]
	if !ok {
		top = &Node{Name: root, Dir: rootDir}
		nodes[root] = top
	}
	for _, p := range sortedKeys(nodes) {
		if p == root {
			continue
		}
		parent := nearestAncestor(p, root, nodes)
		parent.Children = append(parent.Children, nodes[p])
	}
	return top
}

func nearestAncestor(p, root string, nodes map[string]*Node) *Node {
	for q := path.Dir(p); q != root && Within(root, q); q = path.Dir(q) {
		if n, ok := nodes[q]; ok {
			return n
		}
	}
	return nodes[root]
}
