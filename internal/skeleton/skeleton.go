// Package skeleton renders package trees as Markdown skeletons of
// mkdocstrings directives.
//
// Every package becomes a heading followed by a "::: <import path>"
// directive line. Heading depth follows tree depth but never exceeds
// MaxHeading.
package skeleton

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/go-mkdocs/internal/tree"
)

// MaxHeading is the deepest heading level emitted.
const MaxHeading = 3

const headingLevelKey = "heading_level"

// Options control what each block contains.
type Options struct {
	// BaseLevel shifts every heading down by the given number of levels.
	BaseLevel int
	// Members adds one directive per documentable member.
	Members bool
	// HeadingLevel adds a heading_level option to every directive, one
	// level below the heading the directive sits under.
	HeadingLevel bool
	// DirectiveOptions are extra mkdocstrings options attached to every
	// directive.
	DirectiveOptions map[string]any
}

// Renderer turns trees into lines of Markdown.
type Renderer struct {
	opts  Options
	extra []string
}

// New validates opts and returns a Renderer.
func New(opts Options) (*Renderer, error) {
	r := &Renderer{opts: opts}
	extra := make(map[string]any, len(opts.DirectiveOptions))
	for k, v := range opts.DirectiveOptions {
		if opts.HeadingLevel && k == headingLevelKey {
			continue
		}
		extra[k] = v
	}
	if len(extra) == 0 {
		return r, nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(extra); err != nil {
		return nil, fmt.Errorf("encode directive options: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode directive options: %w", err)
	}
	r.extra = strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	return r, nil
}

// HeadingLevel returns the heading level for a node at depth.
func HeadingLevel(depth int) int {
	return min(max(depth, 0)+1, MaxHeading)
}

// DisplayName strips the root import path from the front of name. The root
// itself keeps its full path.
func DisplayName(name, root string) string {
	if tree.Within(root, name) {
		return strings.TrimPrefix(name, root+"/")
	}
	return name
}

// Depth counts the path elements of name below root. Names outside root
// count every element after the first.
func Depth(name, root string) int {
	switch {
	case name == root:
		return 0
	case tree.Within(root, name):
		return strings.Count(DisplayName(name, root), "/") + 1
	default:
		return strings.Count(name, "/")
	}
}

// Tree renders root and its descendants depth first.
func (r *Renderer) Tree(root *tree.Node) []string {
	if root == nil {
		return nil
	}
	return r.branch(root, root.Name, r.opts.BaseLevel)
}

func (r *Renderer) branch(n *tree.Node, root string, level int) []string {
	lines := r.block(n, root, HeadingLevel(level))
	lines = append(lines, "")
	for _, c := range n.Children {
		lines = append(lines, r.branch(c, root, level+1)...)
	}
	return append(lines, "")
}

// Flat renders nodes sorted by import path without descending into
// children. Heading levels come from each name's depth below root.
func (r *Renderer) Flat(nodes []*tree.Node, root string) []string {
	sorted := slices.Clone(nodes)
	slices.SortFunc(sorted, func(a, b *tree.Node) int {
		return strings.Compare(a.Name, b.Name)
	})
	var lines []string
	for _, n := range sorted {
		level := HeadingLevel(r.opts.BaseLevel + Depth(n.Name, root))
		lines = append(lines, r.block(n, root, level)...)
		lines = append(lines, "", "")
	}
	return lines
}

func (r *Renderer) block(n *tree.Node, root string, level int) []string {
	lines := []string{strings.Repeat("#", level) + " " + DisplayName(n.Name, root), ""}
	lines = append(lines, r.directive(n.Name, level)...)
	if r.opts.Members {
		for _, m := range n.Members {
			lines = append(lines, r.directive(n.Name+"."+m, level)...)
		}
	}
	return lines
}

func (r *Renderer) directive(name string, level int) []string {
	lines := []string{"::: " + name}
	if !r.opts.HeadingLevel && len(r.extra) == 0 {
		return lines
	}
	lines = append(lines, "    options:")
	if r.opts.HeadingLevel {
		lines = append(lines, fmt.Sprintf("        %s: %d", headingLevelKey, level+1))
	}
	for _, l := range r.extra {
		lines = append(lines, "        "+l)
	}
	return lines
}

var blankRun = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

// Collapse replaces every run of two or more blank lines with a single
// blank line.
func Collapse(text string) string {
	return blankRun.ReplaceAllString(text, "\n\n")
}

// Document joins lines into the final text: blank runs collapsed and a
// single trailing newline.
func Document(lines []string) string {
	text := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if text == "" {
		return ""
	}
	return Collapse(text) + "\n"
}

// Write sends text to stdout when path is empty or "-", otherwise to the
// file at path, creating parent directories as needed.
func Write(path string, stdout io.Writer, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
