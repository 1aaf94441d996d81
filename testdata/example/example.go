// Package example is the fixture tree rendered by go-mkdocs tests.
package example

import (
	"fmt"
	"io"

	"github.com/agentflare-ai/go-mkdocs/testdata/example/shapes"
	"github.com/agentflare-ai/go-mkdocs/testdata/example/shapes/polygon"
)

// Answer documents an exported constant.
const Answer = 42

// Default is a package-level variable and not a documentable member.
var Default = NewGreeter("world")

// Println is a function value bound to a variable.
var Println = fmt.Println

// Writer re-exports a type declared in another package.
type Writer = io.Writer

// Names is a local alias of an unnamed type.
type Names = []string

// Greeter produces greeting messages.
type Greeter struct {
	Name  string
	Shape shapes.Shape
	Poly  polygon.Polygon
}

// NewGreeter constructs a Greeter.
func NewGreeter(name string) *Greeter {
	return &Greeter{Name: name}
}

// Greet returns a friendly message.
func (g *Greeter) Greet() string {
	return helper(g.Name)
}

func helper(name string) string {
	return "hello " + name
}
