// Package polygon builds polygons.
package polygon

import "github.com/agentflare-ai/go-mkdocs/testdata/example/shapes/polygon/mesh"

// Polygon is a closed chain of edges.
type Polygon struct {
	Sides  int
	Length float64
	Mesh   mesh.Mesh
}

// Regular returns a regular polygon.
func Regular(sides int, length float64) Polygon {
	return Polygon{Sides: sides, Length: length}
}
