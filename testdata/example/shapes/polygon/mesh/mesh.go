// Package mesh sits four levels below the fixture root.
package mesh

// Mesh is a triangle mesh.
type Mesh struct {
	Triangles int
}
