// Package shapes declares the shape interface.
package shapes

import "github.com/agentflare-ai/go-mkdocs/testdata/example/shapes/polygon"

// Shape is anything with an area.
type Shape interface {
	Area() float64
}

// Square is a Shape.
type Square struct {
	Side float64
}

// Area implements Shape.
func (s Square) Area() float64 { return s.Side * s.Side }

// Outline returns the polygon outline of s.
func Outline(s Square) polygon.Polygon {
	return polygon.Regular(4, s.Side)
}
