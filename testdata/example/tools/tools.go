//go:build tools

// Package tools pins build tooling and is never part of a normal build.
package tools

// Pinned is excluded by the tools constraint.
func Pinned() {}
