// Package unused is never imported, so only directory discovery finds it.
package unused

// Orphan is declared but unreachable through imports.
func Orphan() {}
