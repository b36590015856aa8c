// Package ui defines the minimal contract components render through.
package ui

// Renderable is anything that can draw itself to a string.
type Renderable interface {
	View() string
}
