// Package ui provides shared UI constants and the common panel base.
package ui

// Base carries the focus flag and dimensions every panel needs. Embed it to
// get the standard accessors.
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component receives navigation keys.
func (b *Base) SetFocused(focused bool) { b.focused = focused }

// IsFocused reports whether the component is focused.
func (b Base) IsFocused() bool { return b.focused }

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// ListHeight returns the rows available for list content after overhead.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
