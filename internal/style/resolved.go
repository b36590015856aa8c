package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing represents padding around a component in terminal cells.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// HorizontalSpacing creates spacing on left and right sides only.
func HorizontalSpacing(size int) Spacing {
	return Spacing{Right: size, Left: size}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// FontToken is a semantic, ordinal typography token. Higher tokens read
// larger/heavier; size-category scaling bumps tokens upward, never down.
type FontToken int

const (
	FontCaption FontToken = iota
	FontBody
	FontEmphasis
	FontTitle
	FontDisplay
)

func (f FontToken) String() string {
	switch f {
	case FontCaption:
		return "caption"
	case FontEmphasis:
		return "emphasis"
	case FontTitle:
		return "title"
	case FontDisplay:
		return "display"
	default:
		return "body"
	}
}

// BorderToken selects the border drawn around a component.
type BorderToken int

const (
	BorderNone BorderToken = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

func (b BorderToken) String() string {
	switch b {
	case BorderNormal:
		return "normal"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	case BorderDouble:
		return "double"
	default:
		return "none"
	}
}

// Resolved is the concrete, immutable set of paint and layout parameters
// produced by Resolve. It is cheap to recompute and is never cached.
type Resolved struct {
	Background   lipgloss.Color
	Foreground   lipgloss.Color
	CornerRadius int
	Padding      Spacing
	Font         FontToken
	Border       BorderToken
	ShadowRadius int
	ShadowColor  lipgloss.Color
}

// Overrides carries explicit per-field replacements. Nil fields do not
// participate in merging; present fields win unconditionally over both the
// preset base and every context adjustment.
type Overrides struct {
	Background   *lipgloss.Color
	Foreground   *lipgloss.Color
	CornerRadius *int
	Padding      *Spacing
	Font         *FontToken
	Border       *BorderToken
	ShadowRadius *int
	ShadowColor  *lipgloss.Color
}

// IsZero reports whether no override field is set.
func (o Overrides) IsZero() bool {
	return o.Background == nil && o.Foreground == nil && o.CornerRadius == nil &&
		o.Padding == nil && o.Font == nil && o.Border == nil &&
		o.ShadowRadius == nil && o.ShadowColor == nil
}

// Request pairs a preset tag with optional overrides. Callers build one per
// render; it has no lifecycle beyond the Resolve call that consumes it.
type Request struct {
	Preset    Preset
	Overrides Overrides
}

// Helper constructors for pointer-typed override fields.

// Color returns a pointer to the given color for use in Overrides.
func Color(c lipgloss.Color) *lipgloss.Color { return &c }

// Int returns a pointer to the given int for use in Overrides.
func Int(v int) *int { return &v }

// Font returns a pointer to the given font token for use in Overrides.
func Font(f FontToken) *FontToken { return &f }

// Border returns a pointer to the given border token for use in Overrides.
func Border(b BorderToken) *BorderToken { return &b }

// Pad returns a pointer to the given spacing for use in Overrides.
func Pad(s Spacing) *Spacing { return &s }
