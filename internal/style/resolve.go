// Package style resolves preset tags plus ambient context into concrete
// paint and layout parameters.
//
// Resolution is a pure function with a fixed precedence: explicit overrides
// win over context adjustments, which win over the preset base. The package
// is a leaf; it never calls back into rendering code and holds no state
// beyond the static preset table.
package style

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Resolve merges the preset base row, context adjustments, and overrides
// into a Resolved value. Same inputs always yield the same output; there is
// no failure path. Unknown presets fall back to PresetDefault.
func Resolve(req Request, ctx Context) Resolved {
	row, ok := presetTable[req.Preset]
	if !ok {
		row = presetTable[PresetDefault]
	}

	res := Resolved{
		Background:   resolveColor(row.Background, ctx),
		Foreground:   resolveColor(row.Foreground, ctx),
		CornerRadius: row.CornerRadius,
		Padding:      row.Padding,
		Font:         row.Font,
		Border:       row.Border,
		ShadowRadius: row.ShadowRadius,
		ShadowColor:  resolveColor(row.ShadowColor, ctx),
	}

	if steps := scaleSteps(ctx.SizeCategory); steps > 0 {
		res.Padding = scalePadding(res.Padding, steps)
		res.Font = scaleFont(res.Font, steps)
	}

	applyOverrides(&res, req.Overrides)
	return res
}

// resolveColor picks the scheme variant and, when the context asks for
// reduced transparency, flattens any translucent fill to its opaque
// equivalent over the scheme surface.
func resolveColor(pair ColorPair, ctx Context) lipgloss.Color {
	hex := pair.pick(ctx.Scheme)
	if ctx.ReduceTransparency {
		hex = flattenHex(hex, ctx.Scheme)
	}
	return lipgloss.Color(hex)
}

// Flatten converts a possibly-translucent color to an opaque one by alpha
// blending over the scheme surface. Opaque colors pass through untouched.
// Renderers use this unconditionally; resolution uses it only when the
// context sets ReduceTransparency.
func Flatten(c lipgloss.Color, scheme Scheme) lipgloss.Color {
	return lipgloss.Color(flattenHex(string(c), scheme))
}

func flattenHex(hex string, scheme Scheme) string {
	if !strings.HasPrefix(hex, "#") || len(hex) != 9 {
		return hex
	}

	fg, err := colorful.Hex(hex[:7])
	if err != nil {
		return hex
	}
	alphaByte, err := strconv.ParseUint(hex[7:9], 16, 8)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(surface.pick(scheme))
	if err != nil {
		return hex
	}

	alpha := float64(alphaByte) / 255.0
	return bg.BlendRgb(fg, alpha).Hex()
}

// scaleSteps returns how many scaling steps the category sits above the
// threshold. Categories at or below the threshold resolve unchanged.
func scaleSteps(c SizeCategory) int {
	if c <= scaleThreshold {
		return 0
	}
	steps := int(c - scaleThreshold)
	if max := int(SizeTripleExtraLarge - scaleThreshold); steps > max {
		steps = max
	}
	return steps
}

// scalePadding widens padding one cell per step. Horizontal sides always
// grow; vertical sides grow only when already nonzero, since rows are the
// scarce dimension in a terminal.
func scalePadding(p Spacing, steps int) Spacing {
	p.Left += steps
	p.Right += steps
	if p.Top > 0 {
		p.Top += steps
	}
	if p.Bottom > 0 {
		p.Bottom += steps
	}
	return p
}

func scaleFont(f FontToken, steps int) FontToken {
	scaled := f + FontToken(steps)
	if scaled > FontDisplay {
		scaled = FontDisplay
	}
	return scaled
}

// applyOverrides replaces resolved fields with any explicitly set override,
// unconditionally. This runs last: an override always beats both the preset
// base and every context adjustment.
func applyOverrides(res *Resolved, o Overrides) {
	if o.Background != nil {
		res.Background = *o.Background
	}
	if o.Foreground != nil {
		res.Foreground = *o.Foreground
	}
	if o.CornerRadius != nil {
		res.CornerRadius = *o.CornerRadius
	}
	if o.Padding != nil {
		res.Padding = *o.Padding
	}
	if o.Font != nil {
		res.Font = *o.Font
	}
	if o.Border != nil {
		res.Border = *o.Border
	}
	if o.ShadowRadius != nil {
		res.ShadowRadius = *o.ShadowRadius
	}
	if o.ShadowColor != nil {
		res.ShadowColor = *o.ShadowColor
	}
}
