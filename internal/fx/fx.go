// Package fx provides the math behind cosmetic effects (shimmer, glow).
// Effects are pure functions of elapsed time: callers own the clock, the
// package owns no per-frame state, and identical inputs always produce
// identical output.
package fx

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

// FrozenPhase is the neutral phase used when the ambient context asks for
// reduced motion: the shimmer band sits mid-sweep and never moves.
const FrozenPhase = 0.5

// shimmerBand is the half-width of the highlight band in phase units.
const shimmerBand = 0.15

// ShimmerPhase maps elapsed time onto a phase in [0,1), wrapping every
// period. Non-positive periods pin the phase at zero.
func ShimmerPhase(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	frac := float64(elapsed%period) / float64(period)
	if frac < 0 {
		frac += 1
	}
	return frac
}

// Phase resolves the shimmer phase for an ambient context, honoring
// ReduceMotion by freezing at FrozenPhase.
func Phase(ctx style.Context, elapsed, period time.Duration) float64 {
	if ctx.ReduceMotion {
		return FrozenPhase
	}
	return ShimmerPhase(elapsed, period)
}

// GlowIntensity is a triangle wave in [0,1]: it rises for the first half of
// the period and falls for the second, so a glowing border pulses smoothly.
func GlowIntensity(elapsed, period time.Duration) float64 {
	phase := ShimmerPhase(elapsed, period)
	if phase < 0.5 {
		return 2 * phase
	}
	return 2 - 2*phase
}

// ShimmerColor returns the color for a cell at normalized position pos when
// the shimmer band is centered at phase. Cells inside the band blend toward
// the highlight, peaking at the center; cells outside render the base.
func ShimmerColor(base, highlight lipgloss.Color, phase, pos float64) lipgloss.Color {
	distance := math.Abs(pos - phase)
	// The band wraps around the ends of the sweep.
	if wrapped := 1 - distance; wrapped < distance {
		distance = wrapped
	}
	if distance >= shimmerBand {
		return base
	}

	from, err := colorful.Hex(string(base))
	if err != nil {
		return base
	}
	to, err := colorful.Hex(string(highlight))
	if err != nil {
		return base
	}

	strength := 1 - distance/shimmerBand
	return lipgloss.Color(from.BlendRgb(to, strength).Hex())
}

// Gradient returns n evenly spaced stops between from and to, endpoints
// included. Useful for glow ramps and progress fills.
func Gradient(from, to lipgloss.Color, n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	start, err := colorful.Hex(string(from))
	if err != nil {
		return []lipgloss.Color{from}
	}
	end, err := colorful.Hex(string(to))
	if err != nil {
		return []lipgloss.Color{from}
	}

	stops := make([]lipgloss.Color, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		stops[i] = lipgloss.Color(start.BlendRgb(end, t).Hex())
	}
	return stops
}
