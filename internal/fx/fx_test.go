package fx

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/glosskit/internal/style"
)

func TestShimmerPhaseIsPureAndWraps(t *testing.T) {
	period := 2 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"start", 0, 0},
		{"quarter", 500 * time.Millisecond, 0.25},
		{"half", time.Second, 0.5},
		{"wrapped", 2500 * time.Millisecond, 0.25},
		{"many periods", 10*time.Second + 500*time.Millisecond, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ShimmerPhase(tt.elapsed, period), 1e-9)
			// Same inputs, same output.
			assert.Equal(t, ShimmerPhase(tt.elapsed, period), ShimmerPhase(tt.elapsed, period))
		})
	}
}

func TestShimmerPhaseZeroPeriod(t *testing.T) {
	assert.Equal(t, 0.0, ShimmerPhase(time.Second, 0))
	assert.Equal(t, 0.0, ShimmerPhase(time.Second, -time.Second))
}

func TestPhaseHonorsReduceMotion(t *testing.T) {
	ctx := style.Context{ReduceMotion: true}
	for _, elapsed := range []time.Duration{0, time.Second, 3 * time.Second} {
		assert.Equal(t, FrozenPhase, Phase(ctx, elapsed, 2*time.Second))
	}

	moving := Phase(style.Context{}, 500*time.Millisecond, 2*time.Second)
	assert.InDelta(t, 0.25, moving, 1e-9)
}

func TestGlowIntensityTriangle(t *testing.T) {
	period := 2 * time.Second

	assert.InDelta(t, 0.0, GlowIntensity(0, period), 1e-9)
	assert.InDelta(t, 0.5, GlowIntensity(500*time.Millisecond, period), 1e-9)
	assert.InDelta(t, 1.0, GlowIntensity(time.Second, period), 1e-9)
	assert.InDelta(t, 0.5, GlowIntensity(1500*time.Millisecond, period), 1e-9)
}

func TestShimmerColorBand(t *testing.T) {
	base := lipgloss.Color("#1e293b")
	highlight := lipgloss.Color("#f8fafc")

	// Far from the band: base passes through.
	assert.Equal(t, base, ShimmerColor(base, highlight, 0.5, 0.0))

	// Band center: full highlight.
	assert.Equal(t, highlight, ShimmerColor(base, highlight, 0.5, 0.5))

	// Inside the band: somewhere in between.
	blended := ShimmerColor(base, highlight, 0.5, 0.45)
	assert.NotEqual(t, base, blended)
	assert.NotEqual(t, highlight, blended)
}

func TestShimmerColorWrapsAroundSweep(t *testing.T) {
	base := lipgloss.Color("#1e293b")
	highlight := lipgloss.Color("#f8fafc")

	// phase near 1.0 lights up cells near 0.0 through the wraparound.
	assert.NotEqual(t, base, ShimmerColor(base, highlight, 0.95, 0.02))
}

func TestGradientEndpoints(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	stops := Gradient(from, to, 5)
	assert.Len(t, stops, 5)
	assert.Equal(t, from, stops[0])
	assert.Equal(t, to, stops[4])

	assert.Nil(t, Gradient(from, to, 0))
	assert.Equal(t, []lipgloss.Color{from}, Gradient(from, to, 1))
}
