package style

import "fmt"

// Preset is a named bundle of base style parameters. Unknown tags degrade to
// PresetDefault during resolution; misconfiguration here is cosmetic, never
// safety-critical, so there is no runtime error path.
type Preset int

const (
	PresetDefault Preset = iota
	PresetOutline
	PresetSubtle
	PresetGhost
	PresetTinted
	PresetFilled
)

func (p Preset) String() string {
	switch p {
	case PresetOutline:
		return "outline"
	case PresetSubtle:
		return "subtle"
	case PresetGhost:
		return "ghost"
	case PresetTinted:
		return "tinted"
	case PresetFilled:
		return "filled"
	default:
		return "default"
	}
}

// Presets returns every enumerated preset tag, in declaration order.
func Presets() []Preset {
	return []Preset{
		PresetDefault,
		PresetOutline,
		PresetSubtle,
		PresetGhost,
		PresetTinted,
		PresetFilled,
	}
}

// ColorPair is an adaptive color carrying light and dark scheme variants as
// hex strings. An optional trailing alpha byte (#RRGGBBAA) marks a
// translucent fill; resolution flattens it when the context asks for reduced
// transparency, and rendering always flattens before handing the color to
// the terminal.
type ColorPair struct {
	Light string
	Dark  string
}

// pick returns the variant for the given scheme.
func (c ColorPair) pick(s Scheme) string {
	if s == SchemeDark {
		return c.Dark
	}
	return c.Light
}

// presetRow is one row of the static preset table: the base parameter set a
// preset resolves to before context adjustments and overrides.
type presetRow struct {
	Background   ColorPair
	Foreground   ColorPair
	CornerRadius int
	Padding      Spacing
	Font         FontToken
	Border       BorderToken
	ShadowRadius int
	ShadowColor  ColorPair
}

// Surface colors the flattening step blends translucent fills against.
// Values match the slate family used across the palette.
var surface = ColorPair{Light: "#f9fafb", Dark: "#111827"}

// presetTable maps every preset tag to its base row. The table must stay
// exhaustive over Presets(); absence is a programming error caught at init.
var presetTable = map[Preset]presetRow{
	PresetDefault: {
		Background:   ColorPair{Light: "#3b82f6", Dark: "#60a5fa"},
		Foreground:   ColorPair{Light: "#f8fafc", Dark: "#0b1120"},
		CornerRadius: 2,
		Padding:      SymmetricSpacing(0, 2),
		Font:         FontBody,
		Border:       BorderRounded,
		ShadowColor:  surface,
	},
	PresetOutline: {
		Background:   surface,
		Foreground:   ColorPair{Light: "#3b82f6", Dark: "#60a5fa"},
		CornerRadius: 2,
		Padding:      SymmetricSpacing(0, 2),
		Font:         FontBody,
		Border:       BorderRounded,
		ShadowColor:  surface,
	},
	PresetSubtle: {
		Background:   ColorPair{Light: "#3b82f633", Dark: "#60a5fa33"},
		Foreground:   ColorPair{Light: "#2563eb", Dark: "#93c5fd"},
		CornerRadius: 2,
		Padding:      SymmetricSpacing(0, 2),
		Font:         FontBody,
		Border:       BorderNone,
		ShadowColor:  surface,
	},
	PresetGhost: {
		Background:   surface,
		Foreground:   ColorPair{Light: "#475569", Dark: "#94a3b8"},
		CornerRadius: 0,
		Padding:      HorizontalSpacing(1),
		Font:         FontBody,
		Border:       BorderNone,
		ShadowColor:  surface,
	},
	PresetTinted: {
		Background:   ColorPair{Light: "#a855f74d", Dark: "#c084fc4d"},
		Foreground:   ColorPair{Light: "#7c3aed", Dark: "#e9d5ff"},
		CornerRadius: 2,
		Padding:      SymmetricSpacing(0, 2),
		Font:         FontBody,
		Border:       BorderNone,
		ShadowColor:  surface,
	},
	PresetFilled: {
		Background:   ColorPair{Light: "#2563eb", Dark: "#1d4ed8"},
		Foreground:   ColorPair{Light: "#f8fafc", Dark: "#f8fafc"},
		CornerRadius: 3,
		Padding:      SymmetricSpacing(1, 3),
		Font:         FontEmphasis,
		Border:       BorderRounded,
		ShadowRadius: 1,
		ShadowColor:  ColorPair{Light: "#0f172a66", Dark: "#00000066"},
	},
}

func init() {
	// Construction-time exhaustiveness check: every enumerated tag needs a
	// table row before any resolution can run.
	for _, p := range Presets() {
		if _, ok := presetTable[p]; !ok {
			panic(fmt.Sprintf("style: preset table missing row for %q", p))
		}
	}
}
