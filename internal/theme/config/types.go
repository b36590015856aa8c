package config

// File is the YAML schema for a custom theme. Slots left out inherit the
// built-in default theme, so a file only has to name what it changes.
type File struct {
	Name    string        `yaml:"name" validate:"required,theme_name"`
	Palette PaletteConfig `yaml:"palette"`
}

// PaletteConfig mirrors theme.Palette with every slot optional.
type PaletteConfig struct {
	Primary   *SlotConfig `yaml:"primary"`
	Secondary *SlotConfig `yaml:"secondary"`
	Surface   *SlotConfig `yaml:"surface"`
	Success   *SlotConfig `yaml:"success"`
	Warning   *SlotConfig `yaml:"warning"`
	Danger    *SlotConfig `yaml:"danger"`
	Info      *SlotConfig `yaml:"info"`
	Neutral   *SlotConfig `yaml:"neutral"`
}

// SlotConfig mirrors theme.ColourSet; unspecified members inherit.
type SlotConfig struct {
	Base     *PairConfig `yaml:"base"`
	OnBase   *PairConfig `yaml:"on_base"`
	Muted    *PairConfig `yaml:"muted"`
	Contrast *PairConfig `yaml:"contrast"`
}

// PairConfig is an adaptive color with light and dark scheme variants.
type PairConfig struct {
	Light string `yaml:"light" validate:"required,hex_color"`
	Dark  string `yaml:"dark" validate:"required,hex_color"`
}
