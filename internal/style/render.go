package style

import "github.com/charmbracelet/lipgloss"

// LipglossStyle converts a resolved parameter set into a lipgloss style for
// terminal rendering. Translucent colors are flattened here regardless of
// the context flag; the terminal has no alpha channel.
func (r Resolved) LipglossStyle(scheme Scheme) lipgloss.Style {
	s := lipgloss.NewStyle().
		Background(Flatten(r.Background, scheme)).
		Foreground(Flatten(r.Foreground, scheme)).
		Padding(r.Padding.Top, r.Padding.Right, r.Padding.Bottom, r.Padding.Left)

	if border, ok := r.borderStyle(); ok {
		s = s.Border(border)
	}

	return r.applyFont(s)
}

// borderStyle maps the border token to a lipgloss border. A positive corner
// radius upgrades a plain border to the rounded glyph set.
func (r Resolved) borderStyle() (lipgloss.Border, bool) {
	switch r.Border {
	case BorderNormal:
		if r.CornerRadius > 0 {
			return lipgloss.RoundedBorder(), true
		}
		return lipgloss.NormalBorder(), true
	case BorderRounded:
		return lipgloss.RoundedBorder(), true
	case BorderThick:
		return lipgloss.ThickBorder(), true
	case BorderDouble:
		return lipgloss.DoubleBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

func (r Resolved) applyFont(s lipgloss.Style) lipgloss.Style {
	switch r.Font {
	case FontCaption:
		return s.Faint(true)
	case FontEmphasis:
		return s.Bold(true)
	case FontTitle:
		return s.Bold(true).Underline(true)
	case FontDisplay:
		return s.Bold(true).Underline(true).Italic(true)
	default:
		return s
	}
}
