package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the terminal rendering of a view.
type Palette struct {
	Accent     lipgloss.Color
	AccentDark lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color
	Muted      lipgloss.Color
	Card       lipgloss.Color
	Dark       bool
	Large      bool
	Compact    bool
}

// Palette converts the view into lipgloss colors.
func (v *View) Palette() Palette {
	accent := v.Var(VarPrimaryColor)
	darker := AdjustColor(accent, gradientShade)
	if h := v.Surface(SurfaceHeader); h != nil && h.Gradient != nil {
		accent, darker = h.Gradient.From, h.Gradient.To
	}

	p := Palette{
		Accent:     lipgloss.Color(accent),
		AccentDark: lipgloss.Color(darker),
		Foreground: lipgloss.Color("#212121"),
		Background: lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("241"),
		Card:       lipgloss.Color("#f8f9fa"),
	}
	if c := v.Surface(SurfaceList); c != nil && c.Background != "" {
		p.Card = lipgloss.Color(c.Background)
	}
	if v.HasClass(ClassDarkMode) {
		p.Dark = true
		p.Foreground = lipgloss.Color("#e0e0e0")
		p.Background = lipgloss.Color("#121212")
		p.Muted = lipgloss.Color("245")
		p.Card = lipgloss.Color("#1e1e1e")
	}
	switch v.FontClass() {
	case "large":
		p.Large = true
	case "small":
		p.Compact = true
	}
	return p
}
