// Package theme applies persisted presentation preferences (dark mode,
// accent color, font size) to a View and derives the darker accent shade
// used for gradient endpoints.
package theme

import (
	"log/slog"

	"github.com/marcus/basket/internal/models"
)

// Selectors in the override block.
const (
	SelectorToggle   = "input:checked + .toggle-slider"
	SelectorProgress = ".progress-bar"
	SelectorNav      = ".nav-item.active"
)

// gradientShade is the channel offset for the dark end of a gradient.
const gradientShade = -20

// Engine applies preferences to a view.
type Engine struct {
	prefs models.Preferences
	view  *View
}

// NewEngine binds preferences to a view. A nil view gets the default view.
func NewEngine(prefs models.Preferences, view *View) *Engine {
	if view == nil {
		view = NewView()
	}
	return &Engine{prefs: prefs, view: view}
}

// View returns the view being themed
func (e *Engine) View() *View {
	return e.view
}

// Apply runs the startup sequence: dark mode, persisted theme color, font size.
func (e *Engine) Apply() {
	e.ApplyDarkMode()
	e.ApplyThemeColor(e.prefs.ThemeColor)
	e.ApplyFontSize()
}

// ApplyDarkMode activates the dark-mode class when the preference is on.
func (e *Engine) ApplyDarkMode() {
	if e.prefs.DarkMode {
		e.view.AddClass(ClassDarkMode)
	}
}

// ApplyThemeColor propagates color to every themable surface. An empty
// color leaves the view untouched.
func (e *Engine) ApplyThemeColor(color string) {
	if color == "" {
		return
	}
	color = NormalizeColor(color)
	darker := AdjustColor(color, gradientShade)

	e.view.SetVar(VarPrimaryColor, color)

	for _, s := range e.view.Surfaces() {
		if s.Gradient != nil {
			s.Gradient = &Gradient{From: color, To: darker}
		}
	}

	for _, name := range []string{ControlFAB, ControlAddList} {
		if c := e.view.Control(name); c != nil {
			c.Background = color
		}
	}

	e.view.override = []Rule{
		{Selector: SelectorToggle, Property: "background-color", Value: color},
		{Selector: SelectorProgress, Property: "background", Value: color},
		{Selector: SelectorNav, Property: "color", Value: color},
	}

	slog.Debug("theme: applied color", "color", color, "darker", darker)
}

// ApplyFontSize activates font-<size> when a size is persisted.
func (e *Engine) ApplyFontSize() {
	if e.prefs.FontSize == "" {
		return
	}
	e.view.AddClass(fontClassPrefix + string(e.prefs.FontSize))
}
