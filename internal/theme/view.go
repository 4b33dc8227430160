package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Well-known names in the default view.
const (
	ClassDarkMode   = "dark-mode"
	fontClassPrefix = "font-"

	VarPrimaryColor = "--primary-color"

	SurfaceHeader  = "header"
	SurfaceAccount = "account-card"
	SurfaceList    = "list-card"

	ControlFAB     = "fab"
	ControlAddList = "add-list-btn"

	// DefaultAccent is the accent before any theme color is applied.
	DefaultAccent = "#4caf50"
)

// Gradient is a two-stop background.
type Gradient struct {
	From string
	To   string
}

// Surface is a themable element of the view. Surfaces with a Gradient are
// rewritten whenever the accent changes.
type Surface struct {
	Name       string
	Background string
	Gradient   *Gradient
}

// Rule is one declaration in the theme override block.
type Rule struct {
	Selector string
	Property string
	Value    string
}

// View is the presentation state that the theme engine mutates and the
// renderers read.
type View struct {
	classes  map[string]bool
	vars     map[string]string
	surfaces []*Surface
	controls map[string]*Surface
	override []Rule
}

// NewView returns the default light view.
func NewView() *View {
	return &View{
		classes: map[string]bool{},
		vars:    map[string]string{VarPrimaryColor: DefaultAccent},
		surfaces: []*Surface{
			{Name: SurfaceHeader, Gradient: &Gradient{From: DefaultAccent, To: AdjustColor(DefaultAccent, -20)}},
			{Name: SurfaceAccount, Gradient: &Gradient{From: "#ffd700", To: "#ffa500"}},
			{Name: SurfaceList, Background: "#f8f9fa"},
		},
		controls: map[string]*Surface{
			ControlFAB:     {Name: ControlFAB, Background: DefaultAccent},
			ControlAddList: {Name: ControlAddList, Background: DefaultAccent},
		},
	}
}

// HasClass reports whether class is active
func (v *View) HasClass(class string) bool {
	return v.classes[class]
}

// AddClass activates class
func (v *View) AddClass(class string) {
	v.classes[class] = true
}

// Classes returns active classes sorted
func (v *View) Classes() []string {
	out := make([]string, 0, len(v.classes))
	for c, on := range v.classes {
		if on {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// FontClass returns the active font-* class without its prefix, or "".
func (v *View) FontClass() string {
	for _, c := range v.Classes() {
		if strings.HasPrefix(c, fontClassPrefix) {
			return strings.TrimPrefix(c, fontClassPrefix)
		}
	}
	return ""
}

// Var returns a view variable
func (v *View) Var(name string) string {
	return v.vars[name]
}

// SetVar sets a view variable
func (v *View) SetVar(name, value string) {
	v.vars[name] = value
}

// Surface returns the named surface, or nil.
func (v *View) Surface(name string) *Surface {
	for _, s := range v.surfaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Surfaces returns every surface in declaration order
func (v *View) Surfaces() []*Surface {
	return v.surfaces
}

// Control returns the named control, or nil.
func (v *View) Control(name string) *Surface {
	return v.controls[name]
}

// Override returns the override rules, nil before any theme color is applied.
func (v *View) Override() []Rule {
	return v.override
}

// OverrideValue returns the value for selector in the override block.
func (v *View) OverrideValue(selector string) (string, bool) {
	for _, r := range v.override {
		if r.Selector == selector {
			return r.Value, true
		}
	}
	return "", false
}

// OverrideBlock renders the override rules as a stylesheet fragment.
func (v *View) OverrideBlock() string {
	var b strings.Builder
	for _, r := range v.override {
		fmt.Fprintf(&b, "%s {\n    %s: %s !important;\n}\n", r.Selector, r.Property, r.Value)
	}
	return b.String()
}
