// Package styles provides the lipgloss palettes used by CLI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Palette{
	"tokyo-night": {
		Primary: lipgloss.Color("#7aa2f7"),
		Muted:   lipgloss.Color("#565f89"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary: lipgloss.Color("#83a598"),
		Muted:   lipgloss.Color("#665c54"),
		Success: lipgloss.Color("#b8bb26"),
		Warning: lipgloss.Color("#fabd2f"),
		Error:   lipgloss.Color("#fb4934"),
	},
	"mono": {
		Primary: lipgloss.Color("15"),
		Muted:   lipgloss.Color("8"),
		Success: lipgloss.Color("15"),
		Warning: lipgloss.Color("15"),
		Error:   lipgloss.Color("15"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette = themes[DefaultTheme]

// SetTheme sets the active palette.
func SetTheme(p Palette) {
	CurrentPalette = p
}

// Styles is a set of semantic styles bound to a renderer.
type Styles struct {
	Header    lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Completed lipgloss.Style
	Pending   lipgloss.Style
}

// New builds styles from the current palette for the given renderer. Using a
// renderer bound to the destination writer keeps escape codes out of pipes
// and files.
func New(r *lipgloss.Renderer) Styles {
	p := CurrentPalette
	return Styles{
		Header:    r.NewStyle().Foreground(p.Primary).Bold(true),
		Muted:     r.NewStyle().Foreground(p.Muted),
		Success:   r.NewStyle().Foreground(p.Success),
		Warning:   r.NewStyle().Foreground(p.Warning),
		Error:     r.NewStyle().Foreground(p.Error).Bold(true),
		Completed: r.NewStyle().Foreground(p.Success),
		Pending:   r.NewStyle().Foreground(p.Warning),
	}
}
