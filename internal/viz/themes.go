package viz

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoart/internal/palette"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
}

// themeFrom maps a five-color palette onto theme roles.
func themeFrom(name string, p palette.Palette) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.Color(p[1].String()),
		Secondary: lipgloss.Color(p[3].String()),
		Accent:    lipgloss.Color(p[4].String()),
		Text:      lipgloss.Color(p[0].String()),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#5fd068"),
		Error:     lipgloss.Color("#ff4757"),
	}
}

var (
	ThemeTerra    = themeFrom("terra", palette.Palette{palette.Eggshell, palette.TerraCotta, palette.Independence, palette.GreenSheen, palette.DeepChampagne})
	ThemeSunset   = themeFrom("sunset", palette.Palette{palette.LightYellow, palette.ParadisePink, palette.BlueMunsell, palette.CaribbeanGreen, palette.OrangeYellow})
	ThemeLavender = themeFrom("lavender", palette.Palette{palette.PalePurplePantone, palette.Manatee, palette.LanguidLavender, palette.LavenderWeb, palette.PalePink})

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	CurrentTheme = ThemeTerra

	Themes = []Theme{
		ThemeTerra,
		ThemeSunset,
		ThemeLavender,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to terra.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeTerra
}

// SetTheme selects the theme new views start from. Unknown names are
// rejected.
func SetTheme(name string) error {
	if !slices.Contains(ThemeNames(), name) {
		return fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
	}
	CurrentTheme = GetTheme(name)
	return nil
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
