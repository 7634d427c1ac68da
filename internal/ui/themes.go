package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/heroboard/internal/ui/components"
)

// Theme represents a color theme for the hero page
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor

	Border   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Selected lipgloss.AdaptiveColor
	Banner   lipgloss.AdaptiveColor // error banner background
}

// buildTheme creates a theme from [light, dark] pairs
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, border, muted, selected, banner [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:    lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success:   lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:   lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Selected:  lipgloss.AdaptiveColor{Light: selected[0], Dark: selected[1]},
		Banner:    lipgloss.AdaptiveColor{Light: banner[0], Dark: banner[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#DBEAFE", "#1E3A8A"},
		[2]string{"#FEE2E2", "#7F1D1D"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#CCCCCC", "#333333"},
		[2]string{"#FFFF00", "#880000"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"}, [2]string{"#EDF2F7", "#2D3748"},
		[2]string{"#FED7D7", "#63171B"})
)

// ThemeByName looks up a theme. Unknown names return the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme, true
	case "high-contrast":
		return HighContrastTheme, true
	case "minimal":
		return MinimalTheme, true
	default:
		return DefaultTheme, false
	}
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// Styles contains the styles the page renders with
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Banner   lipgloss.Style
	Spinner  lipgloss.Style
	Help     lipgloss.Style
	Frame    lipgloss.Style
	Overlay  lipgloss.Style
}

// NewStyles builds page styles for theme
func NewStyles(theme Theme) *Styles {
	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Banner: lipgloss.NewStyle().
			Foreground(theme.Error).
			Background(theme.Banner).
			Bold(true).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 2),
	}
}

// Palette returns the colors handed to components
func (s *Styles) Palette() components.Palette {
	return components.Palette{
		Primary:  s.Theme.Primary,
		Muted:    s.Theme.Muted,
		Selected: s.Theme.Selected,
		Accent:   s.Theme.Accent,
		Warning:  s.Theme.Warning,
	}
}

// Render applies style unless colors are disabled
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if IsColorDisabled() {
		return text
	}
	return style.Render(text)
}
