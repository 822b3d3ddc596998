// Package style provides shared UI styling primitives: status colors, icons
// and a theme derived from the active wallpaper palette.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wrp/internal/core/domain"
)

// Status colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Theme maps output elements to palette colors.
type Theme struct {
	Header  lipgloss.Color
	Label   lipgloss.Color
	Value   lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// NewTheme derives a theme from p.
func NewTheme(p domain.Palette) Theme {
	return Theme{
		Header:  lipgloss.Color(p.Primary),
		Label:   lipgloss.Color(p.Outline),
		Value:   lipgloss.Color(p.OnSurface),
		Accent:  lipgloss.Color(p.Tertiary),
		Muted:   lipgloss.Color(p.OutlineVariant),
		Success: lipgloss.Color(p.Secondary),
		Error:   lipgloss.Color(p.Error),
	}
}

// DefaultTheme is the theme for the fallback palette.
func DefaultTheme() Theme {
	return NewTheme(domain.DefaultPalette())
}
