package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color role names produced by the extraction tool.
const (
	RolePrimary            = "primary"
	RoleOnPrimary          = "on_primary"
	RolePrimaryContainer   = "primary_container"
	RoleOnPrimaryContainer = "on_primary_container"
	RoleSecondary          = "secondary"
	RoleOnSecondary        = "on_secondary"
	RoleSecondaryContainer = "secondary_container"
	RoleTertiary           = "tertiary"
	RoleError              = "error"
	RoleSurface            = "surface"
	RoleOnSurface          = "on_surface"
	RoleSurfaceContainer   = "surface_container"
	RoleOutline            = "outline"
	RoleOutlineVariant     = "outline_variant"
)

// Palette holds the color roles the helper themes its output with.
type Palette struct {
	Primary            string
	OnPrimary          string
	PrimaryContainer   string
	OnPrimaryContainer string
	Secondary          string
	OnSecondary        string
	SecondaryContainer string
	Tertiary           string
	Error              string
	Surface            string
	OnSurface          string
	SurfaceContainer   string
	Outline            string
	OutlineVariant     string
}

// DefaultPalette returns the Tokyo Night fallback used when no wallpaper colors exist.
func DefaultPalette() Palette {
	return Palette{
		Primary:            "#7aa2f7",
		OnPrimary:          "#1a1b26",
		PrimaryContainer:   "#3d59a1",
		OnPrimaryContainer: "#c0caf5",
		Secondary:          "#9ece6a",
		OnSecondary:        "#1a1b26",
		SecondaryContainer: "#414868",
		Tertiary:           "#bb9af7",
		Error:              "#f7768e",
		Surface:            "#1a1b26",
		OnSurface:          "#c0caf5",
		SurfaceContainer:   "#24283b",
		Outline:            "#565f89",
		OutlineVariant:     "#414868",
	}
}

// PaletteFromColors merges an extracted role mapping over the defaults.
// Unknown roles are ignored and empty values keep the default.
func PaletteFromColors(colors map[string]string) Palette {
	p := DefaultPalette()
	for _, r := range p.roles() {
		if v := colors[r.name]; v != "" {
			*r.value = v
		}
	}
	return p
}

// Roles returns the palette as ordered (role, hex) pairs.
func (p Palette) Roles() []RoleColor {
	roles := p.roles()
	out := make([]RoleColor, len(roles))
	for i, r := range roles {
		out[i] = RoleColor{Role: r.name, Hex: *r.value}
	}
	return out
}

// RoleColor is one entry of a palette listing.
type RoleColor struct {
	Role string
	Hex  string
}

type roleRef struct {
	name  string
	value *string
}

func (p *Palette) roles() []roleRef {
	return []roleRef{
		{RolePrimary, &p.Primary},
		{RoleOnPrimary, &p.OnPrimary},
		{RolePrimaryContainer, &p.PrimaryContainer},
		{RoleOnPrimaryContainer, &p.OnPrimaryContainer},
		{RoleSecondary, &p.Secondary},
		{RoleOnSecondary, &p.OnSecondary},
		{RoleSecondaryContainer, &p.SecondaryContainer},
		{RoleTertiary, &p.Tertiary},
		{RoleError, &p.Error},
		{RoleSurface, &p.Surface},
		{RoleOnSurface, &p.OnSurface},
		{RoleSurfaceContainer, &p.SurfaceContainer},
		{RoleOutline, &p.Outline},
		{RoleOutlineVariant, &p.OutlineVariant},
	}
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGB{}, ErrInvalidHexColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, ErrInvalidHexColor
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ANSIForeground returns the truecolor SGR sequence selecting c as foreground.
func (c RGB) ANSIForeground() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const (
	ps1Reset    = `\[\033[0m\]`
	ps1UserHost = `\u@\h`
	ps1Workdir  = `\w`
)

// PS1 renders a bash prompt fragment: user@host in the primary color, the
// working directory in the tertiary color. Roles that are missing or not
// valid hex fall back to the uncolored escape.
func PS1(colors map[string]string) string {
	if len(colors) == 0 {
		return ps1UserHost + ":" + ps1Workdir
	}

	var b strings.Builder
	if c, err := ParseHex(colors[RolePrimary]); err == nil {
		esc := ps1Color(c)
		b.WriteString(esc + `\u` + ps1Reset + "@" + esc + `\h` + ps1Reset)
	} else {
		b.WriteString(ps1UserHost)
	}
	b.WriteString(":")
	if c, err := ParseHex(colors[RoleTertiary]); err == nil {
		b.WriteString(ps1Color(c) + ps1Workdir + ps1Reset)
	} else {
		b.WriteString(ps1Workdir)
	}
	return b.String()
}

func ps1Color(c RGB) string {
	return fmt.Sprintf(`\[\033[38;2;%d;%d;%dm\]`, c.R, c.G, c.B)
}
