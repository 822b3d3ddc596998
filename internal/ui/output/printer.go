package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/wrp/internal/ui/style"
)

const labelWidth = 14

// Printer writes themed, human-readable command output.
type Printer struct {
	out      *termenv.Output
	renderer *lipgloss.Renderer
	theme    style.Theme
}

// NewPrinter creates a Printer on w using theme.
func NewPrinter(w io.Writer, theme style.Theme) *Printer {
	return NewPrinterWithOutput(New(w), theme)
}

// NewPrinterWithOutput creates a Printer on an existing termenv output.
// The renderer shares out's profile so styled text degrades the same way.
func NewPrinterWithOutput(out *termenv.Output, theme style.Theme) *Printer {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(out.Profile)
	return &Printer{out: out, renderer: r, theme: theme}
}

// Paint renders s in color c.
func (p *Printer) Paint(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(p.out.Color(string(c))).String()
}

// Header writes a bold section title.
func (p *Printer) Header(title string) {
	p.writeln(p.renderer.NewStyle().Bold(true).Foreground(p.theme.Header).Render(title))
}

// KV writes an indented label/value pair.
func (p *Printer) KV(label, value string) {
	padded := fmt.Sprintf("%-*s", labelWidth, label+":")
	p.writeln("  " + p.Paint(padded, p.theme.Label) + " " + p.Paint(value, p.theme.Value))
}

// Item writes an indented list entry with a leading marker.
func (p *Printer) Item(marker string, active bool, text string) {
	c := p.theme.Muted
	if active {
		c = p.theme.Accent
	}
	p.writeln("  " + p.Paint(marker, c) + " " + text)
}

// Swatch writes a color role with a sample block in that color.
func (p *Printer) Swatch(role, hex string) {
	block := p.out.String("██").Foreground(p.out.Color(hex)).String()
	p.writeln(fmt.Sprintf("  %s %-*s %s", block, labelWidth+8, role, p.Paint(hex, p.theme.Value)))
}

// Success writes a confirmation line.
func (p *Printer) Success(msg string) {
	p.writeln(p.Paint(style.Check, style.Green) + " " + msg)
}

// Line writes s unstyled.
func (p *Printer) Line(s string) {
	p.writeln(s)
}

// Blank writes an empty line.
func (p *Printer) Blank() {
	p.writeln("")
}

func (p *Printer) writeln(s string) {
	_, _ = p.out.WriteString(strings.TrimRight(s, "\n") + "\n")
}
