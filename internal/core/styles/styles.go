// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Checkbox glyphs.
const (
	GlyphPending   = "[ ]"
	GlyphCompleted = "[x]"
	GlyphCursor    = ">"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	TitleStyle       lipgloss.Style
	HelpStyle        lipgloss.Style
	TextMutedStyle   lipgloss.Style
	InputStyle       lipgloss.Style
	InputFocusStyle  lipgloss.Style
	ItemStyle        lipgloss.Style
	ItemDoneStyle    lipgloss.Style
	ItemCursorStyle  lipgloss.Style
	StatusStyle      lipgloss.Style
	StatusEmptyStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted)
	TextMutedStyle = lipgloss.NewStyle().
		Foreground(p.Muted)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	InputFocusStyle = InputStyle.
		BorderForeground(p.Primary)

	ItemStyle = lipgloss.NewStyle().
		Foreground(p.Foreground)
	ItemDoneStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		Strikethrough(true)
	ItemCursorStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Foreground(p.Success)
	StatusEmptyStyle = lipgloss.NewStyle().
		Foreground(p.Warning)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(CurrentPalette.Foreground)
	primary := colorHexPtr(CurrentPalette.Primary)
	muted := colorHexPtr(CurrentPalette.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = fg
	cfg.H1.BackgroundColor = colorHexPtr(CurrentPalette.Surface)
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = colorHexPtr(CurrentPalette.Warning)
	cfg.Table.Color = fg

	return cfg
}
