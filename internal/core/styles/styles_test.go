package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()

	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H2.Color)
}
