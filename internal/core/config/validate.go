package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/retodo/internal/core/styles"
)

// reservedKeys are handled by the TUI itself and cannot be rebound.
var reservedKeys = []string{"enter", "tab", "up", "down", "ctrl+c", "esc"}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		validateKeys("keys.undo", c.Keys.Undo),
		validateKeys("keys.redo", c.Keys.Redo),
		c.validateKeyOverlap(),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func validateKeys(field string, keys []string) error {
	var errs criterio.FieldErrorsBuilder

	if len(keys) == 0 {
		errs = errs.Append(field, fmt.Errorf("at least one key is required"))
	}

	for i, k := range keys {
		f := fmt.Sprintf("%s[%d]", field, i)
		switch {
		case strings.TrimSpace(k) == "":
			errs = errs.Append(f, fmt.Errorf("key cannot be empty"))
		case slices.Contains(reservedKeys, k):
			errs = errs.Append(f, fmt.Errorf("%q is reserved", k))
		}
	}

	return errs.ToError()
}

func (c *Config) validateKeyOverlap() error {
	var errs criterio.FieldErrorsBuilder
	for i, k := range c.Keys.Redo {
		if slices.Contains(c.Keys.Undo, k) {
			errs = errs.Append(fmt.Sprintf("keys.redo[%d]", i), fmt.Errorf("%q is also bound to undo", k))
		}
	}
	return errs.ToError()
}
