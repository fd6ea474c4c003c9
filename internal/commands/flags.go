package commands

import (
	"os"
	"path/filepath"

	"github.com/colonyops/retodo/pkg/logutils"
)

// Flags holds global flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// LogOutput is the terminal log sink used when no log file is set.
	// Full-screen commands hold it while they own the terminal.
	LogOutput *logutils.DeferredWriter
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "retodo", "config.yaml")
}
