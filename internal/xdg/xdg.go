package xdg

import (
	"os"
	"path/filepath"
)

// Dirs resolves XDG Base Directory paths used by the tool.
type Dirs struct {
	configHome string
	configDirs []string
}

// New reads the XDG environment, falling back to the XDG Base Directory defaults.
func New() *Dirs {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			homeDir = os.TempDir()
		}
	}

	d := &Dirs{}

	d.configHome = os.Getenv("XDG_CONFIG_HOME")
	if d.configHome == "" {
		d.configHome = filepath.Join(homeDir, ".config")
	}

	configDirsEnv := os.Getenv("XDG_CONFIG_DIRS")
	if configDirsEnv == "" {
		d.configDirs = []string{"/etc/xdg"}
	} else {
		d.configDirs = filepath.SplitList(configDirsEnv)
	}

	return d
}

// ConfigDirs returns the preference-ordered base directories for configuration files
func (d *Dirs) ConfigDirs() []string {
	return append([]string{d.configHome}, d.configDirs...)
}

// FindConfigFile returns the first existing <dir>/<app>/<name> in preference
// order, or the user-specific path when none exists.
func (d *Dirs) FindConfigFile(app, name string) string {
	for _, dir := range d.ConfigDirs() {
		p := filepath.Join(dir, app, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return filepath.Join(d.configHome, app, name)
}
