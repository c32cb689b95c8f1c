// Package config handles global nota configuration.
//
// Settings resolve in flag > environment > config file > default order. The
// notes root may additionally carry a .env file with per-root defaults
// (NOTA_AUTHOR, NOTA_TYPE, ...), loaded without overriding the real
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables recognized across commands.
const (
	EnvDir      = "NOTA_DIR"
	EnvAuthor   = "NOTA_AUTHOR"
	EnvType     = "NOTA_TYPE"
	EnvTemplate = "NOTA_TEMPLATE"
)

// Config is the global configuration file (~/.config/nota/config.toml).
type Config struct {
	// Dir is the notes root used when neither --dir nor NOTA_DIR is set.
	Dir string `toml:"dir"`

	// Editor opens notes for editing (falls back to $EDITOR, then vim).
	Editor string `toml:"editor"`

	// Author is stamped into new-note metadata when --author is not given.
	Author string `toml:"author"`

	// Template is the path of the default note template.
	Template string `toml:"template"`

	// PreviewTypst and PreviewMarkdown override the preview commands
	// (first element is the binary, the rest are leading arguments).
	PreviewTypst    []string `toml:"preview_typst"`
	PreviewMarkdown []string `toml:"preview_markdown"`
}

// Load loads the configuration from the default location. A missing file
// yields an empty config, not an error.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the config file path, preferring the XDG-style
// ~/.config/nota/config.toml.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "nota", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "nota", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// ResolveDir resolves the notes root: --dir flag, then NOTA_DIR, then the
// config file, then the working directory.
func (c *Config) ResolveDir(flag string) string {
	if flag != "" {
		return flag
	}
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir
	}
	if c != nil && c.Dir != "" {
		return c.Dir
	}
	return "."
}

// LoadRootEnv loads a .env file from the notes root, if present. Existing
// environment variables are not overridden, so the process environment
// still wins over per-root defaults.
func LoadRootEnv(root string) {
	_ = godotenv.Load(filepath.Join(root, ".env"))
}

// GetAuthor returns the author for new-note metadata: NOTA_AUTHOR first,
// then the config file.
func (c *Config) GetAuthor() string {
	if author := os.Getenv(EnvAuthor); author != "" {
		return author
	}
	if c != nil {
		return c.Author
	}
	return ""
}

// GetEditor returns the configured editor, or "" when unset (callers fall
// back to $EDITOR).
func (c *Config) GetEditor() string {
	if c != nil {
		return c.Editor
	}
	return ""
}

// GetTemplate returns the default template path: NOTA_TEMPLATE first, then
// the config file. Empty means the built-in template.
func (c *Config) GetTemplate() string {
	if path := os.Getenv(EnvTemplate); path != "" {
		return path
	}
	if c != nil {
		return c.Template
	}
	return ""
}

// CreateDefault creates a commented default config file if none exists and
// returns its path.
func CreateDefault() (string, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# nota configuration

# Notes root used when --dir and NOTA_DIR are not set.
# dir = "/path/to/notes"

# Editor for 'nota edit' (defaults to $EDITOR, then vim).
# editor = "vim"

# Author stamped into new-note metadata.
# author = "Your Name"

# Default note template (YAML). Empty means the built-in template.
# template = "/path/to/template.yml"

# Preview command overrides. The note's main file is appended.
# preview_typst = ["tinymist", "preview"]
# preview_markdown = ["glow", "-p"]
`

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
