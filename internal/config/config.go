// internal/config/config.go
//
// This package handles configuration and the .blochterm directory structure.
// Every directory blochterm runs from gets a .blochterm/ folder holding the
// session log and any user-defined challenge packs.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// BlochDir is the name of the directory we create in each project.
	BlochDir = ".blochterm"

	defaultBasis = "0"
)

const defaultProjectConfigYAML = `# blochterm configuration
version: 1

# Basis state the session starts in: "0" (north pole) or "1" (south pole).
default_basis: "0"

# Challenge packs let you define extra goals in YAML or Go files.
packs:
  enabled: true
  dir: packs

ui:
  # Show the rolling session log underneath the sphere.
  show_log: true
`

// PacksConfig controls discovery of user-defined challenge packs.
type PacksConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir,omitempty"`
}

// UIConfig captures display preferences the engine never sees.
type UIConfig struct {
	ShowLog bool `yaml:"show_log"`
}

// ProjectConfig models .blochterm/config.yaml.
type ProjectConfig struct {
	Version      int         `yaml:"version"`
	DefaultBasis string      `yaml:"default_basis"`
	Packs        PacksConfig `yaml:"packs"`
	UI           UIConfig    `yaml:"ui"`
}

// Config holds the runtime configuration for blochterm.
type Config struct {
	// ProjectDir is the directory where the user ran `blochterm` from.
	ProjectDir string

	// BlochProjectDir is ProjectDir/.blochterm.
	BlochProjectDir string

	Project ProjectConfig
}

// InitBlochDir creates the .blochterm directory structure in the given
// project directory. This is called when either binary starts up.
//
// Structure created:
// .blochterm/
// ├── logs/     <- session log the TUI tails
// └── packs/    <- user challenge packs (*.yaml, *.go)
func InitBlochDir(projectDir string) error {
	blochDir := filepath.Join(projectDir, BlochDir)
	dirs := []string{
		filepath.Join(blochDir, "logs"),
		filepath.Join(blochDir, "packs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(blochDir, "config.yaml"))
}

// NewConfig creates a Config populated from .blochterm/config.yaml, falling
// back to defaults when the file is missing.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:      projectDir,
		BlochProjectDir: filepath.Join(projectDir, BlochDir),
		Project:         defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.BlochProjectDir, "logs")
}

// PacksDir returns the resolved challenge-pack directory.
func (c *Config) PacksDir() string {
	dir := strings.TrimSpace(c.Project.Packs.Dir)
	if dir == "" {
		dir = "packs"
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(c.BlochProjectDir, dir)
}

// ProjectConfigPath returns the on-disk location of the config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.BlochProjectDir, "config.yaml")
}

// PacksEnabled reports whether challenge packs should be loaded.
func (c *Config) PacksEnabled() bool {
	return c.Project.Packs.Enabled
}

// DefaultBasis returns the configured starting basis as "0" or "1".
func (c *Config) DefaultBasis() string {
	return c.Project.DefaultBasis
}

// SetDefaultBasis updates the starting basis and persists the value back to
// .blochterm/config.yaml so the next launch starts from the same pole.
func (c *Config) SetDefaultBasis(basis string) error {
	basis = strings.TrimSpace(basis)
	if basis != "0" && basis != "1" {
		return fmt.Errorf("config: default_basis must be \"0\" or \"1\", got %q", basis)
	}
	c.Project.DefaultBasis = basis
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:      1,
		DefaultBasis: defaultBasis,
		Packs:        PacksConfig{Enabled: true, Dir: "packs"},
		UI:           UIConfig{ShowLog: true},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.DefaultBasis) == "" {
		pc.DefaultBasis = defaultBasis
	}
	if strings.TrimSpace(pc.Packs.Dir) == "" {
		pc.Packs.Dir = "packs"
	}
}

func (pc *ProjectConfig) normalize() {
	pc.DefaultBasis = strings.TrimSpace(pc.DefaultBasis)
	pc.Packs.Dir = strings.TrimSpace(pc.Packs.Dir)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if pc.DefaultBasis != "0" && pc.DefaultBasis != "1" {
		return fmt.Errorf("default_basis must be \"0\" or \"1\", got %q", pc.DefaultBasis)
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize()
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.BlochProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure bloch dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
