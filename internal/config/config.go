// Package config provides configuration management for skillctl.
//
// Configuration is an explicit structure passed to each operation rather
// than literals embedded in logic. Values come from built-in defaults,
// an optional .skillctl/config.yaml file, and environment variable
// overrides, in that order of precedence (lowest to highest).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the per-project configuration directory.
	ConfigDirName = ".skillctl"

	// ConfigFileName is the configuration file inside ConfigDirName.
	ConfigFileName = "config.yaml"

	// DefaultSkillsRoot is the default directory holding local skill
	// documents, one <name>/SKILL.md per skill.
	DefaultSkillsRoot = ".claude/skills"

	// DefaultSavePath is the default destination for a fetched skill
	// document body when saving is requested.
	DefaultSavePath = "temp/skillmd.md"
)

// Config holds the settings the find and update operations need.
type Config struct {
	// APIBaseURL is the base URL of the skills API, up to and including
	// the API prefix (e.g. http://localhost:3001/api/strapi).
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// SkillsRoot is the directory holding local skill documents.
	SkillsRoot string `yaml:"skills_root,omitempty"`

	// SavePath is where a fetched skill document body is written when
	// saving is requested. Overwritten on each run.
	SavePath string `yaml:"save_path,omitempty"`
}

// Default returns a Config populated with built-in defaults.
//
// Parameters:
//   - devMode: If true, the API base URL is resolved against a locally
//     running server (see GetAPIBaseURL)
//
// Returns:
//   - *Config: A config with all fields set
func Default(devMode bool) *Config {
	return &Config{
		APIBaseURL: GetAPIBaseURL(devMode),
		SkillsRoot: DefaultSkillsRoot,
		SavePath:   DefaultSavePath,
	}
}

// Load builds the effective configuration for a working directory.
// Defaults are overlaid with .skillctl/config.yaml (if present) and then
// with SKILLCTL_API_URL, SKILLCTL_SKILLS_ROOT, and SKILLCTL_SAVE_PATH
// environment variables.
//
// A missing config file is not an error. A file that exists but cannot
// be parsed is.
//
// Parameters:
//   - workDir: The directory to look for .skillctl/config.yaml in
//   - devMode: If true, default the API base URL to a local server
//
// Returns:
//   - *Config: The effective configuration
//   - error: If the config file exists but cannot be read or parsed
func Load(workDir string, devMode bool) (*Config, error) {
	cfg := Default(devMode)

	path := filepath.Join(workDir, ConfigDirName, ConfigFileName)
	data, err := os.ReadFile(path)
	if err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.merge(&fileCfg)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// merge overlays non-empty fields from other onto c.
func (c *Config) merge(other *Config) {
	if other.APIBaseURL != "" {
		c.APIBaseURL = other.APIBaseURL
	}
	if other.SkillsRoot != "" {
		c.SkillsRoot = other.SkillsRoot
	}
	if other.SavePath != "" {
		c.SavePath = other.SavePath
	}
}

// applyEnv overlays environment variable overrides onto c.
func (c *Config) applyEnv() {
	if v := os.Getenv("SKILLCTL_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("SKILLCTL_SKILLS_ROOT"); v != "" {
		c.SkillsRoot = v
	}
	if v := os.Getenv("SKILLCTL_SAVE_PATH"); v != "" {
		c.SavePath = v
	}
}

// Save writes the configuration to .skillctl/config.yaml under workDir,
// creating the directory if needed.
//
// Parameters:
//   - workDir: The directory to write .skillctl/config.yaml in
//
// Returns:
//   - error: If the directory or file cannot be written
func (c *Config) Save(workDir string) error {
	dir := filepath.Join(workDir, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
