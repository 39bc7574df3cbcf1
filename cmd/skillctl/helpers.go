// Package main provides shared helper functions for CLI commands.
package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/agentui/skillctl/internal/api"
	"github.com/agentui/skillctl/internal/config"
)

// maxSkillNameLen is the maximum allowed length for skill names.
const maxSkillNameLen = 128

// validateSkillName checks that a skill name is safe for use as a
// path component and URL argument. Skill names become directories under
// the skills root, so path separators and whitespace are rejected.
//
// Parameters:
//   - name: The name to validate
//
// Returns:
//   - error: A descriptive error if validation fails, nil otherwise
func validateSkillName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if len(name) > maxSkillNameLen {
		return fmt.Errorf("skill name too long (%d chars, max %d)", len(name), maxSkillNameLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("skill name cannot contain spaces — use hyphens instead (e.g. 'rpa-challenge')")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("skill name cannot contain path separators — use a plain name (e.g. 'rpa-challenge')")
	}

	if name == "." || name == ".." {
		return fmt.Errorf("'%s' is not a valid skill name", name)
	}

	return nil
}

// loadConfigAndClient builds the effective configuration for the current
// directory and an API client pointed at it.
//
// Parameters:
//   - cmd: The command being executed, for reading the global --dev flag
//
// Returns:
//   - *config.Config: The effective configuration
//   - *api.Client: A client for the configured base URL
//   - error: If the config file exists but cannot be parsed
func loadConfigAndClient(cmd *cobra.Command) (*config.Config, *api.Client, error) {
	devMode, _ := cmd.Root().PersistentFlags().GetBool("dev")

	cfg, err := config.Load(".", devMode)
	if err != nil {
		return nil, nil, err
	}
	return cfg, api.NewClient(cfg.APIBaseURL), nil
}

// jsonOutputEnabled reports whether JSON output was requested via the
// command's own --json flag or the global one.
func jsonOutputEnabled(cmd *cobra.Command, local bool) bool {
	if local {
		return true
	}
	globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json")
	return globalJSON
}
