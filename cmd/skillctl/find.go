// Package main provides the find command for skill lookup.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentui/skillctl/internal/skill"
	"github.com/agentui/skillctl/internal/ui"
)

var (
	findSave       bool
	findOutputJSON bool
)

// findCmd looks a skill up in the remote store and the local skills
// directory and reports a merged result.
var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find a skill in the remote store and the local workspace",
	Long: `Find a skill by name in the remote record store and the local
skills directory, and report a merged result.

The remote collection is fetched once with a short timeout and searched
for an exact, case-sensitive name match. Independently, the local
document at <skills-root>/<name>/SKILL.md is checked; its front-matter
version is used as a fallback when the remote record has none.

Exits 0 only when the skill is found in BOTH sources.

EXAMPLES:
  skillctl find rpa-challenge            # Report both sources
  skillctl find rpa-challenge --save     # Also save the remote body
  skillctl find rpa-challenge --json     # Machine-readable summary`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findSave, "save", false, "Save the fetched document body to the configured save path")
	findCmd.Flags().BoolVar(&findOutputJSON, "json", false, "Output results as JSON")
}

// findSummary is the machine-readable lookup summary. The full document
// body is excluded; only its length is reported.
type findSummary struct {
	SkillID        string `json:"skill_id,omitempty"`
	SkillPath      string `json:"skill_path,omitempty"`
	CurrentVersion string `json:"current_version,omitempty"`
	SkillMDLength  int    `json:"skillmd_length"`
	FoundInStrapi  bool   `json:"found_in_strapi"`
	FoundLocally   bool   `json:"found_locally"`
	Error          string `json:"error,omitempty"`
}

// summarize converts a lookup result to its JSON summary form.
func summarize(result *skill.LookupResult) findSummary {
	summary := findSummary{
		SkillID:        result.SkillID,
		SkillPath:      result.Path,
		CurrentVersion: result.Version,
		SkillMDLength:  len(result.SkillMD),
		FoundInStrapi:  result.FoundRemote,
		FoundLocally:   result.FoundLocal,
	}
	if result.RemoteErr != nil {
		summary.Error = result.RemoteErr.Error()
	}
	return summary
}

// runFind executes the lookup and reports the merged result.
func runFind(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateSkillName(name); err != nil {
		return err
	}

	cfg, client, err := loadConfigAndClient(cmd)
	if err != nil {
		return err
	}

	result := skill.Lookup(cmd.Context(), client, cfg, name)

	if findSave && result.SkillMD != "" {
		if err := skill.SaveBody(cfg.SavePath, result.SkillMD); err != nil {
			ui.PrintError("Could not save skillmd: %v", err)
		} else if !jsonOutputEnabled(cmd, findOutputJSON) {
			ui.PrintSuccess("Skillmd saved to %s (%d characters)", cfg.SavePath, len(result.SkillMD))
		}
	}

	if jsonOutputEnabled(cmd, findOutputJSON) {
		data, err := json.MarshalIndent(summarize(result), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	} else {
		printFindReport(result, skill.LocalPath(cfg.SkillsRoot, name))
	}

	if !result.FoundBoth() {
		return fmt.Errorf("skill '%s' not found in both sources", name)
	}
	return nil
}

// printFindReport prints the human-readable lookup report.
// expectedPath is where the local document would live, shown when it
// does not exist.
func printFindReport(result *skill.LookupResult, expectedPath string) {
	ui.Println()
	ui.PrintTitle("Skill search results: %s", result.Name)
	ui.Println()

	if result.FoundRemote {
		ui.PrintSuccess("Found in remote store")
		ui.PrintDim("  Skill ID: %s", result.SkillID)
		ui.PrintDim("  Version:  %s", result.Version)
		if result.Preview != "" {
			ui.Println()
			ui.PrintDim("  Preview:")
			ui.PrintDim("%s", indent(result.Preview, "  "))
		} else {
			ui.PrintDim("  Skillmd: not set")
		}
	} else {
		ui.PrintError("Not found in remote store")
		if result.RemoteErr != nil {
			ui.PrintDim("  Error: %v", result.RemoteErr)
		}
	}

	ui.Println()

	if result.FoundLocal {
		ui.PrintSuccess("Found locally")
		ui.PrintDim("  Path: %s", result.Path)
		if result.LocalErr != nil {
			ui.PrintWarning("Could not read local document: %v", result.LocalErr)
		}
	} else {
		ui.PrintError("Not found locally")
		ui.PrintDim("  Expected: %s", expectedPath)
	}

	if result.FoundBoth() {
		ui.Println()
		ui.PrintInfo("Shell exports:")
		ui.PrintDim("  export SKILL_ID='%s'", result.SkillID)
		ui.PrintDim("  export SKILL_PATH='%s'", result.Path)
		ui.PrintDim("  export SKILL_VERSION='%s'", result.Version)
	}

	ui.Println()
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
