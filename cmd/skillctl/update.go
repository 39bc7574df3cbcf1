// Package main provides the update command for pushing skill content.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentui/skillctl/internal/api"
	"github.com/agentui/skillctl/internal/skill"
	"github.com/agentui/skillctl/internal/ui"
)

var (
	updateFile        string
	updateVersion     string
	updateDescription string
	updateOutputJSON  bool
)

// updateCmd replaces the content fields of a remote skill record.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill record in the remote store",
	Long: `Update a skill record by id with new content, version, and
description. The update has replace semantics: all three fields are
sent in a single write with no retries.

Without --file, a compiled-in placeholder document is sent; edit it
first or point --file at the real content.

EXAMPLES:
  skillctl update 42 --file SKILL.md --version 2.1.0
  skillctl update 42 --file SKILL.md --description "Optimized flow"
  skillctl update 42                 # Push the placeholder template`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "Read the skill document body from a file")
	updateCmd.Flags().StringVar(&updateVersion, "version", skill.TemplateVersion, "Version to record on the skill")
	updateCmd.Flags().StringVar(&updateDescription, "description", skill.TemplateDescription, "Description to record on the skill")
	updateCmd.Flags().BoolVar(&updateOutputJSON, "json", false, "Output results as JSON")
}

// runUpdate sends the replace request and reports the outcome.
func runUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]
	if id == "" {
		return fmt.Errorf("skill id cannot be empty")
	}

	_, client, err := loadConfigAndClient(cmd)
	if err != nil {
		return err
	}

	body := skill.TemplateContent
	if updateFile != "" {
		data, err := os.ReadFile(updateFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", updateFile, err)
		}
		body = string(data)
	}

	err = client.UpdateSkill(cmd.Context(), id, &api.UpdateSkillRequest{
		SkillMD:     body,
		Version:     updateVersion,
		Description: updateDescription,
	})

	if jsonOutputEnabled(cmd, updateOutputJSON) {
		return printUpdateJSON(id, err)
	}

	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			ui.PrintError("Update failed: %d", apiErr.StatusCode)
			ui.PrintDim("  Error: %s", apiErr.Error())
		} else {
			ui.PrintError("Update failed: %v", err)
		}
		return err
	}

	ui.PrintSuccess("Skill updated successfully to v%s", updateVersion)
	ui.PrintDim("  Skill ID: %s", id)
	return nil
}

// updateSummary is the machine-readable update outcome.
type updateSummary struct {
	SkillID    string `json:"skill_id"`
	Version    string `json:"version"`
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// printUpdateJSON prints the outcome as JSON and preserves the error
// for the exit code.
func printUpdateJSON(id string, updateErr error) error {
	summary := updateSummary{
		SkillID: id,
		Version: updateVersion,
		Success: updateErr == nil,
	}
	if updateErr != nil {
		summary.Error = updateErr.Error()
		var apiErr *api.APIError
		if errors.As(updateErr, &apiErr) {
			summary.StatusCode = apiErr.StatusCode
		}
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return updateErr
}
