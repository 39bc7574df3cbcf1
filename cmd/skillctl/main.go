// Package main provides the entry point for the skillctl CLI.
//
// skillctl reconciles "skill" documents between a local workspace and a
// remote record store: find looks a skill up in both places and reports
// a merged result, update pushes new content to a record by id.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentui/skillctl/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "skillctl",
	Short: "Look up and update skill documents",
	Long: `skillctl reconciles skill documents between a local workspace
and a remote record store.

A skill lives in two places: as a record in the remote store and as a
local document at <skills-root>/<name>/SKILL.md. skillctl finds a skill
in both, resolves its best-known version, and can push updated content
back to the store.

EXAMPLES:
  skillctl find rpa-challenge            # Look up a skill in both sources
  skillctl find rpa-challenge --save     # Also save the remote body to disk
  skillctl update 42 --file SKILL.md     # Replace record 42's content`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("dev", false, "Auto-detect the port of a locally running server")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON (where supported)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(updateCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintInfo("Version: %s", version)
		ui.PrintInfo("Commit: %s", commit)
		ui.PrintInfo("Built: %s", date)
	},
}

func main() {
	Execute()
}
