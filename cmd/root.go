package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lockmend/lockmend/pkg/audit"
)

var (
	projectDir string
	verbose    bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "lockmend",
	Short: "Audit lockfiles for compromised npm package versions",
	Long: `Audit a JavaScript project's lockfiles for package versions known to
have been compromised, and walk through fixing each one.

The tool scans package-lock.json, yarn.lock, pnpm-lock.yaml and bun.lock
against a built-in advisory list. For every hit it asks what to do:
remove the dependency, switch to a safe release, or (for transitive
dependencies) pin a safe version through the manifest's override
sections. After each action it reinstalls from the lockfile so the
installed tree matches what the manifest says.`,
	Example: `  # Audit the current directory
  lockmend

  # Audit a specific project
  lockmend --dir ./apps/web`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		if noColor {
			color.NoColor = true
		}

		if _, err := os.Stat(projectDir); err != nil {
			return fmt.Errorf("project directory %s: %w", projectDir, err)
		}

		ctx := cmd.Context()
		findings, err := audit.Collect(ctx, projectDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		audit.Report(out, findings)
		if len(findings) == 0 {
			return nil
		}

		session := audit.NewSession(projectDir, out)
		return session.Run(ctx, findings)
	},
}

// Execute runs the root command and exits 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&projectDir, "dir", ".", "Project directory to audit")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("lockmend {{.Version}}\n")
}
