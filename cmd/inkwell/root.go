package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// newRootCmd creates the root command for the inkwell CLI.
func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "inkwell",
		Short: "A static blog generator built with Go, goldmark, and templ",
		Long: "Inkwell builds a personal blog from a directory of Markdown files\n" +
			"and serves a live preview while you write.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return loadConfig(cfgFile)
		},
	}

	rootCmd.SetVersionTemplate("inkwell version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default config.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}
