package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vycasas/inkwell"
	"github.com/vycasas/inkwell/views"
)

// newBuildCmd creates the build subcommand.
func newBuildCmd() *cobra.Command {
	var (
		drafts  bool
		noCache bool
		check   bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siteCfg
			if drafts {
				cfg.IncludeDrafts = true
			}
			if noCache {
				cfg.NoCache = true
			}

			site := inkwell.New(cfg, views.Defaults())
			if err := site.Build(); err != nil {
				return err
			}

			if check {
				broken, err := site.CheckLinks()
				if err != nil {
					return err
				}
				for _, b := range broken {
					fmt.Fprintf(cmd.ErrOrStderr(), "broken link: %s\n", b)
				}
				if len(broken) > 0 {
					return fmt.Errorf("%d broken internal links", len(broken))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include draft posts and pages")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Render without the markdown cache")
	cmd.Flags().BoolVar(&check, "check", false, "Verify internal links after the build")

	return cmd
}
