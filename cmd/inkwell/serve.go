package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vycasas/inkwell"
	"github.com/vycasas/inkwell/views"
)

// newServeCmd creates the serve subcommand.
func newServeCmd() *cobra.Command {
	var (
		addr   string
		drafts bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve a live preview",
		Long: "Serve builds the site, serves it over HTTP, and rebuilds whenever\n" +
			"a file under the content or static directory changes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := siteCfg
			if drafts {
				cfg.IncludeDrafts = true
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			site := inkwell.New(cfg, views.Defaults())
			return site.Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides the config)")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "Include draft posts and pages")

	return cmd
}
