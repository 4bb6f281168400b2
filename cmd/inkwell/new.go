package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vycasas/inkwell"
)

// postFrontMatter is the YAML header written into new post files.
type postFrontMatter struct {
	Title    string `yaml:"title"`
	Date     string `yaml:"date"`
	Category string `yaml:"category,omitempty"`
	Draft    bool   `yaml:"draft,omitempty"`
}

// newNewCmd creates the new subcommand.
func newNewCmd() *cobra.Command {
	var (
		category string
		draft    bool
	)

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a post file with today's date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			slug := inkwell.Slugify(title)
			if slug == "" {
				return fmt.Errorf("title %q produces an empty slug", title)
			}

			now := time.Now()
			name := now.Format("2006-01-02") + "-" + slug + ".md"
			path := filepath.Join(siteCfg.ContentDir, "posts", name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			fm, err := yaml.Marshal(postFrontMatter{
				Title:    title,
				Date:     now.Format("2006-01-02"),
				Category: category,
				Draft:    draft,
			})
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString("---\n")
			b.Write(fm)
			b.WriteString("---\n\nOpening paragraph.\n\n")
			b.WriteString(siteCfg.MoreMarker)
			b.WriteString("\n\nThe rest of the post.\n")

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category for the new post")
	cmd.Flags().BoolVar(&draft, "draft", false, "Mark the post as a draft")

	return cmd
}
