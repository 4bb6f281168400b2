package inkwell

import (
	"log/slog"

	"github.com/yuin/goldmark"
)

// SiteConfig holds all configuration for an inkwell site. The mapstructure
// tags match the keys of config.yaml as read by the CLI.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Blog")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:8080")
	Description string `mapstructure:"description"` // Site description for RSS and meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD and the feed

	ContentDir string `mapstructure:"content_dir"` // Markdown content root (default "content")
	StaticDir  string `mapstructure:"static_dir"`  // Assets copied into the output (default "static")
	OutputDir  string `mapstructure:"output_dir"`  // Build target (default "public")

	Addr string `mapstructure:"addr"` // Preview server listen address (default ":8080")

	PostsPerPage int    `mapstructure:"posts_per_page"` // Max posts on the home feed (default 10)
	MoreMarker   string `mapstructure:"more_marker"`    // Excerpt sentinel (default "<!--read_more-->")

	CachePath string `mapstructure:"cache_path"` // Render cache SQLite path (default ".inkwell/cache.db")
	NoCache   bool   `mapstructure:"no_cache"`   // Disable the render cache

	IncludeDrafts bool `mapstructure:"include_drafts"` // Build posts and pages marked draft

	MaxImageWidth int `mapstructure:"max_image_width"` // Downscale wider JPEGs on copy (0 disables)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8080"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.PostsPerPage == 0 {
		c.PostsPerPage = 10
	}
	if c.MoreMarker == "" {
		c.MoreMarker = DefaultMoreMarker
	}
	if c.CachePath == "" {
		c.CachePath = ".inkwell/cache.db"
	}
}

// Option configures additional Site behavior.
type Option func(*Site)

// WithLogger sets the logger used for build and serve progress (default slog.Default).
func WithLogger(log *slog.Logger) Option {
	return func(s *Site) {
		s.log = log
	}
}

// WithMarkdown replaces the Markdown converter. The converter must let raw
// HTML through, or excerpt markers written as HTML comments never reach the
// rendered content.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(s *Site) {
		s.md = md
	}
}
