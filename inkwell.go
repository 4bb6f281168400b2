// Package inkwell is a static site generator for personal blogs built with
// Go, goldmark, and templ. It turns a directory of Markdown content into a
// finished HTML site: a bounded home feed with per-post excerpts, a page per
// post, standalone pages, a year-grouped archive, category listings, RSS,
// and a sitemap.
//
// Users provide templ components via the Views struct and inkwell handles
// content loading, excerpt splitting, rendering, and output layout. The
// views package ships a complete default theme.
package inkwell

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
)

// Views holds the templ components the builder calls when rendering pages.
// This is the inversion-of-control mechanism that lets users own and
// customize every template; the views package provides a default set.
type Views struct {
	Home     func(summaries []PostSummary, meta PageMeta, site SiteConfig) templ.Component
	Post     func(post Post, related []Post, meta PageMeta, site SiteConfig) templ.Component
	Page     func(page Page, meta PageMeta, site SiteConfig) templ.Component
	Archive  func(years []ArchiveYear, meta PageMeta, site SiteConfig) templ.Component
	Category func(category Category, meta PageMeta, site SiteConfig) templ.Component
	NotFound func(site SiteConfig) templ.Component
}

func (v Views) validate() error {
	switch {
	case v.Home == nil:
		return fmt.Errorf("inkwell: Views.Home is required")
	case v.Post == nil:
		return fmt.Errorf("inkwell: Views.Post is required")
	case v.Page == nil:
		return fmt.Errorf("inkwell: Views.Page is required")
	case v.Archive == nil:
		return fmt.Errorf("inkwell: Views.Archive is required")
	case v.Category == nil:
		return fmt.Errorf("inkwell: Views.Category is required")
	case v.NotFound == nil:
		return fmt.Errorf("inkwell: Views.NotFound is required")
	}
	return nil
}

// Site is the central inkwell value. It wires together configuration,
// content loading, the feed renderer, and user-provided templates.
type Site struct {
	Config SiteConfig
	Views  Views

	log   *slog.Logger
	md    goldmark.Markdown
	feed  FeedRenderer
	cache *RenderCache
}

// New creates a Site with the given configuration and view components.
func New(cfg SiteConfig, views Views, opts ...Option) *Site {
	cfg.setDefaults()

	s := &Site{
		Config: cfg,
		Views:  views,
		log:    slog.Default(),
		md:     newMarkdown(),
	}
	s.feed = FeedRenderer{MoreMarker: cfg.MoreMarker, DateFormat: DefaultDateFormat}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build renders the whole site into Config.OutputDir. The previous build is
// removed first, so the output directory never accumulates deleted pages.
func (s *Site) Build() error {
	start := time.Now()

	if err := s.Views.validate(); err != nil {
		return err
	}

	if !s.Config.NoCache {
		cache, err := NewRenderCache(s.Config.CachePath)
		if err != nil {
			return fmt.Errorf("inkwell: open render cache: %w", err)
		}
		s.cache = cache
		defer func() {
			if err := cache.Sweep(); err != nil {
				s.log.Warn("cache sweep failed", "error", err)
			}
			cache.Close()
			s.cache = nil
		}()
	}

	posts, pages, err := s.loadContent()
	if err != nil {
		return err
	}

	if err := s.prepareOutputDir(); err != nil {
		return err
	}

	if err := s.renderHome(posts); err != nil {
		return err
	}
	if err := s.renderPosts(posts); err != nil {
		return err
	}
	if err := s.renderPages(pages); err != nil {
		return err
	}
	if err := s.renderArchive(posts); err != nil {
		return err
	}
	if err := s.renderCategories(posts); err != nil {
		return err
	}
	if err := s.writeFeed(posts); err != nil {
		return err
	}
	if err := s.writeSitemap(posts, pages); err != nil {
		return err
	}
	if err := s.renderNotFound(); err != nil {
		return err
	}
	if err := s.copyStatic(); err != nil {
		return err
	}
	if err := s.writeDefaults(); err != nil {
		return err
	}

	s.log.Info("site built",
		"posts", len(posts),
		"pages", len(pages),
		"output", s.Config.OutputDir,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// prepareOutputDir clears the previous build. Refusing to operate on the
// working directory or filesystem root keeps a bad config from wiping a
// project tree.
func (s *Site) prepareOutputDir() error {
	out := s.Config.OutputDir
	abs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("inkwell: resolve output dir: %w", err)
	}
	if out == "." || out == ".." || abs == string(filepath.Separator) {
		return fmt.Errorf("inkwell: refusing to build into %q", out)
	}
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("inkwell: clean output dir: %w", err)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("inkwell: create output dir: %w", err)
	}
	return nil
}
