package inkwell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// renderHome writes the home page: the bounded feed of recent post summaries.
func (s *Site) renderHome(posts []Post) error {
	summaries := s.feed.Render(posts, s.Config.PostsPerPage)
	meta := PageMeta{
		Title:       s.Config.Name,
		Description: s.Config.Description,
		URL:         BuildURL(s.Config.URL),
		OGType:      "website",
	}
	return s.writePage("index.html", s.Views.Home(summaries, meta, s.Config))
}

// renderPosts writes one page per post under /blog/<slug>/.
func (s *Site) renderPosts(posts []Post) error {
	for _, p := range posts {
		meta := PageMeta{
			Title:       p.Title,
			Description: p.Description,
			URL:         BuildURL(s.Config.URL, "blog", p.Slug),
			OGType:      "article",
		}
		related := RelatedPosts(p, posts)
		if err := s.writePage(outputPath(p.Link), s.Views.Post(p, related, meta, s.Config)); err != nil {
			return err
		}
	}
	return nil
}

// renderPages writes standalone pages at their own links.
func (s *Site) renderPages(pages []Page) error {
	for _, pg := range pages {
		meta := PageMeta{
			Title:       pg.Title,
			Description: pg.Description,
			URL:         BuildURL(s.Config.URL, strings.Trim(pg.Link, "/")),
			OGType:      "website",
		}
		if err := s.writePage(outputPath(pg.Link), s.Views.Page(pg, meta, s.Config)); err != nil {
			return err
		}
	}
	return nil
}

// renderArchive writes the full post history, grouped by year, at /archive/.
func (s *Site) renderArchive(posts []Post) error {
	meta := PageMeta{
		Title:  "Archive",
		URL:    BuildURL(s.Config.URL, "archive"),
		OGType: "website",
	}
	return s.writePage(outputPath("/archive/"), s.Views.Archive(groupByYear(posts), meta, s.Config))
}

// renderCategories writes one listing per category under /category/<slug>/.
func (s *Site) renderCategories(posts []Post) error {
	cats, err := collectCategories(posts)
	if err != nil {
		return fmt.Errorf("inkwell: render categories: %w", err)
	}
	for _, cat := range cats {
		meta := PageMeta{
			Title:  cat.Name,
			URL:    BuildURL(s.Config.URL, "category", cat.Slug),
			OGType: "website",
		}
		if err := s.writePage(outputPath("/category/"+cat.Slug+"/"), s.Views.Category(cat, meta, s.Config)); err != nil {
			return err
		}
	}
	return nil
}

// renderNotFound writes 404.html, which GitHub Pages and the preview server
// both serve for unknown paths.
func (s *Site) renderNotFound() error {
	return s.writePage("404.html", s.Views.NotFound(s.Config))
}

// writeDefaults fills in files a finished site needs but the static dir did
// not provide: robots.txt and the embedded default stylesheet.
func (s *Site) writeDefaults() error {
	robots := filepath.Join(s.Config.OutputDir, "robots.txt")
	if _, err := os.Stat(robots); os.IsNotExist(err) {
		body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n",
			strings.TrimSuffix(s.Config.URL, "/")+"/sitemap.xml")
		if err := s.writeRaw("robots.txt", []byte(body)); err != nil {
			return err
		}
	}
	return s.writeEmbeddedAssets()
}
