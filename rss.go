package inkwell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gorilla/feeds"
)

// writeFeed writes feed.xml, an RSS 2.0 rendition of every post. Item
// descriptions carry the front matter description when present and the
// pre-marker excerpt otherwise, so feed readers get the same preview as the
// home page.
func (s *Site) writeFeed(posts []Post) error {
	cfg := s.Config
	feed := &feeds.Feed{
		Title:       cfg.Name,
		Link:        &feeds.Link{Href: BuildURL(cfg.URL)},
		Description: cfg.Description,
	}
	if cfg.Author != "" {
		feed.Author = &feeds.Author{Name: cfg.Author}
	}
	// Channel timestamp comes from the newest post, not the wall clock, so
	// rebuilding unchanged sources produces identical bytes.
	if len(posts) > 0 {
		feed.Created = posts[0].Date
	}

	for _, p := range posts {
		postURL := BuildURL(cfg.URL, "blog", p.Slug)
		desc := p.Description
		if desc == "" {
			desc, _ = s.feed.Excerpt(p.Content)
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: postURL},
			Id:          postURL,
			Description: desc,
			Created:     p.Date,
		})
	}

	f, err := os.Create(filepath.Join(cfg.OutputDir, "feed.xml"))
	if err != nil {
		return fmt.Errorf("inkwell: write feed.xml: %w", err)
	}
	defer f.Close()
	if err := feed.WriteRss(f); err != nil {
		return fmt.Errorf("inkwell: write feed.xml: %w", err)
	}
	return nil
}
