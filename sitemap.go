package inkwell

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap writes sitemap.xml covering the home page, every post and
// standalone page, the archive, and each category listing.
func (s *Site) writeSitemap(posts []Post, pages []Page) error {
	base := s.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
	}
	for _, p := range posts {
		u := sitemapURL{Loc: BuildURL(base, "blog", p.Slug)}
		if !p.Date.IsZero() {
			u.LastMod = p.Date.Format("2006-01-02")
		}
		urls = append(urls, u)
	}
	for _, pg := range pages {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, strings.Trim(pg.Link, "/"))})
	}
	// The archive page is rendered and linked from the nav even when no
	// posts exist yet, so it is always listed.
	urls = append(urls, sitemapURL{Loc: BuildURL(base, "archive")})
	cats, err := collectCategories(posts)
	if err != nil {
		return fmt.Errorf("inkwell: write sitemap.xml: %w", err)
	}
	for _, cat := range cats {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "category", cat.Slug)})
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	f, err := os.Create(filepath.Join(s.Config.OutputDir, "sitemap.xml"))
	if err != nil {
		return fmt.Errorf("inkwell: write sitemap.xml: %w", err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(xml.Header)); err != nil {
		return fmt.Errorf("inkwell: write sitemap.xml: %w", err)
	}
	if err := xml.NewEncoder(f).Encode(sitemap); err != nil {
		return fmt.Errorf("inkwell: write sitemap.xml: %w", err)
	}
	return nil
}
