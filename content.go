package inkwell

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// contentFrontMatter mirrors the YAML header of a content file. Every field
// is optional; dates and slugs fall back to the filename.
type contentFrontMatter struct {
	Title       string `yaml:"title"`
	Date        string `yaml:"date"`
	Slug        string `yaml:"slug"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Draft       bool   `yaml:"draft"`
}

// dateFormats are tried in order when parsing front matter dates.
var dateFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// postsSubdir is the content subdirectory whose files become dated feed
// entries. Everything else under the content dir becomes a standalone page.
const postsSubdir = "posts"

// loadContent walks the content directory and returns posts sorted
// newest-first plus standalone pages sorted by link.
func (s *Site) loadContent() ([]Post, []Page, error) {
	root := s.Config.ContentDir
	var posts []Post
	var pages []Page
	seen := make(map[string]string) // link -> source file, to reject URL collisions

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var fm contentFrontMatter
		body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
		if err != nil {
			return fmt.Errorf("parse front matter of %s: %w", rel, err)
		}
		if fm.Draft && !s.Config.IncludeDrafts {
			s.log.Debug("skipping draft", "source", rel)
			return nil
		}

		html, err := s.renderBody(body)
		if err != nil {
			return fmt.Errorf("render %s: %w", rel, err)
		}

		name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		date, slugBase := splitDatePrefix(name)
		if fm.Date != "" {
			date, err = parseDate(fm.Date)
			if err != nil {
				return fmt.Errorf("%s: %w", rel, err)
			}
		}
		slug := fm.Slug
		if slug == "" {
			slug = Slugify(slugBase)
		}
		title := fm.Title
		if title == "" {
			title = titleFromFilename(slugBase)
		}

		if isPost(rel) {
			p := Post{
				Title:       title,
				Slug:        slug,
				Link:        "/blog/" + slug + "/",
				Date:        date,
				Category:    fm.Category,
				Description: fm.Description,
				Content:     html,
				Source:      rel,
				Draft:       fm.Draft,
			}
			if prev, ok := seen[p.Link]; ok {
				return fmt.Errorf("%s and %s map to the same URL %s", prev, rel, p.Link)
			}
			seen[p.Link] = rel
			posts = append(posts, p)
			return nil
		}

		pg := Page{
			Title:       title,
			Slug:        slug,
			Link:        pageLink(rel, slug),
			Description: fm.Description,
			Content:     html,
			Source:      rel,
			Draft:       fm.Draft,
		}
		if prev, ok := seen[pg.Link]; ok {
			return fmt.Errorf("%s and %s map to the same URL %s", prev, rel, pg.Link)
		}
		seen[pg.Link] = rel
		pages = append(pages, pg)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("inkwell: load content: %w", err)
	}

	sortPostsByDate(posts)
	sort.Slice(pages, func(i, j int) bool { return pages[i].Link < pages[j].Link })

	if err := checkGeneratedLinks(seen, posts); err != nil {
		return nil, nil, fmt.Errorf("inkwell: load content: %w", err)
	}
	return posts, pages, nil
}

// checkGeneratedLinks rejects posts and pages whose URL collides with a page
// the builder writes itself: the archive and the category listings.
func checkGeneratedLinks(seen map[string]string, posts []Post) error {
	if src, ok := seen["/archive/"]; ok {
		return fmt.Errorf("%s and the archive page map to the same URL /archive/", src)
	}
	cats, err := collectCategories(posts)
	if err != nil {
		return err
	}
	for _, c := range cats {
		link := "/category/" + c.Slug + "/"
		if src, ok := seen[link]; ok {
			return fmt.Errorf("%s and the %s category listing map to the same URL %s", src, c.Name, link)
		}
	}
	return nil
}

// renderBody converts a Markdown body to HTML, reusing the render cache
// when the same bytes were converted on an earlier build.
func (s *Site) renderBody(body []byte) (string, error) {
	if s.cache == nil {
		return renderMarkdown(s.md, body)
	}
	hash := HashContent(body)
	html, ok, err := s.cache.Get(hash)
	if err != nil {
		return "", err
	}
	if ok {
		return html, nil
	}
	html, err = renderMarkdown(s.md, body)
	if err != nil {
		return "", err
	}
	if err := s.cache.Put(hash, html); err != nil {
		return "", err
	}
	return html, nil
}

// splitDatePrefix peels a Jekyll-style YYYY-MM-DD- prefix off a filename,
// returning the date and the remainder. Filenames without the prefix come
// back whole with a zero date.
func splitDatePrefix(name string) (time.Time, string) {
	if len(name) > 11 && name[4] == '-' && name[7] == '-' && name[10] == '-' {
		if t, err := time.Parse("2006-01-02", name[:10]); err == nil {
			return t, name[11:]
		}
	}
	return time.Time{}, name
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// titleFromFilename turns "hello-world" into "Hello World" for files whose
// front matter has no title.
func titleFromFilename(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "-", " "))
}

func isPost(rel string) bool {
	first := filepath.ToSlash(rel)
	if i := strings.IndexByte(first, '/'); i >= 0 {
		first = first[:i]
	}
	return first == postsSubdir
}

// pageLink derives a page's URL from its location and slug, so
// "notes/setup.md" serves from "/notes/setup/".
func pageLink(rel, slug string) string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return "/" + slug + "/"
	}
	return "/" + dir + "/" + slug + "/"
}

// sortPostsByDate orders posts newest-first, undated posts last. The sort is
// stable so same-day posts keep their directory walk order.
func sortPostsByDate(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date.IsZero() {
			return false
		}
		if posts[j].Date.IsZero() {
			return true
		}
		return posts[i].Date.After(posts[j].Date)
	})
}
