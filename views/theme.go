// Package views is the default inkwell theme: hand-written templ components
// for the home feed, posts, standalone pages, the archive, category
// listings, and the 404 page. Sites wanting a different look provide their
// own inkwell.Views; this package doubles as a reference for writing one.
package views

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/vycasas/inkwell"
)

// Defaults returns the complete default theme, ready to pass to inkwell.New.
func Defaults() inkwell.Views {
	return inkwell.Views{
		Home:     Home,
		Post:     Post,
		Page:     Page,
		Archive:  Archive,
		Category: Category,
		NotFound: NotFound,
	}
}

// component adapts a buffer-rendering function into a templ.Component that
// writes its output in a single call.
func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Home renders the landing page: post summaries separated by rules, each
// with its date and excerpt, linking onward when more content follows.
func Home(summaries []inkwell.PostSummary, meta inkwell.PageMeta, site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, meta, site, WebsiteJsonLD(site))
		if len(summaries) == 0 {
			buf.WriteString("<p>Nothing here yet.</p>\n")
		}
		for i, s := range summaries {
			if i > 0 {
				buf.WriteString("<hr class=\"post-separator\"/>\n")
			}
			buf.WriteString("<article class=\"feed-entry\">\n")
			fmt.Fprintf(buf, "<h2><a href=\"%s\">%s</a></h2>\n", html.EscapeString(s.Link), html.EscapeString(s.Title))
			if s.Date != "" {
				fmt.Fprintf(buf, "<time>%s</time>\n", html.EscapeString(s.Date))
			}
			buf.WriteString(s.Excerpt)
			buf.WriteString("\n")
			if s.HasMore {
				fmt.Fprintf(buf, "<p><a class=\"read-more\" href=\"%s\">Read more &rarr;</a></p>\n", html.EscapeString(s.Link))
			}
			buf.WriteString("</article>\n")
		}
		writeFoot(buf)
	})
}

// Post renders a single post page with its full content and related posts.
func Post(post inkwell.Post, related []inkwell.Post, meta inkwell.PageMeta, site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, meta, site, BlogPostingJsonLD(site, post))
		buf.WriteString("<article>\n")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", html.EscapeString(post.Title))
		if !post.Date.IsZero() {
			fmt.Fprintf(buf, "<time datetime=\"%s\">%s</time>\n", post.Date.Format("2006-01-02"), FormatDate(post.Date))
		}
		if post.Category != "" {
			fmt.Fprintf(buf, "<p>Filed under <a href=\"/category/%s/\">%s</a></p>\n",
				inkwell.Slugify(post.Category), html.EscapeString(post.Category))
		}
		buf.WriteString(post.Content)
		buf.WriteString("\n</article>\n")
		if len(related) > 0 {
			buf.WriteString("<section>\n<h2>Related posts</h2>\n<ul>\n")
			for _, r := range related {
				fmt.Fprintf(buf, "<li><a href=\"%s\">%s</a></li>\n", html.EscapeString(r.Link), html.EscapeString(r.Title))
			}
			buf.WriteString("</ul>\n</section>\n")
		}
		writeFoot(buf)
	})
}

// Page renders standalone content such as an about page.
func Page(page inkwell.Page, meta inkwell.PageMeta, site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, meta, site, "")
		buf.WriteString("<article>\n")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", html.EscapeString(page.Title))
		buf.WriteString(page.Content)
		buf.WriteString("\n</article>\n")
		writeFoot(buf)
	})
}

// Archive renders the year-grouped list of every post.
func Archive(years []inkwell.ArchiveYear, meta inkwell.PageMeta, site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, meta, site, "")
		buf.WriteString("<h1>Archive</h1>\n")
		for _, y := range years {
			if y.Year == 0 {
				buf.WriteString("<h2>Undated</h2>\n")
			} else {
				fmt.Fprintf(buf, "<h2>%d</h2>\n", y.Year)
			}
			writePostList(buf, "archive-list", y.Posts)
		}
		writeFoot(buf)
	})
}

// Category renders the list of posts filed under one category.
func Category(category inkwell.Category, meta inkwell.PageMeta, site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, meta, site, "")
		fmt.Fprintf(buf, "<h1>%s</h1>\n", html.EscapeString(category.Name))
		writePostList(buf, "category-list", category.Posts)
		writeFoot(buf)
	})
}

// NotFound renders the 404 page served for unknown paths.
func NotFound(site inkwell.SiteConfig) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeHead(buf, inkwell.PageMeta{Title: "Page not found"}, site, "")
		buf.WriteString("<h1>404</h1>\n<p>That page does not exist. <a href=\"/\">Back to the front page.</a></p>\n")
		writeFoot(buf)
	})
}

func writePostList(buf *bytes.Buffer, class string, posts []inkwell.Post) {
	fmt.Fprintf(buf, "<ul class=\"%s\">\n", class)
	for _, p := range posts {
		fmt.Fprintf(buf, "<li><a href=\"%s\">%s</a>", html.EscapeString(p.Link), html.EscapeString(p.Title))
		if !p.Date.IsZero() {
			fmt.Fprintf(buf, " <time>%s</time>", FormatDate(p.Date))
		}
		buf.WriteString("</li>\n")
	}
	buf.WriteString("</ul>\n")
}

// writeHead emits everything from the doctype through the opening of <main>,
// including meta tags, the canonical link, OpenGraph properties, the feed
// link, the stylesheet, and an optional JSON-LD block.
func writeHead(buf *bytes.Buffer, meta inkwell.PageMeta, site inkwell.SiteConfig, jsonLD string) {
	title := meta.Title
	if title == "" {
		title = site.Name
	} else if title != site.Name {
		title = title + " | " + site.Name
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\"/>\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	fmt.Fprintf(buf, "<title>%s</title>\n", html.EscapeString(title))
	if meta.Description != "" {
		fmt.Fprintf(buf, "<meta name=\"description\" content=\"%s\"/>\n", html.EscapeString(meta.Description))
		fmt.Fprintf(buf, "<meta property=\"og:description\" content=\"%s\"/>\n", html.EscapeString(meta.Description))
	}
	fmt.Fprintf(buf, "<meta property=\"og:title\" content=\"%s\"/>\n", html.EscapeString(title))
	fmt.Fprintf(buf, "<meta property=\"og:type\" content=\"%s\"/>\n", ogType)
	fmt.Fprintf(buf, "<meta property=\"og:site_name\" content=\"%s\"/>\n", html.EscapeString(site.Name))
	if meta.URL != "" {
		fmt.Fprintf(buf, "<meta property=\"og:url\" content=\"%s\"/>\n", html.EscapeString(meta.URL))
		fmt.Fprintf(buf, "<link rel=\"canonical\" href=\"%s\"/>\n", html.EscapeString(meta.URL))
	}
	fmt.Fprintf(buf, "<link rel=\"alternate\" type=\"application/rss+xml\" title=\"%s\" href=\"/feed.xml\"/>\n",
		html.EscapeString(site.Name))
	buf.WriteString("<link rel=\"stylesheet\" href=\"/style.css\"/>\n")
	if jsonLD != "" {
		// json.Marshal escapes <, >, and & so the block is safe inside <script>.
		fmt.Fprintf(buf, "<script type=\"application/ld+json\">%s</script>\n", jsonLD)
	}
	buf.WriteString("</head>\n<body>\n")

	buf.WriteString("<header class=\"site\">\n")
	fmt.Fprintf(buf, "<a class=\"site-title\" href=\"/\">%s</a>\n", html.EscapeString(site.Name))
	buf.WriteString("<nav><a href=\"/\">Home</a> <a href=\"/archive/\">Archive</a> <a href=\"/feed.xml\">RSS</a></nav>\n")
	buf.WriteString("</header>\n<main>\n")
}

func writeFoot(buf *bytes.Buffer) {
	buf.WriteString("</main>\n<footer class=\"site\">\n")
	buf.WriteString("<p><a href=\"/feed.xml\">RSS</a> &middot; <a href=\"/sitemap.xml\">Sitemap</a></p>\n")
	buf.WriteString("</footer>\n</body>\n</html>\n")
}
