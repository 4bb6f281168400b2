package inkwell

import "time"

// Post is a dated entry loaded from the content directory and rendered
// into the feed, the archive, and its own page.
type Post struct {
	Title       string
	Slug        string
	Link        string // site-relative, always "/blog/<slug>/"
	Date        time.Time
	Category    string
	Description string
	Content     string // rendered HTML
	Source      string // path of the Markdown file, relative to the content dir
	Draft       bool
}

// Page is standalone content outside the dated feed, such as an about page.
type Page struct {
	Title       string
	Slug        string
	Link        string
	Description string
	Content     string
	Source      string
	Draft       bool
}

// PostSummary is a single home-feed entry: identity fields copied from the
// post plus the presentation values derived by FeedRenderer.
type PostSummary struct {
	Title   string
	Link    string
	Date    string // formatted for display, e.g. "2015 April 2"
	Excerpt string // rendered HTML up to the more marker
	HasMore bool
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// ArchiveYear groups posts by calendar year for the archive page.
// Years appear newest first, matching the post order.
type ArchiveYear struct {
	Year  int
	Posts []Post
}

// Category groups posts sharing a category, in feed order.
type Category struct {
	Name  string
	Slug  string
	Posts []Post
}
