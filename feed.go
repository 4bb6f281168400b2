package inkwell

import "strings"

// DefaultMoreMarker is the sentinel comment that separates a post's preview
// from the rest of its body. It passes through Markdown conversion as a raw
// HTML comment, so the split happens on rendered content.
const DefaultMoreMarker = "<!--read_more-->"

// DefaultDateFormat renders dates as "2015 April 2": year first, full month
// name, day without a leading zero.
const DefaultDateFormat = "2006 January 2"

// FeedRenderer turns an ordered post list into the bounded set of summaries
// shown on the home page. It never reorders or filters its input beyond the
// limit; callers supply posts newest-first.
type FeedRenderer struct {
	MoreMarker string // excerpt sentinel (default DefaultMoreMarker)
	DateFormat string // time layout for summary dates (default DefaultDateFormat)
}

// NewFeedRenderer returns a FeedRenderer with the default marker and date format.
func NewFeedRenderer() FeedRenderer {
	return FeedRenderer{
		MoreMarker: DefaultMoreMarker,
		DateFormat: DefaultDateFormat,
	}
}

func (r FeedRenderer) marker() string {
	if r.MoreMarker == "" {
		return DefaultMoreMarker
	}
	return r.MoreMarker
}

func (r FeedRenderer) dateFormat() string {
	if r.DateFormat == "" {
		return DefaultDateFormat
	}
	return r.DateFormat
}

// Render returns summaries for at most limit posts, preserving input order.
// A limit of zero or less yields an empty feed, as does an empty post list.
// Inputs are never mutated; calling Render twice with the same arguments
// produces equal results.
func (r FeedRenderer) Render(posts []Post, limit int) []PostSummary {
	if limit <= 0 || len(posts) == 0 {
		return nil
	}
	if limit > len(posts) {
		limit = len(posts)
	}
	summaries := make([]PostSummary, 0, limit)
	for _, p := range posts[:limit] {
		excerpt, hasMore := r.Excerpt(p.Content)
		var date string
		if !p.Date.IsZero() {
			date = p.Date.Format(r.dateFormat())
		}
		summaries = append(summaries, PostSummary{
			Title:   p.Title,
			Link:    p.Link,
			Date:    date,
			Excerpt: excerpt,
			HasMore: hasMore,
		})
	}
	return summaries
}

// Excerpt returns the part of content strictly before the first occurrence
// of the more marker, and whether the marker was present. Content without a
// marker comes back whole; content that starts with the marker yields an
// empty excerpt. The prefix is returned verbatim, untrimmed.
func (r FeedRenderer) Excerpt(content string) (string, bool) {
	if i := strings.Index(content, r.marker()); i >= 0 {
		return content[:i], true
	}
	return content, false
}
