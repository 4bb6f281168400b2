package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/vycasas/inkwell"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func testSite() inkwell.SiteConfig {
	return inkwell.SiteConfig{
		Name:        "Test Site",
		URL:         "https://example.org",
		Description: "A site for tests",
		Author:      "Ada",
	}
}

func TestHome(t *testing.T) {
	summaries := []inkwell.PostSummary{
		{Title: "First <Post>", Link: "/blog/first/", Date: "2015 April 2", Excerpt: "<p>Intro.</p>", HasMore: true},
		{Title: "Second", Link: "/blog/second/", Date: "2014 December 25", Excerpt: "<p>All of it.</p>"},
	}
	meta := inkwell.PageMeta{Title: "Test Site", URL: "https://example.org/", OGType: "website"}

	out := render(t, Home(summaries, meta, testSite()))

	if want := "First &lt;Post&gt;"; !strings.Contains(out, want) {
		t.Errorf("title should be escaped, want %q in output", want)
	}
	if !strings.Contains(out, "<p>Intro.</p>") {
		t.Error("excerpt HTML should pass through unescaped")
	}
	if got := strings.Count(out, `class="read-more"`); got != 1 {
		t.Errorf("read-more links = %d, want 1", got)
	}
	if !strings.Contains(out, `<a class="read-more" href="/blog/first/">`) {
		t.Error("read-more should link to the post that has more content")
	}
	if got := strings.Count(out, `<hr class="post-separator"/>`); got != 1 {
		t.Errorf("separators = %d, want 1 between 2 entries", got)
	}
	if !strings.Contains(out, "<time>2015 April 2</time>") {
		t.Error("summary date should be shown")
	}
	if !strings.Contains(out, `"@type":"WebSite"`) {
		t.Error("home should carry WebSite JSON-LD")
	}
}

func TestHomeEmpty(t *testing.T) {
	out := render(t, Home(nil, inkwell.PageMeta{}, testSite()))
	if !strings.Contains(out, "Nothing here yet.") {
		t.Error("empty feed should say so")
	}
	if strings.Contains(out, "feed-entry") {
		t.Error("empty feed should render no entries")
	}
}

func TestPost(t *testing.T) {
	post := inkwell.Post{
		Title:    "Hello",
		Slug:     "hello",
		Link:     "/blog/hello/",
		Date:     time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC),
		Category: "General",
		Content:  "<p>Body.</p>",
	}
	related := []inkwell.Post{{Title: "Other", Link: "/blog/other/"}}
	meta := inkwell.PageMeta{Title: "Hello", URL: "https://example.org/blog/hello/", OGType: "article"}

	out := render(t, Post(post, related, meta, testSite()))

	if !strings.Contains(out, "<h1>Hello</h1>") {
		t.Error("post title missing")
	}
	if !strings.Contains(out, `<time datetime="2015-04-02">2015 April 2</time>`) {
		t.Error("post date should render machine and human readable forms")
	}
	if !strings.Contains(out, `href="/category/general/"`) {
		t.Error("category link should use the slug")
	}
	if !strings.Contains(out, "<p>Body.</p>") {
		t.Error("post content should pass through unescaped")
	}
	if !strings.Contains(out, "Related posts") || !strings.Contains(out, `href="/blog/other/"`) {
		t.Error("related posts section missing")
	}
	if !strings.Contains(out, `"@type":"BlogPosting"`) {
		t.Error("post should carry BlogPosting JSON-LD")
	}
	if !strings.Contains(out, `"datePublished":"2015-04-02"`) {
		t.Error("JSON-LD should carry the publish date")
	}
	if !strings.Contains(out, `<meta property="og:type" content="article"/>`) {
		t.Error("og:type should come from PageMeta")
	}
	if !strings.Contains(out, `<title>Hello | Test Site</title>`) {
		t.Error("page title should append the site name")
	}
}

func TestPostNoRelated(t *testing.T) {
	post := inkwell.Post{Title: "Alone", Link: "/blog/alone/", Content: "<p>x</p>"}
	out := render(t, Post(post, nil, inkwell.PageMeta{Title: "Alone"}, testSite()))
	if strings.Contains(out, "Related posts") {
		t.Error("related section should be omitted when empty")
	}
}

func TestArchive(t *testing.T) {
	years := []inkwell.ArchiveYear{
		{Year: 2015, Posts: []inkwell.Post{{Title: "A", Link: "/blog/a/", Date: time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC)}}},
		{Year: 0, Posts: []inkwell.Post{{Title: "B", Link: "/blog/b/"}}},
	}

	out := render(t, Archive(years, inkwell.PageMeta{Title: "Archive"}, testSite()))

	if !strings.Contains(out, "<h2>2015</h2>") {
		t.Error("year heading missing")
	}
	if !strings.Contains(out, "<h2>Undated</h2>") {
		t.Error("zero year should render as Undated")
	}
	if got := strings.Count(out, `<ul class="archive-list">`); got != 2 {
		t.Errorf("archive lists = %d, want 2", got)
	}
}

func TestCategory(t *testing.T) {
	cat := inkwell.Category{
		Name:  "General",
		Slug:  "general",
		Posts: []inkwell.Post{{Title: "A", Link: "/blog/a/"}},
	}

	out := render(t, Category(cat, inkwell.PageMeta{Title: "General"}, testSite()))

	if !strings.Contains(out, "<h1>General</h1>") {
		t.Error("category name missing")
	}
	if !strings.Contains(out, `<ul class="category-list">`) {
		t.Error("category list missing")
	}
}

func TestNotFound(t *testing.T) {
	out := render(t, NotFound(testSite()))
	if !strings.Contains(out, "<h1>404</h1>") {
		t.Error("404 heading missing")
	}
	if !strings.Contains(out, `content="website"`) {
		t.Error("og:type should default to website")
	}
	if !strings.Contains(out, "<title>Page not found | Test Site</title>") {
		t.Error("404 title should append the site name")
	}
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(WebsiteJsonLD(testSite())), &data); err != nil {
		t.Fatalf("WebsiteJsonLD is not valid JSON: %v", err)
	}
	if data["@type"] != "WebSite" {
		t.Errorf("@type = %v, want WebSite", data["@type"])
	}
	if data["name"] != "Test Site" {
		t.Errorf("name = %v, want Test Site", data["name"])
	}
}

func TestBlogPostingJsonLDUndated(t *testing.T) {
	post := inkwell.Post{Title: "Hello", Slug: "hello"}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(BlogPostingJsonLD(testSite(), post)), &data); err != nil {
		t.Fatalf("BlogPostingJsonLD is not valid JSON: %v", err)
	}
	if _, ok := data["datePublished"]; ok {
		t.Error("zero dates should omit datePublished")
	}
	if data["url"] != "https://example.org/blog/hello/" {
		t.Errorf("url = %v, want the post URL", data["url"])
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC)); got != "2015 April 2" {
		t.Errorf("FormatDate = %q, want %q", got, "2015 April 2")
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}
