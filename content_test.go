package inkwell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeContentFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func newTestSite(t *testing.T, cfg SiteConfig) *Site {
	t.Helper()
	if cfg.ContentDir == "" {
		cfg.ContentDir = filepath.Join(t.TempDir(), "content")
		if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
			t.Fatalf("mkdir content: %v", err)
		}
	}
	cfg.NoCache = true
	return New(cfg, Views{})
}

func TestLoadContent(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2015-04-02-hello-world.md", `---
title: "Hello, World"
category: general
---
The opening paragraph.

<!--read_more-->

The rest of the story.
`)
	writeContentFile(t, root, "posts/2024-01-15-second.md", `---
title: "Second Post"
---
All visible.
`)
	writeContentFile(t, root, "about.md", `---
title: "About"
---
Who writes this.
`)

	s := newTestSite(t, SiteConfig{ContentDir: root})
	posts, pages, err := s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}

	// Newest first.
	if posts[0].Slug != "second" || posts[1].Slug != "hello-world" {
		t.Errorf("post order = [%s %s], want [second hello-world]", posts[0].Slug, posts[1].Slug)
	}

	first := posts[1]
	if first.Title != "Hello, World" {
		t.Errorf("Title = %q, want %q", first.Title, "Hello, World")
	}
	if first.Link != "/blog/hello-world/" {
		t.Errorf("Link = %q, want /blog/hello-world/", first.Link)
	}
	wantDate := time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("Date = %v, want %v", first.Date, wantDate)
	}
	if first.Category != "general" {
		t.Errorf("Category = %q, want general", first.Category)
	}
	if !strings.Contains(first.Content, "<p>The opening paragraph.</p>") {
		t.Errorf("Content missing rendered paragraph: %q", first.Content)
	}
	if !strings.Contains(first.Content, DefaultMoreMarker) {
		t.Errorf("Content lost the more marker: %q", first.Content)
	}

	if pages[0].Link != "/about/" {
		t.Errorf("page Link = %q, want /about/", pages[0].Link)
	}
}

func TestLoadContentFrontMatterOverrides(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2020-01-01-original.md", `---
title: "Overridden"
date: 2022-06-30
slug: custom-slug
---
body
`)

	s := newTestSite(t, SiteConfig{ContentDir: root})
	posts, _, err := s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	p := posts[0]
	if p.Slug != "custom-slug" {
		t.Errorf("Slug = %q, want custom-slug", p.Slug)
	}
	if p.Link != "/blog/custom-slug/" {
		t.Errorf("Link = %q, want /blog/custom-slug/", p.Link)
	}
	want := time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
	if !p.Date.Equal(want) {
		t.Errorf("Date = %v, want %v (front matter wins over filename)", p.Date, want)
	}
}

func TestLoadContentTitleFallback(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2021-03-14-pi-day-notes.md", "no front matter at all\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	posts, _, err := s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	if posts[0].Title != "Pi Day Notes" {
		t.Errorf("fallback Title = %q, want %q", posts[0].Title, "Pi Day Notes")
	}
}

func TestLoadContentDrafts(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2024-05-01-published.md", "live\n")
	writeContentFile(t, root, "posts/2024-05-02-wip.md", "---\ndraft: true\n---\nnot yet\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	posts, _, err := s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Slug != "published" {
		t.Fatalf("drafts should be excluded, got %d posts", len(posts))
	}

	s = newTestSite(t, SiteConfig{ContentDir: root, IncludeDrafts: true})
	posts, _, err = s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("IncludeDrafts should keep drafts, got %d posts", len(posts))
	}
	if !posts[0].Draft {
		t.Error("draft post should carry Draft=true")
	}
}

func TestLoadContentDuplicateURL(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2024-01-01-same.md", "a\n")
	writeContentFile(t, root, "posts/2024-02-02-other.md", "---\nslug: same\n---\nb\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	_, _, err := s.loadContent()
	if err == nil {
		t.Fatal("expected an error for two posts with the same URL")
	}
	if !strings.Contains(err.Error(), "/blog/same/") {
		t.Errorf("error should name the colliding URL, got: %v", err)
	}
}

func TestLoadContentReservedURL(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "archive.md", "---\ntitle: Archive\n---\nmy own archive\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	_, _, err := s.loadContent()
	if err == nil {
		t.Fatal("expected an error for a page at the generated /archive/ URL")
	}
	if !strings.Contains(err.Error(), "/archive/") {
		t.Errorf("error should name the reserved URL, got: %v", err)
	}
}

func TestLoadContentCategoryURLTaken(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2024-01-01-tagged.md", "---\ncategory: Go\n---\nx\n")
	writeContentFile(t, root, "category/go.md", "---\ntitle: \"Go\"\n---\nhand-written listing\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	_, _, err := s.loadContent()
	if err == nil {
		t.Fatal("expected an error for a page at a generated category URL")
	}
	if !strings.Contains(err.Error(), "/category/go/") {
		t.Errorf("error should name the colliding URL, got: %v", err)
	}
}

func TestLoadContentBadDate(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "posts/2024-01-01-ok.md", "---\ndate: \"next tuesday\"\n---\nx\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	_, _, err := s.loadContent()
	if err == nil || !strings.Contains(err.Error(), "unrecognized date") {
		t.Fatalf("expected unrecognized date error, got: %v", err)
	}
}

func TestSplitDatePrefix(t *testing.T) {
	tests := []struct {
		name     string
		wantZero bool
		wantRest string
	}{
		{"2015-04-02-hello-world", false, "hello-world"},
		{"2024-12-31-y", false, "y"},
		{"no-date-here", true, "no-date-here"},
		{"2015-13-40-bad-date", true, "2015-13-40-bad-date"},
		{"2015-04-02", true, "2015-04-02"}, // date with no slug after it
	}
	for _, tt := range tests {
		date, rest := splitDatePrefix(tt.name)
		if date.IsZero() != tt.wantZero {
			t.Errorf("splitDatePrefix(%q) zero = %v, want %v", tt.name, date.IsZero(), tt.wantZero)
		}
		if rest != tt.wantRest {
			t.Errorf("splitDatePrefix(%q) rest = %q, want %q", tt.name, rest, tt.wantRest)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2015-04-02", time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC)},
		{"2015-04-02 13:45:00", time.Date(2015, 4, 2, 13, 45, 0, 0, time.UTC)},
		{"2015-04-02T13:45:00", time.Date(2015, 4, 2, 13, 45, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.input)
		if err != nil {
			t.Errorf("parseDate(%q) returned error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := parseDate("02/04/2015"); err == nil {
		t.Error("parseDate should reject unknown layouts")
	}
}

func TestPageLinkNested(t *testing.T) {
	root := t.TempDir()
	writeContentFile(t, root, "notes/setup.md", "---\ntitle: Setup\n---\nsteps\n")

	s := newTestSite(t, SiteConfig{ContentDir: root})
	_, pages, err := s.loadContent()
	if err != nil {
		t.Fatalf("loadContent failed: %v", err)
	}
	if len(pages) != 1 || pages[0].Link != "/notes/setup/" {
		t.Fatalf("nested page link = %v, want /notes/setup/", pages)
	}
}
