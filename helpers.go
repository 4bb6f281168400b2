package inkwell

import (
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
)

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// RelatedPosts finds posts sharing a category with current, in feed order.
func RelatedPosts(current Post, posts []Post) []Post {
	category := strings.ToLower(strings.TrimSpace(current.Category))
	if category == "" {
		return nil
	}
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		if strings.ToLower(strings.TrimSpace(p.Category)) == category {
			related = append(related, p)
		}
	}
	return related
}

// groupByYear buckets posts into archive years, keeping feed order within
// each year. Posts arrive newest-first, so years come out newest-first too.
// Undated posts land in a trailing zero-year bucket.
func groupByYear(posts []Post) []ArchiveYear {
	var years []ArchiveYear
	for _, p := range posts {
		y := p.Date.Year()
		if p.Date.IsZero() {
			y = 0
		}
		if n := len(years); n > 0 && years[n-1].Year == y {
			years[n-1].Posts = append(years[n-1].Posts, p)
			continue
		}
		years = append(years, ArchiveYear{Year: y, Posts: []Post{p}})
	}
	return years
}

// collectCategories gathers the categories present in posts, sorted by name.
// Posts without a category are left out. Names must slugify to distinct,
// non-empty values: every listing lives under /category/<slug>/, and two
// names sharing a slug would write to the same path.
func collectCategories(posts []Post) ([]Category, error) {
	index := make(map[string]int)
	claimed := make(map[string]string) // slug -> first name claiming it
	var cats []Category
	for _, p := range posts {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		i, ok := index[key]
		if !ok {
			slug := Slugify(name)
			if slug == "" {
				return nil, fmt.Errorf("category %q has no URL-safe characters", name)
			}
			if prev, taken := claimed[slug]; taken {
				return nil, fmt.Errorf("categories %q and %q map to the same URL /category/%s/", prev, name, slug)
			}
			claimed[slug] = name
			i = len(cats)
			index[key] = i
			cats = append(cats, Category{Name: name, Slug: slug})
		}
		cats[i].Posts = append(cats[i].Posts, p)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Name < cats[j].Name })
	return cats, nil
}
