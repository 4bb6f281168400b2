package inkwell

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// BrokenLink is an internal reference whose target does not exist in the
// built output.
type BrokenLink struct {
	File string // HTML file containing the reference, relative to the output dir
	Ref  string // the href or src value as written
}

func (b BrokenLink) String() string {
	return fmt.Sprintf("%s -> %s", b.File, b.Ref)
}

// CheckLinks parses every built HTML file and verifies that relative hrefs
// and srcs resolve to files in the output directory. References with a
// scheme are left alone; this is an offline check.
func (s *Site) CheckLinks() ([]BrokenLink, error) {
	out := s.Config.OutputDir
	var broken []BrokenLink

	err := filepath.WalkDir(out, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".html") {
			return nil
		}
		rel, err := filepath.Rel(out, path)
		if err != nil {
			return err
		}
		refs, err := extractRefs(path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", rel, err)
		}
		for _, ref := range refs {
			if !s.refResolves(rel, ref) {
				broken = append(broken, BrokenLink{File: filepath.ToSlash(rel), Ref: ref})
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inkwell: check links: %w", err)
	}
	return broken, nil
}

// extractRefs returns the internal href/src values in an HTML file.
func extractRefs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, err
	}

	var refs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if attr.Key != "href" && attr.Key != "src" {
					continue
				}
				if val := internalRef(attr.Val); val != "" {
					refs = append(refs, val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return refs, nil
}

// internalRef strips fragments and query strings and reports whether ref
// points inside the site. Schemes, protocol-relative URLs, mailto, tel, and
// pure fragments come back empty.
func internalRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return ""
	}
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "mailto:") || strings.HasPrefix(ref, "tel:") {
		return ""
	}
	if i := strings.IndexAny(ref, "#?"); i >= 0 {
		ref = ref[:i]
	}
	return ref
}

// refResolves reports whether ref, found in the HTML file rel, names
// something the output tree can serve. Directory links count only when the
// directory holds an index.html.
func (s *Site) refResolves(rel, ref string) bool {
	out := s.Config.OutputDir
	var target string
	if strings.HasPrefix(ref, "/") {
		target = filepath.Join(out, filepath.FromSlash(ref))
	} else {
		target = filepath.Join(out, filepath.Dir(rel), filepath.FromSlash(ref))
	}
	info, err := os.Stat(target)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err := os.Stat(filepath.Join(target, "index.html"))
		return err == nil
	}
	return true
}
