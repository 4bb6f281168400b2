package inkwell

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
)

// writePage renders a templ component into a file under the output
// directory, creating parent directories as needed.
func (s *Site) writePage(rel string, cmp templ.Component) error {
	path := filepath.Join(s.Config.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("inkwell: write %s: %w", rel, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("inkwell: write %s: %w", rel, err)
	}
	if err := cmp.Render(context.Background(), f); err != nil {
		f.Close()
		return fmt.Errorf("inkwell: render %s: %w", rel, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("inkwell: write %s: %w", rel, err)
	}
	s.log.Debug("wrote page", "path", rel)
	return nil
}

// writeRaw writes bytes to rel under the output directory.
func (s *Site) writeRaw(rel string, data []byte) error {
	path := filepath.Join(s.Config.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("inkwell: write %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("inkwell: write %s: %w", rel, err)
	}
	s.log.Debug("wrote file", "path", rel)
	return nil
}

// outputPath converts a site-relative link like "/blog/my-post/" into the
// page file that serves it, "blog/my-post/index.html".
func outputPath(link string) string {
	trimmed := filepath.FromSlash(strings.Trim(link, "/"))
	if trimmed == "" {
		return "index.html"
	}
	return filepath.Join(trimmed, "index.html")
}
