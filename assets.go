package inkwell

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const jpegQuality = 80

// copyStatic copies the static directory into the output, downscaling
// oversized JPEGs when MaxImageWidth is set. A site without a static dir is
// fine; the embedded defaults cover the stylesheet.
func (s *Site) copyStatic() error {
	src := s.Config.StaticDir
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inkwell: stat static dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("inkwell: static path %q is not a directory", src)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(s.Config.OutputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if s.Config.MaxImageWidth > 0 && isJPEG(path) {
			return s.copyImage(path, dst)
		}
		return copyFile(path, dst)
	})
	if err != nil {
		return fmt.Errorf("inkwell: copy static: %w", err)
	}
	return nil
}

func isJPEG(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

// copyFile copies a single file's contents to dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyImage copies a JPEG into the output, downscaling it first when it is
// wider than MaxImageWidth. Images already within the cap copy verbatim.
func (s *Site) copyImage(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: decode image: %w", src, err)
	}
	if cfg.Width <= s.Config.MaxImageWidth {
		return os.WriteFile(dst, data, 0o644)
	}
	scaled, w, h, err := processImage(bytes.NewReader(data), s.Config.MaxImageWidth)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	s.log.Debug("downscaled image", "src", src, "width", w, "height", h, "bytes", len(scaled))
	return os.WriteFile(dst, scaled, 0o644)
}

// processImage decodes a JPEG, downscales it to maxWidth when wider, and
// re-encodes it. Only JPEGs go through here; other formats copy verbatim so
// links in content keep their extensions.
func processImage(src io.Reader, maxWidth int) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Resize if wider than max
	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

// writeEmbeddedAssets writes the framework's default assets into the output
// unless the static dir already provided a file with the same name.
func (s *Site) writeEmbeddedAssets() error {
	sub, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if _, err := os.Stat(filepath.Join(s.Config.OutputDir, path)); err == nil {
			return nil // user override wins
		}
		data, err := fs.ReadFile(sub, path)
		if err != nil {
			return err
		}
		return s.writeRaw(path, data)
	})
}
