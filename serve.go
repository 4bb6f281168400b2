package inkwell

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve builds the site, then serves the output directory for local
// preview, rebuilding whenever content or static files change. It blocks
// until ctx is canceled or the server fails.
func (s *Site) Serve(ctx context.Context) error {
	if err := s.Build(); err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	// Previews change on every save; nothing may cache.
	e.Use(noStoreMiddleware)

	e.HTTPErrorHandler = s.previewErrorHandler(e)
	e.Static("/", s.Config.OutputDir)

	go func() {
		if err := s.watch(ctx); err != nil {
			s.log.Error("watcher stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("shutdown", "error", err)
		}
	}()

	s.log.Info("preview server listening", "addr", s.Config.Addr)
	if err := e.Start(s.Config.Addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("inkwell: serve: %w", err)
	}
	return nil
}

func noStoreMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", "no-store")
		return next(c)
	}
}

// previewErrorHandler serves the built 404.html for unknown paths, matching
// what static hosts do with that file.
func (s *Site) previewErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			page, readErr := os.ReadFile(filepath.Join(s.Config.OutputDir, "404.html"))
			if readErr == nil {
				_ = c.HTMLBlob(http.StatusNotFound, page)
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
