// Package server serves the portfolio: the index page, the CV download
// and everything else straight from the static directory.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vlivernoche/portfolio/internal/analytics"
	"github.com/vlivernoche/portfolio/internal/i18n"
)

// Config holds what the HTTP layer needs to know about the site.
type Config struct {
	StaticDir  string // directory served for every other path
	Index      string // page served at /
	CVPath     string // file served at /cv
	CVFilename string // attachment name for the CV
}

// Server is the portfolio HTTP server.
type Server struct {
	cfg     Config
	logger  *zap.Logger
	pages   *Pages
	tracker *analytics.Tracker
	engine  *gin.Engine
}

// New reads the index page and builds the router. tracker may be nil to
// disable visit counting.
func New(cfg Config, table *i18n.Table, logger *zap.Logger, tracker *analytics.Tracker) (*Server, error) {
	source, err := os.ReadFile(cfg.Index)
	if err != nil {
		return nil, fmt.Errorf("reading index page: %w", err)
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		pages:   NewPages(source, table),
		tracker: tracker,
	}
	s.engine = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.logger))
	r.Use(recovery(s.logger))
	if s.tracker != nil {
		r.Use(s.tracker.Middleware("/cv"))
	}

	methods := []string{http.MethodGet, http.MethodHead}

	// Home page route
	r.Match(methods, "/", s.handleIndex)

	// CV download, always under the same attachment name
	r.Match(methods, "/cv", s.handleCV)

	// Everything else comes from the static directory
	files := http.FileServer(gin.Dir(s.cfg.StaticDir, false))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})

	return r
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// Pages returns the page renderer.
func (s *Server) Pages() *Pages { return s.pages }

func (s *Server) handleIndex(c *gin.Context) {
	saved, _ := c.Cookie(i18n.StorageKey)
	lang := i18n.Resolve(saved, i18n.AcceptLanguage(c.GetHeader("Accept-Language")))
	c.Set("lang", string(lang))

	page, err := s.pages.Get(lang)
	if err != nil {
		c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Vary", "Cookie, Accept-Language")
	c.Header("Cache-Control", "no-cache")
	c.Header("Content-Language", string(lang))
	c.Header("ETag", page.ETag)
	if etagMatches(c.GetHeader("If-None-Match"), page.ETag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Body)
}

func (s *Server) handleCV(c *gin.Context) {
	info, err := os.Stat(s.cfg.CVPath)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			c.Error(err)
		}
		c.Status(http.StatusNotFound)
		return
	}
	if s.tracker != nil {
		s.tracker.Track(c, analytics.KindDownload, "")
	}
	c.FileAttachment(s.cfg.CVPath, s.cfg.CVFilename)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("portfolio server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})
	return g.Wait()
}
