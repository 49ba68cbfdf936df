package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server holds what the handlers render from. Content is read-only.
type Server struct {
	content Content
	metrics *Metrics
	log     *slog.Logger
	now     func() time.Time
}

func NewServer(content Content, metrics *Metrics, log *slog.Logger) *Server {
	return &Server{
		content: content,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// Router builds the gin engine serving the page, its section fragments,
// static assets, health and metrics.
func (s *Server) Router() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := staticFiles(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(s.log), gin.Recovery(), requestMetrics(s.metrics))
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", static)

	// Home page route
	r.GET("/", s.handleIndex)

	// Single section fragment, e.g. /sections/projects
	r.GET("/sections/:name", s.handleSection)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	return r, nil
}

func (s *Server) handleIndex(c *gin.Context) {
	page := newPageView(&s.content, s.now().Year())
	c.HTML(http.StatusOK, "index.html", page)
	if len(c.Errors) > 0 {
		return
	}
	for _, v := range page.Sections {
		s.metrics.SectionRendered(v.ID)
	}
}

func (s *Server) handleSection(c *gin.Context) {
	name := c.Param("name")
	sec, err := FindSection(name)
	if errors.Is(err, ErrUnknownSection) {
		c.String(http.StatusNotFound, "section %q not found", name)
		return
	}

	c.HTML(http.StatusOK, sec.Template, newSectionView(sec, &s.content, s.now().Year()))
	if len(c.Errors) > 0 {
		return
	}
	s.metrics.SectionRendered(sec.ID)
}
