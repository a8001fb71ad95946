package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

type server struct {
	cfg     Config
	content *Content
	pages   *pageStore
	logger  *log.Logger
	now     func() time.Time
}

func newServer(cfg Config, content *Content, logger *log.Logger) *server {
	return &server{
		cfg:     cfg,
		content: content,
		pages:   newPageStore(cfg.PageTTL, logger),
		logger:  logger,
		now:     time.Now,
	}
}

type scrollForm struct {
	Offset *float64 `form:"offset" binding:"required"`
}

type revealForm struct {
	Rect
	Viewport
}

func (s *server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogMiddleware(s.logger))
	r.LoadHTMLGlob(s.cfg.TemplateGlob)

	r.Static("/images", s.cfg.ImageDir)
	r.Static("/static", s.cfg.StaticDir)
	if p := s.content.ResumePath; strings.HasPrefix(p, "/") && p != "/" &&
		!strings.HasPrefix(p, "/static/") && !strings.HasPrefix(p, "/images/") {
		r.StaticFile(p, s.cfg.ResumeFile)
	}

	r.GET("/", s.handleIndex)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pages": s.pages.len()})
	})

	// HTMX event endpoints, all scoped to the caller's page view
	ui := r.Group("/ui")
	ui.POST("/scroll", s.handleScroll)
	ui.POST("/menu/toggle", s.handleMenuToggle)
	ui.POST("/nav/:target", s.handleNavSelect)
	ui.POST("/reveal/:section", s.handleReveal)
	ui.POST("/teardown", s.handleTeardown)
	return r
}

// Every load of the home page starts from a fresh page view. The id is
// rendered into the page, so each tab drives its own view.
func (s *server) handleIndex(c *gin.Context) {
	id, page := s.pages.create()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"pageID": id,
		"view":   RenderPage(s.content, page.Snapshot(), s.now().Year()),
	})
}

// pageFor looks up the caller's page view. A missing or expired view gets
// 410; the client then finishes reveals locally.
func (s *server) pageFor(c *gin.Context) *Page {
	id := c.GetHeader(pageHeader)
	if id == "" {
		c.Status(http.StatusGone)
		return nil
	}
	p := s.pages.get(id)
	if p == nil {
		c.Status(http.StatusGone)
		return nil
	}
	return p
}

func (s *server) renderNavbar(c *gin.Context, snap Snapshot) {
	c.HTML(http.StatusOK, "navbar", RenderNavbar(s.content.Profile, s.content.Nav, snap.Scroll, snap.Menu))
}

func (s *server) handleScroll(c *gin.Context) {
	var form scrollForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad scroll offset")
		return
	}
	page := s.pageFor(c)
	if page == nil {
		return
	}
	snap, changed := page.Scroll(*form.Offset)
	if !changed {
		c.Status(http.StatusNoContent)
		return
	}
	s.renderNavbar(c, snap)
}

func (s *server) handleMenuToggle(c *gin.Context) {
	page := s.pageFor(c)
	if page == nil {
		return
	}
	s.renderNavbar(c, page.ToggleMenu())
}

func (s *server) handleNavSelect(c *gin.Context) {
	entry, ok := s.content.NavEntryFor(c.Param("target"))
	if !ok {
		c.String(http.StatusNotFound, "no such section")
		return
	}
	page := s.pageFor(c)
	if page == nil {
		return
	}
	snap, req := page.Select(entry)

	trigger, err := json.Marshal(map[string]any{
		"portfolio:scroll": map[string]string{"target": req.Target},
	})
	if err != nil {
		s.logger.Error("Failed to encode scroll request", "err", err)
	} else {
		c.Header("HX-Trigger", string(trigger))
	}
	s.renderNavbar(c, snap)
}

func (s *server) handleReveal(c *gin.Context) {
	id := c.Param("section")
	var form revealForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "bad visibility sample")
		return
	}
	page := s.pageFor(c)
	if page == nil {
		return
	}
	snap, triggered, err := page.Reveal(id, form.Rect, form.Viewport)
	if errors.Is(err, ErrUnknownSection) {
		c.String(http.StatusNotFound, "no such section")
		return
	}
	if err != nil {
		s.logger.Error("Reveal failed", "section", id, "err", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	if !triggered {
		c.Status(http.StatusNoContent)
		return
	}
	view, _ := renderSection(s.content, snap, id)
	c.HTML(http.StatusOK, id, view)
}

func (s *server) handleTeardown(c *gin.Context) {
	// sendBeacon can't set headers, so the id also comes as a form field
	id := c.GetHeader(pageHeader)
	if id == "" {
		id = c.PostForm("page")
	}
	if id != "" {
		s.pages.release(id)
	}
	c.Status(http.StatusNoContent)
}
