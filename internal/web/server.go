// Package web serves the portfolio site.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/marquee"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	cfg     *config.Config
	marquee atomic.Pointer[marquee.Config]
	router  *gin.Engine
}

// New builds the router. The marquee table of cfg must be valid.
func New(cfg *config.Config) (*Server, error) {
	mc, err := cfg.Marquee.Build()
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg}
	s.marquee.Store(&mc)

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Static("/images", cfg.ImagesDir)
	r.Static("/static", cfg.StaticDir)
	s.routes(r)
	s.router = r
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }

// SetMarquee swaps the marquee configuration, e.g. after a config reload.
// It is safe to call while serving.
func (s *Server) SetMarquee(mc marquee.Config) {
	s.marquee.Store(&mc)
}

// Marquee returns the marquee configuration currently served.
func (s *Server) Marquee() marquee.Config {
	return *s.marquee.Load()
}

func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	log.Printf("Portfolio listening on %s", addr)
	return s.router.Run(addr)
}

func (s *Server) routes(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		mc := s.Marquee()
		c.HTML(http.StatusOK, "index.html", gin.H{
			"name":         content.Name,
			"tagline":      content.Tagline,
			"aboutMe":      content.AboutMe,
			"projects":     content.Projects,
			"certificates": content.Certificates,
			"marquee":      buildMarqueeView(mc, estimateLayout(mc, DefaultViewport)),
		})
	})

	// HTMX fragments
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{
			"heading": "Work Experience",
			"entries": content.Work,
		})
	})

	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{
			"heading": "Education",
			"entries": content.Education,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Marquee configuration plus a layout estimate for a viewport width.
	r.GET("/api/marquee", func(c *gin.Context) {
		viewport, err := strconv.ParseFloat(c.DefaultQuery("viewport", strconv.Itoa(DefaultViewport)), 64)
		if err != nil || viewport <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "viewport must be a positive number"})
			return
		}
		mc := s.Marquee()
		items := make([]itemView, 0, len(mc.Items))
		for _, it := range mc.Items {
			items = append(items, buildItemView(it))
		}
		c.JSON(http.StatusOK, gin.H{
			"speed":          mc.Speed,
			"direction":      mc.Direction,
			"velocity":       mc.Velocity(),
			"containerWidth": mc.ContainerWidth.String(),
			"itemHeight":     mc.ItemHeight,
			"gap":            mc.Gap,
			"pauseOnHover":   mc.PauseOnHover,
			"fadeEdges":      mc.FadeEdges,
			"fadeColor":      mc.FadeColor,
			"scaleOnHover":   mc.ScaleOnHover,
			"ariaLabel":      mc.AriaLabel,
			"items":          items,
			"estimate":       estimateLayout(mc, viewport),
		})
	})
}
