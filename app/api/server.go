package api

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxenceleguery/portfolio/app/feed"
	"github.com/maxenceleguery/portfolio/app/site"
)

// SummaryLimit is the number of characters of a summary shown on a paper card.
const SummaryLimit = 300

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"truncate": func(s string) string {
		return feed.Truncate(s, SummaryLimit)
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	"categoryIcon": site.CategoryIcon,
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html"))
}

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, HX-Request, HX-Target")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.SetHTMLTemplate(loadTemplates())

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/", handler.GetIndex)

	// Fragments requested by the page
	r.GET("/papers", handler.GetPapers)
	r.GET("/projects", handler.GetProjects)

	r.GET("/papers.rss", handler.GetPapersFeed)

	api := r.Group("/api")
	{
		api.GET("/papers", handler.APIGetPapers)
	}

	r.GET("/health", handler.GetHealth)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
