package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxenceleguery/portfolio/app/feed"
	"github.com/maxenceleguery/portfolio/app/site"
	"github.com/maxenceleguery/portfolio/app/tasks"
)

func NewHandler(contentCache ContentSource, client *feed.Client,
	scheduler tasks.TaskSchedulerInterface, authorQuery, baseURL, version string,
	location *time.Location) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		contentCache: contentCache,
		client:       client,
		scheduler:    scheduler,
		generator:    feed.NewGenerator(location),
		authorQuery:  authorQuery,
		baseURL:      baseURL,
		version:      version,
		location:     location,
	}
}

func (h *Handler) GetIndex(c *gin.Context) {
	content, err := h.contentCache.GetContent()
	if err != nil {
		slog.Error("Portfolio content not available", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	now := time.Now().In(h.location)
	age, hasAge := content.Profile.AgeOn(now)

	c.HTML(http.StatusOK, "index.html", indexPage{
		Content:    content,
		Age:        age,
		HasAge:     hasAge,
		Categories: site.ProjectCategories,
		Projects:   content.Projects,
		Category:   site.AllProjects,
		Year:       now.Year(),
		Version:    h.version,
	})
}

// mountPapers starts one fetch bound to the request and waits for it.
// The returned status is Loading only when the client went away first.
// Failed and Succeeded are rendered the same way.
func (h *Handler) mountPapers(c *gin.Context) (tasks.Status, []feed.Paper) {
	state := tasks.NewPapersState(c.Request.Context())

	task := tasks.NewFetchPapersTask(h.authorQuery, h.client, state)
	if err := h.scheduler.EnqueueTask(task); err != nil {
		slog.Error("Error enqueueing fetch task", "query", h.authorQuery, "error", err)
		state.Fail()
	}

	return state.Wait()
}

func (h *Handler) GetPapers(c *gin.Context) {
	status, papers := h.mountPapers(c)
	if status == tasks.StatusLoading {
		slog.Debug("Papers request cancelled before the fetch completed", "query", h.authorQuery)
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "papers.html", papersFragment{Papers: papers})
}

func (h *Handler) APIGetPapers(c *gin.Context) {
	status, papers := h.mountPapers(c)
	if status == tasks.StatusLoading {
		c.Abort()
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"papers": papers,
		"count":  len(papers),
	})
}

func (h *Handler) GetPapersFeed(c *gin.Context) {
	papers := h.client.FetchAuthoredPapers(c.Request.Context(), h.authorQuery)

	channel := feed.Channel{
		Title:     "Papers",
		Link:      h.baseURL,
		Generator: "Portfolio/" + h.version,
	}
	if content, err := h.contentCache.GetContent(); err == nil && content.Profile.Name != "" {
		channel.Title = "Papers by " + content.Profile.Name
	}
	if h.baseURL != "" {
		channel.SelfLink = h.baseURL + "/papers.rss"
	}

	rss, err := h.generator.Run(channel, papers)
	if err != nil {
		slog.Error("RSS generation error", "query", h.authorQuery, "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Header("X-Feed-Items", strconv.Itoa(len(papers)))

	c.String(http.StatusOK, rss)
}

func (h *Handler) GetProjects(c *gin.Context) {
	category := c.DefaultQuery("category", site.AllProjects)
	if category != site.AllProjects && !site.IsProjectCategory(category) {
		c.String(http.StatusBadRequest, "unknown project category")
		return
	}

	content, err := h.contentCache.GetContent()
	if err != nil {
		slog.Error("Portfolio content not available", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.HTML(http.StatusOK, "projects.html", projectsFragment{
		Projects:   site.FilterProjects(content.Projects, category),
		Categories: site.ProjectCategories,
		Category:   category,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":    time.Now().In(h.location).Format(time.RFC3339),
		"version":      h.version,
		"author_query": h.authorQuery,
	}

	if _, err := h.contentCache.GetContent(); err != nil {
		health["content"] = "unavailable"
	} else {
		health["content"] = "loaded"
	}

	c.JSON(http.StatusOK, health)
}
