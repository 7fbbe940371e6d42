package api

import (
	"time"

	"github.com/maxenceleguery/portfolio/app/feed"
	"github.com/maxenceleguery/portfolio/app/site"
	"github.com/maxenceleguery/portfolio/app/tasks"
)

type GeneratorInterface interface {
	Run(channel feed.Channel, papers []feed.Paper) (string, error)
}

var _ GeneratorInterface = (*feed.Generator)(nil)

type ContentSource interface {
	GetContent() (*site.Content, error)
}

var _ ContentSource = (*site.ContentCache)(nil)

type Handler struct {
	contentCache ContentSource
	client       *feed.Client
	scheduler    tasks.TaskSchedulerInterface
	generator    GeneratorInterface
	authorQuery  string
	baseURL      string
	version      string
	location     *time.Location
}

// indexPage is the data of the full page. The papers section always starts in Loading.
type indexPage struct {
	Content    *site.Content
	Age        int
	HasAge     bool
	Categories []site.Category
	Projects   []site.Project
	Category   string
	Year       int
	Version    string
}

// papersFragment carries no outcome: a failed fetch renders as an empty one.
type papersFragment struct {
	Papers []feed.Paper
}

type projectsFragment struct {
	Projects   []site.Project
	Categories []site.Category
	Category   string
}
