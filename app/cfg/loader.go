package cfg

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl      string `long:"base-url" env:"BASE_URL" description:"Public base URL of the site (e.g., https://maxenceleguery.net)"`
	ContentFile  string `long:"content-file" env:"CONTENT_FILE" default:"./content.yml" description:"YAML file with the portfolio content"`
	WatchContent bool   `long:"watch-content" env:"WATCH_CONTENT" description:"Reload the content file when it changes"`
	WorkerCount  int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of workers fetching papers"`

	// Papers feed configuration
	ArxivURL    string   `long:"arxiv-url" env:"ARXIV_URL" default:"https://export.arxiv.org/api/query" description:"arXiv search API endpoint"`
	AuthorQuery string   `long:"author-query" env:"AUTHOR_QUERY" default:"au:Maxence Leguery" description:"Search query sent to the feed"`
	AuthorNames []string `long:"author-name" env:"AUTHOR_NAMES" env-delim:"," default:"Maxence Leguéry" description:"Author name a paper must list to be shown (repeatable)"`
	MaxResults  int      `long:"max-results" env:"MAX_RESULTS" default:"10" description:"Number of feed entries requested"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Portfolio/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone used to format publication dates (e.g., UTC, Europe/Paris)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses os.Args and the environment. It returns nil, nil when help was requested.
func Load() (*Cfg, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:         raw.Port,
		BaseUrl:      strings.TrimRight(raw.BaseUrl, "/"),
		ContentFile:  raw.ContentFile,
		WatchContent: raw.WatchContent,
		WorkerCount:  raw.WorkerCount,
		ArxivURL:     raw.ArxivURL,
		AuthorQuery:  raw.AuthorQuery,
		AuthorNames:  raw.AuthorNames,
		MaxResults:   raw.MaxResults,
		UserAgent:    raw.UserAgent,
		Timezone:     raw.Timezone,
		Location:     time.UTC,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if loc, err := loadLocation(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using UTC: %v\n", cfg.Timezone, err)
	} else {
		cfg.Location = loc
	}

	return cfg, nil
}

func validate(cfg *Cfg) error {
	if cfg.AuthorQuery == "" {
		return fmt.Errorf("author query is required")
	}

	names := make([]string, 0, len(cfg.AuthorNames))
	for _, name := range cfg.AuthorNames {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("at least one author name is required")
	}
	cfg.AuthorNames = names

	nonNegativeFields := map[string]int{
		"worker count": cfg.WorkerCount,
		"max results":  cfg.MaxResults,
	}
	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	return nil
}

func loadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(timezone)
}
