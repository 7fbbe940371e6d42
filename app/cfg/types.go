package cfg

import "time"

type Cfg struct {
	// Server configuration
	Port         string
	BaseUrl      string
	ContentFile  string
	WatchContent bool
	WorkerCount  int

	// Papers feed configuration
	ArxivURL    string
	AuthorQuery string
	AuthorNames []string
	MaxResults  int

	// Application metadata
	UserAgent string
	Timezone  string
	Location  *time.Location
	Debug     bool
	Version   string
}
