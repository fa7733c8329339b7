package homearc

import "time"

/*
config sets up shared variables for the front-end:
- common constants - e.g request timeouts and poll cadences used by the api client and pollers
- common maps - used to list valid values for certain fields e.g download frequencies
*/

// common constants
const (
	// DefaultRequestTimeout bounds every backend API call unless the caller
	// overrides it per request.
	DefaultRequestTimeout = 60 * time.Second

	// poll cadences used to approximate server push
	StatusPollInterval   = 5 * time.Second
	EventPollInterval    = 5 * time.Second
	ProgressPollInterval = 2 * time.Second

	// DefaultSearchLimit is the page size used when a caller does not supply one.
	DefaultSearchLimit = 24

	// MaxUploadBytes bounds multipart file uploads accepted by the ui-api.
	MaxUploadBytes = 10 << 30
)

// common maps - used to validate enum values
var ValidDownloadFrequencies = map[int]bool{ // seconds between recurring download runs
	0:        true, // once-off
	86400:    true, // daily
	604800:   true, // weekly
	2592000:  true, // every 30 days
	7776000:  true, // every 90 days
	15552000: true, // every 180 days
}

var ValidSortOrders = map[string]bool{ // accepted by the search endpoints
	"":           true,
	"rank":       true,
	"published":  true,
	"size":       true,
	"length":     true,
	"viewed":     true,
	"view_count": true,
}

var ValidEventLevels = map[string]bool{ // events feed severity
	"info":    true,
	"warn":    true,
	"error":   true,
	"success": true,
}
