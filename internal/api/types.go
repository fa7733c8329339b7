package api

import "time"

// FileGroup is one logical file (a video, an archived page, an ebook...)
// together with its sidecar files, as indexed by the backend.
type FileGroup struct {
	ID          int64     `json:"id"`
	PrimaryPath string    `json:"primary_path"`
	Title       string    `json:"title"`
	Mimetype    string    `json:"mimetype"`
	Model       string    `json:"model"`
	Size        int64     `json:"size"`
	Published   time.Time `json:"published_datetime"`
	Viewed      time.Time `json:"viewed"`
	TagNames    []string  `json:"tag_names"`
}

// searchEnvelope is the paginated list wrapper used by all search endpoints:
// a page of items plus aggregate totals keyed by the entity's plural name.
type searchEnvelope struct {
	FileGroups []FileGroup    `json:"file_groups"`
	Totals     map[string]int `json:"totals"`
}

// Settings mirrors GET /api/settings.
type Settings struct {
	DownloadManagerDisabled bool   `json:"download_manager_disabled"`
	DownloadManagerStopped  bool   `json:"download_manager_stopped"`
	DownloadOnStartup       bool   `json:"download_on_startup"`
	DownloadTimeout         int    `json:"download_timeout"`
	HotspotDevice           string `json:"hotspot_device"`
	HotspotOnStartup        bool   `json:"hotspot_on_startup"`
	HotspotPassword         string `json:"hotspot_password"`
	HotspotSSID             string `json:"hotspot_ssid"`
	HotspotStatus           string `json:"hotspot_status"`
	MediaDirectory          string `json:"media_directory"`
	ThrottleOnStartup       bool   `json:"throttle_on_startup"`
	ThrottleStatus          string `json:"throttle_status"`
	Version                 string `json:"version"`
	WROLMode                bool   `json:"wrol_mode"`
}

// SettingsUpdate carries only the fields being changed; nil fields are
// omitted from the PATCH body.
type SettingsUpdate struct {
	DownloadOnStartup *bool   `json:"download_on_startup,omitempty"`
	DownloadTimeout   *int    `json:"download_timeout,omitempty"`
	HotspotDevice     *string `json:"hotspot_device,omitempty"`
	HotspotOnStartup  *bool   `json:"hotspot_on_startup,omitempty"`
	HotspotPassword   *string `json:"hotspot_password,omitempty"`
	HotspotSSID       *string `json:"hotspot_ssid,omitempty"`
	HotspotStatus     *bool   `json:"hotspot_status,omitempty"`
	ThrottleOnStartup *bool   `json:"throttle_on_startup,omitempty"`
	WROLMode          *bool   `json:"wrol_mode,omitempty"`
}

// StatusReport mirrors GET /api/status.
type StatusReport struct {
	CPUInfo       CPUInfo          `json:"cpu_info"`
	Load          LoadAverage      `json:"load"`
	MemoryStats   MemoryStats      `json:"memory_stats"`
	Drives        []Drive          `json:"drives"`
	Bandwidth     []NICBandwidth   `json:"bandwidth"`
	Downloads     DownloadsSummary `json:"downloads"`
	Flags         []string         `json:"flags"`
	Dockerized    bool             `json:"dockerized"`
	HotspotStatus string           `json:"hotspot_status"`
	ThrottleStat  string           `json:"throttle_status"`
	Version       string           `json:"version"`
	WROLMode      bool             `json:"wrol_mode"`
}

type CPUInfo struct {
	Percent     float64 `json:"percent"`
	Cores       int     `json:"cores"`
	Temperature float64 `json:"temperature"`
}

type LoadAverage struct {
	Minute1  float64 `json:"minute_1"`
	Minute5  float64 `json:"minute_5"`
	Minute15 float64 `json:"minute_15"`
}

type MemoryStats struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
}

type Drive struct {
	Mount       string  `json:"mount"`
	Size        int64   `json:"size"`
	Used        int64   `json:"used"`
	PercentUsed float64 `json:"percent"`
}

type NICBandwidth struct {
	Name      string `json:"name"`
	BytesRecv int64  `json:"bytes_recv"`
	BytesSent int64  `json:"bytes_sent"`
}

// DownloadsSummary is the download-manager rollup embedded in the status report.
type DownloadsSummary struct {
	Pending   int  `json:"pending"`
	Recurring int  `json:"recurring"`
	Disabled  bool `json:"disabled"`
	Stopped   bool `json:"stopped"`
}

// Event is one entry in the events feed.
type Event struct {
	Event   string    `json:"event"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Level   string    `json:"level"`
	At      time.Time `json:"dt"`
}

// EventsFeed mirrors GET /api/events/feed: the events after the requested
// watermark plus the server clock at the time of the read, which callers pass
// back as the next watermark.
type EventsFeed struct {
	Events []Event   `json:"events"`
	Now    time.Time `json:"now"`
}

// Download is a single queued or recurring download.
type Download struct {
	ID             int64      `json:"id"`
	URL            string     `json:"url"`
	Downloader     string     `json:"downloader"`
	SubDownloader  string     `json:"sub_downloader"`
	Destination    string     `json:"destination"`
	Frequency      int        `json:"frequency"`
	Status         string     `json:"status"`
	Attempts       int        `json:"attempts"`
	NextDownload   *time.Time `json:"next_download"`
	LastSuccessful *time.Time `json:"last_successful_download"`
}

// DownloadQueues mirrors GET /api/download.
type DownloadQueues struct {
	OnceDownloads      []Download `json:"once_downloads"`
	RecurringDownloads []Download `json:"recurring_downloads"`
}

// Downloader is one entry in the downloader catalog.
type Downloader struct {
	Name   string `json:"name"`
	Pretty string `json:"pretty_name"`
}

// DownloaderCatalog mirrors GET /api/downloaders.
type DownloaderCatalog struct {
	Downloaders     []Downloader `json:"downloaders"`
	ManagerDisabled bool         `json:"manager_disabled"`
}

// DownloadRequest creates one or more downloads. URLs come from a textarea,
// one per line.
type DownloadRequest struct {
	URLs          string `json:"urls"`
	Downloader    string `json:"downloader"`
	SubDownloader string `json:"sub_downloader,omitempty"`
	Destination   string `json:"destination,omitempty"`
	ExcludedURLs  string `json:"excluded_urls,omitempty"`
	Frequency     int    `json:"frequency,omitempty"`
}

// Tag labels file groups for retrieval.
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int    `json:"file_group_count"`
}

// Channel is a subscribed video channel.
type Channel struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Directory  string `json:"directory"`
	MatchRegex string `json:"match_regex"`
	VideoCount int    `json:"video_count"`
	Size       int64  `json:"size"`
}

// ChannelDownload is the download schedule record attached to a channel.
type ChannelDownload struct {
	ID        int64      `json:"id"`
	URL       string     `json:"url"`
	Frequency int        `json:"frequency"`
	NextRun   *time.Time `json:"next_download"`
}

// Video mirrors GET /api/videos/video/{id}: the file group plus its
// neighbours for prev/next navigation.
type Video struct {
	FileGroup FileGroup  `json:"file_group"`
	Previous  *FileGroup `json:"prev"`
	Next      *FileGroup `json:"next"`
}

// VideosStatistics mirrors GET /api/videos/statistics.
type VideosStatistics struct {
	Videos       int   `json:"videos"`
	Favorites    int   `json:"favorites"`
	Viewed       int   `json:"viewed"`
	Channels     int   `json:"channels"`
	TotalSize    int64 `json:"sum_size"`
	TotalSeconds int64 `json:"sum_duration"`
}

// ArchiveDomain is one archived web domain and its rollup counts.
type ArchiveDomain struct {
	Domain   string `json:"domain"`
	URLCount int    `json:"url_count"`
	Size     int64  `json:"size"`
}

// DirectoryListing mirrors POST /api/files: the files and subdirectories of
// the requested directories.
type DirectoryListing struct {
	Files       []FileGroup `json:"files"`
	Directories []string    `json:"directories"`
}

// RefreshProgress reports how far a file refresh has progressed.
type RefreshProgress struct {
	Refreshing bool `json:"refreshing"`
	Discovered int  `json:"discovered"`
	Modeled    int  `json:"modeled"`
	Indexed    int  `json:"indexed"`
	Unindexed  int  `json:"unindexed"`
}

// Inventory is a named collection of counted physical items.
type Inventory struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Created time.Time       `json:"created_at"`
	Items   []InventoryItem `json:"items"`
}

type InventoryItem struct {
	ID       int64   `json:"id"`
	Brand    string  `json:"brand"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Count    float64 `json:"count"`
	ItemSize float64 `json:"item_size"`
	Unit     string  `json:"unit"`
}

// MapFile is one importable map dump on disk.
type MapFile struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Imported bool   `json:"imported"`
}

// MapImportStatus mirrors GET /api/map/import_status.
type MapImportStatus struct {
	Running bool     `json:"running"`
	Pending []string `json:"pending"`
}
