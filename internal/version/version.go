package version

// Build-time variables set via ldflags
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
}

// Get returns the current build information
func Get() Info {
	return Info{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
	}
}
