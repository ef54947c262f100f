package artifact

// Config holds configuration for the server artifact updater.
type Config struct {
	// ChangelogURL is the version API endpoint.
	ChangelogURL string `mapstructure:"changelog_url" default:"https://changelogs-live.fivem.net/api/changelog/versions/win32/server"`
	// ListingURL is the artifact directory page, used as a fallback when the
	// version API is unreachable.
	ListingURL string `mapstructure:"listing_url" default:"https://runtime.fivem.net/artifacts/fivem/build_server_windows/master/"`
	// ServerDir is the directory (relative to the working directory) the
	// server artifact is installed into.
	ServerDir string `mapstructure:"server_dir" default:"server"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"fxtool/0.1"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
