package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNoArtifacts is returned when neither the API nor the listing page
// produced a usable artifact.
var ErrNoArtifacts = errors.New("no artifacts found")

// Artifact is one published server build.
type Artifact struct {
	Version int
	// Published is zero when the source (the version API) does not carry it.
	Published time.Time
	URL       string
}

// Client fetches artifact metadata and archives from the release endpoints.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger

	// Progress receives the textual download progress. Defaults to os.Stderr.
	Progress io.Writer
}

// NewClient creates a new artifact client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		logger: logger,
	}
}

// buildNumber decodes artifact versions that the API serves either as JSON
// numbers or as quoted strings.
type buildNumber int

func (n *buildNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("build number %q: %w", s, err)
	}

	*n = buildNumber(v)
	return nil
}

type changelogResponse struct {
	Latest              buildNumber `json:"latest"`
	LatestDownload      string      `json:"latest_download"`
	Recommended         buildNumber `json:"recommended"`
	RecommendedDownload string      `json:"recommended_download"`
	Optional            buildNumber `json:"optional"`
	OptionalDownload    string      `json:"optional_download"`
	Critical            buildNumber `json:"critical"`
	CriticalDownload    string      `json:"critical_download"`
}

// Latest returns the newest build advertised by the version API.
func (c *Client) Latest(ctx context.Context) (Artifact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ChangelogURL, nil)
	if err != nil {
		return Artifact{}, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Artifact{}, fmt.Errorf("changelog request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Artifact{}, fmt.Errorf("changelog request: unexpected status %s", resp.Status)
	}

	var data changelogResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return Artifact{}, fmt.Errorf("changelog response: %w", err)
	}

	return Artifact{
		Version: int(data.Latest),
		URL:     data.LatestDownload,
	}, nil
}

// LatestAvailable returns the newest build, preferring the version API and
// falling back to scraping the artifact listing page.
func (c *Client) LatestAvailable(ctx context.Context) (Artifact, error) {
	a, err := c.Latest(ctx)
	if err == nil {
		return a, nil
	}

	c.logger.Warn("version API unavailable, falling back to listing page", zap.Error(err))

	list, err := c.Listing(ctx)
	if err != nil {
		return Artifact{}, err
	}
	if len(list) == 0 {
		return Artifact{}, ErrNoArtifacts
	}

	return list[0], nil
}

// Find returns the listed build with the given version.
func (c *Client) Find(ctx context.Context, version int) (Artifact, error) {
	list, err := c.Listing(ctx)
	if err != nil {
		return Artifact{}, err
	}

	for _, a := range list {
		if a.Version == version {
			return a, nil
		}
	}

	return Artifact{}, fmt.Errorf("artifact %d not found", version)
}
