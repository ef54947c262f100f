package artifact_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fxtool/core/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) (*artifact.Client, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := artifact.Config{
		ChangelogURL:   ts.URL + "/api",
		ListingURL:     ts.URL + "/listing/",
		ServerDir:      "server",
		UserAgent:      "fxtool-test",
		TimeoutSeconds: 5,
	}

	c := artifact.NewClient(cfg, zap.NewNop())
	c.Progress = &bytes.Buffer{}
	return c, ts
}

func TestLatest_DecodesStringBuildNumbers(t *testing.T) {
	var gotUA string
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{
			"recommended": "2967",
			"optional": "3071",
			"latest": "3155",
			"critical": 2524,
			"latest_download": "https://example.com/3155/server.zip"
		}`))
	})

	c, _ := testClient(t, mux)

	a, err := c.Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3155, a.Version)
	assert.Equal(t, "https://example.com/3155/server.zip", a.URL)
	assert.Equal(t, "fxtool-test", gotUA)
}

func TestLatest_BadStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	c, _ := testClient(t, mux)

	_, err := c.Latest(context.Background())
	assert.Error(t, err)
}

func TestLatestAvailable_FallsBackToListing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/listing/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	})

	c, _ := testClient(t, mux)

	a, err := c.LatestAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3155, a.Version)
}

func TestFind(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/listing/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(listingPage))
	})

	c, _ := testClient(t, mux)

	a, err := c.Find(context.Background(), 3071)
	require.NoError(t, err)
	assert.Equal(t, 3071, a.Version)

	_, err = c.Find(context.Background(), 9999)
	assert.ErrorContains(t, err, "artifact 9999 not found")
}

func TestDownload_StreamsWithProgress(t *testing.T) {
	payload := bytes.Repeat([]byte("fxserver"), 4096)

	mux := http.NewServeMux()
	mux.HandleFunc("/server.zip", func(w http.ResponseWriter, r *http.Request) {
		http.ServeContent(w, r, "server.zip", time.Time{}, bytes.NewReader(payload))
	})

	c, ts := testClient(t, mux)
	progress := &bytes.Buffer{}
	c.Progress = progress

	dest := filepath.Join(t.TempDir(), "server_3155.zip")
	a := artifact.Artifact{Version: 3155, URL: ts.URL + "/server.zip"}

	require.NoError(t, c.Download(context.Background(), a, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Contains(t, progress.String(), "downloading server artifact 3155")
	assert.Contains(t, progress.String(), "100%")

	// No stray staging files left behind.
	entries, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDownload_BadStatusLeavesNoFile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/server.zip", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	c, ts := testClient(t, mux)

	dir := t.TempDir()
	dest := filepath.Join(dir, "server_1.zip")
	err := c.Download(context.Background(), artifact.Artifact{Version: 1, URL: ts.URL + "/server.zip"}, dest)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
