package artifact_test

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"fxtool/core/artifact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serverZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, contents := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(contents))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestInstalledVersion(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, -1, artifact.InstalledVersion(dir), "missing marker")

	require.NoError(t, os.WriteFile(filepath.Join(dir, artifact.VersionMarker), []byte("3155\n"), 0o644))
	assert.Equal(t, 3155, artifact.InstalledVersion(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, artifact.VersionMarker), []byte("garbage"), 0o644))
	assert.Equal(t, -1, artifact.InstalledVersion(dir), "corrupt marker")
}

func updaterFixture(t *testing.T, latest int, archive []byte) (*artifact.Updater, string) {
	t.Helper()

	mux := http.NewServeMux()
	var ts string
	mux.HandleFunc("/api", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"latest": "%d", "latest_download": "%s/server.zip"}`, latest, ts)
	})
	mux.HandleFunc("/server.zip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", fmt.Sprint(len(archive)))
		w.Write(archive)
	})

	c, srv := testClient(t, mux)
	ts = srv.URL

	root := t.TempDir()
	u := artifact.NewUpdater(artifact.Config{ServerDir: "server"}, c, root, zap.NewNop())
	return u, root
}

func TestUpdate_InstallsLatest(t *testing.T) {
	archive := serverZip(t, map[string]string{
		"FXServer":                "bin",
		"citizen/scripting/v8.so": "lib",
	})
	u, root := updaterFixture(t, 3155, archive)

	// Existing install at version 3071.
	serverDir := filepath.Join(root, "server")
	require.NoError(t, os.MkdirAll(serverDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, artifact.VersionMarker), []byte("3071"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, "old-file"), []byte("x"), 0o644))

	require.NoError(t, u.Update(context.Background(), -1))

	assert.Equal(t, 3155, artifact.InstalledVersion(serverDir))
	assert.FileExists(t, filepath.Join(serverDir, "FXServer"))
	assert.FileExists(t, filepath.Join(serverDir, "citizen", "scripting", "v8.so"))

	// Previous install kept aside for rollback.
	assert.FileExists(t, filepath.Join(root, "server_3071", "old-file"))
	// Downloaded archive kept for reuse.
	assert.FileExists(t, filepath.Join(root, "server_3155.zip"))
}

func TestUpdate_FreshInstall(t *testing.T) {
	archive := serverZip(t, map[string]string{"FXServer": "bin"})
	u, root := updaterFixture(t, 2524, archive)

	require.NoError(t, u.Update(context.Background(), -1))

	assert.Equal(t, 2524, artifact.InstalledVersion(filepath.Join(root, "server")))
	assert.NoDirExists(t, filepath.Join(root, "server_-1"))
}

func TestUpdate_AlreadyInstalled(t *testing.T) {
	archive := serverZip(t, map[string]string{"FXServer": "bin"})
	u, root := updaterFixture(t, 3155, archive)

	serverDir := filepath.Join(root, "server")
	require.NoError(t, os.MkdirAll(serverDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, artifact.VersionMarker), []byte("3155"), 0o644))

	require.NoError(t, u.Update(context.Background(), -1))

	assert.NoFileExists(t, filepath.Join(root, "server_3155.zip"), "nothing downloaded")
	assert.NoDirExists(t, filepath.Join(root, "server_3155"), "nothing moved")
}

func TestUpdate_LatestOlderThanCurrent(t *testing.T) {
	archive := serverZip(t, map[string]string{"FXServer": "bin"})
	u, root := updaterFixture(t, 3000, archive)

	serverDir := filepath.Join(root, "server")
	require.NoError(t, os.MkdirAll(serverDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(serverDir, artifact.VersionMarker), []byte("3155"), 0o644))

	require.NoError(t, u.Update(context.Background(), -1))

	assert.Equal(t, 3155, artifact.InstalledVersion(serverDir), "downgrade skipped")
}
