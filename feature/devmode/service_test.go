package devmode_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fxtool/feature/devmode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func readComponents(t *testing.T, dir string) []string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, "components.json"))
	require.NoError(t, err)

	var components []string
	require.NoError(t, json.Unmarshal(raw, &components))
	return components
}

func serverFixture(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "FXServer.exe", "exe")
	writeFile(t, dir, "svadhesive.dll", "dll")
	writeFile(t, dir, "components.json", `["citizen-server-impl", "svadhesive", "svgui"]`)
	return dir
}

func clientFixture(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, dir, "CitizenFX.ini", "[Game]")
	writeFile(t, dir, "adhesive.dll", "dll")
	writeFile(t, dir, "components.json", `["adhesive", "gta-core-five", "nui-core"]`)
	return dir
}

func TestToggle_ServerActivate(t *testing.T) {
	dir := serverFixture(t)
	svc := devmode.NewService(zap.NewNop())

	require.NoError(t, svc.Toggle(dir))

	assert.NoFileExists(t, filepath.Join(dir, "svadhesive.dll"))
	assert.FileExists(t, filepath.Join(dir, "xsvadhesive.dll"))
	assert.FileExists(t, filepath.Join(dir, "components.json.bak"))
	assert.Equal(t, []string{"citizen-server-impl", "svgui"}, readComponents(t, dir))
}

func TestToggle_ServerRoundTrip(t *testing.T) {
	dir := serverFixture(t)
	svc := devmode.NewService(zap.NewNop())

	require.NoError(t, svc.Toggle(dir))
	require.NoError(t, svc.Toggle(dir))

	assert.FileExists(t, filepath.Join(dir, "svadhesive.dll"))
	assert.NoFileExists(t, filepath.Join(dir, "xsvadhesive.dll"))
	assert.Equal(t, []string{"citizen-server-impl", "svadhesive", "svgui"}, readComponents(t, dir))
}

func TestToggle_ClientActivate(t *testing.T) {
	dir := clientFixture(t)
	svc := devmode.NewService(zap.NewNop())

	require.NoError(t, svc.Toggle(dir))

	assert.FileExists(t, filepath.Join(dir, "xadhesive.dll"))
	assert.FileExists(t, filepath.Join(dir, "FiveM.exe.formaldev"))
	assert.FileExists(t, filepath.Join(dir, "nobootstrap.txt"))
	assert.Equal(t, []string{"gta-core-five", "nui-core"}, readComponents(t, dir))
}

func TestToggle_ClientRoundTrip(t *testing.T) {
	dir := clientFixture(t)
	svc := devmode.NewService(zap.NewNop())

	require.NoError(t, svc.Toggle(dir))
	require.NoError(t, svc.Toggle(dir))

	assert.FileExists(t, filepath.Join(dir, "adhesive.dll"))
	assert.NoFileExists(t, filepath.Join(dir, "xadhesive.dll"))
	assert.NoFileExists(t, filepath.Join(dir, "FiveM.exe.formaldev"))
	assert.NoFileExists(t, filepath.Join(dir, "nobootstrap.txt"))
	assert.Equal(t, []string{"adhesive", "gta-core-five", "nui-core"}, readComponents(t, dir))
}

func TestToggle_NotDetected(t *testing.T) {
	svc := devmode.NewService(zap.NewNop())

	err := svc.Toggle(t.TempDir())
	assert.ErrorIs(t, err, devmode.ErrNotDetected)
}

func TestToggle_NotAFolder(t *testing.T) {
	svc := devmode.NewService(zap.NewNop())

	assert.Error(t, svc.Toggle(filepath.Join(t.TempDir(), "missing")))
}

func TestToggle_ComponentMissing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "FXServer.exe", "exe")
	writeFile(t, dir, "svadhesive.dll", "dll")
	writeFile(t, dir, "components.json", `["citizen-server-impl"]`)

	svc := devmode.NewService(zap.NewNop())
	assert.Error(t, svc.Toggle(dir))
}
