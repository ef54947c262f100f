package deptree_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fxtool/feature/deptree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, root, rel, contents string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, root, "esx/fxmanifest.lua", `
fx_version 'cerulean'
dependency 'mysql-async'
client_script '@menuapi/client.lua'
client_script 'client.lua'
`)
	writeFile(t, root, "esx/client.lua", `
local price = exports.vehicleshop:getPrice()
-- exports.commented:shouldNotCount()
local job = exports['job-creator']:current()
`)

	writeFile(t, root, "mysql-async/fxmanifest.lua", "fx_version 'cerulean'\nserver_script 'mysql.lua'\n")
	writeFile(t, root, "mysql-async/mysql.lua", "print('db')\n")

	writeFile(t, root, "web/fxmanifest.lua", "fx_version 'cerulean'\nclient_script 'app.js'\n")
	writeFile(t, root, "web/app.js", `
const player = exports.esx.getPlayer()
// exports.ignored.call()
const job = exports['esx']['getJob']()
`)

	return root
}

func TestScan(t *testing.T) {
	root := fixtureTree(t)
	svc := deptree.NewService(zap.NewNop())

	tree, err := svc.Scan(root, deptree.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"mysql-async", "menuapi", "vehicleshop", "job-creator"}, tree.Deps["esx"])
	assert.Equal(t, []string{"esx"}, tree.Deps["web"])
	assert.NotContains(t, tree.Deps, "mysql-async", "resource without dependencies stays out")
}

func TestScan_ConfigFilter(t *testing.T) {
	root := fixtureTree(t)
	cfgPath := writeFile(t, root, "server.cfg", "ensure esx\nensure mysql-async\n")

	svc := deptree.NewService(zap.NewNop())
	tree, err := svc.Scan(root, deptree.Options{ConfigPath: cfgPath})
	require.NoError(t, err)

	assert.Contains(t, tree.Deps, "esx")
	assert.NotContains(t, tree.Deps, "web", "web is not started by the config")
}

func TestReversed(t *testing.T) {
	root := fixtureTree(t)
	svc := deptree.NewService(zap.NewNop())

	tree, err := svc.Scan(root, deptree.Options{})
	require.NoError(t, err)

	rev := tree.Reversed()
	assert.Equal(t, []string{"esx", "job-creator", "menuapi", "mysql-async", "vehicleshop"}, rev.Order)
	assert.Equal(t, []string{"web"}, rev.Deps["esx"])
	assert.Equal(t, []string{"esx"}, rev.Deps["mysql-async"])
}

func TestLines(t *testing.T) {
	tree := &deptree.Tree{
		Order: []string{"esx"},
		Deps:  map[string][]string{"esx": {"mysql-async"}},
	}

	assert.Equal(t, []string{
		"- esx - depends on:",
		"  - mysql-async",
	}, tree.Lines(false))

	var buf bytes.Buffer
	tree.Print(&buf, false)
	assert.Contains(t, buf.String(), "esx")
	assert.Contains(t, buf.String(), "  - mysql-async")
}

func TestLines_Dependents(t *testing.T) {
	tree := &deptree.Tree{
		Order: []string{"mysql-async"},
		Deps:  map[string][]string{"mysql-async": {"esx"}},
	}

	// Dependent headers carry no list dash.
	assert.Equal(t, []string{
		"mysql-async - dependent resources:",
		"  - esx",
	}, tree.Lines(true))

	var buf bytes.Buffer
	tree.Print(&buf, true)
	assert.Contains(t, buf.String(), "mysql-async - dependent resources:")
	assert.NotContains(t, buf.String(), "- mysql-async - dependent resources:")
}
