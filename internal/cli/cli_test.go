package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func setupEnv(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("SNAPSHOT_DB_PATH", filepath.Join(dir, "catalog.db"))
	t.Setenv("EXPORT_DIR", filepath.Join(dir, "out"))
	t.Setenv("JWT_SECRET", "")
	return dir
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExport(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, "", "export")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi.json")
	assert.Contains(t, out, "checksum ")

	for _, name := range []string{"openapi.json", "openapi.yaml", "lint.json", "store.json", "hr.json", "delivery.json", "work.json"} {
		assert.FileExists(t, filepath.Join(dir, "out", name))
	}

	target := filepath.Join(dir, "elsewhere")
	_, err = run(t, "", "export", "--dir", target)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "openapi.json"))
}

func TestLint(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "0 errors")

	out, err = run(t, "", "lint", "--json", "--rule", "legacy-shape")
	require.NoError(t, err)
	findings := gjson.Parse(out).Array()
	require.NotEmpty(t, findings)
	for _, f := range findings {
		assert.Equal(t, "legacy-shape", f.Get("rule").String())
	}
}

func TestRoutesAndVerbs(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "routes", "--domain", "delivery")
	require.NoError(t, err)
	assert.Contains(t, out, "/delivery/challan")
	assert.NotContains(t, out, "/store/")

	out, err = run(t, "", "verbs", "/hr/user/{uuid}")
	require.NoError(t, err)
	assert.Equal(t, "delete get put\n", out)

	_, err = run(t, "", "verbs", "/hr/nothing")
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "get", "info.title")
	require.NoError(t, err)
	assert.Equal(t, "Business API\n", out)

	out, err = run(t, "", "get", "--domain", "work")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, `paths./work/zone`).Exists())

	out, err = run(t, "", "get", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "openapi: 3.0.3")
}

func TestCheck(t *testing.T) {
	dir := setupEnv(t)

	out, err := run(t, `{"name":"Lenovo"}`, "check", "store/brand", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "valid")

	file := filepath.Join(dir, "brand.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0644))
	_, err = run(t, "", "check", "store/brand", file)
	assert.Error(t, err)

	_, err = run(t, "", "check", "brand", "-")
	assert.Error(t, err)
}

func TestSnapshotLifecycle(t *testing.T) {
	setupEnv(t)

	out, err := run(t, "", "publish", "1.0.0", "-m", "first", "--by", "tester")
	require.NoError(t, err)
	assert.Contains(t, out, "published 1.0.0")

	out, err = run(t, "", "publish", "1.0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "unchanged since 1.0.0")

	_, err = run(t, "", "publish", "1.0.0")
	assert.Error(t, err)

	out, err = run(t, "", "snapshots", "--json")
	require.NoError(t, err)
	list := gjson.Parse(out).Array()
	require.Len(t, list, 1)
	assert.Equal(t, "tester", list[0].Get("published_by").String())

	out, err = run(t, "", "diff", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "document the same contract")

	_, err = run(t, "", "diff", "1.0.0", "--fail-on-breaking")
	assert.NoError(t, err)

	out, err = run(t, "", "snapshots", "delete", "1.0.0")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 1.0.0")

	_, err = run(t, "", "diff", "1.0.0")
	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	dir := setupEnv(t)

	_, err := run(t, "", "export")
	require.NoError(t, err)

	history := filepath.Join(dir, "history", "0.9.0")
	require.NoError(t, os.MkdirAll(history, 0755))
	data, err := os.ReadFile(filepath.Join(dir, "out", "openapi.json"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(history, "openapi.json"), data, 0644))

	out, err := run(t, "", "import", filepath.Join(dir, "history"))
	require.NoError(t, err)
	assert.Contains(t, out, "imported 0.9.0")

	out, err = run(t, "", "snapshots")
	require.NoError(t, err)
	assert.Contains(t, out, "0.9.0")
}

func TestToken(t *testing.T) {
	setupEnv(t)

	_, err := run(t, "", "token")
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "cli-secret")
	out, err := run(t, "", "token", "--subject", "ci", "--role", "reader")
	require.NoError(t, err)

	token, err := jwt.Parse(strings.TrimSpace(out), func(*jwt.Token) (any, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "ci", sub)

	_, err = run(t, "", "token", "--role", "admin")
	assert.Error(t, err)
}
