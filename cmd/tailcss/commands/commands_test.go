package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tailcss/cmd/tailcss/commands"
	"github.com/agiangrant/tailcss/config"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := commands.NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--log-level", "none"))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// project writes a configuration and one content file.
func project(t *testing.T) (dir, cfgPath string) {
	t.Helper()

	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "tailcss.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"content": ["src/**/*.html"]}`), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "index.html"),
		[]byte(`<main class="flex p-4 hover:underline">hi</main>`), 0o644))
	return dir, cfgPath
}

func TestInit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stdout, _, err := run(t, "init", dir, "--format", "yaml")
	require.NoError(t, err)
	path := filepath.Join(dir, "tailcss.yaml")
	assert.Contains(t, stdout, "Created "+path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Starter().Content, cfg.Content)

	_, _, err = run(t, "init", dir, "--format", "yaml")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "init", dir, "--format", "yaml", "--force")
	assert.NoError(t, err)

	_, _, err = run(t, "init", dir, "--format", "ini")
	assert.Error(t, err)
}

func TestBuildToFile(t *testing.T) {
	t.Parallel()

	dir, cfgPath := project(t)
	out := filepath.Join(dir, "dist", "app.css")

	_, stderr, err := run(t, "build", "-c", cfgPath, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "✓ wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, ".p-4{padding:1rem}\n.flex{display:flex}\n.hover\\:underline:hover{text-decoration-line:underline}\n", string(data))

	_, stderr, err = run(t, "build", "-c", cfgPath, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "✓ unchanged "+out)
}

func TestBuildToStdout(t *testing.T) {
	t.Parallel()

	_, cfgPath := project(t)
	stdout, stderr, err := run(t, "build", "-c", cfgPath, "--pretty")
	require.NoError(t, err)
	assert.Contains(t, stdout, ".flex {\n  display: flex;\n}\n")
	assert.Empty(t, stderr)
}

func TestBuildNeedsConfig(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "build", "-c", filepath.Join(t.TempDir(), "tailcss.toml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestCheck(t *testing.T) {
	t.Parallel()

	_, cfgPath := project(t)
	stdout, _, err := run(t, "check", "-c", cfgPath, "--ast", "flex", "bg-nope-500")
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2 candidates")

	assert.Contains(t, stdout, "✓ flex")
	assert.Contains(t, stdout, ".flex{display:flex}")
	assert.Contains(t, stdout, `"key": "flex"`)
	assert.Contains(t, stdout, "✗ bg-nope-500 theme-key-not-found")

	stdout, _, err = run(t, "check", "-c", cfgPath, "md:p-4")
	require.NoError(t, err)
	assert.Contains(t, stdout, `@media (min-width: 768px){.md\:p-4{padding:1rem}}`)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "tailcss dev")
}
