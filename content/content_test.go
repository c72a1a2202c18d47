package content_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/tailcss/content"
	"github.com/agiangrant/tailcss/extract"
)

func TestPatternMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"src/**/*.html", "src/index.html", true},
		{"src/**/*.html", "src/a/b/c.html", true},
		{"src/**/*.html", "lib/index.html", false},
		{"src/**/*.html", "src/index.js", false},
		{"**/*.tsx", "App.tsx", true},
		{"**/*.tsx", "a/b/App.tsx", true},
		{"*.js", "a/b.js", false},
		{"./pages/*.vue", "pages/home.vue", true},
		{"src/**", "src/x/y", true},
		{"src/**/*.{html,js}", "src/a/b.html", true},
		{"src/**/*.{html,js}", "src/b.js", true},
		{"src/**/*.{html,js}", "src/c.{html,js}", false},
		{"src/**/*.{html,js}", "src/b.ts", false},
		{"{app,lib}/*.tsx", "lib/Button.tsx", true},
	}
	for _, tt := range tests {
		p, err := content.ParsePattern(tt.pattern)
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.Match(tt.name), "%s ~ %s", tt.pattern, tt.name)
	}

	_, err := content.ParsePattern("src/[.html")
	assert.Error(t, err)
}

func TestPatternBase(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]string{
		"src/**/*.html":    "src",
		"*.js":             ".",
		"web/pages/*.vue":  "web/pages",
		"a/*/b/*.html":     "a",
		"templates/x.html": "templates",
		"src/**/*.{js,ts}": "src",
	} {
		p, err := content.ParsePattern(raw)
		require.NoError(t, err)
		assert.Equal(t, want, p.Base(), raw)
	}
}

func TestSetExcludes(t *testing.T) {
	t.Parallel()

	set, err := content.ParseSet([]string{"src/**/*.html", "!src/vendor/**"})
	require.NoError(t, err)
	assert.True(t, set.Match("src/a.html"))
	assert.False(t, set.Match("src/vendor/lib.html"))
	assert.Equal(t, []string{"src"}, set.Bases())

	set, err = content.ParseSet([]string{"src/**/*.{html,vue}", "!src/**/*.test.{html,vue}"})
	require.NoError(t, err)
	assert.True(t, set.Match("src/pages/home.vue"))
	assert.False(t, set.Match("src/pages/home.test.vue"))
}

func writeFile(t *testing.T, root, name, body string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestScan(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "src/page10.html", `<div class="p-10"></div>`)
	writeFile(t, root, "src/page2.html", `<div class="p-2 flex"></div>`)
	writeFile(t, root, "src/app.js", `el.className = "grid gap-4"`)
	writeFile(t, root, "src/skip/x.html", `<div class="hidden"></div>`)
	writeFile(t, root, "src/node_modules/dep/y.html", `<div class="block"></div>`)
	writeFile(t, root, "README.md", "flex")

	s, err := content.NewScanner(root, []string{"src/**/*.html", "src/*.js", "!src/skip/**"}, zaptest.NewLogger(t))
	require.NoError(t, err)

	files, err := s.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "src", "app.js"),
		filepath.Join(root, "src", "page2.html"),
		filepath.Join(root, "src", "page10.html"),
	}, files)

	sources, err := s.Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, extract.KindECMA, sources[0].Kind)
	assert.Equal(t, []string{"grid", "gap-4"}, sources[0].Candidates)
	assert.Equal(t, []string{"p-2", "flex"}, sources[1].Candidates)
	assert.Equal(t, []string{"p-10"}, sources[2].Candidates)

	assert.True(t, s.Matches(filepath.Join(root, "src", "new.html")))
	assert.False(t, s.Matches(filepath.Join(root, "other", "new.html")))
	assert.Equal(t, []string{filepath.Join(root, "src")}, s.Dirs())
}

func TestReadSkipsVanishedFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := writeFile(t, root, "a.html", `<i class="italic"></i>`)

	s, err := content.NewScanner(root, []string{"*.html"}, nil)
	require.NoError(t, err)
	sources, err := s.Read(context.Background(), []string{a, filepath.Join(root, "gone.html")})
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, []string{"italic"}, sources[0].Candidates)
}

func TestScanCancelled(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "a.html", `<i class="italic"></i>`)
	s, err := content.NewScanner(root, []string{"*.html"}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Scan(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
