package tailcss_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/tailcss"
	"github.com/agiangrant/tailcss/config"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/extract"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/utility"
)

// minimal has no presets: one static utility, one dynamic utility and a
// single theme color.
func minimal() *config.Config {
	return &config.Config{
		StaticUtilities: map[string]config.StaticUtility{
			"flex": {Decls: config.Declarations{{Property: "display", Value: "flex"}}},
		},
		Utilities: []config.UtilityConfig{{
			Key:   "bg",
			CSS:   config.Declarations{{Property: "background-color", Value: "$1"}},
			Theme: config.StringList{"colors"},
			Type:  "color",
		}},
		Theme: theme.Map(map[string]*theme.Value{
			"colors": theme.Map(map[string]*theme.Value{
				"blue": theme.Strings(map[string]string{"500": "#3b82f6"}),
			}),
		}),
	}
}

func withDefaults() *config.Config {
	cfg := config.Defaults()
	return &cfg
}

func newGenerator(t *testing.T, cfg *config.Config, opts ...tailcss.Option) *tailcss.Generator {
	t.Helper()
	opts = append([]tailcss.Option{tailcss.WithLogger(zaptest.NewLogger(t)), tailcss.WithWorkers(4)}, opts...)
	g, err := tailcss.New(cfg, opts...)
	require.NoError(t, err)
	return g
}

func TestEndToEnd(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, minimal())
	out, err := g.GenerateString(context.Background(), `<div class="flex bg-blue-500 bg-red-900"></div>`, extract.KindHTML)
	require.NoError(t, err)
	assert.Equal(t, ".flex{display:flex}\n.bg-blue-500{background-color:#3b82f6}\n", out)

	unmatched := g.Unmatched()
	require.Len(t, unmatched, 1)
	assert.Equal(t, "bg-red-900", unmatched[0].Candidate)
	assert.Equal(t, diag.KindThemeKeyNotFound, unmatched[0].Kind)

	st := g.Stats()
	assert.Equal(t, 3, st.Discovered)
	assert.Equal(t, 2, st.Matched)
	assert.Equal(t, 1, st.Unmatched)
	assert.Zero(t, st.Pending)
	assert.Equal(t, 2, st.Utilities)
}

func TestPrettyOutput(t *testing.T) {
	t.Parallel()

	cfg := minimal()
	cfg.Features.Pretty = true
	g := newGenerator(t, cfg)
	out, err := g.GenerateCandidate(context.Background(), []string{"flex"})
	require.NoError(t, err)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n", out)
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	candidates := []string{"flex", "p-4", "hover:bg-blue-500/50", "md:w-1/2", "-mt-4", "rotate-x-45", "space-x-2"}
	g := newGenerator(t, withDefaults())
	ctx := context.Background()

	first, err := g.GenerateCandidate(ctx, candidates)
	require.NoError(t, err)
	second, err := g.GenerateCandidate(ctx, candidates)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	fresh := newGenerator(t, withDefaults())
	third, err := fresh.GenerateCandidate(ctx, candidates)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestPermutationDeterminism(t *testing.T) {
	t.Parallel()

	candidates := []string{"flex", "p-4", "mx-2", "hover:bg-blue-500", "md:text-lg", "w-1/2", "-mt-4", "translate-x-2", "transform-none", "block"}
	reversed := slices.Clone(candidates)
	slices.Reverse(reversed)
	ctx := context.Background()

	a, err := newGenerator(t, withDefaults()).GenerateCandidate(ctx, candidates)
	require.NoError(t, err)
	b, err := newGenerator(t, withDefaults()).GenerateCandidate(ctx, reversed)
	require.NoError(t, err)

	linesA := strings.Split(strings.TrimSpace(a), "\n")
	linesB := strings.Split(strings.TrimSpace(b), "\n")
	slices.Sort(linesA)
	slices.Sort(linesB)
	assert.Equal(t, linesA, linesB, "same rules whatever the input order")

	sorted := slices.Clone(candidates)
	slices.Sort(sorted)
	shuffled := slices.Clone(reversed)
	slices.Sort(shuffled)
	c, err := newGenerator(t, withDefaults()).GenerateCandidate(ctx, sorted)
	require.NoError(t, err)
	d, err := newGenerator(t, withDefaults()).GenerateCandidate(ctx, shuffled)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	out, err := g.GenerateCandidate(context.Background(), []string{
		"md:flex", "hover:flex", "transform-none", "translate-x-4", "flex", "p-4", "px-2", "pt-1",
	})
	require.NoError(t, err)

	before := func(a, b string) {
		t.Helper()
		ia, ib := strings.Index(out, a), strings.Index(out, b)
		require.GreaterOrEqual(t, ia, 0, a)
		require.GreaterOrEqual(t, ib, 0, b)
		assert.Less(t, ia, ib, "%s before %s in\n%s", a, b, out)
	}
	before(".translate-x-4{", ".transform-none{")
	before(".p-4{", ".px-2{")
	before(".px-2{", ".pt-1{")
	before(".flex{", `.hover\:flex:hover{`)
	before(`.hover\:flex:hover{`, `@media (min-width: 768px){.md\:flex{`)
}

func TestGroupsAndGlobals(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	out, err := g.GenerateCandidate(context.Background(), []string{"skew-x-6", "rotate-x-45", "space-x-2", "space-x-4"})
	require.NoError(t, err)

	assert.Contains(t, out, ".rotate-x-45{--tw-rotate-x:rotateX(45deg)}")
	assert.Contains(t, out, ".rotate-x-45,.skew-x-6{transform:var(--tw-rotate-x,) var(--tw-rotate-y,) var(--tw-rotate-z,) var(--tw-skew-x,) var(--tw-skew-y,)}")
	assert.Equal(t, 1, strings.Count(out, "@property --tw-space-x-reverse{"))
	assert.Less(t, strings.Index(out, ".skew-x-6,"), 0, "group selectors follow rule order")
}

func TestGenerateWith(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	out, err := g.GenerateWith(context.Background(), []tailcss.Pair{
		{Context: "md:hover", Candidate: "flex"},
		{Candidate: "block"},
	})
	require.NoError(t, err)
	assert.Equal(t, ".block{display:block}\n@media (min-width: 768px){.md\\:hover\\:flex:hover{display:flex}}\n", out)
	assert.Equal(t, "md:hover:flex", tailcss.Pair{Context: "md:hover", Candidate: "flex"}.Raw())
}

func TestExplicitCallsEmitOnlyTheirCandidates(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, minimal())
	ctx := context.Background()
	_, err := g.GenerateCandidate(ctx, []string{"flex"})
	require.NoError(t, err)

	out, err := g.GenerateCandidate(ctx, []string{"bg-blue-500"})
	require.NoError(t, err)
	assert.Equal(t, ".bg-blue-500{background-color:#3b82f6}\n", out)
	assert.Equal(t, 2, g.Stats().Discovered)
}

func TestGenerateScansContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "index.html"), []byte(`<p class="flex">hi</p>`), 0o644))

	cfg := minimal()
	cfg.Content = []string{"src/**/*.html"}
	g := newGenerator(t, cfg, tailcss.WithRoot(dir))
	ctx := context.Background()

	out, err := g.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, ".flex{display:flex}\n", out)
	assert.Equal(t, []string{filepath.Join(dir, "src")}, g.ContentDirs())

	added := filepath.Join(dir, "src", "more.html")
	require.NoError(t, os.WriteFile(added, []byte(`<p class="bg-blue-500">more</p>`), 0o644))
	assert.True(t, g.IsContent(added))
	assert.False(t, g.IsContent(filepath.Join(dir, "README.md")))

	out, err = g.Update(ctx, []string{added, filepath.Join(dir, "README.md")})
	require.NoError(t, err)
	assert.Equal(t, ".flex{display:flex}\n.bg-blue-500{background-color:#3b82f6}\n", out)

	again, err := g.Generate(ctx)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestReload(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, minimal())
	ctx := context.Background()
	_, err := g.GenerateCandidate(ctx, []string{"flex", "block"})
	require.NoError(t, err)
	before := g.Stats()
	require.Equal(t, 2, before.Discovered)

	require.NoError(t, g.Reload(withDefaults()))
	after := g.Stats()
	assert.NotEqual(t, before.Session, after.Session)
	assert.Zero(t, after.Discovered)

	out, err := g.GenerateCandidate(ctx, []string{"block"})
	require.NoError(t, err)
	assert.Equal(t, ".block{display:block}\n", out)

	bad := minimal()
	bad.DarkMode = "sometimes"
	require.Error(t, g.Reload(bad))
	assert.Equal(t, after.Session, g.Stats().Session, "failed reload keeps the snapshot")
}

func TestNewRejectsConflicts(t *testing.T) {
	t.Parallel()

	cfg := minimal()
	cfg.Utilities = append(cfg.Utilities, config.UtilityConfig{
		Key: "flex",
		CSS: config.Declarations{{Property: "flex", Value: "$1"}},
	})
	_, err := tailcss.New(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrRegistrationConflict)
}

func TestCollisions(t *testing.T) {
	t.Parallel()

	cfg := withDefaults()
	cfg.StaticUtilities = map[string]config.StaticUtility{
		"flex": {Decls: config.Declarations{{Property: "display", Value: "inline-flex"}}},
	}
	g := newGenerator(t, cfg)
	assert.Contains(t, g.Collisions(), utility.Collision{Key: "flex", Overridden: "default", By: config.UserLayer})

	out, err := g.GenerateCandidate(context.Background(), []string{"flex"})
	require.NoError(t, err)
	assert.Equal(t, ".flex{display:inline-flex}\n", out)
}

func TestConcurrentGenerate(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	candidates := []string{"flex", "p-4", "m-2", "text-red-500", "bg-blue-500/50", "w-1/3", "sm:hidden", "nope-nope"}

	var (
		wg   sync.WaitGroup
		outs = make([]string, 8)
		errs = make([]error, 8)
	)
	for i := range outs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outs[i], errs[i] = g.GenerateCandidate(context.Background(), candidates)
		}()
	}
	wg.Wait()

	for i := range outs {
		require.NoError(t, errs[i])
		assert.Equal(t, outs[0], outs[i])
	}
	assert.Equal(t, len(candidates), g.Stats().Discovered)
	require.Len(t, g.Unmatched(), 1)
	assert.Equal(t, diag.KindUnknownUtility, g.Unmatched()[0].Kind)
}

func TestCancelled(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.GenerateCandidate(ctx, []string{"flex"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, g.Stats().Discovered)
}

func TestExplain(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, withDefaults())
	ex := g.Explain("hover:-mt-4")
	require.NoError(t, ex.Err)
	assert.Equal(t, "mt", ex.Candidate.Key)
	assert.True(t, ex.Candidate.Negative)
	assert.Contains(t, ex.CSS, `.hover\:-mt-4:hover{margin-top:-1rem}`)

	ex = g.Explain("bg-nope-500")
	assert.Equal(t, diag.KindThemeKeyNotFound, diag.KindOf(ex.Err))
	st := g.Stats()
	assert.Zero(t, st.Discovered, "explain does not add to the discovered set")
	assert.Equal(t, 2, st.Cached)
	assert.Empty(t, g.Unmatched())
}

func TestUnmatchedNaturalOrder(t *testing.T) {
	t.Parallel()

	g := newGenerator(t, minimal())
	_, err := g.GenerateCandidate(context.Background(), []string{"bg-red-10", "bg-red-9", "zzz", "bg-red-100"})
	require.NoError(t, err)

	var names []string
	for _, d := range g.Unmatched() {
		names = append(names, d.Candidate)
	}
	assert.Equal(t, []string{"bg-red-9", "bg-red-10", "bg-red-100", "zzz"}, names)
}
