package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/preset"
	"github.com/agiangrant/tailcss/resolve"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/tw"
	"github.com/agiangrant/tailcss/utility"
	"github.com/agiangrant/tailcss/variant"
)

type env struct {
	parser   *tw.Parser
	resolver *resolve.Resolver
}

func newEnv(t *testing.T, reg *utility.Registry, root *theme.Value) *env {
	t.Helper()
	store := theme.NewStore(root)
	vars, err := variant.New(store, variant.Options{})
	require.NoError(t, err)
	return &env{
		parser:   tw.NewParser(reg, true),
		resolver: resolve.New(reg, store, vars, zaptest.NewLogger(t)),
	}
}

func defaultEnv(t *testing.T) *env {
	t.Helper()
	p := preset.Default()
	reg, err := utility.NewBuilder(zaptest.NewLogger(t)).Layer(p.Name, p.Utilities...).Build()
	require.NoError(t, err)
	return newEnv(t, reg, p.Theme)
}

func (e *env) resolve(raw string) (*css.Fragment, error) {
	c, err := e.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return e.resolver.Resolve(c)
}

func (e *env) mustResolve(t *testing.T, raw string) *css.Fragment {
	t.Helper()
	f, err := e.resolve(raw)
	require.NoError(t, err, raw)
	return f
}

func decl(prop, value string) css.Decl {
	return css.Decl{Property: prop, Value: value}
}

func TestResolveDefaultPreset(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)

	tests := []struct {
		in       string
		selector string
		decls    []css.Decl
	}{
		{in: "flex", selector: ".flex", decls: []css.Decl{decl("display", "flex")}},
		{in: "flex-1", selector: ".flex-1", decls: []css.Decl{decl("flex", "1 1 0%")}},
		{in: "p-4", selector: ".p-4", decls: []css.Decl{decl("padding", "1rem")}},
		{in: "mx-0.5", selector: `.mx-0\.5`, decls: []css.Decl{decl("margin-left", "0.125rem"), decl("margin-right", "0.125rem")}},
		{in: "bg-blue-500", selector: ".bg-blue-500", decls: []css.Decl{decl("background-color", "#3b82f6")}},
		{in: "text-red-500", selector: ".text-red-500", decls: []css.Decl{decl("color", "#ef4444")}},
		{in: "text-sm", selector: ".text-sm", decls: []css.Decl{decl("font-size", "0.875rem")}},
		{in: "text-sm/6", selector: `.text-sm\/6`, decls: []css.Decl{decl("font-size", "0.875rem"), decl("line-height", "1.5rem")}},
		{in: "w-1/2", selector: `.w-1\/2`, decls: []css.Decl{decl("width", "50%")}},
		{in: "w-[33%]", selector: `.w-\[33\%\]`, decls: []css.Decl{decl("width", "33%")}},
		{in: "grid-cols-[1fr_auto]", selector: `.grid-cols-\[1fr_auto\]`, decls: []css.Decl{decl("grid-template-columns", "1fr auto")}},
		{in: "[mask-type:luminance]", selector: `.\[mask-type\:luminance\]`, decls: []css.Decl{decl("mask-type", "luminance")}},
		{
			in:       "border",
			selector: ".border",
			decls:    []css.Decl{decl("border-style", "var(--tw-border-style)"), decl("border-width", "1px")},
		},
		{
			in:       "border-red-500/50",
			selector: `.border-red-500\/50`,
			decls:    []css.Decl{decl("border-color", "color-mix(in srgb, #ef4444 50%, transparent)")},
		},
		{
			in:       "bg-black/[35%]",
			selector: `.bg-black\/\[35\%\]`,
			decls:    []css.Decl{decl("background-color", "color-mix(in srgb, #000000 35%, transparent)")},
		},
		{
			in:       "bg-white/33",
			selector: `.bg-white\/33`,
			decls:    []css.Decl{decl("background-color", "color-mix(in srgb, #ffffff 33%, transparent)")},
		},
		{
			in:       "bg-[url(/img.png)]",
			selector: `.bg-\[url\(\/img\.png\)\]`,
			decls:    []css.Decl{decl("background-image", "url(/img.png)")},
		},
	}

	for _, tt := range tests {
		f := e.mustResolve(t, tt.in)
		assert.Equal(t, tt.selector, f.Selector, tt.in)
		assert.Equal(t, tt.decls, f.Decls, tt.in)
		assert.Equal(t, tt.in, f.Candidate)
	}
}

func TestFractions(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)
	for in, want := range map[string]string{
		"w-1/2":  "50%",
		"w-1/3":  "33.3333%",
		"w-2/3":  "66.6667%",
		"w-1/12": "8.33333%",
		"w-5/5":  "100%",
	} {
		f := e.mustResolve(t, in)
		assert.Equal(t, want, f.Decls[0].Value, in)
	}

	_, err := e.resolve("w-1/0")
	assert.ErrorIs(t, err, diag.ErrInvalidValue)
}

func TestNegation(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)

	pos := e.mustResolve(t, "m-4")
	neg := e.mustResolve(t, "-m-4")
	assert.Equal(t, "1rem", pos.Decls[0].Value)
	assert.Equal(t, "-1rem", neg.Decls[0].Value)
	assert.Equal(t, `.-m-4`, neg.Selector)

	assert.Equal(t, "0px", e.mustResolve(t, "-m-0").Decls[0].Value)
	assert.Equal(t, "calc(var(--gap) * -1)", e.mustResolve(t, "-m-[var(--gap)]").Decls[0].Value)
	assert.Equal(t, "-50%", e.mustResolve(t, "-translate-x-1/2").Decls[0].Value)

	for _, in := range []string{"-p-4", "-bg-red-500", "-flex-1"} {
		_, err := e.resolve(in)
		assert.ErrorIs(t, err, diag.ErrUnsupportedNegation, in)
	}
}

func TestArbitraryTypes(t *testing.T) {
	t.Parallel()

	reg := utility.NewRegistry()
	require.NoError(t, reg.Register(utility.Dynamic("len",
		[]css.Decl{decl("width", "$1")}).Typed(css.TypeLengthPercentage)))
	require.NoError(t, reg.Register(utility.Dynamic("tint",
		[]css.Decl{decl("color", "$1")}).Typed(css.TypeColor)))
	e := newEnv(t, reg, nil)

	f := e.mustResolve(t, "len-[10px]")
	assert.Equal(t, []css.Decl{decl("width", "10px")}, f.Decls)
	e.mustResolve(t, "len-[length:var(--w)]")
	e.mustResolve(t, "tint-[#fff]")

	for _, in := range []string{"tint-[10px]", "len-[red]", "tint-[length:10px]"} {
		_, err := e.resolve(in)
		assert.ErrorIs(t, err, diag.ErrTypeMismatch, in)
		assert.Equal(t, diag.KindTypeMismatch, diag.KindOf(err), in)
	}
}

func TestFailures(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)

	tests := []struct {
		in   string
		want error
	}{
		{in: "bg-nope-500", want: diag.ErrThemeKeyNotFound},
		{in: "text-huge", want: diag.ErrThemeKeyNotFound},
		{in: "flex/50", want: diag.ErrUnsupportedModifier},
		{in: "p-4/50", want: diag.ErrUnsupportedModifier},
		{in: "frobnicate:flex", want: diag.ErrUnknownVariant},
		{in: "bg-red-500/nope", want: diag.ErrThemeKeyNotFound},
		{in: "bg-red-500/150", want: diag.ErrInvalidValue},
	}
	for _, tt := range tests {
		_, err := e.resolve(tt.in)
		require.Error(t, err, tt.in)
		assert.ErrorIs(t, err, tt.want, tt.in)

		var ce *diag.CandidateError
		require.ErrorAs(t, err, &ce, tt.in)
		assert.Equal(t, tt.in, ce.Candidate)
	}
}

func TestVariantsAndWrappers(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)

	f := e.mustResolve(t, "md:hover:flex")
	assert.Equal(t, `.md\:hover\:flex:hover`, f.Selector)
	assert.Equal(t, []string{"@media (min-width: 768px)"}, f.AtRules)
	assert.NotZero(t, f.Variants)

	f = e.mustResolve(t, "space-x-4")
	assert.Equal(t, ".space-x-4:where(.space-x-4 > :not(:last-child))", f.Selector)
	assert.Equal(t, order.SpaceAxis, f.Ordering)
	require.NotEmpty(t, f.Globals)
	assert.Equal(t, "@property --tw-space-x-reverse", f.Globals[0].Selector)

	f = e.mustResolve(t, "placeholder-gray-400")
	assert.Equal(t, ".placeholder-gray-400::placeholder", f.Selector)

	f = e.mustResolve(t, "[&>*]:p-2")
	assert.Equal(t, `.\[\&\>\*\]\:p-2>*`, f.Selector)
}

func TestImportant(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)
	for _, in := range []string{"!p-4", "p-4!"} {
		f := e.mustResolve(t, in)
		require.Len(t, f.Decls, 1)
		assert.True(t, f.Decls[0].Important, in)
	}
	assert.False(t, e.mustResolve(t, "p-4").Decls[0].Important)
}

func TestOrderingAndGroups(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)

	tests := []struct {
		in       string
		ordering order.Key
		group    css.Group
	}{
		{in: "translate-x-4", ordering: order.TranslateAxis},
		{in: "transform-none", ordering: order.Transform},
		{in: "rotate-x-45", ordering: order.RotateAxis, group: css.GroupTransform},
		{in: "blur-sm", ordering: order.Grouped, group: css.GroupFilter},
		{in: "backdrop-blur", ordering: order.Grouped, group: css.GroupBackdropFilter},
		{in: "opacity-50", ordering: order.Disorder},
		{in: "[color:red]", ordering: order.Property},
		{in: "from-red-500", ordering: order.FromColor},
	}
	for _, tt := range tests {
		f := e.mustResolve(t, tt.in)
		assert.Equal(t, tt.ordering, f.Ordering, tt.in)
		assert.Equal(t, tt.group, f.Group, tt.in)
	}

	f := e.mustResolve(t, "rotate-x-45")
	assert.Equal(t, []css.Decl{decl("--tw-rotate-x", "rotateX(45deg)")}, f.Decls)
}

func TestResolveIsPure(t *testing.T) {
	t.Parallel()

	e := defaultEnv(t)
	for _, in := range []string{"md:bg-red-500/50", "-translate-y-1/3", "space-y-2", "dark:text-lg/7"} {
		a := e.mustResolve(t, in)
		b := e.mustResolve(t, in)
		assert.Equal(t, a, b, in)
	}
}
