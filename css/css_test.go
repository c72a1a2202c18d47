package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tailcss/css"
)

func TestEscapeClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"flex", "flex"},
		{"bg-blue-500", "bg-blue-500"},
		{"hover:bg-blue-500/50", `hover\:bg-blue-500\/50`},
		{"w-1/2", `w-1\/2`},
		{"w-[33%]", `w-\[33\%\]`},
		{"2xl:flex", `\32 xl\:flex`},
		{"-m-4", "-m-4"},
		{"!flex", `\!flex`},
		{"p-0.5", `p-0\.5`},
		{"[&:hover]:flex", `\[\&\:hover\]\:flex`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, css.EscapeClass(tt.in), tt.in)
	}
}

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".btn:hover", css.ApplyTemplate("&:hover", ".btn"))
	assert.Equal(t, ".x:where(.x > :not(:last-child))", css.ApplyTemplate("&:where(& > :not(:last-child))", ".x"))
	assert.Equal(t, "@property --tw-x", css.ApplyTemplate("@property --tw-x", ".x"))
}

func TestWriter(t *testing.T) {
	t.Parallel()

	frag := &css.Fragment{
		Candidate: "md:flex",
		Selector:  `.md\:flex`,
		AtRules:   []string{"@media (min-width: 768px)"},
		Decls:     []css.Decl{{Property: "display", Value: "flex"}},
	}

	t.Run("minified", func(t *testing.T) {
		w := css.NewWriter(false)
		w.WriteRule(css.Rule{Selector: ".flex", Decls: []css.Decl{{Property: "display", Value: "flex"}}})
		w.WriteRule(css.Rule{Selector: ".p-4", Decls: []css.Decl{
			{Property: "padding", Value: "1rem", Important: true},
			{Property: "margin", Value: "0"},
		}})
		w.WriteFragment(frag)

		assert.Equal(t,
			".flex{display:flex}\n"+
				".p-4{padding:1rem!important;margin:0}\n"+
				"@media (min-width: 768px){.md\\:flex{display:flex}}\n",
			w.String())
		assert.Equal(t, 3, w.Len())
	})

	t.Run("pretty", func(t *testing.T) {
		w := css.NewWriter(true)
		w.WriteRule(css.Rule{Selector: ".flex", Decls: []css.Decl{{Property: "display", Value: "flex", Important: true}}})
		w.WriteFragment(frag)

		assert.Equal(t,
			".flex {\n  display: flex !important;\n}\n"+
				"\n"+
				"@media (min-width: 768px) {\n  .md\\:flex {\n    display: flex;\n  }\n}\n",
			w.String())
	})

	t.Run("nested rules follow the selector", func(t *testing.T) {
		f := &css.Fragment{
			Selector: ".divide",
			Decls:    []css.Decl{{Property: "--tw-divide", Value: "1"}},
			Nested:   []css.Rule{{Selector: "& > * + *", Decls: []css.Decl{{Property: "border-width", Value: "1px"}}}},
		}
		w := css.NewWriter(false)
		w.WriteFragment(f)
		assert.Equal(t, ".divide{--tw-divide:1}\n.divide > * + *{border-width:1px}\n", w.String())
	})

	t.Run("empty rules are skipped", func(t *testing.T) {
		w := css.NewWriter(false)
		w.WriteRule(css.Rule{Selector: ".nothing"})
		assert.Empty(t, w.String())
	})
}

func TestParseDeclarations(t *testing.T) {
	t.Parallel()

	decls, err := css.ParseDeclarations("display: flex; gap: 1rem !important; --tw-x: 0; width: calc(100% - 1rem)")
	require.NoError(t, err)
	assert.Equal(t, []css.Decl{
		{Property: "display", Value: "flex"},
		{Property: "gap", Value: "1rem", Important: true},
		{Property: "--tw-x", Value: "0"},
		{Property: "width", Value: "calc(100% - 1rem)"},
	}, decls)

	_, err = css.ParseDeclarations("display flex")
	assert.Error(t, err)
}

func TestDataTypeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ    css.DataType
		accept []string
		reject []string
	}{
		{
			typ:    css.TypeLength,
			accept: []string{"10px", "2.5rem", "0", "calc(100% - 1rem)", "var(--gap)", "-4px"},
			reject: []string{"10%", "red", "10", "10px 20px"},
		},
		{
			typ:    css.TypeLengthPercentage,
			accept: []string{"10px", "33%", "0", "min(10px, 5vw)"},
			reject: []string{"#fff", "auto", "10deg"},
		},
		{
			typ:    css.TypeColor,
			accept: []string{"#fff", "#3b82f6", "#3b82f680", "red", "rgb(0 0 0 / 50%)", "oklch(0.7 0.1 200)", "currentColor", "transparent"},
			reject: []string{"10px", "#ff", "#ggg", "notacolor", "50%"},
		},
		{
			typ:    css.TypeAngle,
			accept: []string{"17deg", "0.5turn", "0"},
			reject: []string{"17", "17px"},
		},
		{
			typ:    css.TypeNumber,
			accept: []string{"1.15", "0", "-2"},
			reject: []string{"1px", "auto"},
		},
		{
			typ:    css.TypeInteger,
			accept: []string{"3", "12"},
			reject: []string{"1.5"},
		},
		{
			typ:    css.TypeURL,
			accept: []string{"url(/img.png)", "url('a b.png')"},
			reject: []string{"/img.png"},
		},
		{
			typ:    css.TypeImage,
			accept: []string{"url(/img.png)", "linear-gradient(to right, red, blue)", "none"},
			reject: []string{"red"},
		},
		{
			typ:    css.TypePosition,
			accept: []string{"center", "left top", "50% 25%", "right 10px bottom 20px"},
			reject: []string{"middle", "red"},
		},
		{
			typ:    css.TypeRatio,
			accept: []string{"16/9", "1.5"},
			reject: []string{"16:9"},
		},
		{
			typ:    css.TypeFamilyName,
			accept: []string{"Inter, sans-serif", `"Open Sans", Arial`, "Helvetica Neue"},
			reject: []string{"Inter,", "12px"},
		},
		{
			typ:    css.TypeAny,
			accept: []string{"anything goes", "1px solid red"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			for _, v := range tt.accept {
				assert.True(t, tt.typ.Validate(v), "%s should accept %q", tt.typ, v)
			}
			for _, v := range tt.reject {
				assert.False(t, tt.typ.Validate(v), "%s should reject %q", tt.typ, v)
			}
		})
	}
}

func TestDataTypeAccepts(t *testing.T) {
	t.Parallel()

	assert.True(t, css.TypeLengthPercentage.Accepts(css.TypeLength))
	assert.True(t, css.TypeLengthPercentage.Accepts(css.TypePercentage))
	assert.False(t, css.TypeColor.Accepts(css.TypeLength))
	assert.True(t, css.DataType("").Accepts(css.TypeColor))

	_, ok := css.ParseDataType("length-percentage")
	assert.True(t, ok)
	_, ok = css.ParseDataType("bogus")
	assert.False(t, ok)
}

func TestGroupDecls(t *testing.T) {
	t.Parallel()

	g, ok := css.ParseGroup("transform")
	require.True(t, ok)
	assert.Equal(t, css.GroupTransform, g)
	require.Len(t, g.Decls(), 1)
	assert.Equal(t, "transform", g.Decls()[0].Property)

	_, ok = css.ParseGroup("layout")
	assert.False(t, ok)
}
