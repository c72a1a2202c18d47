package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/tailcss/diag"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	root, err := FromAny(map[string]any{
		"colors": map[string]any{
			"blue-500": "#3b82f6",
			"red": map[string]any{
				"500":     "#ef4444",
				"DEFAULT": "#f00",
			},
			"brand": map[string]any{
				"light": map[string]any{"100": "#eef"},
			},
		},
		"spacing": map[string]any{
			"0.5": "0.125rem",
			"4":   "1rem",
			"px":  "1px",
		},
		"borderRadius": map[string]any{
			"DEFAULT": "0.25rem",
			"lg":      "0.5rem",
		},
		"opacity":    map[string]any{"50": 0.5},
		"fontFamily": map[string]any{"sans": []any{"Inter", "sans-serif"}},
	})
	require.NoError(t, err)
	return NewStore(root)
}

func TestResolve(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	tests := []struct {
		name  string
		key   string
		token string
		want  string
	}{
		{name: "flat key", key: "colors", token: "blue-500", want: "#3b82f6"},
		{name: "nested key", key: "colors", token: "red-500", want: "#ef4444"},
		{name: "nested default", key: "colors", token: "red", want: "#f00"},
		{name: "deeply nested", key: "colors", token: "brand-light-100", want: "#eef"},
		{name: "dotted token", key: "spacing", token: "0.5", want: "0.125rem"},
		{name: "value-less candidate", key: "borderRadius", token: "", want: "0.25rem"},
		{name: "number leaf", key: "opacity", token: "50", want: "0.5"},
		{name: "list leaf", key: "fontFamily", token: "sans", want: "Inter, sans-serif"},
		{name: "dotted category", key: "colors.red", token: "500", want: "#ef4444"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Resolve(tt.key, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMissing(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	for _, tc := range [][2]string{
		{"colors", "red-900"},
		{"colors", "green"},
		{"nope", "4"},
		{"spacing", ""},
		{"colors", "blue-500-extra"},
	} {
		_, err := s.Resolve(tc[0], tc[1])
		assert.ErrorIs(t, err, diag.ErrThemeKeyNotFound, "%s.%s", tc[0], tc[1])
	}
}

func TestResolveChain(t *testing.T) {
	t.Parallel()
	s := testStore(t)

	got, err := s.ResolveChain([]string{"padding", "spacing"}, "4")
	require.NoError(t, err)
	assert.Equal(t, "1rem", got)

	_, err = s.ResolveChain(nil, "4")
	assert.ErrorIs(t, err, diag.ErrThemeKeyNotFound)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := Map(map[string]*Value{
		"colors": Map(map[string]*Value{
			"red":  Strings(map[string]string{"500": "#ef4444", "600": "#dc2626"}),
			"blue": String("#00f"),
		}),
		"spacing": Strings(map[string]string{"4": "1rem"}),
	})
	overlay := Map(map[string]*Value{
		"colors": Map(map[string]*Value{
			"red":  Strings(map[string]string{"500": "#f00"}),
			"blue": Strings(map[string]string{"500": "#3b82f6"}),
		}),
	})

	merged := NewStore(Merge(base, overlay))

	v, ok := merged.Get("colors.red.500")
	require.True(t, ok)
	assert.Equal(t, "#f00", v, "overlay leaf wins")

	v, ok = merged.Get("colors.red.600")
	require.True(t, ok)
	assert.Equal(t, "#dc2626", v, "sibling defaults survive")

	v, ok = merged.Get("colors.blue.500")
	require.True(t, ok)
	assert.Equal(t, "#3b82f6", v, "shape change replaces")

	v, ok = merged.Get("spacing.4")
	require.True(t, ok)
	assert.Equal(t, "1rem", v)

	// inputs are untouched
	v, _ = NewStore(base).Get("colors.red.500")
	assert.Equal(t, "#ef4444", v)
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var v Value
	require.NoError(t, json.Unmarshal([]byte(`{"colors":{"blue-500":"#3b82f6"},"zIndex":{"10":10}}`), &v))

	s := NewStore(&v)
	got, err := s.Resolve("colors", "blue-500")
	require.NoError(t, err)
	assert.Equal(t, "#3b82f6", got)

	got, err = s.Resolve("zIndex", "10")
	require.NoError(t, err)
	assert.Equal(t, "10", got)
}

func TestScreens(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		screens := NewStore(nil).Screens()
		require.Len(t, screens, 5)
		assert.Equal(t, Screen{Name: "sm", MinWidth: "640px"}, screens[0])
		assert.Equal(t, Screen{Name: "2xl", MinWidth: "1536px"}, screens[4])
	})

	t.Run("custom widths sort ascending", func(t *testing.T) {
		root := Map(map[string]*Value{
			"screens": Strings(map[string]string{
				"tablet":  "48rem",
				"desktop": "1200px",
				"phone":   "320px",
			}),
		})
		screens := NewStore(root).Screens()
		names := make([]string, 0, len(screens))
		for _, s := range screens {
			names = append(names, s.Name)
		}
		assert.Equal(t, []string{"phone", "tablet", "desktop"}, names)
	})
}

func TestContainers(t *testing.T) {
	t.Parallel()

	containers := NewStore(nil).Containers()
	require.NotEmpty(t, containers)
	assert.Equal(t, "3xs", containers[0].Name)
	assert.Equal(t, Screen{Name: "7xl", MinWidth: "80rem"}, containers[len(containers)-1])
}
