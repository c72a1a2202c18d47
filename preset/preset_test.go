package preset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agiangrant/tailcss/preset"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/utility"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range preset.Names() {
		p, err := preset.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, p.Name)
	}

	none, err := preset.Lookup(preset.NameNone)
	require.NoError(t, err)
	assert.Empty(t, none.Utilities)
	assert.Nil(t, none.Theme)

	_, err = preset.Lookup("bootstrap")
	assert.ErrorContains(t, err, `unknown preset "bootstrap"`)
}

func TestDefaultRegisters(t *testing.T) {
	t.Parallel()

	p := preset.Default()
	require.NotEmpty(t, p.Utilities)

	seen := make(map[string]bool, len(p.Utilities))
	for i := range p.Utilities {
		def := &p.Utilities[i]
		assert.NoError(t, def.Validate(), def.Key)
		assert.False(t, seen[def.Key], "duplicate key %q", def.Key)
		seen[def.Key] = true
	}

	reg, err := utility.NewBuilder(zaptest.NewLogger(t)).Layer(p.Name, p.Utilities...).Build()
	require.NoError(t, err)
	assert.Empty(t, reg.Collisions())

	flex, err := reg.Lookup("flex")
	require.NoError(t, err)
	assert.Equal(t, utility.Fixed, flex.Kind)
	require.NotNil(t, flex.Fallback, "flex-1 needs the dynamic flex utility")
	assert.Equal(t, "flex", flex.Fallback.Key)
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	s := theme.NewStore(preset.Theme())
	tests := map[string]string{
		"colors.blue.500": "#3b82f6",
		"spacing.4":       "1rem",
		"screens.md":      "768px",
	}
	for path, want := range tests {
		got, ok := s.Get(path)
		require.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
}
