package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateBeforeTransform(t *testing.T) {
	t.Parallel()

	type rule struct {
		name string
		item Item
	}
	// "transform-none" discovered first, "translate-x-4" second
	rules := []rule{
		{name: "transform-none", item: Item{Key: Transform, Index: 0}},
		{name: "translate-x-4", item: Item{Key: TranslateAxis, Index: 1}},
		{name: "translate-4", item: Item{Key: Translate, Index: 2}},
	}

	Sort(rules, func(r rule) Item { return r.item })

	got := []string{rules[0].name, rules[1].name, rules[2].name}
	assert.Equal(t, []string{"translate-4", "translate-x-4", "transform-none"}, got)
}

func TestSortOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		items []Item
		want  []int // expected Index sequence
	}{
		{
			name: "ties keep discovery order",
			items: []Item{
				{Key: Disorder, Index: 3},
				{Key: Disorder, Index: 1},
				{Key: Disorder, Index: 2},
			},
			want: []int{1, 2, 3},
		},
		{
			name: "shorthand before axis before side",
			items: []Item{
				{Key: MarginSide, Index: 0},
				{Key: MarginAxis, Index: 1},
				{Key: Margin, Index: 2},
			},
			want: []int{2, 1, 0},
		},
		{
			name: "variant rules after base rules",
			items: []Item{
				{Variants: 1 << 4, Key: Margin, Index: 0},
				{Key: Property, Index: 1},
				{Variants: 1 << 1, Key: Property, Index: 2},
			},
			want: []int{1, 2, 0},
		},
		{
			name: "catch-alls rank last",
			items: []Item{
				{Key: Property, Index: 0},
				{Key: Grouped, Index: 1},
				{Key: Disorder, Index: 2},
				{Key: SizeAxis, Index: 3},
			},
			want: []int{3, 2, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := append([]Item(nil), tt.items...)
			Sort(items, func(i Item) Item { return i })
			got := make([]int, len(items))
			for i, it := range items {
				got[i] = it.Index
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey(t *testing.T) {
	t.Parallel()

	for _, k := range Keys() {
		parsed, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKey("MarginAxis")
	require.NoError(t, err)
	assert.Equal(t, MarginAxis, k)

	_, err = ParseKey("sideways")
	assert.Error(t, err)
}

func TestCatchAllsAreLast(t *testing.T) {
	t.Parallel()

	keys := Keys()
	tail := keys[len(keys)-3:]
	assert.Equal(t, []Key{Disorder, Grouped, Property}, tail)
	for _, k := range keys[:len(keys)-3] {
		assert.Less(t, k.Rank(), Disorder.Rank(), k.String())
	}
}
