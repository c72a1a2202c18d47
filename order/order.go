// Package order decides where each generated rule lands in the output.
//
// Rules sort by (variant mask, ordering key rank, discovery index). The rank
// table is fixed and global so that shorthand utilities come before the
// axis and side utilities that refine them: "mx-4" after "m-2", and
// "translate-x-4" before "transform-none".
package order

import (
	"cmp"
	"fmt"
	"slices"
)

// Key is an ordering bucket.
type Key int

const (
	Translate Key = iota
	TranslateAxis
	Scale
	ScaleAxis
	Rotate
	RotateAxis
	Skew
	SkewAxis
	Transform
	Margin
	MarginAxis
	MarginSide
	Padding
	PaddingAxis
	PaddingSide
	SpaceAxis
	Rounded
	RoundedSide
	RoundedCorner
	Inset
	InsetAxis
	InsetSide
	PositionSide
	BorderSpacing
	BorderSpacingAxis
	BorderColor
	BorderColorAxis
	BorderColorSide
	BorderWidth
	BorderWidthAxis
	BorderWidthSide
	Size
	SizeAxis
	FromColor
	FromPosition
	ViaColor
	ViaPosition
	ToColor
	ToPosition
	// catch-all buckets, ranked last
	Disorder
	Grouped
	Property
)

var names = [...]string{
	Translate:         "translate",
	TranslateAxis:     "translateAxis",
	Scale:             "scale",
	ScaleAxis:         "scaleAxis",
	Rotate:            "rotate",
	RotateAxis:        "rotateAxis",
	Skew:              "skew",
	SkewAxis:          "skewAxis",
	Transform:         "transform",
	Margin:            "margin",
	MarginAxis:        "marginAxis",
	MarginSide:        "marginSide",
	Padding:           "padding",
	PaddingAxis:       "paddingAxis",
	PaddingSide:       "paddingSide",
	SpaceAxis:         "spaceAxis",
	Rounded:           "rounded",
	RoundedSide:       "roundedSide",
	RoundedCorner:     "roundedCorner",
	Inset:             "inset",
	InsetAxis:         "insetAxis",
	InsetSide:         "insetSide",
	PositionSide:      "positionSide",
	BorderSpacing:     "borderSpacing",
	BorderSpacingAxis: "borderSpacingAxis",
	BorderColor:       "borderColor",
	BorderColorAxis:   "borderColorAxis",
	BorderColorSide:   "borderColorSide",
	BorderWidth:       "borderWidth",
	BorderWidthAxis:   "borderWidthAxis",
	BorderWidthSide:   "borderWidthSide",
	Size:              "size",
	SizeAxis:          "sizeAxis",
	FromColor:         "fromColor",
	FromPosition:      "fromPosition",
	ViaColor:          "viaColor",
	ViaPosition:       "viaPosition",
	ToColor:           "toColor",
	ToPosition:        "toPosition",
	Disorder:          "disorder",
	Grouped:           "grouped",
	Property:          "property",
}

// Rank is the position of k in the global table.
func (k Key) Rank() int {
	return int(k)
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return names[k]
}

// ParseKey maps a configuration name ("marginAxis") to its Key.
// Names are matched case-insensitively on the first letter so both
// "marginAxis" and "MarginAxis" are accepted.
func ParseKey(name string) (Key, error) {
	for k, n := range names {
		if n == name || (len(name) > 0 && len(n) > 0 && name[1:] == n[1:] && (name[0]|0x20) == n[0]) {
			return Key(k), nil
		}
	}
	return Disorder, fmt.Errorf("unknown ordering key %q", name)
}

// Keys lists every ordering key in rank order.
func Keys() []Key {
	keys := make([]Key, len(names))
	for i := range names {
		keys[i] = Key(i)
	}
	return keys
}

// Item is one rule awaiting placement.
type Item struct {
	// Variants is a bitmask over the variant registry; 0 for none.
	Variants uint64
	Key      Key
	// Index is the candidate's first-seen position in the session.
	Index int
}

// Compare orders a before b by variant mask, key rank, then discovery.
func Compare(a, b Item) int {
	if c := cmp.Compare(a.Variants, b.Variants); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Key.Rank(), b.Key.Rank()); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

// Sort stably sorts values by the Item each one maps to.
func Sort[T any](values []T, item func(T) Item) {
	slices.SortStableFunc(values, func(a, b T) int {
		return Compare(item(a), item(b))
	})
}
