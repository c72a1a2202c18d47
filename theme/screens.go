package theme

import (
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
)

// BreakpointConfig holds the min-width thresholds for the built-in
// responsive variants. Mobile-first: a screen variant applies at its width
// and above.
type BreakpointConfig struct {
	SM  float32 // ≥640px by default
	MD  float32 // ≥768px by default
	LG  float32 // ≥1024px by default
	XL  float32 // ≥1280px by default
	XXL float32 // ≥1536px by default (2xl)
}

// DefaultBreakpoints returns the standard Tailwind breakpoint values.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// Value renders the breakpoints as a "screens" theme mapping.
func (c BreakpointConfig) Value() *Value {
	return Strings(map[string]string{
		"sm":  px(c.SM),
		"md":  px(c.MD),
		"lg":  px(c.LG),
		"xl":  px(c.XL),
		"2xl": px(c.XXL),
	})
}

func px(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + "px"
}

// Screen is one named min-width breakpoint.
type Screen struct {
	Name     string
	MinWidth string
}

// Screens returns the "screens" category ordered by ascending width, falling
// back to DefaultBreakpoints when the theme has none. Entries whose width
// cannot be compared sort after the rest in natural name order.
func (s *Store) Screens() []Screen {
	return s.widths("screens", DefaultBreakpoints().Value())
}

// Containers returns the "containers" category used by "@md" style
// container query variants, ordered like Screens.
func (s *Store) Containers() []Screen {
	return s.widths("containers", defaultContainers)
}

var defaultContainers = Strings(map[string]string{
	"3xs": "16rem",
	"2xs": "18rem",
	"xs":  "20rem",
	"sm":  "24rem",
	"md":  "28rem",
	"lg":  "32rem",
	"xl":  "36rem",
	"2xl": "42rem",
	"3xl": "48rem",
	"4xl": "56rem",
	"5xl": "64rem",
	"6xl": "72rem",
	"7xl": "80rem",
})

func (s *Store) widths(category string, fallback *Value) []Screen {
	node, ok := s.Lookup(category)
	if !ok || node.IsLeaf() || node.Len() == 0 {
		node = fallback
	}

	screens := make([]Screen, 0, node.Len())
	for _, name := range node.Keys() {
		if name == DefaultKey {
			continue
		}
		v, ok := resolveIn(mustChild(node, name), "")
		if !ok {
			continue
		}
		screens = append(screens, Screen{Name: name, MinWidth: v})
	}

	sort.SliceStable(screens, func(i, j int) bool {
		wi, oki := widthInPx(screens[i].MinWidth)
		wj, okj := widthInPx(screens[j].MinWidth)
		switch {
		case oki && okj && wi != wj:
			return wi < wj
		case oki != okj:
			return oki
		}
		return natural.Less(screens[i].Name, screens[j].Name)
	})
	return screens
}

func mustChild(v *Value, key string) *Value {
	c, _ := v.Child(key)
	return c
}

// widthInPx converts "640px", "40rem" or "40em" to pixels at a 16px root.
func widthInPx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "rem"):
		s, unit = strings.TrimSuffix(s, "rem"), 16
	case strings.HasSuffix(s, "em"):
		s, unit = strings.TrimSuffix(s, "em"), 16
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * unit, true
}
