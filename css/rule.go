// Package css is the output model of the generator: declarations, rules,
// per-candidate fragments, and the serializer that writes them.
package css

import (
	"strings"

	"github.com/agiangrant/tailcss/order"
)

// Decl is a single property: value pair.
type Decl struct {
	Property  string
	Value     string
	Important bool
}

// Rule is a selector or at-rule header with declarations and nested rules.
type Rule struct {
	Selector string
	Decls    []Decl
	Rules    []Rule
}

// IsAtRule reports whether the header starts with "@".
func (r Rule) IsAtRule() bool {
	return strings.HasPrefix(r.Selector, "@")
}

// Group is a utility family whose members share one composed property.
// Members set custom properties; one extra rule per group declares the
// property that reads them all.
type Group int

const (
	NoGroup Group = iota
	GroupTransform
	GroupFilter
	GroupBackdropFilter
)

var groupNames = map[Group]string{
	GroupTransform:      "Transform",
	GroupFilter:         "Filter",
	GroupBackdropFilter: "BackdropFilter",
}

func (g Group) String() string {
	if n, ok := groupNames[g]; ok {
		return n
	}
	return ""
}

// ParseGroup maps a configuration name to a Group. "" is NoGroup.
func ParseGroup(name string) (Group, bool) {
	if name == "" {
		return NoGroup, true
	}
	for g, n := range groupNames {
		if strings.EqualFold(n, name) {
			return g, true
		}
	}
	return NoGroup, false
}

// Decls returns the composed declaration for the group.
func (g Group) Decls() []Decl {
	switch g {
	case GroupTransform:
		return []Decl{{
			Property: "transform",
			Value:    "var(--tw-rotate-x,) var(--tw-rotate-y,) var(--tw-rotate-z,) var(--tw-skew-x,) var(--tw-skew-y,)",
		}}
	case GroupFilter:
		return []Decl{{
			Property: "filter",
			Value:    "var(--tw-blur,) var(--tw-brightness,) var(--tw-contrast,) var(--tw-grayscale,) var(--tw-hue-rotate,) var(--tw-invert,) var(--tw-saturate,) var(--tw-sepia,) var(--tw-drop-shadow,)",
		}}
	case GroupBackdropFilter:
		return []Decl{{
			Property: "backdrop-filter",
			Value:    "var(--tw-backdrop-blur,) var(--tw-backdrop-brightness,) var(--tw-backdrop-contrast,) var(--tw-backdrop-grayscale,) var(--tw-backdrop-hue-rotate,) var(--tw-backdrop-invert,) var(--tw-backdrop-opacity,) var(--tw-backdrop-saturate,) var(--tw-backdrop-sepia,)",
		}}
	}
	return nil
}

// Fragment is the CSS one candidate compiles to. It is a pure function of
// the configuration snapshot and the candidate string.
type Fragment struct {
	Candidate string
	// Selector is the escaped class with wrapper and selector variants applied.
	Selector string
	// AtRules wrap the rule, outermost first.
	AtRules []string
	Decls   []Decl
	// Nested rules are written right after the primary rule, inside the
	// same at-rules ("& > *" style additional CSS).
	Nested []Rule
	// Globals are top-level rules such as @property registrations. They
	// are deduplicated across the whole output.
	Globals  []Rule
	Ordering order.Key
	Group    Group
	// Variants is the variant bitmask used for ordering.
	Variants uint64
}

// Rule returns the primary rule without at-rule wrappers.
func (f *Fragment) Rule() Rule {
	return Rule{Selector: f.Selector, Decls: f.Decls}
}

// Wrap nests rules inside the fragment's at-rules.
func (f *Fragment) Wrap(rules ...Rule) []Rule {
	for i := len(f.AtRules) - 1; i >= 0; i-- {
		rules = []Rule{{Selector: f.AtRules[i], Rules: rules}}
	}
	return rules
}

// AtRuleKey identifies the at-rule context of f for grouping.
func (f *Fragment) AtRuleKey() string {
	return strings.Join(f.AtRules, "\x00")
}
