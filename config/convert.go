package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/preset"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/utility"
	"github.com/agiangrant/tailcss/variant"
)

// UserLayer names the registry layer built from the configuration's own
// utilities.
const UserLayer = "user"

// LoadPresets looks up the configured presets in order.
func (c *Config) LoadPresets() ([]preset.Preset, error) {
	out := make([]preset.Preset, 0, len(c.Presets))
	for _, name := range c.Presets {
		p, err := preset.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ThemeValue deep-merges the configured theme over the presets' themes.
func (c *Config) ThemeValue(presets []preset.Preset) *theme.Value {
	var root *theme.Value
	for _, p := range presets {
		if p.Theme != nil {
			root = theme.Merge(root, p.Theme)
		}
	}
	if c.Theme != nil {
		root = theme.Merge(root, c.Theme)
	}
	return root
}

// VariantOptions configures the variant registry.
func (c *Config) VariantOptions() (variant.Options, error) {
	mode, ok := variant.ParseDarkMode(c.DarkMode)
	if !ok {
		return variant.Options{}, fmt.Errorf("unknown dark mode %q", c.DarkMode)
	}
	return variant.Options{DarkMode: mode, Custom: c.Variants}, nil
}

// Definitions converts the user layer: static utilities in key order, then
// utilities in the order written.
func (c *Config) Definitions() ([]utility.Definition, error) {
	keys := make([]string, 0, len(c.StaticUtilities))
	for k := range c.StaticUtilities {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	defs := make([]utility.Definition, 0, len(keys)+len(c.Utilities))
	for _, k := range keys {
		defs = append(defs, c.StaticUtilities[k].Definition(k))
	}
	for i, u := range c.Utilities {
		d, err := u.Definition()
		if err != nil {
			return nil, fmt.Errorf("utilities[%d]: %w", i, err)
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Definition returns the registry definition for key.
func (s StaticUtility) Definition(key string) utility.Definition {
	if s.Selector != "" {
		return utility.Pair(key, s.Selector, s.Decls...)
	}
	return utility.Static(key, s.Decls...)
}

// Definition converts u. A utility whose declarations never mention "$1"
// takes no value and becomes a fixed utility.
func (u UtilityConfig) Definition() (utility.Definition, error) {
	d := utility.Dynamic(u.Key, u.CSS, u.Theme...)
	if !mentions(u.CSS, "$1") {
		d.Kind = utility.Fixed
	}

	if u.Type != "" {
		t, ok := css.ParseDataType(u.Type)
		if !ok {
			return d, fmt.Errorf("unknown type %q", u.Type)
		}
		d = d.Typed(t)
	}
	if m := u.Modifier; m != nil {
		spec := utility.ModifierSpec{ThemeKeys: m.Theme}
		if m.Type != "" {
			t, ok := css.ParseDataType(m.Type)
			if !ok {
				return d, fmt.Errorf("unknown modifier type %q", m.Type)
			}
			spec.Type = t
		}
		mode, ok := utility.ParseModifierMode(m.Mode)
		if !ok {
			return d, fmt.Errorf("unknown modifier mode %q", m.Mode)
		}
		spec.Mode = mode
		d = d.WithModifier(spec)
	}
	if u.Wrapper != "" {
		d = d.Wrap(u.Wrapper)
	}
	if u.SupportsNegative {
		d = d.Negatable()
	}
	if u.SupportsFraction {
		d = d.Fractions()
	}
	if u.OrderingKey != "" {
		k, err := order.ParseKey(u.OrderingKey)
		if err != nil {
			return d, err
		}
		d = d.Order(k)
	}
	if u.Group != "" {
		g, ok := css.ParseGroup(u.Group)
		if !ok {
			return d, fmt.Errorf("unknown group %q", u.Group)
		}
		d = d.InGroup(g)
	}
	if a := u.AdditionalCSS; a != nil {
		d = d.Also(a.Declarations...)
		d = d.WithRules(rules(a.Rules)...)
		d = d.WithGlobals(rules(a.Globals)...)
	}
	return d, nil
}

func mentions(decls []css.Decl, placeholder string) bool {
	return slices.ContainsFunc(decls, func(d css.Decl) bool {
		return strings.Contains(d.Value, placeholder)
	})
}

// rules converts selector → declarations, in selector order.
func rules(m map[string]Declarations) []css.Rule {
	selectors := make([]string, 0, len(m))
	for s := range m {
		selectors = append(selectors, s)
	}
	slices.Sort(selectors)

	out := make([]css.Rule, 0, len(selectors))
	for _, s := range selectors {
		out = append(out, css.Rule{Selector: s, Decls: m[s]})
	}
	return out
}
