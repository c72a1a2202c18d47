// Package preset ships the built-in utility set and design tokens.
package preset

import (
	"fmt"
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/utility"
)

// Preset is a named bundle of theme values and utilities. It is loaded as
// one registry layer, below user definitions.
type Preset struct {
	Name      string
	Theme     *theme.Value
	Utilities []utility.Definition
}

const (
	NameDefault = "default"
	NameNone    = "none"
)

// Lookup returns the preset called name.
func Lookup(name string) (Preset, error) {
	switch name {
	case NameDefault:
		return Default(), nil
	case NameNone:
		return Preset{Name: NameNone}, nil
	}
	return Preset{}, fmt.Errorf("unknown preset %q", name)
}

// Names lists the presets Lookup knows.
func Names() []string {
	return []string{NameDefault, NameNone}
}

// Default is the Tailwind-compatible preset.
func Default() Preset {
	defs := append(statics(), dynamics()...)
	return Preset{
		Name:      NameDefault,
		Theme:     Theme(),
		Utilities: chain(defs),
	}
}

// chain folds definitions sharing a key into one fallback chain, in the
// order given. Static utilities come first so "flex" stays display:flex
// while "flex-1" falls through to the dynamic flex utility.
func chain(defs []utility.Definition) []utility.Definition {
	index := make(map[string]int, len(defs))
	out := make([]utility.Definition, 0, len(defs))
	for _, d := range defs {
		if i, ok := index[d.Key]; ok {
			out[i] = out[i].Or(d)
			continue
		}
		index[d.Key] = len(out)
		out = append(out, d)
	}
	return out
}

// decls reads "property: value" pairs.
func decls(pairs ...string) []css.Decl {
	out := make([]css.Decl, 0, len(pairs))
	for _, p := range pairs {
		prop, value, ok := strings.Cut(p, ":")
		if !ok {
			panic(fmt.Sprintf("preset: malformed declaration %q", p))
		}
		out = append(out, css.Decl{Property: strings.TrimSpace(prop), Value: strings.TrimSpace(value)})
	}
	return out
}

func static(key string, pairs ...string) utility.Definition {
	return utility.Static(key, decls(pairs...)...)
}

func dynamic(key string, themeKeys []string, pairs ...string) utility.Definition {
	return utility.Dynamic(key, decls(pairs...), themeKeys...)
}

func keys(k ...string) []string {
	return k
}

// property is an @property registration.
func property(name, syntax, initial string) css.Rule {
	r := css.Rule{
		Selector: "@property " + name,
		Decls: []css.Decl{
			{Property: "syntax", Value: `"` + syntax + `"`},
			{Property: "inherits", Value: "false"},
		},
	}
	if initial != "" {
		r.Decls = append(r.Decls, css.Decl{Property: "initial-value", Value: initial})
	}
	return r
}

func properties(prefix, syntax, initial string, axes ...string) []css.Rule {
	out := make([]css.Rule, 0, len(axes))
	for _, a := range axes {
		out = append(out, property(prefix+"-"+a, syntax, initial))
	}
	return out
}
