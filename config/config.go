// Package config describes a generator configuration and loads it from
// JSON, TOML or YAML files.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/theme"
)

// Config is one generator configuration.
type Config struct {
	// Content lists the globs scanned for candidates, relative to the
	// configuration file. A leading "!" excludes.
	Content  []string `json:"content,omitempty" validate:"dive,required"`
	DarkMode string   `json:"darkMode,omitempty" validate:"omitempty,dark_mode"`
	Features Features `json:"features"`
	// Presets are loaded in order below the user's own utilities. A file
	// without the key gets ["default"]; a Config built in Go with nil
	// Presets loads none.
	Presets         []string                 `json:"presets,omitempty" validate:"dive,preset"`
	StaticUtilities map[string]StaticUtility `json:"staticUtilities,omitempty" validate:"dive,keys,utility_key,endkeys"`
	Theme           *theme.Value             `json:"theme,omitempty"`
	// Variants are custom variants: an at-rule ("@media print") or a
	// selector template containing "&".
	Variants  map[string]string `json:"variants,omitempty" validate:"dive,keys,utility_key,endkeys,required"`
	Utilities []UtilityConfig   `json:"utilities,omitempty" validate:"dive"`
	Logging   LoggingConfig     `json:"logging"`
}

type Features struct {
	// StrictMode selects the finite-automaton candidate lexer. Unset means
	// true.
	StrictMode *bool `json:"strict_mode,omitempty"`
	Pretty     bool  `json:"pretty,omitempty"`
}

// Strict reports the effective strict mode.
func (f Features) Strict() bool {
	return f.StrictMode == nil || *f.StrictMode
}

// UtilityConfig is a dynamic utility written in configuration.
type UtilityConfig struct {
	Key string `json:"key" validate:"required,utility_key"`
	// CSS is the declaration template; "$1" is the resolved value and
	// "$2" the modifier.
	CSS              Declarations    `json:"css" validate:"min=1"`
	Theme            StringList      `json:"theme,omitempty"`
	Type             string          `json:"type,omitempty" validate:"omitempty,css_type"`
	Modifier         *ModifierConfig `json:"modifier,omitempty"`
	Wrapper          string          `json:"wrapper,omitempty" validate:"omitempty,contains=&"`
	SupportsNegative bool            `json:"supportsNegative,omitempty"`
	SupportsFraction bool            `json:"supportsFraction,omitempty"`
	OrderingKey      string          `json:"orderingKey,omitempty" validate:"omitempty,ordering_key"`
	Group            string          `json:"group,omitempty" validate:"omitempty,utility_group"`
	AdditionalCSS    *AdditionalCSS  `json:"additionalCss,omitempty"`
}

type ModifierConfig struct {
	Type  string     `json:"type,omitempty" validate:"omitempty,css_type"`
	Theme StringList `json:"theme,omitempty"`
	Mode  string     `json:"mode,omitempty" validate:"omitempty,modifier_mode"`
}

// AdditionalCSS is emitted alongside a utility. Rules are keyed by a
// selector template containing "&"; globals by a top-level selector or
// at-rule header.
type AdditionalCSS struct {
	Declarations Declarations            `json:"declarations,omitempty"`
	Rules        map[string]Declarations `json:"rules,omitempty" validate:"dive,keys,contains=&,endkeys"`
	Globals      map[string]Declarations `json:"globals,omitempty"`
}

// StaticUtility is a utility with constant declarations. It is written in
// one of three shapes:
//
//	"display: flex; gap: 1rem"
//	{"display": "flex", "gap": "1rem"}
//	["& > * + *", "margin-top: 1rem"]
//
// The last form emits under its own selector template.
type StaticUtility struct {
	Selector string
	Decls    Declarations
}

func (s *StaticUtility) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("static utility pair needs [selector, declarations], got %d elements", len(pair))
		}
		var selector string
		if err := json.Unmarshal(pair[0], &selector); err != nil {
			return fmt.Errorf("static utility selector: %w", err)
		}
		if !strings.Contains(selector, "&") {
			return fmt.Errorf("static utility selector %q has no &", selector)
		}
		var decls Declarations
		if err := decls.UnmarshalJSON(pair[1]); err != nil {
			return err
		}
		*s = StaticUtility{Selector: selector, Decls: decls}
		return nil
	}
	var decls Declarations
	if err := decls.UnmarshalJSON(data); err != nil {
		return err
	}
	*s = StaticUtility{Decls: decls}
	return nil
}

func (s StaticUtility) MarshalJSON() ([]byte, error) {
	if s.Selector != "" {
		return json.Marshal([]string{s.Selector, s.Decls.String()})
	}
	return json.Marshal(s.Decls.String())
}

// Declarations is declaration text, either "a: b; c: d" or an object of
// property → value. Object properties are emitted in key order; use the
// text form when order matters.
type Declarations []css.Decl

func (d *Declarations) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case string:
		decls, err := css.ParseDeclarations(x)
		if err != nil {
			return err
		}
		*d = decls
	case map[string]any:
		props := make([]string, 0, len(x))
		for p := range x {
			props = append(props, p)
		}
		slices.Sort(props)
		out := make(Declarations, 0, len(props))
		for _, p := range props {
			v, err := theme.FromAny(x[p])
			if err != nil || !v.IsLeaf() {
				return fmt.Errorf("declaration %q: value must be a string or number", p)
			}
			value, important := strings.CutSuffix(strings.TrimSpace(v.Leaf()), "!important")
			out = append(out, css.Decl{Property: p, Value: strings.TrimSpace(value), Important: important})
		}
		*d = out
	default:
		return fmt.Errorf("declarations must be text or an object, got %T", raw)
	}
	return nil
}

func (d Declarations) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String renders "a: b; c: d".
func (d Declarations) String() string {
	parts := make([]string, 0, len(d))
	for _, decl := range d {
		s := decl.Property + ": " + decl.Value
		if decl.Important {
			s += " !important"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "; ")
}

// StringList accepts a single string or a list of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("expected a string or a list of strings")
	}
	*l = many
	return nil
}
