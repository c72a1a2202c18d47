// Package utility holds utility definitions and the registry that maps
// lookup keys to them. Static and dynamic utilities share one namespace.
package utility

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/order"
)

// Kind is the shape of a definition. The resolver switches on it
// exhaustively.
type Kind int

const (
	// Fixed emits constant declarations and takes no value: "flex".
	Fixed Kind = iota
	// Templated substitutes a resolved value for "$1": "p-4", "bg-[#fff]".
	Templated
	// SelectorPair emits constant declarations under its own selector
	// template: "space-x-reverse" → "& > :not(:last-child)".
	SelectorPair
)

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Templated:
		return "templated"
	case SelectorPair:
		return "selector-pair"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ModifierMode says what a "/modifier" does to the value.
type ModifierMode int

const (
	// ModifierOpacity mixes the value with transparent: "bg-red-500/50".
	ModifierOpacity ModifierMode = iota
	// ModifierTemplate substitutes the modifier for "$2": "text-sm/6".
	ModifierTemplate
)

func (m ModifierMode) String() string {
	if m == ModifierTemplate {
		return "template"
	}
	return "opacity"
}

// ParseModifierMode maps a configuration name to a mode. "" is opacity.
func ParseModifierMode(name string) (ModifierMode, bool) {
	switch strings.ToLower(name) {
	case "", "opacity":
		return ModifierOpacity, true
	case "template":
		return ModifierTemplate, true
	}
	return ModifierOpacity, false
}

// ModifierSpec describes the modifiers a definition accepts.
type ModifierSpec struct {
	// ThemeKeys are tried in order for named modifiers ("opacity").
	ThemeKeys []string
	// Type validates arbitrary modifiers. Empty accepts anything.
	Type css.DataType
	Mode ModifierMode
}

// Additional is CSS emitted alongside a utility's own declarations.
type Additional struct {
	// Decls are appended to the utility's rule.
	Decls []css.Decl
	// Rules are associated rules whose selector templates contain "&".
	Rules []css.Rule
	// Globals are top-level rules, @property registrations mostly. They
	// are written once however many candidates carry them.
	Globals []css.Rule
}

// IsZero reports whether there is nothing to emit.
func (a Additional) IsZero() bool {
	return len(a.Decls) == 0 && len(a.Rules) == 0 && len(a.Globals) == 0
}

// Definition describes one utility key.
type Definition struct {
	Key  string
	Kind Kind
	// CSS is the ordered declaration list. For Templated definitions
	// values may contain "$1" (resolved value) and "$2" (modifier).
	CSS []css.Decl
	// ThemeKeys is the fallback chain of dotted theme paths a named value
	// is looked up in: ["padding", "spacing"].
	ThemeKeys []string
	// Type validates arbitrary values. Empty accepts anything.
	Type     css.DataType
	Modifier *ModifierSpec
	// Wrapper is a selector template applied to the class selector:
	// "&::placeholder". SelectorPair definitions always have one.
	Wrapper          string
	Additional       Additional
	SupportsFraction bool
	SupportsNegative bool
	Ordering         *order.Key
	Group            css.Group
	// Fallback is tried when this definition cannot resolve the value,
	// which lets "text-lg" and "text-red-500" share the key "text".
	Fallback *Definition
}

// Static returns a Fixed definition.
func Static(key string, decls ...css.Decl) Definition {
	return Definition{Key: key, Kind: Fixed, CSS: decls}
}

// Pair returns a SelectorPair definition emitting decls under selector.
func Pair(key, selector string, decls ...css.Decl) Definition {
	return Definition{Key: key, Kind: SelectorPair, Wrapper: selector, CSS: decls}
}

// Dynamic returns a Templated definition resolving named values through
// themeKeys.
func Dynamic(key string, decls []css.Decl, themeKeys ...string) Definition {
	return Definition{Key: key, Kind: Templated, CSS: decls, ThemeKeys: themeKeys}
}

// Typed sets the arbitrary-value type.
func (d Definition) Typed(t css.DataType) Definition {
	d.Type = t
	return d
}

// Negatable allows the "-" prefix.
func (d Definition) Negatable() Definition {
	d.SupportsNegative = true
	return d
}

// Fractions allows "N/M" values.
func (d Definition) Fractions() Definition {
	d.SupportsFraction = true
	return d
}

// Order sets the ordering key.
func (d Definition) Order(k order.Key) Definition {
	d.Ordering = &k
	return d
}

// InGroup puts d in a composed-property group.
func (d Definition) InGroup(g css.Group) Definition {
	d.Group = g
	return d
}

// WithModifier sets the modifier spec.
func (d Definition) WithModifier(m ModifierSpec) Definition {
	d.Modifier = &m
	return d
}

// Wrap sets the selector template.
func (d Definition) Wrap(template string) Definition {
	d.Wrapper = template
	return d
}

// Also appends declarations emitted with the utility's own.
func (d Definition) Also(decls ...css.Decl) Definition {
	d.Additional.Decls = append(append([]css.Decl(nil), d.Additional.Decls...), decls...)
	return d
}

// WithRules appends associated rules.
func (d Definition) WithRules(rules ...css.Rule) Definition {
	d.Additional.Rules = append(append([]css.Rule(nil), d.Additional.Rules...), rules...)
	return d
}

// WithGlobals appends global rules.
func (d Definition) WithGlobals(rules ...css.Rule) Definition {
	d.Additional.Globals = append(append([]css.Rule(nil), d.Additional.Globals...), rules...)
	return d
}

// Or chains fb behind d. The fallback takes d's key.
func (d Definition) Or(fb Definition) Definition {
	fb.Key = d.Key
	if d.Fallback != nil {
		inner := d.Fallback.Or(fb)
		d.Fallback = &inner
		return d
	}
	d.Fallback = &fb
	return d
}

// OrderingKey is the bucket the resolved rule sorts in.
func (d Definition) OrderingKey() order.Key {
	switch {
	case d.Ordering != nil:
		return *d.Ordering
	case d.Group != css.NoGroup:
		return order.Grouped
	}
	return order.Disorder
}

// keyPattern accepts keys such as "bg", "translate-x", "-webkit-box",
// "@container".
var keyPattern = regexp.MustCompile(`^-?@?[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

// ValidKey reports whether key can be written in a candidate.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key) && !strings.HasSuffix(key, "-") && !strings.Contains(key, "--")
}

// Validate checks a definition for internal consistency.
func (d *Definition) Validate() error {
	if !ValidKey(d.Key) {
		return fmt.Errorf("invalid utility key %q", d.Key)
	}
	if len(d.CSS) == 0 && d.Additional.IsZero() {
		return fmt.Errorf("utility %q declares no css", d.Key)
	}
	switch d.Kind {
	case Fixed:
	case SelectorPair:
		if !strings.Contains(d.Wrapper, "&") {
			return fmt.Errorf("utility %q: selector %q has no &", d.Key, d.Wrapper)
		}
	case Templated:
		if d.Type != "" {
			if _, ok := css.ParseDataType(string(d.Type)); !ok {
				return fmt.Errorf("utility %q: unknown type %q", d.Key, d.Type)
			}
		}
	default:
		return fmt.Errorf("utility %q: unknown kind %v", d.Key, d.Kind)
	}
	if d.Wrapper != "" && !strings.Contains(d.Wrapper, "&") {
		return fmt.Errorf("utility %q: wrapper %q has no &", d.Key, d.Wrapper)
	}
	for _, r := range d.Additional.Rules {
		if !strings.Contains(r.Selector, "&") && !r.IsAtRule() {
			return fmt.Errorf("utility %q: associated rule %q has no &", d.Key, r.Selector)
		}
	}
	if d.Fallback != nil {
		if d.Fallback.Key != d.Key {
			return fmt.Errorf("utility %q: fallback registered under %q", d.Key, d.Fallback.Key)
		}
		return d.Fallback.Validate()
	}
	return nil
}
