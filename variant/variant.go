// Package variant maps variant prefixes ("hover:", "md:", "dark:",
// "data-[state=open]:") to the selector templates and at-rules they wrap a
// utility in.
package variant

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/tw"
)

// DarkMode selects how "dark:" is expressed.
type DarkMode string

const (
	// DarkMedia follows the operating system preference.
	DarkMedia DarkMode = "media"
	// DarkSelector applies under a ".dark" ancestor.
	DarkSelector DarkMode = "selector"
)

// ParseDarkMode maps a configuration name to a mode. "" is media.
func ParseDarkMode(name string) (DarkMode, bool) {
	switch DarkMode(strings.ToLower(name)) {
	case "", DarkMedia:
		return DarkMedia, true
	case DarkSelector, "class":
		return DarkSelector, true
	}
	return DarkMedia, false
}

// Effect is what one variant does to a rule.
type Effect struct {
	// Selector is a template containing "&", or "".
	Selector string
	// AtRule is a wrapping at-rule header such as "@media (min-width: 768px)".
	AtRule string
	// Bits places the variant in the ordering mask. Later registrations
	// have higher bits, so their rules sort later.
	Bits uint64
}

type entry struct {
	effect Effect
	// pseudo is the bare pseudo-class (":hover") for variants that can be
	// composed into group-*, peer-*, has-* and not-*.
	pseudo string
}

// Options configures a registry.
type Options struct {
	DarkMode DarkMode
	// Custom variants by name. A value starting with "@" is an at-rule,
	// anything else is a selector template that must contain "&".
	Custom map[string]string
}

// Registry resolves variants for one configuration snapshot. It is
// read-only after New.
type Registry struct {
	entries map[string]entry
	names   []string
	next    uint

	containers map[string]string
	screens    map[string]string

	group, peer, has, not, aria, data uint64
	supports, arbitrary, atRule       uint64
	container, max, rangeBits         uint64
}

// New builds the registry. Screens come from the theme and are registered
// last, in ascending width, so responsive rules cascade mobile-first.
func New(store *theme.Store, opts Options) (*Registry, error) {
	if store == nil {
		store = theme.NewStore(nil)
	}
	r := &Registry{
		entries:    make(map[string]entry),
		containers: make(map[string]string),
		screens:    make(map[string]string),
	}

	pseudoElement := r.slot()
	for _, pe := range pseudoElements {
		r.put(pe.name, entry{effect: Effect{Selector: pe.template, Bits: pseudoElement}})
	}
	for _, pc := range pseudoClasses {
		r.put(pc.name, entry{effect: Effect{Selector: "&" + pc.pseudo, Bits: r.slot()}, pseudo: pc.pseudo})
	}

	r.group = r.slot()
	r.peer = r.slot()
	r.has = r.slot()
	r.not = r.slot()
	r.aria = r.slot()
	r.data = r.slot()
	r.supports = r.slot()
	r.arbitrary = r.slot()

	for _, e := range environment {
		r.put(e.name, entry{effect: Effect{Selector: e.selector, AtRule: e.atRule, Bits: r.slot()}})
	}

	dark := Effect{AtRule: "@media (prefers-color-scheme: dark)"}
	if opts.DarkMode == DarkSelector {
		dark = Effect{Selector: "&:where(.dark, .dark *)"}
	}
	dark.Bits = r.slot()
	r.put("dark", entry{effect: dark})

	names := make([]string, 0, len(opts.Custom))
	for name := range opts.Custom {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		template := strings.TrimSpace(opts.Custom[name])
		e := Effect{Bits: r.slot()}
		switch {
		case strings.HasPrefix(template, "@"):
			e.AtRule = template
		case strings.Contains(template, "&"):
			e.Selector = template
		default:
			return nil, fmt.Errorf("variant %q: %q is neither an at-rule nor a selector with &", name, template)
		}
		r.put(name, entry{effect: e})
	}

	r.atRule = r.slot()
	r.container = r.slot()
	for _, c := range store.Containers() {
		r.containers[c.Name] = c.MinWidth
	}
	r.max = r.slot()
	r.rangeBits = r.slot()

	for _, s := range store.Screens() {
		r.screens[s.Name] = s.MinWidth
		r.put(s.Name, entry{effect: Effect{
			AtRule: fmt.Sprintf("@media (min-width: %s)", s.MinWidth),
			Bits:   r.slot(),
		}})
	}
	return r, nil
}

// slot hands out the next ordering bit. Past 64 variants the last bit is
// shared, which only loosens ordering between those variants.
func (r *Registry) slot() uint64 {
	n := min(r.next, 63)
	r.next++
	return 1 << n
}

func (r *Registry) put(name string, e entry) {
	if _, exists := r.entries[name]; !exists {
		r.names = append(r.names, name)
	}
	r.entries[name] = e
}

// Names lists the statically named variants in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Has reports whether name is a statically named variant.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Resolve returns the effect of v. Failures are *diag.CandidateError of
// kind unknown-variant, attributed to the variant text.
func (r *Registry) Resolve(v tw.Variant) (Effect, error) {
	var (
		e  Effect
		ok bool
	)
	switch v.Kind {
	case tw.VariantArbitrary:
		e, ok = r.arbitraryVariant(v.Arbitrary)
		if v.Label != "" {
			ok = false
		}
	case tw.VariantNamedArbitrary:
		e, ok = r.functional(v.Name, v.Arbitrary, v.Label)
	default:
		e, ok = r.named(v.Name, v.Label)
	}
	if !ok {
		return Effect{}, diag.Fail(v.Raw, diag.KindUnknownVariant, "no variant %q", v.Raw)
	}
	return e, nil
}

func (r *Registry) named(name, label string) (Effect, bool) {
	if label == "" {
		if en, ok := r.entries[name]; ok {
			return en.effect, true
		}
	}

	switch {
	case strings.HasPrefix(name, "group-"):
		return r.relational(r.group, "group", strings.TrimPrefix(name, "group-"), label, " *")
	case strings.HasPrefix(name, "peer-"):
		return r.relational(r.peer, "peer", strings.TrimPrefix(name, "peer-"), label, " ~ *")
	case strings.HasPrefix(name, "@"):
		width, ok := r.containers[name[1:]]
		if !ok {
			return Effect{}, false
		}
		return Effect{AtRule: containerQuery(label, "min-width", width), Bits: r.container}, true
	}

	if label != "" {
		return Effect{}, false
	}

	switch {
	case strings.HasPrefix(name, "max-"):
		width, ok := r.screens[strings.TrimPrefix(name, "max-")]
		if !ok {
			return Effect{}, false
		}
		return Effect{AtRule: fmt.Sprintf("@media not all and (min-width: %s)", width), Bits: r.max}, true
	case strings.HasPrefix(name, "has-"):
		en, ok := r.entries[strings.TrimPrefix(name, "has-")]
		if !ok || en.pseudo == "" {
			return Effect{}, false
		}
		return Effect{Selector: "&:has(*" + en.pseudo + ")", Bits: r.has | en.effect.Bits}, true
	case strings.HasPrefix(name, "not-"):
		en, ok := r.entries[strings.TrimPrefix(name, "not-")]
		if !ok || en.pseudo == "" {
			return Effect{}, false
		}
		return Effect{Selector: "&:not(" + en.pseudo + ")", Bits: r.not | en.effect.Bits}, true
	case strings.HasPrefix(name, "aria-"):
		attr := strings.TrimPrefix(name, "aria-")
		if !slices.Contains(ariaStates, attr) {
			return Effect{}, false
		}
		return Effect{Selector: fmt.Sprintf(`&[aria-%s="true"]`, attr), Bits: r.aria}, true
	case strings.HasPrefix(name, "data-"):
		attr := strings.TrimPrefix(name, "data-")
		if attr == "" {
			return Effect{}, false
		}
		return Effect{Selector: "&[data-" + attr + "]", Bits: r.data}, true
	}
	return Effect{}, false
}

// relational builds group-* and peer-* variants from a composable
// pseudo-class.
//
//	group-hover       → &:is(:where(.group):hover *)
//	peer-checked/opt  → &:is(:where(.peer\/opt):checked ~ *)
func (r *Registry) relational(bits uint64, marker, rest, label, combinator string) (Effect, bool) {
	en, ok := r.entries[rest]
	if !ok || en.pseudo == "" {
		return Effect{}, false
	}
	return Effect{
		Selector: "&:is(" + markerSelector(marker, label) + en.pseudo + combinator + ")",
		Bits:     bits | en.effect.Bits,
	}, true
}

func markerSelector(marker, label string) string {
	if label != "" {
		marker += "/" + label
	}
	return ":where(" + css.ClassSelector(marker) + ")"
}

// functional resolves "name-[value]" variants.
func (r *Registry) functional(name, arg, label string) (Effect, bool) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return Effect{}, false
	}

	switch name {
	case "group", "peer":
		combinator, bits := " *", r.group
		if name == "peer" {
			combinator, bits = " ~ *", r.peer
		}
		marker := markerSelector(name, label)
		if strings.Contains(arg, "&") {
			return Effect{Selector: "&:is(" + strings.ReplaceAll(arg, "&", marker) + combinator + ")", Bits: bits}, true
		}
		return Effect{Selector: "&:is(" + marker + arg + combinator + ")", Bits: bits}, true
	case "@min", "@max":
		return Effect{AtRule: containerQuery(label, name[1:]+"-width", arg), Bits: r.container}, true
	}

	if label != "" {
		return Effect{}, false
	}

	switch name {
	case "data":
		return Effect{Selector: "&[data-" + arg + "]", Bits: r.data}, true
	case "aria":
		return Effect{Selector: "&[aria-" + arg + "]", Bits: r.aria}, true
	case "has":
		return Effect{Selector: "&:has(" + arg + ")", Bits: r.has}, true
	case "not":
		return Effect{Selector: "&:not(" + arg + ")", Bits: r.not}, true
	case "supports":
		return Effect{AtRule: "@supports " + supportsCondition(arg), Bits: r.supports}, true
	case "min":
		return Effect{AtRule: fmt.Sprintf("@media (min-width: %s)", arg), Bits: r.rangeBits}, true
	case "max":
		return Effect{AtRule: fmt.Sprintf("@media not all and (min-width: %s)", arg), Bits: r.rangeBits}, true
	}
	return Effect{}, false
}

// arbitraryVariant resolves "[&:nth-child(3)]" and "[@media(...)]".
func (r *Registry) arbitraryVariant(arg string) (Effect, bool) {
	arg = strings.TrimSpace(arg)
	switch {
	case strings.HasPrefix(arg, "@"):
		return Effect{AtRule: arg, Bits: r.atRule}, true
	case strings.Contains(arg, "&"):
		return Effect{Selector: arg, Bits: r.arbitrary}, true
	}
	return Effect{}, false
}

// supportsCondition turns a supports-[...] argument into a condition.
//
//	"display:grid"     → "(display:grid)"
//	"backdrop-filter"  → "(backdrop-filter: var(--tw))"
//	"not (display:grid)" stays as written
func supportsCondition(arg string) string {
	switch {
	case strings.HasPrefix(arg, "("), strings.HasPrefix(arg, "not "), strings.HasPrefix(arg, "selector("):
		return arg
	case strings.Contains(arg, ":"):
		return "(" + arg + ")"
	}
	return "(" + arg + ": var(--tw))"
}

func containerQuery(name, feature, width string) string {
	if name != "" {
		return fmt.Sprintf("@container %s (%s: %s)", name, feature, width)
	}
	return fmt.Sprintf("@container (%s: %s)", feature, width)
}

// Apply folds effects onto the class selector. Selector templates apply
// right to left, so the variant written first ends up outermost. At-rules
// keep written order, outermost first.
//
//	Apply(".x", [hover, focus]) → ".x:focus:hover"
func Apply(selector string, effects []Effect) (string, []string, uint64) {
	var (
		atRules []string
		bits    uint64
	)
	for i := len(effects) - 1; i >= 0; i-- {
		if t := effects[i].Selector; t != "" {
			selector = css.ApplyTemplate(t, selector)
		}
	}
	for _, e := range effects {
		if e.AtRule != "" {
			atRules = append(atRules, e.AtRule)
		}
		bits |= e.Bits
	}
	return selector, atRules, bits
}
