// Package resolve turns parsed candidates into CSS fragments against one
// configuration snapshot: utility registry, theme and variants.
package resolve

import (
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/diag"
	"github.com/agiangrant/tailcss/order"
	"github.com/agiangrant/tailcss/theme"
	"github.com/agiangrant/tailcss/tw"
	"github.com/agiangrant/tailcss/utility"
	"github.com/agiangrant/tailcss/variant"
)

// Resolver is safe for concurrent use. Resolve is a pure function of the
// snapshot and the candidate.
type Resolver struct {
	utilities *utility.Registry
	theme     *theme.Store
	variants  *variant.Registry
	log       *zap.Logger
}

// New returns a resolver over one snapshot. A nil logger logs nothing.
func New(utilities *utility.Registry, store *theme.Store, variants *variant.Registry, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	if store == nil {
		store = theme.NewStore(nil)
	}
	return &Resolver{
		utilities: utilities,
		theme:     store,
		variants:  variants,
		log:       log.Named("resolver"),
	}
}

// output is what one definition produced for a candidate.
type output struct {
	def    *utility.Definition
	decls  []css.Decl
	nested []css.Rule
}

// Resolve compiles c. Failures are *diag.CandidateError values naming
// c.Raw.
func (r *Resolver) Resolve(c tw.Candidate) (*css.Fragment, error) {
	effects := make([]variant.Effect, 0, len(c.Variants))
	for _, v := range c.Variants {
		if r.variants == nil {
			return nil, diag.Fail(c.Raw, diag.KindUnknownVariant, "no variant %q", v.Raw)
		}
		e, err := r.variants.Resolve(v)
		if err != nil {
			return nil, attribute(err, c.Raw)
		}
		effects = append(effects, e)
	}

	if c.IsProperty() {
		return r.property(c, effects), nil
	}

	def, err := r.utilities.Lookup(c.Key)
	if err != nil {
		return nil, diag.Fail(c.Raw, diag.KindUnknownUtility, "no utility %q", c.Key)
	}

	var firstErr error
	for d := &def; d != nil; d = d.Fallback {
		out, err := r.apply(d, c)
		if err == nil {
			return r.fragment(c, out, effects), nil
		}
		if firstErr == nil {
			firstErr = err
		}
		if !retryable(err) {
			return nil, err
		}
		if d.Fallback != nil {
			r.log.Debug("trying fallback",
				zap.String("candidate", c.Raw),
				zap.Stringer("kind", d.Fallback.Kind),
				zap.Error(err))
		}
	}
	return nil, firstErr
}

// retryable failures move on to the next definition in a fallback chain.
func retryable(err error) bool {
	return errors.Is(err, diag.ErrThemeKeyNotFound) || errors.Is(err, diag.ErrTypeMismatch)
}

func attribute(err error, raw string) error {
	var ce *diag.CandidateError
	if errors.As(err, &ce) {
		return ce.WithCandidate(raw)
	}
	return err
}

func (r *Resolver) property(c tw.Candidate, effects []variant.Effect) *css.Fragment {
	out := output{
		def:   &utility.Definition{Ordering: ptr(order.Property)},
		decls: []css.Decl{{Property: c.Property, Value: c.Value.Text}},
	}
	return r.fragment(c, out, effects)
}

func ptr[T any](v T) *T {
	return &v
}

// apply runs one definition. The value is checked before negation and the
// modifier so that a chain such as border width → border color gets to
// its second link on "border-red-500/50".
func (r *Resolver) apply(d *utility.Definition, c tw.Candidate) (output, error) {
	switch d.Kind {
	case utility.Fixed, utility.SelectorPair:
		if !c.Value.IsZero() {
			return output{}, diag.Fail(c.Raw, diag.KindThemeKeyNotFound, "%q takes no value", d.Key)
		}
		if c.Negative {
			return output{}, diag.Fail(c.Raw, diag.KindUnsupportedNegation, "%q cannot be negated", d.Key)
		}
		if !c.Modifier.IsZero() {
			return output{}, diag.Fail(c.Raw, diag.KindUnsupportedModifier, "%q takes no modifier", d.Key)
		}
		return output{
			def:    d,
			decls:  append(d.CSS[:len(d.CSS):len(d.CSS)], d.Additional.Decls...),
			nested: d.Additional.Rules,
		}, nil
	case utility.Templated:
		return r.templated(d, c)
	}
	return output{}, diag.Fail(c.Raw, diag.KindUnknown, "utility %q has kind %v", d.Key, d.Kind)
}

func (r *Resolver) templated(d *utility.Definition, c tw.Candidate) (output, error) {
	value, consumed, err := r.value(d, c)
	if err != nil {
		return output{}, err
	}

	if c.Negative {
		if !d.SupportsNegative {
			return output{}, diag.Fail(c.Raw, diag.KindUnsupportedNegation, "%q cannot be negated", d.Key)
		}
		value = negate(value)
	}

	var (
		mod    string
		hasMod bool
	)
	if !consumed && !c.Modifier.IsZero() {
		if d.Modifier == nil {
			return output{}, diag.Fail(c.Raw, diag.KindUnsupportedModifier, "%q takes no modifier", d.Key)
		}
		m, err := r.modifier(d, c)
		if err != nil {
			return output{}, err
		}
		switch d.Modifier.Mode {
		case utility.ModifierOpacity:
			value = withAlpha(value, m)
		case utility.ModifierTemplate:
			mod, hasMod = m, true
		}
	}

	return output{
		def:    d,
		decls:  substitute(append(d.CSS[:len(d.CSS):len(d.CSS)], d.Additional.Decls...), value, mod, hasMod),
		nested: substituteRules(d.Additional.Rules, value, mod, hasMod),
	}, nil
}

// value resolves the candidate's value for d. consumed reports that the
// modifier was read as a fraction denominator.
func (r *Resolver) value(d *utility.Definition, c tw.Candidate) (string, bool, error) {
	switch c.Value.Kind {
	case tw.ValueArbitrary:
		typ := d.Type
		if c.Value.Hint != "" {
			hint := css.DataType(c.Value.Hint)
			if !d.Type.Accepts(hint) {
				return "", false, diag.Fail(c.Raw, diag.KindTypeMismatch, "%q expects %s, got a %s hint", d.Key, d.Type, hint)
			}
			typ = hint
		}
		if typ != "" && !typ.Validate(c.Value.Text) {
			return "", false, diag.Fail(c.Raw, diag.KindTypeMismatch, "%q is not a valid %s", c.Value.Text, typ)
		}
		return c.Value.Text, false, nil
	case tw.ValueNamed:
		if d.SupportsFraction {
			if num, den, ok := c.Fraction(); ok {
				v, ok := fraction(num, den)
				if !ok {
					return "", false, diag.Fail(c.Raw, diag.KindInvalidValue, "fraction %s/%s has a zero denominator", num, den)
				}
				return v, true, nil
			}
		}
	}

	v, err := r.theme.ResolveChain(d.ThemeKeys, c.Value.Text)
	if err != nil {
		return "", false, diag.Fail(c.Raw, diag.KindThemeKeyNotFound, "%v", err)
	}
	return v, false, nil
}

// modifier resolves "/m" for d, which has a modifier spec. Opacity modifiers
// come back as a percentage.
func (r *Resolver) modifier(d *utility.Definition, c tw.Candidate) (string, error) {
	spec := d.Modifier
	m := c.Modifier

	var text string
	switch m.Kind {
	case tw.ValueArbitrary:
		if spec.Type != "" && !spec.Type.Validate(m.Text) {
			return "", diag.Fail(c.Raw, diag.KindTypeMismatch, "modifier %q is not a valid %s", m.Text, spec.Type)
		}
		text = m.Text
	default:
		v, err := r.theme.ResolveChain(spec.ThemeKeys, m.Text)
		switch {
		case err == nil:
			text = v
		case spec.Mode == utility.ModifierOpacity && isDigits(m.Text):
			n, _ := strconv.Atoi(m.Text)
			if n > 100 {
				return "", diag.Fail(c.Raw, diag.KindInvalidValue, "opacity %d%% is out of range", n)
			}
			return strconv.Itoa(n) + "%", nil
		default:
			return "", diag.Fail(c.Raw, diag.KindThemeKeyNotFound, "modifier: %v", err)
		}
	}

	if spec.Mode == utility.ModifierOpacity {
		p, ok := alphaPercent(text)
		if !ok {
			return "", diag.Fail(c.Raw, diag.KindTypeMismatch, "modifier %q is not an opacity", text)
		}
		return p, nil
	}
	return text, nil
}

// substitute fills "$1" and "$2" in decls. Declarations that read "$2" are
// dropped when no modifier was given: "text-sm" has no line-height,
// "text-sm/6" does.
func substitute(decls []css.Decl, value, mod string, hasMod bool) []css.Decl {
	out := make([]css.Decl, 0, len(decls))
	for _, d := range decls {
		if strings.Contains(d.Value, "$2") {
			if !hasMod {
				continue
			}
			d.Value = strings.ReplaceAll(d.Value, "$2", mod)
		}
		d.Value = strings.ReplaceAll(d.Value, "$1", value)
		out = append(out, d)
	}
	return out
}

func substituteRules(rules []css.Rule, value, mod string, hasMod bool) []css.Rule {
	if len(rules) == 0 {
		return nil
	}
	out := make([]css.Rule, len(rules))
	for i, r := range rules {
		out[i] = css.Rule{
			Selector: r.Selector,
			Decls:    substitute(r.Decls, value, mod, hasMod),
			Rules:    substituteRules(r.Rules, value, mod, hasMod),
		}
	}
	return out
}

func (r *Resolver) fragment(c tw.Candidate, out output, effects []variant.Effect) *css.Fragment {
	selector := css.ClassSelector(c.Raw)
	if out.def.Wrapper != "" {
		selector = css.ApplyTemplate(out.def.Wrapper, selector)
	}
	selector, atRules, bits := variant.Apply(selector, effects)

	decls := out.decls
	nested := out.nested
	if c.Important {
		decls = important(decls)
		nested = importantRules(nested)
	}

	return &css.Fragment{
		Candidate: c.Raw,
		Selector:  selector,
		AtRules:   atRules,
		Decls:     decls,
		Nested:    nested,
		Globals:   out.def.Additional.Globals,
		Ordering:  out.def.OrderingKey(),
		Group:     out.def.Group,
		Variants:  bits,
	}
}

func important(decls []css.Decl) []css.Decl {
	out := make([]css.Decl, len(decls))
	for i, d := range decls {
		d.Important = true
		out[i] = d
	}
	return out
}

func importantRules(rules []css.Rule) []css.Rule {
	if len(rules) == 0 {
		return nil
	}
	out := make([]css.Rule, len(rules))
	for i, r := range rules {
		out[i] = css.Rule{Selector: r.Selector, Decls: important(r.Decls), Rules: importantRules(r.Rules)}
	}
	return out
}
