// Package tw turns utility-class tokens ("candidates") into structured
// form. It knows the candidate grammar and the set of registered utility
// keys, nothing about what a utility emits.
//
//	[variant:]*[!][-]key[-value][/modifier][!]
package tw

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agiangrant/tailcss/diag"
)

// KeySet is the registry view the parser needs: which utility keys exist.
type KeySet interface {
	HasKey(key string) bool
}

// Parser splits candidates into variants, key, value and modifier.
//
// Strict selects the finite-automaton lexer, which rejects malformed input
// the loose scanner lets through (empty variants, stray characters, "!" on
// both ends). Both produce the same Candidate for well-formed input.
type Parser struct {
	Keys   KeySet
	Strict bool
}

// NewParser returns a parser over keys.
func NewParser(keys KeySet, strict bool) *Parser {
	return &Parser{Keys: keys, Strict: strict}
}

// Parse returns the canonical parse of raw, or a *diag.CandidateError of
// kind parse-failure or unknown-utility.
func (p *Parser) Parse(raw string) (Candidate, error) {
	var (
		pt  parts
		err error
	)
	if p.Strict {
		pt, err = lexStrict(raw)
	} else {
		pt, err = scanLoose(raw)
	}
	if err != nil {
		return Candidate{}, err
	}
	return p.assemble(raw, pt)
}

// parts is what both lexing strategies hand to assemble.
type parts struct {
	variants  []string
	important bool
	// named is the text before any bracket, with a leading "-" kept so
	// assemble can tell negation from a "-"-prefixed static utility.
	named string
	// arbitrary is the raw bracket content; hasArbitrary tells "" apart
	// from absent.
	arbitrary    string
	hasArbitrary bool
	// property is set when the whole utility is "[...]".
	property bool
	modifier string
}

func (p *Parser) hasKey(key string) bool {
	return p.Keys != nil && p.Keys.HasKey(key)
}

func (p *Parser) assemble(raw string, pt parts) (Candidate, error) {
	c := Candidate{Raw: raw, Important: pt.important}

	for _, text := range pt.variants {
		v, err := ParseVariant(text)
		if err != nil {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "%v", err)
		}
		c.Variants = append(c.Variants, v)
	}

	if pt.property {
		if pt.modifier != "" {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "arbitrary properties take no modifier")
		}
		prop, value, ok := strings.Cut(pt.arbitrary, ":")
		if !ok || !propertyPattern.MatchString(prop) {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "%q is not a property:value pair", pt.arbitrary)
		}
		value = strings.TrimSpace(DecodeArbitrary(value))
		if value == "" {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "empty value for property %q", prop)
		}
		c.Property = strings.ToLower(prop)
		if strings.HasPrefix(prop, "--") {
			c.Property = prop
		}
		c.Value = Value{Kind: ValueArbitrary, Text: value}
		return c, nil
	}

	body := pt.named
	if strings.HasPrefix(body, "-") {
		// "-webkit-box" style static utilities are taken literally.
		literal := !pt.hasArbitrary && pt.modifier == "" && p.hasKey(body)
		if !literal {
			c.Negative = true
			body = body[1:]
		}
	}
	if body == "" {
		return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "missing utility key")
	}

	switch {
	case pt.hasArbitrary:
		if !p.hasKey(body) {
			return Candidate{}, diag.Fail(raw, diag.KindUnknownUtility, "no utility %q", body)
		}
		if strings.TrimSpace(pt.arbitrary) == "" {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "empty arbitrary value")
		}
		c.Key = body
		c.Value = arbitraryValue(pt.arbitrary)
	case p.hasKey(body):
		c.Key = body
	default:
		key, value := p.splitKey(body)
		if key == "" {
			return Candidate{}, diag.Fail(raw, diag.KindUnknownUtility, "no utility matches %q", body)
		}
		if value == "" {
			return Candidate{}, diag.Fail(raw, diag.KindParseFailure, "empty value after %q", key)
		}
		c.Key = key
		c.Value = Value{Kind: ValueNamed, Text: value}
	}

	if pt.modifier != "" {
		c.Modifier = modifierValue(pt.modifier)
	}
	return c, nil
}

// splitKey finds the longest registered key that is followed by "-".
//
//	"translate-x-4" with keys {translate, translate-x} → ("translate-x", "4")
//	"bg-blue-500"   with keys {bg}                     → ("bg", "blue-500")
func (p *Parser) splitKey(body string) (string, string) {
	for i := strings.LastIndexByte(body, '-'); i > 0; i = strings.LastIndexByte(body[:i], '-') {
		if p.hasKey(body[:i]) {
			return body[:i], body[i+1:]
		}
	}
	return "", ""
}

// utilityPattern splits the utility part in loose mode:
// named text, optional "-[arbitrary]", optional "/modifier".
var utilityPattern = regexp.MustCompile(`^([^\[\]/]*?)(?:-\[(.+?)\])?(?:/(\[.+\]|[^\[\]/]+))?$`)

// scanLoose is the fast path: one linear pass splitting on top-level ":",
// then a regular expression over the utility part.
func scanLoose(raw string) (parts, error) {
	var (
		pt            parts
		square, paren int
		start         int
	)
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '[':
			square++
		case ']':
			square--
		case '(':
			paren++
		case ')':
			paren--
		case ':':
			if square == 0 && paren == 0 {
				if seg := raw[start:i]; seg != "" {
					pt.variants = append(pt.variants, seg)
				}
				start = i + 1
			}
		}
		if square < 0 || paren < 0 {
			return parts{}, diag.Fail(raw, diag.KindParseFailure, "unbalanced brackets")
		}
	}
	if square != 0 || paren != 0 {
		return parts{}, diag.Fail(raw, diag.KindParseFailure, "unbalanced brackets")
	}

	utility := raw[start:]
	if strings.HasPrefix(utility, "!") {
		pt.important = true
		utility = utility[1:]
	}
	if strings.HasSuffix(utility, "!") {
		pt.important = true
		utility = utility[:len(utility)-1]
	}
	if utility == "" {
		return parts{}, diag.Fail(raw, diag.KindParseFailure, "empty utility")
	}

	if utility[0] == '[' && closingBracket(utility, 0) == len(utility)-1 {
		pt.property = true
		pt.hasArbitrary = true
		pt.arbitrary = utility[1 : len(utility)-1]
		return pt, nil
	}

	m := utilityPattern.FindStringSubmatchIndex(utility)
	if m == nil {
		return parts{}, diag.Fail(raw, diag.KindParseFailure, "malformed utility %q", utility)
	}
	pt.named = utility[m[2]:m[3]]
	if m[4] >= 0 {
		pt.hasArbitrary = true
		pt.arbitrary = utility[m[4]:m[5]]
	}
	if m[6] >= 0 {
		pt.modifier = utility[m[6]:m[7]]
	}
	return pt, nil
}

// closingBracket returns the index of the "]" matching s[open].
func closingBracket(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ParseVariant reads one variant segment.
//
//	"hover"             → Named hover
//	"group-hover/item"  → Named group-hover, Label item
//	"data-[state=open]" → NamedArbitrary data, "state=open"
//	"[&:nth-child(3)]"  → Arbitrary "&:nth-child(3)"
func ParseVariant(text string) (Variant, error) {
	v := Variant{Raw: text}
	switch {
	case text == "":
		return v, fmt.Errorf("empty variant")
	case text[0] == '[':
		if closingBracket(text, 0) != len(text)-1 || len(text) < 3 {
			return v, fmt.Errorf("malformed arbitrary variant %q", text)
		}
		v.Kind = VariantArbitrary
		v.Arbitrary = DecodeArbitrary(text[1 : len(text)-1])
		return v, nil
	}

	if i := strings.Index(text, "-["); i > 0 {
		end := closingBracket(text, i+1)
		if end < 0 || end < i+3 {
			return v, fmt.Errorf("malformed variant %q", text)
		}
		v.Kind = VariantNamedArbitrary
		v.Name = text[:i]
		v.Arbitrary = DecodeArbitrary(text[i+2 : end])
		rest := text[end+1:]
		if rest != "" {
			label, ok := strings.CutPrefix(rest, "/")
			if !ok || label == "" {
				return v, fmt.Errorf("malformed variant %q", text)
			}
			v.Label = label
		}
		return v, nil
	}

	name, label, hasLabel := strings.Cut(text, "/")
	if hasLabel && label == "" {
		return v, fmt.Errorf("empty label in variant %q", text)
	}
	v.Kind = VariantNamed
	v.Name = name
	v.Label = label
	return v, nil
}
