package tw

import (
	"regexp"
	"strings"

	"github.com/agiangrant/tailcss/css"
)

var (
	hintPattern     = regexp.MustCompile(`^[a-z][a-z-]*$`)
	propertyPattern = regexp.MustCompile(`^-{0,2}[a-zA-Z][a-zA-Z0-9-]*$`)
)

// DecodeArbitrary turns the raw text between brackets into the CSS it
// stands for. Underscores become spaces; an escaped underscore stays.
//
//	"1fr_auto"     → "1fr auto"
//	"a\_b"         → "a_b"
func DecodeArbitrary(raw string) string {
	if !strings.ContainsRune(raw, '_') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '_':
			b.WriteByte('_')
			i++
		case raw[i] == '_':
			b.WriteByte(' ')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// arbitraryValue splits an optional type hint off bracket content.
//
//	"10px"              → Value{Text: "10px"}
//	"length:var(--x)"   → Value{Text: "var(--x)", Hint: "length"}
//	"url(http://x)"     → Value{Text: "url(http://x)"}
func arbitraryValue(raw string) Value {
	v := Value{Kind: ValueArbitrary, Text: DecodeArbitrary(raw)}
	hint, rest, ok := strings.Cut(raw, ":")
	if !ok || !hintPattern.MatchString(hint) {
		return v
	}
	if _, known := css.ParseDataType(hint); !known {
		return v
	}
	v.Hint = hint
	v.Text = DecodeArbitrary(rest)
	return v
}

// modifierValue reads the text after "/".
func modifierValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		return arbitraryValue(raw[1 : len(raw)-1])
	}
	return Value{Kind: ValueNamed, Text: raw}
}
