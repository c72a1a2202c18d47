package css

import (
	"io"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// DataType is a CSS value type an arbitrary value can be checked against.
type DataType string

const (
	TypeAny              DataType = "any"
	TypeLength           DataType = "length"
	TypePercentage       DataType = "percentage"
	TypeLengthPercentage DataType = "length-percentage"
	TypeNumber           DataType = "number"
	TypeInteger          DataType = "integer"
	TypeAngle            DataType = "angle"
	TypeTime             DataType = "time"
	TypeColor            DataType = "color"
	TypeURL              DataType = "url"
	TypeImage            DataType = "image"
	TypePosition         DataType = "position"
	TypeRatio            DataType = "ratio"
	TypeFamilyName       DataType = "family-name"
	TypeLineWidth        DataType = "line-width"
	TypeString           DataType = "string"
	TypeIdent            DataType = "ident"
)

var validators = map[DataType]func([]component) bool{
	TypeAny:              func([]component) bool { return true },
	TypeLength:           single(isLength),
	TypePercentage:       single(isPercentage),
	TypeLengthPercentage: single(func(c component) bool { return isLength(c) || isPercentage(c) }),
	TypeNumber:           single(isNumber),
	TypeInteger:          single(isInteger),
	TypeAngle:            single(isAngle),
	TypeTime:             single(isTime),
	TypeColor:            single(isColor),
	TypeURL:              single(isURL),
	TypeImage:            single(isImage),
	TypePosition:         isPosition,
	TypeRatio:            isRatio,
	TypeFamilyName:       isFamilyName,
	TypeLineWidth:        single(isLineWidth),
	TypeString:           single(func(c component) bool { return c.tt == tcss.StringToken }),
	TypeIdent:            single(func(c component) bool { return c.tt == tcss.IdentToken }),
}

// ParseDataType maps a configuration name to a DataType.
func ParseDataType(name string) (DataType, bool) {
	t := DataType(name)
	_, ok := validators[t]
	return t, ok
}

// DataTypes lists every known type name, sorted.
func DataTypes() []string {
	names := make([]string, 0, len(validators))
	for t := range validators {
		names = append(names, string(t))
	}
	slices.Sort(names)
	return names
}

// Accepts reports whether a type hint written in a candidate
// ("[length:...]") is compatible with a utility declared as t.
func (t DataType) Accepts(hint DataType) bool {
	switch {
	case t == "" || t == TypeAny || t == hint:
		return true
	case t == TypeLengthPercentage:
		return hint == TypeLength || hint == TypePercentage
	case t == TypeNumber:
		return hint == TypeInteger
	case t == TypeImage:
		return hint == TypeURL
	case t == TypeLineWidth:
		return hint == TypeLength
	}
	return false
}

// Validate reports whether value parses as t. Unknown types reject.
func (t DataType) Validate(value string) bool {
	check, ok := validators[t]
	if !ok {
		return false
	}
	comps, ok := components(value)
	if !ok || len(comps) == 0 {
		return false
	}
	// var() stands in for any type
	if len(comps) == 1 && comps[0].fn == "var" {
		return true
	}
	return check(comps)
}

// component is one top-level piece of a value: a token, or a function with
// its raw argument text.
type component struct {
	tt   tcss.TokenType
	data string
	fn   string
}

// components splits value on top-level whitespace using the CSS lexer.
// Commas and slashes come back as their own components.
func components(value string) ([]component, bool) {
	l := tcss.NewLexer(parse.NewInputString(value))

	var (
		comps []component
		depth int
		cur   *component
	)
	for {
		tt, data := l.Next()
		switch tt {
		case tcss.ErrorToken:
			if l.Err() != io.EOF || depth != 0 {
				return nil, false
			}
			return comps, true
		case tcss.BadStringToken, tcss.BadURLToken:
			return nil, false
		}

		if depth > 0 {
			cur.data += string(data)
			switch tt {
			case tcss.FunctionToken, tcss.LeftParenthesisToken:
				depth++
			case tcss.RightParenthesisToken:
				depth--
			}
			continue
		}

		switch tt {
		case tcss.WhitespaceToken, tcss.CommentToken:
			continue
		case tcss.RightParenthesisToken:
			return nil, false
		case tcss.FunctionToken, tcss.LeftParenthesisToken:
			depth++
			name := strings.ToLower(strings.TrimSuffix(string(data), "("))
			comps = append(comps, component{tt: tt, data: string(data), fn: name})
			cur = &comps[len(comps)-1]
		default:
			comps = append(comps, component{tt: tt, data: string(data)})
		}
	}
}

func single(check func(component) bool) func([]component) bool {
	return func(comps []component) bool {
		return len(comps) == 1 && check(comps[0])
	}
}

var mathFunctions = []string{"calc", "min", "max", "clamp", "var", "env", "round", "mod", "rem", "abs"}

func isMath(c component) bool {
	return c.tt == tcss.FunctionToken && slices.Contains(mathFunctions, c.fn)
}

func unit(c component) string {
	num, n := parse.Dimension([]byte(c.data))
	return strings.ToLower(c.data[num : num+n])
}

var lengthUnits = []string{
	"px", "em", "rem", "ex", "ch", "cap", "ic", "lh", "rlh",
	"vw", "vh", "vi", "vb", "vmin", "vmax",
	"svw", "svh", "lvw", "lvh", "dvw", "dvh",
	"cqw", "cqh", "cqi", "cqb", "cqmin", "cqmax",
	"cm", "mm", "q", "in", "pt", "pc",
}

func isZero(c component) bool {
	if c.tt != tcss.NumberToken {
		return false
	}
	return strings.Trim(strings.TrimLeft(c.data, "+-"), "0.") == ""
}

func isLength(c component) bool {
	switch {
	case isMath(c), isZero(c):
		return true
	case c.tt == tcss.DimensionToken:
		return slices.Contains(lengthUnits, unit(c))
	}
	return false
}

func isPercentage(c component) bool {
	return c.tt == tcss.PercentageToken || isMath(c)
}

func isNumber(c component) bool {
	return c.tt == tcss.NumberToken || isMath(c)
}

func isInteger(c component) bool {
	if isMath(c) {
		return true
	}
	return c.tt == tcss.NumberToken && !strings.ContainsAny(c.data, ".eE")
}

func isAngle(c component) bool {
	switch {
	case isMath(c), isZero(c):
		return true
	case c.tt == tcss.DimensionToken:
		return slices.Contains([]string{"deg", "rad", "grad", "turn"}, unit(c))
	}
	return false
}

func isTime(c component) bool {
	if isMath(c) {
		return true
	}
	return c.tt == tcss.DimensionToken && slices.Contains([]string{"s", "ms"}, unit(c))
}

var colorFunctions = []string{
	"rgb", "rgba", "hsl", "hsla", "hwb", "lab", "lch", "oklab", "oklch",
	"color", "color-mix", "light-dark", "var",
}

func isColor(c component) bool {
	switch c.tt {
	case tcss.HashToken:
		switch len(c.data) - 1 {
		case 3, 4, 6, 8:
			for _, r := range c.data[1:] {
				if !isHex(r) {
					return false
				}
			}
			return true
		}
		return false
	case tcss.FunctionToken:
		return slices.Contains(colorFunctions, c.fn)
	case tcss.IdentToken:
		return isNamedColor(strings.ToLower(c.data))
	}
	return false
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isURL(c component) bool {
	return c.tt == tcss.URLToken || (c.tt == tcss.FunctionToken && c.fn == "url")
}

var imageFunctions = []string{
	"linear-gradient", "radial-gradient", "conic-gradient",
	"repeating-linear-gradient", "repeating-radial-gradient", "repeating-conic-gradient",
	"image", "image-set", "cross-fade", "element", "paint",
}

func isImage(c component) bool {
	if isURL(c) {
		return true
	}
	if c.tt == tcss.FunctionToken {
		return slices.Contains(imageFunctions, c.fn)
	}
	return c.tt == tcss.IdentToken && strings.EqualFold(c.data, "none")
}

var positionKeywords = []string{"left", "right", "top", "bottom", "center"}

func isPosition(comps []component) bool {
	if len(comps) > 4 {
		return false
	}
	for _, c := range comps {
		if c.tt == tcss.IdentToken && slices.Contains(positionKeywords, strings.ToLower(c.data)) {
			continue
		}
		if isLength(c) || isPercentage(c) {
			continue
		}
		return false
	}
	return true
}

func isRatio(comps []component) bool {
	switch len(comps) {
	case 1:
		return isNumber(comps[0])
	case 3:
		return isNumber(comps[0]) &&
			comps[1].tt == tcss.DelimToken && comps[1].data == "/" &&
			isNumber(comps[2])
	}
	return false
}

func isFamilyName(comps []component) bool {
	expectName := true
	for _, c := range comps {
		switch {
		case c.tt == tcss.CommaToken:
			if expectName {
				return false
			}
			expectName = true
		case c.tt == tcss.StringToken:
			expectName = false
		case c.tt == tcss.IdentToken:
			// multi-word unquoted names are several idents in a row
			expectName = false
		default:
			return false
		}
	}
	return !expectName
}

func isLineWidth(c component) bool {
	if c.tt == tcss.IdentToken {
		return slices.Contains([]string{"thin", "medium", "thick"}, strings.ToLower(c.data))
	}
	return isLength(c)
}
