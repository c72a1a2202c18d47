package tw

import (
	"github.com/agiangrant/tailcss/diag"
)

type lexState int

const (
	stSegmentStart lexState = iota
	stName
	stBracket
	stAfterBracket
	stModifierStart
	stModifierName
	stModifierBracket
	stAfterModifier
	stImportantEnd
)

// segment records where the pieces of one ":"-separated segment sit in the
// raw candidate. Offsets are -1 when a piece is absent.
type segment struct {
	start            int
	importantPrefix  bool
	importantSuffix  bool
	negative         bool
	nameStart        int
	nameEnd          int
	arbStart, arbEnd int
	modStart, modEnd int
	wholeArbitrary   bool
}

func newSegment(start int) segment {
	return segment{
		start:     start,
		nameStart: -1, nameEnd: -1,
		arbStart: -1, arbEnd: -1,
		modStart: -1, modEnd: -1,
	}
}

// isNameChar is the character class allowed outside brackets, besides "-".
func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '%', c == '#', c == '@':
		return true
	}
	return false
}

// lexStrict is the finite-automaton lexer. It walks raw once, byte by
// byte, and fails on the first transition the grammar does not allow.
func lexStrict(raw string) (parts, error) {
	fail := func(format string, args ...any) (parts, error) {
		return parts{}, diag.Fail(raw, diag.KindParseFailure, format, args...)
	}

	var (
		variants []string
		seg      = newSegment(0)
		state    = stSegmentStart
		square   int
		paren    int
	)

	endVariant := func(i int) error {
		if seg.importantPrefix || seg.importantSuffix || seg.negative {
			return diag.Fail(raw, diag.KindParseFailure, "variant %q cannot carry ! or -", raw[seg.start:i])
		}
		variants = append(variants, raw[seg.start:i])
		seg = newSegment(i + 1)
		state = stSegmentStart
		return nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch state {
		case stSegmentStart:
			switch {
			case c == '!':
				if seg.importantPrefix || seg.negative {
					return fail("misplaced ! at %d", i)
				}
				seg.importantPrefix = true
			case c == '-':
				if seg.negative {
					return fail("doubled - at %d", i)
				}
				seg.negative = true
			case c == '[':
				if seg.negative {
					return fail("missing utility key before [")
				}
				seg.wholeArbitrary = true
				seg.arbStart = i + 1
				square, paren = 1, 0
				state = stBracket
			case c == ':':
				return fail("empty variant at %d", i)
			case isNameChar(c):
				seg.nameStart = i
				state = stName
			default:
				return fail("unexpected %q at %d", c, i)
			}

		case stName:
			switch {
			case isNameChar(c):
			case c == '-':
				if raw[i-1] == '-' {
					return fail("doubled - at %d", i)
				}
			case c == '[':
				if raw[i-1] != '-' {
					return fail("[ must follow - at %d", i)
				}
				seg.nameEnd = i - 1
				seg.arbStart = i + 1
				square, paren = 1, 0
				state = stBracket
			case c == '/', c == ':', c == '!':
				if raw[i-1] == '-' {
					return fail("trailing - at %d", i-1)
				}
				seg.nameEnd = i
				switch c {
				case '/':
					state = stModifierStart
				case ':':
					if err := endVariant(i); err != nil {
						return parts{}, err
					}
				case '!':
					seg.importantSuffix = true
					state = stImportantEnd
				}
			default:
				return fail("unexpected %q at %d", c, i)
			}

		case stBracket, stModifierBracket:
			switch c {
			case '[':
				square++
			case '(':
				paren++
			case ')':
				paren--
				if paren < 0 {
					return fail("unbalanced ) at %d", i)
				}
			case ']':
				square--
				if square > 0 {
					continue
				}
				if paren != 0 {
					return fail("unbalanced ( before %d", i)
				}
				if state == stBracket {
					if i == seg.arbStart {
						return fail("empty brackets at %d", i)
					}
					seg.arbEnd = i
					state = stAfterBracket
				} else {
					if i == seg.modStart+1 {
						return fail("empty brackets at %d", i)
					}
					seg.modEnd = i + 1
					state = stAfterModifier
				}
			}

		case stAfterBracket, stAfterModifier:
			switch c {
			case ':':
				if err := endVariant(i); err != nil {
					return parts{}, err
				}
			case '/':
				if state == stAfterModifier {
					return fail("second modifier at %d", i)
				}
				state = stModifierStart
			case '!':
				seg.importantSuffix = true
				state = stImportantEnd
			default:
				return fail("unexpected %q after ] at %d", c, i)
			}

		case stModifierStart:
			switch {
			case c == '[':
				seg.modStart = i
				square, paren = 1, 0
				state = stModifierBracket
			case isNameChar(c):
				seg.modStart = i
				state = stModifierName
			default:
				return fail("empty modifier at %d", i)
			}

		case stModifierName:
			switch {
			case isNameChar(c), c == '-':
			case c == ':':
				seg.modEnd = i
				if err := endVariant(i); err != nil {
					return parts{}, err
				}
			case c == '!':
				seg.modEnd = i
				seg.importantSuffix = true
				state = stImportantEnd
			default:
				return fail("unexpected %q in modifier at %d", c, i)
			}

		case stImportantEnd:
			return fail("unexpected %q after ! at %d", c, i)
		}
	}

	switch state {
	case stSegmentStart:
		return fail("empty utility")
	case stBracket, stModifierBracket:
		return fail("unbalanced brackets")
	case stModifierStart:
		return fail("empty modifier")
	case stName:
		if raw[len(raw)-1] == '-' {
			return fail("trailing -")
		}
		seg.nameEnd = len(raw)
	case stModifierName:
		seg.modEnd = len(raw)
	}
	if seg.importantPrefix && seg.importantSuffix {
		return fail("! on both ends")
	}

	pt := parts{
		variants:  variants,
		important: seg.importantPrefix || seg.importantSuffix,
	}
	if seg.wholeArbitrary {
		pt.property = true
	}
	if seg.nameStart >= 0 {
		pt.named = raw[seg.nameStart:seg.nameEnd]
	}
	if seg.negative {
		pt.named = "-" + pt.named
	}
	if seg.arbStart >= 0 {
		pt.hasArbitrary = true
		pt.arbitrary = raw[seg.arbStart:seg.arbEnd]
	}
	if seg.modStart >= 0 {
		pt.modifier = raw[seg.modStart:seg.modEnd]
	}
	return pt, nil
}
