package extract

import "strings"

// unknown splits src into candidate-shaped runs. Outside brackets a run
// ends at any byte no candidate contains; inside brackets only whitespace
// or a quote ends it, and such a run is dropped.
func unknown(src string, s *set) {
	start, square := -1, 0
	flush := func(end int) {
		if start >= 0 {
			s.add(strings.TrimRight(src[start:end], ".,"))
		}
		start = -1
	}

	for i := 0; i < len(src); i++ {
		c := src[i]
		if square > 0 {
			switch c {
			case '[':
				square++
			case ']':
				square--
			case ' ', '\t', '\n', '\r', '"', '\'', '`':
				start, square = -1, 0
			}
			continue
		}
		if !candidateByte(c) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		if c == '[' {
			square++
		}
	}
	flush(len(src))
}

func candidateByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-_:./%#!@[]", c) >= 0
}
