package extract

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	thtml "github.com/tdewolff/parse/v2/html"
)

// html reads class attributes and inline scripts. Bound attributes
// (":class", "v-bind:class", "class={...}") hold expressions and go through
// the script scanner; "class:flex" style directives name a candidate.
func html(src string, s *set) {
	l := thtml.NewLexer(parse.NewInputString(src))
	script := false
	for {
		tt, data := l.Next()
		switch tt {
		case thtml.ErrorToken:
			if l.Err() != io.EOF {
				unknown(src, s)
			}
			return
		case thtml.StartTagToken:
			script = strings.EqualFold(string(l.Text()), "script")
		case thtml.EndTagToken:
			script = false
		case thtml.AttributeToken:
			attribute(string(l.Text()), unquote(string(l.AttrVal())), s)
		case thtml.TextToken:
			if script {
				ecma(string(data), s)
			}
		}
	}
}

func attribute(name, value string, s *set) {
	lower := strings.ToLower(name)
	switch {
	case lower == "class" || lower == "classname":
		if strings.HasPrefix(strings.TrimSpace(value), "{") {
			ecma(value, s)
			return
		}
		s.fields(value)
	case isBinding(lower):
		ecma(value, s)
	case strings.HasPrefix(lower, "class:") && lower != "class:list":
		s.add(name[len("class:"):])
	case lower == "class:list":
		ecma(value, s)
	}
}

func isBinding(name string) bool {
	for _, p := range []string{":", "v-bind:", "x-bind:", "["} {
		rest, ok := strings.CutPrefix(name, p)
		if !ok {
			continue
		}
		rest = strings.TrimSuffix(rest, "]")
		if rest == "class" || rest == "classname" || rest == "ngclass" {
			return true
		}
	}
	return false
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
