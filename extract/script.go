package extract

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

var escapes = strings.NewReplacer(`\n`, " ", `\t`, " ", `\r`, " ")

// ecma reads string and template literals. Input the lexer cannot
// tokenize (JSX text with apostrophes, mostly) falls back to the generic
// scanner for the whole source.
func ecma(src string, s *set) {
	l := js.NewLexer(parse.NewInputString(src))
	for {
		tt, data := l.Next()
		switch tt {
		case js.ErrorToken:
			if l.Err() != io.EOF {
				unknown(src, s)
			}
			return
		case js.StringToken:
			s.fields(escapes.Replace(unquote(string(data))))
		case js.TemplateToken, js.TemplateStartToken, js.TemplateMiddleToken, js.TemplateEndToken:
			s.fields(escapes.Replace(templateText(string(data))))
		}
	}
}

// templateText strips the delimiters of a template literal chunk.
//
//	"`a ${"  → "a "
//	"} b`"   → " b"
func templateText(chunk string) string {
	chunk = strings.TrimPrefix(chunk, "`")
	chunk = strings.TrimPrefix(chunk, "}")
	chunk = strings.TrimSuffix(chunk, "${")
	return strings.TrimSuffix(chunk, "`")
}
