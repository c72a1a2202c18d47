package css

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	tcss "github.com/tdewolff/parse/v2/css"
)

// ParseDeclarations parses inline declaration text such as
// "display: flex; gap: 1rem !important" into Decls, in order.
func ParseDeclarations(text string) ([]Decl, error) {
	p := tcss.NewParser(parse.NewInputString(text), true)

	var decls []Decl
	for {
		gt, _, data := p.Next()
		switch gt {
		case tcss.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("invalid declaration in %q: %w", text, err)
			}
			return decls, nil
		case tcss.DeclarationGrammar, tcss.CustomPropertyGrammar:
			value, important := joinValues(p.Values())
			if value == "" {
				return nil, fmt.Errorf("declaration %q in %q has no value", data, text)
			}
			decls = append(decls, Decl{
				Property:  string(data),
				Value:     value,
				Important: important,
			})
		}
	}
}

// joinValues renders declaration tokens back to text, splitting off a
// trailing "!important".
func joinValues(tokens []tcss.Token) (string, bool) {
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == tcss.WhitespaceToken {
		end--
	}

	important := false
	if end >= 2 &&
		tokens[end-1].TokenType == tcss.IdentToken &&
		bytes.EqualFold(tokens[end-1].Data, []byte("important")) &&
		tokens[end-2].TokenType == tcss.DelimToken && string(tokens[end-2].Data) == "!" {
		important = true
		end -= 2
	}

	var b strings.Builder
	for _, t := range tokens[:end] {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String()), important
}
