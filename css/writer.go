package css

import (
	"strings"
)

// Writer serializes rules. The zero value writes minified CSS with one
// top-level rule per line; pretty mode indents and spaces like a
// hand-written stylesheet.
type Writer struct {
	pretty bool
	b      strings.Builder
	n      int
}

// NewWriter returns a Writer in the requested mode.
func NewWriter(pretty bool) *Writer {
	return &Writer{pretty: pretty}
}

// WriteRule appends a top-level rule.
func (w *Writer) WriteRule(r Rule) {
	if len(r.Decls) == 0 && len(r.Rules) == 0 {
		return
	}
	if w.n > 0 && w.pretty {
		w.b.WriteByte('\n')
	}
	w.writeRule(r, 0)
	w.b.WriteByte('\n')
	w.n++
}

// WriteFragment appends the fragment's primary and nested rules inside
// its at-rule wrappers. Globals are left to the caller, which deduplicates
// them across fragments.
func (w *Writer) WriteFragment(f *Fragment) {
	rules := append([]Rule{f.Rule()}, nestedFor(f)...)
	for _, r := range f.Wrap(rules...) {
		w.WriteRule(r)
	}
}

func nestedFor(f *Fragment) []Rule {
	out := make([]Rule, 0, len(f.Nested))
	for _, r := range f.Nested {
		out = append(out, Rule{
			Selector: ApplyTemplate(r.Selector, f.Selector),
			Decls:    r.Decls,
			Rules:    r.Rules,
		})
	}
	return out
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.b.String()
}

// Len is the number of top-level rules written.
func (w *Writer) Len() int {
	return w.n
}

func (w *Writer) writeRule(r Rule, depth int) {
	if w.pretty {
		w.indent(depth)
		w.b.WriteString(r.Selector)
		w.b.WriteString(" {\n")
		for _, d := range r.Decls {
			w.indent(depth + 1)
			w.writeDecl(d)
			w.b.WriteString(";\n")
		}
		for i, nested := range r.Rules {
			if i > 0 || len(r.Decls) > 0 {
				w.b.WriteByte('\n')
			}
			w.writeRule(nested, depth+1)
			w.b.WriteByte('\n')
		}
		w.indent(depth)
		w.b.WriteByte('}')
		return
	}

	w.b.WriteString(r.Selector)
	w.b.WriteByte('{')
	for i, d := range r.Decls {
		if i > 0 {
			w.b.WriteByte(';')
		}
		w.writeDecl(d)
	}
	for i, nested := range r.Rules {
		if i == 0 && len(r.Decls) > 0 {
			w.b.WriteByte(';')
		}
		w.writeRule(nested, depth+1)
	}
	w.b.WriteByte('}')
}

func (w *Writer) writeDecl(d Decl) {
	w.b.WriteString(d.Property)
	w.b.WriteByte(':')
	if w.pretty {
		w.b.WriteByte(' ')
	}
	w.b.WriteString(d.Value)
	if d.Important {
		if w.pretty {
			w.b.WriteByte(' ')
		}
		w.b.WriteString("!important")
	}
}

func (w *Writer) indent(depth int) {
	for range depth {
		w.b.WriteString("  ")
	}
}
