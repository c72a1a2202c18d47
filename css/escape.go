package css

import (
	"fmt"
	"strings"
)

// EscapeClass serializes name as a CSS identifier so it can follow "." in a
// selector.
//
//	"hover:bg-blue-500/50" → `hover\:bg-blue-500\/50`
//	"2xl:flex"             → `\32 xl\:flex`
//	"w-[33%]"              → `w-\[33\%\]`
func EscapeClass(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 8)

	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r <= 0x1f || r == 0x7f:
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r >= '0' && r <= '9':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 1 && r >= '0' && r <= '9' && runes[0] == '-':
			fmt.Fprintf(&b, "\\%x ", r)
		case i == 0 && r == '-' && len(runes) == 1:
			b.WriteString(`\-`)
		case r >= 0x80 || r == '-' || r == '_' ||
			(r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ClassSelector returns ".<escaped name>".
func ClassSelector(name string) string {
	return "." + EscapeClass(name)
}

// ApplyTemplate replaces every "&" in template with selector.
//
//	ApplyTemplate("&:hover", ".btn")                       → ".btn:hover"
//	ApplyTemplate("&:where(& > :not(:last-child))", ".x") → ".x:where(.x > :not(:last-child))"
func ApplyTemplate(template, selector string) string {
	if !strings.Contains(template, "&") {
		return template
	}
	return strings.ReplaceAll(template, "&", selector)
}
