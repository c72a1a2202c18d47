// Package extract finds candidate strings in source text. Extraction is
// deliberately permissive: anything candidate-shaped is returned and the
// engine decides what matches.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind selects the scanner for a source.
type Kind string

const (
	KindHTML    Kind = "html"
	KindECMA    Kind = "ecma"
	KindUnknown Kind = "unknown"
)

// ParseKind maps a name to a Kind. "" is KindUnknown.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "", "unknown":
		return KindUnknown, nil
	case "html":
		return KindHTML, nil
	case "ecma", "js", "javascript":
		return KindECMA, nil
	}
	return KindUnknown, fmt.Errorf("unknown source kind %q", name)
}

var extensions = map[string]Kind{
	".html":   KindHTML,
	".htm":    KindHTML,
	".vue":    KindHTML,
	".svelte": KindHTML,
	".astro":  KindHTML,
	".js":     KindECMA,
	".mjs":    KindECMA,
	".cjs":    KindECMA,
	".jsx":    KindECMA,
	".ts":     KindECMA,
	".mts":    KindECMA,
	".tsx":    KindECMA,
}

// KindForPath picks a Kind from the file extension.
func KindForPath(path string) Kind {
	if k, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return k
	}
	return KindUnknown
}

// Extract returns the distinct candidates in src, in first-seen order.
func Extract(kind Kind, src string) []string {
	s := newSet()
	switch kind {
	case KindHTML:
		html(src, s)
	case KindECMA:
		ecma(src, s)
	default:
		unknown(src, s)
	}
	return s.items
}

// set keeps first-seen order.
type set struct {
	seen  map[string]struct{}
	items []string
}

func newSet() *set {
	return &set{seen: make(map[string]struct{})}
}

func (s *set) add(candidate string) {
	if !plausible(candidate) {
		return
	}
	if _, ok := s.seen[candidate]; ok {
		return
	}
	s.seen[candidate] = struct{}{}
	s.items = append(s.items, candidate)
}

// fields adds every whitespace-separated word of text.
func (s *set) fields(text string) {
	for _, f := range strings.Fields(text) {
		s.add(f)
	}
}

const maxCandidate = 512

// plausible filters out words that cannot be candidates: no letter, a
// leading character no candidate starts with, or unbalanced brackets.
func plausible(s string) bool {
	if s == "" || len(s) > maxCandidate {
		return false
	}
	switch c := s[0]; {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
	case c == '-', c == '!', c == '[', c == '@':
	default:
		return false
	}
	if strings.HasSuffix(s, ":") || strings.HasSuffix(s, "-") {
		return false
	}

	var (
		letter bool
		square int
		paren  int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '[':
			square++
		case c == ']':
			square--
		case c == '(':
			paren++
		case c == ')':
			paren--
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
			letter = true
		case square == 0 && (c == '"' || c == '\'' || c == '`' || c == '<' || c == '>' || c == '{' || c == '}' || c == '=' || c == ';' || c == '\\'):
			return false
		}
		if square < 0 || paren < 0 {
			return false
		}
	}
	return letter && square == 0 && paren == 0
}
