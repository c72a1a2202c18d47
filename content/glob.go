package content

import (
	"fmt"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern is one content glob in doublestar syntax: "**" matches any
// number of directories and "{html,js}" alternates. A leading "!" excludes.
type Pattern struct {
	raw    string
	glob   string
	negate bool
}

// ParsePattern validates raw.
func ParsePattern(raw string) (Pattern, error) {
	p := Pattern{raw: raw}
	body := raw
	if strings.HasPrefix(body, "!") {
		p.negate = true
		body = body[1:]
	}
	body = path.Clean(strings.ReplaceAll(body, "\\", "/"))
	p.glob = strings.TrimPrefix(body, "./")
	if !doublestar.ValidatePattern(p.glob) {
		return Pattern{}, fmt.Errorf("invalid glob %q", raw)
	}
	return p, nil
}

func (p Pattern) String() string {
	return p.raw
}

// Base is the directory prefix without wildcards, where a walk starts.
//
//	"src/**/*.html" → "src"
//	"*.js"          → "."
func (p Pattern) Base() string {
	base, _ := doublestar.SplitPattern(p.glob)
	return base
}

// Match reports whether the slash-separated relative path name matches.
func (p Pattern) Match(name string) bool {
	ok, err := doublestar.Match(p.glob, path.Clean(name))
	return err == nil && ok
}

// Set is an ordered include/exclude list. A path is included when some
// include pattern matches and no exclude pattern does.
type Set []Pattern

// ParseSet parses every pattern.
func ParseSet(raw []string) (Set, error) {
	set := make(Set, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePattern(r)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// Match applies the set to name.
func (s Set) Match(name string) bool {
	included := false
	for _, p := range s {
		if !p.Match(name) {
			continue
		}
		if p.negate {
			return false
		}
		included = true
	}
	return included
}

// Bases lists the distinct walk roots of the include patterns.
func (s Set) Bases() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s {
		if p.negate {
			continue
		}
		b := p.Base()
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}
