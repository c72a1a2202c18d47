package theme

import (
	"fmt"
	"strings"

	"github.com/agiangrant/tailcss/diag"
)

// DefaultKey is the child consulted when a path ends on a mapping, and the
// key a value-less candidate such as "rounded" resolves.
const DefaultKey = "DEFAULT"

// Store answers theme lookups for one configuration snapshot. It is
// read-only after construction and safe for concurrent use.
type Store struct {
	root *Value
}

// NewStore wraps root. A nil root is an empty theme.
func NewStore(root *Value) *Store {
	if root == nil {
		root = Map(nil)
	}
	return &Store{root: root}
}

// Root returns the theme tree.
func (s *Store) Root() *Value {
	return s.root
}

// Lookup walks a dotted path ("colors.blue") and returns the node found.
func (s *Store) Lookup(path string) (*Value, bool) {
	node := s.root
	if path == "" {
		return node, true
	}
	for _, seg := range strings.Split(path, ".") {
		next, ok := node.Child(seg)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// Get resolves a dotted path to a terminal string, following DEFAULT when
// the path ends on a mapping.
func (s *Store) Get(path string) (string, bool) {
	node, ok := s.Lookup(path)
	if !ok {
		return "", false
	}
	return resolveIn(node, "")
}

// Resolve finds token under the category named by key.
//
//	Resolve("colors", "blue-500")  → colors["blue-500"] or colors.blue["500"]
//	Resolve("borderRadius", "")    → borderRadius.DEFAULT
//
// The error wraps diag.ErrThemeKeyNotFound.
func (s *Store) Resolve(key, token string) (string, error) {
	node, ok := s.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: no theme category %q", diag.ErrThemeKeyNotFound, key)
	}
	v, ok := resolveIn(node, token)
	if !ok {
		if token == "" {
			token = DefaultKey
		}
		return "", fmt.Errorf("%w: %s.%s", diag.ErrThemeKeyNotFound, key, token)
	}
	return v, nil
}

// ResolveChain tries each key in order and returns the first hit.
func (s *Store) ResolveChain(keys []string, token string) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: utility declares no theme key for %q", diag.ErrThemeKeyNotFound, token)
	}
	var firstErr error
	for _, key := range keys {
		v, err := s.Resolve(key, token)
		if err == nil {
			return v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", firstErr
}

// resolveIn walks token through n. The whole remaining token is tried as a
// key first, then the longest "-" separated prefix, so both flat
// ("blue-500") and nested ("blue" → "500") palettes resolve.
func resolveIn(n *Value, token string) (string, bool) {
	if token == "" {
		if n.IsLeaf() {
			return n.leaf, true
		}
		if d, ok := n.Child(DefaultKey); ok && d.IsLeaf() {
			return d.leaf, true
		}
		return "", false
	}
	if n.IsLeaf() {
		return "", false
	}

	if c, ok := n.Child(token); ok {
		if v, ok := resolveIn(c, ""); ok {
			return v, true
		}
	}

	for i := strings.LastIndexByte(token, '-'); i > 0; i = strings.LastIndexByte(token[:i], '-') {
		c, ok := n.Child(token[:i])
		if !ok {
			continue
		}
		if v, ok := resolveIn(c, token[i+1:]); ok {
			return v, true
		}
	}
	return "", false
}
