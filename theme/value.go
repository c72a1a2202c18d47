// Package theme holds the design tokens utilities resolve against: a tree
// of category mappings ("colors", "spacing", ...) ending in string leaves.
package theme

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Value is a node of the theme tree: either a string leaf or a mapping.
type Value struct {
	leaf     string
	children map[string]*Value
}

// String returns a leaf node.
func String(s string) *Value {
	return &Value{leaf: s}
}

// Map returns a mapping node. A nil map yields an empty mapping.
func Map(children map[string]*Value) *Value {
	if children == nil {
		children = map[string]*Value{}
	}
	return &Value{children: children}
}

// Strings builds a mapping whose children are all leaves.
func Strings(m map[string]string) *Value {
	children := make(map[string]*Value, len(m))
	for k, v := range m {
		children[k] = String(v)
	}
	return Map(children)
}

// IsLeaf reports whether v is a terminal string.
func (v *Value) IsLeaf() bool {
	return v != nil && v.children == nil
}

// Leaf returns the terminal string ("" for mappings).
func (v *Value) Leaf() string {
	if v == nil {
		return ""
	}
	return v.leaf
}

// Child returns the named child of a mapping.
func (v *Value) Child(key string) (*Value, bool) {
	if v == nil || v.children == nil {
		return nil, false
	}
	c, ok := v.children[key]
	return c, ok
}

// Keys returns the child keys in sorted order.
func (v *Value) Keys() []string {
	if v == nil || v.children == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(v.children))
}

// Len returns the number of children of a mapping.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.children)
}

// Clone deep-copies v.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	if v.IsLeaf() {
		return String(v.leaf)
	}
	children := make(map[string]*Value, len(v.children))
	for k, c := range v.children {
		children[k] = c.Clone()
	}
	return Map(children)
}

// FromAny converts a decoded configuration tree (JSON, YAML or TOML) into a
// theme Value. Numbers are formatted canonically and lists are joined with
// ", " so font stacks can be written as arrays.
func FromAny(raw any) (*Value, error) {
	switch x := raw.(type) {
	case nil:
		return nil, fmt.Errorf("theme value is null")
	case *Value:
		return x.Clone(), nil
	case string:
		return String(x), nil
	case bool:
		return String(strconv.FormatBool(x)), nil
	case int:
		return String(strconv.Itoa(x)), nil
	case int64:
		return String(strconv.FormatInt(x, 10)), nil
	case uint64:
		return String(strconv.FormatUint(x, 10)), nil
	case float64:
		return String(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case json.Number:
		return String(x.String()), nil
	case []any:
		parts := make([]string, 0, len(x))
		for i, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if !v.IsLeaf() {
				return nil, fmt.Errorf("[%d]: lists may only contain scalars", i)
			}
			parts = append(parts, v.leaf)
		}
		return String(strings.Join(parts, ", ")), nil
	case map[string]any:
		children := make(map[string]*Value, len(x))
		for k, item := range x {
			v, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			children[k] = v
		}
		return Map(children), nil
	case map[string]string:
		return Strings(x), nil
	default:
		return nil, fmt.Errorf("unsupported theme value of type %T", raw)
	}
}

// UnmarshalJSON accepts strings, numbers, booleans, arrays of scalars and
// nested objects.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// MarshalJSON writes leaves as strings and mappings as objects.
func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

// ToAny converts v back into plain maps and strings.
func (v *Value) ToAny() any {
	if v == nil {
		return nil
	}
	if v.IsLeaf() {
		return v.leaf
	}
	out := make(map[string]any, len(v.children))
	for k, c := range v.children {
		out[k] = c.ToAny()
	}
	return out
}

// Merge deep-merges overlay over base and returns a new tree. Leaves in
// overlay replace leaves in base, mappings merge recursively, and a change
// of shape (leaf vs mapping) is a replacement. Neither input is modified.
func Merge(base, overlay *Value) *Value {
	switch {
	case overlay == nil:
		return base.Clone()
	case base == nil, overlay.IsLeaf(), base.IsLeaf():
		return overlay.Clone()
	}

	merged := base.Clone()
	for k, c := range overlay.children {
		merged.children[k] = Merge(merged.children[k], c)
	}
	return merged
}
