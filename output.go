package tailcss

import (
	"strings"

	"github.com/agiangrant/tailcss/css"
	"github.com/agiangrant/tailcss/order"
)

// placed is a resolved fragment with its discovery index.
type placed struct {
	fragment *css.Fragment
	index    int
}

var groupOrder = []css.Group{css.GroupTransform, css.GroupFilter, css.GroupBackdropFilter}

// render writes the CSS for candidates, which must all be cached.
// indexes are their discovery positions. Output is:
//
//	ordered utility rules
//	one composed rule per group and at-rule context
//	global rules, each once
func render(s *session, candidates []string, indexes []int) string {
	items := make([]placed, 0, len(candidates))
	for i, c := range candidates {
		if e := s.lookup(c); e.fragment != nil {
			items = append(items, placed{fragment: e.fragment, index: indexes[i]})
		}
	}
	order.Sort(items, func(p placed) order.Item {
		return order.Item{Variants: p.fragment.Variants, Key: p.fragment.Ordering, Index: p.index}
	})

	w := css.NewWriter(s.pretty)
	for _, p := range items {
		w.WriteFragment(p.fragment)
	}
	writeGroups(w, items, s.pretty)
	writeGlobals(w, items)
	return w.String()
}

// writeGroups emits, per group, one rule per at-rule context that lists
// every member selector and declares the composed property.
func writeGroups(w *css.Writer, items []placed, pretty bool) {
	sep := ","
	if pretty {
		sep = ",\n"
	}
	for _, g := range groupOrder {
		var (
			contexts  []string
			selectors = make(map[string][]string)
			first     = make(map[string]*css.Fragment)
		)
		for _, p := range items {
			f := p.fragment
			if f.Group != g {
				continue
			}
			key := f.AtRuleKey()
			if _, ok := first[key]; !ok {
				first[key] = f
				contexts = append(contexts, key)
			}
			selectors[key] = append(selectors[key], f.Selector)
		}
		for _, key := range contexts {
			rule := css.Rule{Selector: strings.Join(selectors[key], sep), Decls: g.Decls()}
			for _, r := range first[key].Wrap(rule) {
				w.WriteRule(r)
			}
		}
	}
}

// writeGlobals emits each distinct global rule once, in first-seen order.
func writeGlobals(w *css.Writer, items []placed) {
	seen := make(map[string]struct{})
	for _, p := range items {
		for _, r := range p.fragment.Globals {
			k := ruleKey(r)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			w.WriteRule(r)
		}
	}
}

func ruleKey(r css.Rule) string {
	kw := css.NewWriter(false)
	kw.WriteRule(r)
	return kw.String()
}
