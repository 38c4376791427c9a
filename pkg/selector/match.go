package selector

import (
	"strings"

	"formdom/pkg/html"
)

// Matches returns true if the node matches the complex selector.
func Matches(node *html.Node, sel Selector) bool {
	if node.Type != html.ElementNode {
		return false
	}
	if len(sel.Parts) == 0 {
		return false
	}
	// Start matching from the rightmost part (the target element)
	return matchesCompound(node, sel, len(sel.Parts)-1)
}

// matchesCompound checks the node against the part at partIndex and all
// ancestor requirements to its left.
func matchesCompound(node *html.Node, sel Selector, partIndex int) bool {
	if !matchesPart(node, sel.Parts[partIndex]) {
		return false
	}
	if partIndex == 0 {
		return true
	}

	switch sel.Combinators[partIndex-1] {
	case Descendant:
		for anc := node.Parent; anc != nil; anc = anc.Parent {
			if anc.Type == html.ElementNode && anc.TagName != "document" {
				if matchesCompound(anc, sel, partIndex-1) {
					return true
				}
			}
		}
		return false
	case Child:
		if node.Parent != nil && node.Parent.TagName != "document" {
			return matchesCompound(node.Parent, sel, partIndex-1)
		}
		return false
	}
	return false
}

func matchesPart(node *html.Node, part Part) bool {
	if part.Element != "" && part.Element != "*" {
		if node.TagName != part.Element {
			return false
		}
	}

	if part.ID != "" {
		if id, ok := node.GetAttribute("id"); !ok || id != part.ID {
			return false
		}
	}

	if len(part.Classes) > 0 {
		classAttr, ok := node.GetAttribute("class")
		if !ok {
			return false
		}
		nodeClasses := strings.Fields(classAttr)
		for _, required := range part.Classes {
			found := false
			for _, c := range nodeClasses {
				if c == required {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	for _, attrSel := range part.Attributes {
		if !matchesAttribute(node, attrSel) {
			return false
		}
	}

	for _, pc := range part.PseudoClasses {
		if !matchesPseudoClass(node, pc) {
			return false
		}
	}

	return true
}

// matchesPseudoClass answers the form-state pseudo-classes from the
// node's effective state. Dynamic interaction pseudo-classes never
// match here; unknown pseudo-classes never match.
func matchesPseudoClass(node *html.Node, pc string) bool {
	switch pc {
	case "disabled":
		return node.IsFormAssociated() && node.DisabledState()
	case "enabled":
		return node.IsFormAssociated() && node.EnabledState()
	default:
		return false
	}
}

func matchesAttribute(node *html.Node, attr AttributeSelector) bool {
	value, ok := node.GetAttribute(attr.Name)
	if !ok {
		return false
	}

	switch attr.Operator {
	case "":
		// Existence test only
		return true
	case "=":
		return value == attr.Value
	case "^=":
		return strings.HasPrefix(value, attr.Value)
	case "$=":
		return strings.HasSuffix(value, attr.Value)
	case "*=":
		return strings.Contains(value, attr.Value)
	case "~=":
		for _, word := range strings.Fields(value) {
			if word == attr.Value {
				return true
			}
		}
		return false
	case "|=":
		return value == attr.Value || strings.HasPrefix(value, attr.Value+"-")
	}
	return false
}

// MatchesAny reports whether node matches any selector in a
// comma-separated group.
func MatchesAny(node *html.Node, group string) (bool, error) {
	sels, err := parseGroup(group)
	if err != nil {
		return false, err
	}
	for _, sel := range sels {
		if Matches(node, sel) {
			return true, nil
		}
	}
	return false, nil
}

// Query returns the first element under root (root excluded) matching
// any selector in the comma-separated group, or nil.
func Query(root *html.Node, group string) (*html.Node, error) {
	sels, err := parseGroup(group)
	if err != nil {
		return nil, err
	}
	var result *html.Node
	html.Walk(root, func(n *html.Node) bool {
		if n == root {
			return false
		}
		for _, sel := range sels {
			if Matches(n, sel) {
				result = n
				return true
			}
		}
		return false
	})
	return result, nil
}

// QueryAll returns every element under root (root excluded) matching
// any selector in the comma-separated group, in tree order.
func QueryAll(root *html.Node, group string) ([]*html.Node, error) {
	sels, err := parseGroup(group)
	if err != nil {
		return nil, err
	}
	var results []*html.Node
	html.Walk(root, func(n *html.Node) bool {
		if n == root {
			return false
		}
		for _, sel := range sels {
			if Matches(n, sel) {
				results = append(results, n)
				break
			}
		}
		return false
	})
	return results, nil
}

func parseGroup(group string) ([]Selector, error) {
	var sels []Selector
	for _, raw := range SplitGroup(group) {
		sel, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
	}
	return sels, nil
}
