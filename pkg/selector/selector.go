// Package selector implements a small CSS selector subset for locating
// elements in a document tree: tag, #id, .class, attribute selectors,
// descendant and child combinators, and selector groups. The :enabled
// and :disabled pseudo-classes match against an element's effective
// form state, so a control disabled through an enclosing fieldset
// matches :disabled even without a disabled attribute of its own.
package selector

import (
	"fmt"
	"strings"
)

// Selector is a parsed complex selector: compound parts joined by
// combinators (len(Combinators) == len(Parts)-1).
type Selector struct {
	Raw         string
	Parts       []Part
	Combinators []Combinator
}

// Part is one compound selector: everything that applies to a single
// element.
type Part struct {
	Element       string // tag name, or "" / "*" for any
	ID            string
	Classes       []string
	Attributes    []AttributeSelector
	PseudoClasses []string
}

// AttributeSelector is one [name], [name=value] or operator form.
type AttributeSelector struct {
	Name     string
	Operator string // "", "=", "^=", "$=", "*=", "~=", "|="
	Value    string
}

type Combinator int

const (
	Descendant Combinator = iota
	Child
)

// SplitGroup splits a comma-separated selector group into individual
// selectors.
func SplitGroup(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Parse parses a single complex selector (no commas).
func Parse(s string) (Selector, error) {
	sel := Selector{Raw: s}
	s = strings.TrimSpace(s)
	if s == "" {
		return sel, fmt.Errorf("empty selector")
	}

	tokens, err := splitCompound(s)
	if err != nil {
		return sel, err
	}
	for _, tok := range tokens {
		if tok == ">" {
			if len(sel.Parts) == 0 || len(sel.Combinators) >= len(sel.Parts) {
				return sel, fmt.Errorf("misplaced '>' in %q", s)
			}
			sel.Combinators[len(sel.Combinators)-1] = Child
			continue
		}
		part, err := parsePart(tok)
		if err != nil {
			return sel, err
		}
		if len(sel.Parts) > 0 {
			sel.Combinators = append(sel.Combinators, Descendant)
		}
		sel.Parts = append(sel.Parts, part)
	}
	if len(sel.Parts) == 0 {
		return sel, fmt.Errorf("no selector parts in %q", s)
	}
	return sel, nil
}

// splitCompound splits a selector into compound parts and ">" markers,
// keeping bracketed attribute selectors intact.
func splitCompound(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '[':
			depth++
			cur.WriteRune(r)
		case r == ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ']' in %q", s)
			}
			cur.WriteRune(r)
		case depth == 0 && (r == ' ' || r == '\t'):
			flush()
		case depth == 0 && r == '>':
			flush()
			tokens = append(tokens, ">")
		default:
			cur.WriteRune(r)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unterminated '[' in %q", s)
	}
	flush()
	return tokens, nil
}

// parsePart parses one compound selector like input.wide[name=q]:disabled.
func parsePart(s string) (Part, error) {
	var part Part
	i := 0
	readName := func() string {
		start := i
		for i < len(s) && isNameChar(s[i]) {
			i++
		}
		return s[start:i]
	}

	// Leading element name or universal selector
	if i < len(s) && (isNameChar(s[i]) || s[i] == '*') {
		if s[i] == '*' {
			i++
			part.Element = "*"
		} else {
			part.Element = strings.ToLower(readName())
		}
	}

	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			id := readName()
			if id == "" {
				return part, fmt.Errorf("empty id selector in %q", s)
			}
			part.ID = id
		case '.':
			i++
			cls := readName()
			if cls == "" {
				return part, fmt.Errorf("empty class selector in %q", s)
			}
			part.Classes = append(part.Classes, cls)
		case ':':
			i++
			pc := readName()
			if pc == "" {
				return part, fmt.Errorf("empty pseudo-class in %q", s)
			}
			part.PseudoClasses = append(part.PseudoClasses, strings.ToLower(pc))
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return part, fmt.Errorf("unterminated attribute selector in %q", s)
			}
			attr, err := parseAttributeSelector(s[i+1 : i+end])
			if err != nil {
				return part, err
			}
			part.Attributes = append(part.Attributes, attr)
			i += end + 1
		default:
			return part, fmt.Errorf("unexpected %q in selector %q", s[i], s)
		}
	}
	return part, nil
}

func parseAttributeSelector(s string) (AttributeSelector, error) {
	s = strings.TrimSpace(s)
	for _, op := range []string{"^=", "$=", "*=", "~=", "|=", "="} {
		if idx := strings.Index(s, op); idx >= 0 {
			name := strings.TrimSpace(s[:idx])
			value := strings.TrimSpace(s[idx+len(op):])
			value = strings.Trim(value, `"'`)
			if name == "" {
				return AttributeSelector{}, fmt.Errorf("empty attribute name in [%s]", s)
			}
			return AttributeSelector{Name: strings.ToLower(name), Operator: op, Value: value}, nil
		}
	}
	if s == "" {
		return AttributeSelector{}, fmt.Errorf("empty attribute selector")
	}
	return AttributeSelector{Name: strings.ToLower(s)}, nil
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
