// Package html implements a mutable HTML document tree for form-state
// tracking: element nodes carry an effective enabled/disabled state that
// is kept consistent with their own attributes and with any enclosing
// disabled fieldset. All operations are synchronous and a tree must not
// be mutated concurrently.
package html

import (
	"sort"
	"strings"
)

type Node struct {
	Type       NodeType
	TagName    string
	Kind       ElementKind
	Attributes map[string]string
	Text       string
	Children   []*Node
	Parent     *Node

	// Effective state. Modelled as a complementary pair: for every
	// element subject to form semantics, disabled == !enabled.
	disabled bool
	enabled  bool

	// Owning form element, maintained by resolveFormAssociation.
	form *Node
}

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

type Document struct {
	Root    *Node
	Scripts []string // JavaScript from <script> tags
}

func NewDocument() *Document {
	return &Document{
		Root: &Node{
			Type:     ElementNode,
			TagName:  "document",
			Children: make([]*Node, 0),
			enabled:  true,
		},
	}
}

// NewElement creates a detached element node. Elements start in the
// enabled state.
func NewElement(tag string) *Node {
	tag = strings.ToLower(tag)
	return &Node{
		Type:       ElementNode,
		TagName:    tag,
		Kind:       KindForTag(tag),
		Attributes: make(map[string]string),
		Children:   make([]*Node, 0),
		enabled:    true,
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// DisabledState reports the element's effective disabled state: the
// combination of its own disabled attribute and any cascade from an
// enclosing fieldset.
func (n *Node) DisabledState() bool { return n.disabled }

// EnabledState is the complement of DisabledState.
func (n *Node) EnabledState() bool { return n.enabled }

// Form returns the element's owning form element, or nil.
func (n *Node) Form() *Node { return n.form }

// Root walks up the parent chain and returns the topmost node.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// ElementByID returns the first element under root (in tree order)
// whose id attribute equals id, or nil.
func ElementByID(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if v, ok := n.GetAttribute("id"); ok && v == id {
			found = n
			return true
		}
		return false
	})
	return found
}

// AddChild adds a child node, sets up the parent relationship, and
// re-derives form state for any controls in the attached subtree.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
	child.bindSubtree()
}

// AppendText creates a text node and adds it as a child
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	textNode := &Node{
		Type:   TextNode,
		Text:   text,
		Parent: n,
	}
	n.Children = append(n.Children, textNode)
}

// RemoveChild removes the given child from this node's children list,
// clears its parent pointer, and returns the removed child. Form
// controls in the detached subtree re-derive their state against what
// remains of their ancestor chain. Returns nil if child is not found.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.unbindSubtree()
			return child
		}
	}
	return nil
}

// InsertBefore inserts newChild before refChild in this node's children.
// If refChild is nil, appends newChild at the end.
// If newChild already has a parent, it is removed from that parent first.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}

	if refChild == nil {
		n.AddChild(newChild)
		return newChild
	}

	for i, c := range n.Children {
		if c == refChild {
			n.Children = append(n.Children, nil)
			copy(n.Children[i+1:], n.Children[i:])
			n.Children[i] = newChild
			newChild.Parent = n
			newChild.bindSubtree()
			return newChild
		}
	}

	// refChild not found — append
	n.AddChild(newChild)
	return newChild
}

// bindSubtree re-derives form-sensitive state after n was attached to a
// new parent. Each control's state is rebuilt from scratch: its own
// disabled attribute first, then the new ancestor chain. The reset
// matters for nodes that arrive carrying stale state, such as a clone
// of a cascade-disabled control attached under enabled ancestors.
func (n *Node) bindSubtree() {
	it := NewTreeIterator(n)
	for d := it.Next(); d != nil; d = it.Next() {
		if d.IsFormControl() {
			d.checkDisabledAttribute()
			d.checkAncestorsDisabledState()
		}
		if d.IsFormAssociated() {
			d.resolveFormAssociation()
		}
	}
}

// unbindSubtree re-derives form-sensitive state after n was detached.
// Ancestors inside the detached subtree still count: removing a
// disabled fieldset does not enable the controls it carries with it.
func (n *Node) unbindSubtree() {
	it := NewTreeIterator(n)
	for d := it.Next(); d != nil; d = it.Next() {
		if d.IsFormControl() {
			d.checkDisabledAttribute()
			d.checkAncestorsDisabledState()
		}
		if d.IsFormAssociated() {
			d.resolveFormAssociation()
		}
	}
}

// CloneNode returns a copy of the node. If deep is true, all descendants
// are cloned recursively. The clone has no parent and no form owner; it
// keeps the node's effective state while detached, and attaching it
// re-derives that state from the copied attributes.
func (n *Node) CloneNode(deep bool) *Node {
	clone := &Node{
		Type:     n.Type,
		TagName:  n.TagName,
		Kind:     n.Kind,
		Text:     n.Text,
		disabled: n.disabled,
		enabled:  n.enabled,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
	}
	if deep {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			childClone := child.CloneNode(true)
			childClone.Parent = clone
			clone.Children[i] = childClone
		}
	} else {
		clone.Children = make([]*Node, 0)
	}
	return clone
}

// Contains returns true if other is a descendant of n (or n itself).
func (n *Node) Contains(other *Node) bool {
	if n == other {
		return true
	}
	for _, child := range n.Children {
		if child.Contains(other) {
			return true
		}
	}
	return false
}

// GetAttribute returns the attribute value and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// HasAttribute reports whether the attribute is present, regardless of
// its value. Boolean attributes like disabled are driven by presence,
// not by value.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// IndexInParent returns the index of this node among its parent's
// children, or -1 if it has no parent.
func (n *Node) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// Serialize returns the innerHTML of this node — the serialized HTML of
// all child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node — the node's own
// tags plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	if n.Type == TextNode {
		sb.WriteString(escapeHTML(n.Text))
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}

	if isVoidElement(n.TagName) {
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func isVoidElement(tag string) bool {
	switch tag {
	case "br", "hr", "img", "input", "meta", "link", "area", "base",
		"col", "embed", "param", "source", "track", "wbr":
		return true
	}
	return false
}
