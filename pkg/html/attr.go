package html

// MutationKind discriminates the two ways an attribute can change.
type MutationKind int

const (
	// AttributeSet covers both first assignment and value changes;
	// Old distinguishes them.
	AttributeSet MutationKind = iota
	AttributeRemoved
)

// AttributeMutation describes a single attribute change after it has
// been applied to the attribute map. For AttributeSet, Old is nil when
// the attribute was previously absent and points at the previous value
// otherwise. For AttributeRemoved, Old points at the value the
// attribute had.
type AttributeMutation struct {
	Kind MutationKind
	Old  *string
}

// SetAttribute stores the attribute and notifies the element. Setting
// an attribute that is already present delivers a mutation whose Old
// value is non-nil; handlers that key on presence treat that as a
// value-only change.
func (n *Node) SetAttribute(name, value string) {
	if n.Type != ElementNode {
		return
	}
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	var old *string
	if prev, ok := n.Attributes[name]; ok {
		p := prev
		old = &p
	}
	n.Attributes[name] = value
	n.attributeChanged(name, AttributeMutation{Kind: AttributeSet, Old: old})
}

// RemoveAttribute deletes the attribute and notifies the element.
// Removing an absent attribute is a no-op and delivers nothing.
func (n *Node) RemoveAttribute(name string) {
	if n.Attributes == nil {
		return
	}
	prev, ok := n.Attributes[name]
	if !ok {
		return
	}
	delete(n.Attributes, name)
	n.attributeChanged(name, AttributeMutation{Kind: AttributeRemoved, Old: &prev})
}

// attributeChanged dispatches an applied attribute mutation: the shared
// handling runs first, unconditionally, for every change; the
// kind-specific handler runs after it.
func (n *Node) attributeChanged(name string, mut AttributeMutation) {
	n.commonAttributeChanged(name, mut)
	switch n.Kind {
	case KindFieldSet:
		n.fieldsetAttributeChanged(name, mut)
	case KindButton, KindInput, KindSelect, KindTextArea:
		n.controlAttributeChanged(name, mut)
	}
}

// commonAttributeChanged is the handling every element kind shares.
// An id change can redirect form ownership: controls elsewhere in the
// document may reference the old or new id through their form
// attribute, so their associations are resolved again.
func (n *Node) commonAttributeChanged(name string, mut AttributeMutation) {
	if name != "id" {
		return
	}
	ids := make(map[string]bool, 2)
	if v, ok := n.GetAttribute("id"); ok {
		ids[v] = true
	}
	if mut.Old != nil {
		ids[*mut.Old] = true
	}
	if len(ids) == 0 {
		return
	}
	Walk(n.Root(), func(d *Node) bool {
		if !d.IsFormAssociated() {
			return false
		}
		if ref, ok := d.GetAttribute("form"); ok && ids[ref] {
			d.resolveFormAssociation()
		}
		return false
	})
}
