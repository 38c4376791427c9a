package html

// Fieldset semantics: a fieldset's disabled attribute cascades to the
// interactive controls in its subtree, except those inside its first
// legend child. Only the first legend is exempt; later legend children
// participate in the cascade like any other child.

// fieldsetAttributeChanged reacts to attribute mutations on a fieldset
// after the shared handling has run.
func (n *Node) fieldsetAttributeChanged(name string, mut AttributeMutation) {
	switch name {
	case "disabled":
		var disabled bool
		switch {
		case mut.Kind == AttributeSet && mut.Old == nil:
			disabled = true
		case mut.Kind == AttributeSet:
			// Fieldset was already disabled before; presence, not
			// value, drives state.
			return
		default:
			disabled = false
		}
		n.cascadeDisabled(disabled)
	case "form":
		n.resolveFormAssociation()
	}
}

// cascadeDisabled applies the target disabled state to the fieldset
// itself and to every eligible control in its subtree. Disabling is an
// unconditional override. Enabling re-derives each control's state
// instead, because the control's own attribute or another still
// disabled ancestor fieldset may keep it disabled.
func (n *Node) cascadeDisabled(disabled bool) {
	n.disabled = disabled
	n.enabled = !disabled

	for _, root := range n.cascadeRoots() {
		it := NewTreeIterator(root)
		for d := it.Next(); d != nil; d = it.Next() {
			if !d.IsFormControl() {
				continue
			}
			if disabled {
				d.disabled = true
				d.enabled = false
			} else {
				d.checkDisabledAttribute()
				d.checkAncestorsDisabledState()
			}
		}
	}
}

// cascadeRoots returns the fieldset's direct children in order, minus
// the first legend child. The exempt legend's whole subtree is skipped
// by never visiting it; a second legend child is a cascade root like
// any other.
func (n *Node) cascadeRoots() []*Node {
	var roots []*Node
	foundLegend := false
	for _, child := range n.Children {
		if !foundLegend && child.Kind == KindLegend {
			foundLegend = true
			continue
		}
		roots = append(roots, child)
	}
	return roots
}

// firstLegend returns the fieldset's first legend child, or nil.
func (n *Node) firstLegend() *Node {
	for _, child := range n.Children {
		if child.Kind == KindLegend {
			return child
		}
	}
	return nil
}

// ListedElements returns the fieldset's eligible controls in tree
// order: every interactive control in the subtree except those under
// the first legend child. This is the same eligible set the disabled
// cascade targets.
func (n *Node) ListedElements() []*Node {
	var out []*Node
	for _, root := range n.cascadeRoots() {
		it := NewTreeIterator(root)
		for d := it.Next(); d != nil; d = it.Next() {
			if d.IsFormControl() {
				out = append(out, d)
			}
		}
	}
	return out
}

// Disabled reflects the presence of the element's own disabled
// attribute. For the effective, cascaded state see DisabledState.
func (n *Node) Disabled() bool {
	return n.HasAttribute("disabled")
}

// SetDisabled sets or removes the disabled attribute. The write goes
// through the attribute layer so the change propagates.
func (n *Node) SetDisabled(disabled bool) {
	if disabled {
		n.SetAttribute("disabled", "")
	} else {
		n.RemoveAttribute("disabled")
	}
}
