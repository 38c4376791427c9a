package html

// Form controls (button, input, select, textarea) derive their
// effective state from their own disabled attribute plus the ancestor
// fieldset chain, and their form owner from the form attribute or the
// nearest form ancestor.

// controlAttributeChanged reacts to attribute mutations on a form
// control after the shared handling has run.
func (n *Node) controlAttributeChanged(name string, mut AttributeMutation) {
	switch name {
	case "disabled":
		n.checkDisabledAttribute()
		n.checkAncestorsDisabledState()
	case "form":
		n.resolveFormAssociation()
	}
}

// checkDisabledAttribute sets the element's state from the presence of
// its own disabled attribute.
func (n *Node) checkDisabledAttribute() {
	has := n.HasAttribute("disabled")
	n.disabled = has
	n.enabled = !has
}

// checkAncestorsDisabledState forces the disabled state when any
// ancestor fieldset is effectively disabled, unless the element sits
// inside that fieldset's first legend child (the path from the fieldset
// to the element goes through the exempt legend). It never clears
// state; callers re-derive the attribute part first.
func (n *Node) checkAncestorsDisabledState() {
	child := n
	for anc := n.Parent; anc != nil; child, anc = anc, anc.Parent {
		if anc.Kind != KindFieldSet || !anc.disabled {
			continue
		}
		if legend := anc.firstLegend(); legend != nil && legend == child {
			continue
		}
		n.disabled = true
		n.enabled = false
		return
	}
}

// resolveFormAssociation recomputes the element's form owner. A form
// attribute naming a form element's id wins; otherwise the nearest form
// ancestor owns the element.
func (n *Node) resolveFormAssociation() {
	if id, ok := n.GetAttribute("form"); ok {
		if f := ElementByID(n.Root(), id); f != nil && f.Kind == KindForm {
			n.form = f
		} else {
			n.form = nil
		}
		return
	}
	for anc := n.Parent; anc != nil; anc = anc.Parent {
		if anc.Kind == KindForm {
			n.form = anc
			return
		}
	}
	n.form = nil
}

// FormControls returns the controls owned by this form element, in tree
// order over the whole document. Controls associated through a form
// attribute are included even when they sit outside the form's subtree.
func (n *Node) FormControls() []*Node {
	if n.Kind != KindForm {
		return nil
	}
	var out []*Node
	Walk(n.Root(), func(d *Node) bool {
		if d.IsFormControl() && d.form == n {
			out = append(out, d)
		}
		return false
	})
	return out
}
