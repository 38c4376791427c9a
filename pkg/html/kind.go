package html

// ElementKind classifies elements by the role they play in form
// semantics. Classification happens once at construction; nothing in
// the API mutates TagName afterwards.
type ElementKind int

const (
	KindOther ElementKind = iota
	KindFieldSet
	KindLegend
	KindButton
	KindInput
	KindSelect
	KindTextArea
	KindForm
)

// KindForTag maps a (lowercase) tag name to its element kind.
func KindForTag(tag string) ElementKind {
	switch tag {
	case "fieldset":
		return KindFieldSet
	case "legend":
		return KindLegend
	case "button":
		return KindButton
	case "input":
		return KindInput
	case "select":
		return KindSelect
	case "textarea":
		return KindTextArea
	case "form":
		return KindForm
	default:
		return KindOther
	}
}

// IsFormControl reports whether the element is one of the interactive
// control kinds a fieldset's disabled state cascades to. Fieldsets and
// legends themselves are never cascade targets.
func (n *Node) IsFormControl() bool {
	switch n.Kind {
	case KindButton, KindInput, KindSelect, KindTextArea:
		return true
	default:
		return false
	}
}

// IsFormAssociated reports whether the element can have a form owner.
func (n *Node) IsFormAssociated() bool {
	return n.IsFormControl() || n.Kind == KindFieldSet
}

func (k ElementKind) String() string {
	switch k {
	case KindFieldSet:
		return "fieldset"
	case KindLegend:
		return "legend"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	case KindTextArea:
		return "textarea"
	case KindForm:
		return "form"
	default:
		return "other"
	}
}
