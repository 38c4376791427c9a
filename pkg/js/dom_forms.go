package js

import (
	"formdom/pkg/html"

	"github.com/dop251/goja"
)

// Form-associated element properties. The disabled setter toggles the
// content attribute rather than poking state directly, so grouping
// containers cascade to their descendants exactly as an attribute
// mutation would.

func (e *elementAccessor) formProperty(key string) goja.Value {
	vm := e.ctx.vm
	switch key {
	case "disabled":
		if !e.node.IsFormAssociated() {
			return goja.Undefined()
		}
		// Reflects the content attribute. Effective state, which a
		// disabled ancestor container can force, is observable through
		// matches(':disabled').
		return vm.ToValue(e.node.HasAttribute("disabled"))
	case "elements":
		switch e.node.Kind {
		case html.KindFieldSet:
			return e.ctx.elementArray(e.node.ListedElements())
		case html.KindForm:
			return e.ctx.elementArray(e.node.FormControls())
		}
		return goja.Undefined()
	case "form":
		if !e.node.IsFormAssociated() {
			return goja.Undefined()
		}
		if owner := e.node.Form(); owner != nil {
			return e.ctx.elementProxy(owner)
		}
		return goja.Null()
	}
	return goja.Undefined()
}

func (e *elementAccessor) setDisabled(on bool) bool {
	if !e.node.IsFormAssociated() {
		return false
	}
	if on {
		e.node.SetAttribute("disabled", "")
	} else {
		e.node.RemoveAttribute("disabled")
	}
	return true
}
