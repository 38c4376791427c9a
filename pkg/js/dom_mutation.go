package js

import (
	"formdom/pkg/html"

	"github.com/dop251/goja"
)

// Mutation methods. All tree changes go through the html package's
// mutation API so attached subtrees pick up ancestor disabled state
// and form ownership on insertion.

func (e *elementAccessor) appendChildFn() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'appendChild' on 'Node': 1 argument required"))
		}
		child := e.ctx.unwrapNode(call.Arguments[0])
		if child == nil {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'appendChild' on 'Node': parameter 1 is not of type 'Node'"))
		}
		if child.Parent != nil {
			child.Parent.RemoveChild(child)
		}
		e.node.AddChild(child)
		return call.Arguments[0]
	}
}

func (e *elementAccessor) removeChildFn() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'removeChild' on 'Node': 1 argument required"))
		}
		child := e.ctx.unwrapNode(call.Arguments[0])
		if child == nil || child.Parent != e.node {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'removeChild' on 'Node': the node to be removed is not a child of this node"))
		}
		e.node.RemoveChild(child)
		return call.Arguments[0]
	}
}

func (e *elementAccessor) insertBeforeFn() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'insertBefore' on 'Node': 2 arguments required"))
		}
		newChild := e.ctx.unwrapNode(call.Arguments[0])
		if newChild == nil {
			panic(e.ctx.vm.NewTypeError("Failed to execute 'insertBefore' on 'Node': parameter 1 is not of type 'Node'"))
		}
		refChild := e.ctx.unwrapNode(call.Arguments[1])
		e.node.InsertBefore(newChild, refChild)
		return call.Arguments[0]
	}
}

// setInnerHTML parses the given markup as a fragment and replaces the
// node's children with the result.
func (e *elementAccessor) setInnerHTML(markup string) {
	for len(e.node.Children) > 0 {
		e.node.RemoveChild(e.node.Children[0])
	}
	fragment, err := html.Parse(markup)
	if err != nil {
		panic(e.ctx.vm.NewTypeError("Failed to set 'innerHTML': %v", err))
	}
	for len(fragment.Root.Children) > 0 {
		child := fragment.Root.Children[0]
		fragment.Root.RemoveChild(child)
		e.node.AddChild(child)
	}
}
