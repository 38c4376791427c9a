package js

import (
	"formdom/pkg/html"

	"github.com/dop251/goja"
)

func (e *elementAccessor) firstChild() goja.Value {
	if len(e.node.Children) == 0 {
		return goja.Null()
	}
	return e.ctx.elementProxy(e.node.Children[0])
}

func (e *elementAccessor) lastChild() goja.Value {
	if len(e.node.Children) == 0 {
		return goja.Null()
	}
	return e.ctx.elementProxy(e.node.Children[len(e.node.Children)-1])
}

func (e *elementAccessor) firstElementChild() goja.Value {
	for _, child := range e.node.Children {
		if child.Type == html.ElementNode {
			return e.ctx.elementProxy(child)
		}
	}
	return goja.Null()
}

func (e *elementAccessor) lastElementChild() goja.Value {
	for i := len(e.node.Children) - 1; i >= 0; i-- {
		if e.node.Children[i].Type == html.ElementNode {
			return e.ctx.elementProxy(e.node.Children[i])
		}
	}
	return goja.Null()
}

func (e *elementAccessor) nextElementSibling() goja.Value {
	parent := e.node.Parent
	if parent == nil {
		return goja.Null()
	}
	idx := e.node.IndexInParent()
	for i := idx + 1; i < len(parent.Children); i++ {
		if parent.Children[i].Type == html.ElementNode {
			return e.ctx.elementProxy(parent.Children[i])
		}
	}
	return goja.Null()
}

func (e *elementAccessor) previousElementSibling() goja.Value {
	parent := e.node.Parent
	if parent == nil {
		return goja.Null()
	}
	idx := e.node.IndexInParent()
	for i := idx - 1; i >= 0; i-- {
		if parent.Children[i].Type == html.ElementNode {
			return e.ctx.elementProxy(parent.Children[i])
		}
	}
	return goja.Null()
}
