package js

import (
	"formdom/pkg/html"
	"formdom/pkg/selector"

	"github.com/dop251/goja"
)

func querySelectorFn(ctx *domContext, root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelector': 1 argument required"))
		}
		node, err := selector.Query(root, call.Arguments[0].String())
		if err != nil {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelector': '%s' is not a valid selector", call.Arguments[0].String()))
		}
		if node == nil {
			return goja.Null()
		}
		return ctx.elementProxy(node)
	}
}

func querySelectorAllFn(ctx *domContext, root *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelectorAll': 1 argument required"))
		}
		nodes, err := selector.QueryAll(root, call.Arguments[0].String())
		if err != nil {
			panic(ctx.vm.NewTypeError("Failed to execute 'querySelectorAll': '%s' is not a valid selector", call.Arguments[0].String()))
		}
		return ctx.elementArray(nodes)
	}
}

func matchesFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'matches': 1 argument required"))
		}
		ok, err := selector.MatchesAny(node, call.Arguments[0].String())
		if err != nil {
			panic(ctx.vm.NewTypeError("Failed to execute 'matches': '%s' is not a valid selector", call.Arguments[0].String()))
		}
		return ctx.vm.ToValue(ok)
	}
}

func closestFn(ctx *domContext, node *html.Node) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			panic(ctx.vm.NewTypeError("Failed to execute 'closest': 1 argument required"))
		}
		sel := call.Arguments[0].String()
		for cur := node; cur != nil && cur.TagName != "document"; cur = cur.Parent {
			ok, err := selector.MatchesAny(cur, sel)
			if err != nil {
				panic(ctx.vm.NewTypeError("Failed to execute 'closest': '%s' is not a valid selector", sel))
			}
			if ok {
				return ctx.elementProxy(cur)
			}
		}
		return goja.Null()
	}
}
