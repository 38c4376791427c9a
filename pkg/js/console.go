package js

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
)

// consoleAPI implements console.log, console.warn, and console.error.
type consoleAPI struct{}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.emit(os.Stdout, ""))
	console.Set("warn", c.emit(os.Stderr, "WARN: "))
	console.Set("error", c.emit(os.Stderr, "ERROR: "))
	vm.Set("console", console)
}

func (c *consoleAPI) emit(w *os.File, prefix string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		fmt.Fprintln(w, prefix+strings.Join(parts, " "))
		return goja.Undefined()
	}
}
