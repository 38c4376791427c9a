// Package js executes JavaScript against a form document's DOM through
// goja. Element proxies route attribute writes through the DOM's
// mutation-aware API, so scripted changes to a fieldset's disabled
// attribute propagate exactly like native ones.
package js

import (
	"fmt"

	"formdom/pkg/html"

	"github.com/dop251/goja"
)

// Engine executes JavaScript against an HTML document's DOM.
type Engine struct {
	vm *goja.Runtime
}

// New creates a new JS engine with a fresh goja runtime.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	c := &consoleAPI{}
	c.register(vm)

	return e
}

// Execute runs all scripts from the document against the DOM.
// Scripts are executed in order. Any JS errors are returned but
// callers may choose to log and continue rather than fail.
func (e *Engine) Execute(doc *html.Document) error {
	registerDocument(e.vm, doc)

	for i, script := range doc.Scripts {
		_, err := e.vm.RunString(script)
		if err != nil {
			return fmt.Errorf("script %d: %w", i, err)
		}
	}

	return nil
}

// Run registers the document and evaluates a single script source,
// returning the script's value. Useful for driving a document from Go.
func (e *Engine) Run(doc *html.Document, src string) (goja.Value, error) {
	registerDocument(e.vm, doc)
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return v, nil
}
