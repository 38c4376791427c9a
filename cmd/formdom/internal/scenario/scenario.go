// Package scenario loads and applies attribute-mutation scenarios
// described in YAML. A scenario is an ordered list of steps, each
// selecting elements and setting or removing attributes on them, used
// to drive a document's form state from the command line.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"formdom/pkg/html"
	"formdom/pkg/selector"
)

// Scenario is an ordered list of mutation steps.
type Scenario struct {
	Steps []Step `yaml:"steps"`
}

// Step selects elements and mutates their attributes. Set entries are
// applied before Remove when both are present.
type Step struct {
	Select string            `yaml:"select"`
	Set    map[string]string `yaml:"set,omitempty"`
	Remove []string          `yaml:"remove,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i, step := range sc.Steps {
		if step.Select == "" {
			return nil, fmt.Errorf("step %d: missing select", i)
		}
		if len(step.Set) == 0 && len(step.Remove) == 0 {
			return nil, fmt.Errorf("step %d: nothing to apply", i)
		}
	}
	return &sc, nil
}

// Apply runs every step against the document in order. A step whose
// selector matches no element is an error; mutations in earlier steps
// are visible to later selectors.
func (sc *Scenario) Apply(doc *html.Document) error {
	for i, step := range sc.Steps {
		nodes, err := selector.QueryAll(doc.Root, step.Select)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if len(nodes) == 0 {
			return fmt.Errorf("step %d: selector %q matched nothing", i, step.Select)
		}
		for _, n := range nodes {
			for name, value := range step.Set {
				n.SetAttribute(name, value)
			}
			for _, name := range step.Remove {
				n.RemoveAttribute(name)
			}
		}
	}
	return nil
}

// LoadOptional reads a scenario file if the path is non-empty,
// returning an empty scenario otherwise.
func LoadOptional(path string) (*Scenario, error) {
	if path == "" {
		return &Scenario{}, nil
	}
	return Load(path)
}
