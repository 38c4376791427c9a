// Command formdom parses an HTML page, optionally runs its inline
// scripts and an attribute-mutation scenario against it, then reports
// the effective enabled/disabled state and form ownership of every
// form control.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"formdom/cmd/formdom/internal/scenario"
	"formdom/pkg/html"
	"formdom/pkg/js"
	"formdom/pkg/selector"
)

func main() {
	var (
		pageFile     = flag.String("f", "", "HTML page to load (required)")
		scenarioFile = flag.String("s", "", "YAML scenario of attribute mutations to apply")
		query        = flag.String("q", "", "only report controls matching this selector")
		runScripts   = flag.Bool("run-scripts", false, "execute the page's inline scripts before reporting")
		verbose      = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if *pageFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(log, *pageFile, *scenarioFile, *query, *runScripts); err != nil {
		log.Fatal(err)
	}
}

func run(log *logrus.Logger, pageFile, scenarioFile, query string, runScripts bool) error {
	data, err := os.ReadFile(pageFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", pageFile, err)
	}

	doc, err := html.Parse(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", pageFile, err)
	}
	log.WithFields(logrus.Fields{
		"forms":    len(doc.Forms()),
		"controls": len(doc.Controls()),
		"scripts":  len(doc.Scripts),
	}).Debug("page loaded")

	if runScripts && len(doc.Scripts) > 0 {
		if err := js.New().Execute(doc); err != nil {
			return fmt.Errorf("script execution: %w", err)
		}
		log.Debug("inline scripts executed")
	}

	sc, err := scenario.LoadOptional(scenarioFile)
	if err != nil {
		return err
	}
	if len(sc.Steps) > 0 {
		if err := sc.Apply(doc); err != nil {
			return fmt.Errorf("scenario: %w", err)
		}
		log.WithField("steps", len(sc.Steps)).Debug("scenario applied")
	}

	controls := doc.Controls()
	if query != "" {
		controls, err = selector.QueryAll(doc.Root, query)
		if err != nil {
			return fmt.Errorf("query %q: %w", query, err)
		}
	}

	for _, c := range controls {
		fmt.Println(describe(c))
	}
	return nil
}

// describe renders one report line for a control:
//
//	input#email enabled form=checkout
//	select#plan disabled(ancestor) form=-
func describe(n *html.Node) string {
	label := n.TagName
	if id, ok := n.GetAttribute("id"); ok {
		label += "#" + id
	}

	state := "enabled"
	if n.DisabledState() {
		state = "disabled"
		if !n.HasAttribute("disabled") {
			state += "(ancestor)"
		}
	}

	owner := "-"
	if f := n.Form(); f != nil {
		if id, ok := f.GetAttribute("id"); ok {
			owner = id
		} else {
			owner = f.TagName
		}
	}

	return fmt.Sprintf("%s %s form=%s", label, state, owner)
}
