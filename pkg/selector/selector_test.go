package selector

import (
	"testing"

	"formdom/pkg/html"
)

func mustParseDoc(t *testing.T, s string) *html.Document {
	t.Helper()
	doc, err := html.Parse(s)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return doc
}

func mustQueryAll(t *testing.T, root *html.Node, sel string) []*html.Node {
	t.Helper()
	nodes, err := QueryAll(root, sel)
	if err != nil {
		t.Fatalf("QueryAll(%q): %v", sel, err)
	}
	return nodes
}

func TestParseCompound(t *testing.T) {
	sel, err := Parse(`input.wide[name="q"]:disabled`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Parts) != 1 {
		t.Fatalf("parts = %d", len(sel.Parts))
	}
	p := sel.Parts[0]
	if p.Element != "input" || p.ID != "" {
		t.Errorf("element = %q", p.Element)
	}
	if len(p.Classes) != 1 || p.Classes[0] != "wide" {
		t.Errorf("classes = %v", p.Classes)
	}
	if len(p.Attributes) != 1 || p.Attributes[0].Name != "name" || p.Attributes[0].Value != "q" {
		t.Errorf("attributes = %+v", p.Attributes)
	}
	if len(p.PseudoClasses) != 1 || p.PseudoClasses[0] != "disabled" {
		t.Errorf("pseudo = %v", p.PseudoClasses)
	}
}

func TestParseCombinators(t *testing.T) {
	sel, err := Parse("form > fieldset input")
	if err != nil {
		t.Fatal(err)
	}
	if len(sel.Parts) != 3 || len(sel.Combinators) != 2 {
		t.Fatalf("parts=%d combinators=%d", len(sel.Parts), len(sel.Combinators))
	}
	if sel.Combinators[0] != Child || sel.Combinators[1] != Descendant {
		t.Errorf("combinators = %v", sel.Combinators)
	}
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{"", "> div", "div[", "div[name", ".", "#", "div:"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) should fail", bad)
		}
	}
}

func TestQueryByIDAndTag(t *testing.T) {
	doc := mustParseDoc(t, `<div><input id="a"><input id="b"></div>`)
	n, err := Query(doc.Root, "#b")
	if err != nil {
		t.Fatal(err)
	}
	if n == nil || n.Attributes["id"] != "b" {
		t.Fatal("Query(#b) should find the second input")
	}
	if got := mustQueryAll(t, doc.Root, "input"); len(got) != 2 {
		t.Errorf("QueryAll(input) = %d nodes", len(got))
	}
}

func TestQueryDescendantAndChild(t *testing.T) {
	doc := mustParseDoc(t, `
		<form><fieldset><input id="inner"></fieldset></form>
		<input id="outer">`)
	got := mustQueryAll(t, doc.Root, "form input")
	if len(got) != 1 || got[0].Attributes["id"] != "inner" {
		t.Fatalf("descendant query got %d nodes", len(got))
	}
	if got := mustQueryAll(t, doc.Root, "form > input"); len(got) != 0 {
		t.Errorf("child query should not cross the fieldset, got %d", len(got))
	}
	if got := mustQueryAll(t, doc.Root, "fieldset > input"); len(got) != 1 {
		t.Errorf("direct child query got %d", len(got))
	}
}

func TestQueryGroup(t *testing.T) {
	doc := mustParseDoc(t, `<input><select></select><p></p>`)
	got := mustQueryAll(t, doc.Root, "input, select")
	if len(got) != 2 {
		t.Errorf("group query got %d nodes", len(got))
	}
}

func TestAttributeOperators(t *testing.T) {
	doc := mustParseDoc(t, `<input name="user-email" class="big wide">`)
	for _, sel := range []string{
		`[name]`, `[name=user-email]`, `[name^=user]`, `[name$=email]`,
		`[name*=r-e]`, `[class~=wide]`, `[name|=user]`,
	} {
		if got := mustQueryAll(t, doc.Root, sel); len(got) != 1 {
			t.Errorf("%s should match, got %d nodes", sel, len(got))
		}
	}
	if got := mustQueryAll(t, doc.Root, `[name=other]`); len(got) != 0 {
		t.Error("[name=other] should not match")
	}
}

func TestDisabledPseudoClassTracksCascade(t *testing.T) {
	doc := mustParseDoc(t, `
		<fieldset id="fs">
			<legend><input id="l"></legend>
			<input id="a">
		</fieldset>`)
	fs, _ := Query(doc.Root, "#fs")

	if got := mustQueryAll(t, doc.Root, "input:disabled"); len(got) != 0 {
		t.Fatalf("nothing should be disabled yet, got %d", len(got))
	}

	fs.SetAttribute("disabled", "")
	got := mustQueryAll(t, doc.Root, "input:disabled")
	if len(got) != 1 || got[0].Attributes["id"] != "a" {
		t.Fatalf("only the non-legend input should match :disabled, got %d", len(got))
	}
	// The legend's input still matches :enabled
	enabled := mustQueryAll(t, doc.Root, "input:enabled")
	if len(enabled) != 1 || enabled[0].Attributes["id"] != "l" {
		t.Fatalf(":enabled should match the legend input, got %d", len(enabled))
	}
}

func TestPseudoClassOnlyFormElements(t *testing.T) {
	doc := mustParseDoc(t, `<div></div><input>`)
	if got := mustQueryAll(t, doc.Root, ":enabled"); len(got) != 1 {
		t.Errorf(":enabled should match only form elements, got %d", len(got))
	}
}

func TestUnknownPseudoClassNeverMatches(t *testing.T) {
	doc := mustParseDoc(t, `<input>`)
	if got := mustQueryAll(t, doc.Root, "input:hover"); len(got) != 0 {
		t.Error("unknown/dynamic pseudo-classes must not match")
	}
}
