package html

import "testing"

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse(s)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return doc
}

func byID(t *testing.T, doc *Document, id string) *Node {
	t.Helper()
	n := ElementByID(doc.Root, id)
	if n == nil {
		t.Fatalf("no element with id %q", id)
	}
	return n
}

// assertState checks the effective state and the complement invariant
// disabled == !enabled.
func assertState(t *testing.T, n *Node, disabled bool) {
	t.Helper()
	if n.disabled != disabled {
		t.Errorf("%s#%s: disabled state = %v, want %v", n.TagName, n.Attributes["id"], n.disabled, disabled)
	}
	if n.enabled == n.disabled {
		t.Errorf("%s#%s: invariant violated: disabled=%v enabled=%v", n.TagName, n.Attributes["id"], n.disabled, n.enabled)
	}
}

const fixtureBasic = `
<fieldset id="fs">
	<legend><input id="l"></legend>
	<input id="a">
	<fieldset id="inner"><input id="b"></fieldset>
	<input id="c">
</fieldset>`

func TestDisableCascade(t *testing.T) {
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")

	fs.SetAttribute("disabled", "")

	assertState(t, fs, true)
	assertState(t, byID(t, doc, "a"), true)
	assertState(t, byID(t, doc, "b"), true)
	assertState(t, byID(t, doc, "c"), true)
	// Control inside the first legend is exempt
	assertState(t, byID(t, doc, "l"), false)
	// The nested fieldset is traversed through, not targeted
	assertState(t, byID(t, doc, "inner"), false)
}

func TestEnableRederives(t *testing.T) {
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")
	a := byID(t, doc, "a")
	a.SetAttribute("disabled", "")

	fs.SetAttribute("disabled", "")
	fs.RemoveAttribute("disabled")

	assertState(t, fs, false)
	// A keeps its own disabled attribute; B and C have none
	assertState(t, a, true)
	assertState(t, byID(t, doc, "b"), false)
	assertState(t, byID(t, doc, "c"), false)
}

func TestValueOnlyChangeIsNoOp(t *testing.T) {
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")
	fs.SetAttribute("disabled", "")

	// Poke a control's state out from under the cascade. A value-only
	// change to an already-present attribute must not re-run it.
	a := byID(t, doc, "a")
	a.disabled = false
	a.enabled = true

	fs.SetAttribute("disabled", "disabled")

	if a.disabled {
		t.Error("value-only attribute change must not trigger a cascade")
	}
}

func TestSecondLegendParticipates(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="fs">
			<legend><input id="first"></legend>
			<legend><input id="second"></legend>
		</fieldset>`)
	byID(t, doc, "fs").SetAttribute("disabled", "")

	assertState(t, byID(t, doc, "first"), false)
	assertState(t, byID(t, doc, "second"), true)
}

func TestControlBeforeLegendParticipates(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="fs">
			<input id="early">
			<legend><input id="l"></legend>
		</fieldset>`)
	byID(t, doc, "fs").SetAttribute("disabled", "")

	assertState(t, byID(t, doc, "early"), true)
	assertState(t, byID(t, doc, "l"), false)
}

func TestNoLegendAllChildrenCascade(t *testing.T) {
	doc := mustParse(t, `<fieldset id="fs"><input id="a"><input id="b"></fieldset>`)
	byID(t, doc, "fs").SetAttribute("disabled", "")

	assertState(t, byID(t, doc, "a"), true)
	assertState(t, byID(t, doc, "b"), true)
}

func TestNestedFieldsetKeepsOwnDisabled(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="outer">
			<fieldset id="inner" disabled><input id="x"></fieldset>
			<input id="y">
		</fieldset>`)
	outer := byID(t, doc, "outer")

	outer.SetAttribute("disabled", "")
	outer.RemoveAttribute("disabled")

	// x is still covered by the inner fieldset's own disabled state
	assertState(t, byID(t, doc, "x"), true)
	assertState(t, byID(t, doc, "y"), false)
}

func TestSpecScenario(t *testing.T) {
	// [legend, input A, fieldset{input B}, input C]: disable, give A its
	// own attribute, enable — A stays disabled, B and C come back.
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")
	a := byID(t, doc, "a")
	b := byID(t, doc, "b")
	c := byID(t, doc, "c")

	fs.SetAttribute("disabled", "")
	assertState(t, a, true)
	assertState(t, b, true)
	assertState(t, c, true)
	assertState(t, byID(t, doc, "l"), false)

	a.SetAttribute("disabled", "")
	fs.RemoveAttribute("disabled")

	assertState(t, a, true)
	assertState(t, b, false)
	assertState(t, c, false)
}

func TestListedElements(t *testing.T) {
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")

	got := fs.ListedElements()
	want := []*Node{byID(t, doc, "a"), byID(t, doc, "b"), byID(t, doc, "c")}
	if len(got) != len(want) {
		t.Fatalf("ListedElements returned %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListedElements[%d] = %s#%s, want id %q", i, got[i].TagName, got[i].Attributes["id"], want[i].Attributes["id"])
		}
	}
}

func TestListedElementsSecondLegend(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="fs">
			<legend><input id="first"></legend>
			<legend><input id="second"></legend>
		</fieldset>`)
	got := byID(t, doc, "fs").ListedElements()
	if len(got) != 1 || got[0] != ElementByID(doc.Root, "second") {
		t.Fatalf("want only the second legend's input, got %d elements", len(got))
	}
}

func TestSetDisabledAccessors(t *testing.T) {
	doc := mustParse(t, fixtureBasic)
	fs := byID(t, doc, "fs")

	if fs.Disabled() {
		t.Fatal("fieldset should start without a disabled attribute")
	}
	fs.SetDisabled(true)
	if !fs.Disabled() {
		t.Error("SetDisabled(true) should reflect in the attribute")
	}
	assertState(t, byID(t, doc, "a"), true)

	fs.SetDisabled(false)
	if fs.Disabled() {
		t.Error("SetDisabled(false) should remove the attribute")
	}
	assertState(t, byID(t, doc, "a"), false)
}

func TestDeeplyNestedControlCascades(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="fs">
			<div><p><span><input id="deep"></span></p></div>
		</fieldset>`)
	byID(t, doc, "fs").SetAttribute("disabled", "")
	assertState(t, byID(t, doc, "deep"), true)
}

func TestParsedDisabledFieldset(t *testing.T) {
	// The attribute arrives during parsing, before the children exist;
	// binding the children must pick up the ancestor state.
	doc := mustParse(t, `
		<fieldset id="fs" disabled>
			<legend><input id="l"></legend>
			<input id="a">
		</fieldset>`)
	assertState(t, byID(t, doc, "fs"), true)
	assertState(t, byID(t, doc, "a"), true)
	assertState(t, byID(t, doc, "l"), false)
}

func TestMoveControlIntoDisabledFieldset(t *testing.T) {
	doc := mustParse(t, `
		<fieldset id="fs" disabled></fieldset>
		<input id="free">`)
	fs := byID(t, doc, "fs")
	free := byID(t, doc, "free")
	assertState(t, free, false)

	free.Parent.RemoveChild(free)
	fs.AddChild(free)
	assertState(t, free, true)

	fs.RemoveChild(free)
	assertState(t, free, false)
}

func TestRemovedDisabledFieldsetKeepsControlsDisabled(t *testing.T) {
	doc := mustParse(t, `<div id="wrap"><fieldset id="fs" disabled><input id="a"></fieldset></div>`)
	fs := byID(t, doc, "fs")
	a := byID(t, doc, "a")

	byID(t, doc, "wrap").RemoveChild(fs)

	// a travelled with the fieldset; the cascade still applies inside
	// the detached subtree.
	assertState(t, a, true)
}
