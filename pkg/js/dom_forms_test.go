package js

import (
	"testing"

	"formdom/pkg/html"
)

const fieldsetPage = `
<form id="f">
  <fieldset id="fs">
    <legend><input id="exempt"></legend>
    <input id="a">
    <fieldset id="inner"><input id="b"></fieldset>
  </fieldset>
  <input id="outside">
</form>`

func TestScriptedDisableCascades(t *testing.T) {
	doc := parseHTML(t, fieldsetPage)
	run(t, doc, `
		document.getElementById('fs').setAttribute('disabled', '');
	`)

	for _, tc := range []struct {
		id   string
		want bool
	}{
		{"exempt", false},
		{"a", true},
		{"b", true},
		{"outside", false},
	} {
		n := html.ElementByID(doc.Root, tc.id)
		if n.DisabledState() != tc.want {
			t.Errorf("%s: DisabledState = %v, want %v", tc.id, n.DisabledState(), tc.want)
		}
	}
}

func TestDisabledPropertySetterCascades(t *testing.T) {
	doc := parseHTML(t, fieldsetPage)
	run(t, doc, `
		var fs = document.getElementById('fs');
		fs.disabled = true;
		if (fs.disabled !== true) throw new Error('fieldset attribute not reflected');
	`)

	if got := html.ElementByID(doc.Root, "a").DisabledState(); !got {
		t.Error("control not disabled after scripted property set")
	}

	run(t, doc, `document.getElementById('fs').disabled = false;`)
	if got := html.ElementByID(doc.Root, "a").DisabledState(); got {
		t.Error("control still disabled after scripted property clear")
	}
}

func TestDisabledPropertyReflectsAttribute(t *testing.T) {
	doc := parseHTML(t, `<fieldset disabled id="fs"><input id="a"><input id="b" disabled></fieldset>`)
	run(t, doc, `
		if (document.getElementById('a').disabled !== false) throw new Error('a reflects cascade, not attribute');
		if (document.getElementById('b').disabled !== true) throw new Error('b has the attribute');
	`)
}

func TestMatchesDisabledPseudoClass(t *testing.T) {
	doc := parseHTML(t, fieldsetPage)
	run(t, doc, `
		var fs = document.getElementById('fs');
		var a = document.getElementById('a');
		var exempt = document.getElementById('exempt');
		if (!a.matches(':enabled')) throw new Error('a should start enabled');
		fs.setAttribute('disabled', '');
		if (!a.matches(':disabled')) throw new Error('a should be disabled by cascade');
		if (!exempt.matches(':enabled')) throw new Error('legend input should stay enabled');
	`)
}

func TestFieldsetElements(t *testing.T) {
	doc := parseHTML(t, fieldsetPage)
	run(t, doc, `
		var els = document.getElementById('fs').elements;
		if (els.length !== 2) throw new Error('elements length ' + els.length);
		if (els[0].id !== 'a') throw new Error('first element ' + els[0].id);
		if (els[1].id !== 'b') throw new Error('second element ' + els[1].id);
	`)
}

func TestFormElements(t *testing.T) {
	doc := parseHTML(t, fieldsetPage)
	run(t, doc, `
		var els = document.getElementById('f').elements;
		// exempt, a, b, outside plus both fieldsets associate with the form,
		// but elements lists controls only.
		if (els.length !== 4) throw new Error('elements length ' + els.length);
	`)
}

func TestFormPropertyFollowsFormAttribute(t *testing.T) {
	doc := parseHTML(t, `<form id="one"></form><form id="two"><input id="a"></form>`)
	run(t, doc, `
		var a = document.getElementById('a');
		if (a.form.id !== 'two') throw new Error('owner ' + a.form.id);
		a.setAttribute('form', 'one');
		if (a.form.id !== 'one') throw new Error('form attribute ignored');
		a.setAttribute('form', 'missing');
		if (a.form !== null) throw new Error('dangling reference should clear owner');
	`)
}

func TestDisabledUndefinedOffFormElements(t *testing.T) {
	doc := parseHTML(t, `<div id="d"></div>`)
	run(t, doc, `
		var d = document.getElementById('d');
		if (d.disabled !== undefined) throw new Error('div has no disabled');
		if (d.elements !== undefined) throw new Error('div has no elements');
	`)
}

func TestScriptedMoveIntoDisabledFieldset(t *testing.T) {
	doc := parseHTML(t, `<fieldset disabled id="fs"></fieldset><input id="a">`)
	run(t, doc, `
		var fs = document.getElementById('fs');
		fs.appendChild(document.getElementById('a'));
	`)
	if got := html.ElementByID(doc.Root, "a").DisabledState(); !got {
		t.Error("control moved under disabled fieldset should be disabled")
	}
}
