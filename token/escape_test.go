package token

import (
	"testing"

	"github.com/signadot/xmlfmt/charset"
	"github.com/signadot/xmlfmt/format"
)

type escTest struct {
	in, text, attr string
}

func runEscTests(t *testing.T, e *Escaper, ets []escTest) {
	t.Helper()
	for _, et := range ets {
		if got := e.Text(et.in); got != et.text {
			t.Errorf("%s/%s Text(%q): got %q want %q", e.Mode, e.Charset.Name(), et.in, got, et.text)
		}
		if got := e.Attr(et.in); got != et.attr {
			t.Errorf("%s/%s Attr(%q): got %q want %q", e.Mode, e.Charset.Name(), et.in, got, et.attr)
		}
	}
}

func TestEscapeStandard(t *testing.T) {
	runEscTests(t, NewEscaper(format.StandardEntities, nil), []escTest{
		{in: "plain", text: "plain", attr: "plain"},
		{in: `a<b>&c`, text: `a&lt;b&gt;&amp;c`, attr: `a&lt;b&gt;&amp;c`},
		{in: `say "hi" it's`, text: `say "hi" it's`, attr: `say &quot;hi&quot; it's`},
		{in: "a\tb\nc", text: "a\tb\nc", attr: "a&#9;b&#10;c"},
		{in: "\r", text: "&#13;", attr: "&#13;"},
		{in: "é€😀", text: "é€😀", attr: "é€😀"},
	})
}

func TestEscapeHex(t *testing.T) {
	runEscTests(t, NewEscaper(format.HexEntities, nil), []escTest{
		{in: "plain", text: "plain", attr: "plain"},
		{in: `<&>`, text: "&#x003C;&#x0026;&#x003E;", attr: "&#x003C;&#x0026;&#x003E;"},
		{in: `"`, text: `"`, attr: "&#x0022;"},
		{in: "\n", text: "\n", attr: "&#x000A;"},
		{in: "é", text: "é", attr: "é"},
	})
}

func TestEscapeCharset(t *testing.T) {
	latin1, err := charset.Lookup("ISO-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	runEscTests(t, NewEscaper(format.StandardEntities, latin1), []escTest{
		{in: "café €", text: "café &#8364;", attr: "café &#8364;"},
	})
	runEscTests(t, NewEscaper(format.HexEntities, latin1), []escTest{
		{in: "café €😀", text: "café &#x20AC;&#x1F600;", attr: "café &#x20AC;&#x1F600;"},
	})
	ascii, err := charset.Lookup("US-ASCII")
	if err != nil {
		t.Fatal(err)
	}
	runEscTests(t, NewEscaper(format.StandardEntities, ascii), []escTest{
		{in: "café", text: "caf&#233;", attr: "caf&#233;"},
	})
}
