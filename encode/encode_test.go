package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/pathjson/format"
	"github.com/signadot/pathjson/ir"
)

const doc = `{"b":[1,{"c":"x<y"}],"a":true,"e":{},"f":[],"n":null}`

func mustNode(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := ir.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func encodeString(t *testing.T, y *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeJSON(t *testing.T) {
	want := strings.Join([]string{
		`{`,
		`  "b": [`,
		`    1,`,
		`    {`,
		`      "c": "x<y"`,
		`    }`,
		`  ],`,
		`  "a": true,`,
		`  "e": {},`,
		`  "f": [],`,
		`  "n": null`,
		`}`,
		``,
	}, "\n")
	got := encodeString(t, mustNode(t, doc))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("indented json mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeNDJSON(t *testing.T) {
	got := encodeString(t, mustNode(t, doc), EncodeFormat(format.NDJSONFormat))
	if got != doc+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeIndent(t *testing.T) {
	got := encodeString(t, mustNode(t, `{"a":[1]}`), EncodeIndent(4))
	want := "{\n    \"a\": [\n        1\n    ]\n}\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := encodeString(t, mustNode(t, `{"z":1,"a":[true,"s"],"m":{"k":1.5}}`), EncodeFormat(format.YAMLFormat))
	zi, ai, mi := strings.Index(got, "z:"), strings.Index(got, "a:"), strings.Index(got, "m:")
	if zi < 0 || ai < zi || mi < ai {
		t.Errorf("field order not kept:\n%s", got)
	}
	for _, s := range []string{"- true", "- s", "k: 1.5"} {
		if !strings.Contains(got, s) {
			t.Errorf("missing %q in\n%s", s, got)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Type: ir.ObjectType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
			{Type: ir.NumberType, Attr: ValueColor}: func(s string, _ ...any) string { return "#" + s },
		},
	}
	got := encodeString(t, mustNode(t, `{"a":1,"b":"x"}`), EncodeFormat(format.NDJSONFormat), EncodeColors(colors))
	if want := `{<"a">:#1,<"b">:"x"}` + "\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeIndent(1), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
