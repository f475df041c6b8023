package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/toml-format/go-toml/ir"
	"github.com/toml-format/go-toml/parse"
)

const evalDoc = `[owner]
name = "Tom"
age = 38

[server]
ports = [8001, 8002]
debug = false
`

func evalRoot(t *testing.T) *ir.Node {
	t.Helper()
	root, err := parse.ParseString(evalDoc)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestEval(t *testing.T) {
	doc := evalRoot(t)
	tests := []struct {
		src  string
		want any
	}{
		{`owner.name`, "Tom"},
		{`owner.age + 2`, int64(40)},
		{`len(server.ports)`, 2},
		{`server.ports[1]`, int64(8002)},
		{`server.debug ? "on" : "off"`, "off"},
		{`owner.name + " is " + string(owner.age)`, "Tom is 38"},
		{`getpath("server.ports[0]")`, int64(8001)},
		{`keys("owner")`, []string{"name", "age"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(tt.src, doc)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestEvalErrs(t *testing.T) {
	doc := evalRoot(t)
	if _, err := Eval(`owner.`, doc); err == nil {
		t.Fatal("bad expression compiled")
	}
	if _, err := Eval(`getpath("owner.missing")`, doc); err == nil {
		t.Fatal("missing path evaluated")
	}
}

func TestCompileRun(t *testing.T) {
	doc := evalRoot(t)
	prg, err := Compile(`owner.age > 21`, doc)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Run(prg, doc)
	if err != nil {
		t.Fatal(err)
	}
	if res != true {
		t.Fatalf("got %v", res)
	}
}

func TestToAnyFromAnyRoundTrip(t *testing.T) {
	doc := evalRoot(t)
	back, err := FromAny(ToAny(doc))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Compare(doc, back) != 0 {
		t.Fatal("round trip changed tree")
	}
}

func TestFromAnyRejects(t *testing.T) {
	if _, err := FromAny(nil); err == nil {
		t.Fatal("nil accepted")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Fatal("struct accepted")
	}
}
