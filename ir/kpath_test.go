package ir

import (
	"errors"
	"testing"
)

func pathDoc() *Node {
	return FromKeyVals([]KeyVal{
		{"servers", FromKeyVals([]KeyVal{
			{"alpha", FromKeyVals([]KeyVal{{"ip", FromString("10.0.0.1")}})},
			{"beta", FromKeyVals([]KeyVal{{"ip", FromString("10.0.0.2")}})},
		})},
		{"fruits", FromSlice([]*Node{
			FromKeyVals([]KeyVal{{"name", FromString("apple")}}),
			FromKeyVals([]KeyVal{{"name", FromString("banana")}}),
		})},
		{"odd.key", FromInt(7)},
	})
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want string
	}{
		{"servers.alpha.ip", "10.0.0.1"},
		{"servers.beta.ip", "10.0.0.2"},
		{"fruits[0].name", "apple"},
		{"fruits[1].name", "banana"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			node, err := doc.GetPath(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			got, err := node.AsStr()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetPathRoot(t *testing.T) {
	doc := pathDoc()
	node, err := doc.GetPath("")
	if err != nil {
		t.Fatal(err)
	}
	if node != doc {
		t.Fatal("empty path did not return the receiver")
	}
}

func TestGetPathQuoted(t *testing.T) {
	doc := pathDoc()
	node, err := doc.GetPath(`"odd.key"`)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := node.AsInt(); v != 7 {
		t.Fatalf("got %d", v)
	}
}

func TestGetPathErrs(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		e    error
	}{
		{"servers.gamma", ErrMissingKey},
		{"servers.alpha.ip.deeper", ErrTypeMismatch},
		{"fruits[5]", ErrIndexRange},
		{"fruits.name", ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := doc.GetPath(tt.path)
			if !errors.Is(err, tt.e) {
				t.Fatalf("got %v, want %v", err, tt.e)
			}
		})
	}
}

func TestKPath(t *testing.T) {
	doc := pathDoc()
	ip, err := doc.GetPath("servers.alpha.ip")
	if err != nil {
		t.Fatal(err)
	}
	if got := ip.KPath(); got != "servers.alpha.ip" {
		t.Fatalf("got %q", got)
	}
	name, err := doc.GetPath("fruits[1].name")
	if err != nil {
		t.Fatal(err)
	}
	if got := name.KPath(); got != "fruits[1].name" {
		t.Fatalf("got %q", got)
	}
	odd, err := doc.GetPath(`"odd.key"`)
	if err != nil {
		t.Fatal(err)
	}
	if got := odd.KPath(); got != `"odd.key"` {
		t.Fatalf("got %q", got)
	}
	if got := doc.KPath(); got != "" {
		t.Fatalf("root path %q", got)
	}
}
