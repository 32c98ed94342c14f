package toon

import (
	"testing"

	"github.com/phobologic/fnscope/internal/model"
)

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "foo", "foo"},
		{"leading space", " foo", `" foo"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"true keyword", "true", `"true"`},
		{"null keyword", "null", `"null"`},
		{"integer", "42", "42"},
		{"negative integer", "-1", "-1"},
		{"comma", "HashMap<u32, bool>", `"HashMap<u32, bool>"`},
		{"path separator", "Vec::new", `"Vec::new"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"slice type", "[u8]", `"[u8]"`},
		{"dash prefix", "-foo", `"-foo"`},
		{"method path", "obj.foo", "obj.foo"},
		{"reference type", "&mut str", "&mut str"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := encodeValue(tt.in)
			if got != tt.want {
				t.Errorf("encodeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeCallGraph(t *testing.T) {
	t.Parallel()

	g := model.NewCallGraph()
	g.Add("f1", "bar")
	g.Add("f1", "foo")
	g.Add(model.FileScope, "init")

	got := EncodeCallGraph("src/lib.rs", g)
	want := "source: src/lib.rs\n" +
		"calls[3]{caller,callee}:\n" +
		"  f1,bar\n" +
		"  f1,foo\n" +
		`  "",init`
	if got != want {
		t.Errorf("EncodeCallGraph:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeCallGraphEmpty(t *testing.T) {
	t.Parallel()

	got := EncodeCallGraph("", model.NewCallGraph())
	if got != "calls[0]{caller,callee}:" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeParameters(t *testing.T) {
	t.Parallel()

	got := EncodeParameters("f1", []model.Parameter{
		{Name: "x", Type: "u32"},
		{Name: "m", Type: "HashMap<u32, bool>"},
	})
	want := "function: f1\n" +
		"parameters[2]{name,type}:\n" +
		"  x,u32\n" +
		`  m,"HashMap<u32, bool>"`
	if got != want {
		t.Errorf("EncodeParameters:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
