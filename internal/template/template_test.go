package template

import (
	"errors"
	"testing"

	"github.com/ndreas/nota/internal/note"
)

func TestParse_NodeShapes(t *testing.T) {
	doc := `
paths:
  images: {}
  chapter:
  bibliography:
    refs.bib: |
      @article{x,
        year = {2024},
      }
  sub:
    nested:
      deep.md: "content"
"main.typ": "typst content"
"main.md": "markdown content"
`
	tpl, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := tpl.Paths["images"]; got == nil || got.Kind != EmptyDir {
		t.Errorf("images should be an empty dir, got %+v", got)
	}
	if got := tpl.Paths["chapter"]; got == nil || got.Kind != EmptyDir {
		t.Errorf("null chapter should be an empty dir, got %+v", got)
	}

	bib := tpl.Paths["bibliography"]
	if bib == nil || bib.Kind != Dir {
		t.Fatalf("bibliography should be a dir, got %+v", bib)
	}
	refs := bib.Children["refs.bib"]
	if refs == nil || refs.Kind != File {
		t.Fatalf("refs.bib should be a file, got %+v", refs)
	}
	if refs.Content == "" || refs.Content[0] != '@' {
		t.Errorf("refs.bib content lost: %q", refs.Content)
	}

	deep := tpl.Paths["sub"].Children["nested"].Children["deep.md"]
	if deep.Kind != File || deep.Content != "content" {
		t.Errorf("deep.md = %+v", deep)
	}

	if tpl.Main(note.Typst) != "typst content" {
		t.Errorf("Main(Typst) = %q", tpl.Main(note.Typst))
	}
	if tpl.Main(note.Markdown) != "markdown content" {
		t.Errorf("Main(Markdown) = %q", tpl.Main(note.Markdown))
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not yaml", doc: "\t{invalid"},
		{name: "sequence entry", doc: "paths:\n  x:\n    - a\n    - b\n"},
		{name: "numeric entry", doc: "paths:\n  x: 42\n"},
		{name: "separator in name", doc: "paths:\n  a/b: {}\n"},
		{name: "dotdot name", doc: "paths:\n  ..: {}\n"},
		{name: "separator in nested name", doc: "paths:\n  a:\n    b/c: hi\n"},
		{name: "empty name", doc: "paths:\n  \"\": {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatalf("Parse should fail for %s", tt.name)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error should be a *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	tpl, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("empty document should parse: %v", err)
	}
	if len(tpl.Paths) != 0 {
		t.Errorf("empty document should have no paths, got %d", len(tpl.Paths))
	}
	if tpl.Main(note.Typst) != "" || tpl.Main(note.Markdown) != "" {
		t.Error("empty document should have no main content")
	}
}

func TestDefault(t *testing.T) {
	tpl := Default()

	for _, name := range []string{"bibliography", "chapter", "images"} {
		if tpl.Paths[name] == nil {
			t.Errorf("default template missing %s", name)
		}
	}
	refs := tpl.Paths["bibliography"].Children["refs.bib"]
	if refs == nil || refs.Kind != File || refs.Content == "" {
		t.Error("default template should ship a non-empty refs.bib")
	}
	if tpl.Main(note.Typst) == "" {
		t.Error("default template should define typst main content")
	}
	// No markdown default: an empty markdown main file is acceptable.
	if tpl.Main(note.Markdown) != "" {
		t.Error("default template should not define markdown main content")
	}
}
