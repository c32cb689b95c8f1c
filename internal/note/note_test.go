package note

import (
	"path/filepath"
	"testing"

	"github.com/ndreas/nota/internal/testutil"
)

func TestTypeForExt(t *testing.T) {
	tests := []struct {
		ext  string
		typ  Type
		ok   bool
		name string
	}{
		{ext: ".md", typ: Markdown, ok: true, name: "md"},
		{ext: ".markdown", typ: Markdown, ok: true, name: "markdown"},
		{ext: ".typ", typ: Typst, ok: true, name: "typ"},
		{ext: ".MD", typ: Markdown, ok: true, name: "uppercase"},
		{ext: "md", typ: Markdown, ok: true, name: "no dot"},
		{ext: ".txt", ok: false, name: "txt is not a note"},
		{ext: "", ok: false, name: "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := TypeForExt(tt.ext)
			if ok != tt.ok {
				t.Fatalf("TypeForExt(%q) ok = %v, want %v", tt.ext, ok, tt.ok)
			}
			if ok && typ != tt.typ {
				t.Errorf("TypeForExt(%q) = %v, want %v", tt.ext, typ, tt.typ)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("md"); err != nil || typ != Markdown {
		t.Errorf("ParseType(md) = %v, %v", typ, err)
	}
	if typ, err := ParseType("typ"); err != nil || typ != Typst {
		t.Errorf("ParseType(typ) = %v, %v", typ, err)
	}
	if _, err := ParseType("org"); err == nil {
		t.Error("ParseType(org) should fail")
	}
}

func TestClassify_FileNotes(t *testing.T) {
	root := testutil.NewTestRoot(t).
		WithFile("a.md", "# A\n").
		WithFile("b.typ", "= B\n").
		WithFile("c.txt", "not a note\n").
		Build()

	n, ok := Classify(filepath.Join(root.Path, "a.md"))
	if !ok {
		t.Fatal("a.md should classify as a note")
	}
	if n.Kind != FileNote || n.Type != Markdown || n.Name != "a.md" {
		t.Errorf("a.md = kind %v type %v name %q", n.Kind, n.Type, n.Name)
	}
	if n.MainPath() != n.Path {
		t.Errorf("file note MainPath = %q, want %q", n.MainPath(), n.Path)
	}

	if n, ok := Classify(filepath.Join(root.Path, "b.typ")); !ok || n.Type != Typst {
		t.Errorf("b.typ should be a typst file note, got %+v ok=%v", n, ok)
	}
	if _, ok := Classify(filepath.Join(root.Path, "c.txt")); ok {
		t.Error("c.txt should not classify as a note")
	}
	if _, ok := Classify(filepath.Join(root.Path, "missing.md")); ok {
		t.Error("missing path should not classify as a note")
	}
}

func TestClassify_FolderNotes(t *testing.T) {
	root := testutil.NewTestRoot(t).
		WithFolderNote("typnote", "main.typ", "= Hi\n").
		WithFolderNote("mdnote", "main.md", "# Hi\n").
		WithDir("plain").
		Build()

	// ambiguous: both main files
	both := testutil.NewTestRoot(t).
		WithFile("note/main.typ", "").
		WithFile("note/main.md", "").
		Build()

	n, ok := Classify(filepath.Join(root.Path, "typnote"))
	if !ok || n.Kind != FolderNote || n.Type != Typst {
		t.Fatalf("typnote = %+v ok=%v", n, ok)
	}
	if want := filepath.Join(n.Path, "main.typ"); n.MainPath() != want {
		t.Errorf("MainPath = %q, want %q", n.MainPath(), want)
	}

	if n, ok := Classify(filepath.Join(root.Path, "mdnote")); !ok || n.Type != Markdown {
		t.Errorf("mdnote should be a markdown folder note, got %+v ok=%v", n, ok)
	}
	if _, ok := Classify(filepath.Join(root.Path, "plain")); ok {
		t.Error("directory without a main file should not classify as a note")
	}
	if _, ok := Classify(filepath.Join(both.Path, "note")); ok {
		t.Error("directory with both main files is ambiguous and must be skipped")
	}
}

func TestClassify_MainFileMustBeRegular(t *testing.T) {
	// A directory named main.md does not make its parent a folder note.
	root := testutil.NewTestRoot(t).
		WithDir("trap/main.md").
		Build()

	if _, ok := Classify(filepath.Join(root.Path, "trap")); ok {
		t.Error("main.md directory should not count as a main file")
	}
}
