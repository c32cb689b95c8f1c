package ignore

import (
	"testing"

	"github.com/ndreas/nota/internal/testutil"
)

func TestBuild_NoIgnoreFiles(t *testing.T) {
	root := testutil.NewTestRoot(t).Build()

	set := Build(root.Path)
	if set.Ignored("anything") {
		t.Error("empty set should ignore nothing")
	}
}

func TestIgnored_Gitignore(t *testing.T) {
	root := testutil.NewTestRoot(t).
		WithFile(".gitignore", "drafts\n*.tmp\n").
		Build()

	set := Build(root.Path)

	tests := []struct {
		name    string
		ignored bool
	}{
		{name: "drafts", ignored: true},
		{name: "notes.tmp", ignored: true},
		{name: "keep.md", ignored: false},
	}
	for _, tt := range tests {
		if got := set.Ignored(tt.name); got != tt.ignored {
			t.Errorf("Ignored(%q) = %v, want %v", tt.name, got, tt.ignored)
		}
	}
}

func TestIgnored_Negation(t *testing.T) {
	// Later patterns win: .gitignore is read after .ignore, so its
	// negation overrides the earlier exclusion.
	root := testutil.NewTestRoot(t).
		WithFile(".ignore", "*.md\n").
		WithFile(".gitignore", "!keep.md\n").
		Build()

	set := Build(root.Path)
	if !set.Ignored("other.md") {
		t.Error("other.md should be ignored by *.md")
	}
	if set.Ignored("keep.md") {
		t.Error("keep.md should be un-ignored by the negation")
	}
}

func TestIgnored_BothFilesContribute(t *testing.T) {
	root := testutil.NewTestRoot(t).
		WithFile(".ignore", "alpha\n").
		WithFile(".gitignore", "beta\n").
		Build()

	set := Build(root.Path)
	if !set.Ignored("alpha") || !set.Ignored("beta") {
		t.Error("patterns from both files should apply")
	}
	if set.Ignored("gamma") {
		t.Error("gamma matches no pattern")
	}
}

func TestIgnored_CommentsAndBlankLines(t *testing.T) {
	root := testutil.NewTestRoot(t).
		WithFile(".gitignore", "# build output\n\ndrafts\n").
		Build()

	set := Build(root.Path)
	if !set.Ignored("drafts") {
		t.Error("pattern after comment/blank lines should apply")
	}
	if set.Ignored("# build output") {
		t.Error("comment lines are not patterns")
	}
}

func TestIgnored_NilSet(t *testing.T) {
	var set *Set
	if set.Ignored("x") {
		t.Error("nil set should ignore nothing")
	}
}
