package slugs

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "My Note.md", want: "my-note.md"},
		{in: "Reading List", want: "reading-list"},
		{in: "Thesis Draft.TYP", want: "thesis-draft.typ"},
		{in: "already-slugged", want: "already-slugged"},
		{in: "Caffè Notes", want: "caffe-notes"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "projects/My Note", want: "projects/my-note"},
		{in: "Plain Name.md", want: "plain-name.md"},
		{in: "a/b/Deep Note.typ", want: "a/b/deep-note.typ"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Path(tt.in); got != tt.want {
				t.Errorf("Path(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
