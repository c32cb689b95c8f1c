package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/resolver"
	"github.com/ndreas/nota/internal/ui"
)

// noteRecord is the JSON shape of one note across list/search/resolve
// output.
type noteRecord struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"` // "file" or "folder"
	Type     string    `json:"type"` // "md" or "typ"
	Path     string    `json:"path"`
	Main     string    `json:"main"`
	Title    string    `json:"title,omitempty"`
	Modified time.Time `json:"modified"`
	Created  time.Time `json:"created"`
}

func recordFor(n *note.Note, title string) noteRecord {
	kind := "file"
	if n.Kind == note.FolderNote {
		kind = "folder"
	}
	return noteRecord{
		Name:     n.Name,
		Kind:     kind,
		Type:     n.Type.String(),
		Path:     n.Path,
		Main:     n.MainPath(),
		Title:    title,
		Modified: n.Modified,
		Created:  n.Created,
	}
}

// resolveNote resolves a name-or-path argument against the notes root.
func resolveNote(ref string) (*note.Note, error) {
	return resolver.Resolve(getRoot(), ref)
}

// handleResolveError reports a resolution failure, listing candidates when
// the reference was ambiguous.
func handleResolveError(err error, ref string) error {
	var ambiguous *resolver.AmbiguousError
	if errors.As(err, &ambiguous) {
		if isJSONOutput() {
			records := make([]noteRecord, len(ambiguous.Candidates))
			for i, n := range ambiguous.Candidates {
				records[i] = recordFor(n, "")
			}
			outputError(ErrNoteAmbiguous,
				fmt.Sprintf("%q matches multiple notes", ref),
				map[string]interface{}{"candidates": records},
				"Use a more specific name or a path")
			return nil
		}
		fmt.Fprintf(os.Stderr, "%q matches multiple notes:\n", ref)
		for _, n := range ambiguous.Candidates {
			fmt.Fprintf(os.Stderr, "  %s\n", ui.NotePath(n.Name))
		}
		return fmt.Errorf("ambiguous note name %q", ref)
	}

	var notFound *resolver.NotFoundError
	if errors.As(err, &notFound) {
		return handleErrorMsg(ErrNoteNotFound, err.Error(), "Run 'nota list' to see available notes")
	}
	return handleError(ErrNoteInvalid, err, "")
}
