package scaffold

import (
	"fmt"
	"strings"
	"time"

	"github.com/ndreas/nota/internal/note"
)

// Metadata is the document header injected at the top of a new note's main
// file: YAML frontmatter for markdown, a #set document(...) rule for typst.
type Metadata struct {
	Title    string
	Author   string
	Keywords []string

	// Now is the creation timestamp; the zero value means time.Now().
	Now time.Time
}

// Render formats the header for the given note type.
func (m *Metadata) Render(typ note.Type) string {
	now := m.Now
	if now.IsZero() {
		now = time.Now()
	}

	if typ == note.Markdown {
		var b strings.Builder
		b.WriteString("---\n")
		fmt.Fprintf(&b, "title: %q\n", m.Title)
		if m.Author != "" {
			fmt.Fprintf(&b, "author: %q\n", m.Author)
		}
		if len(m.Keywords) > 0 {
			fmt.Fprintf(&b, "keywords: [%s]\n", strings.Join(m.Keywords, ", "))
		}
		fmt.Fprintf(&b, "date: %q\n", now.Format("2006-01-02 15:04:05"))
		b.WriteString("---\n\n")
		return b.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#set document(title: %q", m.Title)
	if m.Author != "" {
		fmt.Fprintf(&b, ", author: %q", m.Author)
	}
	if len(m.Keywords) > 0 {
		fmt.Fprintf(&b, ", keywords: (%s)", strings.Join(m.Keywords, ", "))
	}
	fmt.Fprintf(&b, ", date: datetime(year: %d, month: %d, day: %d, hour: %d, minute: %d, second: %d))\n\n",
		now.Year(), int(now.Month()), now.Day(), now.Hour(), now.Minute(), now.Second())
	return b.String()
}
