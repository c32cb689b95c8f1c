// Package parser extracts display titles from note content for listings.
package parser

import (
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/ndreas/nota/internal/note"
)

// typstTitlePattern matches the title argument of a #set document(...) rule.
var typstTitlePattern = regexp.MustCompile(`#set\s+document\([^)]*title:\s*"([^"]*)"`)

// typstHeadingPattern matches a top-level typst heading line.
var typstHeadingPattern = regexp.MustCompile(`(?m)^=\s+(.+)$`)

// Title reads a note's main file and extracts a human title, or "" when the
// note has none. Read failures are treated as "no title"; listings must not
// fail because one note is unreadable.
func Title(n *note.Note) string {
	content, err := os.ReadFile(n.MainPath())
	if err != nil {
		return ""
	}
	if n.Type == note.Markdown {
		return MarkdownTitle(content)
	}
	return TypstTitle(content)
}

// MarkdownTitle extracts a title from markdown content: the frontmatter
// title field when present, otherwise the first heading.
func MarkdownTitle(content []byte) string {
	if title := frontmatterTitle(content); title != "" {
		return title
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(content))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var b strings.Builder
		for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
			if textNode, ok := child.(*ast.Text); ok {
				b.Write(textNode.Segment.Value(content))
			}
		}
		title = strings.TrimSpace(b.String())
		return ast.WalkStop, nil
	})
	return title
}

// TypstTitle extracts a title from typst content: the document title set
// via #set document(title: "...") when present, otherwise the first
// top-level heading.
func TypstTitle(content []byte) string {
	if m := typstTitlePattern.FindSubmatch(content); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	if m := typstHeadingPattern.FindSubmatch(content); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	return ""
}

// frontmatterTitle parses a leading YAML frontmatter block and returns its
// title field, if any.
func frontmatterTitle(content []byte) string {
	s := string(content)
	if !strings.HasPrefix(s, "---\n") && !strings.HasPrefix(s, "---\r\n") {
		return ""
	}
	rest := s[strings.Index(s, "\n")+1:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return ""
	}

	var meta struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), &meta); err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Title)
}
