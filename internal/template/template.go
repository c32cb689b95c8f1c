// Package template parses note templates: a YAML document describing the
// directory/file skeleton of a folder note plus the content injected into
// its main file.
//
// The format is a recursive map under the top-level `paths` key. A value
// that is an empty map (or null) is an empty directory, a nested map is a
// subdirectory, and a string is a file with that literal content. The
// optional top-level keys "main.typ" and "main.md" hold main-file content;
// only the one matching the note's type is ever written.
package template

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ndreas/nota/internal/note"
)

// ParseError reports a malformed template document.
type ParseError struct {
	Path   string // offending entry inside the document, "/"-joined
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid template: %s: %s", e.Path, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid template: %v", e.Err)
	}
	return fmt.Sprintf("invalid template: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NodeKind tags the three node shapes a template entry can take.
type NodeKind int

const (
	EmptyDir NodeKind = iota
	Dir
	File
)

// Node is one entry in the parsed template tree.
type Node struct {
	Kind     NodeKind
	Children map[string]*Node // set when Kind == Dir
	Content  string           // set when Kind == File
}

// UnmarshalYAML maps the document's three-way polymorphism (empty map,
// nested map, string) onto the tagged Node form so materialization never
// has to shape-sniff.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		if len(value.Content) == 0 {
			n.Kind = EmptyDir
			return nil
		}
		n.Kind = Dir
		n.Children = make(map[string]*Node, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			name := value.Content[i].Value
			child := &Node{}
			if err := child.UnmarshalYAML(value.Content[i+1]); err != nil {
				return err
			}
			n.Children[name] = child
		}
		return nil
	case yaml.ScalarNode:
		switch value.Tag {
		case "!!null":
			n.Kind = EmptyDir
			return nil
		case "!!str":
			n.Kind = File
			n.Content = value.Value
			return nil
		}
		return fmt.Errorf("line %d: entry must be a map or a string, got %s", value.Line, value.Tag)
	}
	return fmt.Errorf("line %d: entry must be a map or a string", value.Line)
}

// Template is a parsed note template.
type Template struct {
	Paths   map[string]*Node
	mainTyp *string
	mainMd  *string
}

// Main returns the main-file content for the given note type, or the empty
// string when the template defines none.
func (t *Template) Main(typ note.Type) string {
	switch {
	case typ == note.Typst && t.mainTyp != nil:
		return *t.mainTyp
	case typ == note.Markdown && t.mainMd != nil:
		return *t.mainMd
	}
	return ""
}

type document struct {
	Paths   map[string]*Node `yaml:"paths"`
	MainTyp *string          `yaml:"main.typ"`
	MainMd  *string          `yaml:"main.md"`
}

// Parse parses a template document and validates entry names.
func Parse(data []byte) (*Template, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: err.Error(), Err: err}
	}

	tpl := &Template{
		Paths:   doc.Paths,
		mainTyp: doc.MainTyp,
		mainMd:  doc.MainMd,
	}
	if tpl.Paths == nil {
		tpl.Paths = map[string]*Node{}
	}

	if err := validateNames("", tpl.Paths); err != nil {
		return nil, err
	}
	return tpl, nil
}

// LoadFile loads and parses a template from a YAML file.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tpl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tpl, nil
}

func validateNames(prefix string, nodes map[string]*Node) error {
	for name, child := range nodes {
		at := name
		if prefix != "" {
			at = prefix + "/" + name
		}
		if err := checkName(name); err != nil {
			return &ParseError{Path: at, Reason: err.Error()}
		}
		if child != nil && child.Kind == Dir {
			if err := validateNames(at, child.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkName rejects names that are not single path segments. Templates are
// user input; a name like "../x" must never escape the note directory.
func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("entry name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("entry name cannot be %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("entry name cannot contain path separators")
	}
	return nil
}
