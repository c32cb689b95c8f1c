package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndreas/nota/internal/config"
	"github.com/ndreas/nota/internal/note"
	"github.com/ndreas/nota/internal/scaffold"
	"github.com/ndreas/nota/internal/slugs"
	"github.com/ndreas/nota/internal/template"
	"github.com/ndreas/nota/internal/ui"
)

var (
	newTypeFlag     string
	newSingleFlag   bool
	newTemplateFlag string
	newAuthorFlag   string
	newKeywordFlags []string
	newNoMetadata   bool
	newSlugFlag     bool
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new note",
	Long: `Creates a new note under the notes directory.

By default this scaffolds a folder note from the template: the directory
skeleton from the template's paths plus a main.typ or main.md. A name with
a recognized extension (.md, .typ) creates a single-file note instead, and
the type is inferred from the extension.

Examples:
  nota new thesis                    # folder note thesis/ with main.typ
  nota new ideas.md                  # single-file markdown note
  nota new meeting --type md         # folder note with main.md
  nota new scratch --single-file     # single file, extension from type
  nota new "Reading List" --slug     # creates reading-list/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if newSlugFlag {
			name = slugs.Path(name)
		}

		// Names live under the root; explicit paths are taken as given.
		target := name
		if !filepath.IsAbs(target) && !strings.ContainsRune(target, os.PathSeparator) {
			target = filepath.Join(getRoot(), target)
		}

		typ, fileNote, err := resolveNewType(target)
		if err != nil {
			return handleError(ErrInvalidInput, err, "Use --type md or --type typ")
		}
		if !fileNote && newSingleFlag {
			fileNote = true
			target += typ.Ext()
		}

		tpl, err := loadNewTemplate()
		if err != nil {
			return handleError(ErrTemplateInvalid, err, "")
		}

		var meta *scaffold.Metadata
		if !newNoMetadata {
			author := newAuthorFlag
			if author == "" {
				author = getConfig().GetAuthor()
			}
			title := strings.TrimSuffix(filepath.Base(target), filepath.Ext(target))
			meta = &scaffold.Metadata{
				Title:    title,
				Author:   author,
				Keywords: newKeywordFlags,
			}
		}

		err = scaffold.Materialize(target, scaffold.Options{
			Template: tpl,
			Type:     typ,
			FileNote: fileNote,
			Metadata: meta,
		})
		if err != nil {
			if errors.Is(err, scaffold.ErrExists) {
				return handleError(ErrNoteExists, err, "Pick another name or remove the existing note")
			}
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			n, _ := note.Classify(target)
			if n != nil {
				outputSuccess(recordFor(n, ""), nil)
			}
			return nil
		}

		fmt.Println(ui.Successf("Created %s", ui.NotePath(target)))
		return nil
	},
}

// resolveNewType decides the note type and file-vs-folder duality for a
// target: a recognized extension implies a single-file note of that type,
// otherwise --type, then NOTA_TYPE, then typst.
func resolveNewType(target string) (note.Type, bool, error) {
	if typ, ok := note.TypeForExt(filepath.Ext(target)); ok {
		return typ, true, nil
	}

	name := newTypeFlag
	if name == "" {
		name = os.Getenv(config.EnvType)
	}
	if name == "" {
		return note.Typst, false, nil
	}
	typ, err := note.ParseType(name)
	return typ, false, err
}

// loadNewTemplate loads the template from --template, then NOTA_TEMPLATE or
// config, then the built-in default.
func loadNewTemplate() (*template.Template, error) {
	path := newTemplateFlag
	if path == "" {
		path = getConfig().GetTemplate()
	}
	if path == "" {
		return template.Default(), nil
	}
	return template.LoadFile(path)
}

func init() {
	newCmd.Flags().StringVarP(&newTypeFlag, "type", "t", "", "Note type: md or typ (default typ, or $NOTA_TYPE)")
	newCmd.Flags().BoolVarP(&newSingleFlag, "single-file", "s", false, "Create a single file instead of a folder note")
	newCmd.Flags().StringVarP(&newTemplateFlag, "template", "S", "", "Template file (YAML); default from config or $NOTA_TEMPLATE")
	newCmd.Flags().StringVarP(&newAuthorFlag, "author", "a", "", "Author for note metadata (default from config or $NOTA_AUTHOR)")
	newCmd.Flags().StringArrayVarP(&newKeywordFlags, "keyword", "k", nil, "Keyword for note metadata (can be repeated)")
	newCmd.Flags().BoolVar(&newNoMetadata, "no-metadata", false, "Skip the metadata header in the main file")
	newCmd.Flags().BoolVar(&newSlugFlag, "slug", false, "Slugify the note name (\"Reading List\" -> reading-list)")
	rootCmd.AddCommand(newCmd)
}
