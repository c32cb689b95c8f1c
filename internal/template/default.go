package template

const defaultMainTyp = `#set page(paper: "a4", margin: 2.5cm)
#set text(size: 11pt)
#set heading(numbering: "1.1")

= Introduction

= Conclusion

#bibliography("bibliography/refs.bib")
`

const defaultRefsBib = `@article{example,
  author  = {Author, A.},
  title   = {An Example Entry},
  journal = {Journal of Examples},
  year    = {2024},
}
`

// Default returns the built-in template used when none is supplied: a
// bibliography directory with a starter refs.bib, empty chapter and images
// directories, and a typst main file. No markdown main content is defined,
// so a default markdown folder note starts with an empty main.md.
func Default() *Template {
	mainTyp := defaultMainTyp
	return &Template{
		Paths: map[string]*Node{
			"bibliography": {
				Kind: Dir,
				Children: map[string]*Node{
					"refs.bib": {Kind: File, Content: defaultRefsBib},
				},
			},
			"chapter": {Kind: EmptyDir},
			"images":  {Kind: EmptyDir},
		},
		mainTyp: &mainTyp,
	}
}
