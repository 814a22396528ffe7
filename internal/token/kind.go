package token

// Kind represents the highlight category of a source span.
type Kind uint8

const (
	// Text represents any uncategorized span: whitespace, identifiers,
	// operators, literals. The catch-all category.
	Text Kind = iota
	// Comment represents a line or block comment, delimiters included.
	Comment
	// Keyword represents a reserved word of the active dialect.
	Keyword
	// EOF marks the end of the source input.
	EOF
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "Text"
	case Comment:
		return "Comment"
	case Keyword:
		return "Keyword"
	case EOF:
		return "EOF"
	default:
		return "Unknown"
	}
}
