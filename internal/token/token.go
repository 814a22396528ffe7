package token

import (
	"fstlex/internal/source"
)

// Token represents a single classified source span.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// IsKeyword reports whether the token is a reserved word of the active dialect.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool { return t.Kind == Comment }
