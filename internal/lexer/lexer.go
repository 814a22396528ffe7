package lexer

import (
	"fstlex/internal/dialect"
	"fstlex/internal/source"
	"fstlex/internal/token"
)

type Lexer struct {
	file       *source.File
	cursor     Cursor
	keywords   dialect.Set
	wordDigits bool
	look       *token.Token // 1-элементный буфер для Peek
}

// New creates a lexer over file configured for the given dialect.
// A Lexer is a single non-restartable pass; create a new one per scan.
// Distinct lexers never share mutable state and may run concurrently.
func New(file *source.File, kind dialect.Kind) *Lexer {
	return &Lexer{
		file:       file,
		cursor:     NewCursor(file),
		keywords:   dialect.Keywords(kind),
		wordDigits: kind.AllowsDigitsInWords(),
	}
}

// Next returns the next token. After the input is exhausted it returns EOF
// tokens forever. Tokenization cannot fail: every byte of the file lands in
// exactly one token, so concatenating Token.Text over the whole stream
// reproduces the file.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	start := lx.cursor.Mark()
	for _, r := range ruleChain {
		if r.match(lx) {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: r.kind,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			}
		}
	}

	// Недостижимо: catch-all съедает руну на любой не-EOF позиции.
	panic("lexer: rule chain made no progress")
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
