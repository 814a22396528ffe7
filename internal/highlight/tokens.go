package highlight

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fstlex/internal/source"
	"fstlex/internal/token"
)

type TokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
}

var (
	keywordLabel = color.New(color.FgMagenta, color.Bold)
	commentLabel = color.New(color.FgGreen)
)

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, useColor bool) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		label := tok.Kind.String()
		if useColor {
			switch tok.Kind {
			case token.Keyword:
				label = keywordLabel.Sprint(label)
			case token.Comment:
				label = commentLabel.Sprint(label)
			}
		}

		fmt.Fprintf(w, "%3d: %-10s", i+1, label)

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
