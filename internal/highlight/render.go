package highlight

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fstlex/internal/token"
)

// Render writes the original source with ANSI styling per token kind.
// Unstyled kinds pass through verbatim, so a theme with no [styles.text]
// section keeps whitespace and identifiers byte-exact.
func Render(w io.Writer, tokens []token.Token, theme Theme) error {
	_, err := io.WriteString(w, RenderString(tokens, theme))
	return err
}

// RenderString renders the token stream to a string (used by the pager).
func RenderString(tokens []token.Token, theme Theme) string {
	keywordStyle := theme.style(token.Keyword)
	commentStyle := theme.style(token.Comment)
	textStyle := theme.style(token.Text)

	var sb strings.Builder
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		switch {
		case tok.Kind == token.Keyword && theme.Styles.Keyword != (StyleConfig{}):
			sb.WriteString(keywordStyle.Render(tok.Text))
		case tok.Kind == token.Comment && theme.Styles.Comment != (StyleConfig{}):
			sb.WriteString(renderMultiline(commentStyle, tok.Text))
		case tok.Kind == token.Text && theme.Styles.Text != (StyleConfig{}):
			sb.WriteString(renderMultiline(textStyle, tok.Text))
		default:
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}

// renderMultiline стилизует построчно: эскейпы не должны пересекать \n,
// иначе пейджер режет строки вместе с незакрытым стилем.
func renderMultiline(st lipgloss.Style, text string) string {
	if !strings.Contains(text, "\n") {
		return st.Render(text)
	}
	lines := strings.Split(text, "\n")
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line != "" {
			sb.WriteString(st.Render(line))
		}
	}
	return sb.String()
}
