// Package lexers registers the F* and Pulse syntax definitions with the
// chroma highlighting framework. The rule tables mirror internal/lexer: an
// ordered first-match chain over whitespace, comments, keywords, word runs,
// and a single-character fallback, so both implementations classify any input
// identically.
package lexers

import (
	. "github.com/alecthomas/chroma/v2" // nolint
	"github.com/alecthomas/chroma/v2/lexers"

	"fstlex/internal/dialect"
)

// FStar lexer.
var FStar = lexers.Register(MustNewLexer(
	&Config{
		Name:      "FStar",
		Aliases:   []string{"fstar"},
		Filenames: []string{"*.fst", "*.fsti"},
		MimeTypes: []string{},
	},
	fstarRules,
))

func fstarRules() Rules {
	return Rules{
		"root": {
			{Pattern: ` `, Type: Text, Mutator: nil},
			{Pattern: `\n`, Type: Text, Mutator: nil},
			{Pattern: `\r`, Type: Text, Mutator: nil},
			{Pattern: `//.*\n`, Type: CommentSingle, Mutator: nil},
			{Pattern: `\([*]([^*]|[*]+[^)])*[*]+\)`, Type: CommentMultiline, Mutator: nil},
			{Pattern: Words(``, `\b`, dialect.BaseWords()...), Type: Keyword, Mutator: nil},
			// Слова с цифрами — обычный текст, правило стоит после keywords
			{Pattern: `[a-zA-Z_0-9]+`, Type: Text, Mutator: nil},
			{Pattern: `.`, Type: Text, Mutator: nil},
		},
	}
}
