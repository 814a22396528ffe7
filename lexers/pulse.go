package lexers

import (
	. "github.com/alecthomas/chroma/v2" // nolint
	"github.com/alecthomas/chroma/v2/lexers"

	"fstlex/internal/dialect"
)

// Pulse lexer. Extends the F* keyword set and, unlike F*, keeps digits out
// of the word rule, so "x1" splits into a word and a stray digit.
var Pulse = lexers.Register(MustNewLexer(
	&Config{
		Name:      "Pulse",
		Aliases:   []string{"pulse"},
		Filenames: []string{"*.fst", "*.fsti"},
		MimeTypes: []string{},
	},
	pulseRules,
))

func pulseRules() Rules {
	return Rules{
		"root": {
			{Pattern: ` `, Type: Text, Mutator: nil},
			{Pattern: `\n`, Type: Text, Mutator: nil},
			{Pattern: `\r`, Type: Text, Mutator: nil},
			{Pattern: `//.*\n`, Type: CommentSingle, Mutator: nil},
			{Pattern: `\([*]([^*]|[*]+[^)])*[*]+\)`, Type: CommentMultiline, Mutator: nil},
			{Pattern: Words(``, `\b`, pulseWords()...), Type: Keyword, Mutator: nil},
			{Pattern: `[a-zA-Z_]+`, Type: Text, Mutator: nil},
			{Pattern: `.`, Type: Text, Mutator: nil},
		},
	}
}

func pulseWords() []string {
	base, ext := dialect.BaseWords(), dialect.ExtensionWords()
	words := make([]string, 0, len(base)+len(ext))
	words = append(words, base...)
	return append(words, ext...)
}
