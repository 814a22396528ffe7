package dialect

// baseWords is the F* reserved-word table: keywords, soft keywords, and a few
// special tokens (the `_` wildcard, the capitalized `Lemma`/`Tot`/`GTot`/`Dv`
// effect markers, `SMTPat`). Order is readability only; matching is by set.
var baseWords = []string{
	"attributes",
	"noeq",
	"unopteq",
	"and",
	"assert",
	"assert_norm",
	"assume",
	"begin",
	"by",
	"calc",
	"class",
	"decreases",
	"Dv",
	"effect",
	"eliminate",
	"else",
	"end",
	"ensures",
	"exception",
	"exists",
	"false",
	"friend",
	"forall",
	"fun",
	"function",
	"GTot",
	"if",
	"in",
	"include",
	"inline",
	"inline_for_extraction",
	"instance",
	"introduce",
	"irreducible",
	"let",
	"logic",
	"match",
	"module",
	"new",
	"new_effect",
	"layered_effect",
	"polymonadic_bind",
	"polymonadic_subcomp",
	"SMTPat",
	"noextract",
	"of",
	"open",
	"opaque",
	"private",
	"range_of",
	"rec",
	"reifiable",
	"reify",
	"reflectable",
	"requires",
	"returns",
	"set_range_of",
	"sub_effect",
	"synth",
	"then",
	"total",
	"Tot",
	"true",
	"try",
	"type",
	"unfold",
	"unfoldable",
	"val",
	"when",
	"with",
	"_",
	"Lemma",
}

// extensionWords is the Pulse vocabulary layered on top of baseWords.
// No disjointness is enforced: the union is idempotent anyway.
var extensionWords = []string{
	"fn",
	"fold",
	"rewrite",
	"each",
	"mut",
	"ghost",
	"atomic",
	"show_proof_state",
	"while",
	"invariant",
	"with_invariants",
	"opens",
	"parallel",
}

// Set is an immutable keyword-membership table.
type Set map[string]struct{}

// Contains reports whether word is a reserved word of the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func newSet(lists ...[]string) Set {
	s := make(Set)
	for _, list := range lists {
		for _, w := range list {
			s[w] = struct{}{}
		}
	}
	return s
}

var (
	baseSet     = newSet(baseWords)
	extendedSet = newSet(baseWords, extensionWords)
)

// Keywords returns the keyword set active for the given dialect.
// Unknown falls back to the base table.
func Keywords(k Kind) Set {
	if k == Pulse {
		return extendedSet
	}
	return baseSet
}

// BaseWords returns the ordered F* table (callers must not mutate it).
func BaseWords() []string { return baseWords }

// ExtensionWords returns the ordered Pulse table (callers must not mutate it).
func ExtensionWords() []string { return extensionWords }
