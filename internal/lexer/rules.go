package lexer

import (
	"fstlex/internal/token"
)

// rule is one entry of the match chain: a matcher paired with the kind it
// emits. Matchers advance the cursor past the consumed prefix on success and
// leave it untouched on failure.
type rule struct {
	kind  token.Kind
	match func(*Lexer) bool
}

// ruleChain is evaluated in declaration order, first match wins. The order
// is part of the observable contract:
//
//  1. single ' '            -> Text
//  2. single '\n'           -> Text
//  3. single '\r'           -> Text
//  4. "//" ... incl. '\n'   -> Comment (newline required)
//  5. "(*" ... first "*)"   -> Comment (non-nesting)
//  6. keyword + word break  -> Keyword
//  7. word run              -> Text
//  8. one rune              -> Text (catch-all, guarantees progress)
var ruleChain = []rule{
	{token.Text, (*Lexer).matchSpace},
	{token.Text, (*Lexer).matchNewline},
	{token.Text, (*Lexer).matchCarriageReturn},
	{token.Comment, (*Lexer).matchLineComment},
	{token.Comment, (*Lexer).matchBlockComment},
	{token.Keyword, (*Lexer).matchKeyword},
	{token.Text, (*Lexer).matchWordRun},
	{token.Text, (*Lexer).matchAnyRune},
}

func (lx *Lexer) matchSpace() bool { return lx.cursor.Eat(' ') }

func (lx *Lexer) matchNewline() bool { return lx.cursor.Eat('\n') }

func (lx *Lexer) matchCarriageReturn() bool { return lx.cursor.Eat('\r') }

// matchLineComment consumes "//" through the next '\n', newline included.
// Without a trailing newline the rule does NOT match: a line comment cut off
// by EOF falls through to the word/catch-all rules. Inherited quirk, keep it.
func (lx *Lexer) matchLineComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' || b1 != '/' {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\n' {
			return true
		}
	}
	// EOF раньше \n — правило не матчится
	lx.cursor.Reset(start)
	return false
}

// matchBlockComment consumes "(*" through the FIRST following "*)".
// Block comments do not nest here: `(* a (* b *)` ends at the inner close,
// exactly like the pattern \([*]([^*]|[*]+[^)])*[*]+\). Without a close
// delimiter the rule does not match at all.
func (lx *Lexer) matchBlockComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '(' || b1 != '*' {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	for {
		b0, b1, ok := lx.cursor.Peek2()
		if !ok {
			break
		}
		if b0 == '*' && b1 == ')' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return true
		}
		lx.cursor.Bump()
	}
	lx.cursor.Reset(start)
	return false
}

// matchKeyword matches a whole word from the active keyword set. The word
// boundary follows \b: the match is rejected when the next rune is a letter,
// digit, or underscore, so `letrec` never yields the keyword `let`.
func (lx *Lexer) matchKeyword() bool {
	start := lx.cursor.Mark()
	for isWordByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Empty() {
		return false
	}
	if r, sz := lx.peekRune(); sz > 0 && isWordRune(r) {
		// Следующая руна продолжает слово (не-ASCII буква/цифра)
		lx.cursor.Reset(start)
		return false
	}
	word := string(lx.file.Content[sp.Start:sp.End])
	if !lx.keywords.Contains(word) {
		lx.cursor.Reset(start)
		return false
	}
	return true
}

// matchWordRun consumes a maximal identifier-ish run. The base lexer accepts
// digits in the run; the Pulse lexer does not (wordDigits).
func (lx *Lexer) matchWordRun() bool {
	matched := false
	for {
		b := lx.cursor.Peek()
		if !(isAlphaByte(b) || b == '_' || (lx.wordDigits && isDec(b))) {
			break
		}
		lx.cursor.Bump()
		matched = true
	}
	return matched
}

// matchAnyRune consumes exactly one rune. Never fails before EOF.
func (lx *Lexer) matchAnyRune() bool {
	if lx.cursor.EOF() {
		return false
	}
	lx.bumpRune()
	return true
}
