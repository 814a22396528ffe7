// Package lexer implements the highlight tokenizers for F* and Pulse
// sources. A Lexer walks the file with a byte cursor and, at every position,
// tries a fixed, ordered chain of match rules, committing to the first rule
// that consumes a non-empty prefix. The final rule consumes exactly one rune,
// so the scan always advances: every input tokenizes completely, in one pass,
// with no error channel.
//
// Two configurations exist. The base (F*) lexer matches the base keyword
// table and word runs of [a-zA-Z_0-9]. The Pulse lexer matches the base
// table plus the Pulse extension words, and its word rule omits digits —
// an asymmetry inherited from the original lexer definitions and kept
// deliberately (see internal/dialect).
package lexer
