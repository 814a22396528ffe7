// Package token defines the token vocabulary emitted by the highlight lexers.
// Invariants:
//   - Token.Text is exactly the consumed slice of the original source.
//   - Token.Span matches Text (Start..End, byte offsets).
//   - Concatenating Text of every token of a file, in order, reproduces the
//     file byte-for-byte (the lexers are total: no gaps, no overlaps).
//   - Hosts only ever see Text, Comment, and Keyword; EOF is a stream
//     sentinel and carries empty Text.
package token
