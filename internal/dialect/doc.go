// Package dialect declares the reserved-word vocabularies recognized by the
// highlight lexers: the F* base language and the Pulse extension layered on
// top of it. Both tables are process-wide constants; the lexers only ever do
// set-membership checks against them.
//
// The tables mirror the upstream grammar loosely ("very rough lexer; not
// 100% precise") and are expected to drift as the language evolves — there
// is deliberately no completeness validation here.
package dialect
