package dialect

import "fmt"

// Kind identifies a lexer dialect: the F* base language or the Pulse
// extension embedded in the same file extensions.
type Kind uint8

const (
	Unknown Kind = iota
	FStar
	Pulse

	kindCount
)

func (k Kind) String() string {
	switch k {
	case FStar:
		return "fstar"
	case Pulse:
		return "pulse"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}

// AllowsDigitsInWords reports whether the dialect's word rule accepts digits.
// The base lexer scans [a-zA-Z_0-9]+ runs; the Pulse lexer scans [a-zA-Z_]+
// only. The asymmetry comes from the original lexer definitions and is kept
// as documented behavior.
func (k Kind) AllowsDigitsInWords() bool {
	return k != Pulse
}
