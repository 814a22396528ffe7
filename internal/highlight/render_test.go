package highlight

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"fstlex/internal/dialect"
	"fstlex/internal/lexer"
	"fstlex/internal/source"
	"fstlex/internal/token"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func tokenizeForTest(t *testing.T, input string, kind dialect.Kind) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("render.fst", []byte(input)))
	lx := lexer.New(file, kind)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func TestRender_EmptyThemePassesThrough(t *testing.T) {
	input := "let x = 1 (* c *) // t\nval y\n"
	tokens := tokenizeForTest(t, input, dialect.FStar)

	var buf bytes.Buffer
	if err := Render(&buf, tokens, Theme{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != input {
		t.Errorf("unstyled render must be byte-exact:\n got %q\nwant %q", buf.String(), input)
	}
}

func TestRender_StyledKeepsTextAfterStripping(t *testing.T) {
	input := "let id x = x // tail\n(* multi\nline *)done"
	tokens := tokenizeForTest(t, input, dialect.FStar)

	out := RenderString(tokens, DefaultTheme())
	if got := ansiRE.ReplaceAllString(out, ""); got != input {
		t.Errorf("styled render must preserve text:\n got %q\nwant %q", got, input)
	}
}

func TestRender_NoEscapeCrossesNewline(t *testing.T) {
	input := "(* a\nb *)\n"
	tokens := tokenizeForTest(t, input, dialect.FStar)

	out := RenderString(tokens, DefaultTheme())
	for _, line := range strings.Split(out, "\n") {
		opens := strings.Count(line, "\x1b[")
		if opens == 1 {
			t.Errorf("dangling escape on line %q", line)
		}
	}
}

func TestFormatTokens_JSONAndPretty(t *testing.T) {
	input := "let x // c\n"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fmt.fst", []byte(input)))
	lx := lexer.New(file, dialect.FStar)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens, fs, false); err != nil {
		t.Fatal(err)
	}
	for _, wantSub := range []string{"Keyword", `"let"`, "Comment", "at 1:1-1:4"} {
		if !strings.Contains(pretty.String(), wantSub) {
			t.Errorf("pretty output missing %q:\n%s", wantSub, pretty.String())
		}
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, tokens); err != nil {
		t.Fatal(err)
	}
	for _, wantSub := range []string{`"kind": "Keyword"`, `"text": "let"`, `"span"`} {
		if !strings.Contains(js.String(), wantSub) {
			t.Errorf("json output missing %q:\n%s", wantSub, js.String())
		}
	}
	if strings.Contains(js.String(), `"EOF"`) {
		t.Error("EOF must not appear in JSON output")
	}
}
