package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fstlex/internal/registry"
	"fstlex/internal/token"
)

func mustLexer(t *testing.T, name string) *registry.Config {
	t.Helper()
	cfg, ok := registry.Get(name)
	if !ok {
		t.Fatalf("lexer %q not registered", name)
	}
	return cfg
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func joinTokens(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestTokenize_RoundTripNoCache(t *testing.T) {
	input := "module Demo\nlet x = 1 (* c *) // tail\n"
	path := writeSource(t, t.TempDir(), "demo.fst", input)

	res, err := Tokenize(path, mustLexer(t, "fstar"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Error("nil cache must never report a hit")
	}
	if got := joinTokens(res.Tokens); got != input {
		t.Errorf("round-trip mismatch:\n got %q\nwant %q", got, input)
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != token.EOF {
		t.Errorf("stream must end with EOF, got %v", last.Kind)
	}
}

func TestTokenize_MissingFile(t *testing.T) {
	_, err := Tokenize(filepath.Join(t.TempDir(), "absent.fst"), mustLexer(t, "fstar"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestTokenCache_HitReproducesStream(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	input := "let rec f x = f x // loop\n"
	path := writeSource(t, t.TempDir(), "loop.fst", input)
	cfg := mustLexer(t, "fstar")

	first, err := Tokenize(path, cfg, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatal("first pass must scan")
	}

	second, err := Tokenize(path, cfg, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatal("second pass must hit the cache")
	}
	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("token count changed: %d vs %d", len(second.Tokens), len(first.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i].Kind != second.Tokens[i].Kind || first.Tokens[i].Text != second.Tokens[i].Text {
			t.Errorf("token %d differs: %v %q vs %v %q", i,
				first.Tokens[i].Kind, first.Tokens[i].Text,
				second.Tokens[i].Kind, second.Tokens[i].Text)
		}
	}
	if got := joinTokens(second.Tokens); got != input {
		t.Errorf("cached round-trip mismatch: got %q", got)
	}
}

func TestTokenCache_KeyedByLexer(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	input := "fn main1\n"
	path := writeSource(t, t.TempDir(), "k.fst", input)

	if _, err := Tokenize(path, mustLexer(t, "fstar"), cache); err != nil {
		t.Fatal(err)
	}
	// Другой лексер не должен получить чужой поток: fn — keyword только в Pulse.
	res, err := Tokenize(path, mustLexer(t, "pulse"), cache)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Error("pulse must not hit an fstar entry")
	}
	if res.Tokens[0].Kind != token.Keyword || res.Tokens[0].Text != "fn" {
		t.Errorf("expected Keyword(fn), got %v %q", res.Tokens[0].Kind, res.Tokens[0].Text)
	}
}

func TestTokenCache_CorruptEntryMisses(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenTokenCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	input := "val x : int\n"
	path := writeSource(t, t.TempDir(), "c.fst", input)
	cfg := mustLexer(t, "fstar")

	if _, err := Tokenize(path, cfg, cache); err != nil {
		t.Fatal(err)
	}

	// Портим каждый файл кэша
	entries, err := filepath.Glob(filepath.Join(dir, "tokens", "*.mp"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("no cache entries written: %v", err)
	}
	for _, entry := range entries {
		if err := os.WriteFile(entry, []byte("garbage"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res, err := Tokenize(path, cfg, cache)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Error("corrupt entry must miss")
	}
	if got := joinTokens(res.Tokens); got != input {
		t.Errorf("rescan round-trip mismatch: got %q", got)
	}
}

func TestTokenCache_DropAll(t *testing.T) {
	dir := t.TempDir()
	cache, err := OpenTokenCacheAt(dir)
	if err != nil {
		t.Fatal(err)
	}
	input := "let a = b\n"
	path := writeSource(t, t.TempDir(), "d.fst", input)
	cfg := mustLexer(t, "fstar")

	if _, err := Tokenize(path, cfg, cache); err != nil {
		t.Fatal(err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	res, err := Tokenize(path, cfg, cache)
	if err != nil {
		t.Fatal(err)
	}
	if res.Cached {
		t.Error("DropAll must invalidate all entries")
	}
}

func TestTokenCache_NilSafe(t *testing.T) {
	var cache *TokenCache
	if _, ok := cache.Get(nil, "fstar"); ok {
		t.Error("nil cache Get must miss")
	}
	if err := cache.Put(nil, "fstar", nil); err != nil {
		t.Errorf("nil cache Put must be a no-op, got %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil cache DropAll must be a no-op, got %v", err)
	}
}

func TestListSourceFiles(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.fst", "let b = 1\n")
	writeSource(t, dir, "a.fsti", "val a : int\n")
	writeSource(t, dir, "notes.txt", "not a source file\n")
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSource(t, sub, "c.fst", "let c = 3\n")

	files, err := ListSourceFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if strings.HasSuffix(f, ".txt") {
			t.Errorf("unmatched file listed: %s", f)
		}
	}
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	inputs := map[string]string{
		"one.fst":  "module One\nlet x = 1\n",
		"two.fsti": "val y : int // decl\n",
	}
	for name, content := range inputs {
		writeSource(t, dir, name, content)
	}

	fileSet, results, err := TokenizeDir(context.Background(), dir, mustLexer(t, "fstar"), 2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("expected %d results, got %d", len(inputs), len(results))
	}
	for _, res := range results {
		if res.Err != nil {
			t.Errorf("%s: unexpected error %v", res.Path, res.Err)
			continue
		}
		want := inputs[filepath.Base(res.Path)]
		if got := joinTokens(res.Tokens); got != want {
			t.Errorf("%s: round-trip mismatch:\n got %q\nwant %q", res.Path, got, want)
		}
		if fileSet.Get(res.FileID) == nil {
			t.Errorf("%s: FileID not resolvable", res.Path)
		}
	}
}

func TestTokenizeDir_Empty(t *testing.T) {
	fileSet, results, err := TokenizeDir(context.Background(), t.TempDir(), mustLexer(t, "fstar"), 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if fileSet == nil {
		t.Fatal("expected a FileSet even for an empty dir")
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestTokenizeDir_CacheWarm(t *testing.T) {
	cache, err := OpenTokenCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	writeSource(t, dir, "warm.fst", "let warm = true\n")
	cfg := mustLexer(t, "fstar")

	_, first, err := TokenizeDir(context.Background(), dir, cfg, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Cached {
		t.Fatal("cold pass must scan")
	}

	_, second, err := TokenizeDir(context.Background(), dir, cfg, 1, cache)
	if err != nil {
		t.Fatal(err)
	}
	if !second[0].Cached {
		t.Error("warm pass must hit the cache")
	}
}
