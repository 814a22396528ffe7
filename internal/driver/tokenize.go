package driver

import (
	"fmt"

	"fstlex/internal/lexer"
	"fstlex/internal/registry"
	"fstlex/internal/source"
	"fstlex/internal/token"
)

// TokenizeResult bundles a tokenized file with the FileSet that resolves its
// spans.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // полный поток, включая завершающий EOF
	Lexer   *registry.Config
	Cached  bool
}

// Scan collects the full token stream for file, trailing EOF included.
func Scan(file *source.File, cfg *registry.Config) []token.Token {
	lx := lexer.New(file, cfg.Dialect)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Tokenize loads path and tokenizes it with the given lexer. A nil cache
// disables caching; a cache hit skips the scan and re-slices the stream from
// the file bytes.
func Tokenize(path string, cfg *registry.Config, cache *TokenCache) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	if tokens, ok := cache.Get(file, cfg.Name); ok {
		return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Lexer: cfg, Cached: true}, nil
	}

	tokens := Scan(file, cfg)
	// Кэш — только ускорение; ошибка записи не валит токенизацию
	_ = cache.Put(file, cfg.Name, tokens)
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Lexer: cfg}, nil
}
