package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"fstlex/internal/source"
	"fstlex/internal/token"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// TokenCache хранит потоки токенов по хэшу содержимого на диске.
// Токены сериализуются как (kind, длина) записи: текст и span'ы
// восстанавливаются из байтов файла при чтении, поэтому попадание в кэш
// не может разойтись с содержимым. Thread-safe for concurrent access.
// A nil *TokenCache is valid and disables caching.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type tokenRecord struct {
	Kind uint8
	Len  uint32
}

type cachePayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	// Lexer is the registry name the stream was produced with.
	Lexer string
	// Size is len(file content) at Put time; a mismatch invalidates the entry.
	Size uint32
	// Records hold the stream without the EOF sentinel.
	Records []tokenRecord
}

// OpenTokenCache initializes and returns a token cache at the standard location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt opens a cache rooted at an explicit directory (tests).
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(hash [32]byte, lexerName string) string {
	hexKey := hex.EncodeToString(hash[:])
	// Для удобства читаемости/очистки — подкаталог "tokens".
	return filepath.Join(c.dir, "tokens", hexKey+"."+strings.ToLower(lexerName)+".mp")
}

// Put serializes and writes the token stream for file to the disk cache.
func (c *TokenCache) Put(file *source.File, lexerName string, tokens []token.Token) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := &cachePayload{
		Schema: cacheSchemaVersion,
		Lexer:  lexerName,
		Size:   uint32(len(file.Content)), //nolint:gosec // Cursor limit already checked this
	}
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			break
		}
		payload.Records = append(payload.Records, tokenRecord{
			Kind: uint8(tok.Kind),
			Len:  tok.Span.Len(),
		})
	}

	p := c.pathFor(file.Hash, lexerName)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name()) // после rename файла уже нет
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and reconstructs the token stream for file, if cached. The
// trailing EOF sentinel is re-added. Malformed or stale entries miss.
func (c *TokenCache) Get(file *source.File, lexerName string) ([]token.Token, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(file.Hash, lexerName)
	f, err := os.Open(p)
	if err != nil {
		return nil, false
	}
	defer func() {
		_ = f.Close()
	}()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != cacheSchemaVersion || payload.Lexer != lexerName {
		return nil, false
	}
	if payload.Size != uint32(len(file.Content)) { //nolint:gosec // см. Put
		return nil, false
	}

	tokens := make([]token.Token, 0, len(payload.Records)+1)
	var off uint32
	for _, rec := range payload.Records {
		end := off + rec.Len
		if rec.Len == 0 || end > payload.Size {
			return nil, false // битая запись — промах, пересканируем
		}
		sp := source.Span{File: file.ID, Start: off, End: end}
		tokens = append(tokens, token.Token{
			Kind: token.Kind(rec.Kind),
			Span: sp,
			Text: string(file.Content[sp.Start:sp.End]),
		})
		off = end
	}
	if off != payload.Size {
		return nil, false // поток не покрывает файл целиком
	}
	tokens = append(tokens, token.Token{
		Kind: token.EOF,
		Span: source.Span{File: file.ID, Start: off, End: off},
	})
	return tokens, true
}

// DropAll invalidates the cache, useful after format changes.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to rotate cache dir: %w", err)
	}
	return os.RemoveAll(old)
}
