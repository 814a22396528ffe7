// Package registry holds the host-facing registration contract: every lexer
// variant exposes a stable name, aliases, and filename globs that a host's
// file-type detection can match against. The host owns everything past this
// boundary (invoking the lexer per file and rendering the token stream).
package registry

import (
	"path/filepath"

	"golang.org/x/text/cases"

	"fstlex/internal/dialect"
)

// Config describes one registered lexer variant.
type Config struct {
	// Name is the stable identifying name (e.g. "FStar").
	Name string
	// Aliases are alternative lookup names, matched case-insensitively.
	Aliases []string
	// Filenames are glob patterns matched against a file's base name.
	Filenames []string
	// Dialect selects the keyword set and word rule for the lexer.
	Dialect dialect.Kind
}

var (
	entries []*Config
	byName  = make(map[string]*Config)
)

// fold canonicalizes lookup keys. A cases.Caser is stateful, поэтому свой на
// каждый вызов.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Register adds a lexer configuration. Later registrations never displace
// earlier ones in Match order. Panics on a name/alias collision: the tables
// are wired at init time and a collision is an authoring bug.
func Register(cfg *Config) *Config {
	keys := append([]string{cfg.Name}, cfg.Aliases...)
	for _, key := range keys {
		folded := fold(key)
		if _, dup := byName[folded]; dup {
			panic("registry: duplicate lexer name " + key)
		}
		byName[folded] = cfg
	}
	entries = append(entries, cfg)
	return cfg
}

// Get resolves a lexer by name or alias, case-insensitively.
func Get(name string) (*Config, bool) {
	cfg, ok := byName[fold(name)]
	return cfg, ok
}

// Match returns every registered lexer whose filename globs match the base
// name of path, in registration order. Both dialects claim *.fst and *.fsti,
// so callers pick by convention (first match) or by explicit name.
func Match(path string) []*Config {
	base := filepath.Base(path)
	var out []*Config
	for _, cfg := range entries {
		for _, pattern := range cfg.Filenames {
			ok, err := filepath.Match(pattern, base)
			if err != nil {
				continue // невалидный паттерн — авторская ошибка, не рантайм
			}
			if ok {
				out = append(out, cfg)
				break
			}
		}
	}
	return out
}

// All returns the registered configurations in registration order.
func All() []*Config {
	out := make([]*Config, len(entries))
	copy(out, entries)
	return out
}

func init() {
	Register(&Config{
		Name:      "FStar",
		Aliases:   []string{"fstar"},
		Filenames: []string{"*.fst", "*.fsti"},
		Dialect:   dialect.FStar,
	})
	Register(&Config{
		Name:      "Pulse",
		Aliases:   []string{"pulse"},
		Filenames: []string{"*.fst", "*.fsti"},
		Dialect:   dialect.Pulse,
	})
}
