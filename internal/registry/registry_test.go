package registry

import (
	"testing"

	"fstlex/internal/dialect"
)

func TestGet_NameAndAliases(t *testing.T) {
	tests := []struct {
		lookup string
		want   dialect.Kind
	}{
		{"FStar", dialect.FStar},
		{"fstar", dialect.FStar},
		{"FSTAR", dialect.FStar},
		{"Pulse", dialect.Pulse},
		{"pulse", dialect.Pulse},
	}
	for _, tt := range tests {
		t.Run(tt.lookup, func(t *testing.T) {
			cfg, ok := Get(tt.lookup)
			if !ok {
				t.Fatalf("Get(%q) not found", tt.lookup)
			}
			if cfg.Dialect != tt.want {
				t.Errorf("Get(%q).Dialect = %v, want %v", tt.lookup, cfg.Dialect, tt.want)
			}
		})
	}

	if _, ok := Get("ocaml"); ok {
		t.Error("Get(ocaml) should not resolve")
	}
}

func TestMatch_Globs(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"Demo.fst", 2},
		{"Demo.fsti", 2},
		{"dir/sub/Demo.fst", 2},
		{"Demo.fs", 0},
		{"Demo.fst.bak", 0},
		{"fst", 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Match(tt.path)
			if len(got) != tt.want {
				t.Fatalf("Match(%q) returned %d configs, want %d", tt.path, len(got), tt.want)
			}
		})
	}
}

func TestMatch_RegistrationOrder(t *testing.T) {
	// Базовый лексер зарегистрирован первым — он и есть выбор по умолчанию
	got := Match("A.fsti")
	if len(got) != 2 || got[0].Name != "FStar" || got[1].Name != "Pulse" {
		t.Fatalf("unexpected match order: %v", got)
	}
}

func TestAll_IsACopy(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("All() = %d entries", len(all))
	}
	all[0] = nil
	if All()[0] == nil {
		t.Error("All() must return a copy")
	}
}
