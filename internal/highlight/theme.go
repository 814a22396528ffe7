package highlight

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"fstlex/internal/token"
)

// Theme maps token kinds to terminal styles. Loaded from TOML:
//
//	[styles.keyword]
//	color = "5"
//	bold = true
//
//	[styles.comment]
//	color = "8"
//	italic = true
type Theme struct {
	Styles stylesConfig `toml:"styles"`
}

type stylesConfig struct {
	Keyword StyleConfig `toml:"keyword"`
	Comment StyleConfig `toml:"comment"`
	Text    StyleConfig `toml:"text"`
}

// StyleConfig is one token-kind style. Color accepts anything lipgloss
// understands: ANSI indexes ("5"), 256-color indexes ("212"), or hex.
type StyleConfig struct {
	Color  string `toml:"color"`
	Bold   bool   `toml:"bold"`
	Italic bool   `toml:"italic"`
}

// DefaultTheme returns the built-in theme used when no --theme is given.
func DefaultTheme() Theme {
	return Theme{
		Styles: stylesConfig{
			Keyword: StyleConfig{Color: "5", Bold: true},
			Comment: StyleConfig{Color: "8", Italic: true},
			Text:    StyleConfig{},
		},
	}
}

// LoadTheme reads a theme file, overlaying the defaults: sections the file
// does not define keep their built-in style.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	var loaded Theme
	meta, err := toml.DecodeFile(path, &loaded)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("styles") {
		return Theme{}, fmt.Errorf("%s: missing [styles]", path)
	}

	if meta.IsDefined("styles", "keyword") {
		theme.Styles.Keyword = loaded.Styles.Keyword
	}
	if meta.IsDefined("styles", "comment") {
		theme.Styles.Comment = loaded.Styles.Comment
	}
	if meta.IsDefined("styles", "text") {
		theme.Styles.Text = loaded.Styles.Text
	}
	return theme, nil
}

// style compiles the lipgloss style for a token kind.
func (t Theme) style(kind token.Kind) lipgloss.Style {
	var cfg StyleConfig
	switch kind {
	case token.Keyword:
		cfg = t.Styles.Keyword
	case token.Comment:
		cfg = t.Styles.Comment
	default:
		cfg = t.Styles.Text
	}

	st := lipgloss.NewStyle()
	if cfg.Color != "" {
		st = st.Foreground(lipgloss.Color(cfg.Color))
	}
	if cfg.Bold {
		st = st.Bold(true)
	}
	if cfg.Italic {
		st = st.Italic(true)
	}
	return st
}
