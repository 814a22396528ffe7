package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fstlex/internal/driver"
	"fstlex/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [flags] path...",
	Short: "Print sources with ANSI highlighting",
	Long: `Highlight writes each source to stdout with keywords and comments styled.
A directory argument highlights every matching file under it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHighlight,
}

func init() {
	highlightCmd.Flags().String("theme", "", "TOML theme file (built-in theme when empty)")
	highlightCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	themePath, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cfg, err := lexerFromFlags(cmd)
	if err != nil {
		return err
	}

	theme := highlight.DefaultTheme()
	if themePath != "" {
		theme, err = highlight.LoadTheme(themePath)
		if err != nil {
			return err
		}
	}
	if !useColor(cmd, os.Stdout) {
		// Без цвета токены проходят как есть — вывод побайтово равен входу
		theme = highlight.Theme{}
	}

	cache := cacheFromFlags(cmd)

	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			result, err := driver.Tokenize(path, cfg, cache)
			if err != nil {
				return err
			}
			if err := highlight.Render(os.Stdout, result.Tokens, theme); err != nil {
				return err
			}
			continue
		}

		_, results, err := driver.TokenizeDir(cmd.Context(), path, cfg, jobs, cache)
		if err != nil {
			return err
		}
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
				continue
			}
			fmt.Fprintf(os.Stdout, "==> %s <==\n", res.Path)
			if err := highlight.Render(os.Stdout, res.Tokens, theme); err != nil {
				return err
			}
		}
	}
	return nil
}
