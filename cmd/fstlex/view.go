package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fstlex/internal/driver"
	"fstlex/internal/highlight"
	"fstlex/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] file.fst",
	Short: "Page through a highlighted source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().String("theme", "", "TOML theme file (built-in theme when empty)")
}

func runView(cmd *cobra.Command, args []string) error {
	themePath, err := cmd.Flags().GetString("theme")
	if err != nil {
		return fmt.Errorf("failed to get theme flag: %w", err)
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

	result, err := driver.Tokenize(args[0], cfg, cacheFromFlags(cmd))
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", result.File.Path, cfg.Name)
	return ui.RunPager(title, highlight.RenderString(result.Tokens, theme))
}
