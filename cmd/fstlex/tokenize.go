package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fstlex/internal/driver"
	"fstlex/internal/highlight"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.fst",
	Short: "Tokenize an F* or Pulse source file",
	Long:  `Tokenize breaks down a source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := lexerFromFlags(cmd)
	if err != nil {
		return err
	}

	// Выполняем токенизацию
	result, err := driver.Tokenize(filePath, cfg, cacheFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим токены в выбранном формате
	switch format {
	case "pretty":
		return highlight.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet, useColor(cmd, os.Stdout))
	case "json":
		return highlight.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
