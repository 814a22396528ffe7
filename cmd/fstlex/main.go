package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fstlex/internal/driver"
	"fstlex/internal/registry"
	"fstlex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fstlex",
	Short: "F* and Pulse highlighting toolkit",
	Long:  `fstlex tokenizes and highlights F* and Pulse source files`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(lexersCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("lexer", "fstar", "lexer to use (fstar|pulse)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable the token cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// lexerFromFlags резолвит персистентный флаг --lexer через реестр
func lexerFromFlags(cmd *cobra.Command) (*registry.Config, error) {
	name, err := cmd.Root().PersistentFlags().GetString("lexer")
	if err != nil {
		return nil, fmt.Errorf("failed to get lexer flag: %w", err)
	}
	cfg, ok := registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown lexer %q (try `fstlex lexers`)", name)
	}
	return cfg, nil
}

// cacheFromFlags открывает дисковый кэш токенов, если он не отключён.
// Ошибка открытия не фатальна: nil-кэш просто всё пересканирует.
func cacheFromFlags(cmd *cobra.Command) *driver.TokenCache {
	noCache, err := cmd.Root().PersistentFlags().GetBool("no-cache")
	if err != nil || noCache {
		return nil
	}
	cache, err := driver.OpenTokenCache("fstlex")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: token cache unavailable: %v\n", err)
		return nil
	}
	return cache
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
