package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	chromalexers "github.com/alecthomas/chroma/v2/lexers"
	"github.com/spf13/cobra"

	"fstlex/internal/registry"
	_ "fstlex/lexers" // регистрация диалектов в chroma
)

var lexersCmd = &cobra.Command{
	Use:   "lexers",
	Short: "List registered lexers",
	Args:  cobra.NoArgs,
	RunE:  runLexers,
}

func runLexers(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tALIASES\tFILENAMES\tCHROMA")
	for _, cfg := range registry.All() {
		chromaState := "-"
		if chromalexers.Get(cfg.Name) != nil {
			chromaState = "registered"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			cfg.Name,
			strings.Join(cfg.Aliases, ","),
			strings.Join(cfg.Filenames, ","),
			chromaState,
		)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush output: %v\n", err)
	}
	return nil
}
