package main

import (
	"github.com/spf13/cobra"

	"github.com/mbarros/linhatempo/internal/config"
)

// Version of the linhatempo binary.
const Version = "1.0.0"

// Global flag values.
var (
	flagConfig string
	flagThemes []string
	flagQuery  string
)

// cfg is loaded by PersistentPreRunE before any subcommand runs.
// Malformed configuration fails fast here; an unreachable sheet does
// not (the loader degrades instead).
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:     "linhatempo",
	Short:   "Linha do tempo interativa de temas geográficos",
	Long:    "linhatempo carrega eventos de uma planilha pública e os apresenta\ncomo uma linha do tempo filtrável por tema e por texto.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		return err
	},
	RunE:          runBrowse,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./config.yaml, then ~/.linhatempo/config.yaml)")

	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(renderCmd)
}

// addFilterFlags registers the shared filter flags on a subcommand.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&flagThemes, "theme", nil, "keep only events with this theme (repeatable, any-match)")
	cmd.Flags().StringVar(&flagQuery, "query", "", "keep only events matching this text")
}
