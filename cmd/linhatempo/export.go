package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/linhatempo/internal/export"
	"github.com/mbarros/linhatempo/internal/logging"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exportar a tabela filtrada como CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitWriter(os.Stderr)

		view, result := loadView(cmd.Context())
		if result.Degraded {
			fmt.Fprintln(os.Stderr, "aviso: planilha indisponível, usando dados locais")
		}

		if flagExportOut == "-" {
			return export.Write(os.Stdout, view.Events)
		}

		f, err := os.Create(flagExportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", flagExportOut, err)
		}
		defer f.Close()

		if err := export.Write(f, view.Events); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d eventos exportados para %s\n", view.Matched, flagExportOut)
		return nil
	},
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringVar(&flagExportOut, "out", export.DefaultFilename, "output file (\"-\" for stdout)")
}
