package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/linhatempo/internal/logging"
	"github.com/mbarros/linhatempo/internal/render"
)

var (
	flagRenderOut   string
	flagRenderStyle string
	flagRenderTitle string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Gerar um documento HTML com a linha do tempo filtrada",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitWriter(os.Stderr)

		style := render.DefaultStyle()
		if flagRenderStyle != "" {
			var err error
			style, err = render.LoadStyle(flagRenderStyle)
			if err != nil {
				return err
			}
		}

		view, result := loadView(cmd.Context())
		if result.Degraded {
			fmt.Fprintln(os.Stderr, "aviso: planilha indisponível, usando dados locais")
		}

		doc, err := render.Document(flagRenderTitle, view.Events, style)
		if err != nil {
			return err
		}

		if flagRenderOut == "-" {
			_, err = os.Stdout.Write(doc)
			return err
		}
		if err := os.WriteFile(flagRenderOut, doc, 0644); err != nil {
			return fmt.Errorf("write %s: %w", flagRenderOut, err)
		}
		fmt.Fprintf(os.Stderr, "%d eventos renderizados em %s\n", view.Matched, flagRenderOut)
		return nil
	},
}

func init() {
	addFilterFlags(renderCmd)
	renderCmd.Flags().StringVar(&flagRenderOut, "out", "timeline.html", "output file (\"-\" for stdout)")
	renderCmd.Flags().StringVar(&flagRenderStyle, "style", "", "YAML style file overriding the default palette")
	renderCmd.Flags().StringVar(&flagRenderTitle, "title", "Linha do Tempo de Temas Geográficos", "document title")
}
