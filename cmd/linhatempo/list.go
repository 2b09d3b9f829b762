package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbarros/linhatempo/internal/logging"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Imprimir a tabela filtrada",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitWriter(os.Stderr)

		view, result := loadView(cmd.Context())
		if result.Degraded {
			fmt.Fprintln(os.Stderr, "aviso: planilha indisponível, usando dados locais")
		}

		if len(view.Events) == 0 {
			fmt.Println("Nenhum evento encontrado com os filtros atuais.")
			return nil
		}

		for _, e := range view.Events {
			line := fmt.Sprintf("%-20s %s", e.Period, e.Title)
			if len(e.Themes) > 0 {
				line += "  [" + strings.Join(e.Themes, " • ") + "]"
			}
			fmt.Println(line)
		}
		fmt.Printf("\n%d/%d eventos\n", view.Matched, view.Total)
		return nil
	},
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Imprimir os temas distintos da tabela",
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.InitWriter(os.Stderr)

		_, result := loadView(cmd.Context())
		if result.Degraded {
			fmt.Fprintln(os.Stderr, "aviso: planilha indisponível, usando dados locais")
		}

		for _, theme := range themesOf(result) {
			fmt.Println(theme)
		}
		return nil
	},
}

func init() {
	addFilterFlags(listCmd)
}
