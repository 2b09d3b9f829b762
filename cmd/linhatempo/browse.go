package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/export"
	"github.com/mbarros/linhatempo/internal/logging"
	"github.com/mbarros/linhatempo/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Navegar pela linha do tempo no terminal",
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Log to file: stderr belongs to the TUI while browsing.
	if err := logging.Init(); err != nil {
		return err
	}
	defer logging.Close()

	ctx := context.Background()
	ld := newLoader()

	app := ui.NewApp(
		func(force bool) tea.Cmd {
			return func() tea.Msg {
				if force {
					ld.Invalidate()
				}
				return ui.TableLoaded{Result: ld.Load(ctx)}
			}
		},
		func(events []event.Event) tea.Cmd {
			return func() tea.Msg {
				path := export.DefaultFilename
				f, err := os.Create(path)
				if err != nil {
					return ui.Exported{Path: path, Err: err}
				}
				defer f.Close()
				if err := export.Write(f, events); err != nil {
					return ui.Exported{Path: path, Err: err}
				}
				logging.Info("exported filtered view", "path", path, "rows", len(events))
				return ui.Exported{Path: path}
			}
		},
	)

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
