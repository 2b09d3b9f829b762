package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/loader"
)

func loadedApp(t *testing.T) App {
	t.Helper()

	app := NewApp(nil, nil)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(TableLoaded{Result: loader.Result{
		Events: event.DeriveAll([]event.Event{
			{Period: "1939-1945", Title: "Segunda Guerra Mundial", Theme: "Geopolítica"},
			{Period: "A partir de 1760", Title: "Primeira Revolução Industrial", Theme: "Geografia Econômica"},
			{Period: "1884-1885", Title: "Conferência de Berlim", Theme: "Geopolítica"},
		}),
	}})

	a, ok := model.(App)
	require.True(t, ok)
	return a
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{}
}

func update(t *testing.T, m tea.Model, msgs ...tea.Msg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	a, ok := m.(App)
	require.True(t, ok)
	return a
}

func TestTableLoadedSortsView(t *testing.T) {
	a := loadedApp(t)

	visible := a.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "Primeira Revolução Industrial", visible[0].Title)
	assert.Equal(t, "Conferência de Berlim", visible[1].Title)
	assert.Equal(t, "Segunda Guerra Mundial", visible[2].Title)
}

func TestCursorNavigation(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, key("j"), key("j"))
	assert.Equal(t, 2, a.Cursor())

	a = update(t, a, key("j"))
	assert.Equal(t, 2, a.Cursor(), "cursor stops at the last row")

	a = update(t, a, key("g"))
	assert.Equal(t, 0, a.Cursor())
}

func TestSearchFiltersView(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, key("/"))
	for _, r := range "guerra" {
		a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	visible := a.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Segunda Guerra Mundial", visible[0].Title)

	// Esc clears the search and restores the full view.
	a = update(t, a, key("esc"))
	assert.Len(t, a.Visible(), 3)
}

func TestThemeSelectionAnyMatch(t *testing.T) {
	a := loadedApp(t)

	// Themes are sorted: Geografia Econômica, Geopolítica.
	a = update(t, a, key("t"), key("j"), key("space"))

	assert.Equal(t, []string{"Geopolítica"}, a.SelectedThemes())
	assert.Len(t, a.Visible(), 2)

	// Clearing restores everything.
	a = update(t, a, key("c"))
	assert.Len(t, a.Visible(), 3)
}

func TestEmptyResultIsValidState(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, key("/"))
	for _, r := range "zzz" {
		a = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	a = update(t, a, key("enter"))

	assert.Empty(t, a.Visible())
	assert.Contains(t, a.View(), EmptyMessage)
}

func TestDegradedLoadShowsNotice(t *testing.T) {
	app := NewApp(nil, nil)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 200, Height: 30})
	a := update(t, model, TableLoaded{Result: loader.Result{
		Events:   loader.Fallback(),
		Degraded: true,
	}})

	assert.Contains(t, a.View(), "dados locais")
}

func TestExportedMessageSetsNotice(t *testing.T) {
	a := loadedApp(t)

	a = update(t, a, Exported{Path: "timeline_filtrado.csv"})
	assert.Contains(t, a.View(), "timeline_filtrado.csv")
}
