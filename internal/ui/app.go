package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/query"
)

// App is the root Bubble Tea model. It does not hold the loader
// directly: table loads and exports arrive via messages from the
// injected command builders, which keeps the model testable.
type App struct {
	load   func(force bool) tea.Cmd
	export func(events []event.Event) tea.Cmd

	// working table and filter state
	table    []event.Event
	themes   []string
	selected map[string]bool
	view     query.Result
	degraded bool

	search    textinput.Model
	searching bool

	themePane   bool
	themeCursor int

	cursor     int
	showDetail bool
	notice     string

	width   int
	height  int
	ready   bool
	loading bool
}

// NewApp creates the root model.
// load: returns a Cmd producing TableLoaded; force bypasses the cache.
// export: returns a Cmd writing the given view as CSV, producing Exported.
func NewApp(load func(force bool) tea.Cmd, export func(events []event.Event) tea.Cmd) App {
	search := textinput.New()
	search.Placeholder = "busca (título/descrição/tema)"
	search.CharLimit = 120

	return App{
		load:     load,
		export:   export,
		selected: make(map[string]bool),
		search:   search,
	}
}

// Init triggers the initial table load.
func (a App) Init() tea.Cmd {
	if a.load != nil {
		a.loading = true
		return a.load(false)
	}
	return nil
}

// Update handles messages and returns the updated model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case TableLoaded:
		a.loading = false
		a.table = msg.Result.Events
		a.degraded = msg.Result.Degraded
		a.themes = query.Themes(a.table)
		a.refilter()
		return a, nil

	case Exported:
		if msg.Err != nil {
			a.notice = "erro ao exportar: " + msg.Err.Error()
		} else {
			a.notice = "exportado: " + msg.Path
		}
		return a, nil
	}

	return a, nil
}

// refilter recomputes the filtered view from the current selection and
// search text, clamping the cursor into the new view.
func (a *App) refilter() {
	sel := query.Selection{Text: a.search.Value()}
	for theme, on := range a.selected {
		if on {
			sel.Themes = append(sel.Themes, theme)
		}
	}
	a.view = query.Apply(a.table, sel)

	if a.cursor >= len(a.view.Events) {
		a.cursor = len(a.view.Events) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.notice = ""

	if a.searching {
		return a.handleSearchKey(msg)
	}
	if a.themePane {
		return a.handleThemeKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.cursor < len(a.view.Events)-1 {
			a.cursor++
		}

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case "g", "home":
		a.cursor = 0

	case "G", "end":
		if len(a.view.Events) > 0 {
			a.cursor = len(a.view.Events) - 1
		}

	case "enter":
		if len(a.view.Events) > 0 {
			a.showDetail = !a.showDetail
		}

	case "esc":
		a.showDetail = false

	case "/":
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink

	case "t":
		a.themePane = true
		a.themeCursor = 0

	case "e":
		if a.export != nil {
			return a, a.export(a.view.Events)
		}

	case "r":
		if a.load != nil {
			a.loading = true
			return a, a.load(true)
		}
	}

	return a, nil
}

func (a App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.search.SetValue("")
		a.search.Blur()
		a.refilter()
		return a, nil

	case "enter":
		a.searching = false
		a.search.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.refilter()
	return a, cmd
}

func (a App) handleThemeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "t", "esc", "q":
		a.themePane = false

	case "j", "down":
		if a.themeCursor < len(a.themes)-1 {
			a.themeCursor++
		}

	case "k", "up":
		if a.themeCursor > 0 {
			a.themeCursor--
		}

	case " ":
		if a.themeCursor < len(a.themes) {
			theme := a.themes[a.themeCursor]
			a.selected[theme] = !a.selected[theme]
			a.refilter()
		}

	case "c":
		a.selected = make(map[string]bool)
		a.refilter()
	}

	return a, nil
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Carregando..."
	}

	contentHeight := a.height - 1 // status bar
	if a.searching || a.search.Value() != "" {
		contentHeight--
	}
	if a.notice != "" {
		contentHeight--
	}

	var body string
	switch {
	case a.themePane:
		body = RenderThemePane(a.themes, a.selected, a.themeCursor, a.width, contentHeight)
	case a.showDetail && a.cursor < len(a.view.Events):
		body = RenderDetail(a.view.Events[a.cursor], a.width)
	default:
		body = RenderTimeline(a.view.Events, a.cursor, a.width, contentHeight)
	}
	if !lastRuneIsNewline(body) {
		body += "\n"
	}

	bars := ""
	if a.searching || a.search.Value() != "" {
		input := a.search.View()
		if !a.searching {
			input = a.search.Value()
		}
		bars += RenderSearchBar(input, a.view.Matched, a.view.Total, a.width) + "\n"
	}
	if a.notice != "" {
		bars += HelpStyle.UnsetPadding().Render(a.notice) + "\n"
	}

	return body + bars + RenderStatusBar(a.view.Matched, a.view.Total, a.width, a.loading, a.degraded)
}

func lastRuneIsNewline(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '\n'
}

// Cursor returns the current cursor position (for testing).
func (a App) Cursor() int { return a.cursor }

// Visible returns the current filtered view (for testing).
func (a App) Visible() []event.Event { return a.view.Events }

// SelectedThemes reports the active theme selection (for testing).
func (a App) SelectedThemes() []string {
	var themes []string
	for theme, on := range a.selected {
		if on {
			themes = append(themes, theme)
		}
	}
	return themes
}
