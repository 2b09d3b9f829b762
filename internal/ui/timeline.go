package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbarros/linhatempo/internal/event"
)

// EmptyMessage mirrors the original app's empty-state text.
const EmptyMessage = "Nenhum evento encontrado com os filtros atuais."

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var b strings.Builder
	for _, rn := range romanNumerals {
		for n >= rn.value {
			b.WriteString(rn.symbol)
			n -= rn.value
		}
	}
	return b.String()
}

// EraBand returns the century band label for a year key, e.g. 1884 →
// "Século XIX". Sentinel rows land in a trailing "Sem data" band.
func EraBand(yearKey int) string {
	if yearKey == event.NoYear {
		return "Sem data"
	}
	century := (yearKey-1)/100 + 1
	if century < 1 {
		century = 1
	}
	return "Século " + roman(century)
}

// RenderTimeline renders the filtered event list grouped by century
// bands, scrolled so the cursor stays visible.
func RenderTimeline(events []event.Event, cursor, width, height int) string {
	if len(events) == 0 {
		return HelpStyle.Render(EmptyMessage)
	}

	var b strings.Builder
	currentBand := ""
	renderedLines := 0

	availableHeight := height
	if availableHeight < 1 {
		availableHeight = 1
	}

	scrollOffset := calcScrollOffset(events, cursor, availableHeight)

	for i, e := range events {
		if renderedLines >= availableHeight {
			break
		}

		// Band state must advance for skipped rows too, so the header
		// renders exactly once when the visible region starts mid-band.
		band := EraBand(e.YearKey)
		if band != currentBand {
			currentBand = band
			if i >= scrollOffset && renderedLines < availableHeight {
				b.WriteString(EraHeader.Render(band))
				b.WriteString("\n")
				renderedLines++
			}
		}

		if i < scrollOffset {
			continue
		}
		if renderedLines >= availableHeight {
			break
		}

		b.WriteString(renderEventLine(e, i == cursor, width))
		b.WriteString("\n")
		renderedLines++
	}

	return b.String()
}

// calcScrollOffset finds the smallest index such that all lines from
// there through the cursor, band headers included, fit in the
// available height.
func calcScrollOffset(events []event.Event, cursor, availableHeight int) int {
	if len(events) == 0 || cursor < 0 {
		return 0
	}
	if cursor >= len(events) {
		cursor = len(events) - 1
	}

	offset := 0
	if cursor >= availableHeight {
		offset = cursor - availableHeight + 1
	}

	for offset <= cursor {
		if visibleLineCount(events, offset, cursor) <= availableHeight {
			return offset
		}
		offset++
	}
	return cursor
}

// visibleLineCount counts rendered lines for events[from..to],
// including band headers appearing inside the range.
func visibleLineCount(events []event.Event, from, to int) int {
	lines := 0
	currentBand := ""
	if from > 0 {
		currentBand = EraBand(events[from-1].YearKey)
	}
	for i := from; i <= to && i < len(events); i++ {
		band := EraBand(events[i].YearKey)
		if band != currentBand {
			currentBand = band
			lines++
		}
		lines++
	}
	return lines
}

// renderEventLine renders one event as a period badge, the title, and
// the theme tags, truncated to the terminal width.
func renderEventLine(e event.Event, selected bool, width int) string {
	badge := PeriodBadge.Render(e.Period)
	badgeWidth := lipgloss.Width(badge)

	tags := ""
	if len(e.Themes) > 0 {
		tags = " [" + strings.Join(e.Themes, " • ") + "]"
	}

	titleWidth := width - badgeWidth - utf8.RuneCountInString(tags) - 4
	if titleWidth < 20 {
		titleWidth = 20
	}

	title := e.Title
	if utf8.RuneCountInString(title) > titleWidth {
		runes := []rune(title)
		title = string(runes[:titleWidth-3]) + "..."
	}

	style := NormalItem
	if selected {
		style = SelectedItem
	}

	return fmt.Sprintf("%s%s%s", badge, style.Render(title), ThemeTag.Render(tags))
}

// RenderDetail renders the expanded card for the cursor event: full
// period, title, untruncated description and theme tags.
func RenderDetail(e event.Event, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(EraHeader.UnsetMargins().Render(e.Period))
	b.WriteString("\n")
	b.WriteString(SelectedItem.Render(e.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Render(e.Description))
	if len(e.Themes) > 0 {
		b.WriteString("\n")
		b.WriteString(ThemeTag.Render(strings.Join(e.Themes, " • ")))
	}
	return DetailBox.Width(width - 2).Render(b.String())
}

// RenderStatusBar renders the bottom bar: view counts on the left, key
// hints on the right, and a degraded-data notice when the fallback
// table is being served.
func RenderStatusBar(matched, total, width int, loading, degraded bool) string {
	var position string
	switch {
	case loading:
		position = " Carregando... "
	default:
		position = fmt.Sprintf(" %d/%d eventos ", matched, total)
	}

	notice := ""
	if degraded {
		notice = DegradedStyle.Render(" dados locais (planilha indisponível) ")
	}

	keys := []string{
		StatusBarKey.Render("j/k") + StatusBarText.Render(":nav"),
		StatusBarKey.Render("Enter") + StatusBarText.Render(":detalhes"),
		StatusBarKey.Render("/") + StatusBarText.Render(":busca"),
		StatusBarKey.Render("t") + StatusBarText.Render(":temas"),
		StatusBarKey.Render("e") + StatusBarText.Render(":exportar"),
		StatusBarKey.Render("r") + StatusBarText.Render(":recarregar"),
		StatusBarKey.Render("q") + StatusBarText.Render(":sair"),
	}
	keyHints := strings.Join(keys, " ")

	padding := width - lipgloss.Width(position) - lipgloss.Width(notice) - lipgloss.Width(keyHints)
	if padding < 0 {
		padding = 0
	}

	bar := position + notice + strings.Repeat(" ", padding) + keyHints
	return StatusBar.Width(width).Render(bar)
}

// RenderSearchBar renders the search input line with the live count.
func RenderSearchBar(input string, matched, total, width int) string {
	content := StatusBarKey.Render("/") + input +
		SearchCount.Render(fmt.Sprintf(" %d/%d", matched, total))
	padding := width - lipgloss.Width(content) - 2
	if padding < 0 {
		padding = 0
	}
	return SearchBar.Width(width).Render(content + strings.Repeat(" ", padding))
}

// RenderThemePane renders the theme selector: one line per known
// theme, selected ones checked, cursor line highlighted.
func RenderThemePane(themes []string, selected map[string]bool, cursor, width, height int) string {
	var b strings.Builder
	b.WriteString(PaneTitle.Render("Temas"))
	b.WriteString("\n")

	if len(themes) == 0 {
		b.WriteString(HelpStyle.Render("Nenhum tema na tabela."))
		return b.String()
	}

	for i, theme := range themes {
		if i+2 > height {
			break
		}
		mark := "[ ] "
		if selected[theme] {
			mark = "[x] "
		}
		line := mark + theme
		style := NormalItem
		if i == cursor {
			style = SelectedItem
		} else if selected[theme] {
			style = ThemeChecked.Padding(0, 1)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(StatusBarText.Render(" espaço:marcar  c:limpar  t/esc:voltar"))
	return b.String()
}
