// Package query filters and orders the working table. All functions
// are pure: events in, events out, the input slice is never mutated.
package query

import (
	"sort"
	"strings"

	"github.com/mbarros/linhatempo/internal/event"
)

// Selection is the consumer-facing query surface: a set of selected
// themes (any-match) and a free-text query matched across the four
// logical columns.
type Selection struct {
	Themes []string
	Text   string
}

// Result is a filtered, chronologically sorted view of the table.
// An empty Events slice is a valid outcome, not an error; callers
// render it as an explicit no-results state.
type Result struct {
	Events  []event.Event
	Matched int // rows surviving the filters
	Total   int // rows in the input table
}

// Apply runs the theme filter, then the text filter, then the
// chronological sort, and returns the resulting view with its counts.
func Apply(events []event.Event, sel Selection) Result {
	filtered := ByThemes(events, sel.Themes)
	filtered = ByText(filtered, sel.Text)
	filtered = SortChronological(filtered)
	return Result{Events: filtered, Matched: len(filtered), Total: len(events)}
}

// ByThemes keeps rows sharing at least one theme with the selection.
// An empty selection means no filtering: everything is kept. This is
// the "show everything" default, not "show nothing".
func ByThemes(events []event.Event, selected []string) []event.Event {
	if len(selected) == 0 {
		result := make([]event.Event, len(events))
		copy(result, events)
		return result
	}

	want := make(map[string]bool, len(selected))
	for _, t := range selected {
		want[t] = true
	}

	result := make([]event.Event, 0, len(events))
	for _, e := range events {
		for _, t := range e.Themes {
			if want[t] {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

// ByText keeps rows where the lowercased query appears as a substring
// in at least one of title, description, period or theme. A query that
// trims to empty keeps everything.
func ByText(events []event.Event, query string) []event.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		result := make([]event.Event, len(events))
		copy(result, events)
		return result
	}

	result := make([]event.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) ||
			strings.Contains(strings.ToLower(e.Period), q) ||
			strings.Contains(strings.ToLower(e.Theme), q) {
			result = append(result, e)
		}
	}
	return result
}

// SortChronological returns the events stably sorted ascending by
// (YearKey, Title). Rows carrying the NoYear sentinel land after every
// dated row.
func SortChronological(events []event.Event) []event.Event {
	result := make([]event.Event, len(events))
	copy(result, events)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].YearKey != result[j].YearKey {
			return result[i].YearKey < result[j].YearKey
		}
		return result[i].Title < result[j].Title
	})
	return result
}

// Themes returns the sorted distinct theme vocabulary of the table,
// used to populate the theme selector.
func Themes(events []event.Event) []string {
	seen := make(map[string]bool)
	var themes []string
	for _, e := range events {
		for _, t := range e.Themes {
			if !seen[t] {
				seen[t] = true
				themes = append(themes, t)
			}
		}
	}
	sort.Strings(themes)
	return themes
}
