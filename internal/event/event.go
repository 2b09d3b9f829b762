// Package event defines the working-table row for the timeline and the
// derivation of its computed fields.
//
// An Event carries the four logical columns every source is normalized
// to (period, title, description, theme) plus two derived fields: a
// numeric sort key extracted from the free-text period, and the theme
// column split into discrete tags. Derivation never fails; rows the
// deriver cannot parse sort last instead of erroring.
package event

// NoYear is the sentinel sort key for events whose period contains no
// recognizable year. It pushes undated rows to the end of a
// chronological sort without needing a nullable key.
const NoYear = 1_000_000_000

// Event is one row of the working table.
type Event struct {
	Period      string // free-text date or range, e.g. "1939-1945"
	Title       string
	Description string // full text; display layers truncate, this never does
	Theme       string // raw theme column, possibly multi-valued

	YearKey int      // derived from Period; NoYear when unparsed
	Themes  []string // derived from Theme; empty slice, never nil
}

// Derive returns a copy of e with YearKey and Themes computed from the
// Period and Theme columns.
func Derive(e Event) Event {
	e.YearKey = FirstYear(e.Period)
	e.Themes = SplitThemes(e.Theme)
	return e
}

// DeriveAll applies Derive to every event, returning a new slice.
func DeriveAll(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = Derive(e)
	}
	return out
}
