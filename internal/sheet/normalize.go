// Package sheet retrieves the timeline spreadsheet as CSV and
// normalizes its arbitrary column headers onto the fixed logical
// schema the rest of the application works with.
package sheet

import (
	"strings"

	"github.com/mbarros/linhatempo/internal/event"
)

// Columns are the logical columns, in canonical order, that every
// working table exposes after normalization.
var Columns = []string{"period", "title", "description", "theme"}

// Resolve maps each logical column to the index of the physical header
// that supplies it, or -1 when the column must be synthesized empty.
//
// Matching rules are applied per logical column, in priority order:
//
//  1. exact match against the lowercased, trimmed header; when two
//     headers lower to the same name the leftmost wins,
//  2. first header, in source column order, whose lowercased form
//     contains the logical name as a substring,
//  3. no match: the column degrades to empty strings (-1).
//
// A missing column is never an error.
func Resolve(headers []string) []int {
	lowered := make([]string, len(headers))
	exact := make(map[string]int, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
		if _, seen := exact[lowered[i]]; !seen {
			exact[lowered[i]] = i
		}
	}

	indices := make([]int, len(Columns))
	for ci, want := range Columns {
		if i, ok := exact[want]; ok {
			indices[ci] = i
			continue
		}
		indices[ci] = -1
		for i, l := range lowered {
			if strings.Contains(l, want) {
				indices[ci] = i
				break
			}
		}
	}
	return indices
}

// Normalize builds derived events from a header row and data records.
// Records shorter than the header are padded with empty fields, so a
// ragged CSV still yields a complete table. Normalizing the output of
// a previous normalization is a no-op: the logical names match
// themselves exactly.
func Normalize(headers []string, records [][]string) []event.Event {
	indices := Resolve(headers)

	field := func(record []string, idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	events := make([]event.Event, 0, len(records))
	for _, record := range records {
		events = append(events, event.Derive(event.Event{
			Period:      field(record, indices[0]),
			Title:       field(record, indices[1]),
			Description: field(record, indices[2]),
			Theme:       field(record, indices[3]),
		}))
	}
	return events
}
