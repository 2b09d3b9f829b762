// Package export serializes a filtered table back to CSV using exactly
// the four logical column names. The output round-trips: reading it
// back through the sheet normalizer and deriver reproduces the same
// logical columns, year keys and theme lists.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/sheet"
)

// DefaultFilename matches the download name the original app offered.
const DefaultFilename = "timeline_filtrado.csv"

// Write emits the events as UTF-8 CSV with the canonical header row.
// Only the logical columns are written; derived fields are recomputed
// on re-import.
func Write(w io.Writer, events []event.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(sheet.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range events {
		record := []string{e.Period, e.Title, e.Description, e.Theme}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
