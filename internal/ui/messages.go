// Package ui provides the Bubble Tea terminal front-end for the
// timeline: an event stream grouped by century, a free-text search
// input, a theme selector, and CSV export of the current view.
package ui

import "github.com/mbarros/linhatempo/internal/loader"

// TableLoaded is sent when the working table has been (re)loaded.
type TableLoaded struct {
	Result loader.Result
}

// Exported is sent when a CSV export of the current view finishes.
type Exported struct {
	Path string
	Err  error
}
