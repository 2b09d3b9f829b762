package main

import (
	"context"

	"github.com/mbarros/linhatempo/internal/loader"
	"github.com/mbarros/linhatempo/internal/query"
	"github.com/mbarros/linhatempo/internal/sheet"
)

// newLoader builds the loader from the validated configuration.
func newLoader() *loader.Loader {
	fetcher := sheet.NewFetcher(cfg.Fetch.Timeout)
	return loader.New(fetcher, cfg.Sources(), cfg.Fetch.TTL)
}

// loadView loads the working table and applies the filter flags.
// The load never fails; the loader result carries the degraded flag.
func loadView(ctx context.Context) (query.Result, loader.Result) {
	result := newLoader().Load(ctx)
	view := query.Apply(result.Events, query.Selection{
		Themes: flagThemes,
		Text:   flagQuery,
	})
	return view, result
}

// themesOf returns the distinct theme vocabulary of a load result.
func themesOf(result loader.Result) []string {
	return query.Themes(result.Events)
}
