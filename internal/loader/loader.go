// Package loader produces the working table: it fetches the configured
// spreadsheet tabs, memoizes the result for a bounded time, and falls
// back to an embedded sample dataset when the source is unreachable.
//
// Fetch failure is an availability decision, not an error: the loader
// always returns a usable table. Callers that care which branch ran
// inspect Result.Degraded instead of an error value.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/logging"
	"github.com/mbarros/linhatempo/internal/sheet"
)

// Result is the outcome of a load. Degraded marks the fallback branch;
// Reason carries the fetch error that triggered it, for diagnostics
// only — it is never a failure the caller must handle.
type Result struct {
	Events    []event.Event
	Degraded  bool
	Reason    error
	FetchedAt time.Time
}

// fetcher is the fetch dependency, an interface for testing.
type fetcher interface {
	Fetch(ctx context.Context, src sheet.Source) ([]event.Event, error)
}

// Loader fetches and caches the working table.
type Loader struct {
	fetcher fetcher
	sources []sheet.Source // immutable; tab order defines row order
	ttl     time.Duration
	cache   *Cache
	limiter *rate.Limiter
	now     func() time.Time
}

// New creates a Loader with the real fetcher.
func New(f *sheet.Fetcher, sources []sheet.Source, ttl time.Duration) *Loader {
	return NewWithFetcher(f, sources, ttl)
}

// NewWithFetcher allows injecting a custom fetcher (for testing).
func NewWithFetcher(f fetcher, sources []sheet.Source, ttl time.Duration) *Loader {
	sourcesCopy := make([]sheet.Source, len(sources))
	copy(sourcesCopy, sources)

	return &Loader{
		fetcher: f,
		sources: sourcesCopy,
		ttl:     ttl,
		cache:   NewCache(),
		// One request in flight at a time, spaced out so repeated cache
		// misses cannot hammer the sheets endpoint.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		now:     time.Now,
	}
}

// Load returns the working table, fetching at most once per TTL
// window. Within the window repeated calls return the cached table.
func (l *Loader) Load(ctx context.Context) Result {
	return l.cache.GetOrRefresh(l.key(), l.ttl, func() Result {
		return l.refresh(ctx)
	})
}

// Invalidate drops the cached table so the next Load re-fetches.
func (l *Loader) Invalidate() {
	l.cache.Invalidate(l.key())
}

// key identifies the cache entry: the joined CSV endpoints of all tabs.
func (l *Loader) key() string {
	urls := make([]string, len(l.sources))
	for i, src := range l.sources {
		urls[i] = src.CSVURL()
	}
	return strings.Join(urls, "|")
}

func (l *Loader) refresh(ctx context.Context) Result {
	events, err := l.fetchAll(ctx)
	if err != nil {
		logging.Warn("sheet fetch failed, serving fallback dataset", "err", err)
		return Result{
			Events:    Fallback(),
			Degraded:  true,
			Reason:    err,
			FetchedAt: l.now(),
		}
	}

	logging.Info("sheet fetched", "tabs", len(l.sources), "events", len(events))
	return Result{Events: events, FetchedAt: l.now()}
}

// fetchAll retrieves every configured tab concurrently and concatenates
// the results in configured tab order. Any tab failing fails the whole
// refresh; partial tables would silently hide events.
func (l *Loader) fetchAll(ctx context.Context) ([]event.Event, error) {
	if len(l.sources) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}

	perTab := make([][]event.Event, len(l.sources))
	g, ctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		g.Go(func() error {
			if err := l.limiter.Wait(ctx); err != nil {
				return err
			}
			events, err := l.fetcher.Fetch(ctx, src)
			if err != nil {
				return fmt.Errorf("tab %s: %w", src.CSVURL(), err)
			}
			perTab[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var events []event.Event
	for _, tab := range perTab {
		events = append(events, tab...)
	}
	return events, nil
}
