package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/mbarros/linhatempo/internal/event"
	"github.com/mbarros/linhatempo/internal/sheet"
)

// fakeFetcher counts calls and serves canned events or a canned error.
type fakeFetcher struct {
	calls  int
	events map[string][]event.Event // by CSV URL; nil map means fail
	err    error
}

func (f *fakeFetcher) Fetch(ctx context.Context, src sheet.Source) ([]event.Event, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.events[src.CSVURL()], nil
}

// fakeClock drives the cache TTL deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLoader(f fetcher, sources []sheet.Source, ttl time.Duration) (*Loader, *fakeClock) {
	l := NewWithFetcher(f, sources, ttl)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l.cache.now = clock.now
	l.now = clock.now
	l.limiter = rate.NewLimiter(rate.Inf, 1)
	return l, clock
}

func TestLoadServesFallbackOnFetchFailure(t *testing.T) {
	f := &fakeFetcher{err: errors.New("connection refused")}
	l, _ := newTestLoader(f, []sheet.Source{{SheetID: "x"}}, time.Minute)

	result := l.Load(context.Background())

	assert.True(t, result.Degraded)
	require.Error(t, result.Reason)
	assert.Contains(t, result.Reason.Error(), "connection refused")

	// The fallback is a usable, fully derived table.
	require.Len(t, result.Events, 3)
	for _, e := range result.Events {
		assert.NotNil(t, e.Themes)
		assert.NotEqual(t, 0, e.YearKey)
	}
	assert.Equal(t, "Primeira Revolução Industrial", result.Events[0].Title)
	assert.Equal(t, 1760, result.Events[0].YearKey)
	assert.Equal(t, []string{"Geopolítica"}, result.Events[2].Themes)
}

func TestLoadCachesWithinTTL(t *testing.T) {
	src := sheet.Source{SheetID: "x"}
	f := &fakeFetcher{events: map[string][]event.Event{
		src.CSVURL(): {{Title: "A", Period: "1900"}},
	}}
	l, clock := newTestLoader(f, []sheet.Source{src}, time.Minute)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	assert.Equal(t, 1, f.calls, "second call within the TTL window must hit the cache")
	assert.False(t, first.Degraded)
	assert.Equal(t, first.FetchedAt, second.FetchedAt)

	clock.advance(2 * time.Minute)
	l.Load(context.Background())
	assert.Equal(t, 2, f.calls, "expired entry must re-fetch")
}

func TestLoadCachesDegradedResultToo(t *testing.T) {
	f := &fakeFetcher{err: errors.New("boom")}
	l, _ := newTestLoader(f, []sheet.Source{{SheetID: "x"}}, time.Minute)

	l.Load(context.Background())
	l.Load(context.Background())

	assert.Equal(t, 1, f.calls, "a degraded result is memoized for the same window")
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := sheet.Source{SheetID: "x"}
	f := &fakeFetcher{events: map[string][]event.Event{src.CSVURL(): {}}}
	l, _ := newTestLoader(f, []sheet.Source{src}, time.Hour)

	l.Load(context.Background())
	l.Invalidate()
	l.Load(context.Background())

	assert.Equal(t, 2, f.calls)
}

func TestLoadConcatenatesTabsInOrder(t *testing.T) {
	tab1 := sheet.Source{SheetID: "x", GID: "1"}
	tab2 := sheet.Source{SheetID: "x", GID: "2"}
	f := &fakeFetcher{events: map[string][]event.Event{
		tab1.CSVURL(): {{Title: "Primeiro"}},
		tab2.CSVURL(): {{Title: "Segundo"}},
	}}
	l, _ := newTestLoader(f, []sheet.Source{tab1, tab2}, time.Minute)

	result := l.Load(context.Background())

	require.Len(t, result.Events, 2)
	assert.Equal(t, "Primeiro", result.Events[0].Title)
	assert.Equal(t, "Segundo", result.Events[1].Title)
}

func TestFallbackReturnsFreshCopies(t *testing.T) {
	a := Fallback()
	a[0].Title = "mutated"

	b := Fallback()
	assert.Equal(t, "Primeira Revolução Industrial", b[0].Title)
}
