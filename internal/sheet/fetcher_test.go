package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Period,Title,Description,Theme
1939-1945,Segunda Guerra Mundial,Ordem bipolar.,Geopolítica
A partir de 1760,Primeira Revolução Industrial,Maquinofatura.,Geografia Econômica e História
`

func TestSourceCSVURL(t *testing.T) {
	src := Source{SheetID: "abc123"}
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:csv", src.CSVURL())

	src.GID = "42"
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/gviz/tq?tqx=out:csv&gid=42", src.CSVURL())

	src.URL = "http://example.com/data.csv"
	assert.Equal(t, "http://example.com/data.csv", src.CSVURL(), "explicit URL overrides")
}

func TestFetcherFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	events, err := fetcher.Fetch(context.Background(), Source{URL: server.URL})
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "Segunda Guerra Mundial", events[0].Title)
	assert.Equal(t, 1939, events[0].YearKey)
	assert.Equal(t, []string{"Geografia Econômica", "História"}, events[1].Themes)
}

func TestFetcherFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetcherFetchMalformedCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("period,title\n\"unterminated quote,oops\n"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL})
	assert.Error(t, err)
}

func TestFetcherFetchEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL})
	assert.Error(t, err)
}

func TestFetcherFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewFetcher(5 * time.Second)
	_, err := fetcher.Fetch(ctx, Source{URL: "http://example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetcherFetchTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	fetcher := NewFetcher(20 * time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), Source{URL: server.URL})
	assert.Error(t, err, "a hanging source must fail, not block")
}
