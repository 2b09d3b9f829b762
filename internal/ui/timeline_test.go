package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbarros/linhatempo/internal/event"
)

func TestEraBand(t *testing.T) {
	assert.Equal(t, "Século XVIII", EraBand(1760))
	assert.Equal(t, "Século XIX", EraBand(1884))
	assert.Equal(t, "Século XX", EraBand(1939))
	assert.Equal(t, "Século XX", EraBand(2000))
	assert.Equal(t, "Século XXI", EraBand(2001))
	assert.Equal(t, "Sem data", EraBand(event.NoYear))
}

func TestRenderTimelineGroupsByCentury(t *testing.T) {
	events := event.DeriveAll([]event.Event{
		{Period: "1760", Title: "A"},
		{Period: "1800", Title: "B"},
		{Period: "1850", Title: "C"},
	})

	out := RenderTimeline(events, 0, 80, 20)

	assert.Equal(t, 1, strings.Count(out, "Século XIX"), "one header per band")
	assert.Contains(t, out, "Século XVIII")
}

func TestRenderTimelineEmptyState(t *testing.T) {
	out := RenderTimeline(nil, 0, 80, 20)
	assert.Contains(t, out, EmptyMessage)
}

func TestCalcScrollOffsetKeepsCursorVisible(t *testing.T) {
	var events []event.Event
	for i := 0; i < 50; i++ {
		events = append(events, event.Derive(event.Event{Period: "1900", Title: "T"}))
	}

	assert.Equal(t, 0, calcScrollOffset(events, 0, 10))

	offset := calcScrollOffset(events, 49, 10)
	assert.LessOrEqual(t, visibleLineCount(events, offset, 49), 10)
}
