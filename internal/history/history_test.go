package history

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signassist/internal/eventbus"
)

func TestAddMostRecentFirst(t *testing.T) {
	r := NewRecorder(5, nil)
	r.Add("Hello")
	r.Add("Yes")
	r.Add("Love")
	assert.Equal(t, []string{"Love", "Yes", "Hello"}, r.Terms())
}

func TestAddDeduplicatesIgnoringCase(t *testing.T) {
	r := NewRecorder(5, nil)
	r.Add("Thank you")
	r.Add("Yes")
	got := r.Add("  THANK   YOU ")
	assert.Equal(t, []string{"THANK YOU", "Yes"}, got)
}

func TestAddBounded(t *testing.T) {
	r := NewRecorder(2, nil)
	for _, term := range []string{"a", "b", "c"} {
		r.Add(term)
	}
	assert.Equal(t, []string{"c", "b"}, r.Terms())
}

func TestAddIgnoresBlank(t *testing.T) {
	r := NewRecorder(2, nil)
	r.Add("  ")
	assert.Empty(t, r.Terms())
}

func TestZeroLimitDisables(t *testing.T) {
	r := NewRecorder(0, nil)
	r.Add("Hello")
	assert.Empty(t, r.Terms())
}

func TestTermsReturnsCopy(t *testing.T) {
	r := NewRecorder(2, nil)
	r.Add("Hello")
	terms := r.Terms()
	terms[0] = "changed"
	assert.Equal(t, []string{"Hello"}, r.Terms())
}

func TestFollowsSearchStartedEvents(t *testing.T) {
	bus := eventbus.New(zerolog.Nop())
	defer bus.Close()

	updates := make(chan []string, 4)
	bus.Subscribe(eventbus.EventHistoryUpdated, func(e eventbus.DomainEvent) {
		updates <- e.(eventbus.HistoryUpdatedEvent).Terms
	})

	r := NewRecorder(4, bus)
	defer r.Close()

	bus.Publish(eventbus.SearchStartedEvent{RequestID: 1, Term: "Family"})

	select {
	case terms := <-updates:
		assert.Equal(t, []string{"Family"}, terms)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no HistoryUpdated event")
	}
	assert.Equal(t, []string{"Family"}, r.Terms())
}

func TestCloseStopsFollowing(t *testing.T) {
	bus := eventbus.New(zerolog.Nop())
	defer bus.Close()

	r := NewRecorder(4, bus)
	r.Close()
	bus.Publish(eventbus.SearchStartedEvent{RequestID: 1, Term: "Family"})

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.Terms())
}

func TestBackToBackSearchesKeepLatestFirst(t *testing.T) {
	for i := 0; i < 20; i++ {
		bus := eventbus.New(zerolog.Nop())

		updates := make(chan []string, 4)
		bus.Subscribe(eventbus.EventHistoryUpdated, func(e eventbus.DomainEvent) {
			updates <- e.(eventbus.HistoryUpdatedEvent).Terms
		})
		r := NewRecorder(4, bus)

		bus.Publish(eventbus.SearchStartedEvent{RequestID: 1, Term: "Yes"})
		bus.Publish(eventbus.SearchStartedEvent{RequestID: 2, Term: "No"})

		var last []string
		for len(last) < 2 {
			select {
			case last = <-updates:
			case <-time.After(2 * time.Second):
				require.FailNow(t, "history not updated")
			}
		}
		assert.Equal(t, []string{"No", "Yes"}, last)
		assert.Equal(t, "No", r.Terms()[0])

		r.Close()
		bus.Close()
	}
}
