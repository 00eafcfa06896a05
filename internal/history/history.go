// Package history keeps the list of recently searched terms.
package history

import (
	"strings"
	"sync"

	"signassist/internal/eventbus"
)

// Recorder tracks recent terms, most recent first. Terms differing only in
// case or spacing count as one entry.
type Recorder struct {
	mu    sync.RWMutex
	terms []string
	limit int

	bus         eventbus.EventBus
	unsubscribe func()
}

// NewRecorder creates a recorder holding at most limit terms. When bus is
// non-nil the recorder follows SearchStarted events and announces changes
// with HistoryUpdated.
func NewRecorder(limit int, bus eventbus.EventBus) *Recorder {
	if limit < 0 {
		limit = 0
	}
	r := &Recorder{limit: limit, bus: bus}
	if bus != nil {
		r.unsubscribe = bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
			if started, ok := e.(eventbus.SearchStartedEvent); ok {
				r.Add(started.Term)
			}
		})
	}
	return r
}

// Add records term and returns the updated list.
func (r *Recorder) Add(term string) []string {
	term = strings.Join(strings.Fields(term), " ")
	if term == "" || r.limit == 0 {
		return r.Terms()
	}

	r.mu.Lock()
	updated := make([]string, 0, len(r.terms)+1)
	updated = append(updated, term)
	for _, t := range r.terms {
		if !strings.EqualFold(t, term) {
			updated = append(updated, t)
		}
	}
	if len(updated) > r.limit {
		updated = updated[:r.limit]
	}
	r.terms = updated
	snapshot := append([]string(nil), updated...)
	r.mu.Unlock()

	if r.bus != nil {
		r.bus.Publish(eventbus.HistoryUpdatedEvent{Terms: snapshot})
	}
	return snapshot
}

// Terms returns a copy of the recorded terms.
func (r *Recorder) Terms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.terms...)
}

// Close stops following the event bus.
func (r *Recorder) Close() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
