package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"signassist/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchStarted          = domain.EventSearchStarted
	EventDescriptionSettled     = domain.EventDescriptionSettled
	EventVideoSettled           = domain.EventVideoSettled
	EventStaleCompletionDropped = domain.EventStaleCompletionDropped
	EventHistoryUpdated         = domain.EventHistoryUpdated
	EventError                  = domain.EventError
	EventConfigLoaded           = domain.EventConfigLoaded
	EventConfigSaved            = domain.EventConfigSaved
)

// Re-export domain event types
type SearchStartedEvent = domain.SearchStartedEvent
type DescriptionSettledEvent = domain.DescriptionSettledEvent
type VideoSettledEvent = domain.VideoSettledEvent
type StaleCompletionDroppedEvent = domain.StaleCompletionDroppedEvent
type HistoryUpdatedEvent = domain.HistoryUpdatedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
	queue   chan DomainEvent
	stop    chan struct{}
}

// subscriberQueueSize bounds how far a slow handler may fall behind before
// its events are dropped.
const subscriberQueueSize = 64

// bus is the concrete implementation of EventBus. Each subscription is
// served by its own goroutine, so a handler sees events in publish order
// and a slow handler never blocks the others.
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]*subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       zerolog.Logger
}

// New creates a new event bus
func New(logger zerolog.Logger) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]*subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		log:       logger.With().Str("component", "eventbus").Logger(),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug().Str("event", string(event.Type())).Msg("publishing")

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.log.Warn().Str("event", string(event.Type())).Msg("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	s := &subscription{
		id:      b.nextID,
		handler: handler,
		queue:   make(chan DomainEvent, subscriberQueueSize),
		stop:    make(chan struct{}),
	}
	b.handlers[eventType] = append(b.handlers[eventType], s)

	select {
	case <-b.quit:
		// Closed bus: keep the subscription inert.
	default:
		b.wg.Add(1)
		go b.serve(s)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, cur := range subs {
				if cur.id == s.id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					break
				}
			}
			close(s.stop)
		})
	}
}

// Close stops the dispatcher and discards undelivered events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		close(b.quit)
		b.mu.Unlock()
		b.wg.Wait()
	})
}

// dispatch hands each published event to the queues of its subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Make a copy to avoid holding lock while queueing
			subsCopy := make([]*subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, s := range subsCopy {
				select {
				case <-s.stop:
				case s.queue <- event:
				default:
					b.log.Warn().Str("event", string(event.Type())).Uint64("subscription", s.id).Msg("subscriber queue full, dropping event")
				}
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// serve runs one subscription's handler over its queue, one event at a time
func (b *bus) serve(s *subscription) {
	defer b.wg.Done()

	for {
		select {
		case event := <-s.queue:
			b.call(s.handler, event)
		case <-s.stop:
			return
		case <-b.quit:
			return
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event", string(event.Type())).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("event handler panic")
		}
	}()
	h(event)
}
