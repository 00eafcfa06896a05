package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted          EventType = "SearchStarted"
	EventDescriptionSettled     EventType = "DescriptionSettled"
	EventVideoSettled           EventType = "VideoSettled"
	EventStaleCompletionDropped EventType = "StaleCompletionDropped"
	EventHistoryUpdated         EventType = "HistoryUpdated"
	EventError                  EventType = "Error"
	EventConfigLoaded           EventType = "ConfigLoaded"
	EventConfigSaved            EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a new search replaces the current one
type SearchStartedEvent struct {
	RequestID uint64
	Term      string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// DescriptionSettledEvent is emitted when the text lookup of the current search settles
type DescriptionSettledEvent struct {
	RequestID uint64
	Term      string
	Err       error // nil on success
}

func (e DescriptionSettledEvent) Type() EventType { return EventDescriptionSettled }

// VideoSettledEvent is emitted when the video lookup of the current search settles
type VideoSettledEvent struct {
	RequestID uint64
	Term      string
	URL       string
}

func (e VideoSettledEvent) Type() EventType { return EventVideoSettled }

// StaleCompletionDroppedEvent is emitted when a lookup settles after its search was superseded
type StaleCompletionDroppedEvent struct {
	RequestID uint64
	CurrentID uint64
	Term      string
	Lookup    string // "text" or "video"
}

func (e StaleCompletionDroppedEvent) Type() EventType { return EventStaleCompletionDropped }

// HistoryUpdatedEvent carries the recent search terms, most recent first
type HistoryUpdatedEvent struct {
	Terms []string
}

func (e HistoryUpdatedEvent) Type() EventType { return EventHistoryUpdated }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Provider string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
