package domain

type EventType string

const (
	EventProgress EventType = "progress"
	EventProduct  EventType = "product"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// Event is one unit of a crawl's streamed output. Exactly one shape per
// type: progress carries Percent and Category, product carries Product,
// error carries Message, complete is terminal and always last.
type Event struct {
	Type     EventType `json:"type"`
	Percent  int       `json:"percent,omitempty"`
	Category string    `json:"category,omitempty"`
	Product  *Product  `json:"product,omitempty"`
	Message  string    `json:"message,omitempty"`
}

func ProgressEvent(percent int, category string) Event {
	return Event{Type: EventProgress, Percent: percent, Category: category}
}

func ProductEvent(p *Product) Event {
	return Event{Type: EventProduct, Product: p}
}

func CompleteEvent() Event {
	return Event{Type: EventComplete, Percent: 100}
}

func ErrorEvent(message string) Event {
	return Event{Type: EventError, Message: message}
}
