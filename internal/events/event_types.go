package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventProductCreated  EventType = "product_created"
	EventProductUpdated  EventType = "product_updated"
	EventProductDeleted  EventType = "product_deleted"
	EventCategoryCreated EventType = "category_created"
	EventCategoryUpdated EventType = "category_updated"
	EventCategoryDeleted EventType = "category_deleted"
)

// All lists every event type, used by subscribers that want the full stream.
func All() []EventType {
	return []EventType{
		EventProductCreated,
		EventProductUpdated,
		EventProductDeleted,
		EventCategoryCreated,
		EventCategoryUpdated,
		EventCategoryDeleted,
	}
}

// Event represents a catalog mutation emitted by domain services after a
// successful commit.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Entity    string    `json:"entity"`
	EntityRef int       `json:"entity_ref"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}
