package models

const (
	// StatusDraft is the only status an event can have; no transitions exist.
	StatusDraft = "draft"

	// DefaultEventType is used when the client omits event_type.
	DefaultEventType = "Secret Santa"
)

// Event is a gift-exchange event. Field casing in the JSON tags is part of
// the wire contract the frontend already consumes (ownerId is camelCase,
// the rest snake_case), so it stays mixed.
type Event struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	Budget           *float64 `json:"budget"`
	Participants     []string `json:"participants"`
	OwnerID          string   `json:"ownerId"`
	Status           string   `json:"status"`
	EventType        string   `json:"event_type"`
	AllowWishlists   bool     `json:"allow_wishlists"`
	CollectAddresses bool     `json:"collect_addresses"`
	CustomMessage    *string  `json:"custom_message"`
}
