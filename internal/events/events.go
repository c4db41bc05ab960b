package events

import "time"

// EventType describes the kind of event emitted by the game.
type EventType string

const (
	EventTypeScrapClicked      EventType = "ScrapClicked"
	EventTypeProducerPurchased EventType = "ProducerPurchased"
	EventTypePurchaseRejected  EventType = "PurchaseRejected"
	EventTypeTicked            EventType = "Ticked"
)

// TickedData is the payload for a completed production pass.
type TickedData struct {
	Elapsed time.Duration
	Scraps  float64
	Rate    float64
}

// ScrapClickedData is the payload for a manual click.
type ScrapClickedData struct {
	Scraps float64
}

// ProducerPurchasedData is the payload for a successful purchase.
type ProducerPurchasedData struct {
	ProducerID int
	Name       string
	Paid       float64
	Quantity   float64
	NextCost   float64
}

// PurchaseRejectedData is the payload for a purchase the pool could not cover.
type PurchaseRejectedData struct {
	ProducerID int
	Cost       float64
	Scraps     float64
}

// Event represents a game event produced by command execution.
type Event struct {
	ID        uint64
	At        time.Time
	CommandID string
	Type      EventType
	Data      any
}

// New constructs a new Event with the provided fields.
func New(id uint64, at time.Time, commandID string, eventType EventType, data any) Event {
	return Event{
		ID:        id,
		At:        at,
		CommandID: commandID,
		Type:      eventType,
		Data:      data,
	}
}
