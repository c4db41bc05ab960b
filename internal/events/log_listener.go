package events

import "log/slog"

// LogListener writes events to a structured logger.
type LogListener struct {
	Logger *slog.Logger
}

func (l LogListener) OnEvent(ev Event) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"event_id", ev.ID, "command_id", ev.CommandID}
	switch d := ev.Data.(type) {
	case ProducerPurchasedData:
		logger.Info("producer purchased", append(attrs,
			"producer", d.Name, "paid", d.Paid, "quantity", d.Quantity, "next_cost", d.NextCost)...)
	case PurchaseRejectedData:
		logger.Debug("purchase rejected", append(attrs,
			"producer_id", d.ProducerID, "cost", d.Cost, "scraps", d.Scraps)...)
	case TickedData:
		logger.Debug("ticked", append(attrs,
			"elapsed", d.Elapsed, "scraps", d.Scraps, "rate", d.Rate)...)
	case ScrapClickedData:
		logger.Debug("scrap clicked", append(attrs, "scraps", d.Scraps)...)
	default:
		logger.Debug(string(ev.Type), attrs...)
	}
}

// SubscribeAll attaches l to every event type the game emits.
func SubscribeAll(d *Dispatcher, l Listener) {
	for _, t := range []EventType{EventTypeScrapClicked, EventTypeProducerPurchased, EventTypePurchaseRejected, EventTypeTicked} {
		d.Subscribe(t, l)
	}
}
