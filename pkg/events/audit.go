package events

import (
	"context"

	"github.com/reelmedia/reel/pkg/interfaces"
)

// AllEventTypes lists every event type the services publish.
var AllEventTypes = []string{
	UserRegistered, UserLoggedIn,
	MovieCreated, MovieUpdated, MovieDeleted,
	ActorCreated, ActorUpdated, ActorDeleted,
	GenreCreated, GenreUpdated, GenreDeleted,
}

// AuditHandler writes a log line for each event of one type.
type AuditHandler struct {
	eventType string
	logger    interfaces.Logger
}

// NewAuditHandler creates an audit handler for one event type.
func NewAuditHandler(eventType string, logger interfaces.Logger) *AuditHandler {
	return &AuditHandler{eventType: eventType, logger: logger}
}

// Handle logs the event.
func (h *AuditHandler) Handle(ctx context.Context, event interfaces.Event) error {
	h.logger.Info("Domain event",
		interfaces.String("type", event.EventType()),
		interfaces.String("aggregate_id", event.AggregateID()))
	return nil
}

// EventType returns the type of events this handler processes.
func (h *AuditHandler) EventType() string {
	return h.eventType
}

// SubscribeAudit registers an audit handler for every known event
// type, so everything published on the bus leaves a log trail.
func SubscribeAudit(bus interfaces.EventBus, logger interfaces.Logger) error {
	for _, eventType := range AllEventTypes {
		if err := bus.Subscribe(eventType, NewAuditHandler(eventType, logger)); err != nil {
			return err
		}
	}
	return nil
}
