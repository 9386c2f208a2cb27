// Package queue carries catalog change notifications over RabbitMQ.  Writers
// outside this service publish one message whenever an event, its sections,
// seats or attendees change; the consumer drops the cached responses of
// that event.
package queue

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Actions a CatalogChangedEvent may report.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CatalogChangedEvent is published when any record belonging to an event
// changes.  ChangedAt is informational (RFC 3339).
type CatalogChangedEvent struct {
	EventID   uint64 `json:"event_id"`
	Action    string `json:"action"`
	ChangedAt string `json:"changed_at,omitempty"`
}

// Validate checks the event id and action.
func (e CatalogChangedEvent) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.EventID, validation.Required),
		validation.Field(&e.Action, validation.Required, validation.In(ActionCreated, ActionUpdated, ActionDeleted)),
	)
}
