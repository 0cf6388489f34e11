package events

import "github.com/billie-coop/confirm/dialog"

// EventType identifies the type of event
type EventType string

const (
	// Dialog lifecycle
	DialogOpenedEvent   EventType = "dialog.opened"
	DialogResolvedEvent EventType = "dialog.resolved"
	DialogClosedEvent   EventType = "dialog.closed"

	// UI events
	StatusMessageEvent EventType = "ui.status"
	ErrorMessageEvent  EventType = "ui.error"

	// wildcard subscription
	allEvents EventType = "*"
)

// Event represents an event in the system
type Event struct {
	Type    EventType
	Payload interface{}
}

// Event payload types

type DialogPayload struct {
	DialogID   string
	Caption    string
	ThreeWay   bool
	Resolution dialog.Resolution
	Trigger    dialog.Trigger
}

type StatusMessagePayload struct {
	Message string
	Type    string // "info", "warning", "error", "success"
}
