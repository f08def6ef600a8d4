package service

import "github.com/dafibh/fortuna/fortuna-planner/internal/websocket"

// eventEmitter is embedded by services that announce changes to live clients
type eventEmitter struct {
	eventPublisher websocket.EventPublisher
}

// SetEventPublisher sets the event publisher for real-time updates
func (e *eventEmitter) SetEventPublisher(publisher websocket.EventPublisher) {
	e.eventPublisher = publisher
}

func (e *eventEmitter) publishEvent(workspaceID int32, event websocket.Event) {
	if e.eventPublisher != nil {
		e.eventPublisher.Publish(workspaceID, event)
	}
}

// deletedPayload is the body of every "<entity>.deleted" event
type deletedPayload struct {
	ID int32 `json:"id"`
}
