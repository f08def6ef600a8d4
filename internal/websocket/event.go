package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType is the action an event reports
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeUpdated EventType = "updated"
	EventTypeDeleted EventType = "deleted"
	EventTypePaid    EventType = "paid"
	EventTypeSkipped EventType = "skipped"
	EventTypeDue     EventType = "due"
)

// EntityType is the record an event is about
type EntityType string

const (
	EntityTypeIncome     EntityType = "income"
	EntityTypeExpense    EntityType = "expense"
	EntityTypeBudget     EntityType = "budget"
	EntityTypeRecurring  EntityType = "recurring"
	EntityTypeInvestment EntityType = "investment"
	EntityTypeGoal       EntityType = "goal"
)

// Event is the message delivered to WebSocket clients and the message broker.
// Type combines entity and action, e.g. "recurring.paid".
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EntityCreated creates an "<entity>.created" event
func EntityCreated(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeCreated, entity, payload)
}

// EntityUpdated creates an "<entity>.updated" event
func EntityUpdated(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeUpdated, entity, payload)
}

// EntityDeleted creates an "<entity>.deleted" event
func EntityDeleted(entity EntityType, payload interface{}) Event {
	return NewEvent(EventTypeDeleted, entity, payload)
}

// RecurringPaid creates a recurring.paid event
func RecurringPaid(payload interface{}) Event {
	return NewEvent(EventTypePaid, EntityTypeRecurring, payload)
}

// RecurringSkipped creates a recurring.skipped event
func RecurringSkipped(payload interface{}) Event {
	return NewEvent(EventTypeSkipped, EntityTypeRecurring, payload)
}

// RecurringDue creates a recurring.due reminder event
func RecurringDue(payload interface{}) Event {
	return NewEvent(EventTypeDue, EntityTypeRecurring, payload)
}

// ExpenseCreated creates an expense.created event
func ExpenseCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeExpense, payload)
}
