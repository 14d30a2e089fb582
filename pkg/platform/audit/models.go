package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose, enabling
// different retention policies and routing per category.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance,
	// such as farmer account creation on behalf of a field operator.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers events useful for debugging and operational
	// visibility. These can be sampled with shorter retention.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key registration actions.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	Action    string
	// ActorID is the field operator performing the registration.
	ActorID string
	// FarmerID is the farmer the action concerns, when one exists yet.
	FarmerID string
	// Subject names the affected entity (plot id, farm uid, sync target).
	Subject string
	Reason  string
	// Enrichment captured by middleware.
	RequestID string
	ClientIP  string
	Device    string
}

type AuditEvent string

const (
	EventFarmerRegistered   AuditEvent = "farmer_registered"
	EventPlotCreated        AuditEvent = "plot_created"
	EventFarmCreated        AuditEvent = "farm_created"
	EventIrrigationCreated  AuditEvent = "irrigation_created"
	EventRegistrationFailed AuditEvent = "registration_failed"
	EventPlotSyncFailed     AuditEvent = "plot_sync_failed"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventFarmerRegistered:   CategoryCompliance,
	EventPlotCreated:        CategoryCompliance,
	EventFarmCreated:        CategoryCompliance,
	EventIrrigationCreated:  CategoryOperations,
	EventRegistrationFailed: CategoryOperations,
	EventPlotSyncFailed:     CategoryOperations,
}

// CategoryFor returns the category for an event name, defaulting to
// operations for unknown events.
func CategoryFor(event AuditEvent) EventCategory {
	if c, ok := eventCategories[event]; ok {
		return c
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher accepts audit events from domain logic. Implementations must be
// best-effort: a failing sink never propagates into the business operation.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}
