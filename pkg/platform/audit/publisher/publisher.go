// Package publisher provides audit.Publisher implementations. The channel
// publisher feeds the in-process worker; the Kafka publisher ships events to
// a broker for external retention.
package publisher

import (
	"context"
	"log/slog"

	"farmgate/pkg/platform/audit"
	"farmgate/pkg/requestcontext"
)

// ChannelPublisher enriches events from context and hands them to a worker
// inbox. Emission never blocks the caller: when the inbox is full the event
// is dropped and counted against the logger instead.
type ChannelPublisher struct {
	inbox  chan<- audit.Event
	logger *slog.Logger
}

func NewChannelPublisher(inbox chan<- audit.Event, logger *slog.Logger) *ChannelPublisher {
	return &ChannelPublisher{inbox: inbox, logger: logger}
}

func (p *ChannelPublisher) Emit(ctx context.Context, event audit.Event) error {
	enrich(ctx, &event)
	select {
	case p.inbox <- event:
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "audit inbox full, dropping event",
				"action", event.Action,
				"subject", event.Subject,
			)
		}
	}
	return nil
}

func enrich(ctx context.Context, event *audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = audit.CategoryFor(audit.AuditEvent(event.Action))
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.Device == "" {
		event.Device = requestcontext.Device(ctx)
	}
}
