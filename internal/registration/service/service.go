// Package service implements the farmer registration orchestration: one call
// creates a farmer, their plots, the farms on those plots and the irrigation
// setups, atomically, then fans the new plots out to downstream consumers.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"farmgate/internal/platform/metrics"
	"farmgate/internal/registration/refcache"
	"farmgate/internal/registration/store"
	plotsync "farmgate/internal/registration/sync"
	"farmgate/pkg/platform/audit"
)

const defaultCountryDialPrefix = "91"

// Service orchestrates farmer registration.
type Service struct {
	stores  *store.Stores
	fanout  *plotsync.Fanout
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   audit.Publisher
	cache   *refcache.Cache
	tracer  trace.Tracer

	countryDialPrefix string
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func WithFanout(f *plotsync.Fanout) Option {
	return func(s *Service) {
		s.fanout = f
	}
}

func WithRefCache(c *refcache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithCountryDialPrefix overrides the dial prefix stripped during phone
// normalization.
func WithCountryDialPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.countryDialPrefix = prefix
		}
	}
}

func New(stores *store.Stores, opts ...Option) *Service {
	s := &Service{
		stores:            stores,
		logger:            slog.Default(),
		tracer:            otel.Tracer("farmgate/registration"),
		countryDialPrefix: defaultCountryDialPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// emitAudit is nil-safe so wiring an audit sink stays optional.
func (s *Service) emitAudit(ctx context.Context, event audit.Event) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}
