package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/survey-service/internal/events"
	"github.com/spec-kit/survey-service/internal/observability"
)

// AuditService records domain events on the diagnostic channel and bumps the
// corresponding counters. Handler failures never reach the user path.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEntrySubmitted, a.handleEvent)
	a.dispatcher.Subscribe(events.EventStoreReset, a.handleEvent)
	a.dispatcher.Subscribe(events.EventExportGenerated, a.handleEvent)
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.metrics.RecordEvent(string(event.Type))
	a.logger.Info("survey event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Any("payload", event.Payload))
	return nil
}
