package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/survey-service/internal/config"
	"github.com/spec-kit/survey-service/internal/domain"
	"github.com/spec-kit/survey-service/internal/events"
	"github.com/spec-kit/survey-service/internal/render"
	apperrors "github.com/spec-kit/survey-service/pkg/util"
)

// EntryStore is the record store surface the service drives. ReadAll never
// fails; storage corruption degrades to an empty collection inside the store.
type EntryStore interface {
	ReadAll(ctx context.Context) []domain.SurveyEntry
	Append(ctx context.Context, entry domain.SurveyEntry) error
	Clear(ctx context.Context) error
}

// SurveyService coordinates the submission and dashboard workflows.
type SurveyService struct {
	store      EntryStore
	validator  *Validator
	aggregator *Aggregator
	projector  CSVProjector
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// SurveyDependencies bundles collaborators for the survey service.
type SurveyDependencies struct {
	Store      EntryStore
	Clock      Clock
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewSurveyService constructs the service.
func NewSurveyService(cfg config.SurveyConfig, deps SurveyDependencies) *SurveyService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &SurveyService{
		store:      deps.Store,
		validator:  NewValidator(clock, cfg.IssueMaxLength),
		aggregator: NewAggregator(cfg.RecentLimit),
		projector:  CSVProjector{},
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Submit validates raw form input and appends the resulting entry. Validation
// failures carry the full ordered message list; the entry is only stored when
// every rule passes.
func (s *SurveyService) Submit(ctx context.Context, input FormInput) (*domain.SurveyEntry, error) {
	entry, msgs := s.validator.Validate(input)
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError("invalid survey submission", map[string]any{"errors": msgs})
	}

	if err := s.store.Append(ctx, *entry); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventEntrySubmitted, events.EntrySubmittedPayload{
		Department:   entry.Department,
		Priority:     entry.Priority,
		IssuePreview: render.PreviewIssue(entry.Issue),
		Contact:      entry.Contact,
	})
	return entry, nil
}

// Dashboard materializes the aggregate projection from storage. Always
// succeeds; an unreadable store aggregates as empty.
func (s *SurveyService) Dashboard(ctx context.Context) domain.DashboardSummary {
	return s.aggregator.Aggregate(s.store.ReadAll(ctx))
}

// ExportCSV projects the full collection into the export document.
func (s *SurveyService) ExportCSV(ctx context.Context) string {
	entries := s.store.ReadAll(ctx)
	content := s.projector.ToCSV(entries)

	s.publish(ctx, events.EventExportGenerated, events.ExportGeneratedPayload{
		RowCount: len(entries),
	})
	return content
}

// Reset destroys the entire collection.
func (s *SurveyService) Reset(ctx context.Context) error {
	destroyed := len(s.store.ReadAll(ctx))
	if err := s.store.Clear(ctx); err != nil {
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventStoreReset, events.StoreResetPayload{
		DestroyedCount: destroyed,
	})
	return nil
}

func (s *SurveyService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
