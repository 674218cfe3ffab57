package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
)

// AuditService persists catalog mutation events as LogActivity rows.
type AuditService struct {
	activities repository.ActivityStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(activities repository.ActivityStore, dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{
		activities: activities,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to the full event stream.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range events.All() {
		a.dispatcher.Subscribe(eventType, a.recordActivity)
	}
}

// ListRecent returns the newest entries, up to limit.
func (a *AuditService) ListRecent(ctx context.Context, limit int) ([]domain.LogActivity, error) {
	all, err := a.activities.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if len(all) <= limit {
		reverse(all)
		return all, nil
	}
	recent := all[len(all)-limit:]
	reverse(recent)
	return recent, nil
}

func (a *AuditService) recordActivity(ctx context.Context, event events.Event) error {
	entry := &domain.LogActivity{
		Action:    string(event.Type),
		Entity:    event.Entity,
		EntityRef: event.EntityRef,
		Actor:     event.Actor,
		Detail:    event.Detail,
		CreatedAt: event.Timestamp,
	}
	if err := a.activities.Add(ctx, entry); err != nil {
		a.logger.Error("failed to stage activity entry", zap.Error(err))
		return err
	}
	if _, err := a.activities.Commit(ctx); err != nil {
		a.logger.Error("failed to persist activity entry", zap.Error(err))
		return err
	}
	a.logger.Debug("activity recorded",
		zap.String("action", entry.Action),
		zap.String("entity", entry.Entity),
		zap.Int("entity_ref", entry.EntityRef))
	return nil
}

func reverse(entries []domain.LogActivity) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
