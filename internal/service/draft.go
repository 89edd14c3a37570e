package service

import (
	"context"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"go.uber.org/zap"
)

// DraftRepository is interface for interacting with draft-related data
type DraftRepository interface {
	// UpsertDraft inserts draft or overwrites the existing one for the same key
	UpsertDraft(ctx context.Context, draft *models.Draft) (*models.Draft, error)
	// GetDraft returns draft by (phone, name) key
	GetDraft(ctx context.Context, phone, name string) (*models.Draft, error)
	// DeleteDraft removes draft by (phone, name) key, idempotently
	DeleteDraft(ctx context.Context, phone, name string) error
}

// DuplicateGuard suppresses draft capture once the customer already has
// a live committed order
type DuplicateGuard interface {
	HasCommittedOrder(ctx context.Context, phone, name string) (bool, error)
}

// DraftService implements the guarded draft store
type DraftService struct {
	repo      DraftRepository
	guard     DuplicateGuard
	minFilled int
	logger    *zap.Logger
}

// NewDraftService creates new DraftService instance
func NewDraftService(repo DraftRepository, guard DuplicateGuard, minFilled int, logger *zap.Logger) *DraftService {
	return &DraftService{
		repo:      repo,
		guard:     guard,
		minFilled: minFilled,
		logger:    logger,
	}
}

// Save upserts the draft by its (phone, name) key and reports whether a
// write happened. Nothing is written unless name and phone are present,
// enough of the form is filled to make the lead actionable, and the
// customer has no live committed order.
func (ds *DraftService) Save(ctx context.Context, draft *models.Draft) (bool, error) {
	if draft.Name == "" || draft.Phone == "" {
		return false, nil
	}

	if draft.FilledFields() < ds.minFilled {
		return false, nil
	}

	exists, err := ds.guard.HasCommittedOrder(ctx, draft.Phone, draft.Name)
	if err != nil {
		return false, err
	}
	if exists {
		ds.logger.Debug("draft suppressed, customer has a live order",
			zap.String("phone", draft.Phone),
			zap.String("name", draft.Name))
		return false, nil
	}

	draft.Status = models.DraftStatusUnsubmitted
	if _, err := ds.repo.UpsertDraft(ctx, draft); err != nil {
		return false, err
	}

	return true, nil
}

// Get returns the draft for the (phone, name) key
func (ds *DraftService) Get(ctx context.Context, phone, name string) (*models.Draft, error) {
	return ds.repo.GetDraft(ctx, phone, name)
}

// Delete removes the draft for the (phone, name) key, idempotently
func (ds *DraftService) Delete(ctx context.Context, phone, name string) error {
	return ds.repo.DeleteDraft(ctx, phone, name)
}
