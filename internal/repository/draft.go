package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
)

const (
	upsertDraftQuery = `
						INSERT INTO drafts (phone, name, city, address, quantity, product_id, status)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						ON CONFLICT (phone, name) DO UPDATE
						SET city = EXCLUDED.city,
						    address = EXCLUDED.address,
						    quantity = EXCLUDED.quantity,
						    product_id = EXCLUDED.product_id,
						    updated_at = NOW()
						RETURNING phone, name, city, address, quantity, product_id, status, created_at, updated_at
`
	selectDraftQuery = `
						SELECT phone, name, city, address, quantity, product_id, status, created_at, updated_at FROM drafts
						WHERE phone = $1 AND name = $2
`
	deleteDraftQuery = `
						DELETE FROM drafts
						WHERE phone = $1 AND name = $2
`
)

// DraftRepository implements DraftRepository interface
type DraftRepository struct {
	db Querier
}

// NewDraftRepository creates new DraftRepository instance
func NewDraftRepository(db Querier) *DraftRepository {
	return &DraftRepository{db: db}
}

// UpsertDraft inserts draft or overwrites the existing one for the same
// (phone, name) key
func (dr *DraftRepository) UpsertDraft(ctx context.Context, draft *models.Draft) (*models.Draft, error) {
	err := dr.db.QueryRow(ctx, upsertDraftQuery,
		draft.Phone, draft.Name, draft.City, draft.Address, draft.Quantity, draft.ProductID, models.DraftStatusUnsubmitted).
		Scan(&draft.Phone, &draft.Name, &draft.City, &draft.Address, &draft.Quantity, &draft.ProductID, &draft.Status, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return draft, nil
}

// GetDraft returns draft by (phone, name) key
func (dr *DraftRepository) GetDraft(ctx context.Context, phone, name string) (*models.Draft, error) {
	draft := models.Draft{}
	err := dr.db.QueryRow(ctx, selectDraftQuery, phone, name).
		Scan(&draft.Phone, &draft.Name, &draft.City, &draft.Address, &draft.Quantity, &draft.ProductID, &draft.Status, &draft.CreatedAt, &draft.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &draft, nil
}

// DeleteDraft removes draft by (phone, name) key. Deleting an absent
// draft is not an error.
func (dr *DraftRepository) DeleteDraft(ctx context.Context, phone, name string) error {
	_, err := dr.db.Exec(ctx, deleteDraftQuery, phone, name)
	return err
}
