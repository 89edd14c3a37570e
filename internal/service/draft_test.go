package service

import (
	"context"
	"testing"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDraftFixture() (*DraftService, *memDraftRepo, *memOrderRepo) {
	draftRepo := newMemDraftRepo()
	orderRepo := &memOrderRepo{}
	catalogRepo := &memCatalogRepo{}
	guard := NewOrderService(orderRepo, catalogRepo, draftRepo, "AQ-", 4, zap.NewNop())
	svc := NewDraftService(draftRepo, guard, 3, zap.NewNop())
	return svc, draftRepo, orderRepo
}

func TestDraftService_Save_PersistsQualifyingDraft(t *testing.T) {
	svc, _, _ := newDraftFixture()
	ctx := context.Background()

	draft := models.Draft{
		Phone:    "03001234567",
		Name:     "Ali",
		City:     "Lahore",
		Address:  "12 Mall Road",
		Quantity: 2,
	}

	saved, err := svc.Save(ctx, &draft)
	require.NoError(t, err)
	assert.True(t, saved)

	got, err := svc.Get(ctx, "03001234567", "Ali")
	require.NoError(t, err)
	assert.Equal(t, "Lahore", got.City)
	assert.Equal(t, "12 Mall Road", got.Address)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, models.DraftStatusUnsubmitted, got.Status)
}

func TestDraftService_Save_Preconditions(t *testing.T) {
	tests := []struct {
		name  string
		draft models.Draft
	}{
		{
			name:  "missing_name",
			draft: models.Draft{Phone: "03001234567", City: "Lahore", Address: "12 Mall Road"},
		},
		{
			name:  "missing_phone",
			draft: models.Draft{Name: "Ali", City: "Lahore", Address: "12 Mall Road"},
		},
		{
			name:  "too_few_fields_filled",
			draft: models.Draft{Phone: "03001234567", Name: "Ali"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newDraftFixture()

			saved, err := svc.Save(context.Background(), &tt.draft)
			require.NoError(t, err)
			assert.False(t, saved)
			assert.Zero(t, repo.upserts)
		})
	}
}

func TestDraftService_Save_SuppressedByCommittedOrder(t *testing.T) {
	svc, repo, orderRepo := newDraftFixture()
	ctx := context.Background()

	orderRepo.orders = append(orderRepo.orders, models.Order{
		ID:       "AQ-0001",
		Customer: "Ali",
		Phone:    "03001234567",
		Status:   models.OrderStatusPending,
	})

	draft := models.Draft{Phone: "03001234567", Name: "Ali", City: "Lahore", Address: "12 Mall Road"}

	saved, err := svc.Save(ctx, &draft)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Zero(t, repo.upserts)
}

func TestDraftService_Save_CancelledOrderDoesNotSuppress(t *testing.T) {
	svc, _, orderRepo := newDraftFixture()
	ctx := context.Background()

	orderRepo.orders = append(orderRepo.orders, models.Order{
		ID:       "AQ-0001",
		Customer: "Ali",
		Phone:    "03001234567",
		Status:   models.OrderStatusCancelled,
	})

	draft := models.Draft{Phone: "03001234567", Name: "Ali", City: "Lahore", Address: "12 Mall Road"}

	saved, err := svc.Save(ctx, &draft)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestDraftService_Save_OverwritesByNaturalKey(t *testing.T) {
	svc, repo, _ := newDraftFixture()
	ctx := context.Background()

	first := models.Draft{Phone: "03001234567", Name: "Ali", City: "Lahore", Address: "12 Mall Road"}
	saved, err := svc.Save(ctx, &first)
	require.NoError(t, err)
	require.True(t, saved)

	second := models.Draft{Phone: "03001234567", Name: "Ali", City: "Karachi", Address: "7 Clifton"}
	saved, err = svc.Save(ctx, &second)
	require.NoError(t, err)
	require.True(t, saved)

	// still one draft per key, latest values win
	assert.Len(t, repo.drafts, 1)
	got, err := svc.Get(ctx, "03001234567", "Ali")
	require.NoError(t, err)
	assert.Equal(t, "Karachi", got.City)
}

func TestDraftService_Delete_Idempotent(t *testing.T) {
	svc, _, _ := newDraftFixture()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "03001234567", "Ali"))
	require.NoError(t, svc.Delete(ctx, "03001234567", "Ali"))
}
