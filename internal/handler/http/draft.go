package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"go.uber.org/zap"
)

type DraftService interface {
	// Save upserts the draft and reports whether a write happened
	Save(ctx context.Context, draft *models.Draft) (bool, error)
	// Get returns the draft for the (phone, name) key
	Get(ctx context.Context, phone, name string) (*models.Draft, error)
	// Delete removes the draft for the (phone, name) key, idempotently
	Delete(ctx context.Context, phone, name string) error
}

// DraftHandler represents HTTP handler for draft-related requests
type DraftHandler struct {
	svc    DraftService
	logger *zap.Logger
}

// NewDraftHandler creates new DraftHandler instance
func NewDraftHandler(svc DraftService, logger *zap.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, logger: logger}
}

type saveDraftResp struct {
	Saved bool `json:"saved"`
}

// SaveDraft upserts draft by its (phone, name) key. Failures are
// swallowed from the caller's perspective: the response carries only the
// success boolean.
// 200 — запрос обработан, тело содержит признак записи;
// 400 — неверный формат запроса.
func (dh *DraftHandler) SaveDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft := models.Draft{}
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		saved, err := dh.svc.Save(r.Context(), &draft)
		if err != nil {
			dh.logger.Warn("draft save failed", zap.String("phone", draft.Phone), zap.Error(err))
			saved = false
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(saveDraftResp{Saved: saved}); err != nil {
			return
		}
	}
}

// GetDraft returns the draft for the (phone, name) query key
// 200 — черновик найден;
// 204 — черновика нет;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (dh *DraftHandler) GetDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		name := r.URL.Query().Get("name")
		if phone == "" || name == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		draft, err := dh.svc.Get(r.Context(), phone, name)
		if err != nil {
			if errors.Is(err, models.ErrDataNotFound) {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(draft); err != nil {
			return
		}
	}
}

// DeleteDraft removes the draft for the (phone, name) query key,
// idempotently
// 200 — черновик удалён или отсутствовал;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (dh *DraftHandler) DeleteDraft() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		name := r.URL.Query().Get("name")
		if phone == "" || name == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		if err := dh.svc.Delete(r.Context(), phone, name); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
