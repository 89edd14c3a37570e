package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/service"
	"go.uber.org/zap"
)

type ImportService interface {
	// ImportBatch commits one pending order per row
	ImportBatch(ctx context.Context, rows []service.ImportRow) service.ImportResult
}

// ImportHandler represents HTTP handler for bulk order import
type ImportHandler struct {
	svc    ImportService
	logger *zap.Logger
}

// NewImportHandler creates new ImportHandler instance
func NewImportHandler(svc ImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, logger: logger}
}

type importBatchReq struct {
	Orders []service.ImportRow `json:"orders"`
}

// ImportOrders reconciles an operator-submitted batch against the
// catalog and reports per-row outcomes
// 200 — батч обработан, тело содержит итоги;
// 400 — неверный формат запроса или пустой батч.
func (ih *ImportHandler) ImportOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := importBatchReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if len(req.Orders) == 0 {
			http.Error(w, "empty batch", http.StatusBadRequest)
			return
		}

		result := ih.svc.ImportBatch(r.Context(), req.Orders)

		ih.logger.Info("import batch processed",
			zap.Int("imported", result.Imported),
			zap.Int("failed", result.Failed),
			zap.Int("total", result.Total))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(result); err != nil {
			return
		}
	}
}
