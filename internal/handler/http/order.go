package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/service"
	"go.uber.org/zap"
)

type OrderService interface {
	// Submit validates the checkout form and commits a pending order
	Submit(ctx context.Context, sub service.Submission, markSubmitted func()) (*models.Order, error)
	// ListByCustomer returns committed orders for customer identity
	ListByCustomer(ctx context.Context, phone, customer string) ([]models.Order, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc      OrderService
	sessions SessionStore
	logger   *zap.Logger
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService, sessions SessionStore, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, sessions: sessions, logger: logger}
}

// SubmitOrder finalizes the checkout form into a committed order
// 201 — заказ создан, тело содержит запись с идентификатором;
// 400 — неверный формат запроса;
// 422 — не заполнены обязательные поля или товар не найден;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := service.Submission{}
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		// the submitted flag lives on the session's autosave scheduler;
		// Submit flips it before any asynchronous work
		sess := currentSession(oh.sessions, r)
		var mark func()
		if sess != nil {
			mark = sess.Scheduler().MarkSubmitted
		}

		order, err := oh.svc.Submit(r.Context(), sub, mark)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrValidation):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, models.ErrDataNotFound):
				http.Error(w, "unknown product", http.StatusUnprocessableEntity)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if sess != nil {
			sess.RecordOrder(*order)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(order); err != nil {
			return
		}
	}
}

// ListOrders returns committed orders for the (phone, customer) query
// key. Consumed by the duplicate guard and admin screens.
// 200 — успешная обработка запроса;
// 204 — заказов нет;
// 400 — неверный формат запроса;
// 500 — внутренняя ошибка сервера.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		phone := r.URL.Query().Get("phone")
		customer := r.URL.Query().Get("customer")
		if phone == "" || customer == "" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		orders, err := oh.svc.ListByCustomer(r.Context(), phone, customer)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(orders); err != nil {
			return
		}
	}
}
