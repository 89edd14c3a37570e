package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/handler/http/mocks"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/service"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// emptySessionStore is used when the request carries no session
type emptySessionStore struct{}

func (emptySessionStore) Get(string) (*session.Session, bool) { return nil, false }
func (emptySessionStore) GetOrStart(string) *session.Session  { return nil }
func (emptySessionStore) End(string)                          {}

func noopSave(_ context.Context, _ models.Draft) (bool, error) { return false, nil }

func TestOrderHandler_SubmitOrder(t *testing.T) {
	committed := &models.Order{
		ID:       "AQ-0001",
		Customer: "Ali",
		Phone:    "03001234567",
		Status:   models.OrderStatusPending,
	}

	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_201",
			body: `{"customer":"Ali","phone":"03001234567","city":"Lahore","address":"12 Mall Road","product_id":"rice-5kg","quantity":2}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(committed, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "bad_request_return_400",
			body: `not json`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "missing_required_fields_return_422",
			body: `{"customer":"Ali","phone":"","city":"Lahore","address":"12 Mall Road"}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: missing phone", models.ErrValidation)).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "unknown_product_return_422",
			body: `{"customer":"Ali","phone":"03001234567","city":"Lahore","address":"12 Mall Road","product_id":"nope","quantity":1}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, models.ErrDataNotFound).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "internal_error_return_500",
			body: `{"customer":"Ali","phone":"03001234567","city":"Lahore","address":"12 Mall Road","product_id":"rice-5kg","quantity":2}`,
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, models.ErrInternalError).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)

			h := NewOrderHandler(st, emptySessionStore{}, zap.NewNop()).SubmitOrder()
			h(w, req)

			res := w.Result()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)
			defer res.Body.Close()
		})
	}
}

func TestOrderHandler_SubmitOrder_MarksSessionSubmitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mgr := session.NewManager(ctx, time.Minute, time.Hour, 5, noopSave, zap.NewNop())
	sess := mgr.Start()

	ctrl := gomock.NewController(t)

	committed := &models.Order{ID: "AQ-0001", Status: models.OrderStatusPending}

	svcMock := mocks.NewMockOrderService(ctrl)
	svcMock.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ service.Submission, mark func()) (*models.Order, error) {
			require.NotNil(t, mark)
			mark()
			return committed, nil
		})

	req, err := http.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"customer":"Ali","phone":"03001234567","city":"Lahore","address":"12 Mall Road","product_id":"rice-5kg","quantity":2}`))
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sess.ID})

	w := httptest.NewRecorder()
	h := NewOrderHandler(svcMock, mgr, zap.NewNop()).SubmitOrder()
	h(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// submitted flag flipped and order recorded in the session ring
	assert.True(t, sess.Scheduler().Submitted())
	require.Len(t, sess.State().History, 1)
	assert.Equal(t, "AQ-0001", sess.State().History[0].ID)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	createdAt := time.Now().Truncate(time.Second)
	tests := []struct {
		name           string
		query          string
		setup          func(t *testing.T) *mocks.MockOrderService
		wantStatusCode int
		wantBody       []models.Order
	}{
		{
			name:  "valid_request_return_200",
			query: "?phone=03001234567&customer=Ali",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListByCustomer(gomock.Any(), "03001234567", "Ali").Return([]models.Order{
					{
						ID:        "AQ-0001",
						Customer:  "Ali",
						Phone:     "03001234567",
						Status:    models.OrderStatusPending,
						CreatedAt: createdAt,
					},
				}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody: []models.Order{{
				ID:        "AQ-0001",
				Customer:  "Ali",
				Phone:     "03001234567",
				Status:    models.OrderStatusPending,
				CreatedAt: createdAt,
			}},
		},
		{
			name:  "no_orders_return_204",
			query: "?phone=03001234567&customer=Ali",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]models.Order{}, nil).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:  "missing_query_return_400",
			query: "?phone=03001234567",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "internal_error_return_500",
			query: "?phone=03001234567&customer=Ali",
			setup: func(t *testing.T) *mocks.MockOrderService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockOrderService(ctrl)
				svcMock.EXPECT().ListByCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db down")).AnyTimes()
				return svcMock
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/api/orders"+tt.query, nil)
			if err != nil {
				t.Fatal("cannot create request", zap.Error(err))
			}

			w := httptest.NewRecorder()
			st := tt.setup(t)

			h := NewOrderHandler(st, emptySessionStore{}, zap.NewNop()).ListOrders()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				resBody, err := io.ReadAll(res.Body)
				require.NoError(t, err)

				var got []models.Order
				err = json.Unmarshal(resBody, &got)
				require.NoError(t, err)

				if diff := cmp.Diff(tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
