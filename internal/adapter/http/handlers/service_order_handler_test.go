package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"staffing_service/internal/adapter/http/export"
	"staffing_service/internal/adapter/http/handlers/mocks"
	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func testOrder() entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:                  "so-1",
		Title:               "Backend engineer",
		Status:              entities.ServiceOrderStatusActive,
		StartDate:           time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		OriginalEndDate:     time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		CurrentEndDate:      time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		CurrentSpecialistID: "spec-a",
		CurrentManDays:      20,
		OriginalManDays:     20,
		DailyRate:           decimal.NewFromInt(500),
		Version:             1,
	}
}

func newServiceOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	h := NewServiceOrderHandler(uc)
	h.now = func() time.Time { return time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC) }

	r := gin.New()
	r.POST("/v1/service-orders", h.Create)
	r.GET("/v1/service-orders", h.List)
	r.GET("/v1/service-orders/export", h.Export)
	r.GET("/v1/service-orders/:id", h.GetByID)
	r.POST("/v1/service-orders/:id/complete", h.Complete)
	r.POST("/v1/service-orders/:id/cancel", h.Cancel)
	r.GET("/v1/service-orders/:id/extensions", h.ListExtensions)
	return r, uc
}

func TestServiceOrderHandler_Create(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/service-orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad date format", func(t *testing.T) {
		r, _ := newServiceOrderRouter(t)
		body := `{"title":"x","specialist_id":"a","start_date":"01/01/2025","end_date":"2025-01-31","man_days":20,"daily_rate":"500"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in entities.NewServiceOrderInput) (entities.ServiceOrder, error) {
				if in.ManDays != 20 || !in.DailyRate.Equal(decimal.NewFromInt(500)) || in.EndDate.Day() != 31 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return testOrder(), nil
			},
		)

		body := `{"title":"Backend engineer","specialist_id":"spec-a","start_date":"2025-01-01","end_date":"2025-01-31","man_days":20,"daily_rate":"500"}`
		w := performRequest(r, http.MethodPost, "/v1/service-orders", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["consumed_man_days"].(float64) != 6 || got["remaining_man_days"].(float64) != 14 {
			t.Fatalf("unexpected metrics: %v", got)
		}
	})
}

func TestServiceOrderHandler_GetAndList(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.ServiceOrder{}, usecase.ErrServiceOrderNotFound)

		w := performRequest(r, http.MethodGet, "/v1/service-orders/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list maps query filters", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		want := entities.ServiceOrderFilter{Status: entities.ServiceOrderStatusActive, CurrentSpecialistName: "ali", Search: "backend"}
		uc.EXPECT().List(gomock.Any(), want).Return([]entities.ServiceOrder{testOrder()}, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-orders?status=active&specialist_name=ali&search=backend", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ServiceOrderFilter{}).Return([]entities.ServiceOrder{testOrder()}, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-orders/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != export.ContentTypeXLSX {
			t.Fatalf("unexpected content type %q", ct)
		}
		if w.Body.Len() == 0 {
			t.Fatalf("expected workbook bytes")
		}
	})

	t.Run("extensions history", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().ListExtensions(gomock.Any(), "so-1").Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-orders/so-1/extensions", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceOrderHandler_Lifecycle(t *testing.T) {
	t.Run("complete from pending extension", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Complete(gomock.Any(), "so-1").Return(entities.ServiceOrder{}, entities.NewInvalidStateError("cannot complete"))

		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/complete", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("complete", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		done := testOrder()
		done.Status = entities.ServiceOrderStatusCompleted
		end := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		done.ActualEndDate = &end
		uc.EXPECT().Complete(gomock.Any(), "so-1").Return(done, nil)

		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/complete", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["actual_end_date"] != "2025-01-10" || got["status"] != "COMPLETED" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("cancel lost race", func(t *testing.T) {
		r, uc := newServiceOrderRouter(t)
		uc.EXPECT().Cancel(gomock.Any(), "so-1").Return(entities.ServiceOrder{}, entities.ErrConcurrentModification)

		w := performRequest(r, http.MethodPost, "/v1/service-orders/so-1/cancel", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
