package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"staffing_service/internal/adapter/http/handlers/mocks"
	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newServiceRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceRequestUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceRequestUseCase(ctrl)
	h := NewServiceRequestHandler(uc)

	r := gin.New()
	r.POST("/v1/service-requests", h.Create)
	r.GET("/v1/service-requests", h.List)
	r.GET("/v1/service-requests/tasks", h.ListTasks)
	r.POST("/v1/service-requests/tasks/:taskId/complete", h.CompleteTask)
	return r, uc
}

func newServiceOfferRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOfferUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOfferUseCase(ctrl)
	h := NewServiceOfferHandler(uc)

	r := gin.New()
	r.POST("/v1/service-offers", h.Submit)
	r.GET("/v1/service-offers", h.List)
	r.POST("/v1/service-offers/tasks/:taskId/complete", h.CompleteTask)
	return r, uc
}

func TestServiceRequestHandler(t *testing.T) {
	t.Run("criteria with wrong keys", func(t *testing.T) {
		r, _ := newServiceRequestRouter(t)
		body := `{"title":"Go dev","role_name":"backend","criteria_json":{"skills":["go"]}}`
		w := performRequest(r, http.MethodPost, "/v1/service-requests", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceRequest{ID: "sr-1", ProcessID: "proc-1", Status: entities.ServiceRequestStatusOpen}, nil)

		body := `{"title":"Go dev","role_name":"backend","start_date":"2025-01-01","end_date":"2025-03-01","criteria_json":{"skills":["go"],"certifications":[],"languages":["en"]}}`
		w := performRequest(r, http.MethodPost, "/v1/service-requests", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("list by status", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ServiceRequestStatusOpen).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-requests?status=open", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("tasks for group", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().ListTasks(gomock.Any(), "request-reviewers").Return([]usecase.RequestTask{{
			Task:    entities.WorkflowTask{ID: "t-1"},
			Request: entities.ServiceRequest{ID: "sr-1"},
		}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-requests/tasks?group=request-reviewers", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("engine failure after commit", func(t *testing.T) {
		r, uc := newServiceRequestRouter(t)
		uc.EXPECT().CompleteTask(gomock.Any(), "t-1", "approved").
			Return(entities.ServiceRequest{}, entities.NewRemoteCollaboratorError("workflow engine", errors.New("503")))

		w := performRequest(r, http.MethodPost, "/v1/service-requests/tasks/t-1/complete", `{"decision":"approved"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("decision required", func(t *testing.T) {
		r, _ := newServiceRequestRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/service-requests/tasks/t-1/complete", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOfferHandler(t *testing.T) {
	t.Run("missing provider", func(t *testing.T) {
		r, _ := newServiceOfferRouter(t)
		w := performRequest(r, http.MethodPost, "/v1/service-offers", `{"service_request_id":"sr-1","specialist_id":"spec-a"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submit", func(t *testing.T) {
		r, uc := newServiceOfferRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(usecase.SubmittedOffer{
			Offer:             entities.ServiceOffer{ID: "of-1", Status: entities.ServiceOfferStatusSubmitted, TotalCost: decimal.NewFromInt(10000)},
			ProcessInstanceID: "proc-1",
			ExecutionID:       "exec-1",
		}, nil)

		body := `{"service_request_id":"sr-1","provider_id":"sup-1","specialist_id":"spec-a","daily_rate":"500","total_cost":"10000"}`
		w := performRequest(r, http.MethodPost, "/v1/service-offers", body)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["execution_id"] != "exec-1" || got["total_cost"] != "10000.00" {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("list filters", func(t *testing.T) {
		r, uc := newServiceOfferRouter(t)
		uc.EXPECT().List(gomock.Any(), entities.ServiceOfferFilter{ServiceRequestID: "sr-1", Status: entities.ServiceOfferStatusAccepted}).Return(nil, nil)

		w := performRequest(r, http.MethodGet, "/v1/service-offers?service_request_id=sr-1&status=accepted", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accepted offer returns the order", func(t *testing.T) {
		r, uc := newServiceOfferRouter(t)
		order := testOrder()
		uc.EXPECT().CompleteTask(gomock.Any(), "t-9", entities.OfferDecisionFinalApproval).Return(usecase.OfferDecisionResult{
			Offer:        entities.ServiceOffer{ID: "of-1", Status: entities.ServiceOfferStatusAccepted},
			ServiceOrder: &order,
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/service-offers/tasks/t-9/complete", `{"decision":"final_approval"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if got["service_order"]["id"] != "so-1" || got["service_offer"]["status"] != "ACCEPTED" {
			t.Fatalf("unexpected body: %v", got)
		}
	})
}
