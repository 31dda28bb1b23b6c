package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"staffing_service/internal/domain/entities"
	mock_interfaces "staffing_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type offerMocks struct {
	offers   *mock_interfaces.MockIServiceOfferRepository
	requests *mock_interfaces.MockIServiceRequestRepository
	orders   *mock_interfaces.MockIServiceOrderRepository
	engine   *mock_interfaces.MockIWorkflowEngine
	catalog  *mock_interfaces.MockICatalogNotifier
}

func newServiceOfferUseCaseWithMocks(t *testing.T) (*ServiceOfferUseCase, offerMocks) {
	ctrl := gomock.NewController(t)
	m := offerMocks{
		offers:   mock_interfaces.NewMockIServiceOfferRepository(ctrl),
		requests: mock_interfaces.NewMockIServiceRequestRepository(ctrl),
		orders:   mock_interfaces.NewMockIServiceOrderRepository(ctrl),
		engine:   mock_interfaces.NewMockIWorkflowEngine(ctrl),
		catalog:  mock_interfaces.NewMockICatalogNotifier(ctrl),
	}
	uc := NewServiceOfferUseCase(m.offers, m.requests, m.orders, m.engine, m.catalog, nil)
	uc.now = fixedClock
	return uc, m
}

func submittedOffer() entities.ServiceOffer {
	return entities.ServiceOffer{
		ID:               "of-1",
		ExternalID:       "ext-of-1",
		ServiceRequestID: "sr-1",
		ProviderID:       "sup-1",
		ProviderName:     "Acme",
		SpecialistID:     "spec-a",
		SpecialistName:   "Alice",
		Status:           entities.ServiceOfferStatusSubmitted,
		DailyRate:        decimal.NewFromInt(500),
		TotalCost:        decimal.NewFromInt(10000),
		Version:          1,
	}
}

func TestServiceOfferUseCase_Submit(t *testing.T) {
	in := entities.NewServiceOfferInput{
		ServiceRequestID: "sr-1",
		ProviderID:       "sup-1",
		DailyRate:        decimal.NewFromInt(500),
		TotalCost:        decimal.NewFromInt(10000),
	}

	t.Run("request without process", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		req := openRequest()
		req.ProcessID = ""
		m.requests.EXPECT().GetByID(gomock.Any(), "sr-1").Return(req, nil)

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrRequestHasNoProcess) {
			t.Fatalf("expected ErrRequestHasNoProcess, got %v", err)
		}
	})

	t.Run("signals waiting execution", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		m.requests.EXPECT().GetByID(gomock.Any(), "sr-1").Return(openRequest(), nil)
		m.offers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) { return o, nil },
		)
		m.engine.EXPECT().TriggerMessage(gomock.Any(), "proc-1", ActivityWaitForOffer, MessageOfferReceived, gomock.Any()).Return("exec-1", nil)

		got, err := uc.Submit(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ExecutionID != "exec-1" || got.Offer.Status != entities.ServiceOfferStatusSubmitted {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestServiceOfferUseCase_CompleteTask(t *testing.T) {
	t.Run("acceptance creates service order", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{VarOfferID: "of-1"}, nil)
		m.offers.EXPECT().GetByID(gomock.Any(), "of-1").Return(submittedOffer(), nil)
		m.offers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) { return o, nil },
		)
		m.catalog.EXPECT().NotifyStatusChange(gomock.Any(), CatalogResourceServiceOffers, "ext-of-1", "ACCEPTED").Return(nil)
		m.orders.EXPECT().List(gomock.Any(), entities.ServiceOrderFilter{WinningOfferID: "of-1"}).Return(nil, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "sr-1").Return(openRequest(), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.WinningOfferID != "of-1" || !o.CurrentContractValue.Equal(decimal.NewFromInt(10000)) {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)
		m.engine.EXPECT().CompleteTask(gomock.Any(), "t-1", map[string]any{VarValidationResult: entities.OfferDecisionFinalApproval}).Return(nil)

		res, err := uc.CompleteTask(context.Background(), "t-1", entities.OfferDecisionFinalApproval)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ServiceOrder == nil || res.Offer.Status != entities.ServiceOfferStatusAccepted {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("invalid order terms leave offer untouched", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		undated := openRequest()
		undated.StartDate = time.Time{}
		undated.EndDate = time.Time{}
		undated.ExpectedManDays = 0
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{VarOfferID: "of-1"}, nil)
		m.offers.EXPECT().GetByID(gomock.Any(), "of-1").Return(submittedOffer(), nil)
		m.orders.EXPECT().List(gomock.Any(), entities.ServiceOrderFilter{WinningOfferID: "of-1"}).Return(nil, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "sr-1").Return(undated, nil)

		_, err := uc.CompleteTask(context.Background(), "t-1", entities.OfferDecisionFinalApproval)
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejection after failed acceptance still settles", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{VarOfferID: "of-1"}, nil)
		m.offers.EXPECT().GetByID(gomock.Any(), "of-1").Return(submittedOffer(), nil)
		m.offers.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOffer) (entities.ServiceOffer, error) { return o, nil },
		)
		m.catalog.EXPECT().NotifyStatusChange(gomock.Any(), CatalogResourceServiceOffers, "ext-of-1", "REJECTED").Return(nil)
		m.engine.EXPECT().CompleteTask(gomock.Any(), "t-1", gomock.Any()).Return(nil)

		res, err := uc.CompleteTask(context.Background(), "t-1", entities.OfferDecisionFinalRejection)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Offer.Status != entities.ServiceOfferStatusRejected || res.ServiceOrder != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("retry after engine failure reuses order", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		accepted := submittedOffer()
		accepted.Status = entities.ServiceOfferStatusAccepted
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{VarOfferID: "of-1"}, nil)
		m.offers.EXPECT().GetByID(gomock.Any(), "of-1").Return(accepted, nil)
		m.orders.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.ServiceOrder{activeOrder()}, nil)
		m.engine.EXPECT().CompleteTask(gomock.Any(), "t-1", gomock.Any()).Return(nil)

		res, err := uc.CompleteTask(context.Background(), "t-1", entities.OfferDecisionFinalApproval)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ServiceOrder == nil || res.ServiceOrder.ID != "so-1" {
			t.Fatalf("expected existing order, got %+v", res.ServiceOrder)
		}
	})

	t.Run("settled offer cannot change decision", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		rejected := submittedOffer()
		rejected.Status = entities.ServiceOfferStatusRejected
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{VarOfferID: "of-1"}, nil)
		m.offers.EXPECT().GetByID(gomock.Any(), "of-1").Return(rejected, nil)

		_, err := uc.CompleteTask(context.Background(), "t-1", entities.OfferDecisionFinalApproval)
		if !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("task without offer", func(t *testing.T) {
		uc, m := newServiceOfferUseCaseWithMocks(t)
		m.engine.EXPECT().GetTaskVariables(gomock.Any(), "t-1").Return(map[string]any{}, nil)

		_, err := uc.CompleteTask(context.Background(), "t-1", "review")
		if !errors.Is(err, ErrWorkflowTaskNotFound) {
			t.Fatalf("expected ErrWorkflowTaskNotFound, got %v", err)
		}
	})
}
