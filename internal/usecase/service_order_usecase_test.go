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

func newServiceOrderUseCaseWithMocks(t *testing.T) (*ServiceOrderUseCase, *mock_interfaces.MockIServiceOrderRepository, *mock_interfaces.MockICatalogNotifier) {
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogNotifier(ctrl)
	uc := NewServiceOrderUseCase(orders, mock_interfaces.NewMockIExtensionRepository(ctrl), mock_interfaces.NewMockISubstitutionRepository(ctrl), catalog, nil)
	uc.now = fixedClock
	return uc, orders, catalog
}

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("invalid terms", func(t *testing.T) {
		uc, _, _ := newServiceOrderUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), entities.NewServiceOrderInput{Title: "x"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, orders, _ := newServiceOrderUseCaseWithMocks(t)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID == "" || o.Status != entities.ServiceOrderStatusActive || !o.CreatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected order: %+v", o)
				}
				return o, nil
			},
		)

		_, err := uc.Create(context.Background(), entities.NewServiceOrderInput{
			Title:          "Backend engineer",
			SpecialistID:   "spec-a",
			SpecialistName: "Alice",
			StartDate:      time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:        time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			ManDays:        20,
			DailyRate:      decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_Complete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _, _ := newServiceOrderUseCaseWithMocks(t)
		_, err := uc.Complete(context.Background(), "")
		if !errors.Is(err, ErrInvalidServiceOrderID) {
			t.Fatalf("expected ErrInvalidServiceOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, orders, _ := newServiceOrderUseCaseWithMocks(t)
		orders.EXPECT().GetByID(gomock.Any(), "so-1").Return(entities.ServiceOrder{}, nil)
		_, err := uc.Complete(context.Background(), "so-1")
		if !errors.Is(err, ErrServiceOrderNotFound) {
			t.Fatalf("expected ErrServiceOrderNotFound, got %v", err)
		}
	})

	t.Run("pending extension cannot complete", func(t *testing.T) {
		uc, orders, _ := newServiceOrderUseCaseWithMocks(t)
		o := activeOrder()
		o.Status = entities.ServiceOrderStatusPendingExtension
		orders.EXPECT().GetByID(gomock.Any(), "so-1").Return(o, nil)

		_, err := uc.Complete(context.Background(), "so-1")
		if !errors.Is(err, entities.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	t.Run("active completes with actual end date", func(t *testing.T) {
		uc, orders, catalog := newServiceOrderUseCaseWithMocks(t)
		orders.EXPECT().GetByID(gomock.Any(), "so-1").Return(activeOrder(), nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				o.Version++
				return o, nil
			},
		)
		catalog.EXPECT().NotifyStatusChange(gomock.Any(), CatalogResourceServiceOrders, "so-1", "COMPLETED").Return(nil)

		done, err := uc.Complete(context.Background(), "so-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if done.ActualEndDate == nil || !done.ActualEndDate.Equal(entities.DateOf(fixedNow)) {
			t.Fatalf("unexpected actual end date: %v", done.ActualEndDate)
		}
		if done.Version != 4 {
			t.Fatalf("expected version 4, got %d", done.Version)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		uc, orders, _ := newServiceOrderUseCaseWithMocks(t)
		orders.EXPECT().GetByID(gomock.Any(), "so-1").Return(activeOrder(), nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.Complete(context.Background(), "so-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc, _, _ := newServiceOrderUseCaseWithMocks(t)
		_, err := uc.List(context.Background(), entities.ServiceOrderFilter{Status: "DONE"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("passes filter through", func(t *testing.T) {
		uc, orders, _ := newServiceOrderUseCaseWithMocks(t)
		filter := entities.ServiceOrderFilter{Status: entities.ServiceOrderStatusActive, SupplierID: "sup-1"}
		orders.EXPECT().List(gomock.Any(), filter).Return([]entities.ServiceOrder{activeOrder()}, nil)

		got, err := uc.List(context.Background(), filter)
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
