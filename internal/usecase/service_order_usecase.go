package usecase

import (
	"context"
	"time"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidServiceOrderID = entities.NewValidationError("invalid service order id")
	ErrServiceOrderNotFound  = entities.NewNotFoundError("service order not found")
)

// IServiceOrderUseCase exposes the order lifecycle outside of the extension
// and substitution workflows.
type IServiceOrderUseCase interface {
	Create(ctx context.Context, in entities.NewServiceOrderInput) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error)
	ListExtensions(ctx context.Context, orderID string) ([]entities.ServiceOrderExtension, error)
	ListSubstitutions(ctx context.Context, orderID string) ([]entities.ServiceOrderSubstitution, error)
	Complete(ctx context.Context, id string) (entities.ServiceOrder, error)
	Cancel(ctx context.Context, id string) (entities.ServiceOrder, error)
	Suspend(ctx context.Context, id string) (entities.ServiceOrder, error)
	Resume(ctx context.Context, id string) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orders        interfaces.IServiceOrderRepository
	extensions    interfaces.IExtensionRepository
	substitutions interfaces.ISubstitutionRepository
	catalog       interfaces.ICatalogNotifier
	metrics       interfaces.IMetricsRecorder
	now           func() time.Time
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	orders interfaces.IServiceOrderRepository,
	extensions interfaces.IExtensionRepository,
	substitutions interfaces.ISubstitutionRepository,
	catalog interfaces.ICatalogNotifier,
	metrics interfaces.IMetricsRecorder,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orders:        orders,
		extensions:    extensions,
		substitutions: substitutions,
		catalog:       catalog,
		metrics:       recorderOrNoop(metrics),
		now:           utcNow,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, in entities.NewServiceOrderInput) (entities.ServiceOrder, error) {
	order, err := entities.NewServiceOrder(uuid.NewString(), in, u.now())
	if err != nil {
		u.metrics.Transition("service_order", "create", resultLabel(err))
		return entities.ServiceOrder{}, err
	}
	created, err := u.orders.Create(ctx, order)
	u.metrics.Transition("service_order", "create", resultLabel(err))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id":      created.ID,
		"offer_id":      created.WinningOfferID,
		"specialist_id": created.CurrentSpecialistID,
	}).Info("[order][usecase] service order created")
	return created, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = normalizeID(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}
	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context, filter entities.ServiceOrderFilter) ([]entities.ServiceOrder, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, entities.NewValidationError("invalid status filter %q", filter.Status)
	}
	return u.orders.List(ctx, filter)
}

func (u *ServiceOrderUseCase) ListExtensions(ctx context.Context, orderID string) ([]entities.ServiceOrderExtension, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.extensions.ListByServiceOrderID(ctx, o.ID)
}

func (u *ServiceOrderUseCase) ListSubstitutions(ctx context.Context, orderID string) ([]entities.ServiceOrderSubstitution, error) {
	o, err := u.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return u.substitutions.ListByServiceOrderID(ctx, o.ID)
}

func (u *ServiceOrderUseCase) Complete(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, "complete", entities.ServiceOrder.Complete)
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, "cancel", entities.ServiceOrder.Cancel)
}

func (u *ServiceOrderUseCase) Suspend(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, "suspend", entities.ServiceOrder.Suspend)
}

func (u *ServiceOrderUseCase) Resume(ctx context.Context, id string) (entities.ServiceOrder, error) {
	return u.transition(ctx, id, "resume", entities.ServiceOrder.Resume)
}

func (u *ServiceOrderUseCase) transition(
	ctx context.Context,
	id string,
	action string,
	apply func(o entities.ServiceOrder, now time.Time) (entities.ServiceOrder, error),
) (entities.ServiceOrder, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	next, err := apply(current, u.now())
	if err != nil {
		u.metrics.Transition("service_order", action, resultLabel(err))
		logger.Log.WithFields(logrus.Fields{"order_id": current.ID, "status": current.Status}).
			WithError(err).Info("[order][usecase] " + action + " refused")
		return entities.ServiceOrder{}, err
	}

	saved, err := u.orders.Update(ctx, next)
	u.metrics.Transition("service_order", action, resultLabel(err))
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id": saved.ID,
		"from":     current.Status,
		"to":       saved.Status,
	}).Info("[order][usecase] " + action)

	notifyCatalog(ctx, u.catalog, u.metrics, CatalogResourceServiceOrders, saved.ID, string(saved.Status))
	return saved, nil
}
