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
	ErrInvalidExtensionID = entities.NewValidationError("invalid extension id")
	ErrExtensionNotFound  = entities.NewNotFoundError("extension not found")
)

// ExtensionPolicy holds optional business limits on new extensions.
type ExtensionPolicy struct {
	// MaxRemainingManDays refuses extensions while more man-days than this
	// are still unconsumed. Zero disables the check.
	MaxRemainingManDays int
}

type IExtensionUseCase interface {
	Create(ctx context.Context, orderID string, in entities.NewExtensionInput) (entities.ServiceOrderExtension, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrderExtension, error)
	Approve(ctx context.Context, id string, actor entities.Actor) (entities.ServiceOrderExtension, error)
	Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.ServiceOrderExtension, error)
}

type ExtensionUseCase struct {
	orders     interfaces.IServiceOrderRepository
	extensions interfaces.IExtensionRepository
	committer  interfaces.IOrderChangeCommitter
	catalog    interfaces.ICatalogNotifier
	metrics    interfaces.IMetricsRecorder
	policy     ExtensionPolicy
	now        func() time.Time
}

var _ IExtensionUseCase = (*ExtensionUseCase)(nil)

func NewExtensionUseCase(
	orders interfaces.IServiceOrderRepository,
	extensions interfaces.IExtensionRepository,
	committer interfaces.IOrderChangeCommitter,
	catalog interfaces.ICatalogNotifier,
	metrics interfaces.IMetricsRecorder,
	policy ExtensionPolicy,
) *ExtensionUseCase {
	return &ExtensionUseCase{
		orders:     orders,
		extensions: extensions,
		committer:  committer,
		catalog:    catalog,
		metrics:    recorderOrNoop(metrics),
		policy:     policy,
		now:        utcNow,
	}
}

func (u *ExtensionUseCase) Create(ctx context.Context, orderID string, in entities.NewExtensionInput) (entities.ServiceOrderExtension, error) {
	orderID = normalizeID(orderID)
	if orderID == "" {
		return entities.ServiceOrderExtension{}, ErrInvalidServiceOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrderExtension{}, ErrServiceOrderNotFound
	}

	now := u.now()
	if limit := u.policy.MaxRemainingManDays; limit > 0 && order.CanRequestExtension() {
		if remaining := order.RemainingManDays(now); remaining > limit {
			err := entities.NewInvalidStateError("extension can only be requested when at most %d man days remain (remaining: %d)", limit, remaining)
			u.metrics.Transition("extension", "create", resultLabel(err))
			return entities.ServiceOrderExtension{}, err
		}
	}

	ext, pendingOrder, err := entities.NewServiceOrderExtension(uuid.NewString(), order, in, now)
	if err != nil {
		u.metrics.Transition("extension", "create", resultLabel(err))
		return entities.ServiceOrderExtension{}, err
	}

	_, saved, err := u.committer.CommitExtension(ctx, pendingOrder, ext)
	u.metrics.Transition("extension", "create", resultLabel(err))
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id":            order.ID,
		"extension_id":        saved.ID,
		"additional_man_days": saved.AdditionalManDays,
	}).Info("[extension][usecase] extension requested")
	return saved, nil
}

func (u *ExtensionUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrderExtension, error) {
	id = normalizeID(id)
	if id == "" {
		return entities.ServiceOrderExtension{}, ErrInvalidExtensionID
	}
	ext, err := u.extensions.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	if ext.ID == "" {
		return entities.ServiceOrderExtension{}, ErrExtensionNotFound
	}
	return ext, nil
}

func (u *ExtensionUseCase) Approve(ctx context.Context, id string, actor entities.Actor) (entities.ServiceOrderExtension, error) {
	return u.settle(ctx, id, "approve", func(ext entities.ServiceOrderExtension, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderExtension, entities.ServiceOrder, error) {
		return ext.Approve(order, actor, now)
	})
}

func (u *ExtensionUseCase) Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.ServiceOrderExtension, error) {
	return u.settle(ctx, id, "reject", func(ext entities.ServiceOrderExtension, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderExtension, entities.ServiceOrder, error) {
		return ext.Reject(order, actor, reason, now)
	})
}

func (u *ExtensionUseCase) settle(
	ctx context.Context,
	id string,
	action string,
	apply func(ext entities.ServiceOrderExtension, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderExtension, entities.ServiceOrder, error),
) (entities.ServiceOrderExtension, error) {
	ext, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	order, err := u.orders.GetByID(ctx, ext.ServiceOrderID)
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrderExtension{}, ErrServiceOrderNotFound
	}

	nextExt, nextOrder, err := apply(ext, order, u.now())
	if err != nil {
		u.metrics.Transition("extension", action, resultLabel(err))
		logger.Log.WithFields(logrus.Fields{"extension_id": ext.ID, "status": ext.Status}).
			WithError(err).Info("[extension][usecase] " + action + " refused")
		return entities.ServiceOrderExtension{}, err
	}

	savedOrder, savedExt, err := u.committer.CommitExtension(ctx, nextOrder, nextExt)
	u.metrics.Transition("extension", action, resultLabel(err))
	if err != nil {
		return entities.ServiceOrderExtension{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"extension_id":     savedExt.ID,
		"order_id":         savedOrder.ID,
		"status":           savedExt.Status,
		"current_man_days": savedOrder.CurrentManDays,
	}).Info("[extension][usecase] " + action)

	notifyCatalog(ctx, u.catalog, u.metrics, CatalogResourceExtensions, savedExt.ID, string(savedExt.Status))
	return savedExt, nil
}
