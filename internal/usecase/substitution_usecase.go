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
	ErrInvalidSubstitutionID      = entities.NewValidationError("invalid substitution id")
	ErrSubstitutionNotFound       = entities.NewNotFoundError("substitution not found")
	ErrSubstitutionAlreadyPending = entities.NewInvalidStateError("a substitution is already pending for this service order")
)

type ISubstitutionUseCase interface {
	Create(ctx context.Context, orderID string, in entities.NewSubstitutionInput) (entities.ServiceOrderSubstitution, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrderSubstitution, error)
	Approve(ctx context.Context, id string, actor entities.Actor) (entities.ServiceOrderSubstitution, error)
	Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.ServiceOrderSubstitution, error)
}

type SubstitutionUseCase struct {
	orders        interfaces.IServiceOrderRepository
	substitutions interfaces.ISubstitutionRepository
	committer     interfaces.IOrderChangeCommitter
	catalog       interfaces.ICatalogNotifier
	metrics       interfaces.IMetricsRecorder
	now           func() time.Time
}

var _ ISubstitutionUseCase = (*SubstitutionUseCase)(nil)

func NewSubstitutionUseCase(
	orders interfaces.IServiceOrderRepository,
	substitutions interfaces.ISubstitutionRepository,
	committer interfaces.IOrderChangeCommitter,
	catalog interfaces.ICatalogNotifier,
	metrics interfaces.IMetricsRecorder,
) *SubstitutionUseCase {
	return &SubstitutionUseCase{
		orders:        orders,
		substitutions: substitutions,
		committer:     committer,
		catalog:       catalog,
		metrics:       recorderOrNoop(metrics),
		now:           utcNow,
	}
}

func (u *SubstitutionUseCase) Create(ctx context.Context, orderID string, in entities.NewSubstitutionInput) (entities.ServiceOrderSubstitution, error) {
	orderID = normalizeID(orderID)
	if orderID == "" {
		return entities.ServiceOrderSubstitution{}, ErrInvalidServiceOrderID
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrderSubstitution{}, ErrServiceOrderNotFound
	}

	existing, err := u.substitutions.ListByServiceOrderID(ctx, order.ID)
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	for _, s := range existing {
		if s.Status.IsPending() {
			u.metrics.Transition("substitution", "create", resultLabel(ErrSubstitutionAlreadyPending))
			return entities.ServiceOrderSubstitution{}, ErrSubstitutionAlreadyPending
		}
	}

	sub, pendingOrder, err := entities.NewServiceOrderSubstitution(uuid.NewString(), order, in, u.now())
	if err != nil {
		u.metrics.Transition("substitution", "create", resultLabel(err))
		return entities.ServiceOrderSubstitution{}, err
	}

	_, saved, err := u.committer.CommitSubstitution(ctx, pendingOrder, sub)
	u.metrics.Transition("substitution", "create", resultLabel(err))
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"order_id":        order.ID,
		"substitution_id": saved.ID,
		"initiated_by":    saved.InitiatedBy,
		"status":          saved.Status,
	}).Info("[substitution][usecase] substitution requested")
	return saved, nil
}

func (u *SubstitutionUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrderSubstitution, error) {
	id = normalizeID(id)
	if id == "" {
		return entities.ServiceOrderSubstitution{}, ErrInvalidSubstitutionID
	}
	sub, err := u.substitutions.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	if sub.ID == "" {
		return entities.ServiceOrderSubstitution{}, ErrSubstitutionNotFound
	}
	return sub, nil
}

func (u *SubstitutionUseCase) Approve(ctx context.Context, id string, actor entities.Actor) (entities.ServiceOrderSubstitution, error) {
	return u.settle(ctx, id, "approve", func(sub entities.ServiceOrderSubstitution, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderSubstitution, entities.ServiceOrder, error) {
		return sub.Approve(order, actor, now)
	})
}

func (u *SubstitutionUseCase) Reject(ctx context.Context, id string, actor entities.Actor, reason string) (entities.ServiceOrderSubstitution, error) {
	return u.settle(ctx, id, "reject", func(sub entities.ServiceOrderSubstitution, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderSubstitution, entities.ServiceOrder, error) {
		return sub.Reject(order, actor, reason, now)
	})
}

func (u *SubstitutionUseCase) settle(
	ctx context.Context,
	id string,
	action string,
	apply func(sub entities.ServiceOrderSubstitution, order entities.ServiceOrder, now time.Time) (entities.ServiceOrderSubstitution, entities.ServiceOrder, error),
) (entities.ServiceOrderSubstitution, error) {
	sub, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	order, err := u.orders.GetByID(ctx, sub.ServiceOrderID)
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrderSubstitution{}, ErrServiceOrderNotFound
	}

	nextSub, nextOrder, err := apply(sub, order, u.now())
	if err != nil {
		u.metrics.Transition("substitution", action, resultLabel(err))
		logger.Log.WithFields(logrus.Fields{"substitution_id": sub.ID, "status": sub.Status}).
			WithError(err).Info("[substitution][usecase] " + action + " refused")
		return entities.ServiceOrderSubstitution{}, err
	}

	savedOrder, savedSub, err := u.committer.CommitSubstitution(ctx, nextOrder, nextSub)
	u.metrics.Transition("substitution", action, resultLabel(err))
	if err != nil {
		return entities.ServiceOrderSubstitution{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"substitution_id":    savedSub.ID,
		"order_id":           savedOrder.ID,
		"status":             savedSub.Status,
		"current_specialist": savedOrder.CurrentSpecialistID,
	}).Info("[substitution][usecase] " + action)

	notifyCatalog(ctx, u.catalog, u.metrics, CatalogResourceSubstitutions, savedSub.ID, string(savedSub.Status))
	return savedSub, nil
}
