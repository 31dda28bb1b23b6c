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
	ErrInvalidServiceOfferID = entities.NewValidationError("invalid service offer id")
	ErrServiceOfferNotFound  = entities.NewNotFoundError("service offer not found")
	ErrRequestHasNoProcess   = entities.NewInvalidStateError("service request has no running validation process")
)

// OfferTask is a review task enriched with the offer it refers to.
type OfferTask struct {
	Task  entities.WorkflowTask
	Offer entities.ServiceOffer
}

// SubmittedOffer reports where the offer was delivered on the engine.
type SubmittedOffer struct {
	Offer             entities.ServiceOffer
	ProcessInstanceID string
	ExecutionID       string
}

// OfferDecisionResult is the outcome of a review task. ServiceOrder is set
// when the offer was accepted.
type OfferDecisionResult struct {
	Offer        entities.ServiceOffer
	ServiceOrder *entities.ServiceOrder
}

type IServiceOfferUseCase interface {
	Submit(ctx context.Context, in entities.NewServiceOfferInput) (SubmittedOffer, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOffer, error)
	List(ctx context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error)
	ListTasks(ctx context.Context, group string) ([]OfferTask, error)
	CompleteTask(ctx context.Context, taskID, decision string) (OfferDecisionResult, error)
}

type ServiceOfferUseCase struct {
	offers   interfaces.IServiceOfferRepository
	requests interfaces.IServiceRequestRepository
	orders   interfaces.IServiceOrderRepository
	engine   interfaces.IWorkflowEngine
	catalog  interfaces.ICatalogNotifier
	metrics  interfaces.IMetricsRecorder
	now      func() time.Time
}

var _ IServiceOfferUseCase = (*ServiceOfferUseCase)(nil)

func NewServiceOfferUseCase(
	offers interfaces.IServiceOfferRepository,
	requests interfaces.IServiceRequestRepository,
	orders interfaces.IServiceOrderRepository,
	engine interfaces.IWorkflowEngine,
	catalog interfaces.ICatalogNotifier,
	metrics interfaces.IMetricsRecorder,
) *ServiceOfferUseCase {
	return &ServiceOfferUseCase{
		offers:   offers,
		requests: requests,
		orders:   orders,
		engine:   engine,
		catalog:  catalog,
		metrics:  recorderOrNoop(metrics),
		now:      utcNow,
	}
}

// Submit stores the offer and signals the request's process, which waits for
// offers at a message catch event.
func (u *ServiceOfferUseCase) Submit(ctx context.Context, in entities.NewServiceOfferInput) (SubmittedOffer, error) {
	offer, err := entities.NewServiceOffer(uuid.NewString(), in, u.now())
	if err != nil {
		u.metrics.Transition("service_offer", "submit", resultLabel(err))
		return SubmittedOffer{}, err
	}
	req, err := u.requests.GetByID(ctx, offer.ServiceRequestID)
	if err != nil {
		return SubmittedOffer{}, err
	}
	if req.ID == "" {
		return SubmittedOffer{}, ErrServiceRequestNotFound
	}
	if req.ProcessID == "" {
		return SubmittedOffer{}, ErrRequestHasNoProcess
	}

	created, err := u.offers.Create(ctx, offer)
	if err != nil {
		u.metrics.Transition("service_offer", "submit", resultLabel(err))
		return SubmittedOffer{}, err
	}

	executionID, err := u.engine.TriggerMessage(ctx, req.ProcessID, ActivityWaitForOffer, MessageOfferReceived, map[string]any{VarOfferID: created.ID})
	if err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "trigger_message")
		u.metrics.Transition("service_offer", "submit", resultLabel(remoteError("workflow engine", err)))
		logger.Log.WithFields(logrus.Fields{"offer_id": created.ID, "process_id": req.ProcessID}).
			WithError(err).Error("[offer][usecase] failed signalling workflow engine")
		return SubmittedOffer{}, remoteError("workflow engine", err)
	}

	u.metrics.Transition("service_offer", "submit", "ok")
	logger.Log.WithFields(logrus.Fields{
		"offer_id":     created.ID,
		"request_id":   req.ID,
		"execution_id": executionID,
	}).Info("[offer][usecase] offer submitted")
	return SubmittedOffer{Offer: created, ProcessInstanceID: req.ProcessID, ExecutionID: executionID}, nil
}

func (u *ServiceOfferUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOffer, error) {
	id = normalizeID(id)
	if id == "" {
		return entities.ServiceOffer{}, ErrInvalidServiceOfferID
	}
	o, err := u.offers.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOffer{}, err
	}
	if o.ID == "" {
		return entities.ServiceOffer{}, ErrServiceOfferNotFound
	}
	return o, nil
}

func (u *ServiceOfferUseCase) List(ctx context.Context, filter entities.ServiceOfferFilter) ([]entities.ServiceOffer, error) {
	return u.offers.List(ctx, filter)
}

func (u *ServiceOfferUseCase) ListTasks(ctx context.Context, group string) ([]OfferTask, error) {
	group = normalizeID(group)
	if group == "" {
		return []OfferTask{}, nil
	}
	tasks, err := u.engine.ListTasksForGroup(ctx, group)
	if err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "list_tasks")
		return nil, remoteError("workflow engine", err)
	}

	out := make([]OfferTask, 0, len(tasks))
	for _, t := range tasks {
		offerID := t.StringVariable(VarOfferID)
		if offerID == "" {
			continue
		}
		o, err := u.offers.GetByID(ctx, offerID)
		if err != nil {
			return nil, err
		}
		if o.ID == "" {
			continue
		}
		out = append(out, OfferTask{Task: t, Offer: o})
	}
	return out, nil
}

// CompleteTask records the reviewer decision on the offer, creates the
// service order when accepted, notifies the catalog and finally completes the
// engine task. Repeating a decision that is already recorded only retries the
// remaining steps.
func (u *ServiceOfferUseCase) CompleteTask(ctx context.Context, taskID, decision string) (OfferDecisionResult, error) {
	taskID = normalizeID(taskID)
	if taskID == "" {
		return OfferDecisionResult{}, ErrInvalidTaskID
	}
	decision = normalizeID(decision)
	if decision == "" {
		return OfferDecisionResult{}, ErrDecisionRequired
	}

	vars, err := u.engine.GetTaskVariables(ctx, taskID)
	if err != nil {
		logger.Log.WithField("task_id", taskID).WithError(err).Warn("[offer][usecase] task variables not available")
		return OfferDecisionResult{}, taskNotFound(err)
	}
	offerID := stringVariable(vars, VarOfferID)
	if offerID == "" {
		return OfferDecisionResult{}, ErrWorkflowTaskNotFound
	}
	offer, err := u.GetByID(ctx, offerID)
	if err != nil {
		return OfferDecisionResult{}, err
	}

	now := u.now()
	target := entities.OfferStatusForDecision(decision)
	decided := offer
	if offer.Status != target {
		if decided, err = offer.Decide(decision, now); err != nil {
			u.metrics.Transition("service_offer", "decide", resultLabel(err))
			return OfferDecisionResult{}, err
		}
	}

	// The order terms are validated before the decision is stored.
	var order entities.ServiceOrder
	orderStored := false
	if decided.Status == entities.ServiceOfferStatusAccepted {
		if order, orderStored, err = u.planServiceOrder(ctx, decided, now); err != nil {
			u.metrics.Transition("service_offer", "decide", resultLabel(err))
			return OfferDecisionResult{}, err
		}
	}

	if offer.Status != target {
		if offer, err = u.offers.Update(ctx, decided); err != nil {
			u.metrics.Transition("service_offer", "decide", resultLabel(err))
			return OfferDecisionResult{}, err
		}
		notifyCatalog(ctx, u.catalog, u.metrics, CatalogResourceServiceOffers, offer.ExternalID, string(offer.Status))
	}

	result := OfferDecisionResult{Offer: offer}
	if offer.Status == entities.ServiceOfferStatusAccepted {
		if !orderStored {
			if order, err = u.createServiceOrder(ctx, order); err != nil {
				u.metrics.Transition("service_offer", "decide", resultLabel(err))
				return OfferDecisionResult{}, err
			}
		}
		result.ServiceOrder = &order
	}

	if err := u.engine.CompleteTask(ctx, taskID, map[string]any{VarValidationResult: decision}); err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "complete_task")
		u.metrics.Transition("service_offer", "decide", resultLabel(entities.ErrRemoteCollaborator))
		logger.Log.WithFields(logrus.Fields{"task_id": taskID, "offer_id": offer.ID}).
			WithError(err).Error("[offer][usecase] failed completing workflow task")
		return OfferDecisionResult{}, remoteError("workflow engine", err)
	}

	u.metrics.Transition("service_offer", "decide", "ok")
	logger.Log.WithFields(logrus.Fields{
		"task_id":  taskID,
		"offer_id": offer.ID,
		"status":   offer.Status,
	}).Info("[offer][usecase] review task completed")
	return result, nil
}

// planServiceOrder returns the order already created for the offer, or a
// validated order that is not stored yet.
func (u *ServiceOfferUseCase) planServiceOrder(ctx context.Context, offer entities.ServiceOffer, now time.Time) (entities.ServiceOrder, bool, error) {
	existing, err := u.orders.List(ctx, entities.ServiceOrderFilter{WinningOfferID: offer.ID})
	if err != nil {
		return entities.ServiceOrder{}, false, err
	}
	if len(existing) > 0 {
		return existing[0], true, nil
	}

	req, err := u.requests.GetByID(ctx, offer.ServiceRequestID)
	if err != nil {
		return entities.ServiceOrder{}, false, err
	}
	if req.ID == "" {
		return entities.ServiceOrder{}, false, ErrServiceRequestNotFound
	}
	order, err := entities.NewServiceOrder(uuid.NewString(), offer.ToServiceOrderInput(req), now)
	if err != nil {
		return entities.ServiceOrder{}, false, err
	}
	return order, false, nil
}

func (u *ServiceOfferUseCase) createServiceOrder(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	u.metrics.Transition("service_order", "create", "ok")
	logger.Log.WithFields(logrus.Fields{
		"order_id":   created.ID,
		"offer_id":   created.WinningOfferID,
		"request_id": created.ServiceRequestID,
	}).Info("[offer][usecase] service order created from accepted offer")
	return created, nil
}
