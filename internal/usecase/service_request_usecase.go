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
	ErrInvalidServiceRequestID = entities.NewValidationError("invalid service request id")
	ErrServiceRequestNotFound  = entities.NewNotFoundError("service request not found")
)

// RequestTask is a validation task enriched with the request it refers to.
type RequestTask struct {
	Task    entities.WorkflowTask
	Request entities.ServiceRequest
}

// IServiceRequestUseCase covers request intake and its validation tasks on
// the workflow engine.
type IServiceRequestUseCase interface {
	Create(ctx context.Context, in entities.NewServiceRequestInput) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error)
	ListTasks(ctx context.Context, group string) ([]RequestTask, error)
	CompleteTask(ctx context.Context, taskID, decision string) (entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	requests interfaces.IServiceRequestRepository
	engine   interfaces.IWorkflowEngine
	catalog  interfaces.ICatalogNotifier
	metrics  interfaces.IMetricsRecorder
	now      func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	requests interfaces.IServiceRequestRepository,
	engine interfaces.IWorkflowEngine,
	catalog interfaces.ICatalogNotifier,
	metrics interfaces.IMetricsRecorder,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		requests: requests,
		engine:   engine,
		catalog:  catalog,
		metrics:  recorderOrNoop(metrics),
		now:      utcNow,
	}
}

// Create starts the validation process first so a stored request always
// carries its process id.
func (u *ServiceRequestUseCase) Create(ctx context.Context, in entities.NewServiceRequestInput) (entities.ServiceRequest, error) {
	req, err := entities.NewServiceRequest(uuid.NewString(), in, u.now())
	if err != nil {
		u.metrics.Transition("service_request", "create", resultLabel(err))
		return entities.ServiceRequest{}, err
	}

	processID, err := u.engine.StartProcess(ctx, ProcessKeyServiceRequest, map[string]any{VarRequestID: req.ID})
	if err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "start_process")
		u.metrics.Transition("service_request", "create", resultLabel(entities.ErrRemoteCollaborator))
		logger.Log.WithField("request_id", req.ID).WithError(err).Error("[request][usecase] failed starting validation process")
		return entities.ServiceRequest{}, remoteError("workflow engine", err)
	}
	req.ProcessID = processID

	created, err := u.requests.Create(ctx, req)
	u.metrics.Transition("service_request", "create", resultLabel(err))
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	logger.Log.WithFields(logrus.Fields{
		"request_id": created.ID,
		"process_id": created.ProcessID,
	}).Info("[request][usecase] service request created")
	return created, nil
}

func (u *ServiceRequestUseCase) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = normalizeID(id)
	if id == "" {
		return entities.ServiceRequest{}, ErrInvalidServiceRequestID
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return r, nil
}

func (u *ServiceRequestUseCase) List(ctx context.Context, status entities.ServiceRequestStatus) ([]entities.ServiceRequest, error) {
	if status != "" && !status.IsValid() {
		return nil, entities.NewValidationError("invalid status filter %q", status)
	}
	return u.requests.List(ctx, status)
}

// ListTasks returns the group's tasks that reference a known request. Tasks
// without a request id, or pointing at an unknown request, are skipped.
func (u *ServiceRequestUseCase) ListTasks(ctx context.Context, group string) ([]RequestTask, error) {
	group = normalizeID(group)
	if group == "" {
		return []RequestTask{}, nil
	}
	tasks, err := u.engine.ListTasksForGroup(ctx, group)
	if err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "list_tasks")
		return nil, remoteError("workflow engine", err)
	}

	out := make([]RequestTask, 0, len(tasks))
	for _, t := range tasks {
		requestID := t.StringVariable(VarRequestID)
		if requestID == "" {
			continue
		}
		r, err := u.requests.GetByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if r.ID == "" {
			continue
		}
		out = append(out, RequestTask{Task: t, Request: r})
	}
	return out, nil
}

// CompleteTask settles a validation task. The request is reopened and, when
// approved, published to the catalog before the engine task is completed.
// An engine failure is returned after the local change is committed.
func (u *ServiceRequestUseCase) CompleteTask(ctx context.Context, taskID, decision string) (entities.ServiceRequest, error) {
	taskID = normalizeID(taskID)
	if taskID == "" {
		return entities.ServiceRequest{}, ErrInvalidTaskID
	}
	decision = normalizeID(decision)
	if decision == "" {
		return entities.ServiceRequest{}, ErrDecisionRequired
	}

	vars, err := u.engine.GetTaskVariables(ctx, taskID)
	if err != nil {
		logger.Log.WithField("task_id", taskID).WithError(err).Warn("[request][usecase] task variables not available")
		return entities.ServiceRequest{}, taskNotFound(err)
	}
	requestID := stringVariable(vars, VarRequestID)
	if requestID == "" {
		return entities.ServiceRequest{}, ErrWorkflowTaskNotFound
	}
	req, err := u.GetByID(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	saved, err := u.requests.Update(ctx, req.Reopen(u.now()))
	if err != nil {
		u.metrics.Transition("service_request", "complete_task", resultLabel(err))
		return entities.ServiceRequest{}, err
	}

	if decision == DecisionApproved && u.catalog != nil {
		if err := u.catalog.PublishServiceRequest(ctx, saved); err != nil {
			u.metrics.RemoteFailure(collaboratorCatalog, "publish_request")
			logger.Log.WithField("request_id", saved.ID).WithError(err).Warn("[request][usecase] catalog publish failed")
		}
	}

	if err := u.engine.CompleteTask(ctx, taskID, map[string]any{VarValidationResult: decision}); err != nil {
		u.metrics.RemoteFailure(collaboratorWorkflow, "complete_task")
		u.metrics.Transition("service_request", "complete_task", resultLabel(entities.ErrRemoteCollaborator))
		logger.Log.WithFields(logrus.Fields{"task_id": taskID, "request_id": saved.ID}).
			WithError(err).Error("[request][usecase] failed completing workflow task")
		return entities.ServiceRequest{}, remoteError("workflow engine", err)
	}

	u.metrics.Transition("service_request", "complete_task", "ok")
	logger.Log.WithFields(logrus.Fields{
		"task_id":    taskID,
		"request_id": saved.ID,
		"decision":   decision,
	}).Info("[request][usecase] validation task completed")
	return saved, nil
}
