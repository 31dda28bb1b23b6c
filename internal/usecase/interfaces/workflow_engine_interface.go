package interfaces

import (
	"context"

	"staffing_service/internal/domain/entities"
)

// IWorkflowEngine abstracts the external BPM engine that drives approval
// tasks for service requests and offers.
type IWorkflowEngine interface {
	StartProcess(ctx context.Context, processKey string, variables map[string]any) (processInstanceID string, err error)
	ListTasksForGroup(ctx context.Context, group string) ([]entities.WorkflowTask, error)
	GetTaskVariables(ctx context.Context, taskID string) (map[string]any, error)
	CompleteTask(ctx context.Context, taskID string, variables map[string]any) error
	// TriggerMessage delivers a message event to the execution of the process
	// instance currently waiting at activityID.
	TriggerMessage(ctx context.Context, processInstanceID, activityID, messageName string, variables map[string]any) (executionID string, err error)
}

// ICatalogNotifier pushes changes to the external provider catalog.
// Callers treat every method as best-effort.
type ICatalogNotifier interface {
	NotifyStatusChange(ctx context.Context, resource, externalID, status string) error
	PublishServiceRequest(ctx context.Context, r entities.ServiceRequest) error
}

// IMetricsRecorder counts workflow outcomes and remote failures.
type IMetricsRecorder interface {
	Transition(entity, action, result string)
	RemoteFailure(collaborator, operation string)
}
