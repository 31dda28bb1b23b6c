package usecase

import (
	"staffing_service/internal/domain/entities"
)

// Names shared with the process definitions deployed on the workflow engine.
const (
	ProcessKeyServiceRequest = "serviceRequestProcess"

	VarRequestID        = "request_id"
	VarOfferID          = "offerId"
	VarValidationResult = "validationResult"

	ActivityWaitForOffer = "waitForApiTrigger"
	MessageOfferReceived = "ApiTriggerMessage"

	// DecisionApproved publishes the validated request to the catalog.
	DecisionApproved = "approved"
)

var (
	ErrInvalidTaskID        = entities.NewValidationError("invalid task id")
	ErrDecisionRequired     = entities.NewValidationError("decision is required")
	ErrWorkflowTaskNotFound = entities.NewNotFoundError("workflow task not found")
)

// remoteError keeps domain errors coming from a collaborator as they are and
// classifies anything else as a remote failure.
func remoteError(collaborator string, err error) error {
	if err == nil {
		return nil
	}
	if entities.KindOf(err) != "" {
		return err
	}
	return entities.NewRemoteCollaboratorError(collaborator, err)
}

func taskNotFound(err error) error {
	return &entities.DomainError{Kind: entities.KindNotFound, Message: "workflow task not found", Err: err}
}

func stringVariable(vars map[string]any, name string) string {
	return entities.WorkflowTask{Variables: vars}.StringVariable(name)
}
