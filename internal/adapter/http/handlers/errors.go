package handlers

import (
	"errors"
	"net/http"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/infrastructure/logger"
	"staffing_service/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidQuery   = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
)

// mapDomainError translates use case errors by kind. Concurrent writes are
// checked first since they share the INVALID_STATE kind.
func mapDomainError(err error) *pkg.AppError {
	if errors.Is(err, entities.ErrConcurrentModification) {
		return pkg.NewDomainError("CONCURRENT_MODIFICATION", "The resource was modified by another request", err, http.StatusConflict)
	}

	var de *entities.DomainError
	if !errors.As(err, &de) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
	message := de.Message
	if message == "" {
		message = string(de.Kind)
	}

	switch de.Kind {
	case entities.KindValidation:
		return pkg.NewDomainError("VALIDATION_ERROR", message, err, http.StatusBadRequest)
	case entities.KindInvalidState:
		return pkg.NewDomainError("INVALID_STATE", message, err, http.StatusBadRequest)
	case entities.KindAuthorization:
		return pkg.NewDomainError("FORBIDDEN", message, err, http.StatusForbidden)
	case entities.KindNotFound:
		return pkg.NewDomainError("NOT_FOUND", message, err, http.StatusNotFound)
	case entities.KindRemoteCollaborator:
		return pkg.NewDomainError("REMOTE_COLLABORATOR_ERROR", message, err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapDomainError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Log.WithError(err).WithField("path", c.FullPath()).Error("[http][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
