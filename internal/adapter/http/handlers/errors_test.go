package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"staffing_service/internal/domain/entities"
	"staffing_service/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", entities.NewValidationError("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid state", entities.NewInvalidStateError("nope"), http.StatusBadRequest, "INVALID_STATE"},
		{"concurrent", fmt.Errorf("commit: %w", entities.ErrConcurrentModification), http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{"authorization", entities.NewAuthorizationError("role"), http.StatusForbidden, "FORBIDDEN"},
		{"not found", usecase.ErrServiceOrderNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"remote", entities.NewRemoteCollaboratorError("workflow engine", errors.New("timeout")), http.StatusBadGateway, "REMOTE_COLLABORATOR_ERROR"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapDomainError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}

	if msg := mapDomainError(errors.New("db down")).ToHTTPError().Message; msg != "An internal error occurred" {
		t.Fatalf("internal details leaked: %q", msg)
	}
}
