package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures so the outer layers can map them
// without knowing every individual error.
type ErrorKind string

const (
	KindValidation         ErrorKind = "VALIDATION"
	KindInvalidState       ErrorKind = "INVALID_STATE"
	KindAuthorization      ErrorKind = "AUTHORIZATION"
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindRemoteCollaborator ErrorKind = "REMOTE_COLLABORATOR"
)

// DomainError carries a kind plus a human readable message.
//
// errors.Is(err, ErrValidation) matches any DomainError of the same kind,
// while concrete sentinels (e.g. ErrConcurrentModification) still match by
// identity.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return e.Message
	case e.Message == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrValidation         = &DomainError{Kind: KindValidation}
	ErrInvalidState       = &DomainError{Kind: KindInvalidState}
	ErrAuthorization      = &DomainError{Kind: KindAuthorization}
	ErrNotFound           = &DomainError{Kind: KindNotFound}
	ErrRemoteCollaborator = &DomainError{Kind: KindRemoteCollaborator}

	// ErrConcurrentModification is returned by stores when a conditional
	// write loses against another writer.
	ErrConcurrentModification = &DomainError{Kind: KindInvalidState, Message: "entity was modified concurrently"}
)

func NewValidationError(format string, args ...any) error {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidStateError(format string, args ...any) error {
	return &DomainError{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func NewAuthorizationError(format string, args ...any) error {
	return &DomainError{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...any) error {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewRemoteCollaboratorError wraps a failure from the workflow engine or the
// provider catalog.
func NewRemoteCollaboratorError(collaborator string, err error) error {
	return &DomainError{Kind: KindRemoteCollaborator, Message: collaborator + " call failed", Err: err}
}

// KindOf returns the kind of the first DomainError in err's chain, or an
// empty kind.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
