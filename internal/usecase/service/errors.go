package service

import "fmt"

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func WrapError(domainError *DomainError, err error) error {
	return &DomainError{
		Code:    domainError.Code,
		Message: domainError.Message,
		Err:     err,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	// NOT_FOUND
	ErrArticleNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "article not found",
	}
	ErrRequestNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "review request not found",
	}
	ErrNotificationNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "notification not found",
	}

	// INVALID_TRANSITION
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "action is not allowed from the current article status",
	}

	// NOT_ASSIGNED
	ErrNotAssigned = &DomainError{
		Code:    "NOT_ASSIGNED",
		Message: "reviewer is not assigned to this article",
	}

	// ASSIGNMENT_EXISTS
	ErrDuplicateAssignment = &DomainError{
		Code:    "ASSIGNMENT_EXISTS",
		Message: "reviewer already has an active assignment on this article",
	}

	// REQUEST_PENDING
	ErrDuplicatePendingRequest = &DomainError{
		Code:    "REQUEST_PENDING",
		Message: "a pending review request already exists for this reviewer",
	}

	// ALREADY_PROCESSED
	ErrAlreadyProcessed = &DomainError{
		Code:    "ALREADY_PROCESSED",
		Message: "review request has already been answered",
	}

	// INVALID_INPUT
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}

	// UNAUTHORIZED
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "missing or invalid credentials",
	}
)
