package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Handlers map these to HTTP statuses.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")

	ErrUsernameTaken     = errors.New("username is already taken")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrCategoryNameTaken = errors.New("category name is already taken")
	ErrTagNameTaken      = errors.New("tag name is already taken")

	// ErrInvalidCredentials masks unknown-user, inactive-user and
	// wrong-password failures behind one message.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// OwnershipError reports that a caller tried to act on a resource they do
// not own.
type OwnershipError struct {
	Caller     string
	ResourceID uint
	Resource   string
	Action     string
}

func (e *OwnershipError) Error() string {
	return fmt.Sprintf("user %s cannot %s %s %d: not the owner", e.Caller, e.Action, e.Resource, e.ResourceID)
}

func NewOwnershipError(caller string, resourceID uint, resource, action string) *OwnershipError {
	return &OwnershipError{
		Caller:     caller,
		ResourceID: resourceID,
		Resource:   resource,
		Action:     action,
	}
}

func IsOwnershipError(err error) bool {
	var ownershipErr *OwnershipError
	return errors.As(err, &ownershipErr)
}
