package store

import "fmt"

// ValidationError signals a rejected input (empty required text, missing
// profile). Handlers map it to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AuthorizationError signals an actor attempting an operation their role
// does not permit. Handlers map it to 403.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return e.Reason
}

// NotFoundError signals an operation addressing an id that does not exist.
// Handlers map it to 404.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
