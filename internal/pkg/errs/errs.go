package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
// Each typed error below unwraps to exactly one of these.
var (
	ErrObjectNotFound   = errors.New("object not found")
	ErrValueIsInvalid   = errors.New("value is invalid")
	ErrValueIsRequired  = errors.New("value is required")
	ErrInvalidRole      = errors.New("role is invalid")
	ErrActionNotAllowed = errors.New("action is not allowed")
)

// ObjectNotFoundError indicates that an object with the given identifier
// does not exist. ParamName names the identifier that failed to resolve
// (e.g. "deliveryId"), ID carries the offending value.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value does not satisfy
// the constraints of the parameter it was supplied for.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing or blank.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidRoleError indicates that the target user of an operation does not
// carry the role the operation requires (e.g. assigning a delivery to a
// user who is not a driver).
type InvalidRoleError struct {
	ParamName string
	Role      string
	Cause     error
}

// NewInvalidRoleError creates an InvalidRoleError without an underlying cause.
func NewInvalidRoleError(paramName string, role string) *InvalidRoleError {
	return &InvalidRoleError{
		ParamName: paramName,
		Role:      role,
	}
}

// NewInvalidRoleErrorWithCause creates an InvalidRoleError wrapping an underlying cause.
func NewInvalidRoleErrorWithCause(paramName string, role string, cause error) *InvalidRoleError {
	return &InvalidRoleError{
		ParamName: paramName,
		Role:      role,
		Cause:     cause,
	}
}

func (e *InvalidRoleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s (cause: %s)", ErrInvalidRole, e.ParamName, e.Role, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s", ErrInvalidRole, e.ParamName, e.Role)
}

func (e *InvalidRoleError) Unwrap() error {
	return ErrInvalidRole
}

// ActionNotAllowedError indicates that the acting user's role forbids the
// requested action (e.g. a non-admin assigning a driver).
type ActionNotAllowedError struct {
	Action string
	Role   string
	Cause  error
}

// NewActionNotAllowedError creates an ActionNotAllowedError without an underlying cause.
func NewActionNotAllowedError(action string, role string) *ActionNotAllowedError {
	return &ActionNotAllowedError{
		Action: action,
		Role:   role,
	}
}

// NewActionNotAllowedErrorWithCause creates an ActionNotAllowedError wrapping an underlying cause.
func NewActionNotAllowedErrorWithCause(action string, role string, cause error) *ActionNotAllowedError {
	return &ActionNotAllowedError{
		Action: action,
		Role:   role,
		Cause:  cause,
	}
}

func (e *ActionNotAllowedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s for role %s (cause: %s)", ErrActionNotAllowed, e.Action, e.Role, e.Cause)
	}
	return fmt.Sprintf("%s: %s for role %s", ErrActionNotAllowed, e.Action, e.Role)
}

func (e *ActionNotAllowedError) Unwrap() error {
	return ErrActionNotAllowed
}
