package domain

import "fmt"

// MissingFieldError reports a category whose required field was left empty.
// The message format is part of the contract with callers that surface it.
type MissingFieldError struct {
	Category CategoryKind
	Field    string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s email missing required field: %s", e.Category, e.Field)
}

type UnknownCategoryError struct {
	Kind string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown email category: %q", e.Kind)
}

// NotRoutedError means the broker accepted the publish but no queue was bound
// to the routing key. The message is lost; provisioning is the fix.
type NotRoutedError struct {
	Queue string
}

func (e *NotRoutedError) Error() string {
	return fmt.Sprintf("message not routed: no queue bound for %q", e.Queue)
}

// RemoteError carries a non-200 broker response.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("broker returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError means no usable response came back at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("broker unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
