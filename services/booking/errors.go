package booking

import "fmt"

// ValidationError reports a missing or malformed request field. It is never
// persisted and always maps to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup of something that does not exist, as opposed
// to a malformed request.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// CapacityError means the requested slot (or an hour inside the service
// window) is full. Not transient; retrying the same slot is pointless.
type CapacityError struct {
	Date string
	Time string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("slot %s %s is fully booked", e.Date, e.Time)
}

// TransitionError reports an illegal appointment status change.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

// StoreError wraps a persistence failure. Surfaced as a generic service
// error, never swallowed into a success response.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
