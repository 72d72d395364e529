package di

import (
	"errors"
	"strconv"
	"sync"
)

// Code classifies every outcome of a container operation.
//
// The set is closed on purpose: callers that cannot carry a rich error
// value (for example across a process or ABI boundary) can translate any
// error back into one of these codes via CodeOf.
type Code uint8

const (
	// CodeOK indicates the operation succeeded.
	CodeOK Code = iota

	// CodeNotFound indicates no container in the scope chain holds the key.
	CodeNotFound

	// CodeInvalidArgument indicates a precondition violation: an empty key,
	// a nil target, or an operation on a destroyed container.
	CodeInvalidArgument

	// CodeAlreadyRegistered indicates the key already exists in the local store.
	CodeAlreadyRegistered

	// CodeInternal indicates an unexpected failure inside the container.
	CodeInternal

	// CodeSerialization indicates a payload could not be encoded or decoded.
	CodeSerialization
)

// String returns a short stable name for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNotFound:
		return "not found"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeAlreadyRegistered:
		return "already registered"
	case CodeInternal:
		return "internal error"
	case CodeSerialization:
		return "serialization error"
	default:
		return "unknown code " + strconv.Itoa(int(c))
	}
}

// NotFoundError is returned when a key is absent from the entire scope chain.
//
// NotFound is an expected, frequent outcome of normal use (optional
// dependency patterns), so constructing it avoids fmt.Errorf to keep the
// failure path inexpensive.
type NotFoundError struct{ Key string }

// Error implements the error interface.
func (e NotFoundError) Error() string {
	// Example: di: service "db" not found
	return "di: service " + strconv.Quote(e.Key) + " not found"
}

// AlreadyRegisteredError is returned when a key already exists in the
// container's local store. Registration is strictly additive; the stored
// value is never overwritten.
type AlreadyRegisteredError struct{ Key string }

// Error implements the error interface.
func (e AlreadyRegisteredError) Error() string {
	// Example: di: service "db" already registered
	return "di: service " + strconv.Quote(e.Key) + " already registered"
}

// InvalidArgumentError is returned on precondition violations: empty keys,
// nil decode targets, or any operation on a destroyed container.
type InvalidArgumentError struct{ Reason string }

// Error implements the error interface.
func (e InvalidArgumentError) Error() string {
	return "di: invalid argument: " + e.Reason
}

// InternalError indicates an unexpected failure inside the container.
type InternalError struct{ Reason string }

// Error implements the error interface.
func (e InternalError) Error() string {
	return "di: internal error: " + e.Reason
}

// SerializationError is returned when a payload cannot be encoded during
// registration or decoded during resolution. It is distinct from
// NotFoundError: callers must not confuse "absent" with "corrupt".
type SerializationError struct {
	// Key is the service key involved, if known.
	Key string

	// Cause is the underlying codec error.
	Cause error
}

// Error implements the error interface.
func (e SerializationError) Error() string {
	msg := "di: serialization failed"
	if e.Key != "" {
		msg += " for service " + strconv.Quote(e.Key)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying codec error.
func (e SerializationError) Unwrap() error { return e.Cause }

// errDestroyed is the shared reason for operations on destroyed containers.
// A destroyed container is terminal and inert, never a trap.
var errDestroyed = InvalidArgumentError{Reason: "container is destroyed"}

// CodeOf maps an error back onto the closed Code set.
//
// nil maps to CodeOK; errors that did not originate in this package map to
// CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var (
		notFound NotFoundError
		dup      AlreadyRegisteredError
		invalid  InvalidArgumentError
		internal InternalError
		serial   SerializationError
	)
	switch {
	case errors.As(err, &notFound):
		return CodeNotFound
	case errors.As(err, &dup):
		return CodeAlreadyRegistered
	case errors.As(err, &invalid):
		return CodeInvalidArgument
	case errors.As(err, &serial):
		return CodeSerialization
	case errors.As(err, &internal):
		return CodeInternal
	default:
		return CodeInternal
	}
}

// DetailOf returns the human-readable detail for an error, or "" for nil.
func DetailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// LastError is a caller-owned recorder for the most recent failure.
//
// Some calling conventions cannot carry a rich error value inline with a
// return code. Rather than process-wide mutable state, each boundary caller
// owns its own LastError and records/clears around its calls, so concurrent
// callers never clobber each other's detail.
//
// Expected usage:
//
//	var tracker di.LastError
//	if err := tracker.Record(c.Register(key, data)); err != nil {
//	    code, detail := tracker.Last()
//	    ...
//	}
type LastError struct {
	mu   sync.Mutex
	last error
}

// Record stores err if it is non-nil and returns it unchanged.
// A nil err leaves the previously recorded error in place.
func (t *LastError) Record(err error) error {
	if err != nil {
		t.mu.Lock()
		t.last = err
		t.mu.Unlock()
	}
	return err
}

// Last returns the code and detail of the most recent recorded error.
// With nothing recorded it reports (CodeOK, "").
func (t *LastError) Last() (Code, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return CodeOf(t.last), DetailOf(t.last)
}

// Clear resets the recorder.
func (t *LastError) Clear() {
	t.mu.Lock()
	t.last = nil
	t.mu.Unlock()
}
