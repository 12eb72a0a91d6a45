package curve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the different error kinds. Use errors.Is to test an
// error returned from this module against them.
var (
	ErrInvalidParameter   = errors.New("invalid parameter")
	ErrInvalidRange       = errors.New("invalid range")
	ErrNotFound           = errors.New("curve not found")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrReadWrite          = errors.New("read/write error")
)

// ErrInvalidDashId is returned by PatternFor for unregistered dash ids.
// It is an ErrInvalidParameter.
var ErrInvalidDashId = &Error{Kind: ErrInvalidParameter, Field: "dash", Msg: "unregistered dash id"}

// Error describes a rejected operation. Kind is one of the sentinel errors
// above; Op and Field name the operation and the offending field.
type Error struct {
	Kind  error
	Op    string
	Field string
	Msg   string
}

func (e *Error) Error() string {
	s := e.Kind.Error()
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Field != "" {
		s += " " + e.Field
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

// Unwrap makes errors.Is(err, ErrInvalidParameter) and friends work.
func (e *Error) Unwrap() error { return e.Kind }

// Is matches another *Error with the same kind, field and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Field == e.Field && t.Msg == e.Msg
}

func paramError(op, field, format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidParameter, Op: op, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func rangeError(op, field string, min, max float64) error {
	return &Error{Kind: ErrInvalidRange, Op: op, Field: field,
		Msg: fmt.Sprintf("min %g must be smaller than max %g", min, max)}
}

func invariantError(op, format string, args ...interface{}) error {
	return &Error{Kind: ErrInvariantViolation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a stale identity.
func NotFoundError(op string, id ID) error {
	return &Error{Kind: ErrNotFound, Op: op, Msg: id.String()}
}

// ReadWriteError wraps an I/O failure while (de)serializing a record.
func ReadWriteError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrReadWrite, op, err)
}
