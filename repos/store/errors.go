package store

import (
	"errors"

	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies every error leaving the store boundary. Callers switch on
// the kind instead of inspecting transport errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnavailable
	KindPermissionDenied
	KindNotFound
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindPermissionDenied:
		return "permission-denied"
	case KindNotFound:
		return "not-found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by the store adapter.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	return e.Op + ": " + e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// wrapErr converts a Firestore client error into a kinded store error.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindUnknown
	if s, ok := status.FromError(err); ok {
		switch s.Code() {
		case codes.NotFound:
			kind = KindNotFound
		case codes.PermissionDenied, codes.Unauthenticated:
			kind = KindPermissionDenied
		case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
			kind = KindUnavailable
		case codes.InvalidArgument:
			kind = KindValidation
		}
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// decodeErr marks a document that does not match its collection's shape. We
// control both what is written and the struct it decodes into, so this is a
// consistency error and the read fails closed.
func decodeErr(op string, err error) error {
	return &Error{
		Kind: KindValidation,
		Op:   op,
		Err:  xerrors.Errorf("consistency error. Converting document to internal struct failed: %w", err),
	}
}

// ValidationError builds a validation-kinded error with a plain message.
func ValidationError(op, msg string) error {
	return &Error{Kind: KindValidation, Op: op, Err: errors.New(msg)}
}

// KindOf extracts the kind from any error in the chain.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a not-found store error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
