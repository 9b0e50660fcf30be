// Package errors defines the closed taxonomy of failures surfaced by every
// operation in this module. Every exported function that dials the router,
// reads or writes a socket, or parses a reply returns either nil or an
// *Error, so callers can switch on Kind without needing to unwrap arbitrary
// wrapped errors. The Close methods and nickname.Generate return the
// underlying error unwrapped.
package errors

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
)

// Kind is a closed set of failure categories. See spec.md §7.
type Kind int

const (
	// Unknown covers an unanticipated condition or an unrecognized RESULT= code.
	Unknown Kind = iota
	// TcpConnectionError means the router's SAM control port could not be reached.
	TcpConnectionError
	// TcpStreamError means an established control or data TCP connection broke.
	TcpStreamError
	// UdpReadError means a datagram socket read failed or timed out.
	UdpReadError
	// UdpWriteError means a datagram socket write failed.
	UdpWriteError
	// ParseError means a reply line was not valid SAMv3 syntax.
	ParseError
	// RouterError means a reply parsed but the command/subcommand mismatched
	// the caller's expectation, or the router returned RESULT=I2P_ERROR,
	// CANT_REACH_PEER or TIMEOUT.
	RouterError
	// InvalidValue means RESULT=INVALID_ID/INVALID_KEY/NOVERSION, a required
	// key was missing, or NAMING LOOKUP returned an empty VALUE=.
	InvalidValue
	// Duplicate means RESULT=DUPLICATED_ID or DUPLICATED_DEST.
	Duplicate
	// DoesntExist means RESULT=KEY_NOT_FOUND.
	DoesntExist
	// NotSupported means the requested feature cannot be implemented on the
	// current router or configuration.
	NotSupported
)

func (k Kind) String() string {
	switch k {
	case TcpConnectionError:
		return "TcpConnectionError"
	case TcpStreamError:
		return "TcpStreamError"
	case UdpReadError:
		return "UdpReadError"
	case UdpWriteError:
		return "UdpWriteError"
	case ParseError:
		return "ParseError"
	case RouterError:
		return "RouterError"
	case InvalidValue:
		return "InvalidValue"
	case Duplicate:
		return "Duplicate"
	case DoesntExist:
		return "DoesntExist"
	case NotSupported:
		return "NotSupported"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by those operations. It carries a Kind from the closed taxonomy plus a wrapped cause
// built with oops so the original stack/context survives %+v formatting.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an *Error with the same Kind, so callers can
// write `errors.Is(err, samerrors.New(samerrors.DoesntExist, nil, ""))`-style
// checks, though comparing Kind directly (via errors.As) is preferred.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// New wraps cause (which may be nil) as an *Error of the given Kind.
func New(kind Kind, cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	var wrapped error
	if cause != nil {
		wrapped = oops.Errorf("%s: %w", msg, cause)
	} else {
		wrapped = oops.Errorf("%s", msg)
	}
	return &Error{Kind: kind, err: wrapped}
}

// Of reports the Kind of err if it is (or wraps) an *Error, and Unknown
// otherwise.
func Of(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
