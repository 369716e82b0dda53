// Package fstkv provides an immutable, byte-ordered map and set container
// backed by a finite-state transducer (FST). Containers are built once from
// a sorted stream of entries and are thereafter read-only; lookups, ordered
// range scans, prefix and subsequence queries, and automaton-driven queries
// all share one streaming engine built on top of github.com/blevesearch/vellum.
package fstkv

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison via errors.Is, mirroring the teacher's
// nfa.Err* / dfa/lazy.Err* sentinel idiom.
var (
	// ErrInvalidData is returned when a Buffer does not hold a valid FST.
	ErrInvalidData = errors.New("fstkv: invalid FST data")

	// ErrKeyNotFound is returned by Map.MustGet when the key is absent.
	ErrKeyNotFound = errors.New("fstkv: key not found")

	// ErrOutOfOrder is returned by Builder.Insert when a key does not
	// strictly follow the previous one in byte-lexicographic order,
	// including the case of an exact duplicate.
	ErrOutOfOrder = errors.New("fstkv: keys must be inserted in strictly ascending order")

	// ErrValueTooLarge is returned when a value exceeds what the FST
	// primitive or the companion integer codec can represent.
	ErrValueTooLarge = errors.New("fstkv: value too large")

	// ErrWrongArity is returned by AnyItem when given something that is
	// not a length-2 sequence.
	ErrWrongArity = errors.New("fstkv: item must have exactly two fields")

	// ErrWrongType is returned by AnyItem when the key or value field has
	// the wrong underlying type.
	ErrWrongType = errors.New("fstkv: item has wrong key or value type")

	// ErrBufferNotContiguous is returned when opening a container from a
	// non-contiguous backing region.
	ErrBufferNotContiguous = errors.New("fstkv: buffer is not contiguous")

	// ErrClosed is returned by Builder.Insert and Builder.Finish once the
	// builder has finished or has aborted on an earlier error. Map, Set and
	// the iterators do not check for use after Close and never return it.
	ErrClosed = errors.New("fstkv: use of closed container")
)

// ErrorKind classifies a *Error the way dfa/lazy.ErrorKind classifies a
// *DFAError in the teacher package.
type ErrorKind uint8

const (
	// KindInvalidData mirrors ErrInvalidData.
	KindInvalidData ErrorKind = iota
	// KindValue mirrors ErrOutOfOrder/ErrValueTooLarge-class input errors.
	KindValue
	// KindType mirrors ErrWrongArity/ErrWrongType.
	KindType
	// KindIO wraps an underlying I/O failure.
	KindIO
	// KindBuffer mirrors ErrBufferNotContiguous and writable-on-read-only
	// requests.
	KindBuffer
	// KindRuntime wraps an unexpected error surfaced by the FST primitive.
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidData:
		return "InvalidData"
	case KindValue:
		return "Value"
	case KindType:
		return "Type"
	case KindIO:
		return "IO"
	case KindBuffer:
		return "Buffer"
	case KindRuntime:
		return "Runtime"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error is the wrapped error type this package returns for anything beyond
// a bare sentinel, carrying enough context to classify the failure
// programmatically (Kind) while still chaining to its Cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fstkv: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("fstkv: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, &Error{Kind: KindValue}) match any *Error of that
// Kind, independent of message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func wrapErr(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}
