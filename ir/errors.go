package ir

import "fmt"

// ErrorKind partitions the fatal failure modes of function assembly.
type ErrorKind int

const (
	// ProtocolViolation marks builder calls issued out of stream order.
	ProtocolViolation ErrorKind = iota
	// IndexOutOfRange marks a block or symbol index outside its table.
	IndexOutOfRange
	// TypeMismatch marks a symbol or type of the wrong category.
	TypeMismatch
	// UnresolvedForwardReference marks a placeholder surviving ExitFunction.
	UnresolvedForwardReference
)

func (k ErrorKind) String() string {
	switch k {
	case ProtocolViolation:
		return "protocol violation"
	case IndexOutOfRange:
		return "index out of range"
	case TypeMismatch:
		return "type mismatch"
	case UnresolvedForwardReference:
		return "unresolved forward reference"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ModelError is the error for every failure in the assembly protocol. All
// failures are fatal: builder entry points panic with a *ModelError, and
// ExitFunction returns one for the end-of-stream check.
type ModelError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ModelError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is match on a bare kind: errors.Is(err, &ModelError{Kind: k}).
func (e *ModelError) Is(target error) bool {
	t, ok := target.(*ModelError)
	return ok && t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func modelErrorf(kind ErrorKind, format string, args ...any) *ModelError {
	return &ModelError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func failf(kind ErrorKind, format string, args ...any) {
	panic(modelErrorf(kind, format, args...))
}
