package ptape

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind identifies the category of a parse failure.
type ErrorKind uint8

const (
	// ErrEOF means input ended while a container was still open, or
	// while inside a quoted scalar or an rgb literal.
	ErrEOF ErrorKind = iota
	// ErrStackEmpty means '}' was encountered with no matching '{'.
	ErrStackEmpty
	// ErrInvalidEmptyObject means a '{' at key position (the
	// empty-object sentinel) was not immediately followed by '}'.
	ErrInvalidEmptyObject
	// ErrInvalidSyntax covers an rgb channel that failed to parse as
	// an unsigned integer, or an rgb literal missing its closing '}'.
	ErrInvalidSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEOF:
		return "eof"
	case ErrStackEmpty:
		return "stack empty"
	case ErrInvalidEmptyObject:
		return "invalid empty object"
	case ErrInvalidSyntax:
		return "invalid syntax"
	default:
		return "unknown"
	}
}

// Error is a structured parse error. For ErrStackEmpty,
// ErrInvalidEmptyObject and ErrInvalidSyntax, Offset is the byte
// offset of the offending input, computed as len(original input) -
// len(remaining input) at the point of failure. ErrEOF errors do not
// record a position: their Offset is always 0.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ptape: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("ptape: %s at offset %d", e.Kind, e.Offset)
}

func errEOF() error {
	return errors.WithStack(&Error{Kind: ErrEOF})
}

func errStackEmpty(offset int) error {
	return errors.WithStack(&Error{Kind: ErrStackEmpty, Offset: offset})
}

func errInvalidEmptyObject(offset int) error {
	return errors.WithStack(&Error{Kind: ErrInvalidEmptyObject, Offset: offset})
}

func errInvalidSyntax(offset int, message string) error {
	return errors.WithStack(&Error{Kind: ErrInvalidSyntax, Offset: offset, Message: message})
}

// Sentinel scalar-decoding errors. These are never raised by the tape
// parser itself (scalars are stored as raw, undecoded bytes); they are
// returned lazily by Scalar.Uint64/Int64/Float64/Bool to whoever asks
// for a decoded value.
var (
	// ErrAllDigits means the scalar did not consist entirely of
	// decimal digits (after an optional sign and one optional
	// fractional point).
	ErrAllDigits = errors.New("ptape: scalar is not all digits")
	// ErrInvalidBool means the scalar was neither "yes" nor "no".
	ErrInvalidBool = errors.New("ptape: scalar is not a valid bool")
	// ErrOverflow means the scalar's numeric value does not fit in
	// the requested width.
	ErrOverflow = errors.New("ptape: scalar overflows")
)
