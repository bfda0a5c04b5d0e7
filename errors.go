package shortseq

import (
	"errors"
	"fmt"
)

// Sentinel errors identify the five error kinds a caller can distinguish
// with errors.Is. Functions that return a more specific error (ErrBadBase,
// ErrIndexRange, ErrLenMismatch, ErrRecord) wrap one of these so both the sentinel
// and the detail survive errors.Is / errors.As.
var (
	// ErrUnsupportedBase is returned when an input byte is outside {A,C,G,T,a,c,g,t}.
	ErrUnsupportedBase = errors.New("shortseq: Unsupported base character")

	// ErrTooLong is returned when an input is longer than MaxVarNT bases.
	ErrTooLong = errors.New("shortseq: sequence longer than 1024 bases")

	// ErrIndexOutOfRange is returned by At when an index falls outside
	// [-length, length) after normalization. Slice clamps its bounds and
	// does not return it.
	ErrIndexOutOfRange = errors.New("shortseq: index out of range")

	// ErrLengthMismatch is returned by Hamming when operand lengths differ.
	ErrLengthMismatch = errors.New("shortseq: length mismatch")

	// ErrMalformedRecord is returned by the FASTQ reader when the four-line
	// record cadence is violated or a header does not start with '@'.
	ErrMalformedRecord = errors.New("shortseq: malformed FASTQ record")
)

// ErrBadBase carries the offending byte and its position alongside
// ErrUnsupportedBase so callers that want detail can errors.As into it,
// while callers that only check the kind can errors.Is(err, ErrUnsupportedBase).
type ErrBadBase struct {
	Byte byte
	Pos  int
}

func (e *ErrBadBase) Error() string {
	return fmt.Sprintf("%s: byte %q at position %d", ErrUnsupportedBase, e.Byte, e.Pos)
}

func (e *ErrBadBase) Unwrap() error { return ErrUnsupportedBase }

// ErrIndexRange carries the requested index and the sequence length.
type ErrIndexRange struct {
	Index  int
	Length int
}

func (e *ErrIndexRange) Error() string {
	return fmt.Sprintf("%s: index %d for length %d", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *ErrIndexRange) Unwrap() error { return ErrIndexOutOfRange }

// ErrLenMismatch carries the two mismatched operand lengths.
type ErrLenMismatch struct {
	Left, Right int
}

func (e *ErrLenMismatch) Error() string {
	return fmt.Sprintf("%s: %d vs %d", ErrLengthMismatch, e.Left, e.Right)
}

func (e *ErrLenMismatch) Unwrap() error { return ErrLengthMismatch }

// ErrRecord carries the line number at which a FASTQ record's structure broke.
type ErrRecord struct {
	Line   int
	Reason string
}

func (e *ErrRecord) Error() string {
	return fmt.Sprintf("%s at line %d: %s", ErrMalformedRecord, e.Line, e.Reason)
}

func (e *ErrRecord) Unwrap() error { return ErrMalformedRecord }
