package shortseq

// Length domains for the three storage tiers. Tier selection is monotone:
// [MinFixed64NT, MaxFixed64NT] -> Packed64
// [MinFixed192NT, MaxFixed192NT] -> Packed192
// [MinVarNT, MaxVarNT] -> PackedVar
// Length 0 always returns Empty regardless of tier.
const (
	MinFixed64NT  = 1
	MaxFixed64NT  = 32
	MinFixed192NT = 33
	MaxFixed192NT = 64
	MinVarNT      = 65
	MaxVarNT      = 1024
)

// DomainFixed64 reports the inclusive length range handled by Packed64.
func DomainFixed64() (int, int) { return MinFixed64NT, MaxFixed64NT }

// DomainFixed192 reports the inclusive length range handled by Packed192.
func DomainFixed192() (int, int) { return MinFixed192NT, MaxFixed192NT }

// DomainVar reports the inclusive length range handled by PackedVar.
func DomainVar() (int, int) { return MinVarNT, MaxVarNT }

// Packed is the read-only capability set shared by all three storage tiers.
// Concrete tiers (Packed64, Packed192, PackedVar) are tagged by the dynamic
// type returned from Pack; callers that care about the tier can type-switch,
// but all accessors work uniformly through this interface.
type Packed interface {
	// Len returns the number of bases.
	Len() int

	// String decodes the full sequence to uppercase ASCII text.
	String() string

	// At returns the decoded base at index i. Negative i counts from the
	// end, per common text-sequence convention. Returns ErrIndexRange if i
	// falls outside [-Len(), Len()) after normalization.
	At(i int) (string, error)

	// Slice returns the decoded text of bases [a, b). a and b are clamped
	// the way Go/Python slicing clamps out-of-range bounds; a > b yields "".
	Slice(a, b int) (string, error)

	// Hamming returns the number of differing positions against other.
	// Returns ErrLenMismatch if the lengths differ.
	Hamming(other Packed) (int, error)

	// Equal reports whether other encodes the same sequence. Same-tier
	// comparisons compare raw storage words; cross-tier comparisons fall
	// back to decoded-text equality (tiers are length-disjoint, so this
	// never actually triggers for valid Packed values).
	Equal(other Packed) bool

	// EqualString reports whether the decoded sequence equals s exactly.
	EqualString(s string) bool

	// Hash returns a hash that depends only on (Len(), storage words) and
	// is stable for the lifetime of the process.
	Hash() uint64
}

// Empty is the single process-wide instance representing the zero-length
// sequence. Pack, FromString and FromBytes all return this exact value for
// length-0 input, so pointer equality implies value equality for the empty
// sequence.
var Empty Packed = &Packed64{}

// Pack validates and encodes s (a string or []byte) into the tier
// appropriate for its length. It returns Empty for a zero-length input and
// an error wrapping ErrTooLong or ErrUnsupportedBase for invalid input.
func Pack[T string | []byte](s T) (Packed, error) {
	return packBytes([]byte(s))
}

// FromString is a specialized entry point equivalent to Pack(s) for string
// input, elided of the generic type dispatch.
func FromString(s string) (Packed, error) {
	return packBytes([]byte(s))
}

// FromBytes is a specialized entry point equivalent to Pack(b) for []byte
// input.
func FromBytes(b []byte) (Packed, error) {
	return packBytes(b)
}

func packBytes(s []byte) (Packed, error) {
	n := len(s)
	if n == 0 {
		return Empty, nil
	}
	if n > MaxVarNT {
		return nil, ErrTooLong
	}
	if pos, bad, ok := validate(s); !ok {
		return nil, &ErrBadBase{Byte: bad, Pos: pos}
	}

	switch {
	case n <= MaxFixed64NT:
		return newPacked64(s), nil
	case n <= MaxFixed192NT:
		return newPacked192(s), nil
	default:
		return newPackedVar(s), nil
	}
}

// normalizeIndex applies negative-index wraparound and bounds-checks i
// against length, returning the error the Packed interface documents.
func normalizeIndex(i, length int) (int, error) {
	idx := i
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, &ErrIndexRange{Index: i, Length: length}
	}
	return idx, nil
}

// normalizeSlice applies Python/Go-style slice clamping: negative bounds
// count from the end, and out-of-range bounds clamp to [0, length] rather
// than erroring. a > b (after clamping) yields an empty slice, not an error.
func normalizeSlice(a, b, length int) (int, int) {
	if a < 0 {
		a += length
	}
	if b < 0 {
		b += length
	}
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a > length {
		a = length
	}
	if b > length {
		b = length
	}
	if a > b {
		a = b
	}
	return a, b
}

// equalFallback implements Packed.Equal across mismatched concrete types by
// comparing decoded text, per spec: tiers are length-disjoint so in
// practice this path is dead for any two values produced by Pack.
func equalFallback(a, b Packed) bool {
	return a.Len() == b.Len() && a.String() == b.String()
}
