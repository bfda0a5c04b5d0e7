package shortseq

// mixHash folds a tier tag, the sequence length and the tier's storage
// words into a single 64-bit hash. Storage words are hashable directly
// because unused high bits are always zero by invariant (spec.md 3); the
// tier tag keeps Packed64/Packed192/PackedVar from colliding on short
// shared prefixes even though in practice their length domains never
// overlap. The mixer is a splitmix64 finalizer applied per word, which
// needs nothing beyond the standard library: a dedicated hashing library
// would be overkill for folding at most 32 fixed 64-bit words (see
// DESIGN.md).
func mixHash(tierTag uint64, length int, words ...uint64) uint64 {
	h := tierTag ^ uint64(length)*0x9E3779B97F4A7C15
	for _, w := range words {
		h ^= w
		h *= 0xBF58476D1CE4E5B9
		h ^= h >> 31
		h *= 0x94D049BB133111EB
		h ^= h >> 29
	}
	return h
}

const (
	tierTag64  = 0x64
	tierTag192 = 0x192
	tierTagVar = 0xFA2
)
