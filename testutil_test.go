package shortseq

import "math/rand"

var testBases = [4]byte{'A', 'C', 'T', 'G'}

// randSequence returns a random uppercase ACGT sequence of the given
// length, in the spirit of the original project's rand_sequence helper.
func randSequence(r *rand.Rand, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = testBases[r.Intn(4)]
	}
	return string(buf)
}
