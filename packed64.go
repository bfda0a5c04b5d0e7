package shortseq

import "math/bits"

// Packed64 stores a sequence of 1-32 bases in a single 64-bit word plus a
// length byte. Base i occupies bit positions [2i, 2i+2) of word, little-end
// first; bits above 2*length are always zero.
type Packed64 struct {
	word   uint64
	length uint8
}

func newPacked64(s []byte) *Packed64 {
	n := len(s)
	p := &Packed64{length: uint8(n)}

	// Unrolled 8-at-a-time fast path: the low two bits of each byte in
	// forwardTable already hold the code, so eight lookups and eight
	// shift-ORs amortize the loop overhead that dominates for short reads.
	i := 0
	for ; i+8 <= n; i += 8 {
		var w uint64
		w |= uint64(forwardTable[s[i+0]]) << 0
		w |= uint64(forwardTable[s[i+1]]) << 2
		w |= uint64(forwardTable[s[i+2]]) << 4
		w |= uint64(forwardTable[s[i+3]]) << 6
		w |= uint64(forwardTable[s[i+4]]) << 8
		w |= uint64(forwardTable[s[i+5]]) << 10
		w |= uint64(forwardTable[s[i+6]]) << 12
		w |= uint64(forwardTable[s[i+7]]) << 14
		p.word |= w << (2 * uint(i))
	}
	for ; i < n; i++ {
		p.word |= uint64(forwardTable[s[i]]) << (2 * uint(i))
	}
	return p
}

func (p *Packed64) Len() int { return int(p.length) }

func (p *Packed64) String() string {
	n := int(p.length)
	out := make([]byte, n)
	w := p.word
	for i := 0; i < n; i++ {
		out[i] = reverseTable[w&0x3]
		w >>= 2
	}
	return string(out)
}

func (p *Packed64) At(i int) (string, error) {
	idx, err := normalizeIndex(i, int(p.length))
	if err != nil {
		return "", err
	}
	code := (p.word >> (2 * uint(idx))) & 0x3
	return string(reverseTable[code]), nil
}

func (p *Packed64) Slice(a, b int) (string, error) {
	lo, hi := normalizeSlice(a, b, int(p.length))
	n := hi - lo
	out := make([]byte, n)
	w := p.word >> (2 * uint(lo))
	for i := 0; i < n; i++ {
		out[i] = reverseTable[w&0x3]
		w >>= 2
	}
	return string(out), nil
}

func (p *Packed64) Hamming(other Packed) (int, error) {
	op, ok := other.(*Packed64)
	if !ok {
		return 0, &ErrLenMismatch{Left: p.Len(), Right: other.Len()}
	}
	if p.length != op.length {
		return 0, &ErrLenMismatch{Left: p.Len(), Right: op.Len()}
	}
	return hammingWord(p.word, op.word), nil
}

// hammingWord folds an XOR of two packed words into a per-base differing
// count: any nonzero 2-bit lane after XOR means that base differs, so OR
// the two bits of each lane together, mask to one bit per lane, and
// popcount.
func hammingWord(x, y uint64) int {
	d := x ^ y
	d = (d | (d >> 1)) & 0x5555555555555555
	return bits.OnesCount64(d)
}

func (p *Packed64) Equal(other Packed) bool {
	op, ok := other.(*Packed64)
	if !ok {
		return equalFallback(p, other)
	}
	return p.length == op.length && p.word == op.word
}

func (p *Packed64) EqualString(s string) bool {
	return p.String() == s
}

func (p *Packed64) Hash() uint64 {
	return mixHash(tierTag64, int(p.length), p.word)
}
