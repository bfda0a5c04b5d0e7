package shortseq

// Packed192 stores a sequence of 33-64 bases across three 64-bit words.
// w0 holds bases 0-31, w1 holds bases 32-63; w2 is reserved for a base at
// position 64 and is always zero in this tier, since the tier is exited at
// length 64 (see spec's Packed192 invariant and DESIGN.md's note on the
// Packed128-vs-Packed192 open question). Unused high bits of w0/w1 beyond
// the sequence length are always zero.
type Packed192 struct {
	w0, w1, w2 uint64
	length     uint8
}

func newPacked192(s []byte) *Packed192 {
	n := len(s)
	p := &Packed192{length: uint8(n)}
	i := 0
	for ; i < n && i < 32; i++ {
		p.w0 |= uint64(forwardTable[s[i]]) << (2 * uint(i))
	}
	for ; i < n; i++ {
		p.w1 |= uint64(forwardTable[s[i]]) << (2 * uint(i-32))
	}
	return p
}

func (p *Packed192) wordAt(idx int) uint64 {
	switch idx / 32 {
	case 0:
		return p.w0
	case 1:
		return p.w1
	default:
		return p.w2
	}
}

func (p *Packed192) codeAt(idx int) byte {
	return byte((p.wordAt(idx) >> (2 * uint(idx%32))) & 0x3)
}

func (p *Packed192) Len() int { return int(p.length) }

func (p *Packed192) String() string {
	n := int(p.length)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = reverseTable[p.codeAt(i)]
	}
	return string(out)
}

func (p *Packed192) At(i int) (string, error) {
	idx, err := normalizeIndex(i, int(p.length))
	if err != nil {
		return "", err
	}
	return string(reverseTable[p.codeAt(idx)]), nil
}

func (p *Packed192) Slice(a, b int) (string, error) {
	lo, hi := normalizeSlice(a, b, int(p.length))
	n := hi - lo
	out := make([]byte, n)

	// Fast path: the slice lies entirely within one word, so it can be
	// extracted with a single shift-and-mask walk instead of re-deriving
	// wordAt for every base.
	if n > 0 && lo/32 == (hi-1)/32 {
		w := p.wordAt(lo) >> (2 * uint(lo%32))
		for i := 0; i < n; i++ {
			out[i] = reverseTable[w&0x3]
			w >>= 2
		}
		return string(out), nil
	}

	for i := 0; i < n; i++ {
		out[i] = reverseTable[p.codeAt(lo+i)]
	}
	return string(out), nil
}

func (p *Packed192) Hamming(other Packed) (int, error) {
	op, ok := other.(*Packed192)
	if !ok || p.length != op.length {
		return 0, &ErrLenMismatch{Left: p.Len(), Right: other.Len()}
	}
	return hammingWord(p.w0, op.w0) + hammingWord(p.w1, op.w1) + hammingWord(p.w2, op.w2), nil
}

func (p *Packed192) Equal(other Packed) bool {
	op, ok := other.(*Packed192)
	if !ok {
		return equalFallback(p, other)
	}
	return p.length == op.length && p.w0 == op.w0 && p.w1 == op.w1 && p.w2 == op.w2
}

func (p *Packed192) EqualString(s string) bool {
	return p.String() == s
}

func (p *Packed192) Hash() uint64 {
	return mixHash(tierTag192, int(p.length), p.w0, p.w1, p.w2)
}
