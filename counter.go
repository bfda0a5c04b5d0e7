package shortseq

import (
	"context"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/gtank/blake2s"
)

// ShortSeqCounter deduplicates packed sequences and counts occurrences,
// similar in spirit to collections.Counter but keyed by packed bits rather
// than decoded text so hashing stays at memory-bandwidth rates (spec.md
// 4.7). It keeps three internal tables, one per tier, so Packed64 and
// Packed192 keys can be plain comparable struct values (fast, no
// allocation) while PackedVar keys - which hold a slice and so are not
// directly comparable - are keyed by their raw block bytes.
//
// A ShortSeqCounter is not internally synchronized; concurrent Add calls
// require an external lock (spec.md 5).
type ShortSeqCounter struct {
	fixed64  map[Packed64]int
	fixed192 map[Packed192]int
	variable map[string]*varBucket
	total    int
}

type varBucket struct {
	seq   *PackedVar
	count int
}

// NewShortSeqCounter creates an empty counter.
func NewShortSeqCounter() *ShortSeqCounter {
	return &ShortSeqCounter{
		fixed64:  make(map[Packed64]int),
		fixed192: make(map[Packed192]int),
		variable: make(map[string]*varBucket),
	}
}

// Add packs data and increments its count, returning any packing error
// (ErrTooLong, ErrUnsupportedBase) unchanged.
func (c *ShortSeqCounter) Add(data []byte) error {
	p, err := packBytes(data)
	if err != nil {
		return err
	}
	c.addPacked(p)
	return nil
}

func (c *ShortSeqCounter) addPacked(p Packed) {
	c.total++
	switch v := p.(type) {
	case *Packed64:
		c.fixed64[*v]++
	case *Packed192:
		c.fixed192[*v]++
	case *PackedVar:
		key := varBlockKey(v.length, v.blocks)
		if b, ok := c.variable[key]; ok {
			b.count++
		} else {
			c.variable[key] = &varBucket{seq: v, count: 1}
		}
	}
}

// varBlockKey encodes length and the raw block words into a comparable
// string so PackedVar values - which hold a slice and so cannot be used as
// a map key directly - can still be deduplicated on their packed bytes
// rather than on decoded text.
func varBlockKey(length int, blocks []uint64) string {
	buf := make([]byte, 8+8*len(blocks))
	binary.LittleEndian.PutUint64(buf, uint64(length))
	for i, w := range blocks {
		binary.LittleEndian.PutUint64(buf[8+8*i:], w)
	}
	return string(buf)
}

// NewShortSeqCounterFrom builds a counter from an iterable of sequences,
// equivalent to spec.md 6's ShortSeqCounter(iterable) constructor. T is
// string or []byte so callers can pass either textual or raw sequence data.
func NewShortSeqCounterFrom[T string | []byte](items []T) (*ShortSeqCounter, error) {
	c := NewShortSeqCounter()
	for _, it := range items {
		if err := c.Add([]byte(it)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len returns the number of distinct sequences counted.
func (c *ShortSeqCounter) Len() int {
	return len(c.fixed64) + len(c.fixed192) + len(c.variable)
}

// Total returns the sum of all counts, i.e. the number of sequences added.
func (c *ShortSeqCounter) Total() int {
	return c.total
}

// Counts returns a snapshot mapping every distinct packed sequence to its
// occurrence count.
func (c *ShortSeqCounter) Counts() map[Packed]int {
	out := make(map[Packed]int, c.Len())
	for k, n := range c.fixed64 {
		k := k
		out[&k] = n
	}
	for k, n := range c.fixed192 {
		k := k
		out[&k] = n
	}
	for _, b := range c.variable {
		out[b.seq] = b.count
	}
	return out
}

// Get reports the count for a sequence equal to p, if any.
func (c *ShortSeqCounter) Get(p Packed) (int, bool) {
	switch v := p.(type) {
	case *Packed64:
		n, ok := c.fixed64[*v]
		return n, ok
	case *Packed192:
		n, ok := c.fixed192[*v]
		return n, ok
	case *PackedVar:
		b, ok := c.variable[varBlockKey(v.length, v.blocks)]
		if !ok {
			return 0, false
		}
		return b.count, true
	default:
		return 0, false
	}
}

// Digest folds every distinct sequence's decoded text and count through a
// blake2s hash, sorted by decoded text so the result is stable regardless
// of map iteration order. It gives callers a reproducibility fingerprint
// for a counted FASTQ run.
func (c *ShortSeqCounter) Digest() ([32]byte, error) {
	type entry struct {
		seq   string
		count int
	}
	entries := make([]entry, 0, c.Len())
	for p, n := range c.Counts() {
		entries = append(entries, entry{seq: p.String(), count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	d, err := blake2s.NewDigest(nil, nil, nil, 32)
	if err != nil {
		return [32]byte{}, err
	}
	for _, e := range entries {
		fmt.Fprintf(d, "%s:%d\n", e.seq, e.count)
	}

	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out, nil
}

// ReadAndCountFastq composes FastqReader and ShortSeqCounter into a single
// streaming pass over path, per spec.md 4.7 and 6.
func ReadAndCountFastq(path string) (*ShortSeqCounter, error) {
	return ReadAndCountFastqContext(context.Background(), path)
}

// ReadAndCountFastqContext is ReadAndCountFastq with cancellation support.
func ReadAndCountFastqContext(ctx context.Context, path string) (*ShortSeqCounter, error) {
	r, closeFn, err := OpenFastq(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	c := NewShortSeqCounter()
	for {
		seq, err := r.Next(ctx)
		if err != nil {
			if isEOF(err) {
				return c, nil
			}
			return nil, err
		}
		if err := c.Add(seq); err != nil {
			return nil, err
		}
	}
}
