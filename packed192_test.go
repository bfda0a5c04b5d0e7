package shortseq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacked192LengthRange(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for length := MinFixed192NT; length <= MaxFixed192NT; length++ {
		sample := randSequence(r, length)
		p, err := FromString(sample)
		require.NoError(t, err)
		require.IsType(t, &Packed192{}, p)
		assert.Equal(t, length, p.Len())
		assert.Equal(t, sample, p.String())
	}
}

func TestPacked192Subscript(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for length := MinFixed192NT; length <= MaxFixed192NT; length++ {
		sample := randSequence(r, length)
		p, err := FromString(sample)
		require.NoError(t, err)
		for i := 0; i < length; i++ {
			got, err := p.At(i)
			require.NoError(t, err)
			assert.Equal(t, string(sample[i]), got)

			got, err = p.At(-i - 1)
			require.NoError(t, err)
			assert.Equal(t, string(sample[length-1-i]), got)
		}
		_, err = p.At(length)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestPacked192Slice(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	sample := randSequence(r, MaxFixed192NT)
	p, err := FromString(sample)
	require.NoError(t, err)

	full, err := p.Slice(0, len(sample))
	require.NoError(t, err)
	assert.Equal(t, sample, full)

	for i := 1; i < len(sample); i++ {
		got, err := p.Slice(0, i)
		require.NoError(t, err)
		assert.Equal(t, sample[:i], got)

		got, err = p.Slice(i, len(sample))
		require.NoError(t, err)
		assert.Equal(t, sample[i:], got)
	}
}

// TestPacked192SliceCrossesWordBoundary exercises the general (non-single-word)
// path of Slice by straddling the w0/w1 boundary at base index 32.
func TestPacked192SliceCrossesWordBoundary(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	sample := randSequence(r, 50)
	p, err := FromString(sample)
	require.NoError(t, err)

	got, err := p.Slice(28, 40)
	require.NoError(t, err)
	assert.Equal(t, sample[28:40], got)
}

func TestPacked192Hamming(t *testing.T) {
	r := rand.New(rand.NewSource(14))
	for length := MinFixed192NT; length <= MaxFixed192NT; length++ {
		a := randSequence(r, length)
		b := randSequence(r, length)
		pa, err := FromString(a)
		require.NoError(t, err)
		pb, err := FromString(b)
		require.NoError(t, err)

		want := 0
		for i := range a {
			if a[i] != b[i] {
				want++
			}
		}
		got, err := pa.Hamming(pb)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
