package shortseq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacked64LengthRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for length := MinFixed64NT; length <= MaxFixed64NT; length++ {
		sample := randSequence(r, length)
		p, err := FromString(sample)
		require.NoError(t, err)
		require.IsType(t, &Packed64{}, p)
		assert.Equal(t, length, p.Len())
		assert.Equal(t, sample, p.String())
	}
}

func TestPacked64Subscript(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for length := MinFixed64NT; length <= MaxFixed64NT; length++ {
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
		_, err = p.At(-length - 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestPacked64Slice(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	sample := randSequence(r, MaxFixed64NT)
	p, err := FromString(sample)
	require.NoError(t, err)

	full, err := p.Slice(0, len(sample))
	require.NoError(t, err)
	assert.Equal(t, sample, full)

	for i := 1; i < len(sample); i++ {
		got, err := p.Slice(0, i)
		require.NoError(t, err)
		assert.Equal(t, sample[:i], got)

		got, err = p.Slice(0, -i)
		require.NoError(t, err)
		assert.Equal(t, sample[:len(sample)-i], got)

		got, err = p.Slice(i, len(sample))
		require.NoError(t, err)
		assert.Equal(t, sample[i:], got)

		got, err = p.Slice(-i, len(sample))
		require.NoError(t, err)
		assert.Equal(t, sample[len(sample)-i:], got)
	}
}

func TestPacked64Hamming(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for length := 0; length < MaxFixed64NT; length++ {
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
