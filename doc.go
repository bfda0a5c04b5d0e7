// Package shortseq implements a compact, immutable representation of short
// DNA sequences over the alphabet {A, C, G, T} and a high-throughput counter
// for deduplicating sequences read from FASTQ files.
//
// Sequences are packed at 2 bits per base into one of three fixed tiers
// chosen by length: Packed64 (1-32 bases, one 64-bit word), Packed192
// (33-64 bases, three 64-bit words) and PackedVar (65-1024 bases, a
// heap-allocated block array). All three tiers satisfy the Packed
// interface and are immutable once constructed; a zero-length sequence is
// represented by the single interned Empty value.
//
// The package maintains no mutable global state beyond Empty and the
// read-only base codec tables, so every Packed value is safe to share
// across goroutines for read-only use. ShortSeqCounter is not internally
// synchronized; concurrent mutation requires an external lock.
package shortseq
