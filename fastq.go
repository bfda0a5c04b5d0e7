package shortseq

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
)

// isEOF reports whether err is io.EOF, unwrapping as errors.Is does.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// gzipMagic is the two-byte gzip stream header used to content-sniff
// compressed FASTQ input, per spec.md 6.
var gzipMagic = [2]byte{0x1f, 0x8b}

// FastqReader streams FASTQ records from r, yielding the sequence line of
// each record. A FastqReader is not safe for concurrent use.
type FastqReader struct {
	sc   *bufio.Scanner
	line int
}

// NewFastqReader wraps r, transparently gzip-decompressing it if the first
// two bytes match the gzip magic number.
func NewFastqReader(r io.Reader) (*FastqReader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && len(magic) == 2 && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		gz, gzErr := gzip.NewReader(br)
		if gzErr != nil {
			return nil, gzErr
		}
		return &FastqReader{sc: bufio.NewScanner(gz)}, nil
	}
	return &FastqReader{sc: bufio.NewScanner(br)}, nil
}

// OpenFastq opens path and returns a FastqReader over it plus a close
// function the caller must invoke when done.
func OpenFastq(path string) (*FastqReader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewFastqReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f.Close, nil
}

func (r *FastqReader) readLine() ([]byte, bool) {
	if !r.sc.Scan() {
		return nil, false
	}
	r.line++
	return r.sc.Bytes(), true
}

// Next reads one four-line FASTQ record and returns a freshly allocated
// copy of its sequence line. It returns io.EOF once the stream is
// exhausted at a record boundary, or an error wrapping ErrMalformedRecord
// if the 4-line cadence is violated or the header does not start with '@'.
// ctx is checked at the start of each record so callers can cancel a long
// read between records.
func (r *FastqReader) Next(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	header, ok := r.readLine()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	if len(header) == 0 || header[0] != '@' {
		return nil, &ErrRecord{Line: r.line, Reason: "header does not start with '@'"}
	}

	seqLine, ok := r.readLine()
	if !ok {
		return nil, &ErrRecord{Line: r.line, Reason: "truncated record: missing sequence line"}
	}
	seq := make([]byte, len(seqLine))
	copy(seq, seqLine)

	plusLine, ok := r.readLine()
	if !ok {
		return nil, &ErrRecord{Line: r.line, Reason: "truncated record: missing separator line"}
	}
	if len(plusLine) == 0 || plusLine[0] != '+' {
		return nil, &ErrRecord{Line: r.line, Reason: "separator line does not start with '+'"}
	}

	qualLine, ok := r.readLine()
	if !ok {
		return nil, &ErrRecord{Line: r.line, Reason: "truncated record: missing quality line"}
	}
	if len(qualLine) != len(seq) {
		return nil, &ErrRecord{Line: r.line, Reason: "quality line length does not match sequence length"}
	}

	return seq, nil
}
