// Command shortseqcount streams a FASTQ file (optionally gzip-compressed),
// deduplicates its sequences and prints the most frequent ones.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/alextate/shortseq-go"
)

func main() {
	var (
		strict = flag.Bool("strict", false, "abort the run on the first malformed FASTQ record instead of skipping it")
		top    = flag.Int("top", 10, "number of most frequent sequences to print")
		digest = flag.Bool("digest", false, "print a blake2s digest of the distinct-sequence set")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: shortseqcount [flags] <fastq-path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	counter, err := run(path, *strict)
	if err != nil {
		log.Fatalf("shortseqcount: %v", err)
	}

	fmt.Printf("%d records, %d distinct sequences\n", counter.Total(), counter.Len())

	type row struct {
		seq   string
		count int
	}
	rows := make([]row, 0, counter.Len())
	for p, n := range counter.Counts() {
		rows = append(rows, row{seq: p.String(), count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].seq < rows[j].seq
	})
	if *top > 0 && *top < len(rows) {
		rows = rows[:*top]
	}
	for _, r := range rows {
		fmt.Printf("%-32s %d\n", r.seq, r.count)
	}

	if *digest {
		d, err := counter.Digest()
		if err != nil {
			log.Fatalf("shortseqcount: digest: %v", err)
		}
		fmt.Printf("digest %x\n", d)
	}
}

func run(path string, strict bool) (*shortseq.ShortSeqCounter, error) {
	if strict {
		return shortseq.ReadAndCountFastq(path)
	}

	r, closeFn, err := shortseq.OpenFastq(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	ctx := context.Background()
	counter := shortseq.NewShortSeqCounter()
	for {
		seq, err := r.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return counter, nil
			}
			var rec *shortseq.ErrRecord
			if errors.As(err, &rec) {
				log.Printf("skipping malformed record: %v", rec)
				continue
			}
			return nil, err
		}
		if err := counter.Add(seq); err != nil {
			log.Printf("skipping unpackable sequence: %v", err)
			continue
		}
	}
}
