package main

import (
	"fmt"
	"io"
)

// Gap is the distance between the two reported outputs. After a reload,
// word i+227 is built from the new word i and the old words i+227, i+228.
const Gap = 227

type Generator interface {
	Next() uint32
}

// NOTE: pair of outputs separated by Gap calls
type Pair struct {
	First  uint32
	Second uint32
}

func (p Pair) String() string {
	return fmt.Sprintf("%d %d", p.First, p.Second)
}

func skip(g Generator, n int) {
	for i := 0; i < n; i++ {
		g.Next()
	}
}

// Probe returns the outputs at positions offset and offset+Gap.
// A negative offset is treated as zero.
func Probe(g Generator, offset int) Pair {
	skip(g, offset)
	first := g.Next()
	skip(g, Gap-1)
	return Pair{First: first, Second: g.Next()}
}

// WriteProbe prints the first output before walking the gap, so a partial
// line is already on w if the walk is interrupted.
func WriteProbe(w io.Writer, g Generator, offset int) error {
	skip(g, offset)
	if _, err := fmt.Fprintf(w, "%d ", g.Next()); err != nil {
		return fmt.Errorf("err: failure to write first output: %w", err)
	}
	skip(g, Gap-1)
	if _, err := fmt.Fprintf(w, "%d\n", g.Next()); err != nil {
		return fmt.Errorf("err: failure to write second output: %w", err)
	}
	return nil
}
