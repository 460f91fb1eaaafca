package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

const (
	exitOK      = 0
	exitWrite   = 1
	exitBadArgs = 2
)

func printUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "%s <seed> <n>\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parameters:")
	fmt.Fprintln(w, "  seed:   Seed to initialize mt_rand() with")
	fmt.Fprintln(w, "  offset: Number of calls to mt_rand() before printing the first output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  <offset>'s call to mt_rand() and <offset+227>'s call to mt_rand()")
}

// parseSeed keeps the low 32 bits, as mt_srand does with its integer argument.
func parseSeed(s string) (uint32, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("err: seed is not an integer: %w", err)
	}
	return uint32(v), nil
}

func parseOffset(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("err: offset is not an integer: %w", err)
	}
	return v, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	log := newLogger(stderr)

	program := "mtrand-probe"
	if len(args) > 0 {
		program = args[0]
	}
	if len(args) < 3 {
		printUsage(stdout, program)
		return exitOK
	}

	seed, err := parseSeed(args[1])
	if err != nil {
		log.Error().Err(err).Str("seed", args[1]).Msg("invalid argument")
		return exitBadArgs
	}
	offset, err := parseOffset(args[2])
	if err != nil {
		log.Error().Err(err).Str("offset", args[2]).Msg("invalid argument")
		return exitBadArgs
	}

	prng := NewMTRand(seed, ModeMT19937)
	log.Debug().
		Uint32("seed", seed).
		Int("offset", offset).
		Str("mode", prng.Mode().String()).
		Msg("probing")

	if err := WriteProbe(stdout, prng, offset); err != nil {
		log.Error().Err(err).Msg("failure to write output")
		return exitWrite
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
