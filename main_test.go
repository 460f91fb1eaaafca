package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const usage = `probe <seed> <n>

Parameters:
  seed:   Seed to initialize mt_rand() with
  offset: Number of calls to mt_rand() before printing the first output

Output:
  <offset>'s call to mt_rand() and <offset+227>'s call to mt_rand()
`

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{{"probe"}, {"probe", "1"}} {
		code, out, errOut := runArgs(args...)
		require.Equal(t, exitOK, code)
		require.Equal(t, usage, out)
		require.Empty(t, errOut)
	}

	code, out, _ := runArgs()
	require.Equal(t, exitOK, code)
	require.True(t, strings.HasPrefix(out, "mtrand-probe <seed> <n>\n"))
}

func TestRunOutput(t *testing.T) {
	code, out, errOut := runArgs("probe", "1", "0")
	require.Equal(t, exitOK, code)
	require.Equal(t, "895547922 997101370\n", out)
	require.Empty(t, errOut)

	code, again, _ := runArgs("probe", "1", "0")
	require.Equal(t, exitOK, code)
	require.Equal(t, out, again)
}

func TestRunSeedTruncation(t *testing.T) {
	_, neg, _ := runArgs("probe", "-1", "3")
	_, wrapped, _ := runArgs("probe", "4294967295", "3")
	require.Equal(t, "1208374819 586145192\n", neg)
	require.Equal(t, neg, wrapped)
}

func TestRunNegativeOffset(t *testing.T) {
	_, zero, _ := runArgs("probe", "1", "0")
	code, neg, _ := runArgs("probe", "1", "-10")
	require.Equal(t, exitOK, code)
	require.Equal(t, zero, neg)
}

func TestRunExtraArgsIgnored(t *testing.T) {
	_, out, _ := runArgs("probe", "42", "1000", "extra")
	require.Equal(t, "1499290874 1098775067\n", out)
}

func TestRunInvalidArgs(t *testing.T) {
	tests := [][]string{
		{"probe", "abc", "0"},
		{"probe", "1", "ten"},
		{"probe", "1.5", "0"},
		{"probe", "1", ""},
	}
	for _, args := range tests {
		code, out, errOut := runArgs(args...)
		require.Equal(t, exitBadArgs, code, "%v", args)
		require.Empty(t, out, "%v", args)
		require.Contains(t, errOut, "invalid argument", "%v", args)
	}
}

func TestRunWriteFailure(t *testing.T) {
	var stderr bytes.Buffer
	code := run([]string{"probe", "1", "0"}, &failingWriter{}, &stderr)
	require.Equal(t, exitWrite, code)
	require.Contains(t, stderr.String(), "failure to write output")
}

func TestParseSeed(t *testing.T) {
	seed, err := parseSeed("4294967296")
	require.NoError(t, err)
	require.Equal(t, uint32(0), seed)

	_, err = parseSeed("99999999999999999999")
	require.Error(t, err)
	require.Contains(t, err.Error(), "seed")
}
