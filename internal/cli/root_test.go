package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/calibrate/equation"
	"github.com/katalvlaran/calibrate/input"
	"github.com/katalvlaran/calibrate/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePath = "../../testdata/sample.txt"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	t.Log(errOut.String())
	return out.String(), err
}

func TestSolve_Text(t *testing.T) {
	out, err := run(t, "solve", samplePath)
	require.NoError(t, err)
	assert.Equal(t, "3749\n11387\n", out)
}

func TestSolve_TextWithWorkersNoPrune(t *testing.T) {
	out, err := run(t, "solve", samplePath, "-w", "4", "--no-prune", "-v")
	require.NoError(t, err)
	assert.Equal(t, "3749\n11387\n", out)
}

func TestSolve_Table(t *testing.T) {
	out, err := run(t, "solve", samplePath, "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "3749")
	assert.Contains(t, out, "11387")
	assert.Contains(t, out, "81 + 40 * 27")
	assert.Contains(t, out, "15 || 6")
}

func TestSolve_JSON(t *testing.T) {
	out, err := run(t, "solve", samplePath, "--output", "json")
	require.NoError(t, err)

	var doc struct {
		Part1     int64 `json:"part1"`
		Part2     int64 `json:"part2"`
		Equations []struct {
			Line   int    `json:"line"`
			Target int64  `json:"target"`
			Part1  string `json:"part1"`
			Part2  string `json:"part2"`
		} `json:"equations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, int64(3749), doc.Part1)
	assert.Equal(t, int64(11387), doc.Part2)
	require.Len(t, doc.Equations, 9)
	assert.Equal(t, "10 * 19", doc.Equations[0].Part1)
	assert.Empty(t, doc.Equations[3].Part1)
	assert.Equal(t, "15 || 6", doc.Equations[3].Part2)
}

func TestSolve_MissingFile(t *testing.T) {
	_, err := run(t, "solve", "does-not-exist.txt")
	assert.ErrorIs(t, err, input.ErrOpen)
}

func TestSolve_MalformedInputAborts(t *testing.T) {
	path := t.TempDir() + "/bad.txt"
	require.NoError(t, writeFile(path, "190: 10 19\n11 6\n"))

	out, err := run(t, "solve", path)
	assert.ErrorIs(t, err, equation.ErrMissingSeparator)
	assert.Empty(t, out, "no partial totals on a malformed line")
}

func TestSolve_BadOutput(t *testing.T) {
	_, err := run(t, "solve", samplePath, "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "7290: 6 8 6 15")
	require.NoError(t, err)
	assert.Equal(t, "part1: unsatisfiable\npart2: 7290 = 6 * 8 || 6 * 15\n", out)

	out, err = run(t, "check", "190: 10 19")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "part1: 190 = 10 * 19\n"))

	_, err = run(t, "check", "11 6")
	assert.ErrorIs(t, err, equation.ErrMissingSeparator)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calibrate v"+cli.Version+"\n", out)
}
