package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDimacs = `c 1 A
c 2 B
p cnf 2 1
1 2 0
`

const testInitialSampleCSV = "Configuration;A;B\n1;+;-\n2;-;+\n3;+;+\n"

func TestRun_OptimizeWritesASampleAndExitsZero(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "model.dimacs")
	samplePath := filepath.Join(dir, "initial.csv")
	outputPath := filepath.Join(dir, "out.csv")

	require.NoError(t, os.WriteFile(inputPath, []byte(testDimacs), 0o644))
	require.NoError(t, os.WriteFile(samplePath, []byte(testInitialSampleCSV), 0o644))

	code := run([]string{
		"optimize",
		"--input", inputPath,
		"--initial-sample", samplePath,
		"--output", outputPath,
		"--global-time-limit", "2s",
		"--iteration-time-limit", "200ms",
		"--max-iterations", "3",
	})

	assert.Equal(t, exitOK, code)
	out, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Configuration;A;B")
}

func TestRun_MissingInputExitsWithUsageError(t *testing.T) {
	dir := t.TempDir()

	code := run([]string{
		"optimize",
		"--initial-sample", filepath.Join(dir, "missing.csv"),
		"--output", filepath.Join(dir, "out.csv"),
	})

	assert.Equal(t, exitUsage, code)
}

func TestRun_UnreadableInputExitsWithUsageError(t *testing.T) {
	dir := t.TempDir()

	code := run([]string{
		"optimize",
		"--input", filepath.Join(dir, "does-not-exist.dimacs"),
		"--initial-sample", filepath.Join(dir, "does-not-exist.csv"),
		"--output", filepath.Join(dir, "out.csv"),
	})

	assert.Equal(t, exitUsage, code)
}
