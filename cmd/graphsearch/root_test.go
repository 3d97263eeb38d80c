package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestDemo_Sample(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.NoError(t, err)

	want := `shortest path to 1: 1
shortest path to 2: 1, 2
shortest path to 3: 1, 3
shortest path to 4: 1, 2, 4
shortest path to 5: 1, 3, 5
shortest path to 6: 1, 3, 6
shortest path to 7: 1, 2, 4, 7
shortest path to 8: 1, 3, 5, 8
shortest path to 9: 1, 3, 5, 8, 9
shortest path to 10: 1, 3, 5, 8, 9, 10
shortest path to 12: no path
dfs: 1, 3, 6, 5, 8, 9, 10, 7, 4, 2
bfs: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10
`
	assert.Equal(t, want, stdout)
	assert.Empty(t, stderr, "default log level stays quiet")
}

func TestBFSCommand(t *testing.T) {
	stdout, _, err := execute(t, "bfs", "--start", "9")
	require.NoError(t, err)

	assert.Equal(t, "order: 9, 8, 10, 5, 3, 7, 6, 1, 4, 2\nreachable: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10\n", stdout)
}

func TestDFSCommand(t *testing.T) {
	stdout, _, err := execute(t, "dfs")
	require.NoError(t, err)

	assert.Equal(t, "order: 1, 3, 6, 5, 8, 9, 10, 7, 4, 2\nreachable: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10\n", stdout)
}

func TestPathCommand(t *testing.T) {
	stdout, _, err := execute(t, "path", "--start", "10", "7", "12", "11")
	require.NoError(t, err)

	want := "shortest path to 7: 10, 9, 8, 5, 7\n" +
		"shortest path to 12: no path\n" +
		"shortest path to 11: no path\n"
	assert.Equal(t, want, stdout)
}

func TestMissingStart(t *testing.T) {
	stdout, stderr, err := execute(t, "bfs", "--start", "42")
	require.NoError(t, err)

	assert.Equal(t, "order: \nreachable: \n", stdout)
	assert.Contains(t, stderr, "start vertex is not in the graph")
}

func TestGraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	doc := "vertices: [a, b, c, d]\nedges: [[a, b], [b, c], [c, d], [d, a], [d, e]]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	stdout, stderr, err := execute(t, "--graph", path, "--start", "a", "--log-level", "debug", "path", "c")
	require.NoError(t, err)

	assert.Equal(t, "shortest path to c: a, b, c\n", stdout)
	assert.Contains(t, stderr, "graph loaded")
	assert.Contains(t, stderr, "edge names an unknown vertex")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"--graph", filepath.Join(t.TempDir(), "nope.yaml")}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"stray argument", []string{"extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestDefaultLevel(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	assert.Equal(t, defaultLogLevel, defaultLevel())

	t.Setenv(logLevelEnv, " debug ")
	assert.Equal(t, "debug", defaultLevel())
}
