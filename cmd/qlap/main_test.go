// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const threeNode = "# 0<->1 equal, 1->2 one-way\n0 1\n1 0\n1 2\n"

func TestBuild_JSONToStdout(t *testing.T) {
	in := writeFile(t, t.TempDir(), "g.txt", threeNode)
	out, err := run(t, "build", in)
	require.NoError(t, err)

	var k kernelJSON
	require.NoError(t, json.Unmarshal([]byte(out), &k))
	require.Equal(t, 3, k.NumNodes)
	require.Equal(t, float32(2), k.LambdaMax)
	require.Equal(t, 7, k.SelfLoopStart)
	require.Len(t, k.EdgeIndex[0], 10)
	require.Equal(t, []float32{-1, -1, -1}, k.Real[7:])
	require.Equal(t, [5]int{0, 5, 7, 7, 7}, k.Blocks)
}

func TestBuild_CSVAndMultipleInputs(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", threeNode)
	b := writeFile(t, dir, "b.edges", "0 1 2\n1 0 1\n")
	outDir := filepath.Join(dir, "out")

	_, err := run(t, "build", a, b, "--out", outDir, "--format", "csv", "-j", "2")
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(outDir, "a.kernel.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"src", "dst", "real", "i", "j", "k"}, rows[0])
	require.Len(t, rows, 1+10)
	require.Equal(t, []string{"2", "2", "-1", "0", "0", "0"}, rows[len(rows)-1])

	_, err = os.Stat(filepath.Join(outDir, "b.kernel.csv"))
	require.NoError(t, err)
}

func TestBuild_Errors(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", threeNode)

	_, err := run(t, "build", a, a)
	require.Error(t, err, "several inputs need --out")

	_, err = run(t, "build", a, "--norm", "rw")
	require.Error(t, err)

	_, err = run(t, "build", a, "--device", "tpu")
	require.Error(t, err)

	_, err = run(t, "build", a, "--num-nodes", "2")
	require.Error(t, err)

	_, err = run(t, "build", filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}

func TestBuild_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "g.txt", threeNode)
	cfg := writeFile(t, dir, "qlap.yaml", "format: csv\nnormalization: none\nnum_nodes: 4\n")

	out, err := run(t, "--config", cfg, "build", in)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "src,dst,real,i,j,k\n"))
	// header, 5 real, 2 i, then one self-loop per configured node
	require.Equal(t, 12, strings.Count(out, "\n"))
	require.Contains(t, out, "\n3,3,-1,0,0,0\n")
}

func TestInspect(t *testing.T) {
	in := writeFile(t, t.TempDir(), "g.txt", "0 1 2\n1 0 1\n1 2 1\n2 3 3\n3 2 3\n")
	out, err := run(t, "inspect", in)
	require.NoError(t, err)
	require.Contains(t, out, "nodes")
	require.Regexp(t, `one-way\s+1\n`, out)
	require.Regexp(t, `reciprocal, any weight\s+4\n`, out)
	require.Regexp(t, `reciprocal, equal weight\s+2\n`, out)
	require.Regexp(t, `reciprocal, unequal weight\s+2\n`, out)
	require.Regexp(t, `real symmetric\s+true\n`, out)
	require.Contains(t, out, "quaternion eigenvalues")
}

func TestGenerate_ThenBuild(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "dsbm.txt")
	labels := filepath.Join(dir, "labels.txt")

	_, err := run(t, "generate", "--model", "dsbm", "--sizes", "5,5", "--p-in", "0.5",
		"--p-inter", "0.5", "--p-q", "0.9", "--seed", "3", "--signed-fraction", "0.2",
		"--max-weight", "3", "--out", graph, "--labels", labels)
	require.NoError(t, err)

	data, err := os.ReadFile(labels)
	require.NoError(t, err)
	require.Equal(t, "0\n0\n0\n0\n0\n1\n1\n1\n1\n1\n", string(data))

	out, err := run(t, "build", graph, "--num-nodes", "10")
	require.NoError(t, err)
	var k kernelJSON
	require.NoError(t, json.Unmarshal([]byte(out), &k))
	require.Equal(t, 10, k.NumNodes)

	cycle, err := run(t, "generate", "--model", "cycle", "--nodes", "3")
	require.NoError(t, err)
	require.Equal(t, "0 1 1\n1 2 1\n2 0 1\n", cycle)

	_, err = run(t, "generate", "--model", "lattice")
	require.Error(t, err)
}
