package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3"
	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
	"github.com/pezwarinaan/id3/tree/json"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := cliParser()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func readTree(t *testing.T, path string) (string, tree.Tree) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	label, result, err := json.ReadJSONTree(f)
	require.NoError(t, err)
	return label, result
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "id3 v0.1.0\n", run(t, "version"))
}

func TestGrow(t *testing.T) {
	want, err := id3.Grow(dataset.Vegetation())
	require.NoError(t, err)
	dir := t.TempDir()
	output := filepath.Join(dir, "tree.json")
	dotOutput := filepath.Join(dir, "tree.dot")
	run(t, "grow", "--input", "vegetation", "--output", output, "--dot", dotOutput, "--concurrency", "2")

	label, got := readTree(t, output)
	assert.Equal(t, "vegetation", label)
	assert.Equal(t, want, got)
	b, err := os.ReadFile(dotOutput)
	require.NoError(t, err)
	assert.Contains(t, string(b), "digraph")
}

func TestGrowFromCSVWithMetadata(t *testing.T) {
	output := filepath.Join(t.TempDir(), "tree.json")
	run(t, "grow",
		"-i", "../../testdata/vegetation.csv",
		"-m", "../../testdata/vegetation.yml",
		"-o", output,
		"--features", "stream,slope",
	)
	_, got := readTree(t, output)
	root, ok := got.(*tree.Node)
	require.True(t, ok)
	assert.Equal(t, "slope", root.Feature.Name())
}

func TestFlagsFromEnvironmentAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "tree.json")
	t.Setenv("ID3_INPUT", "vegetation")
	config := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(config, []byte("output: "+output+"\nfeatures: [stream]\n"), 0o600))
	run(t, "grow", "--config", config)

	_, got := readTree(t, output)
	root, ok := got.(*tree.Node)
	require.True(t, ok)
	assert.Equal(t, "stream", root.Feature.Name())
}

func TestSetToSQLite3AndBack(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "vegetation.db")
	run(t, "set", "-i", "vegetation", "-o", db)
	output := filepath.Join(dir, "vegetation.csv")
	run(t, "set", "-i", db, "-m", "../../testdata/vegetation.yml", "-o", output)

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	want, err := os.ReadFile("../../testdata/vegetation.csv")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}

func TestRenderStats(t *testing.T) {
	ds := dataset.Vegetation()
	var buf bytes.Buffer
	require.NoError(t, renderStats(&buf, ds, ds.Candidates()))
	out := buf.String()
	assert.Contains(t, out, "7 samples predicting vegetation")
	assert.Contains(t, out, "0.8774")
	assert.Contains(t, out, "0.5774")
	assert.Contains(t, out, "0.3060")
	assert.Contains(t, out, "1.5567")
	assert.Contains(t, out, "identifier")
}

func TestSplitDataset(t *testing.T) {
	ds := dataset.Vegetation()
	output, split, err := splitDataset(ds, 50, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, ds.Count(), output.Count()+split.Count())

	output, split, err = splitDataset(ds, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Zero(t, output.Count())
	assert.Equal(t, ds, split)
}

func TestParseSample(t *testing.T) {
	vt, err := id3.Grow(dataset.Vegetation())
	require.NoError(t, err)
	features := splitFeatures(vt)
	assert.Len(t, features, 3)

	s, err := parseSample(features, []string{"elevation=medium", "stream=true", "colour=green"}, zap.NewNop())
	require.NoError(t, err)
	v, err := tree.Predict(vt, s)
	require.NoError(t, err)
	assert.Equal(t, feature.Label("riparian"), v)

	_, err = parseSample(features, []string{"stream"}, zap.NewNop())
	assert.Error(t, err)
	_, err = parseSample(features, []string{"stream=maybe"}, zap.NewNop())
	assert.Error(t, err)
}
