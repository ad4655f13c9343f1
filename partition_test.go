package id3

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

func TestNewPartition(t *testing.T) {
	ds := dataset.Vegetation()
	p, err := NewPartition(ds, "elevation")
	require.NoError(t, err)
	assert.Equal(t, "elevation", p.Feature.Name())

	want := []struct {
		value feature.Value
		ids   []feature.Value
	}{
		{feature.Label("high"), []feature.Value{feature.Int(1), feature.Int(5), feature.Int(7)}},
		{feature.Label("highest"), []feature.Value{feature.Int(6)}},
		{feature.Label("low"), []feature.Value{feature.Int(2)}},
		{feature.Label("medium"), []feature.Value{feature.Int(3), feature.Int(4)}},
	}
	require.Len(t, p.Parts, len(want))
	for i, w := range want {
		assert.Equal(t, w.value, p.Parts[i].Value)
		ids, err := p.Parts[i].Dataset.Column("id")
		require.NoError(t, err)
		assert.Equal(t, w.ids, ids)
		// parts keep every column of the original dataset
		assert.Equal(t, ds.Features(), p.Parts[i].Dataset.Features())
		assert.Equal(t, "vegetation", p.Parts[i].Dataset.Target())
	}

	_, err = NewPartition(ds, "aspect")
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestNewPartitionCoversEveryRowOnce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		ds := randomDataset(t, r, 1+r.Intn(30), 4)
		for _, c := range ds.Candidates() {
			p, err := NewPartition(ds, c)
			require.NoError(t, err)
			var ids []int
			for _, part := range p.Parts {
				assert.NotZero(t, part.Dataset.Count())
				col, err := part.Dataset.Column("id")
				require.NoError(t, err)
				for _, v := range col {
					ids = append(ids, int(v.(feature.Int)))
				}
			}
			sort.Ints(ids)
			require.Len(t, ids, ds.Count())
			for j, id := range ids {
				assert.Equal(t, j, id)
			}
		}
	}
}

func TestSelectBestFeature(t *testing.T) {
	ds := dataset.Vegetation()
	best, err := SelectBestFeature(ds, []string{"stream", "slope", "elevation"}, "vegetation")
	require.NoError(t, err)
	assert.Equal(t, "elevation", best)

	best, err = SelectBestFeature(ds, []string{"stream", "slope"}, "vegetation")
	require.NoError(t, err)
	assert.Equal(t, "slope", best)

	best, err = SelectBestFeature(ds, []string{"stream"}, "vegetation")
	require.NoError(t, err)
	assert.Equal(t, "stream", best)
}

func TestSelectBestFeatureTies(t *testing.T) {
	// a and b are the same column under different names, c tells nothing
	a := []feature.Value{feature.Bool(true), feature.Bool(true), feature.Bool(false), feature.Bool(false)}
	c := []feature.Value{feature.Bool(true), feature.Bool(false), feature.Bool(true), feature.Bool(false)}
	class := []feature.Value{feature.Label("x"), feature.Label("x"), feature.Label("y"), feature.Label("y")}
	ds, err := dataset.New([]dataset.Column{
		{Feature: feature.New("a", feature.KindBool), Values: a},
		{Feature: feature.New("b", feature.KindBool), Values: a},
		{Feature: feature.New("c", feature.KindBool), Values: c},
		{Feature: feature.New("class", feature.KindLabel), Values: class},
	}, "class", "")
	require.NoError(t, err)

	tests := []struct {
		candidates []string
		want       string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"b", "a", "c"}, "b"},
		{[]string{"c", "b", "a"}, "b"},
		// no candidate gains anything, the first one is kept
		{[]string{"c"}, "c"},
	}
	for _, tt := range tests {
		best, err := SelectBestFeature(ds, tt.candidates, "class")
		require.NoError(t, err)
		assert.Equal(t, tt.want, best, "candidates %v", tt.candidates)
	}

	// on a pure dataset every gain is zero
	pure, err := ds.Select([]int{0, 1})
	require.NoError(t, err)
	best, err := SelectBestFeature(pure, []string{"c", "a", "b"}, "class")
	require.NoError(t, err)
	assert.Equal(t, "c", best)
}

func TestSelectBestFeatureErrors(t *testing.T) {
	ds := dataset.Vegetation()
	_, err := SelectBestFeature(ds, nil, "vegetation")
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	_, err = SelectBestFeature(ds, []string{}, "vegetation")
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)

	_, err = SelectBestFeature(ds, []string{"slope", "aspect"}, "vegetation")
	assert.ErrorIs(t, err, ErrInvalidColumn)
	assert.Contains(t, err.Error(), "aspect")
}
