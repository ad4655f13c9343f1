package id3

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

const tolerance = 1e-9

func TestProbability(t *testing.T) {
	ds := dataset.Vegetation()
	p, err := Probability(ds, "elevation", feature.Label("high"))
	require.NoError(t, err)
	assert.InDelta(t, 3.0/7.0, p, tolerance)

	p, err = Probability(ds, "stream", feature.Bool(true))
	require.NoError(t, err)
	assert.InDelta(t, 4.0/7.0, p, tolerance)

	p, err = Probability(ds, "slope", feature.Label("vertical"))
	require.NoError(t, err)
	assert.Zero(t, p)

	_, err = Probability(ds, "aspect", feature.Label("north"))
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestProbabilityOfEmptyDataset(t *testing.T) {
	ds, err := dataset.Vegetation().Select(nil)
	require.NoError(t, err)
	p, err := Probability(ds, "slope", feature.Label("steep"))
	require.NoError(t, err)
	assert.Zero(t, p)
	assert.False(t, math.IsNaN(p))
}

func TestEntropy(t *testing.T) {
	ds := dataset.Vegetation()
	e, err := Entropy(ds, "vegetation")
	require.NoError(t, err)
	assert.InDelta(t, 1.5567, e, 1e-4)

	e, err = Entropy(ds, "stream")
	require.NoError(t, err)
	assert.InDelta(t, -(3.0/7.0)*math.Log2(3.0/7.0)-(4.0/7.0)*math.Log2(4.0/7.0), e, tolerance)

	_, err = Entropy(ds, "aspect")
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestEntropyIsZeroForOneValueOrEmpty(t *testing.T) {
	ds := dataset.Vegetation()
	rows, err := ds.RowsWhere("slope", feature.Label("steep"))
	require.NoError(t, err)
	steep, err := ds.Select(rows)
	require.NoError(t, err)
	e, err := Entropy(steep, "slope")
	require.NoError(t, err)
	assert.Zero(t, e)

	empty, err := ds.Select(nil)
	require.NoError(t, err)
	e, err = Entropy(empty, "vegetation")
	require.NoError(t, err)
	assert.Zero(t, e)
	assert.False(t, math.IsNaN(e))
}

func TestEntropyIsMaximalForUniformDistribution(t *testing.T) {
	for k := 1; k <= 8; k++ {
		values := make([]feature.Value, 0, 3*k)
		for r := 0; r < 3; r++ {
			for i := 0; i < k; i++ {
				values = append(values, feature.Int(int64(i)))
			}
		}
		ds, err := dataset.New([]dataset.Column{{Feature: feature.New("class", feature.KindInt), Values: values}}, "class", "")
		require.NoError(t, err)
		e, err := Entropy(ds, "class")
		require.NoError(t, err)
		assert.InDelta(t, math.Log2(float64(k)), e, tolerance, "k=%d", k)
	}
}

func TestInformationGain(t *testing.T) {
	ds := dataset.Vegetation()
	tests := []struct {
		column string
		want   float64
	}{
		{"stream", 0.305958},
		{"slope", 0.577406},
		{"elevation", 0.877387},
		// every id is unique, so splitting on it leaves no uncertainty
		{"id", 1.556657},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			g, err := InformationGain(ds, tt.column, "vegetation")
			require.NoError(t, err)
			assert.InDelta(t, tt.want, g, 1e-5)
		})
	}

	_, err := InformationGain(ds, "aspect", "vegetation")
	assert.ErrorIs(t, err, ErrInvalidColumn)
	_, err = InformationGain(ds, "slope", "habitat")
	assert.ErrorIs(t, err, ErrInvalidColumn)

	empty, err := ds.Select(nil)
	require.NoError(t, err)
	g, err := InformationGain(empty, "slope", "vegetation")
	require.NoError(t, err)
	assert.Zero(t, g)
}

func TestStatisticsProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		ds := randomDataset(t, r, 1+r.Intn(40), 3)
		for _, f := range ds.Features() {
			values, err := ds.UniqueValues(f.Name())
			require.NoError(t, err)
			var sum float64
			for _, v := range values {
				p, err := Probability(ds, f.Name(), v)
				require.NoError(t, err)
				sum += p
			}
			assert.InDelta(t, 1.0, sum, tolerance)

			e, err := Entropy(ds, f.Name())
			require.NoError(t, err)
			if len(values) == 1 {
				assert.Zero(t, e)
			} else {
				assert.Greater(t, e, 0.0)
			}
			assert.LessOrEqual(t, e, math.Log2(float64(len(values)))+tolerance)

			g, err := InformationGain(ds, f.Name(), ds.Target())
			require.NoError(t, err)
			assert.GreaterOrEqual(t, g, 0.0)
			assert.False(t, math.IsNaN(g) || math.IsInf(g, 0))
		}
	}
}

// randomDataset returns a dataset with n rows, an id column, a target
// column and the given number of label features with few values each
func randomDataset(t *testing.T, r *rand.Rand, n, features int) *dataset.Dataset {
	t.Helper()
	ids := make([]feature.Value, 0, n)
	target := make([]feature.Value, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, feature.Int(int64(i)))
		target = append(target, feature.Label(fmt.Sprintf("class%d", r.Intn(3))))
	}
	columns := []dataset.Column{
		{Feature: feature.New("id", feature.KindInt), Values: ids},
		{Feature: feature.New("class", feature.KindLabel), Values: target},
	}
	for j := 0; j < features; j++ {
		values := make([]feature.Value, 0, n)
		for i := 0; i < n; i++ {
			if j%2 == 0 {
				values = append(values, feature.Bool(r.Intn(2) == 1))
			} else {
				values = append(values, feature.Label(fmt.Sprintf("v%d", r.Intn(4))))
			}
		}
		columns = append(columns, dataset.Column{Feature: feature.New(fmt.Sprintf("f%d", j), featureKind(j)), Values: values})
	}
	ds, err := dataset.New(columns, "class", "id")
	require.NoError(t, err)
	return ds
}

func featureKind(j int) feature.Kind {
	if j%2 == 0 {
		return feature.KindBool
	}
	return feature.KindLabel
}
