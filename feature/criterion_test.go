package feature

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSample map[string]Value

func (s mapSample) ValueFor(name string) (Value, error) {
	v, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("no value for %s", name)
	}
	return v, nil
}

func TestDiscreteCriterion(t *testing.T) {
	slope := New("slope", KindLabel)
	c := NewDiscreteCriterion(slope, Label("steep"))
	assert.Equal(t, slope, c.Feature())
	assert.Equal(t, Label("steep"), c.Value())
	assert.Equal(t, "slope is steep", fmt.Sprint(c))

	ok, err := c.SatisfiedBy(mapSample{"slope": Label("steep")})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.SatisfiedBy(mapSample{"slope": Label("flat")})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.SatisfiedBy(mapSample{})
	assert.Error(t, err)
}

func TestDiscreteCriterionComparesVariants(t *testing.T) {
	c := NewDiscreteCriterion(New("stream", KindBool), Bool(true))
	ok, err := c.SatisfiedBy(mapSample{"stream": Label("true")})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFeatureValid(t *testing.T) {
	f := New("elevation", KindLabel)
	assert.Equal(t, "elevation", f.Name())
	assert.Equal(t, KindLabel, f.Kind())
	assert.NoError(t, f.Valid(Label("high")))
	assert.Error(t, f.Valid(Int(1)))
	assert.Error(t, f.Valid(nil))
}
