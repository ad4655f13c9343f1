package dataset

import (
	"fmt"

	"github.com/pezwarinaan/id3/feature"
)

type rowSample struct {
	ds  *Dataset
	row int
}

func (s *rowSample) ValueFor(name string) (feature.Value, error) {
	return s.ds.Value(name, s.row)
}

func (s *rowSample) String() string {
	return fmt.Sprintf("[row %d]", s.row)
}

type sample struct {
	featureValues map[string]feature.Value
}

/*
NewSample takes a map of feature names to values and returns a sample
with them. Asking the sample for the value of a feature not in the map
returns an ErrInvalidColumn error.
*/
func NewSample(featureValues map[string]feature.Value) feature.Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(name string) (feature.Value, error) {
	v, ok := s.featureValues[name]
	if !ok {
		return nil, fmt.Errorf("sample: %w: %q", ErrInvalidColumn, name)
	}
	return v, nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}
