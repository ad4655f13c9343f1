package id3

import (
	"fmt"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

/*
Partition represents a partition of a dataset according to a feature
into one part per value of the feature observed in the dataset.
*/
type Partition struct {
	Feature feature.Feature
	Parts   []Part
}

// Part holds the rows of a partitioned dataset taking a specific value
type Part struct {
	Value   feature.Value
	Dataset *dataset.Dataset
}

/*
NewPartition takes a dataset and the name of one of its columns and
returns the partition of the dataset on that column: a part for each
distinct value of the column, in the order given by the dataset's
UniqueValues, each holding all the columns of the rows taking that value.
Every row of the dataset belongs to exactly one part.
*/
func NewPartition(ds *dataset.Dataset, column string) (*Partition, error) {
	f, err := ds.Feature(column)
	if err != nil {
		return nil, err
	}
	values, err := ds.UniqueValues(column)
	if err != nil {
		return nil, err
	}
	parts := make([]Part, 0, len(values))
	for _, v := range values {
		subset, err := ds.SubsetWith(feature.NewDiscreteCriterion(f, v))
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{v, subset})
	}
	return &Partition{f, parts}, nil
}

/*
SelectBestFeature takes a dataset, a slice of candidate column names and
the name of the target column and returns the candidate with the greatest
information gain on the target. When several candidates share the greatest
gain, the first of them in the given order is returned.

It returns ErrEmptyCandidateSet if there are no candidates, and an error
wrapping dataset.ErrInvalidColumn if a column is unknown.
*/
func SelectBestFeature(ds *dataset.Dataset, candidates []string, target string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	var best string
	var bestGain float64
	for i, c := range candidates {
		gain, err := InformationGain(ds, c, target)
		if err != nil {
			return "", fmt.Errorf("evaluating feature %q: %w", c, err)
		}
		if i == 0 || gain > bestGain {
			best = c
			bestGain = gain
		}
	}
	return best, nil
}
