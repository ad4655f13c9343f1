package id3

import (
	"math"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

/*
Probability takes a dataset, a column name and a value and returns the
fraction of rows of the dataset whose value for the column is equal to
the given one. It returns 0 for an empty dataset, and an error wrapping
ErrInvalidColumn if the dataset has no such column.
*/
func Probability(ds *dataset.Dataset, column string, v feature.Value) (float64, error) {
	rows, err := ds.RowsWhere(column, v)
	if err != nil {
		return 0.0, err
	}
	if ds.Count() == 0 {
		return 0.0, nil
	}
	return float64(len(rows)) / float64(ds.Count()), nil
}

/*
Entropy takes a dataset and a column name and returns the Shannon entropy
in bits of the distribution of values in the column: a measure of the
disinformation we have on the value a row takes for it. The entropy of an
empty dataset is 0.
*/
func Entropy(ds *dataset.Dataset, column string) (float64, error) {
	counts, err := ds.CountValues(column)
	if err != nil {
		return 0.0, err
	}
	if ds.Count() == 0 {
		return 0.0, nil
	}
	// terms are added in unique value order so the sum is reproducible
	values, err := ds.UniqueValues(column)
	if err != nil {
		return 0.0, err
	}
	var result float64
	total := float64(ds.Count())
	for _, v := range values {
		p := float64(counts[v]) / total
		if p > 0 {
			result -= p * math.Log2(p)
		}
	}
	return result, nil
}

/*
InformationGain takes a dataset, the name of a column to split it on and
the name of the target column and returns how much splitting the dataset
on the column reduces the entropy of the target: the entropy of the target
over the whole dataset minus the entropy of the target over the rows taking
each value of the column, weighted by the number of such rows.

The gain of an empty dataset is 0. Negative results caused by floating
point rounding are returned as 0.
*/
func InformationGain(ds *dataset.Dataset, column, target string) (float64, error) {
	result, err := Entropy(ds, target)
	if err != nil {
		return 0.0, err
	}
	values, err := ds.UniqueValues(column)
	if err != nil {
		return 0.0, err
	}
	if ds.Count() == 0 {
		return 0.0, nil
	}
	total := float64(ds.Count())
	for _, v := range values {
		rows, err := ds.RowsWhere(column, v)
		if err != nil {
			return 0.0, err
		}
		if len(rows) == 0 {
			continue
		}
		subset, err := ds.Select(rows)
		if err != nil {
			return 0.0, err
		}
		subsetEntropy, err := Entropy(subset, target)
		if err != nil {
			return 0.0, err
		}
		result -= subsetEntropy * float64(len(rows)) / total
	}
	return math.Max(result, 0.0), nil
}
