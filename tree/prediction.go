package tree

import (
	"errors"
	"fmt"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by Predict when the tree
has no branch for the value the sample takes on a split feature, as
opposed to cases where values for a feature cannot be obtained for example.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
Predict takes a tree and a sample and returns the value predicted for the
sample, following at every node the branch whose value equals the sample's
value for the node feature. It returns an error wrapping
ErrCannotPredictFromSample if some node has no such branch, or the error
obtained asking the sample for a value.
*/
func Predict(t Tree, s feature.Sample) (feature.Value, error) {
	for {
		switch n := t.(type) {
		case nil:
			return nil, fmt.Errorf("nil tree cannot predict samples")
		case *Leaf:
			return n.Value, nil
		case *Node:
			var selected Tree
			for _, b := range n.Branches {
				ok, err := feature.NewDiscreteCriterion(n.Feature, b.Value).SatisfiedBy(s)
				if err != nil {
					return nil, fmt.Errorf("predicting sample: %w", err)
				}
				if ok {
					selected = b.Subtree
					break
				}
			}
			if selected == nil {
				v, _ := s.ValueFor(n.Feature.Name())
				return nil, fmt.Errorf("%w: no branch for %s = %v", ErrCannotPredictFromSample, n.Feature.Name(), v)
			}
			t = selected
		default:
			return nil, fmt.Errorf("unknown tree type %T", t)
		}
	}
}

/*
Test takes a tree and a dataset and returns three values:
  - the prediction success rate of the tree over the dataset for its target
  - the number of samples the tree could not predict because of
    ErrCannotPredictFromSample errors
  - an error if a prediction could not be made for reasons other than the tree
    not being able to do so. If this is not nil, the other values will be 0.0
    and 0 respectively
*/
func Test(t Tree, ds *dataset.Dataset) (float64, int, error) {
	if ds.Count() == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for _, s := range ds.Samples() {
		p, err := Predict(t, s)
		if err != nil {
			if !errors.Is(err, ErrCannotPredictFromSample) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		v, err := s.ValueFor(ds.Target())
		if err != nil {
			return 0.0, 0, err
		}
		if p == v {
			result += 1.0
		}
	}
	return result / float64(ds.Count()), errCount, nil
}
