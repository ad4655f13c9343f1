package id3

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
)

// Option configures how a tree is grown
type Option func(*pot)

/*
WithConcurrency takes the maximum number of subtrees that may be developed
on goroutines of their own at the same time. Subtrees that find no free
slot are developed on the goroutine of their parent. The resulting tree is
the same whatever the concurrency; values below 1 grow the tree on the
calling goroutine only, which is the default.
*/
func WithConcurrency(n int) Option {
	return func(p *pot) {
		if n < 1 {
			p.workers = nil
			return
		}
		p.workers = make(chan struct{}, n)
	}
}

// WithLogger sets a logger on which each split is logged at debug level
func WithLogger(l *zap.Logger) Option {
	return func(p *pot) {
		if l != nil {
			p.logger = l
		}
	}
}

type pot struct {
	target  string
	logger  *zap.Logger
	workers chan struct{}
}

/*
Grow takes a dataset and returns the tree that predicts its target column
using all its candidate columns. It is BuildTree(ds, ds.Candidates(), ds.Target(), opts...).
*/
func Grow(ds *dataset.Dataset, opts ...Option) (tree.Tree, error) {
	return BuildTree(ds, ds.Candidates(), ds.Target(), opts...)
}

/*
BuildTree takes a dataset, the ordered names of the candidate features and
the name of the target column and grows an ID3 decision tree predicting the
target:
  - if all rows share the same target value, the tree is a leaf with it
  - if there are no candidates left, it is a leaf with the most frequent
    target value, the first of them in row order on ties
  - otherwise the candidate with the greatest information gain splits the
    dataset in one part per value and a subtree is grown from each part
    without that candidate.

An error wrapping ErrInvalidColumn is returned if the target or a candidate
are not columns of the dataset, a candidate is repeated or is the target or
identifier column. ErrEmptyDataset is returned for a dataset without rows.
*/
func BuildTree(ds *dataset.Dataset, candidates []string, target string, opts ...Option) (tree.Tree, error) {
	p := &pot{target: target, logger: zap.NewNop()}
	for _, o := range opts {
		o(p)
	}
	if err := validateColumns(ds, candidates, target); err != nil {
		return nil, err
	}
	if ds.Count() == 0 {
		return nil, ErrEmptyDataset
	}
	p.logger.Debug("growing tree",
		zap.Int("samples", ds.Count()),
		zap.Strings("features", candidates),
		zap.String("target", target),
	)
	return p.develop(ds, append([]string(nil), candidates...), nil, 0)
}

/*
develop grows the subtree for the given dataset. parentMajority is the most
frequent target value on the dataset of the parent, predicted when the
dataset is empty.
*/
func (p *pot) develop(ds *dataset.Dataset, features []string, parentMajority feature.Value, depth int) (tree.Tree, error) {
	if ds.Count() == 0 {
		return tree.NewLeaf(parentMajority), nil
	}
	classes, err := ds.UniqueValues(p.target)
	if err != nil {
		return nil, err
	}
	if len(classes) == 1 {
		return tree.NewLeaf(classes[0]), nil
	}
	majority, err := Majority(ds, p.target)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return tree.NewLeaf(majority), nil
	}
	best, err := SelectBestFeature(ds, features, p.target)
	if err != nil {
		return nil, err
	}
	partition, err := NewPartition(ds, best)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("splitting",
		zap.String("feature", best),
		zap.Int("depth", depth),
		zap.Int("samples", ds.Count()),
		zap.Int("branches", len(partition.Parts)),
	)
	remaining := without(features, best)
	branches := make([]tree.Branch, len(partition.Parts))
	errs := make([]error, len(partition.Parts))
	var wg sync.WaitGroup
	for i, part := range partition.Parts {
		branches[i].Value = part.Value
		select {
		case p.workers <- struct{}{}:
			wg.Add(1)
			go func(i int, part Part) {
				defer wg.Done()
				defer func() { <-p.workers }()
				branches[i].Subtree, errs[i] = p.develop(part.Dataset, remaining, majority, depth+1)
			}(i, part)
		default:
			branches[i].Subtree, errs[i] = p.develop(part.Dataset, remaining, majority, depth+1)
		}
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return tree.NewNode(partition.Feature, branches), nil
}

/*
Majority takes a dataset and a column name and returns the most frequent
value of the column. On ties, the value appearing first in row order wins.
It returns ErrEmptyDataset if the dataset has no rows.
*/
func Majority(ds *dataset.Dataset, column string) (feature.Value, error) {
	counts, err := ds.CountValues(column)
	if err != nil {
		return nil, err
	}
	if ds.Count() == 0 {
		return nil, ErrEmptyDataset
	}
	values, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	var result feature.Value
	var most int
	for _, v := range values {
		if counts[v] > most {
			result = v
			most = counts[v]
		}
	}
	return result, nil
}

func validateColumns(ds *dataset.Dataset, candidates []string, target string) error {
	if _, err := ds.Feature(target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if _, err := ds.Feature(c); err != nil {
			return fmt.Errorf("candidate: %w", err)
		}
		switch {
		case c == target:
			return fmt.Errorf("candidate: %w: %q is the target column", ErrInvalidColumn, c)
		case c == ds.Identifier():
			return fmt.Errorf("candidate: %w: %q is the identifier column", ErrInvalidColumn, c)
		case seen[c]:
			return fmt.Errorf("candidate: %w: %q given twice", ErrInvalidColumn, c)
		}
		seen[c] = true
	}
	return nil
}

func without(features []string, f string) []string {
	result := make([]string, 0, len(features))
	for _, sf := range features {
		if sf != f {
			result = append(result, sf)
		}
	}
	return result
}
