package id3

import "github.com/pezwarinaan/id3/dataset"

// Error represents an error growing a tree
type Error string

func (e Error) Error() string {
	return string(e)
}

/*
ErrEmptyCandidateSet is the error returned when a feature must be selected
among an empty set of candidates.
*/
const ErrEmptyCandidateSet = Error("no candidate features to select from")

/*
ErrEmptyDataset is the error returned when trying to grow a tree from a
dataset without rows: no prediction can be made from it.
*/
const ErrEmptyDataset = Error("cannot grow a tree from an empty dataset")

// ErrInvalidColumn is dataset.ErrInvalidColumn
const ErrInvalidColumn = dataset.ErrInvalidColumn
