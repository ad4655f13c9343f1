package tree

import (
	"github.com/pezwarinaan/id3/feature"
)

/*
Tree represents a decision tree or a subtree thereof. It is a sealed
interface implemented only by *Leaf and *Node, so consumers can traverse
it with a type switch.
*/
type Tree interface {
	tree()
}

// Leaf is a terminal node of the tree holding a predicted target value
type Leaf struct {
	Value feature.Value
}

/*
Node is a split of the tree on a feature. It has a branch for each value
of the feature observed in the training data at this point of the tree,
in the order the values were enumerated.
*/
type Node struct {
	// The feature whose value selects the branch to follow.
	Feature feature.Feature
	// The first of the enumerated values, kept as a display tag of
	// the split. It does not select a branch.
	Representative feature.Value
	// The subtrees under this node, each paired with the feature value
	// that leads to it.
	Branches []Branch
}

// Branch pairs a feature value with the subtree it leads to
type Branch struct {
	Value   feature.Value
	Subtree Tree
}

func (*Leaf) tree() {}
func (*Node) tree() {}

// NewLeaf returns a leaf predicting the given value
func NewLeaf(v feature.Value) *Leaf {
	return &Leaf{v}
}

/*
NewNode takes the feature a node splits on and the branches under it and
returns the node, using the value of the first branch as representative.
*/
func NewNode(f feature.Feature, branches []Branch) *Node {
	n := &Node{Feature: f, Branches: branches}
	if len(branches) > 0 {
		n.Representative = branches[0].Value
	}
	return n
}
