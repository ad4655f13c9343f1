package tree

import (
	"fmt"
	"strings"

	"github.com/pezwarinaan/id3/feature"
)

/*
Traverse takes a tree, a bottomup boolean and an error-returning function
that takes a tree and goes through every node of the tree calling the
function with it. The function is called for a node before its children
if bottomup is false, and after them if bottomup is true. Branches are
traversed in order. If a call returns an error the traversal is aborted
and the error returned.
*/
func Traverse(t Tree, bottomup bool, f func(Tree) error) error {
	if !bottomup {
		if err := f(t); err != nil {
			return err
		}
	}
	if n, ok := t.(*Node); ok {
		for _, b := range n.Branches {
			if err := Traverse(b.Subtree, bottomup, f); err != nil {
				return err
			}
		}
	}
	if bottomup {
		return f(t)
	}
	return nil
}

// Leaves returns the values of the leaves of the tree, left to right
func Leaves(t Tree) []feature.Value {
	var result []feature.Value
	Traverse(t, false, func(st Tree) error {
		if l, ok := st.(*Leaf); ok {
			result = append(result, l.Value)
		}
		return nil
	})
	return result
}

// Count returns the number of nodes and leaves in the tree
func Count(t Tree) int {
	var count int
	Traverse(t, false, func(Tree) error {
		count++
		return nil
	})
	return count
}

// Depth returns the number of splits on the longest path from the root to a leaf
func Depth(t Tree) int {
	n, ok := t.(*Node)
	if !ok {
		return 0
	}
	var deepest int
	for _, b := range n.Branches {
		if d := Depth(b.Subtree); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

/*
String returns a multiline rendering of the tree: a split shows the name
of its feature with its branches underneath, each one starting with the
branch value; a leaf shows its predicted value.
*/
func String(t Tree) string {
	var sb strings.Builder
	for _, line := range lines(t) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func lines(t Tree) []string {
	switch n := t.(type) {
	case *Leaf:
		return []string{fmt.Sprintf("%v", n.Value)}
	case *Node:
		result := []string{n.Feature.Name()}
		for i, b := range n.Branches {
			for j, line := range lines(b.Subtree) {
				switch {
				case j == 0:
					result = append(result, fmt.Sprintf("|__%v: %s", b.Value, line))
				case i == len(n.Branches)-1:
					result = append(result, "   "+line)
				default:
					result = append(result, "|  "+line)
				}
			}
		}
		return result
	}
	return []string{fmt.Sprintf("%v", t)}
}
