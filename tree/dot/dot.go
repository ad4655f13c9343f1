/*
Package dot renders decision trees as Graphviz DOT digraphs.
*/
package dot

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/pezwarinaan/id3/tree"
)

const graphName = "tree"

/*
Render takes the name of the feature a tree predicts and the tree and
returns a DOT digraph with a box for every split, showing its feature,
an ellipse for every leaf, showing its prediction, and an edge from each
split to its subtrees labelled with the branch value. Nodes are named
n0, n1, ... in pre-order.
*/
func Render(label string, t tree.Tree) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}
	if err := g.AddAttr(graphName, "label", strconv.Quote(label)); err != nil {
		return "", err
	}
	var count int
	var visit func(t tree.Tree) (string, error)
	visit = func(t tree.Tree) (string, error) {
		name := fmt.Sprintf("n%d", count)
		count++
		switch n := t.(type) {
		case *tree.Leaf:
			err := g.AddNode(graphName, name, map[string]string{
				"label": strconv.Quote(fmt.Sprintf("%v", n.Value)),
				"shape": "ellipse",
			})
			return name, err
		case *tree.Node:
			err := g.AddNode(graphName, name, map[string]string{
				"label": strconv.Quote(n.Feature.Name()),
				"shape": "box",
			})
			if err != nil {
				return "", err
			}
			for _, b := range n.Branches {
				child, err := visit(b.Subtree)
				if err != nil {
					return "", err
				}
				err = g.AddEdge(name, child, true, map[string]string{
					"label": strconv.Quote(b.Value.String()),
				})
				if err != nil {
					return "", err
				}
			}
			return name, nil
		}
		return "", fmt.Errorf("rendering tree: unknown tree type %T", t)
	}
	if _, err := visit(t); err != nil {
		return "", err
	}
	return g.String(), nil
}
