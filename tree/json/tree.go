/*
Package json encodes decision trees as JSON documents and decodes them back.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pezwarinaan/id3/tree"
)

/*
WriteJSONTree takes an io.Writer, the name of the feature the tree predicts
and a tree and serializes the tree as JSON onto the io.Writer.
A tree is serialized as a JSON object with the following fields:
  - "label": a string with the name of the feature the tree predicts
  - "rootID": a string with the ID of the node at the root of the tree
  - "nodes": an array with the nodes of the tree in pre-order. Each node
    has an "id", the "pId" of its parent, the "v" value of the branch that
    leads to it from its parent and either the "pred" value of a leaf or
    the "f" feature (name and kind), "rep" representative value and
    "stIds" subtree IDs of a split.

An error is returned if the tree cannot be serialized or written
onto the io.Writer.
*/
func WriteJSONTree(w io.Writer, label string, t tree.Tree) error {
	nodes, err := flatten(t)
	if err != nil {
		return err
	}
	if err = marshalJSONTreeHeader(w, label, nodes[0].ID); err != nil {
		return err
	}
	for i, n := range nodes {
		if err = writeNode(w, i, n); err != nil {
			return err
		}
	}
	return marshalJSONTreeFooter(w)
}

/*
ReadJSONTree takes an io.Reader with a JSON tree as written by
WriteJSONTree and returns the name of the feature it predicts and the tree.
An error is returned if the JSON cannot be read from the io.Reader, it
references missing nodes or its values do not match their features.
*/
func ReadJSONTree(r io.Reader) (string, tree.Tree, error) {
	dec := json.NewDecoder(r)
	jt := &struct {
		RootID string  `json:"rootID"`
		Label  string  `json:"label"`
		Nodes  []*node `json:"nodes"`
	}{}
	if err := dec.Decode(jt); err != nil {
		return "", nil, err
	}
	if jt.Label == "" {
		return "", nil, fmt.Errorf("no label feature defined")
	}
	if jt.RootID == "" {
		return "", nil, fmt.Errorf("no root node id available")
	}
	nodes := make(map[string]*node, len(jt.Nodes))
	for _, n := range jt.Nodes {
		if n == nil || n.ID == "" {
			return "", nil, fmt.Errorf("decoding tree: node without id")
		}
		if _, ok := nodes[n.ID]; ok {
			return "", nil, fmt.Errorf("decoding tree: duplicated node id %q", n.ID)
		}
		nodes[n.ID] = n
	}
	t, err := build(nodes, jt.RootID)
	if err != nil {
		return "", nil, err
	}
	return jt.Label, t, nil
}

func marshalJSONTreeHeader(w io.Writer, label, rootID string) error {
	jrootID, err := json.Marshal(rootID)
	if err != nil {
		return err
	}
	jFeatureName, err := json.Marshal(label)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, `{"label":%s,"rootID":%s,"nodes":[`, jFeatureName, jrootID)
	return err
}

func writeNode(w io.Writer, i int, n *node) error {
	if i != 0 {
		if _, err := w.Write([]byte(",")); err != nil {
			return err
		}
	}
	jn, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, err = w.Write(jn)
	return err
}

func marshalJSONTreeFooter(w io.Writer) error {
	_, err := w.Write([]byte("]}\n"))
	return err
}
