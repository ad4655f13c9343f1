package json

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
)

type node struct {
	ID             string           `json:"id"`
	ParentID       string           `json:"pId,omitempty"`
	SubtreeIDs     []string         `json:"stIds,omitempty"`
	Value          *json.RawMessage `json:"v,omitempty"`
	Feature        *jsonFeature     `json:"f,omitempty"`
	Representative *json.RawMessage `json:"rep,omitempty"`
	Prediction     *json.RawMessage `json:"pred,omitempty"`
}

type jsonFeature struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

/*
flatten takes a tree and returns its nodes in pre-order, each with a
sequential ID starting at "0" for the root and the IDs of its parent
and subtrees.
*/
func flatten(t tree.Tree) ([]*node, error) {
	var result []*node
	var visit func(t tree.Tree, parentID string, v feature.Value) (string, error)
	visit = func(t tree.Tree, parentID string, v feature.Value) (string, error) {
		jn := &node{ID: strconv.Itoa(len(result)), ParentID: parentID}
		result = append(result, jn)
		if v != nil {
			rv, err := rawValue(v)
			if err != nil {
				return "", err
			}
			jn.Value = rv
		}
		switch n := t.(type) {
		case *tree.Leaf:
			if n.Value == nil {
				return "", fmt.Errorf("encoding node %s: leaf without prediction", jn.ID)
			}
			p, err := rawValue(n.Value)
			if err != nil {
				return "", err
			}
			jn.Prediction = p
		case *tree.Node:
			jn.Feature = &jsonFeature{n.Feature.Name(), n.Feature.Kind().String()}
			if n.Representative != nil {
				rep, err := rawValue(n.Representative)
				if err != nil {
					return "", err
				}
				jn.Representative = rep
			}
			for _, b := range n.Branches {
				id, err := visit(b.Subtree, jn.ID, b.Value)
				if err != nil {
					return "", err
				}
				jn.SubtreeIDs = append(jn.SubtreeIDs, id)
			}
		default:
			return "", fmt.Errorf("encoding node %s: unknown tree type %T", jn.ID, t)
		}
		return jn.ID, nil
	}
	if _, err := visit(t, "", nil); err != nil {
		return nil, err
	}
	return result, nil
}

/*
build takes the nodes of a tree indexed by ID and the ID of the root and
returns the tree. Every referenced node must be present and be referenced
only once.
*/
func build(nodes map[string]*node, rootID string) (tree.Tree, error) {
	used := make(map[string]bool, len(nodes))
	var visit func(id string) (tree.Tree, error)
	visit = func(id string) (tree.Tree, error) {
		jn, ok := nodes[id]
		if !ok {
			return nil, fmt.Errorf("decoding tree: unknown node %q", id)
		}
		if used[id] {
			return nil, fmt.Errorf("decoding tree: node %q referenced twice", id)
		}
		used[id] = true
		if jn.Feature == nil {
			if jn.Prediction == nil {
				return nil, fmt.Errorf("decoding node %q: no prediction nor feature", id)
			}
			v, err := feature.UnmarshalJSONValue(*jn.Prediction)
			if err != nil {
				return nil, fmt.Errorf("decoding node %q: prediction: %v", id, err)
			}
			return tree.NewLeaf(v), nil
		}
		kind, err := feature.ParseKind(jn.Feature.Kind)
		if err != nil {
			return nil, fmt.Errorf("decoding node %q: %v", id, err)
		}
		f := feature.New(jn.Feature.Name, kind)
		branches := make([]tree.Branch, 0, len(jn.SubtreeIDs))
		for _, stID := range jn.SubtreeIDs {
			st, ok := nodes[stID]
			if !ok {
				return nil, fmt.Errorf("decoding node %q: unknown subtree %q", id, stID)
			}
			if st.Value == nil {
				return nil, fmt.Errorf("decoding node %q: subtree %q has no branch value", id, stID)
			}
			v, err := feature.UnmarshalJSONValue(*st.Value)
			if err != nil {
				return nil, fmt.Errorf("decoding node %q: branch value: %v", stID, err)
			}
			if err := f.Valid(v); err != nil {
				return nil, fmt.Errorf("decoding node %q: %v", stID, err)
			}
			subtree, err := visit(stID)
			if err != nil {
				return nil, err
			}
			branches = append(branches, tree.Branch{Value: v, Subtree: subtree})
		}
		n := tree.NewNode(f, branches)
		if jn.Representative != nil {
			rep, err := feature.UnmarshalJSONValue(*jn.Representative)
			if err != nil {
				return nil, fmt.Errorf("decoding node %q: representative: %v", id, err)
			}
			n.Representative = rep
		}
		return n, nil
	}
	return visit(rootID)
}

func rawValue(v feature.Value) (*json.RawMessage, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	rm := json.RawMessage(b)
	return &rm, nil
}
