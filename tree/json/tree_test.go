package json_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pezwarinaan/id3"
	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
	jsontree "github.com/pezwarinaan/id3/tree/json"
)

func TestRoundTrip(t *testing.T) {
	vt, err := id3.Grow(dataset.Vegetation())
	require.NoError(t, err)
	trees := map[string]tree.Tree{
		"vegetation": vt,
		"leaf":       tree.NewLeaf(feature.Int(7)),
		"bool leaf":  tree.NewLeaf(feature.Bool(false)),
		"int split": tree.NewNode(feature.New("age", feature.KindInt), []tree.Branch{
			{Value: feature.Int(-3), Subtree: tree.NewLeaf(feature.Label("young"))},
			{Value: feature.Int(40), Subtree: tree.NewLeaf(feature.Label("old"))},
		}),
	}
	for name, want := range trees {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, jsontree.WriteJSONTree(&buf, "vegetation", want))
			assert.True(t, json.Valid(buf.Bytes()))
			label, got, err := jsontree.ReadJSONTree(&buf)
			require.NoError(t, err)
			assert.Equal(t, "vegetation", label)
			assert.Equal(t, want, got)
		})
	}
}

func TestWriteJSONTreeLayout(t *testing.T) {
	vt, err := id3.Grow(dataset.Vegetation())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, jsontree.WriteJSONTree(&buf, "vegetation", vt))

	var doc struct {
		Label  string `json:"label"`
		RootID string `json:"rootID"`
		Nodes  []struct {
			ID         string          `json:"id"`
			ParentID   string          `json:"pId"`
			SubtreeIDs []string        `json:"stIds"`
			Value      json.RawMessage `json:"v"`
			Feature    *struct {
				Name string `json:"name"`
				Kind string `json:"kind"`
			} `json:"f"`
			Prediction json.RawMessage `json:"pred"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "0", doc.RootID)
	require.Len(t, doc.Nodes, 9)
	root := doc.Nodes[0]
	assert.Equal(t, "0", root.ID)
	assert.Empty(t, root.ParentID)
	require.NotNil(t, root.Feature)
	assert.Equal(t, "elevation", root.Feature.Name)
	assert.Equal(t, "label", root.Feature.Kind)
	assert.Equal(t, []string{"1", "4", "5", "6"}, root.SubtreeIDs)

	slope := doc.Nodes[1]
	assert.Equal(t, "0", slope.ParentID)
	assert.JSONEq(t, `"high"`, string(slope.Value))
	assert.Equal(t, []string{"2", "3"}, slope.SubtreeIDs)

	leaf := doc.Nodes[2]
	assert.Nil(t, leaf.Feature)
	assert.JSONEq(t, `"conifer"`, string(leaf.Prediction))

	stream := doc.Nodes[6]
	assert.Equal(t, "stream", stream.Feature.Name)
	assert.Equal(t, "bool", stream.Feature.Kind)
	assert.JSONEq(t, "false", string(doc.Nodes[7].Value))
}

func TestReadJSONTreeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"label":`},
		{"no label", `{"rootID":"0","nodes":[{"id":"0","pred":"a"}]}`},
		{"no root", `{"label":"l","nodes":[{"id":"0","pred":"a"}]}`},
		{"missing root", `{"label":"l","rootID":"1","nodes":[{"id":"0","pred":"a"}]}`},
		{"missing subtree", `{"label":"l","rootID":"0","nodes":[{"id":"0","f":{"name":"x","kind":"bool"},"stIds":["1"]}]}`},
		{"duplicated id", `{"label":"l","rootID":"0","nodes":[{"id":"0","pred":"a"},{"id":"0","pred":"b"}]}`},
		{"unknown kind", `{"label":"l","rootID":"0","nodes":[{"id":"0","f":{"name":"x","kind":"float"},"stIds":["1"]},{"id":"1","v":true,"pred":"a"}]}`},
		{"branch value of wrong kind", `{"label":"l","rootID":"0","nodes":[{"id":"0","f":{"name":"x","kind":"bool"},"stIds":["1"]},{"id":"1","v":"yes","pred":"a"}]}`},
		{"branch without value", `{"label":"l","rootID":"0","nodes":[{"id":"0","f":{"name":"x","kind":"bool"},"stIds":["1"]},{"id":"1","pred":"a"}]}`},
		{"leaf without prediction", `{"label":"l","rootID":"0","nodes":[{"id":"0"}]}`},
		{"float prediction", `{"label":"l","rootID":"0","nodes":[{"id":"0","pred":1.5}]}`},
		{"cycle", `{"label":"l","rootID":"0","nodes":[{"id":"0","f":{"name":"x","kind":"bool"},"stIds":["0"],"v":true}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := jsontree.ReadJSONTree(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}
