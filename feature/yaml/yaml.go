/*
Package yaml provides methods to parse dataset metadata, that is, the
specification of the features of a dataset and the roles of its columns,
from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
)

type featureSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

type metadata struct {
	Features   []featureSpec `yaml:"features"`
	Target     string        `yaml:"target"`
	Identifier string        `yaml:"identifier,omitempty"`
	Candidates []string      `yaml:"candidates,omitempty"`
}

/*
ReadMetadata takes a slice of bytes with a dataset specification in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object with the following properties:
  - features: a list of objects with the name and kind ("int", "label"
    or "bool") of each feature, in column order
  - target: the name of the feature to predict
  - identifier: optionally, the name of a feature identifying the samples
  - candidates: optionally, the names of the features to grow trees on.
*/
func ReadMetadata(md []byte) (*dataset.Metadata, error) {
	m := &metadata{}
	if err := yaml.UnmarshalStrict(md, m); err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(m.Features) == 0 {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	result := &dataset.Metadata{
		Target:     m.Target,
		Identifier: m.Identifier,
		Candidates: m.Candidates,
	}
	for i, f := range m.Features {
		k, err := feature.ParseKind(f.Kind)
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s): %v", i, f.Name, err)
		}
		result.Features = append(result.Features, feature.New(f.Name, k))
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*dataset.Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	result, err := ReadMetadata(md)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata yml file %s: %w", filepath, err)
	}
	return result, nil
}

/*
WriteMetadata returns the YML document for the given metadata, in the
format ReadMetadata parses.
*/
func WriteMetadata(md *dataset.Metadata) ([]byte, error) {
	m := &metadata{
		Target:     md.Target,
		Identifier: md.Identifier,
		Candidates: md.Candidates,
	}
	for _, f := range md.Features {
		m.Features = append(m.Features, featureSpec{f.Name(), f.Kind().String()})
	}
	return yaml.Marshal(m)
}
