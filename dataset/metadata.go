package dataset

import (
	"fmt"

	"github.com/pezwarinaan/id3/feature"
)

/*
Metadata describes the schema of a dataset stored somewhere else: its
features in column order, the name of the target and identifier columns
and, optionally, the names of the features that trees should be grown on.
*/
type Metadata struct {
	Features   []feature.Feature
	Target     string
	Identifier string
	Candidates []string
}

/*
Validate returns an error wrapping ErrInvalidColumn if the metadata declares
a feature twice or refers to a column it does not declare.
*/
func (md *Metadata) Validate() error {
	seen := make(map[string]bool, len(md.Features))
	for _, f := range md.Features {
		if f.Name() == "" {
			return fmt.Errorf("metadata: %w: feature with empty name", ErrInvalidColumn)
		}
		if seen[f.Name()] {
			return fmt.Errorf("metadata: %w: %q declared twice", ErrInvalidColumn, f.Name())
		}
		seen[f.Name()] = true
	}
	if !seen[md.Target] {
		return fmt.Errorf("metadata: target: %w: %q", ErrInvalidColumn, md.Target)
	}
	if md.Identifier != "" && (!seen[md.Identifier] || md.Identifier == md.Target) {
		return fmt.Errorf("metadata: identifier: %w: %q", ErrInvalidColumn, md.Identifier)
	}
	for _, c := range md.Candidates {
		if !seen[c] || c == md.Target || c == md.Identifier {
			return fmt.Errorf("metadata: candidate: %w: %q", ErrInvalidColumn, c)
		}
	}
	return nil
}

// Feature returns the feature with the given name and whether it is declared
func (md *Metadata) Feature(name string) (feature.Feature, bool) {
	for _, f := range md.Features {
		if f.Name() == name {
			return f, true
		}
	}
	return feature.Feature{}, false
}

/*
CandidatesFor returns the candidates declared on the metadata or, if none
were, the candidates of the given dataset.
*/
func (md *Metadata) CandidatesFor(ds *Dataset) []string {
	if len(md.Candidates) > 0 {
		return append([]string(nil), md.Candidates...)
	}
	return ds.Candidates()
}

// MetadataOf returns the metadata describing the schema of a dataset
func MetadataOf(ds *Dataset) *Metadata {
	return &Metadata{
		Features:   ds.Features(),
		Target:     ds.Target(),
		Identifier: ds.Identifier(),
	}
}
