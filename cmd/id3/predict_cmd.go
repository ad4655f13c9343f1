package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3/dataset"
	"github.com/pezwarinaan/id3/feature"
	"github.com/pezwarinaan/id3/tree"
)

type predictCmdConfig struct {
	*rootCmdConfig
	tree treeConfig
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict feature=value...",
		Short: "Predict a value for a sample",
		Long: `Use the loaded tree to predict the target feature value for a sample given as
feature=value arguments. Only the features the tree splits on are needed.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			label, t, err := config.tree.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			sample, err := parseSample(splitFeatures(t), args, config.logger)
			if err != nil {
				fail(3, err)
			}
			v, err := tree.Predict(t, sample)
			if err != nil {
				if errors.Is(err, dataset.ErrInvalidColumn) {
					fail(4, fmt.Errorf("%v: give a value for it as an argument", err))
				}
				fail(4, err)
			}
			fmt.Printf("%s: %v\n", label, v)
		},
	}
	config.tree.addFlags(cmd)
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	return pcc.tree.Validate()
}

// splitFeatures returns the features the nodes of the tree split on by name
func splitFeatures(t tree.Tree) map[string]feature.Feature {
	result := make(map[string]feature.Feature)
	tree.Traverse(t, false, func(st tree.Tree) error {
		if n, ok := st.(*tree.Node); ok {
			result[n.Feature.Name()] = n.Feature
		}
		return nil
	})
	return result
}

/*
parseSample takes the features of a tree and feature=value arguments and
returns a sample with the value of each argument parsed for the kind of
its feature. Arguments for features the tree does not use are ignored.
*/
func parseSample(features map[string]feature.Feature, args []string, logger *zap.Logger) (feature.Sample, error) {
	values := make(map[string]feature.Value, len(args))
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not of the form feature=value", arg)
		}
		f, ok := features[name]
		if !ok {
			logger.Warn("ignoring feature not used by the tree", zap.String("feature", name))
			continue
		}
		v, err := feature.Parse(f.Kind(), raw)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %v", name, err)
		}
		values[name] = v
	}
	return dataset.NewSample(values), nil
}
