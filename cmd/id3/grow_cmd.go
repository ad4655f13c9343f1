package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3"
	"github.com/pezwarinaan/id3/tree"
	"github.com/pezwarinaan/id3/tree/dot"
	"github.com/pezwarinaan/id3/tree/json"
)

type growCmdConfig struct {
	*rootCmdConfig
	data        dataConfig
	redis       redisConfig
	output      string
	dotOutput   string
	candidates  []string
	concurrency int
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow an ID3 decision tree from a set of data to predict its target feature.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			ctx := cmd.Context()
			md, ds, err := config.data.load(ctx, config.logger)
			if err != nil {
				fail(2, err)
			}
			candidates := config.candidates
			if len(candidates) == 0 {
				candidates = md.CandidatesFor(ds)
			}
			config.logger.Info("growing tree",
				zap.Int("samples", ds.Count()),
				zap.Int("features", len(candidates)),
				zap.String("target", ds.Target()),
			)
			t, err := id3.BuildTree(ds, candidates, ds.Target(),
				id3.WithConcurrency(config.concurrency),
				id3.WithLogger(config.logger),
			)
			if err != nil {
				fail(3, fmt.Errorf("growing the tree: %v", err))
			}
			config.logger.Info("tree grown", zap.Int("nodes", tree.Count(t)), zap.Int("depth", tree.Depth(t)))
			if err = outputTree(config.output, ds.Target(), t); err != nil {
				fail(4, err)
			}
			if config.dotOutput != "" {
				if err = outputDot(config.dotOutput, ds.Target(), t); err != nil {
					fail(5, err)
				}
			}
			if config.redis.addr != "" {
				id, err := config.storeTree(ctx, ds.Target(), t)
				if err != nil {
					fail(6, err)
				}
				config.logger.Info("tree stored", zap.String("redis", config.redis.addr), zap.String("id", id))
				fmt.Fprintln(os.Stderr, id)
			}
		},
	}
	config.data.addFlags(cmd)
	config.redis.addFlags(cmd)
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format (defaults to STDOUT)")
	cmd.Flags().StringVar(&(config.dotOutput), "dot", "", "path to a file to which the generated tree will be written as a Graphviz digraph")
	cmd.Flags().StringSliceVarP(&(config.candidates), "features", "f", nil, "names of the features to grow the tree on (defaults to the metadata candidates, or every feature but the target and identifier)")
	cmd.Flags().IntVarP(&(config.concurrency), "concurrency", "c", 0, "maximum number of subtrees grown at the same time on goroutines of their own (defaults to 0: grow the tree sequentially)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if err := gcc.data.Validate(); err != nil {
		return err
	}
	if gcc.concurrency < 0 {
		return fmt.Errorf("concurrency flag must not be negative")
	}
	return nil
}

func (gcc *growCmdConfig) storeTree(ctx context.Context, label string, t tree.Tree) (string, error) {
	store, closer := gcc.redis.store()
	defer closer()
	return store.Create(ctx, label, t)
}

func outputTree(outputPath, label string, t tree.Tree) error {
	f, err := createOutput(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.WriteJSONTree(f, label, t)
}

func outputDot(outputPath, label string, t tree.Tree) error {
	s, err := dot.Render(label, t)
	if err != nil {
		return err
	}
	f, err := createOutput(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.WriteString(f, s)
	return err
}
