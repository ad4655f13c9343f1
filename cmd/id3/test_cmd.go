package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pezwarinaan/id3/tree"
)

type testCmdConfig struct {
	*rootCmdConfig
	tree treeConfig
	data dataConfig
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fail(1, err)
			}
			label, t, err := config.tree.load(cmd.Context(), config.logger)
			if err != nil {
				fail(2, err)
			}
			_, ds, err := config.data.load(cmd.Context(), config.logger)
			if err != nil {
				fail(3, err)
			}
			if label != ds.Target() {
				fail(4, fmt.Errorf("tree predicts %s but the testing set target is %s", label, ds.Target()))
			}
			config.logger.Debug("testing tree", zap.Int("samples", ds.Count()))
			successRate, errorCount, err := tree.Test(t, ds)
			if err != nil {
				fail(5, fmt.Errorf("testing tree: %v", err))
			}
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	config.tree.addFlags(cmd)
	config.data.addFlags(cmd)
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if err := tcc.tree.Validate(); err != nil {
		return err
	}
	return tcc.data.Validate()
}
